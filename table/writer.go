// Package table renders link reports as aligned terminal tables.
package table

import (
	"fmt"
	"io"

	"github.com/fwojciec/linkcheck"
	"github.com/fwojciec/linkcheck/crawl"
	"github.com/rodaine/table"
)

// DefaultMaxURLWidth is the widest URL column printed before truncation.
const DefaultMaxURLWidth = 80

var _ linkcheck.ReportWriter = (*ReportWriter)(nil)

// ReportWriter writes a report as a plain-text table.
type ReportWriter struct {
	// MaxURLWidth truncates longer URLs from the left. Zero disables truncation.
	MaxURLWidth int

	// BrokenOnly limits the table to links that are not ok.
	BrokenOnly bool
}

// NewReportWriter creates a ReportWriter with DefaultMaxURLWidth.
func NewReportWriter() *ReportWriter {
	return &ReportWriter{MaxURLWidth: DefaultMaxURLWidth}
}

// WriteReport renders report to w.
func (rw *ReportWriter) WriteReport(w io.Writer, report *linkcheck.Report) error {
	summary := report.Summary()
	if _, err := fmt.Fprintf(w, "%s (depth %d): %d links, %d ok, %d broken, %d unreachable\n",
		report.SeedURL, report.MaxDepth, summary.Total, summary.OK, summary.Broken, summary.Unreachable); err != nil {
		return err
	}

	links := report.Links
	if rw.BrokenOnly {
		links = report.BrokenLinks()
	}
	if len(links) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	tbl := table.New("URL", "Status", "Result").WithWriter(w)
	for _, l := range links {
		url := l.URL
		if rw.MaxURLWidth > 0 {
			url = crawl.TruncateURL(url, rw.MaxURLWidth)
		}
		tbl.AddRow(url, crawl.FormatStatus(l.Status), crawl.FormatVerdict(l))
	}
	tbl.Print()

	return nil
}
