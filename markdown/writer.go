// Package markdown renders link reports as GitHub-flavoured Markdown.
package markdown

import (
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/linkcheck"
	"github.com/fwojciec/linkcheck/crawl"
	"github.com/nao1215/markdown"
)

var _ linkcheck.ReportWriter = (*ReportWriter)(nil)

// ReportWriter writes a report as a Markdown document.
type ReportWriter struct{}

// NewReportWriter creates a new ReportWriter.
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// WriteReport renders report to w.
func (rw *ReportWriter) WriteReport(w io.Writer, report *linkcheck.Report) error {
	md := markdown.NewMarkdown(w)

	rw.writeHeader(md, report)
	rw.writeSummary(md, report)
	rw.writeLinks(md, report)

	return md.Build()
}

func (rw *ReportWriter) writeHeader(md *markdown.Markdown, report *linkcheck.Report) {
	md.H1("Link Report")
	md.PlainText("")

	rows := [][]string{
		{"Seed", "`" + report.SeedURL + "`"},
		{"Depth", strconv.Itoa(report.MaxDepth)},
	}
	if report.ID != "" {
		rows = append(rows, []string{"Report", "`" + report.ID + "`"})
	}
	if !report.CreatedAt.IsZero() {
		rows = append(rows, []string{"Checked", report.CreatedAt.Format("2006-01-02 15:04:05 MST")})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (rw *ReportWriter) writeSummary(md *markdown.Markdown, report *linkcheck.Report) {
	summary := report.Summary()

	md.H2("Summary")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Result", "Count"},
		Rows: [][]string{
			{"OK", strconv.Itoa(summary.OK)},
			{"Broken", strconv.Itoa(summary.Broken)},
			{"Unreachable", strconv.Itoa(summary.Unreachable)},
			{"**Total**", "**" + strconv.Itoa(summary.Total) + "**"},
		},
	})
	md.PlainText("")

	switch {
	case summary.Total == 0:
		md.Note("No links were found.")
	case summary.OK == summary.Total:
		md.Tip("All links are healthy.")
	default:
		md.Cautionf("%d of %d links are not ok.", summary.Total-summary.OK, summary.Total)
	}
	md.PlainText("")
}

func (rw *ReportWriter) writeLinks(md *markdown.Markdown, report *linkcheck.Report) {
	if len(report.Links) == 0 {
		return
	}

	md.H2("Links")
	md.PlainText("")

	rows := make([][]string, 0, len(report.Links))
	for _, l := range report.Links {
		rows = append(rows, []string{
			escapeCell(l.URL),
			crawl.FormatStatus(l.Status),
			crawl.FormatVerdict(l),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"URL", "Status", "Result"},
		Rows:   rows,
	})
	md.PlainText("")
}

// escapeCell keeps pipes in URLs from splitting table cells.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
