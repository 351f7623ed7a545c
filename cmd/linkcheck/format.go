package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/linkcheck"
	"github.com/fwojciec/linkcheck/fs"
	"github.com/fwojciec/linkcheck/markdown"
	"github.com/fwojciec/linkcheck/table"
)

// newReportWriter returns the writer for an output format.
func newReportWriter(format string, brokenOnly bool) linkcheck.ReportWriter {
	switch format {
	case "json":
		return &jsonReportWriter{BrokenOnly: brokenOnly}
	case "markdown":
		return markdown.NewReportWriter()
	default:
		w := table.NewReportWriter()
		w.BrokenOnly = brokenOnly
		return w
	}
}

var formatExt = map[string]string{
	"text":     ".txt",
	"json":     ".json",
	"markdown": ".md",
}

// emitReport writes the report to stdout, or to a file under outDir when set.
func emitReport(deps *Dependencies, report *linkcheck.Report, format string, brokenOnly bool, outDir string) error {
	w := newReportWriter(format, brokenOnly)
	if outDir == "" {
		return w.WriteReport(deps.Stdout, report)
	}

	path, err := fs.NewExporter(outDir, w, formatExt[format]).Export(report)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkcheck.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stderr, "Wrote %s\n", path)
	return nil
}

// jsonReportWriter writes a report in the same shape as the crawl API
// response, plus the report metadata.
type jsonReportWriter struct {
	BrokenOnly bool
}

type jsonReport struct {
	*linkcheck.Report
	Links   []*linkcheck.LinkResult `json:"links"`
	Summary linkcheck.ReportSummary `json:"summary"`
}

func (w *jsonReportWriter) WriteReport(out io.Writer, report *linkcheck.Report) error {
	links := report.Links
	if w.BrokenOnly {
		links = report.BrokenLinks()
	}
	if links == nil {
		links = []*linkcheck.LinkResult{}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{Report: report, Links: links, Summary: report.Summary()})
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
