package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/linkcheck"
	"github.com/fwojciec/linkcheck/crawl"
)

// Run executes the diff command.
func (c *DiffCmd) Run(deps *Dependencies) error {
	before, err := c.find(deps, c.Old)
	if err != nil {
		return err
	}
	after, err := c.find(deps, c.New)
	if err != nil {
		return err
	}

	diff := crawl.CompareReports(before, after)

	if c.Format == "json" {
		return writeJSON(deps.Stdout, diff)
	}

	if diff.Unchanged {
		fmt.Fprintf(deps.Stdout, "No changes between %s and %s\n", c.Old, c.New)
		return nil
	}

	writeChanges(deps.Stdout, "Broke", diff.Broke)
	writeChanges(deps.Stdout, "Fixed", diff.Fixed)
	writeChanges(deps.Stdout, "Changed", diff.Changed)
	writeLinks(deps.Stdout, "Added", diff.Added)
	writeLinks(deps.Stdout, "Removed", diff.Removed)
	return nil
}

func (c *DiffCmd) find(deps *Dependencies, id string) (*linkcheck.Report, error) {
	report, err := deps.Reports.FindReportByID(deps.Ctx, id)
	if linkcheck.ErrorCode(err) == linkcheck.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: report %q not found. Use 'linkcheck history' to see saved reports.\n", id)
		return nil, err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkcheck.ErrorMessage(err))
		return nil, err
	}
	return report, nil
}

func writeChanges(w io.Writer, title string, changes []linkcheck.LinkChange) {
	if len(changes) == 0 {
		return
	}
	fmt.Fprintf(w, "%s (%d):\n", title, len(changes))
	for _, ch := range changes {
		fmt.Fprintf(w, "  %s  %s -> %s\n", ch.URL, crawl.FormatStatus(ch.Before), crawl.FormatStatus(ch.After))
	}
}

func writeLinks(w io.Writer, title string, links []*linkcheck.LinkResult) {
	if len(links) == 0 {
		return
	}
	fmt.Fprintf(w, "%s (%d):\n", title, len(links))
	for _, l := range links {
		fmt.Fprintf(w, "  %s  %s\n", l.URL, crawl.FormatStatus(l.Status))
	}
}
