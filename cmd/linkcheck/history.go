package main

import (
	"fmt"

	"github.com/fwojciec/linkcheck"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := linkcheck.ReportFilter{Limit: c.Limit}
	if c.Seed != "" {
		filter.SeedURL = &c.Seed
	}

	reports, err := deps.Reports.FindReports(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkcheck.ErrorMessage(err))
		return err
	}

	if len(reports) == 0 {
		fmt.Fprintln(deps.Stdout, "No reports found. Use 'linkcheck check --save' to create one.")
		return nil
	}

	for _, r := range reports {
		fmt.Fprintf(deps.Stdout, "%s  %s  depth=%d  %s\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.MaxDepth, r.SeedURL)
	}

	return nil
}
