package main

import (
	"fmt"

	"github.com/fwojciec/linkcheck"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	report, err := deps.Reports.FindReportByID(deps.Ctx, c.ID)
	if linkcheck.ErrorCode(err) == linkcheck.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: report %q not found. Use 'linkcheck history' to see saved reports.\n", c.ID)
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkcheck.ErrorMessage(err))
		return err
	}

	return emitReport(deps, report, c.Format, c.BrokenOnly, c.OutDir)
}
