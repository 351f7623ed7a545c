package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/fwojciec/linkcheck"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	links, err := deps.Crawler.Crawl(deps.Ctx, c.URL, c.Depth)
	interrupted := errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
	if err != nil && !interrupted {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkcheck.ErrorMessage(err))
		return err
	}

	report := &linkcheck.Report{
		SeedURL:  c.URL,
		MaxDepth: c.Depth,
		Links:    links,
	}

	if interrupted {
		fmt.Fprintln(deps.Stderr, "error: crawl interrupted, results are partial")
	} else if c.Save {
		if err := deps.Reports.CreateReport(deps.Ctx, report); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", linkcheck.ErrorMessage(err))
			return err
		}
	}

	if err := emitReport(deps, report, c.Format, c.BrokenOnly, c.OutDir); err != nil {
		return err
	}

	if interrupted {
		return err
	}
	if report.ID != "" {
		fmt.Fprintf(deps.Stderr, "Saved report %s\n", report.ID)
	}

	if c.Fail {
		if summary := report.Summary(); summary.OK < summary.Total {
			return fmt.Errorf("%d of %d links are not ok", summary.Total-summary.OK, summary.Total)
		}
	}
	return nil
}
