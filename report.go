package linkcheck

import (
	"context"
	"io"
	"time"
)

// Report is a completed crawl saved for later inspection.
type Report struct {
	ID        string        `json:"id"`
	SeedURL   string        `json:"seedUrl"`
	MaxDepth  int           `json:"maxDepth"`
	Links     []*LinkResult `json:"links,omitempty"`
	Digest    string        `json:"digest"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Validate returns an error if the report contains invalid fields.
func (r *Report) Validate() error {
	if r.SeedURL == "" {
		return Errorf(EINVALID, "report seed URL required")
	}
	if r.MaxDepth < 0 {
		return Errorf(EINVALID, "report depth must not be negative")
	}
	return nil
}

// ReportSummary counts link outcomes in a report.
type ReportSummary struct {
	Total       int `json:"total"`
	OK          int `json:"ok"`
	Broken      int `json:"broken"`
	Unreachable int `json:"unreachable"`
}

// Summary tallies the report's links. Broken counts links that returned a
// status >= 400; Unreachable counts links with no status at all.
func (r *Report) Summary() ReportSummary {
	var s ReportSummary
	for _, l := range r.Links {
		s.Total++
		switch {
		case l.OK:
			s.OK++
		case !l.Reachable():
			s.Unreachable++
		default:
			s.Broken++
		}
	}
	return s
}

// BrokenLinks returns the links that are not ok, in report order.
func (r *Report) BrokenLinks() []*LinkResult {
	var out []*LinkResult
	for _, l := range r.Links {
		if !l.OK {
			out = append(out, l)
		}
	}
	return out
}

// ReportService represents a service for managing saved reports.
type ReportService interface {
	// CreateReport saves a report, assigning its ID, digest and timestamp.
	CreateReport(ctx context.Context, report *Report) error

	// FindReportByID retrieves a report with its links.
	// Returns ENOTFOUND if the report does not exist.
	FindReportByID(ctx context.Context, id string) (*Report, error)

	// FindReports retrieves reports matching the filter, newest first.
	// Links are not loaded.
	FindReports(ctx context.Context, filter ReportFilter) ([]*Report, error)

	// DeleteReport permanently removes a report and its links.
	// Returns ENOTFOUND if the report does not exist.
	DeleteReport(ctx context.Context, id string) error
}

// ReportFilter represents a filter for FindReports.
type ReportFilter struct {
	ID      *string `json:"id"`
	SeedURL *string `json:"seedUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ReportWriter renders a report.
type ReportWriter interface {
	WriteReport(w io.Writer, report *Report) error
}

// LinkChange records a link whose status differs between two reports.
type LinkChange struct {
	URL    string `json:"url"`
	Before *int   `json:"before"`
	After  *int   `json:"after"`
}

// ReportDiff describes how link health changed between two reports.
type ReportDiff struct {
	// Unchanged is true when both reports have identical links and statuses.
	Unchanged bool `json:"unchanged"`

	Added   []*LinkResult `json:"added"`
	Removed []*LinkResult `json:"removed"`
	Broke   []LinkChange  `json:"broke"`
	Fixed   []LinkChange  `json:"fixed"`
	Changed []LinkChange  `json:"changed"`
}
