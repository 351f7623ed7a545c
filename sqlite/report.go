package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/linkcheck"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ linkcheck.ReportService = (*ReportService)(nil)

// ReportService implements linkcheck.ReportService using SQLite.
type ReportService struct {
	db *DB
}

// NewReportService creates a new ReportService.
func NewReportService(db *DB) *ReportService {
	return &ReportService{db: db}
}

// digestLinks computes an xxHash over the ordered links and their statuses
// and returns it as a hex string.
func digestLinks(links []*linkcheck.LinkResult) string {
	d := xxhash.New()
	for _, l := range links {
		status := "-"
		if l.Status != nil {
			status = strconv.Itoa(*l.Status)
		}
		_, _ = d.WriteString(l.URL)
		_, _ = d.WriteString("\t")
		_, _ = d.WriteString(status)
		_, _ = d.WriteString("\n")
	}
	return hex.EncodeToString(d.Sum(nil))
}

// CreateReport saves a report and its links in a single transaction.
func (s *ReportService) CreateReport(ctx context.Context, report *linkcheck.Report) error {
	if err := report.Validate(); err != nil {
		return err
	}

	report.ID = uuid.New().String()
	report.CreatedAt = time.Now().UTC().Truncate(time.Second)
	report.Digest = digestLinks(report.Links)
	summary := report.Summary()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO reports (id, seed_url, max_depth, digest, link_count, broken_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, report.ID, report.SeedURL, report.MaxDepth, report.Digest, summary.Total,
		summary.Broken+summary.Unreachable, report.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for i, l := range report.Links {
		var status sql.NullInt64
		if l.Status != nil {
			status = sql.NullInt64{Int64: int64(*l.Status), Valid: true}
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO links (report_id, position, url, status, ok)
			VALUES (?, ?, ?, ?, ?)
		`, report.ID, i, l.URL, status, l.OK); err != nil {
			return fmt.Errorf("failed to insert link %s: %w", l.URL, err)
		}
	}

	return tx.Commit()
}

// FindReportByID retrieves a report and its links in discovery order.
func (s *ReportService) FindReportByID(ctx context.Context, id string) (*linkcheck.Report, error) {
	var report linkcheck.Report
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, seed_url, max_depth, digest, created_at
		FROM reports
		WHERE id = ?
	`, id).Scan(&report.ID, &report.SeedURL, &report.MaxDepth, &report.Digest, &createdAt)

	if err == sql.ErrNoRows {
		return nil, linkcheck.Errorf(linkcheck.ENOTFOUND, "report not found")
	}
	if err != nil {
		return nil, err
	}

	report.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	report.Links, err = s.findLinks(ctx, report.ID)
	if err != nil {
		return nil, err
	}

	return &report, nil
}

func (s *ReportService) findLinks(ctx context.Context, reportID string) ([]*linkcheck.LinkResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT url, status
		FROM links
		WHERE report_id = ?
		ORDER BY position ASC
	`, reportID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := []*linkcheck.LinkResult{}
	for rows.Next() {
		var url string
		var status sql.NullInt64
		if err := rows.Scan(&url, &status); err != nil {
			return nil, err
		}

		var code *int
		if status.Valid {
			code = linkcheck.StatusCode(int(status.Int64))
		}
		links = append(links, linkcheck.NewLinkResult(url, code))
	}

	return links, rows.Err()
}

// FindReports retrieves reports matching the filter, newest first.
// Links are not loaded.
func (s *ReportService) FindReports(ctx context.Context, filter linkcheck.ReportFilter) ([]*linkcheck.Report, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, seed_url, max_depth, digest, created_at FROM reports WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SeedURL != nil {
		query.WriteString(" AND seed_url = ?")
		args = append(args, *filter.SeedURL)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*linkcheck.Report
	for rows.Next() {
		var report linkcheck.Report
		var createdAt string

		if err := rows.Scan(&report.ID, &report.SeedURL, &report.MaxDepth, &report.Digest, &createdAt); err != nil {
			return nil, err
		}

		report.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		reports = append(reports, &report)
	}

	return reports, rows.Err()
}

// DeleteReport permanently removes a report. Its links are removed by cascade.
func (s *ReportService) DeleteReport(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM reports WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return linkcheck.Errorf(linkcheck.ENOTFOUND, "report not found")
	}

	return nil
}
