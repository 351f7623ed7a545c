package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/linkcheck"
)

// Ensure LoggingReportService implements linkcheck.ReportService.
var _ linkcheck.ReportService = (*LoggingReportService)(nil)

// LoggingReportService wraps a ReportService and logs writes.
// Reads are delegated without logging.
type LoggingReportService struct {
	next   linkcheck.ReportService
	logger *slog.Logger
}

// NewLoggingReportService creates a new LoggingReportService.
func NewLoggingReportService(next linkcheck.ReportService, logger *slog.Logger) *LoggingReportService {
	return &LoggingReportService{next: next, logger: logger}
}

func (s *LoggingReportService) CreateReport(ctx context.Context, report *linkcheck.Report) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("save report",
			"id", report.ID,
			"url", report.SeedURL,
			"links", len(report.Links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateReport(ctx, report)
}

func (s *LoggingReportService) FindReportByID(ctx context.Context, id string) (*linkcheck.Report, error) {
	return s.next.FindReportByID(ctx, id)
}

func (s *LoggingReportService) FindReports(ctx context.Context, filter linkcheck.ReportFilter) ([]*linkcheck.Report, error) {
	return s.next.FindReports(ctx, filter)
}

func (s *LoggingReportService) DeleteReport(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("delete report",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteReport(ctx, id)
}
