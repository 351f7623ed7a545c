package mock

import (
	"context"
	"io"

	"github.com/fwojciec/linkcheck"
)

var _ linkcheck.ReportService = (*ReportService)(nil)

// ReportService is a mock implementation of linkcheck.ReportService.
type ReportService struct {
	CreateReportFn   func(ctx context.Context, report *linkcheck.Report) error
	FindReportByIDFn func(ctx context.Context, id string) (*linkcheck.Report, error)
	FindReportsFn    func(ctx context.Context, filter linkcheck.ReportFilter) ([]*linkcheck.Report, error)
	DeleteReportFn   func(ctx context.Context, id string) error
}

func (s *ReportService) CreateReport(ctx context.Context, report *linkcheck.Report) error {
	return s.CreateReportFn(ctx, report)
}

func (s *ReportService) FindReportByID(ctx context.Context, id string) (*linkcheck.Report, error) {
	return s.FindReportByIDFn(ctx, id)
}

func (s *ReportService) FindReports(ctx context.Context, filter linkcheck.ReportFilter) ([]*linkcheck.Report, error) {
	return s.FindReportsFn(ctx, filter)
}

func (s *ReportService) DeleteReport(ctx context.Context, id string) error {
	return s.DeleteReportFn(ctx, id)
}

var _ linkcheck.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of linkcheck.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(w io.Writer, report *linkcheck.Report) error
}

func (rw *ReportWriter) WriteReport(w io.Writer, report *linkcheck.Report) error {
	return rw.WriteReportFn(w, report)
}
