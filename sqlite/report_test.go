package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/linkcheck"
	"github.com/fwojciec/linkcheck/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLinks() []*linkcheck.LinkResult {
	return []*linkcheck.LinkResult{
		linkcheck.NewLinkResult("https://example.com/a", linkcheck.StatusCode(200)),
		linkcheck.NewLinkResult("https://example.com/b", linkcheck.StatusCode(404)),
		linkcheck.NewLinkResult("https://example.com/c", nil),
	}
}

func createReport(t *testing.T, svc *sqlite.ReportService, seed string, links []*linkcheck.LinkResult) *linkcheck.Report {
	t.Helper()
	report := &linkcheck.Report{SeedURL: seed, MaxDepth: 1, Links: links}
	require.NoError(t, svc.CreateReport(context.Background(), report))
	return report
}

func TestReportService_CreateReport(t *testing.T) {
	t.Parallel()

	t.Run("creates report with generated ID, digest and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewReportService(setupTestDB(t))

		report := createReport(t, svc, "https://example.com/", sampleLinks())

		assert.NotEmpty(t, report.ID, "ID should be generated")
		assert.Len(t, report.Digest, 16, "digest should be a hex xxhash")
		assert.False(t, report.CreatedAt.IsZero(), "CreatedAt should be set")
	})

	t.Run("returns error for invalid report", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewReportService(setupTestDB(t))

		err := svc.CreateReport(context.Background(), &linkcheck.Report{})
		require.Error(t, err)
		assert.Equal(t, linkcheck.EINVALID, linkcheck.ErrorCode(err))
	})

	t.Run("same links give same digest", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewReportService(setupTestDB(t))

		first := createReport(t, svc, "https://example.com/", sampleLinks())
		second := createReport(t, svc, "https://example.com/", sampleLinks())

		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, first.Digest, second.Digest)
	})

	t.Run("status change alters digest", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewReportService(setupTestDB(t))

		links := sampleLinks()
		first := createReport(t, svc, "https://example.com/", links)

		changed := sampleLinks()
		changed[2] = linkcheck.NewLinkResult("https://example.com/c", linkcheck.StatusCode(200))
		second := createReport(t, svc, "https://example.com/", changed)

		assert.NotEqual(t, first.Digest, second.Digest)
	})

	t.Run("stores counts", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewReportService(db)
		report := createReport(t, svc, "https://example.com/", sampleLinks())

		var linkCount, brokenCount int
		err := db.QueryRowContext(context.Background(),
			"SELECT link_count, broken_count FROM reports WHERE id = ?", report.ID).Scan(&linkCount, &brokenCount)
		require.NoError(t, err)
		assert.Equal(t, 3, linkCount)
		assert.Equal(t, 2, brokenCount)
	})

	t.Run("accepts report without links", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewReportService(setupTestDB(t))

		report := createReport(t, svc, "https://example.com/", nil)

		found, err := svc.FindReportByID(context.Background(), report.ID)
		require.NoError(t, err)
		assert.Empty(t, found.Links)
	})
}

func TestReportService_FindReportByID(t *testing.T) {
	t.Parallel()

	t.Run("returns report with links in order", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewReportService(setupTestDB(t))
		created := createReport(t, svc, "https://example.com/", sampleLinks())

		found, err := svc.FindReportByID(context.Background(), created.ID)
		require.NoError(t, err)

		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "https://example.com/", found.SeedURL)
		assert.Equal(t, 1, found.MaxDepth)
		assert.Equal(t, created.Digest, found.Digest)
		assert.True(t, created.CreatedAt.Equal(found.CreatedAt))
		assert.Equal(t, sampleLinks(), found.Links)
	})

	t.Run("preserves missing status", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewReportService(setupTestDB(t))
		created := createReport(t, svc, "https://example.com/", sampleLinks())

		found, err := svc.FindReportByID(context.Background(), created.ID)
		require.NoError(t, err)

		require.Len(t, found.Links, 3)
		assert.Nil(t, found.Links[2].Status)
		assert.False(t, found.Links[2].OK)
	})

	t.Run("returns ENOTFOUND for missing report", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewReportService(setupTestDB(t))

		_, err := svc.FindReportByID(context.Background(), "nonexistent")
		require.Error(t, err)
		assert.Equal(t, linkcheck.ENOTFOUND, linkcheck.ErrorCode(err))
	})
}

func TestReportService_FindReports(t *testing.T) {
	t.Parallel()

	t.Run("returns newest first without links", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewReportService(setupTestDB(t))
		first := createReport(t, svc, "https://example.com/", sampleLinks())
		second := createReport(t, svc, "https://example.com/", sampleLinks())

		reports, err := svc.FindReports(context.Background(), linkcheck.ReportFilter{})
		require.NoError(t, err)

		require.Len(t, reports, 2)
		assert.Equal(t, second.ID, reports[0].ID)
		assert.Equal(t, first.ID, reports[1].ID)
		assert.Nil(t, reports[0].Links)
	})

	t.Run("filters by seed URL", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewReportService(setupTestDB(t))
		createReport(t, svc, "https://example.com/", sampleLinks())
		other := createReport(t, svc, "https://other.com/", sampleLinks())

		seed := "https://other.com/"
		reports, err := svc.FindReports(context.Background(), linkcheck.ReportFilter{SeedURL: &seed})
		require.NoError(t, err)

		require.Len(t, reports, 1)
		assert.Equal(t, other.ID, reports[0].ID)
	})

	t.Run("filters by ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewReportService(setupTestDB(t))
		target := createReport(t, svc, "https://example.com/", sampleLinks())
		createReport(t, svc, "https://example.com/", sampleLinks())

		reports, err := svc.FindReports(context.Background(), linkcheck.ReportFilter{ID: &target.ID})
		require.NoError(t, err)

		require.Len(t, reports, 1)
		assert.Equal(t, target.ID, reports[0].ID)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewReportService(setupTestDB(t))
		for range 5 {
			createReport(t, svc, "https://example.com/", sampleLinks())
		}

		reports, err := svc.FindReports(context.Background(), linkcheck.ReportFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, reports, 2)

		reports, err = svc.FindReports(context.Background(), linkcheck.ReportFilter{Limit: 10, Offset: 3})
		require.NoError(t, err)
		assert.Len(t, reports, 2)
	})

	t.Run("returns empty for no matches", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewReportService(setupTestDB(t))

		reports, err := svc.FindReports(context.Background(), linkcheck.ReportFilter{})
		require.NoError(t, err)
		assert.Empty(t, reports)
	})
}

func TestReportService_DeleteReport(t *testing.T) {
	t.Parallel()

	t.Run("deletes report and its links", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewReportService(db)
		ctx := context.Background()
		report := createReport(t, svc, "https://example.com/", sampleLinks())

		require.NoError(t, svc.DeleteReport(ctx, report.ID))

		_, err := svc.FindReportByID(ctx, report.ID)
		assert.Equal(t, linkcheck.ENOTFOUND, linkcheck.ErrorCode(err))

		var count int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM links WHERE report_id = ?", report.ID).Scan(&count))
		assert.Equal(t, 0, count)
	})

	t.Run("returns ENOTFOUND for missing report", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewReportService(setupTestDB(t))

		err := svc.DeleteReport(context.Background(), "nonexistent")
		require.Error(t, err)
		assert.Equal(t, linkcheck.ENOTFOUND, linkcheck.ErrorCode(err))
	})
}
