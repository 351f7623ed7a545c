package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fwojciec/linkcheck"
	main "github.com/fwojciec/linkcheck/cmd/linkcheck"
	"github.com/fwojciec/linkcheck/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportsByID(byID map[string]*linkcheck.Report) *mock.ReportService {
	return &mock.ReportService{
		FindReportByIDFn: func(_ context.Context, id string) (*linkcheck.Report, error) {
			if r, ok := byID[id]; ok {
				return r, nil
			}
			return nil, linkcheck.Errorf(linkcheck.ENOTFOUND, "report not found")
		},
	}
}

func TestDiffCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints changes", func(t *testing.T) {
		t.Parallel()

		reports := reportsByID(map[string]*linkcheck.Report{
			"old": {ID: "old", Digest: "1", Links: []*linkcheck.LinkResult{
				linkcheck.NewLinkResult("https://example.com/a", linkcheck.StatusCode(200)),
				linkcheck.NewLinkResult("https://example.com/gone", linkcheck.StatusCode(200)),
			}},
			"new": {ID: "new", Digest: "2", Links: []*linkcheck.LinkResult{
				linkcheck.NewLinkResult("https://example.com/a", nil),
				linkcheck.NewLinkResult("https://example.com/new", linkcheck.StatusCode(404)),
			}},
		})

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Reports: reports}

		require.NoError(t, (&main.DiffCmd{Old: "old", New: "new", Format: "text"}).Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "Broke (1):\n  https://example.com/a  200 -> unreachable\n")
		assert.Contains(t, output, "Added (1):\n  https://example.com/new  404\n")
		assert.Contains(t, output, "Removed (1):\n  https://example.com/gone  200\n")
		assert.NotContains(t, output, "Fixed")
	})

	t.Run("reports no changes", func(t *testing.T) {
		t.Parallel()

		links := []*linkcheck.LinkResult{linkcheck.NewLinkResult("https://example.com/a", linkcheck.StatusCode(200))}
		reports := reportsByID(map[string]*linkcheck.Report{
			"old": {ID: "old", Digest: "same", Links: links},
			"new": {ID: "new", Digest: "same", Links: links},
		})

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Reports: reports}

		require.NoError(t, (&main.DiffCmd{Old: "old", New: "new", Format: "text"}).Run(deps))
		assert.Equal(t, "No changes between old and new\n", stdout.String())
	})

	t.Run("prints JSON", func(t *testing.T) {
		t.Parallel()

		reports := reportsByID(map[string]*linkcheck.Report{
			"old": {ID: "old", Links: []*linkcheck.LinkResult{linkcheck.NewLinkResult("https://example.com/a", linkcheck.StatusCode(500))}},
			"new": {ID: "new", Links: []*linkcheck.LinkResult{linkcheck.NewLinkResult("https://example.com/a", linkcheck.StatusCode(200))}},
		})

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Reports: reports}

		require.NoError(t, (&main.DiffCmd{Old: "old", New: "new", Format: "json"}).Run(deps))

		var diff linkcheck.ReportDiff
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &diff))
		require.Len(t, diff.Fixed, 1)
		assert.Equal(t, 500, *diff.Fixed[0].Before)
	})

	t.Run("reports missing report", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Reports: reportsByID(nil)}

		err := (&main.DiffCmd{Old: "old", New: "new", Format: "text"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), `report "old" not found`)
	})
}
