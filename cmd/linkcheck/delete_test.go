package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/linkcheck"
	main "github.com/fwojciec/linkcheck/cmd/linkcheck"
	"github.com/fwojciec/linkcheck/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes report when --force is set", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		reports := &mock.ReportService{
			DeleteReportFn: func(_ context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Reports: reports}

		cmd := &main.DeleteCmd{ID: "r-123", Force: true}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "r-123", deletedID)
		assert.Contains(t, stdout.String(), "Deleted")
	})

	t.Run("requires --force flag", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Reports: &mock.ReportService{}}

		err := (&main.DeleteCmd{ID: "r-123"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("reports missing report", func(t *testing.T) {
		t.Parallel()

		reports := &mock.ReportService{
			DeleteReportFn: func(_ context.Context, _ string) error {
				return linkcheck.Errorf(linkcheck.ENOTFOUND, "report not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Reports: reports}

		err := (&main.DeleteCmd{ID: "nope", Force: true}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), `report "nope" not found`)
	})
}
