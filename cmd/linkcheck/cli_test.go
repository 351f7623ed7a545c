package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/linkcheck/cmd/linkcheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allCommands = []string{"check", "serve", "history", "show", "diff", "delete"}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// Use kong.Exit to prevent os.Exit from being called during tests
	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"db_path": "test.db", "user_agent": "test", "timeout": "1s"},
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range allCommands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_CheckDefaults(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli,
		kong.Exit(func(int) {}),
		kong.Vars{"db_path": "test.db", "user_agent": "test-agent", "timeout": "30s"},
	)
	require.NoError(t, err)

	_, err = parser.Parse([]string{"check", "https://example.com"})
	require.NoError(t, err)

	assert.Equal(t, "https://example.com", cli.Check.URL)
	assert.Equal(t, 1, cli.Check.Depth)
	assert.Equal(t, "text", cli.Check.Format)
	assert.Equal(t, "test-agent", cli.UserAgent)
	assert.False(t, cli.Check.Save)
}

func TestCLI_RejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli,
		kong.Exit(func(int) {}),
		kong.Vars{"db_path": "test.db", "user_agent": "test", "timeout": "1s"},
	)
	require.NoError(t, err)

	_, err = parser.Parse([]string{"check", "https://example.com", "-f", "xml"})
	require.Error(t, err)
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.ConfigPaths = nil

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)

	helpOutput := stdout.String()
	for _, cmd := range allCommands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
	assert.Contains(t, helpOutput, "Usage:", "Help should have Kong-style Usage prefix")
	assert.Contains(t, helpOutput, "Flags:", "Help should have Kong-style Flags section")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.ConfigPaths = nil

	err := m.Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}
