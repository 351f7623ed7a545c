package main_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/linkcheck/cmd/linkcheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseWithConfig(t *testing.T, config string, args ...string) *main.CLI {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(config), 0o644))

	cli := &main.CLI{}
	parser, err := kong.New(cli,
		kong.Exit(func(int) {}),
		kong.Configuration(main.YAML, path),
		kong.Vars{"db_path": "default.db", "user_agent": "default-agent", "timeout": "30s"},
	)
	require.NoError(t, err)

	_, err = parser.Parse(args)
	require.NoError(t, err)
	return cli
}

func TestYAML(t *testing.T) {
	t.Parallel()

	t.Run("reads global flags", func(t *testing.T) {
		t.Parallel()

		cli := parseWithConfig(t, strings.Join([]string{
			"db: /tmp/reports.db",
			"user_agent: custom-agent",
			"timeout: 5s",
		}, "\n"), "check", "https://example.com")

		assert.Equal(t, "/tmp/reports.db", cli.DB)
		assert.Equal(t, "custom-agent", cli.UserAgent)
		assert.Equal(t, 5*time.Second, cli.Timeout)
	})

	t.Run("reads command sections", func(t *testing.T) {
		t.Parallel()

		cli := parseWithConfig(t, strings.Join([]string{
			"serve:",
			"  addr: 0.0.0.0:8080",
			"  burst: 10",
		}, "\n"), "serve")

		assert.Equal(t, "0.0.0.0:8080", cli.Serve.Addr)
		assert.Equal(t, 10, cli.Serve.Burst)
	})

	t.Run("accepts dashed names", func(t *testing.T) {
		t.Parallel()

		cli := parseWithConfig(t, "log-format: json\n", "history")

		assert.Equal(t, "json", cli.LogFormat)
	})

	t.Run("command line overrides config", func(t *testing.T) {
		t.Parallel()

		cli := parseWithConfig(t, "user_agent: from-config\n", "--user-agent", "from-flag", "history")

		assert.Equal(t, "from-flag", cli.UserAgent)
	})

	t.Run("empty config keeps defaults", func(t *testing.T) {
		t.Parallel()

		cli := parseWithConfig(t, "", "history")

		assert.Equal(t, "default.db", cli.DB)
		assert.Equal(t, 20, cli.History.Limit)
	})

	t.Run("rejects malformed config", func(t *testing.T) {
		t.Parallel()

		_, err := main.YAML(strings.NewReader("db: [unclosed"))
		require.Error(t, err)
	})
}
