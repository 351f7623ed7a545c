package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/adrg/xdg"
	"github.com/alecthomas/kong"
	"github.com/fwojciec/linkcheck"
	"github.com/fwojciec/linkcheck/crawl"
	"github.com/fwojciec/linkcheck/goquery"
	lchttp "github.com/fwojciec/linkcheck/http"
	lcslog "github.com/fwojciec/linkcheck/slog"
	"github.com/fwojciec/linkcheck/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Overrides --db when set. Set before calling Run().
	DBPath string

	// Config file paths tried in order. Missing files are skipped.
	ConfigPaths []string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing. When nil, Run wires real ones.
	Crawler linkcheck.Crawler
	Reports linkcheck.ReportService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPaths: []string{defaultConfigPath()},
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("linkcheck"),
		kong.Description("Crawl a site and report the health of its links."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Configuration(YAML, m.ConfigPaths...),
		kong.Vars{
			"db_path":    defaultDBPath(),
			"user_agent": lchttp.DefaultUserAgent,
			"timeout":    lchttp.DefaultTimeout.String(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'linkcheck --help' to see available commands")
	}

	if first := args[0]; first == "help" || first == "--help" || first == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	deps.Logger = newLogger(stderr, cli.LogFormat, logLevel(cmd, cli.Verbose))

	if needsReports(cmd, cli) {
		reports, err := m.openReports(cli.DB, stderr)
		if err != nil {
			return err
		}
		defer m.Close()
		deps.Reports = lcslog.NewLoggingReportService(reports, deps.Logger)
	}

	if cmd == "check" || cmd == "serve" {
		crawler, err := m.newCrawler(cli, deps.Logger, stderr)
		if err != nil {
			return err
		}
		deps.Crawler = lcslog.NewLoggingCrawler(crawler, deps.Logger)
	}

	return kongCtx.Run(deps)
}

func (m *Main) openReports(path string, stderr io.Writer) (linkcheck.ReportService, error) {
	if m.Reports != nil {
		return m.Reports, nil
	}
	if m.DBPath != "" {
		path = m.DBPath
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set LINKCHECK_DB to use a different database path\n")
		return nil, fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	return sqlite.NewReportService(m.DB), nil
}

func (m *Main) newCrawler(cli *CLI, logger *slog.Logger, stderr io.Writer) (linkcheck.Crawler, error) {
	if m.Crawler != nil {
		return m.Crawler, nil
	}

	client, err := lchttp.NewClient(
		lchttp.WithUserAgent(cli.UserAgent),
		lchttp.WithTimeout(cli.Timeout),
		lchttp.WithProxy(cli.Proxy),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Check --proxy and --timeout (or LINKCHECK_PROXY, LINKCHECK_TIMEOUT)\n")
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &crawl.Crawler{
		Client:  lcslog.NewLoggingClient(client, logger),
		Anchors: goquery.NewAnchorExtractor(),
		Logger:  logger,
	}, nil
}

// needsReports reports whether cmd reads or writes saved reports.
func needsReports(cmd string, cli *CLI) bool {
	switch cmd {
	case "check":
		return cli.Check.Save
	case "serve":
		return !cli.Serve.NoSave
	default:
		return true
	}
}

// logLevel keeps one-shot commands quiet and lets the server log requests.
func logLevel(cmd string, verbose bool) slog.Level {
	switch {
	case verbose:
		return slog.LevelDebug
	case cmd == "serve":
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

func newLogger(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func defaultDBPath() string {
	return filepath.Join(xdg.DataHome, "linkcheck", "linkcheck.db")
}

func defaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "linkcheck", "config.yaml")
}
