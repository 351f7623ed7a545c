package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/linkcheck"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Crawler linkcheck.Crawler
	Reports linkcheck.ReportService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config    kong.ConfigFlag `help:"Path to a YAML config file" type:"path"`
	DB        string          `env:"LINKCHECK_DB" default:"${db_path}" help:"SQLite database path"`
	UserAgent string          `env:"LINKCHECK_USER_AGENT" default:"${user_agent}" help:"User-Agent sent with every request"`
	Timeout   time.Duration   `env:"LINKCHECK_TIMEOUT" default:"${timeout}" help:"Per-request timeout"`
	Proxy     string          `env:"LINKCHECK_PROXY" help:"HTTP proxy URL"`
	Verbose   bool            `short:"v" help:"Enable debug logging"`
	LogFormat string          `enum:"text,json" default:"text" help:"Log format (text, json)"`

	Check   CheckCmd   `cmd:"" help:"Crawl a site and check its links"`
	Serve   ServeCmd   `cmd:"" help:"Serve the crawl API over HTTP"`
	History HistoryCmd `cmd:"" help:"List saved reports"`
	Show    ShowCmd    `cmd:"" help:"Show a saved report"`
	Diff    DiffCmd    `cmd:"" help:"Compare two saved reports"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a saved report"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	URL        string `arg:"" help:"Seed URL"`
	Depth      int    `short:"d" default:"1" help:"Maximum link depth from the seed"`
	Format     string `short:"f" enum:"text,json,markdown" default:"text" help:"Output format (text, json, markdown)"`
	BrokenOnly bool   `short:"b" help:"Only list links that are not ok"`
	OutDir     string `short:"o" type:"path" help:"Write the report to a file under this directory instead of stdout"`
	Save       bool   `short:"s" help:"Save the report"`
	Fail       bool   `help:"Exit non-zero when any link is not ok"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr            string        `env:"LINKCHECK_ADDR" default:"127.0.0.1:3000" help:"Listen address"`
	Static          string        `type:"path" help:"Directory served at /"`
	Rate            float64       `default:"1" help:"Crawl requests per second per client (0 disables limiting)"`
	Burst           int           `default:"5" help:"Crawl request burst per client"`
	NoSave          bool          `help:"Do not save crawls as reports"`
	ShutdownTimeout time.Duration `default:"10s" help:"Grace period for in-flight requests on shutdown"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Seed  string `help:"Only list reports for this seed URL"`
	Limit int    `short:"n" default:"20" help:"Maximum number of reports"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID         string `arg:"" help:"Report ID"`
	Format     string `short:"f" enum:"text,json,markdown" default:"text" help:"Output format (text, json, markdown)"`
	BrokenOnly bool   `short:"b" help:"Only list links that are not ok"`
	OutDir     string `short:"o" type:"path" help:"Write the report to a file under this directory instead of stdout"`
}

// DiffCmd is the "diff" subcommand.
type DiffCmd struct {
	Old    string `arg:"" help:"Earlier report ID"`
	New    string `arg:"" help:"Later report ID"`
	Format string `short:"f" enum:"text,json" default:"text" help:"Output format (text, json)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Report ID"`
	Force bool   `help:"Confirm deletion"`
}
