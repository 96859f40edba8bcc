package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/lexcrawl/lexcrawl/config"
)

// Dependencies holds configuration and shared services for command
// execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Config *config.Config
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"C" help:"Path to YAML config file (default: .lexcrawl.yml in cwd or home)"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Crawl  CrawlCmd  `cmd:"" help:"Enumerate the endpoint's vocabulary by prefix expansion"`
	Probe  ProbeCmd  `cmd:"" help:"Measure the endpoint's per-query result cap"`
	Export ExportCmd `cmd:"" help:"Write the stored term set as a JSON snapshot"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	Endpoint          string        `arg:"" help:"Autocomplete endpoint URL"`
	Alphabet          string        `help:"Prefix alphabet"`
	QueryParam        string        `help:"Query-string parameter carrying the prefix"`
	Concurrency       int           `short:"c" help:"Concurrent fetch limit"`
	RequestsPerSecond float64       `name:"rps" help:"Request pacing in requests per second"`
	Jitter            time.Duration `help:"Upper bound for random per-request delay"`
	BaseDelay         time.Duration `help:"Base delay for throttle backoff"`
	CapDelay          time.Duration `help:"Upper bound for a single backoff wait"`
	MaxRetries        int           `help:"Throttle retries per prefix before skipping"`
	DepthThreshold    int           `help:"Prefix length below which non-empty results expand"`
	ShallowThreshold  int           `help:"Prefix length at or below which capped results expand"`
	ResultCap         int           `help:"Per-query result cap (0 = measure with startup probe)"`
	ProbeSample       int           `help:"Single-character prefixes sampled by the cap probe"`
	CheckpointEvery   int           `help:"Requests between durable checkpoints (0 disables)"`
	Timeout           time.Duration `short:"t" help:"Per-request timeout"`
	Database          string        `short:"d" help:"SQLite checkpoint database path"`
	Output            string        `short:"o" help:"JSON snapshot output path"`
}

// ProbeCmd is the "probe" subcommand.
type ProbeCmd struct {
	Endpoint    string        `arg:"" help:"Autocomplete endpoint URL"`
	Alphabet    string        `help:"Prefix alphabet"`
	QueryParam  string        `help:"Query-string parameter carrying the prefix"`
	ProbeSample int           `help:"Single-character prefixes to sample"`
	Timeout     time.Duration `short:"t" help:"Per-request timeout"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Database string `short:"d" help:"SQLite checkpoint database path"`
	Output   string `short:"o" help:"JSON snapshot output path" required:""`
}

// apply overlays the flags the user actually set onto the layered
// configuration. Zero values mean "not given" and leave the config
// untouched.
func (c *CrawlCmd) apply(cfg *config.Config) {
	cfg.Endpoint = c.Endpoint
	if c.Alphabet != "" {
		cfg.Alphabet = c.Alphabet
	}
	if c.QueryParam != "" {
		cfg.QueryParam = c.QueryParam
	}
	if c.Concurrency > 0 {
		cfg.Concurrency = c.Concurrency
	}
	if c.RequestsPerSecond > 0 {
		cfg.RequestsPerSecond = c.RequestsPerSecond
	}
	if c.Jitter > 0 {
		cfg.Jitter = c.Jitter
	}
	if c.BaseDelay > 0 {
		cfg.BaseDelay = c.BaseDelay
	}
	if c.CapDelay > 0 {
		cfg.CapDelay = c.CapDelay
	}
	if c.MaxRetries > 0 {
		cfg.MaxRetries = c.MaxRetries
	}
	if c.DepthThreshold > 0 {
		cfg.DepthThreshold = c.DepthThreshold
	}
	if c.ShallowThreshold > 0 {
		cfg.ShallowThreshold = c.ShallowThreshold
	}
	if c.ResultCap > 0 {
		cfg.ResultCap = c.ResultCap
	}
	if c.ProbeSample > 0 {
		cfg.ProbeSample = c.ProbeSample
	}
	if c.CheckpointEvery > 0 {
		cfg.CheckpointEvery = c.CheckpointEvery
	}
	if c.Timeout > 0 {
		cfg.Timeout = c.Timeout
	}
	if c.Database != "" {
		cfg.Database = c.Database
	}
	if c.Output != "" {
		cfg.Output = c.Output
	}
}
