// Package config holds the crawl configuration surface: documented
// defaults, validation, and YAML config file loading. Nothing in the
// crawl engine hardcodes these values; everything flows through Config.
package config

import (
	"time"

	"github.com/lexcrawl/lexcrawl"
)

// Default configuration values.
const (
	// DefaultAlphabet matches the reference endpoint's vocabulary.
	// Endpoints with digits or other symbol sets override it.
	DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

	// DefaultQueryParam is the query-string parameter carrying the prefix.
	DefaultQueryParam = "query"

	// DefaultConcurrency bounds in-flight fetches. The bound keeps the
	// crawl under the endpoint's undocumented rate-limit threshold;
	// it is not about CPU parallelism.
	DefaultConcurrency = 4

	// DefaultRequestsPerSecond paces the crawl between batches.
	DefaultRequestsPerSecond = 2.0

	// DefaultJitter bounds the random extra delay per request so the
	// request pattern is never perfectly periodic.
	DefaultJitter = 75 * time.Millisecond

	// DefaultBaseDelay seeds the exponential backoff on throttling.
	DefaultBaseDelay = 1500 * time.Millisecond

	// DefaultCapDelay bounds any single backoff wait.
	DefaultCapDelay = 30 * time.Second

	// DefaultMaxRetries bounds throttle retries per prefix. Past this
	// the prefix is skipped and logged rather than aborting the crawl.
	DefaultMaxRetries = 5

	// DefaultDepthThreshold is the prefix length below which non-empty
	// results always expand.
	DefaultDepthThreshold = 3

	// DefaultShallowThreshold is the prefix length at or below which
	// cap-saturated results expand.
	DefaultShallowThreshold = 2

	// DefaultProbeSample is how many single-character prefixes the cap
	// probe queries.
	DefaultProbeSample = 8

	// DefaultCapFallback is assumed when the probe observes no results
	// at all. It matches the cap most endpoints of this kind exhibit,
	// but a measured value always wins.
	DefaultCapFallback = 10

	// DefaultCheckpointEvery hands a snapshot to the checkpointer every
	// this many requests.
	DefaultCheckpointEvery = 25

	// DefaultTimeout bounds a single request round-trip.
	DefaultTimeout = 10 * time.Second
)

// Config holds all crawl options. It is a single flat struct populated
// from defaults, an optional YAML config file, and CLI flags, then
// passed by injection rather than read from global state.
type Config struct {
	// Endpoint is the autocomplete endpoint URL.
	Endpoint string

	// QueryParam is the query-string parameter name for the prefix.
	QueryParam string

	// Alphabet supplies seed and child characters for expansion.
	Alphabet string

	// Concurrency bounds in-flight fetches per batch.
	Concurrency int

	// RequestsPerSecond paces lookups against the endpoint.
	RequestsPerSecond float64

	// Jitter bounds the random extra delay added per request.
	Jitter time.Duration

	// BaseDelay seeds the exponential throttle backoff.
	BaseDelay time.Duration

	// CapDelay bounds any single backoff wait.
	CapDelay time.Duration

	// MaxRetries bounds throttle retries per prefix.
	MaxRetries int

	// DepthThreshold bounds unconditional expansion of non-empty results.
	DepthThreshold int

	// ShallowThreshold bounds expansion of cap-saturated results.
	ShallowThreshold int

	// ResultCap is the per-query result cap. Zero means measure it with
	// the startup probe instead of assuming a value.
	ResultCap int

	// ProbeSample is how many single-character prefixes the cap probe
	// queries.
	ProbeSample int

	// CheckpointEvery is the request interval between checkpoint
	// snapshots. Zero disables periodic checkpointing.
	CheckpointEvery int

	// Timeout bounds a single request round-trip.
	Timeout time.Duration

	// Database is the SQLite checkpoint database path.
	Database string

	// Output is the JSON snapshot export path.
	Output string

	// Verbose enables debug-level logging.
	Verbose bool
}

// Default returns a Config populated with the package defaults.
func Default() *Config {
	return &Config{
		QueryParam:        DefaultQueryParam,
		Alphabet:          DefaultAlphabet,
		Concurrency:       DefaultConcurrency,
		RequestsPerSecond: DefaultRequestsPerSecond,
		Jitter:            DefaultJitter,
		BaseDelay:         DefaultBaseDelay,
		CapDelay:          DefaultCapDelay,
		MaxRetries:        DefaultMaxRetries,
		DepthThreshold:    DefaultDepthThreshold,
		ShallowThreshold:  DefaultShallowThreshold,
		ProbeSample:       DefaultProbeSample,
		CheckpointEvery:   DefaultCheckpointEvery,
		Timeout:           DefaultTimeout,
	}
}

// Validate returns an EINVALID error describing the first invalid field.
func (c *Config) Validate() error {
	switch {
	case c.Alphabet == "":
		return lexcrawl.Errorf(lexcrawl.EINVALID, "alphabet must not be empty")
	case c.Concurrency <= 0:
		return lexcrawl.Errorf(lexcrawl.EINVALID, "concurrency must be positive, got %d", c.Concurrency)
	case c.RequestsPerSecond <= 0:
		return lexcrawl.Errorf(lexcrawl.EINVALID, "requests per second must be positive, got %g", c.RequestsPerSecond)
	case c.BaseDelay <= 0:
		return lexcrawl.Errorf(lexcrawl.EINVALID, "base delay must be positive, got %s", c.BaseDelay)
	case c.CapDelay < c.BaseDelay:
		return lexcrawl.Errorf(lexcrawl.EINVALID, "cap delay %s must not be below base delay %s", c.CapDelay, c.BaseDelay)
	case c.MaxRetries < 0:
		return lexcrawl.Errorf(lexcrawl.EINVALID, "max retries must not be negative, got %d", c.MaxRetries)
	case c.DepthThreshold < 0:
		return lexcrawl.Errorf(lexcrawl.EINVALID, "depth threshold must not be negative, got %d", c.DepthThreshold)
	case c.ShallowThreshold < 0:
		return lexcrawl.Errorf(lexcrawl.EINVALID, "shallow threshold must not be negative, got %d", c.ShallowThreshold)
	case c.ResultCap < 0:
		return lexcrawl.Errorf(lexcrawl.EINVALID, "result cap must not be negative, got %d", c.ResultCap)
	case c.Jitter < 0:
		return lexcrawl.Errorf(lexcrawl.EINVALID, "jitter must not be negative, got %s", c.Jitter)
	case c.CheckpointEvery < 0:
		return lexcrawl.Errorf(lexcrawl.EINVALID, "checkpoint interval must not be negative, got %d", c.CheckpointEvery)
	}
	return nil
}
