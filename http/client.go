// Package http provides the HTTP implementation of lexcrawl.Client for
// querying the remote autocomplete endpoint.
package http

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/lexcrawl/lexcrawl"
)

// Defaults for the client's retry and transport behavior.
const (
	// DefaultTimeout bounds a single request round-trip.
	DefaultTimeout = 10 * time.Second

	// DefaultBaseDelay seeds the exponential backoff applied after a
	// throttling response.
	DefaultBaseDelay = 1500 * time.Millisecond

	// DefaultCapDelay bounds any single backoff wait.
	DefaultCapDelay = 30 * time.Second

	// DefaultMaxRetries bounds how many times a throttled request is
	// retried before the prefix is given up as skipped.
	DefaultMaxRetries = 5

	// DefaultBackoffJitter bounds the random extra delay added to each
	// backoff wait.
	DefaultBackoffJitter = 250 * time.Millisecond

	// DefaultQueryParam is the query-string parameter carrying the
	// prefix.
	DefaultQueryParam = "query"
)

// Ensure Client implements lexcrawl.Client at compile time.
var _ lexcrawl.Client = (*Client)(nil)

// Client issues autocomplete lookups over HTTP. Throttling responses
// (429 and 503) are retried with bounded exponential backoff; all other
// failures are classified transient and returned immediately, favoring
// forward progress over exhaustive correctness for a single prefix.
type Client struct {
	client     *http.Client
	endpoint   string
	queryParam string
	userAgent  string
	timeout    time.Duration
	delays     []time.Duration
	jitter     time.Duration
	requests   atomic.Int64
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithQueryParam sets the query-string parameter name for the prefix.
// Defaults to DefaultQueryParam.
func WithQueryParam(name string) Option {
	return func(c *Client) {
		c.queryParam = name
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithHTTPClient substitutes the underlying *http.Client.
// The configured timeout is ignored when this option is used.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithBackoff configures the throttle retry schedule as
// min(base*2^attempt, capDelay) for attempt 1..retries.
func WithBackoff(base, capDelay time.Duration, retries int) Option {
	return func(c *Client) {
		c.delays = BackoffSchedule(base, capDelay, retries)
	}
}

// WithRetrySchedule sets the backoff delays explicitly.
// This is useful for testing without waiting for real delays.
func WithRetrySchedule(delays []time.Duration) Option {
	return func(c *Client) {
		c.delays = delays
	}
}

// WithBackoffJitter bounds the random extra delay added to each backoff
// wait. Zero disables jitter.
func WithBackoffJitter(d time.Duration) Option {
	return func(c *Client) {
		c.jitter = d
	}
}

// NewClient creates a Client for the given endpoint URL.
// Returns an EINVALID error if the endpoint does not parse.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	if _, err := url.Parse(endpoint); err != nil || endpoint == "" {
		return nil, lexcrawl.Errorf(lexcrawl.EINVALID, "invalid endpoint URL %q", endpoint)
	}

	c := &Client{
		endpoint:   endpoint,
		queryParam: DefaultQueryParam,
		timeout:    DefaultTimeout,
		delays:     BackoffSchedule(DefaultBaseDelay, DefaultCapDelay, DefaultMaxRetries),
		jitter:     DefaultBackoffJitter,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{Timeout: c.timeout}
	}
	return c, nil
}

// BackoffSchedule precomputes the bounded exponential backoff delays:
// min(base*2^attempt, capDelay) for attempt = 1..retries.
func BackoffSchedule(base, capDelay time.Duration, retries int) []time.Duration {
	delays := make([]time.Duration, 0, retries)
	for attempt := 1; attempt <= retries; attempt++ {
		delay := base << attempt
		if delay > capDelay || delay <= 0 {
			delay = capDelay
		}
		delays = append(delays, delay)
	}
	return delays
}

// Complete returns the endpoint's suggestions for the given prefix.
// Throttling is retried through the backoff schedule as an explicit
// bounded loop; exhausting the schedule yields an ERATELIMITED error.
// Transient failures are returned without retry as EUNAVAILABLE.
func (c *Client) Complete(ctx context.Context, prefix string) ([]string, error) {
	for attempt := 0; ; attempt++ {
		terms, err := c.fetch(ctx, prefix)
		if err == nil {
			return terms, nil
		}
		if lexcrawl.ErrorCode(err) != lexcrawl.ERATELIMITED {
			return nil, err
		}
		if attempt >= len(c.delays) {
			return nil, lexcrawl.Errorf(lexcrawl.ERATELIMITED,
				"prefix %q throttled after %d attempts", prefix, attempt+1)
		}

		delay := c.delays[attempt]
		if c.jitter > 0 {
			delay += rand.N(c.jitter)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

// fetch issues a single lookup and classifies the response.
func (c *Client) fetch(ctx context.Context, prefix string) ([]string, error) {
	reqURL := c.endpoint + "?" + c.queryParam + "=" + url.QueryEscape(prefix)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, lexcrawl.Errorf(lexcrawl.EINTERNAL, "build request for prefix %q: %v", prefix, err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.requests.Add(1)
	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, lexcrawl.Errorf(lexcrawl.EUNAVAILABLE, "fetch prefix %q: %v", prefix, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusServiceUnavailable:
		return nil, lexcrawl.Errorf(lexcrawl.ERATELIMITED, "HTTP %d for prefix %q", resp.StatusCode, prefix)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, lexcrawl.Errorf(lexcrawl.EUNAVAILABLE, "HTTP %d for prefix %q", resp.StatusCode, prefix)
	}

	var terms []string
	if err := json.NewDecoder(resp.Body).Decode(&terms); err != nil {
		return nil, lexcrawl.Errorf(lexcrawl.EUNAVAILABLE, "malformed response for prefix %q: %v", prefix, err)
	}
	return terms, nil
}

// Ping verifies the endpoint is reachable. A transport-level failure
// (DNS, connection refused) is fatal for the crawl and reported as
// EINTERNAL; any HTTP response at all means the endpoint is up.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return lexcrawl.Errorf(lexcrawl.EINTERNAL, "build ping request: %v", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return lexcrawl.Errorf(lexcrawl.EINTERNAL, "endpoint unreachable: %v", err)
	}
	return resp.Body.Close()
}

// Requests returns the number of lookups issued so far, retries
// included.
func (c *Client) Requests() int64 {
	return c.requests.Load()
}

// Close releases resources. For the HTTP client this is a no-op since
// http.Client doesn't require explicit cleanup.
func (c *Client) Close() error {
	return nil
}
