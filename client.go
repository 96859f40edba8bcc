package lexcrawl

import "context"

// Client issues single lookups against the remote autocomplete endpoint.
// Implementations own per-call retry and backoff state; a call returns
// only once a result or a final classified failure has been obtained.
type Client interface {
	// Complete returns the endpoint's suggestions for the given prefix.
	// The slice may be empty and its length may be capped by the
	// endpoint at an unknown constant.
	//
	// Errors carry an application code: ERATELIMITED when the retry
	// budget for throttling responses was exhausted, EUNAVAILABLE for
	// transient failures that are not retried.
	Complete(ctx context.Context, prefix string) ([]string, error)

	// Requests returns the number of lookups issued so far, including
	// retries. The count is approximate under concurrency and drives
	// diagnostics and checkpoint cadence only.
	Requests() int64

	// Close releases client resources.
	Close() error
}

// Pacer spaces requests to keep the crawl under the endpoint's
// undocumented rate-limit threshold.
type Pacer interface {
	// Wait blocks until the next request may be issued.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context) error
}
