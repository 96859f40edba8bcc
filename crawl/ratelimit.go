package crawl

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/lexcrawl/lexcrawl"
	"golang.org/x/time/rate"
)

var _ lexcrawl.Pacer = (*Pacer)(nil)

// DefaultJitter is the default upper bound for the randomized delay
// added on top of token-bucket pacing.
const DefaultJitter = 75 * time.Millisecond

// Pacer spaces requests to a single endpoint using a token bucket with
// a burst of 1, plus randomized jitter so the request pattern is never
// perfectly periodic. A strictly periodic pattern is easier for the
// endpoint to classify as automated traffic and throttle.
type Pacer struct {
	limiter *rate.Limiter
	jitter  time.Duration
}

// NewPacer creates a Pacer issuing at most rps requests per second.
// jitter bounds the random extra delay per request; zero disables it.
func NewPacer(rps float64, jitter time.Duration) *Pacer {
	return &Pacer{
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		jitter:  jitter,
	}
}

// Wait blocks until the next request may be issued.
// Returns an error if the context is canceled before the wait completes.
func (p *Pacer) Wait(ctx context.Context) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return err
	}
	if p.jitter <= 0 {
		return nil
	}

	timer := time.NewTimer(rand.N(p.jitter))
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
