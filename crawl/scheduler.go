// Package crawl provides the prefix-expansion crawl engine: the
// frontier, the expansion policy, the request pacer, and the scheduler
// that drains the frontier with bounded concurrency until the complete
// reachable vocabulary has been enumerated.
package crawl

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/lexcrawl/lexcrawl"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds in-flight fetches. The bound exists to stay
// under the endpoint's undocumented rate-limit threshold, not for CPU
// parallelism.
const DefaultConcurrency = 4

// DefaultCheckpointEvery is the default request interval between
// snapshot handoffs to the Checkpointer.
const DefaultCheckpointEvery = 25

// Scheduler drains the frontier in discrete breadth-first batches,
// dispatching each batch's prefixes concurrently to the client and
// feeding results into the accumulator and the expansion policy.
type Scheduler struct {
	Client       lexcrawl.Client
	Frontier     lexcrawl.Frontier
	Accumulator  lexcrawl.Accumulator
	Policy       *Policy
	Pacer        lexcrawl.Pacer
	Checkpointer lexcrawl.Checkpointer
	Logger       *slog.Logger

	// Concurrency bounds in-flight fetches per batch.
	// Defaults to DefaultConcurrency.
	Concurrency int

	// CheckpointEvery hands a snapshot to the Checkpointer every this
	// many requests. Zero disables periodic checkpointing.
	CheckpointEvery int64
}

// Result holds the outcome of a crawl run.
type Result struct {
	// Requests is the total number of lookups issued, retries included.
	Requests int64

	// Terms is the number of unique terms discovered.
	Terms int

	// Skipped counts prefixes dropped after exhausting the throttle
	// retry budget.
	Skipped int

	// Degraded counts prefixes whose fetch failed transiently and was
	// treated as an empty result.
	Degraded int

	// Batches is the number of frontier batches drained.
	Batches int
}

// fetchOutcome is the per-prefix result collected from a batch worker.
type fetchOutcome struct {
	prefix string
	terms  []string
	err    error
}

// Run drains the frontier to exhaustion, starting from the given seed
// prefixes. Per-prefix failures are contained: a throttled or failing
// prefix is logged and counted, never escalated to a crawl-wide abort.
//
// Cancellation is cooperative: in-flight fetches of the current batch
// complete, draining halts, and the partial Result is returned together
// with the context error.
func (s *Scheduler) Run(ctx context.Context, seeds []string) (*Result, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	for _, seed := range seeds {
		s.Frontier.Push(seed)
	}

	res := &Result{}
	lastCheckpoint := s.Client.Requests()
	var checkpointWG sync.WaitGroup
	var checkpointing atomic.Bool

	// Termination: the frontier is empty and no fetch is in flight.
	// Every fetch has bounded retries and expansion halts once the
	// policy thresholds fail on all live branches, so the loop always
	// terminates.
	for s.Frontier.Len() > 0 {
		if err := ctx.Err(); err != nil {
			checkpointWG.Wait()
			s.finish(res, logger)
			return res, err
		}

		batch := s.Frontier.PopBatch(concurrency)
		outcomes := make([]fetchOutcome, len(batch))

		var g errgroup.Group
		g.SetLimit(concurrency)
		for i, prefix := range batch {
			g.Go(func() error {
				outcomes[i] = s.fetchOne(ctx, prefix)
				return nil
			})
		}
		_ = g.Wait()
		res.Batches++

		// Children from the whole batch are pushed only after the
		// batch completes: breadth-first, FIFO across batches.
		for i := range outcomes {
			s.handleOutcome(&outcomes[i], res, logger)
		}

		if s.Checkpointer != nil && s.CheckpointEvery > 0 {
			if reqs := s.Client.Requests(); reqs-lastCheckpoint >= s.CheckpointEvery {
				lastCheckpoint = reqs
				s.fireCheckpoint(ctx, &checkpointWG, &checkpointing, logger)
			}
		}
	}

	checkpointWG.Wait()
	s.finish(res, logger)
	return res, nil
}

// fetchOne paces, fetches, and merges the result for a single prefix.
// The merge happens here, in the worker, so concurrent fetches exercise
// the accumulator's thread safety rather than serializing through the
// coordinator.
func (s *Scheduler) fetchOne(ctx context.Context, prefix string) fetchOutcome {
	out := fetchOutcome{prefix: prefix}

	if s.Pacer != nil {
		if err := s.Pacer.Wait(ctx); err != nil {
			out.err = err
			return out
		}
	}

	terms, err := s.Client.Complete(ctx, prefix)
	if err != nil {
		out.err = err
		return out
	}
	out.terms = terms

	if len(terms) > 0 {
		s.Accumulator.Merge(terms)
	}
	return out
}

// handleOutcome classifies a worker's outcome and pushes the prefix's
// children when the policy calls for expansion. Failed fetches count as
// empty results, so they never expand.
func (s *Scheduler) handleOutcome(out *fetchOutcome, res *Result, logger *slog.Logger) {
	if out.err != nil {
		switch {
		case errors.Is(out.err, context.Canceled), errors.Is(out.err, context.DeadlineExceeded):
			// The run-level loop reports cancellation once.
		case lexcrawl.ErrorCode(out.err) == lexcrawl.ERATELIMITED:
			res.Skipped++
			logger.Warn("prefix skipped after throttle retries",
				"prefix", out.prefix,
				"error", lexcrawl.ErrorMessage(out.err),
			)
		default:
			res.Degraded++
			logger.Warn("transient fetch failure, treating result as empty",
				"prefix", out.prefix,
				"error", lexcrawl.ErrorMessage(out.err),
			)
		}
		return
	}

	if !s.Policy.ShouldExpand(out.prefix, out.terms) {
		return
	}
	for _, child := range s.Policy.Children(out.prefix) {
		s.Frontier.Push(child)
	}
}

// fireCheckpoint hands the current term snapshot to the Checkpointer
// without blocking the crawl loop. Triggers that arrive while a
// checkpoint is still in flight are dropped; the final full save makes
// up for any dropped interval.
func (s *Scheduler) fireCheckpoint(ctx context.Context, wg *sync.WaitGroup, inFlight *atomic.Bool, logger *slog.Logger) {
	if !inFlight.CompareAndSwap(false, true) {
		return
	}

	terms := s.Accumulator.Terms()
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer inFlight.Store(false)
		if err := s.Checkpointer.Checkpoint(ctx, terms); err != nil {
			logger.Warn("checkpoint failed", "terms", len(terms), "error", err)
		}
	}()
}

func (s *Scheduler) finish(res *Result, logger *slog.Logger) {
	res.Requests = s.Client.Requests()
	res.Terms = s.Accumulator.Len()
	logger.Info("crawl finished",
		"requests", res.Requests,
		"terms", res.Terms,
		"skipped", res.Skipped,
		"degraded", res.Degraded,
		"batches", res.Batches,
	)
}
