package main

import (
	"fmt"

	"github.com/lexcrawl/lexcrawl"
	"github.com/lexcrawl/lexcrawl/bloom"
	"github.com/lexcrawl/lexcrawl/config"
	"github.com/lexcrawl/lexcrawl/crawl"
	"github.com/lexcrawl/lexcrawl/fs"
	lexhttp "github.com/lexcrawl/lexcrawl/http"
	lexslog "github.com/lexcrawl/lexcrawl/slog"
	"github.com/lexcrawl/lexcrawl/sqlite"
)

// Bloom filter sizing for the incremental checkpointer.
const (
	checkpointExpectedTerms     = 500000
	checkpointFalsePositiveRate = 0.001
)

// Run executes the crawl command: ping, cap probe, crawl, durable save,
// and JSON export.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	cfg := deps.Config
	c.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	client, err := lexhttp.NewClient(cfg.Endpoint,
		lexhttp.WithTimeout(cfg.Timeout),
		lexhttp.WithQueryParam(cfg.QueryParam),
		lexhttp.WithBackoff(cfg.BaseDelay, cfg.CapDelay, cfg.MaxRetries),
	)
	if err != nil {
		return err
	}
	defer client.Close()

	// Unreachable endpoint is fatal: no partial crawl proceeds.
	if err := client.Ping(deps.Ctx); err != nil {
		return fmt.Errorf("%s", lexcrawl.ErrorMessage(err))
	}

	logged := lexslog.NewClient(client, deps.Logger)

	resultCap := cfg.ResultCap
	if resultCap == 0 {
		measured, observed, err := crawl.ProbeCap(deps.Ctx, logged, cfg.Alphabet, cfg.ProbeSample, config.DefaultCapFallback)
		if err != nil {
			return err
		}
		if !observed {
			deps.Logger.Warn("cap probe observed no results, using fallback", "cap", measured)
		} else {
			deps.Logger.Info("cap probe", "cap", measured)
		}
		resultCap = measured
	}

	var checkpointer lexcrawl.Checkpointer
	var store *sqlite.CheckpointStore
	if cfg.Database != "" {
		db := sqlite.NewDB(cfg.Database)
		if err := db.Open(); err != nil {
			return err
		}
		defer db.Close()

		store = sqlite.NewCheckpointStore(db)
		checkpointer = lexslog.NewCheckpointer(
			bloom.NewCheckpointer(store, checkpointExpectedTerms, checkpointFalsePositiveRate),
			deps.Logger,
		)
	}

	scheduler := &crawl.Scheduler{
		Client:      logged,
		Frontier:    crawl.NewFrontier(),
		Accumulator: crawl.NewAccumulator(),
		Policy: &crawl.Policy{
			Alphabet:         cfg.Alphabet,
			DepthThreshold:   cfg.DepthThreshold,
			ShallowThreshold: cfg.ShallowThreshold,
			ResultCap:        resultCap,
		},
		Pacer:           crawl.NewPacer(cfg.RequestsPerSecond, cfg.Jitter),
		Checkpointer:    checkpointer,
		Logger:          deps.Logger,
		Concurrency:     cfg.Concurrency,
		CheckpointEvery: int64(cfg.CheckpointEvery),
	}

	result, runErr := scheduler.Run(deps.Ctx, crawl.Seeds(cfg.Alphabet))

	terms := scheduler.Accumulator.Terms()

	// The final save bypasses the incremental filter so the stored set
	// is exact even if intermediate checkpoints were skipped.
	if store != nil {
		if _, err := store.SaveTerms(deps.Ctx, terms); err != nil {
			return err
		}
		if err := store.SaveRun(deps.Ctx, &lexcrawl.RunRecord{
			Endpoint: cfg.Endpoint,
			Requests: result.Requests,
			Skipped:  result.Skipped,
			Degraded: result.Degraded,
			Terms:    result.Terms,
		}); err != nil {
			return err
		}
	}

	if cfg.Output != "" {
		writer := fs.NewSnapshotWriter(cfg.Output)
		if err := writer.WriteSnapshot(deps.Ctx, terms); err != nil {
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "discovered %d terms in %d requests (%d batches, %d skipped, %d degraded)\n",
		result.Terms, result.Requests, result.Batches, result.Skipped, result.Degraded)

	return runErr
}
