package lexcrawl

import "context"

// SnapshotWriter exports the accumulated term set to an output target.
// Term order in the export is not semantically meaningful.
type SnapshotWriter interface {
	WriteSnapshot(ctx context.Context, terms []string) error
}

// Checkpointer receives periodic snapshots of the term set during a
// crawl for durable persistence. Checkpointing is best-effort: the
// scheduler fires it without blocking the crawl loop, and a failed or
// skipped checkpoint is recovered by the final full save.
type Checkpointer interface {
	Checkpoint(ctx context.Context, terms []string) error
}

// RunRecord is the audit row persisted for one crawl run.
type RunRecord struct {
	ID       string
	Endpoint string
	Requests int64
	Skipped  int
	Degraded int
	Terms    int
}

// CheckpointStore persists discovered terms and crawl-run audit
// records. Term persistence is idempotent: saving a term that already
// exists is a no-op, which makes at-least-once crawl issuance safe.
type CheckpointStore interface {
	// SaveTerms inserts terms, ignoring ones already stored.
	// Returns the number of newly inserted terms.
	SaveTerms(ctx context.Context, terms []string) (int, error)

	// Terms returns all stored terms in lexical order.
	Terms(ctx context.Context) ([]string, error)

	// SaveRun records the outcome of a crawl run.
	SaveRun(ctx context.Context, run *RunRecord) error
}
