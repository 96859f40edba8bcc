package mock

import (
	"context"

	"github.com/lexcrawl/lexcrawl"
)

var _ lexcrawl.SnapshotWriter = (*SnapshotWriter)(nil)

// SnapshotWriter is a mock implementation of lexcrawl.SnapshotWriter.
type SnapshotWriter struct {
	WriteSnapshotFn func(ctx context.Context, terms []string) error
}

func (w *SnapshotWriter) WriteSnapshot(ctx context.Context, terms []string) error {
	return w.WriteSnapshotFn(ctx, terms)
}

var _ lexcrawl.Checkpointer = (*Checkpointer)(nil)

// Checkpointer is a mock implementation of lexcrawl.Checkpointer.
type Checkpointer struct {
	CheckpointFn func(ctx context.Context, terms []string) error
}

func (c *Checkpointer) Checkpoint(ctx context.Context, terms []string) error {
	return c.CheckpointFn(ctx, terms)
}

var _ lexcrawl.CheckpointStore = (*CheckpointStore)(nil)

// CheckpointStore is a mock implementation of lexcrawl.CheckpointStore.
type CheckpointStore struct {
	SaveTermsFn func(ctx context.Context, terms []string) (int, error)
	TermsFn     func(ctx context.Context) ([]string, error)
	SaveRunFn   func(ctx context.Context, run *lexcrawl.RunRecord) error
}

func (s *CheckpointStore) SaveTerms(ctx context.Context, terms []string) (int, error) {
	return s.SaveTermsFn(ctx, terms)
}

func (s *CheckpointStore) Terms(ctx context.Context) ([]string, error) {
	return s.TermsFn(ctx)
}

func (s *CheckpointStore) SaveRun(ctx context.Context, run *lexcrawl.RunRecord) error {
	return s.SaveRunFn(ctx, run)
}
