package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/lexcrawl/lexcrawl"
)

// Ensure Checkpointer implements lexcrawl.Checkpointer.
var _ lexcrawl.Checkpointer = (*Checkpointer)(nil)

// Checkpointer wraps a lexcrawl.Checkpointer with logging of each
// snapshot persistence.
type Checkpointer struct {
	next   lexcrawl.Checkpointer
	logger *slog.Logger
}

// NewCheckpointer creates a new logging Checkpointer.
func NewCheckpointer(next lexcrawl.Checkpointer, logger *slog.Logger) *Checkpointer {
	return &Checkpointer{next: next, logger: logger}
}

// Checkpoint delegates to the wrapped checkpointer and logs the outcome.
func (c *Checkpointer) Checkpoint(ctx context.Context, terms []string) error {
	begin := time.Now()
	if err := c.next.Checkpoint(ctx, terms); err != nil {
		c.logger.Warn("checkpoint failed",
			"terms", len(terms),
			"duration", time.Since(begin),
			"error", err,
		)
		return err
	}
	c.logger.Info("checkpoint",
		"terms", len(terms),
		"duration", time.Since(begin),
	)
	return nil
}
