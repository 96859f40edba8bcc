// Package slog provides logging decorators for lexcrawl services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/lexcrawl/lexcrawl"
)

// Ensure Client implements lexcrawl.Client.
var _ lexcrawl.Client = (*Client)(nil)

// Client wraps a lexcrawl.Client with structured logging of each
// lookup's outcome and duration.
type Client struct {
	next   lexcrawl.Client
	logger *slog.Logger
}

// NewClient creates a new logging Client.
func NewClient(next lexcrawl.Client, logger *slog.Logger) *Client {
	return &Client{next: next, logger: logger}
}

// Complete delegates to the wrapped client and logs the outcome.
func (c *Client) Complete(ctx context.Context, prefix string) ([]string, error) {
	begin := time.Now()
	terms, err := c.next.Complete(ctx, prefix)
	if err != nil {
		c.logger.Warn("lookup failed",
			"prefix", prefix,
			"code", lexcrawl.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	c.logger.Debug("lookup",
		"prefix", prefix,
		"results", len(terms),
		"duration", time.Since(begin),
	)
	return terms, nil
}

// Requests delegates to the wrapped client.
func (c *Client) Requests() int64 {
	return c.next.Requests()
}

// Close delegates to the wrapped client.
func (c *Client) Close() error {
	return c.next.Close()
}
