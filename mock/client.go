// Package mock provides function-field mocks of the lexcrawl service
// interfaces for use in tests.
package mock

import (
	"context"

	"github.com/lexcrawl/lexcrawl"
)

var _ lexcrawl.Client = (*Client)(nil)

// Client is a mock implementation of lexcrawl.Client.
type Client struct {
	CompleteFn func(ctx context.Context, prefix string) ([]string, error)
	RequestsFn func() int64
	CloseFn    func() error
}

func (c *Client) Complete(ctx context.Context, prefix string) ([]string, error) {
	return c.CompleteFn(ctx, prefix)
}

func (c *Client) Requests() int64 {
	return c.RequestsFn()
}

func (c *Client) Close() error {
	return c.CloseFn()
}

var _ lexcrawl.Pacer = (*Pacer)(nil)

// Pacer is a mock implementation of lexcrawl.Pacer.
type Pacer struct {
	WaitFn func(ctx context.Context) error
}

func (p *Pacer) Wait(ctx context.Context) error {
	return p.WaitFn(ctx)
}
