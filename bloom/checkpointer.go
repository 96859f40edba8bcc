package bloom

import (
	"context"
	"sync"

	"github.com/lexcrawl/lexcrawl"
)

var _ lexcrawl.Checkpointer = (*Checkpointer)(nil)

// Checkpointer filters periodic snapshots down to terms that have not
// been persisted yet before handing them to the store. Without it every
// checkpoint would re-write the entire term set.
//
// The filter is approximate: a false positive defers a term past the
// current interval, and the crawl's final full save (which bypasses
// this filter) persists it. Terms are added to the filter only after a
// successful save so a failed checkpoint retries the same terms at the
// next interval.
type Checkpointer struct {
	mu    sync.Mutex
	seen  *Filter
	store lexcrawl.CheckpointStore
}

// NewCheckpointer creates a Checkpointer in front of store, sized for n
// expected terms with the given false positive rate.
func NewCheckpointer(store lexcrawl.CheckpointStore, n uint, fpRate float64) *Checkpointer {
	return &Checkpointer{
		seen:  NewFilter(n, fpRate),
		store: store,
	}
}

// Checkpoint persists the terms from the snapshot that are not yet in
// the filter.
func (c *Checkpointer) Checkpoint(ctx context.Context, terms []string) error {
	c.mu.Lock()
	fresh := make([]string, 0, len(terms))
	for _, term := range terms {
		if c.seen.Test(term) {
			continue
		}
		fresh = append(fresh, term)
	}
	c.mu.Unlock()

	if len(fresh) == 0 {
		return nil
	}
	if _, err := c.store.SaveTerms(ctx, fresh); err != nil {
		return err
	}

	c.mu.Lock()
	for _, term := range fresh {
		c.seen.Add(term)
	}
	c.mu.Unlock()
	return nil
}
