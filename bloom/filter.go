// Package bloom provides approximate membership tracking for discovered
// terms. The incremental checkpointer uses it to avoid re-writing terms
// that were already persisted: a false positive only defers a term to
// the final full save, so the approximation never loses data.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter keyed by term.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected terms
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a term to the filter.
func (f *Filter) Add(term string) {
	f.f.AddString(term)
}

// Test returns true if the term might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(term string) bool {
	return f.f.TestString(term)
}

// EstimatedCount returns the approximate number of terms in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
