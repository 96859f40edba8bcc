package crawl

import (
	"sort"
	"sync"

	"github.com/lexcrawl/lexcrawl"
)

var _ lexcrawl.Accumulator = (*Accumulator)(nil)

// Accumulator is the in-memory set of discovered terms. It is purely
// additive and safe for concurrent merges from multiple in-flight
// fetches.
type Accumulator struct {
	mu    sync.Mutex
	terms map[string]struct{}
}

// NewAccumulator creates an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		terms: make(map[string]struct{}),
	}
}

// Merge adds terms to the set and returns how many were new.
// Terms already present are no-ops, so overlapping result sets from
// concurrent fetches accumulate each term exactly once.
func (a *Accumulator) Merge(terms []string) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	var added int
	for _, term := range terms {
		if _, ok := a.terms[term]; ok {
			continue
		}
		a.terms[term] = struct{}{}
		added++
	}
	return added
}

// Len returns the number of unique terms discovered so far.
func (a *Accumulator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.terms)
}

// Terms returns a sorted copy of the discovered terms.
func (a *Accumulator) Terms() []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	terms := make([]string, 0, len(a.terms))
	for term := range a.terms {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
