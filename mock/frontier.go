package mock

import "github.com/lexcrawl/lexcrawl"

var _ lexcrawl.Frontier = (*Frontier)(nil)

// Frontier is a mock implementation of lexcrawl.Frontier.
type Frontier struct {
	PushFn     func(prefix string) bool
	PopFn      func() (string, bool)
	PopBatchFn func(n int) []string
	LenFn      func() int
	SeenFn     func(prefix string) bool
}

func (f *Frontier) Push(prefix string) bool {
	return f.PushFn(prefix)
}

func (f *Frontier) Pop() (string, bool) {
	return f.PopFn()
}

func (f *Frontier) PopBatch(n int) []string {
	return f.PopBatchFn(n)
}

func (f *Frontier) Len() int {
	return f.LenFn()
}

func (f *Frontier) Seen(prefix string) bool {
	return f.SeenFn(prefix)
}

var _ lexcrawl.Accumulator = (*Accumulator)(nil)

// Accumulator is a mock implementation of lexcrawl.Accumulator.
type Accumulator struct {
	MergeFn func(terms []string) int
	LenFn   func() int
	TermsFn func() []string
}

func (a *Accumulator) Merge(terms []string) int {
	return a.MergeFn(terms)
}

func (a *Accumulator) Len() int {
	return a.LenFn()
}

func (a *Accumulator) Terms() []string {
	return a.TermsFn()
}
