package crawl

import (
	"container/heap"
	"sync"

	"github.com/lexcrawl/lexcrawl"
)

// Compile-time interface verification.
var _ lexcrawl.Frontier = (*Frontier)(nil)

// Frontier is an in-memory prefix frontier with breadth-first ordering
// and an exact visited guard. It is safe for concurrent use by multiple
// goroutines.
//
// The guard is an exact set rather than a probabilistic filter: a false
// positive would silently prune a live branch of the prefix tree, which
// the crawl's completeness contract cannot tolerate.
type Frontier struct {
	mu    sync.Mutex
	seen  map[string]struct{}
	queue *prefixHeap
	seq   uint64
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	h := &prefixHeap{}
	heap.Init(h)
	return &Frontier{
		seen:  make(map[string]struct{}),
		queue: h,
	}
}

// Push adds a prefix to the frontier. The check against the visited
// guard and the insertion happen under one lock, so concurrent pushes
// of the same prefix admit exactly one.
// Returns false if the prefix has already been seen.
func (f *Frontier) Push(prefix string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.seen[prefix]; ok {
		return false
	}
	f.seen[prefix] = struct{}{}

	f.seq++
	heap.Push(f.queue, prefixEntry{prefix: prefix, seq: f.seq})
	return true
}

// Pop returns the next prefix in breadth-first order: shorter prefixes
// first, FIFO within a depth. The bool result is false if the frontier
// is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pop()
}

// PopBatch removes and returns up to n prefixes in breadth-first order.
func (f *Frontier) PopBatch(n int) []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	var batch []string
	for len(batch) < n {
		prefix, ok := f.pop()
		if !ok {
			break
		}
		batch = append(batch, prefix)
	}
	return batch
}

func (f *Frontier) pop() (string, bool) {
	if f.queue.Len() == 0 {
		return "", false
	}
	entry, _ := heap.Pop(f.queue).(prefixEntry)
	return entry.prefix, true
}

// Len returns the number of prefixes awaiting exploration.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queue.Len()
}

// Seen returns true if the prefix has been queued or explored.
func (f *Frontier) Seen(prefix string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.seen[prefix]
	return ok
}

// prefixEntry pairs a prefix with its enqueue sequence number.
type prefixEntry struct {
	prefix string
	seq    uint64
}

// prefixHeap implements heap.Interface ordered by (depth, sequence).
// Popping by depth first keeps the traversal breadth-first; the
// sequence number preserves FIFO order within a depth.
type prefixHeap []prefixEntry

func (h prefixHeap) Len() int { return len(h) }

func (h prefixHeap) Less(i, j int) bool {
	if len(h[i].prefix) != len(h[j].prefix) {
		return len(h[i].prefix) < len(h[j].prefix)
	}
	return h[i].seq < h[j].seq
}

func (h prefixHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *prefixHeap) Push(x any) {
	entry, _ := x.(prefixEntry)
	*h = append(*h, entry)
}

func (h *prefixHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}
