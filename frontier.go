package lexcrawl

// Frontier manages the queue of prefixes pending exploration together
// with the visited guard. Implementations must be safe for concurrent
// use: Push performs an atomic check-and-set against the guard so a
// prefix is enqueued at most once per crawl.
type Frontier interface {
	// Push adds a prefix to the frontier.
	// Returns false if the prefix has already been seen.
	Push(prefix string) bool

	// Pop returns the next prefix in breadth-first order.
	// Returns false if the frontier is empty.
	Pop() (string, bool)

	// PopBatch removes and returns up to n prefixes.
	PopBatch(n int) []string

	// Len returns the number of prefixes awaiting exploration.
	Len() int

	// Seen returns true if the prefix has been queued or explored.
	Seen(prefix string) bool
}

// Accumulator is the process-lifetime set of discovered terms.
// It is purely additive: entries are never removed and the size is
// monotonically non-decreasing. Implementations must not lose entries
// under concurrent merges from multiple in-flight fetches.
type Accumulator interface {
	// Merge adds terms to the set and returns how many were new.
	// Merging a term that is already present is a no-op.
	Merge(terms []string) int

	// Len returns the number of unique terms discovered so far.
	Len() int

	// Terms returns a sorted copy of the discovered terms. Sorting is
	// cosmetic; set membership is the only meaningful property.
	Terms() []string
}
