package crawl

// Default expansion thresholds.
const (
	// DefaultDepthThreshold is the prefix length below which any
	// non-empty result triggers expansion.
	DefaultDepthThreshold = 3

	// DefaultShallowThreshold is the prefix length at or below which a
	// result saturating the per-query cap triggers expansion.
	DefaultShallowThreshold = 2
)

// Policy decides whether a fetched prefix should be refined into child
// prefixes. The rule determines the completeness of the enumeration:
//
//  1. A non-empty result for a prefix shorter than DepthThreshold is
//     expanded unconditionally.
//  2. A result that saturates the per-query cap is expanded for
//     prefixes up to ShallowThreshold, because a capped result set may
//     hide matches only a longer prefix can reveal.
//  3. Everything else is pruned.
//
// A sub-cap result at or past DepthThreshold is never expanded, even
// though matches beyond the cap could theoretically exist if the
// endpoint's cap is probabilistic rather than exact. That risk is
// inherited from the empirical cap measurement (see ProbeCap) and is
// left visible here rather than papered over.
type Policy struct {
	// Alphabet supplies the child characters appended on expansion.
	Alphabet string

	// DepthThreshold bounds unconditional expansion of non-empty
	// results.
	DepthThreshold int

	// ShallowThreshold bounds expansion of cap-saturated results.
	ShallowThreshold int

	// ResultCap is the empirically measured per-query result cap.
	// Zero disables the saturation branch.
	ResultCap int
}

// ShouldExpand reports whether the prefix's children should be pushed
// to the frontier given the result of its fetch.
func (p *Policy) ShouldExpand(prefix string, result []string) bool {
	if len(result) == 0 {
		// Dead branch: no string in the vocabulary starts here.
		return false
	}
	if len(prefix) < p.DepthThreshold {
		return true
	}
	if p.ResultCap > 0 && len(result) >= p.ResultCap && len(prefix) <= p.ShallowThreshold {
		return true
	}
	return false
}

// Children returns the child prefixes formed by appending each alphabet
// character to the prefix.
func (p *Policy) Children(prefix string) []string {
	children := make([]string, 0, len(p.Alphabet))
	for _, c := range p.Alphabet {
		children = append(children, prefix+string(c))
	}
	return children
}

// Seeds returns the initial frontier contents: every single-character
// prefix over the alphabet.
func Seeds(alphabet string) []string {
	seeds := make([]string, 0, len(alphabet))
	for _, c := range alphabet {
		seeds = append(seeds, string(c))
	}
	return seeds
}
