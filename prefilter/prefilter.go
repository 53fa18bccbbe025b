// Package prefilter provides fast candidate filtering for pattern search
// using extracted literal prefixes.
//
// A prefilter quickly skips positions in the haystack that cannot start a
// non-empty match, so the automaton only runs where one of the required
// prefix literals occurs.
//
// The Builder selects the strategy from the literal set:
//   - 1-3 single bytes -> Memchr, Memchr2, Memchr3
//   - literals sharing a common prefix -> Memmem on that prefix
//   - anything else -> Aho-Corasick automaton
//
// Example usage:
//
//	ast, _ := syntax.Parse("hello|world")
//	prefixes := literal.New(literal.DefaultConfig()).ExtractPrefixes(ast)
//
//	pf := prefilter.NewBuilder(prefixes).Build()
//	pos := pf.Find([]byte("foo hello bar world baz"), 0)
//	// pos == 4 (position of "hello")
package prefilter

import (
	"github.com/coregx/reginald/literal"
)

// Prefilter is used to quickly find candidate match positions before running
// the full automaton.
type Prefilter interface {
	// Find returns the index of the first position at or after start where one
	// of the prefilter literals may begin, or -1 if there is none. No position
	// before the returned one starts a literal.
	//
	// A candidate does NOT guarantee a match; the caller verifies it with the
	// automaton and resumes with Find(haystack, candidate+1) on failure.
	// start must be >= 0; start >= len(haystack) returns -1.
	Find(haystack []byte, start int) int

	// String names the strategy, for diagnostics.
	String() string
}

// Builder constructs the cheapest prefilter for a set of prefix literals.
//
// Example:
//
//	pf := prefilter.NewBuilder(prefixes).Build()
//	if pf == nil {
//	    // No prefilter available, run the automaton at every position
//	}
type Builder struct {
	prefixes *literal.Seq
}

// NewBuilder creates a new prefilter builder from extracted prefix literals.
// prefixes may be nil, meaning nothing is known about how matches start.
func NewBuilder(prefixes *literal.Seq) *Builder {
	return &Builder{prefixes: prefixes}
}

// Build constructs the best prefilter for the given literals.
//
// Returns nil when no prefilter can be built: no literals, an empty literal
// (which would accept every position), or an Aho-Corasick build failure.
func (b *Builder) Build() Prefilter {
	seq := b.prefixes
	if seq.IsEmpty() {
		return nil
	}
	for i := 0; i < seq.Len(); i++ {
		if seq.Get(i).Len() == 0 {
			return nil
		}
	}

	if seq.Len() <= 3 && seq.MaxLen() == 1 {
		return newByteSetPrefilter(seq)
	}
	// Every literal starts with the common prefix, so its occurrences are a
	// superset of the literal occurrences. For a single literal it is the
	// literal itself.
	if lcp := seq.LongestCommonPrefix(); len(lcp) > 0 {
		return newMemmemPrefilter(lcp)
	}
	pf, err := newAhoCorasickPrefilter(seq)
	if err != nil {
		return nil
	}
	return pf
}
