// Package meta implements the meta-engine orchestrator.
//
// search.go contains the match policies built on the simulator.

package meta

import (
	"github.com/coregx/reginald/simd"
)

// input is one search subject viewed both as characters and, when the
// prefilter can run on it, as bytes with identical offsets.
type input struct {
	runes []rune
	ascii []byte // nil unless the text is ASCII and a prefilter exists
}

func (e *Engine) newInput(text string) input {
	in := input{runes: []rune(text)}
	if e.prefilter == nil || len(text) == 0 {
		return in
	}
	b := []byte(text)
	if simd.IsASCII(b) {
		in.ascii = b
	} else {
		e.stats.nonASCIIFallbacks.Add(1)
	}
	return in
}

// IsFullMatch reports whether the whole text is one match of the pattern.
// An empty text is a full match exactly when the pattern matches the empty
// string.
//
// Example:
//
//	engine, _ := meta.Compile("a+b")
//	engine.IsFullMatch("aab")  // true
//	engine.IsFullMatch("aabc") // false
func (e *Engine) IsFullMatch(text string) bool {
	runes := []rune(text)
	e.stats.nfaSearches.Add(1)
	n, ok := e.sim.LongestAt(runes, 0)
	return ok && n == len(runes)
}

// FindAll returns up to n successive non-overlapping matches of the pattern
// in text, left to right. Each match is the longest one starting at the
// leftmost position not covered by a previous match; empty matches are never
// reported. If n < 0 all matches are returned; n == 0 returns nil.
//
// Example:
//
//	engine, _ := meta.Compile("[0-9]+")
//	engine.FindAll("a12b345", -1) // [(1, 2) (4, 3)]
func (e *Engine) FindAll(text string, n int) []Match {
	if n == 0 {
		return nil
	}
	var matches []Match
	e.scan(e.newInput(text), func(m Match) bool {
		matches = append(matches, m)
		return n < 0 || len(matches) < n
	})
	return matches
}

// Find returns the leftmost-longest non-empty match in text.
func (e *Engine) Find(text string) (Match, bool) {
	var found Match
	ok := false
	e.scan(e.newInput(text), func(m Match) bool {
		found, ok = m, true
		return false
	})
	return found, ok
}

// IsMatch reports whether text contains a non-empty match.
// The scan stops at the first one.
func (e *Engine) IsMatch(text string) bool {
	_, ok := e.Find(text)
	return ok
}

// Count returns the number of matches FindAll(text, -1) would return
// without collecting them.
func (e *Engine) Count(text string) int {
	count := 0
	e.scan(e.newInput(text), func(Match) bool {
		count++
		return true
	})
	return count
}

// scan runs the leftmost-longest, non-overlapping search and hands every
// match to yield until it returns false.
//
// At each unconsumed position the simulator reports the longest match
// starting there; a non-empty match is yielded and skipped over, otherwise
// the scan advances by one character. With a prefilter the positions
// between literal candidates are skipped without running the simulator,
// which is sound because no non-empty match can start there.
func (e *Engine) scan(in input, yield func(Match) bool) {
	n := len(in.runes)
	for i := 0; i < n; {
		if in.ascii != nil {
			c := e.prefilter.Find(in.ascii, i)
			if c < 0 {
				return
			}
			e.stats.prefilterCandidates.Add(1)
			i = c
		}

		e.stats.nfaSearches.Add(1)
		length, ok := e.sim.LongestAt(in.runes, i)
		if ok && length > 0 {
			if !yield(Match{Start: i, Len: length}) {
				return
			}
			i += length
			continue
		}
		if in.ascii != nil {
			e.stats.prefilterMisses.Add(1)
		}
		i++
	}
}
