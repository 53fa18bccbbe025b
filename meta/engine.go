// Package meta implements the meta-engine orchestrator.
//
// engine.go contains the Engine struct definition and core API methods.

package meta

import (
	"sync/atomic"

	"github.com/coregx/reginald/literal"
	"github.com/coregx/reginald/nfa"
	"github.com/coregx/reginald/prefilter"
)

// Engine is the meta-engine that orchestrates pattern execution.
//
// The Engine:
//  1. Owns the compiled NFA and its simulator
//  2. Holds the prefix literals and prefilter (if any)
//  3. Runs the match policies: full match, leftmost-longest scan, boolean search
//
// Thread safety: the NFA and prefilter are immutable after compilation and
// the simulator takes per-search work sets from a sync.Pool, so multiple
// goroutines can safely call search methods on the same Engine concurrently.
//
// Example:
//
//	engine, err := meta.Compile("(foo|bar)[0-9]+")
//	if err != nil {
//	    return err
//	}
//	for _, m := range engine.FindAll("test foo123 bar4", -1) {
//	    fmt.Println(m) // (5, 6) then (12, 4)
//	}
type Engine struct {
	pattern   string
	nfa       *nfa.NFA
	sim       *nfa.Simulator
	prefixes  *literal.Seq
	prefilter prefilter.Prefilter
	strategy  Strategy
	config    Config

	stats engineStats
}

// Stats tracks execution statistics for performance analysis.
type Stats struct {
	// NFASearches counts simulator runs (one per tried start position)
	NFASearches uint64

	// PrefilterCandidates counts positions returned by the prefilter
	PrefilterCandidates uint64

	// PrefilterMisses counts prefilter candidates that did not start a match
	PrefilterMisses uint64

	// NonASCIIFallbacks counts searches that skipped the prefilter because
	// the input was not ASCII
	NonASCIIFallbacks uint64
}

type engineStats struct {
	nfaSearches         atomic.Uint64
	prefilterCandidates atomic.Uint64
	prefilterMisses     atomic.Uint64
	nonASCIIFallbacks   atomic.Uint64
}

// Strategy returns the execution strategy selected for this engine.
//
// Example:
//
//	strategy := engine.Strategy()
//	println(strategy.String()) // "UsePrefilter"
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Pattern returns the source text the engine was compiled from.
func (e *Engine) Pattern() string {
	return e.pattern
}

// NFA returns the compiled automaton.
func (e *Engine) NFA() *nfa.NFA {
	return e.nfa
}

// Prefixes returns the literals every non-empty match starts with.
// Empty when the prefilter is disabled or nothing could be extracted.
// The result is a copy and may be modified freely.
func (e *Engine) Prefixes() *literal.Seq {
	if e.prefixes == nil {
		return literal.NewSeq()
	}
	return e.prefixes.Clone()
}

// Prefilter returns the prefilter used by UsePrefilter, or nil.
func (e *Engine) Prefilter() prefilter.Prefilter {
	return e.prefilter
}

// Stats returns a snapshot of execution statistics.
//
// Example:
//
//	stats := engine.Stats()
//	println("NFA searches:", stats.NFASearches)
func (e *Engine) Stats() Stats {
	return Stats{
		NFASearches:         e.stats.nfaSearches.Load(),
		PrefilterCandidates: e.stats.prefilterCandidates.Load(),
		PrefilterMisses:     e.stats.prefilterMisses.Load(),
		NonASCIIFallbacks:   e.stats.nonASCIIFallbacks.Load(),
	}
}

// ResetStats resets execution statistics to zero.
func (e *Engine) ResetStats() {
	e.stats.nfaSearches.Store(0)
	e.stats.prefilterCandidates.Store(0)
	e.stats.prefilterMisses.Store(0)
	e.stats.nonASCIIFallbacks.Store(0)
}
