package nfa

import (
	"sync"

	"github.com/coregx/reginald/internal/conv"
	"github.com/coregx/reginald/internal/sparse"
)

// Simulator executes an NFA over text without backtracking.
//
// The search is level-synchronous: each round holds every state alive at one
// input position. A round is the epsilon closure of the states reached by the
// previous round's consuming states, deduplicated with a sparse set, so a state
// is expanded at most once per position and epsilon cycles terminate.
// Worst-case cost is O(states × len(haystack)) per starting offset.
//
// Thread safety: the NFA is only read. Per-search work sets come from an
// internal sync.Pool, so a Simulator can be shared across goroutines.
type Simulator struct {
	nfa  *NFA
	pool sync.Pool
}

// SimState holds the mutable work sets of one search.
type SimState struct {
	curr  *sparse.SparseSet
	next  *sparse.SparseSet
	stack []StateID
}

// NewSimulator creates a simulator for nfa.
func NewSimulator(nfa *NFA) *Simulator {
	s := &Simulator{nfa: nfa}
	capacity := conv.IntToUint32(nfa.States())
	s.pool.New = func() any {
		return &SimState{
			curr:  sparse.NewSparseSet(capacity),
			next:  sparse.NewSparseSet(capacity),
			stack: make([]StateID, 0, 16),
		}
	}
	return s
}

// NFA returns the automaton being simulated.
func (s *Simulator) NFA() *NFA {
	return s.nfa
}

// LongestAt returns the length of the longest match starting at offset at.
// ok is false when no match, not even an empty one, starts there.
// Consuming states never match at or past the end of haystack.
func (s *Simulator) LongestAt(haystack []rune, at int) (length int, ok bool) {
	if at < 0 || at > len(haystack) {
		return 0, false
	}

	st := s.pool.Get().(*SimState)
	defer s.pool.Put(st)

	st.curr.Clear()
	s.closure(st, st.curr, s.nfa.start)

	best := -1
	for pos := at; !st.curr.IsEmpty(); pos++ {
		st.next.Clear()
		for _, v := range st.curr.Values() {
			state := &s.nfa.states[v]
			switch {
			case state.kind == StateMatch:
				best = pos
			case state.kind.IsConsuming():
				if pos < len(haystack) && state.Matches(haystack[pos]) {
					for _, succ := range state.next {
						s.closure(st, st.next, succ)
					}
				}
			}
		}
		st.curr, st.next = st.next, st.curr
	}

	if best < 0 {
		return 0, false
	}
	return best - at, true
}

// closure adds id and every state reachable from it through epsilon states
// to set. Consuming and match states are added but not expanded.
func (s *Simulator) closure(st *SimState, set *sparse.SparseSet, id StateID) {
	st.stack = append(st.stack[:0], id)
	for len(st.stack) > 0 {
		top := st.stack[len(st.stack)-1]
		st.stack = st.stack[:len(st.stack)-1]

		if !set.Insert(uint32(top)) {
			continue
		}

		state := &s.nfa.states[top]
		if state.kind != StateEpsilon {
			continue
		}
		for i := len(state.next) - 1; i >= 0; i-- {
			st.stack = append(st.stack, state.next[i])
		}
	}
}
