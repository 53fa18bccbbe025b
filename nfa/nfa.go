package nfa

import (
	"fmt"
	"strings"
)

// StateID uniquely identifies an NFA state.
// This is a 32-bit unsigned integer for compact representation.
type StateID uint32

// InvalidState represents an invalid/uninitialized state ID
const InvalidState StateID = 0xFFFFFFFF

// StateKind identifies the type of NFA state and determines which fields are valid.
type StateKind uint8

const (
	// StateEpsilon forwards control to its successors without consuming input.
	StateEpsilon StateKind = iota

	// StateRune consumes one specific character.
	StateRune

	// StateAny consumes any character.
	StateAny

	// StateClass consumes one character covered (or, when negated, not
	// covered) by its ranges.
	StateClass

	// StateMatch is the single accepting state. It has no successors.
	StateMatch
)

// String returns a human-readable representation of the StateKind
func (k StateKind) String() string {
	switch k {
	case StateEpsilon:
		return "Epsilon"
	case StateRune:
		return "Rune"
	case StateAny:
		return "Any"
	case StateClass:
		return "Class"
	case StateMatch:
		return "Match"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// IsConsuming reports whether states of this kind consume one character.
func (k StateKind) IsConsuming() bool {
	return k == StateRune || k == StateAny || k == StateClass
}

// RuneRange is an inclusive range of characters [Lo, Hi].
type RuneRange struct {
	Lo, Hi rune
}

// State represents a single NFA state and its outgoing edges.
// A consuming state tests one character and, on success, continues at every
// successor one position further; an epsilon state continues at every
// successor at the same position.
type State struct {
	id   StateID
	kind StateKind

	// For Rune
	char rune

	// For Class
	ranges  []RuneRange
	negated bool

	next []StateID
}

// ID returns the state's unique identifier
func (s *State) ID() StateID {
	return s.id
}

// Kind returns the state's type
func (s *State) Kind() StateKind {
	return s.kind
}

// IsMatch returns true if this is a match state
func (s *State) IsMatch() bool {
	return s.kind == StateMatch
}

// Next returns the successor states. The slice must not be modified.
func (s *State) Next() []StateID {
	return s.next
}

// Rune returns the character consumed by a Rune state.
func (s *State) Rune() rune {
	return s.char
}

// Class returns the ranges of a Class state and whether they are negated.
// Returns (nil, false) for other kinds.
func (s *State) Class() (ranges []RuneRange, negated bool) {
	if s.kind == StateClass {
		return s.ranges, s.negated
	}
	return nil, false
}

// Matches reports whether a consuming state accepts c.
// Non-consuming states never match.
func (s *State) Matches(c rune) bool {
	switch s.kind {
	case StateRune:
		return c == s.char
	case StateAny:
		return true
	case StateClass:
		for _, r := range s.ranges {
			if r.Lo <= c && c <= r.Hi {
				return !s.negated
			}
		}
		return s.negated
	default:
		return false
	}
}

// label renders the state payload for debug output.
func (s *State) label() string {
	switch s.kind {
	case StateRune:
		return fmt.Sprintf("%q", s.char)
	case StateClass:
		var sb strings.Builder
		sb.WriteByte('[')
		if s.negated {
			sb.WriteByte('^')
		}
		for _, r := range s.ranges {
			if r.Lo == r.Hi {
				sb.WriteRune(r.Lo)
			} else {
				sb.WriteRune(r.Lo)
				sb.WriteByte('-')
				sb.WriteRune(r.Hi)
			}
		}
		sb.WriteByte(']')
		return sb.String()
	default:
		return s.kind.String()
	}
}

// String returns a human-readable representation of the state
func (s *State) String() string {
	return fmt.Sprintf("State(%d, %s -> %v)", s.id, s.label(), s.next)
}

// NFA represents a compiled Thompson NFA as an arena of states addressed by
// StateID. The graph is generally cyclic and states with several predecessors
// are shared; IDs are never reused or removed once built.
//
// An NFA is immutable after Build and safe for concurrent reads.
type NFA struct {
	// states contains all NFA states indexed by StateID
	states []State

	// start is the entry state; match is the single accepting state
	start StateID
	match StateID
}

// Start returns the starting state ID of the NFA
func (n *NFA) Start() StateID {
	return n.start
}

// MatchState returns the ID of the accepting state.
func (n *NFA) MatchState() StateID {
	return n.match
}

// State returns the state with the given ID.
// Returns nil if the ID is invalid.
func (n *NFA) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(n.states) {
		return nil
	}
	return &n.states[id]
}

// IsMatch returns true if the given state is a match state
func (n *NFA) IsMatch(id StateID) bool {
	if s := n.State(id); s != nil {
		return s.IsMatch()
	}
	return false
}

// States returns the total number of states in the NFA
func (n *NFA) States() int {
	return len(n.states)
}

// Iter returns an iterator over all states in the NFA
func (n *NFA) Iter() *StateIter {
	return &StateIter{
		nfa: n,
		pos: 0,
	}
}

// StateIter is an iterator over NFA states
type StateIter struct {
	nfa *NFA
	pos int
}

// Next returns the next state in the iteration.
// Returns nil when iteration is complete.
func (it *StateIter) Next() *State {
	if it.pos >= len(it.nfa.states) {
		return nil
	}
	s := &it.nfa.states[it.pos]
	it.pos++
	return s
}

// HasNext returns true if there are more states to iterate
func (it *StateIter) HasNext() bool {
	return it.pos < len(it.nfa.states)
}

// String returns a human-readable representation of the NFA
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, start: %d, match: %d}", len(n.states), n.start, n.match)
}

// Mermaid renders the state graph as a mermaid flowchart, one node per state
// and one arrow per edge.
func (n *NFA) Mermaid() string {
	var sb strings.Builder
	sb.WriteString("flowchart LR\n")
	for i := range n.states {
		s := &n.states[i]
		fmt.Fprintf(&sb, "\t%d(%q)\n", s.id, s.label())
		for _, next := range s.next {
			fmt.Fprintf(&sb, "\t%d-->%d\n", s.id, next)
		}
	}
	return sb.String()
}
