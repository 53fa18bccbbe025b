package nfa

import (
	"fmt"

	"github.com/coregx/reginald/internal/conv"
)

// Builder constructs NFAs incrementally using a low-level API.
// States are only ever appended and edges only ever added.
// This provides full control over NFA construction and is used by the Compiler.
type Builder struct {
	states []State
	start  StateID
}

// NewBuilder creates a new NFA builder with default capacity
func NewBuilder() *Builder {
	return NewBuilderWithCapacity(16)
}

// NewBuilderWithCapacity creates a new NFA builder with specified initial capacity
func NewBuilderWithCapacity(capacity int) *Builder {
	return &Builder{
		states: make([]State, 0, capacity),
		start:  InvalidState,
	}
}

func (b *Builder) add(s State) StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	s.id = id
	b.states = append(b.states, s)
	return id
}

// AddEpsilon adds a non-consuming state and returns its ID
func (b *Builder) AddEpsilon() StateID {
	return b.add(State{kind: StateEpsilon})
}

// AddRune adds a state consuming exactly c
func (b *Builder) AddRune(c rune) StateID {
	return b.add(State{kind: StateRune, char: c})
}

// AddAny adds a state consuming any character
func (b *Builder) AddAny() StateID {
	return b.add(State{kind: StateAny})
}

// AddClass adds a state consuming one character inside ranges, or outside
// them when negated. The ranges slice is copied to avoid aliasing issues.
func (b *Builder) AddClass(ranges []RuneRange, negated bool) StateID {
	rs := make([]RuneRange, len(ranges))
	copy(rs, ranges)
	return b.add(State{kind: StateClass, ranges: rs, negated: negated})
}

// AddMatch adds a match (accepting) state and returns its ID
func (b *Builder) AddMatch() StateID {
	return b.add(State{kind: StateMatch})
}

// AddEdge adds a transition from -> to.
// Match states cannot have outgoing edges.
func (b *Builder) AddEdge(from, to StateID) error {
	if int(from) >= len(b.states) {
		return &BuildError{
			Message: "state ID out of bounds",
			StateID: from,
		}
	}
	if int(to) >= len(b.states) {
		return &BuildError{
			Message: fmt.Sprintf("edge target %d out of bounds", to),
			StateID: from,
		}
	}

	s := &b.states[from]
	if s.kind == StateMatch {
		return &BuildError{
			Message: "match state cannot have successors",
			StateID: from,
		}
	}
	s.next = append(s.next, to)
	return nil
}

// SetStart sets the starting state for the NFA
func (b *Builder) SetStart(start StateID) {
	b.start = start
}

// States returns the current number of states
func (b *Builder) States() int {
	return len(b.states)
}

// Validate checks that the NFA is well-formed:
// - Start state is valid
// - All edges point to valid states
// - Exactly one match state exists and it has no successors
func (b *Builder) Validate() error {
	if b.start == InvalidState {
		return &BuildError{Message: "start state not set", StateID: InvalidState}
	}
	if int(b.start) >= len(b.states) {
		return &BuildError{
			Message: "start state out of bounds",
			StateID: b.start,
		}
	}

	matches := 0
	for i := range b.states {
		s := &b.states[i]
		if s.kind == StateMatch {
			matches++
			if len(s.next) != 0 {
				return &BuildError{Message: "match state has successors", StateID: s.id}
			}
		}
		for _, next := range s.next {
			if int(next) >= len(b.states) {
				return &BuildError{
					Message: fmt.Sprintf("invalid next state %d", next),
					StateID: s.id,
				}
			}
		}
	}
	if matches != 1 {
		return &BuildError{
			Message: fmt.Sprintf("expected exactly one match state, found %d", matches),
			StateID: InvalidState,
		}
	}

	return nil
}

// Build finalizes and returns the constructed NFA.
// The builder must not be used afterwards.
func (b *Builder) Build() (*NFA, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	nfa := &NFA{
		states: b.states,
		start:  b.start,
		match:  InvalidState,
	}
	for i := range nfa.states {
		if nfa.states[i].kind == StateMatch {
			nfa.match = nfa.states[i].id
		}
	}
	return nfa, nil
}
