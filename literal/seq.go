// Package literal extracts the literal strings that every match of a pattern
// must begin with.
//
// The matcher uses them as a prefilter: positions in the input where none of
// the literals occur cannot start a non-empty match, so the automaton never
// has to be run there.
//
// Key concepts:
//   - A Literal is a concrete byte sequence a match starts with
//   - A Seq is a set of alternative literals (e.g., from alternations like foo|bar)
//   - Minimize drops literals already covered by a shorter one
package literal

import (
	"bytes"
	"sort"
	"strings"
)

// Literal represents a literal byte sequence extracted from a pattern.
// The Complete flag indicates whether this literal is an entire match
// (true) or just a prefix of potential matches (false).
//
// Example:
//   - Pattern abc -> Literal{[]byte("abc"), true}
//   - Pattern ab+ -> Literal{[]byte("ab"), false} (prefix only)
type Literal struct {
	// Bytes contains the actual literal byte sequence.
	Bytes []byte

	// Complete indicates whether this literal represents the entire match.
	Complete bool
}

// NewLiteral creates a new Literal from the given byte sequence and completeness flag.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{
		Bytes:    b,
		Complete: complete,
	}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a string representation of the literal for debugging purposes.
// Format: "literal{bytes, complete=true/false}"
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq represents a set of alternative literals that can start a match.
//
// A nil or empty Seq means nothing is known about how matches begin.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("foo"), true),
//	    literal.NewLiteral([]byte("bar"), true),
//	)
//	fmt.Printf("Sequence has %d literals\n", seq.Len()) // Output: Sequence has 2 literals
type Seq struct {
	literals []Literal
}

// NewSeq creates a new sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{
		literals: lits,
	}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at index i.
// Panics if i is out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty returns true if the sequence contains no literals.
func (s *Seq) IsEmpty() bool {
	return s.Len() == 0
}

// AllComplete reports whether every literal is an entire match.
// An empty sequence is never complete.
func (s *Seq) AllComplete() bool {
	if s.IsEmpty() {
		return false
	}
	for _, lit := range s.literals {
		if !lit.Complete {
			return false
		}
	}
	return true
}

// MaxLen returns the length of the longest literal.
func (s *Seq) MaxLen() int {
	n := 0
	for i := 0; i < s.Len(); i++ {
		if l := s.literals[i].Len(); l > n {
			n = l
		}
	}
	return n
}

// Clone returns a deep copy of the sequence.
func (s *Seq) Clone() *Seq {
	if s == nil {
		return nil
	}
	lits := make([]Literal, len(s.literals))
	for i, lit := range s.literals {
		b := make([]byte, len(lit.Bytes))
		copy(b, lit.Bytes)
		lits[i] = NewLiteral(b, lit.Complete)
	}
	return &Seq{literals: lits}
}

// MakeInexact clears the Complete flag of every literal.
func (s *Seq) MakeInexact() {
	for i := 0; i < s.Len(); i++ {
		s.literals[i].Complete = false
	}
}

// Minimize removes literals that are redundant for prefix matching.
// A literal is redundant if another literal in the set is a prefix of it,
// since any position where the longer literal occurs is also found by the
// shorter one. Exact duplicates collapse to one entry.
//
// After Minimize literals are ordered by length, then lexicographically.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("foo"), true),
//	    literal.NewLiteral([]byte("foobar"), true),
//	)
//	seq.Minimize()
//	fmt.Println(seq.Len()) // Output: 1 (only "foo" remains)
func (s *Seq) Minimize() {
	if s.IsEmpty() {
		return
	}

	sort.SliceStable(s.literals, func(i, j int) bool {
		a, b := s.literals[i].Bytes, s.literals[j].Bytes
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return bytes.Compare(a, b) < 0
	})

	kept := make([]Literal, 0, len(s.literals))
	for _, current := range s.literals {
		isRedundant := false
		for j := range kept {
			if isPrefix(kept[j].Bytes, current.Bytes) {
				isRedundant = true
				break
			}
		}
		if !isRedundant {
			kept = append(kept, current)
		}
	}

	s.literals = kept
}

// LongestCommonPrefix returns the longest common prefix of all literals in the sequence.
// If the sequence is empty or has no common prefix, returns an empty slice.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("hello"), true),
//	    literal.NewLiteral([]byte("help"), true),
//	)
//	fmt.Println(string(seq.LongestCommonPrefix())) // Output: hel
func (s *Seq) LongestCommonPrefix() []byte {
	if s.IsEmpty() {
		return []byte{}
	}

	prefix := s.literals[0].Bytes
	for i := 1; i < len(s.literals); i++ {
		prefix = commonPrefix(prefix, s.literals[i].Bytes)
		if len(prefix) == 0 {
			return []byte{}
		}
	}

	result := make([]byte, len(prefix))
	copy(result, prefix)
	return result
}

// String renders the sequence as [lit1 lit2 ...] for debugging.
func (s *Seq) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < s.Len(); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s.literals[i].String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// isPrefix returns true if prefix is a prefix of s.
func isPrefix(prefix, s []byte) bool {
	if len(prefix) > len(s) {
		return false
	}
	return bytes.Equal(prefix, s[:len(prefix)])
}

// commonPrefix returns the longest common prefix of a and b.
func commonPrefix(a, b []byte) []byte {
	minLen := min(len(a), len(b))
	for i := 0; i < minLen; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:minLen]
}
