package prefilter

import (
	"bytes"
	"fmt"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/reginald/literal"
)

// ahoCorasickPrefilter finds the leftmost occurrence of any of several
// literals with an Aho-Corasick automaton.
//
// Example patterns:
//
//	(get|put|post)x -> search for "getx", "postx", "putx"
//	[a-d]b          -> search for "ab", "bb", "cb", "db"
//
// The automaton reports the occurrence that ends first, which is not always
// the one that starts first: with "abcd" and "bc" it reports "bc" in "abcd".
// Find re-checks the positions a longer literal could start from.
type ahoCorasickPrefilter struct {
	auto     *ahocorasick.Automaton
	literals [][]byte
	maxLen   int
}

func newAhoCorasickPrefilter(seq *literal.Seq) (*ahoCorasickPrefilter, error) {
	builder := ahocorasick.NewBuilder()
	literals := make([][]byte, seq.Len())
	for i := range literals {
		literals[i] = seq.Get(i).Bytes
		builder.AddPattern(literals[i])
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("aho-corasick: %w", err)
	}
	return &ahoCorasickPrefilter{auto: auto, literals: literals, maxLen: seq.MaxLen()}, nil
}

// Find implements Prefilter.
func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}

	// A literal starting before m.Start ends at or after m.End, so it starts
	// no earlier than m.End-maxLen.
	for i := max(start, m.End-p.maxLen); i < m.Start; i++ {
		if p.startsAt(haystack, i) {
			return i
		}
	}
	return m.Start
}

// startsAt reports whether one of the literals occurs at haystack[i:].
func (p *ahoCorasickPrefilter) startsAt(haystack []byte, i int) bool {
	for _, lit := range p.literals {
		if bytes.HasPrefix(haystack[i:], lit) {
			return true
		}
	}
	return false
}

// String implements Prefilter.
func (p *ahoCorasickPrefilter) String() string {
	return fmt.Sprintf("aho-corasick(%d patterns)", len(p.literals))
}
