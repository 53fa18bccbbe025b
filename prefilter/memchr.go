package prefilter

import (
	"fmt"

	"github.com/coregx/reginald/literal"
	"github.com/coregx/reginald/simd"
)

// byteSetPrefilter wraps simd.Memchr, Memchr2 or Memchr3 for patterns whose
// matches start with one of up to three single bytes.
//
// Example patterns:
//
//	a.*     -> search for 'a'
//	[xyz]+  -> search for 'x', 'y' or 'z'
type byteSetPrefilter struct {
	bytes []byte
}

func newByteSetPrefilter(seq *literal.Seq) *byteSetPrefilter {
	p := &byteSetPrefilter{bytes: make([]byte, seq.Len())}
	for i := range p.bytes {
		p.bytes[i] = seq.Get(i).Bytes[0]
	}
	return p
}

// Find implements Prefilter.
func (p *byteSetPrefilter) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}

	var pos int
	switch len(p.bytes) {
	case 1:
		pos = simd.Memchr(haystack[start:], p.bytes[0])
	case 2:
		pos = simd.Memchr2(haystack[start:], p.bytes[0], p.bytes[1])
	default:
		pos = simd.Memchr3(haystack[start:], p.bytes[0], p.bytes[1], p.bytes[2])
	}
	if pos < 0 {
		return -1
	}
	return start + pos
}

// String implements Prefilter.
func (p *byteSetPrefilter) String() string {
	name := "memchr"
	if len(p.bytes) > 1 {
		name = fmt.Sprintf("memchr%d", len(p.bytes))
	}
	return fmt.Sprintf("%s(%q)", name, p.bytes)
}

// memmemPrefilter wraps simd.Memmem for patterns whose matches all start
// with one substring.
//
// Example patterns:
//
//	hello         -> search for "hello"
//	get[0-9]+     -> search for "get" (common prefix of get0 ... get9)
//	(help|hello)x -> search for "hel"
type memmemPrefilter struct {
	needle []byte
}

func newMemmemPrefilter(needle []byte) *memmemPrefilter {
	b := make([]byte, len(needle))
	copy(b, needle)
	return &memmemPrefilter{needle: b}
}

// Find implements Prefilter.
func (p *memmemPrefilter) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	pos := simd.Memmem(haystack[start:], p.needle)
	if pos < 0 {
		return -1
	}
	return start + pos
}

// String implements Prefilter.
func (p *memmemPrefilter) String() string {
	return fmt.Sprintf("memmem(%q)", p.needle)
}
