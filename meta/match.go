package meta

import "fmt"

// Match is a matched span in character (rune) offsets.
//
// Start is the index of the first character of the match and Len the number
// of characters it covers. Matches reported by the engine are never empty.
//
// Example:
//
//	m := meta.Match{Start: 5, Len: 6}
//	fmt.Println(m.End()) // 11
type Match struct {
	Start int
	Len   int
}

// End returns the exclusive end offset of the match.
func (m Match) End() int {
	return m.Start + m.Len
}

// String renders the match as (start, len).
func (m Match) String() string {
	return fmt.Sprintf("(%d, %d)", m.Start, m.Len)
}
