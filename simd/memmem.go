package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Equivalent to bytes.Index. Candidates are located with Memchr on the
// needle's rarest byte (by byteRank) and then verified in full, so common
// leading bytes do not produce a flood of false candidates.
//
// Example:
//
//	pos := simd.Memmem([]byte("aaaaaabaaaa"), []byte("aab"))
//	// pos == 4
func Memmem(haystack, needle []byte) int {
	n := len(needle)

	// Empty needle matches at start (mimics bytes.Index behavior)
	if n == 0 {
		return 0
	}
	if n > len(haystack) {
		return -1
	}
	if n == 1 {
		return Memchr(haystack, needle[0])
	}

	rare, rareIdx := rarestByte(needle)

	// The rare byte can only occur at rareIdx or later for a full match.
	from := rareIdx
	last := len(haystack) - n + rareIdx
	for from <= last {
		j := Memchr(haystack[from:last+1], rare)
		if j < 0 {
			return -1
		}
		cand := from + j
		start := cand - rareIdx
		if bytes.Equal(haystack[start:start+n], needle) {
			return start
		}
		from = cand + 1
	}
	return -1
}

// rarestByte returns the byte of needle with the lowest frequency rank and
// its index. Ties go to the earliest position.
func rarestByte(needle []byte) (b byte, index int) {
	b = needle[0]
	for i := 1; i < len(needle); i++ {
		if byteRank[needle[i]] < byteRank[b] {
			b, index = needle[i], i
		}
	}
	return b, index
}

// byteRank holds empirical byte frequency ranks from English text and source
// code. Lower rank = rarer byte = better search candidate.
var byteRank = [256]byte{
	// 0x00-0x1F: control characters, tab/newline/CR slightly more common
	0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	// 0x20-0x2F: space and punctuation
	255, 60, 140, 50, 40, 35, 30, 160, 130, 130, 80, 55, 200, 140, 210, 100,
	// 0x30-0x3F: digits : ; < = > ?
	180, 190, 170, 150, 140, 140, 130, 120, 120, 120, 150, 100, 70, 160, 70, 50,
	// 0x40-0x5F: @ A-Z [ \ ] ^ _
	25, 120, 80, 90, 85, 130, 75, 70, 80, 115, 30, 35, 90, 85, 100, 105,
	80, 15, 100, 110, 115, 70, 45, 55, 20, 50, 10, 90, 60, 90, 20, 110,
	// 0x60-0x7F: ` a-z { | } ~ DEL
	30, 225, 140, 170, 165, 245, 135, 130, 150, 200, 25, 65, 175, 155, 195, 205,
	145, 15, 195, 200, 215, 150, 75, 95, 45, 120, 20, 85, 40, 85, 15, 0,
	// 0x80-0xFF: never present in the ASCII haystacks prefilters run on
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
}
