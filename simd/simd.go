// Package simd provides fast byte searching primitives used by the
// prefilters.
//
// All routines are pure Go and use SWAR (SIMD Within A Register): eight bytes
// are tested at once with uint64 arithmetic. On CPUs that report AVX2 the
// search loops are unrolled to consume 32 bytes per iteration, which keeps
// the wide load and store units busy on those cores.
package simd

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Equivalent to bytes.IndexByte.
//
// Example:
//
//	pos := simd.Memchr([]byte("hello world"), 'o')
//	// pos == 4
func Memchr(haystack []byte, needle byte) int {
	if wide && len(haystack) >= wideChunk {
		return memchrWide(haystack, needle)
	}
	return memchrSWAR(haystack, needle)
}

// Memchr2 returns the index of the first instance of either needle1 or needle2
// in haystack, or -1 if neither is present.
//
// The function returns the position of whichever needle appears first.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	if wide && len(haystack) >= wideChunk {
		return memchr2Wide(haystack, needle1, needle2)
	}
	return memchr2SWAR(haystack, needle1, needle2)
}

// Memchr3 returns the index of the first instance of needle1, needle2, or
// needle3 in haystack, or -1 if none are present.
func Memchr3(haystack []byte, needle1, needle2, needle3 byte) int {
	if wide && len(haystack) >= wideChunk {
		return memchr3Wide(haystack, needle1, needle2, needle3)
	}
	return memchr3SWAR(haystack, needle1, needle2, needle3)
}

// IsASCII checks if all bytes in the slice are ASCII (< 0x80).
//
// The matcher uses it to decide whether byte offsets in a haystack equal
// character offsets, which is what allows byte-level prefilters to run.
//
// Example:
//
//	simd.IsASCII([]byte("hello"))  // true
//	simd.IsASCII([]byte("héllo"))  // false
func IsASCII(data []byte) bool {
	if wide && len(data) >= wideChunk {
		return isASCIIWide(data)
	}
	return isASCIISWAR(data)
}
