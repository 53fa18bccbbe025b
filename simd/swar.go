package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080

	// wideChunk is the number of bytes one unrolled iteration consumes.
	wideChunk = 32
)

// zeroBytes sets the high bit of every zero byte of x (Hacker's Delight).
// Only the lowest set bit is exact; callers must not rely on the others.
//
// Formula: (v - 0x0101010101010101) & ^v & 0x8080808080808080
func zeroBytes(x uint64) uint64 {
	return (x - lo8) & ^x & hi8
}

// broadcast replicates b into every byte of a uint64.
// Example: 0x42 -> 0x4242424242424242
func broadcast(b byte) uint64 {
	return uint64(b) * lo8
}

// firstByte converts a zeroBytes mask to the index of the first flagged byte.
func firstByte(mask uint64) int {
	return bits.TrailingZeros64(mask) / 8
}

func load(b []byte, i int) uint64 {
	return binary.LittleEndian.Uint64(b[i:])
}

// memchrSWAR searches 8 bytes at a time.
//
// Algorithm:
//  1. Broadcast needle to every byte of a uint64
//  2. XOR each 8-byte chunk with it so matching bytes become 0x00
//  3. Locate the first zero byte with zeroBytes and a trailing zero count
func memchrSWAR(haystack []byte, needle byte) int {
	m := broadcast(needle)
	i := 0
	for ; i+8 <= len(haystack); i += 8 {
		if z := zeroBytes(load(haystack, i) ^ m); z != 0 {
			return i + firstByte(z)
		}
	}
	for ; i < len(haystack); i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

func memchr2SWAR(haystack []byte, n1, n2 byte) int {
	m1, m2 := broadcast(n1), broadcast(n2)
	i := 0
	for ; i+8 <= len(haystack); i += 8 {
		chunk := load(haystack, i)
		if z := zeroBytes(chunk^m1) | zeroBytes(chunk^m2); z != 0 {
			return i + firstByte(z)
		}
	}
	for ; i < len(haystack); i++ {
		if b := haystack[i]; b == n1 || b == n2 {
			return i
		}
	}
	return -1
}

func memchr3SWAR(haystack []byte, n1, n2, n3 byte) int {
	m1, m2, m3 := broadcast(n1), broadcast(n2), broadcast(n3)
	i := 0
	for ; i+8 <= len(haystack); i += 8 {
		chunk := load(haystack, i)
		if z := zeroBytes(chunk^m1) | zeroBytes(chunk^m2) | zeroBytes(chunk^m3); z != 0 {
			return i + firstByte(z)
		}
	}
	for ; i < len(haystack); i++ {
		if b := haystack[i]; b == n1 || b == n2 || b == n3 {
			return i
		}
	}
	return -1
}

func isASCIISWAR(data []byte) bool {
	i := 0
	for ; i+8 <= len(data); i += 8 {
		if load(data, i)&hi8 != 0 {
			return false
		}
	}
	for ; i < len(data); i++ {
		if data[i] >= 0x80 {
			return false
		}
	}
	return true
}

// memchrWide tests four 8-byte words per iteration and only pinpoints the
// byte once the combined mask reports a hit. The tail goes to memchrSWAR.
func memchrWide(haystack []byte, needle byte) int {
	m := broadcast(needle)
	i := 0
	for ; i+wideChunk <= len(haystack); i += wideChunk {
		z0 := zeroBytes(load(haystack, i) ^ m)
		z1 := zeroBytes(load(haystack, i+8) ^ m)
		z2 := zeroBytes(load(haystack, i+16) ^ m)
		z3 := zeroBytes(load(haystack, i+24) ^ m)
		if z0|z1|z2|z3 != 0 {
			return i + firstInQuad(z0, z1, z2, z3)
		}
	}
	if j := memchrSWAR(haystack[i:], needle); j >= 0 {
		return i + j
	}
	return -1
}

func memchr2Wide(haystack []byte, n1, n2 byte) int {
	m1, m2 := broadcast(n1), broadcast(n2)
	match := func(c uint64) uint64 { return zeroBytes(c^m1) | zeroBytes(c^m2) }
	i := 0
	for ; i+wideChunk <= len(haystack); i += wideChunk {
		z0 := match(load(haystack, i))
		z1 := match(load(haystack, i+8))
		z2 := match(load(haystack, i+16))
		z3 := match(load(haystack, i+24))
		if z0|z1|z2|z3 != 0 {
			return i + firstInQuad(z0, z1, z2, z3)
		}
	}
	if j := memchr2SWAR(haystack[i:], n1, n2); j >= 0 {
		return i + j
	}
	return -1
}

func memchr3Wide(haystack []byte, n1, n2, n3 byte) int {
	m1, m2, m3 := broadcast(n1), broadcast(n2), broadcast(n3)
	match := func(c uint64) uint64 { return zeroBytes(c^m1) | zeroBytes(c^m2) | zeroBytes(c^m3) }
	i := 0
	for ; i+wideChunk <= len(haystack); i += wideChunk {
		z0 := match(load(haystack, i))
		z1 := match(load(haystack, i+8))
		z2 := match(load(haystack, i+16))
		z3 := match(load(haystack, i+24))
		if z0|z1|z2|z3 != 0 {
			return i + firstInQuad(z0, z1, z2, z3)
		}
	}
	if j := memchr3SWAR(haystack[i:], n1, n2, n3); j >= 0 {
		return i + j
	}
	return -1
}

func isASCIIWide(data []byte) bool {
	i := 0
	for ; i+wideChunk <= len(data); i += wideChunk {
		if (load(data, i)|load(data, i+8)|load(data, i+16)|load(data, i+24))&hi8 != 0 {
			return false
		}
	}
	return isASCIISWAR(data[i:])
}

// firstInQuad returns the byte index of the first hit across four
// consecutive 8-byte masks. At least one mask must be non-zero.
func firstInQuad(z0, z1, z2, z3 uint64) int {
	switch {
	case z0 != 0:
		return firstByte(z0)
	case z1 != 0:
		return 8 + firstByte(z1)
	case z2 != 0:
		return 16 + firstByte(z2)
	default:
		return 24 + firstByte(z3)
	}
}
