//go:build !amd64

package simd

// wide selects the 32-byte unrolled loops. Other architectures use the
// plain 8-byte SWAR loops.
var wide = false
