//go:build amd64

package simd

import "golang.org/x/sys/cpu"

// wide selects the 32-byte unrolled loops.
// AVX2 was introduced in Intel Haswell (2013) and AMD Excavator (2015).
var wide = cpu.X86.HasAVX2
