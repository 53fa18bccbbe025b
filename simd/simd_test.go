package simd

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"
)

// withWide runs f once with the 8-byte loops and once with the unrolled ones.
func withWide(t *testing.T, f func(t *testing.T)) {
	t.Helper()
	saved := wide
	defer func() { wide = saved }()

	for _, w := range []bool{false, true} {
		wide = w
		t.Run(fmt.Sprintf("wide=%v", w), f)
	}
}

func TestMemchr(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   byte
		want     int
	}{
		{"empty", "", 'a', -1},
		{"single match", "a", 'a', 0},
		{"single miss", "b", 'a', -1},
		{"short", "hello", 'l', 2},
		{"word boundary", "hello world", 'o', 4},
		{"at end of chunk", "0123456x", 'x', 7},
		{"after first chunk", "01234567x", 'x', 8},
		{"in second quad word", "0123456789abcdef0123456789abcdefX", 'X', 32},
		{"long miss", string(bytes.Repeat([]byte("abc"), 50)), 'z', -1},
		{"zero byte", "ab\x00cd", 0, 2},
		{"high byte", "ab\xffcd", 0xff, 2},
	}

	withWide(t, func(t *testing.T) {
		for _, tt := range tests {
			if got := Memchr([]byte(tt.haystack), tt.needle); got != tt.want {
				t.Errorf("%s: Memchr(%q, %q) = %d, want %d", tt.name, tt.haystack, tt.needle, got, tt.want)
			}
		}
	})
}

func TestMemchr2And3(t *testing.T) {
	tests := []struct {
		haystack string
		n1, n2   byte
		n3       byte
		want2    int
		want3    int
	}{
		{"", 'a', 'b', 'c', -1, -1},
		{"xxxxxxxxxxbxxxxa", 'a', 'b', 'c', 10, 10},
		{"xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxc", 'a', 'b', 'c', -1, 37},
		{"abc", 'c', 'b', 'a', 1, 0},
	}

	withWide(t, func(t *testing.T) {
		for _, tt := range tests {
			h := []byte(tt.haystack)
			if got := Memchr2(h, tt.n1, tt.n2); got != tt.want2 {
				t.Errorf("Memchr2(%q, %q, %q) = %d, want %d", tt.haystack, tt.n1, tt.n2, got, tt.want2)
			}
			if got := Memchr3(h, tt.n1, tt.n2, tt.n3); got != tt.want3 {
				t.Errorf("Memchr3(%q, %q, %q, %q) = %d, want %d", tt.haystack, tt.n1, tt.n2, tt.n3, got, tt.want3)
			}
		}
	})
}

// TestMemchrCrossValidation compares every search against the bytes package
// on random inputs of all small lengths.
func TestMemchrCrossValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	alphabet := []byte("ab\x00\x01\x80\xff")

	withWide(t, func(t *testing.T) {
		for n := 0; n < 100; n++ {
			for trial := 0; trial < 20; trial++ {
				h := make([]byte, n)
				for i := range h {
					h[i] = alphabet[rng.Intn(len(alphabet))]
				}
				for _, c := range alphabet {
					if got, want := Memchr(h, c), bytes.IndexByte(h, c); got != want {
						t.Fatalf("Memchr(%x, %x) = %d, want %d", h, c, got, want)
					}
				}
				n1, n2, n3 := alphabet[rng.Intn(6)], alphabet[rng.Intn(6)], alphabet[rng.Intn(6)]
				if got, want := Memchr2(h, n1, n2), indexBytes(h, n1, n2); got != want {
					t.Fatalf("Memchr2(%x, %x, %x) = %d, want %d", h, n1, n2, got, want)
				}
				if got, want := Memchr3(h, n1, n2, n3), indexBytes(h, n1, n2, n3); got != want {
					t.Fatalf("Memchr3(%x, %x, %x, %x) = %d, want %d", h, n1, n2, n3, got, want)
				}
			}
		}
	})
}

func indexBytes(h []byte, needles ...byte) int {
	for i, b := range h {
		if bytes.IndexByte(needles, b) >= 0 {
			return i
		}
	}
	return -1
}

func TestIsASCII(t *testing.T) {
	long := bytes.Repeat([]byte("abcdefgh"), 20)

	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"empty", nil, true},
		{"short ascii", []byte("hello"), true},
		{"short non-ascii", []byte("héllo"), false},
		{"long ascii", long, true},
		{"long with trailing high byte", append(append([]byte{}, long...), 0x80), false},
		{"high byte in last quad word", func() []byte {
			b := append([]byte{}, long[:64]...)
			b[60] = 0xc3
			return b
		}(), false},
		{"DEL is ascii", []byte{0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f}, true},
	}

	withWide(t, func(t *testing.T) {
		for _, tt := range tests {
			if got := IsASCII(tt.data); got != tt.want {
				t.Errorf("%s: IsASCII() = %v, want %v", tt.name, got, tt.want)
			}
		}
	})
}

func TestMemmem(t *testing.T) {
	tests := []struct {
		haystack string
		needle   string
		want     int
	}{
		{"hello world", "world", 6},
		{"hello world", "xyz", -1},
		{"hello world", "", 0},
		{"", "a", -1},
		{"ab", "abc", -1},
		{"aaaaaabaaaa", "aab", 4},
		{"abcabcabd", "abd", 6},
		{"xqx", "q", 1},
		{"the quick brown fox", "quick", 4},
		{"zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzq", "zq", 40},
	}

	withWide(t, func(t *testing.T) {
		for _, tt := range tests {
			if got := Memmem([]byte(tt.haystack), []byte(tt.needle)); got != tt.want {
				t.Errorf("Memmem(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
			if idx := bytes.Index([]byte(tt.haystack), []byte(tt.needle)); idx != tt.want {
				t.Errorf("bytes.Index(%q, %q) = %d, table says %d", tt.haystack, tt.needle, idx, tt.want)
			}
		}
	})
}

func TestMemmemCrossValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 2000; trial++ {
		h := make([]byte, rng.Intn(80))
		for i := range h {
			h[i] = "abQ"[rng.Intn(3)]
		}
		needle := make([]byte, 1+rng.Intn(4))
		for i := range needle {
			needle[i] = "abQ"[rng.Intn(3)]
		}
		if got, want := Memmem(h, needle), bytes.Index(h, needle); got != want {
			t.Fatalf("Memmem(%q, %q) = %d, want %d", h, needle, got, want)
		}
	}
}

func TestRarestByte(t *testing.T) {
	b, i := rarestByte([]byte("zebra"))
	if b != 'z' || i != 0 {
		t.Errorf("rarestByte(zebra) = %q, %d; want 'z', 0", b, i)
	}
	b, i = rarestByte([]byte("the quiet"))
	if b != 'q' || i != 4 {
		t.Errorf("rarestByte(the quiet) = %q, %d; want 'q', 4", b, i)
	}
}

func BenchmarkMemchr(b *testing.B) {
	for _, size := range []int{16, 256, 4096, 65536} {
		haystack := bytes.Repeat([]byte("a"), size)
		haystack[size-1] = 'x'
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			b.SetBytes(int64(size))
			for i := 0; i < b.N; i++ {
				Memchr(haystack, 'x')
			}
		})
	}
}

func BenchmarkMemmem(b *testing.B) {
	haystack := bytes.Repeat([]byte("lorem ipsum dolor sit amet "), 1000)
	haystack = append(haystack, "needle"...)
	b.SetBytes(int64(len(haystack)))
	for i := 0; i < b.N; i++ {
		Memmem(haystack, []byte("needle"))
	}
}
