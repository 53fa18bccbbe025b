// Package reginald provides a small regular expression engine for Go.
//
// Patterns are compiled to a Thompson NFA and matched by simulating all
// threads in lock step, so matching time is bounded by
// O(states × text length) per starting offset and never backtracks.
//
// The pattern language is deliberately small:
//   - literal characters and . (any character)
//   - ( ) grouping and | alternation
//   - *, +, ? and the bounded forms {m,}, {,n}, {m,n}
//   - [...] and [^...] classes with x-y ranges
//
// Tab, CR and LF are ignored anywhere in a pattern; space is a literal.
// There is no escape syntax, no anchors and no capture groups.
//
// All offsets reported by the API are character (rune) offsets, not byte
// offsets.
//
// Basic usage:
//
//	re, err := reginald.Compile("a+(b|c)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, m := range re.Matches("aaaab ab ac") {
//	    fmt.Println(m.Start, m.Len)
//	}
//
// Matching is leftmost-longest: the scan tries each starting position from
// left to right, takes the longest match there and resumes after it. Empty
// matches are never reported.
package reginald

import (
	"strings"

	"github.com/coregx/reginald/meta"
)

// Regex represents a compiled regular expression.
//
// A Regex is immutable and safe to use concurrently from multiple
// goroutines.
type Regex struct {
	engine  *meta.Engine
	pattern string
}

// Match is a matched span: Start and Len in characters.
type Match = meta.Match

// Config tunes compilation. See DefaultConfig.
type Config = meta.Config

// Compile compiles a regular expression pattern.
//
// Returns a *meta.CompileError wrapping a *syntax.Error if the pattern is
// malformed.
//
// Example:
//
//	re, err := reginald.Compile("a{1,}c{,1}d{2,3}")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles a regular expression pattern and panics if it fails.
//
// Example:
//
//	var word = reginald.MustCompile("[a-z]+")
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("regexp: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := reginald.DefaultConfig()
//	config.EnablePrefilter = false // NFA only
//	re, err := reginald.CompileWithConfig("(foo|bar)+", config)
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}

	return &Regex{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// DefaultConfig returns the default configuration for compilation.
func DefaultConfig() Config {
	return meta.DefaultConfig()
}

// Test reports whether the whole of s matches the pattern.
//
// Example:
//
//	re := reginald.MustCompile("a{2,3}")
//	re.Test("aa")   // true
//	re.Test("aaaa") // false
func (r *Regex) Test(s string) bool {
	return r.engine.IsFullMatch(s)
}

// Matches returns every leftmost-longest, non-overlapping match in s, in
// order. Returns nil if there is none.
//
// Example:
//
//	re := reginald.MustCompile("a+(b|c)")
//	re.Matches("aaaab ab") // [(0, 5) (6, 2)]
func (r *Regex) Matches(s string) []Match {
	return r.engine.FindAll(s, -1)
}

// IsMatch reports whether s contains any non-empty match of the pattern.
func (r *Regex) IsMatch(s string) bool {
	return r.engine.IsMatch(s)
}

// Find returns the first match in s.
// The boolean is false if s contains no match.
func (r *Regex) Find(s string) (Match, bool) {
	return r.engine.Find(s)
}

// FindString returns the text of the first match in s.
// Returns empty string if no match is found.
//
// Example:
//
//	re := reginald.MustCompile("[0-9]+")
//	re.FindString("age: 42") // "42"
func (r *Regex) FindString(s string) string {
	m, ok := r.engine.Find(s)
	if !ok {
		return ""
	}
	runes := []rune(s)
	return string(runes[m.Start:m.End()])
}

// FindAllString returns the text of all successive matches in s.
// If n >= 0, it returns at most n matches. If n < 0, it returns all matches.
func (r *Regex) FindAllString(s string, n int) []string {
	matches := r.engine.FindAll(s, n)
	if matches == nil {
		return nil
	}

	runes := []rune(s)
	result := make([]string, len(matches))
	for i, m := range matches {
		result[i] = string(runes[m.Start:m.End()])
	}
	return result
}

// ReplaceAllString returns a copy of src with every match replaced by repl.
// repl is inserted literally.
//
// Example:
//
//	re := reginald.MustCompile("a+")
//	re.ReplaceAllString("baaab", "-") // "b-b"
func (r *Regex) ReplaceAllString(src, repl string) string {
	matches := r.engine.FindAll(src, -1)
	if len(matches) == 0 {
		return src
	}

	runes := []rune(src)
	var b strings.Builder
	b.Grow(len(src))
	last := 0
	for _, m := range matches {
		b.WriteString(string(runes[last:m.Start]))
		b.WriteString(repl)
		last = m.End()
	}
	b.WriteString(string(runes[last:]))
	return b.String()
}

// String returns the source text used to compile the regular expression.
func (r *Regex) String() string {
	return r.pattern
}

// Graph renders the compiled automaton as a Mermaid flowchart.
func (r *Regex) Graph() string {
	return r.engine.NFA().Mermaid()
}

// Stats returns the engine's search counters.
func (r *Regex) Stats() meta.Stats {
	return r.engine.Stats()
}
