package literal

import (
	"unicode/utf8"

	"github.com/coregx/reginald/syntax"
)

// ExtractorConfig configures literal extraction limits.
//
// These limits prevent excessive extraction from complex patterns:
//   - MaxLiterals: prevents memory bloat from alternations like (a|b|c|d|...)
//   - MaxLiteralLen: stops growing literals once they are long enough to be selective
//   - MaxClassSize: prevents expanding large character classes like [0-z]
type ExtractorConfig struct {
	// MaxLiterals limits the number of literals in any intermediate set.
	// A set that would grow past it is abandoned (or, inside a sequence,
	// frozen at its current prefixes). Default: 64.
	MaxLiterals int

	// MaxLiteralLen limits the length of each extracted literal. Default: 32.
	MaxLiteralLen int

	// MaxClassSize limits the number of characters a class may expand to.
	// Default: 16.
	MaxClassSize int

	// LegacyAtLeastZero must match the compiler setting of the same name:
	// when set, x{0,} requires at least one x.
	LegacyAtLeastZero bool
}

// DefaultConfig returns the default extractor configuration.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   64,
		MaxLiteralLen: 32,
		MaxClassSize:  16,
	}
}

// Extractor derives prefix literals from a parsed pattern.
//
// The result is sound for prefiltering: every non-empty match of the pattern
// begins with one of the returned literals. When no such set can be proven
// (leading wildcards, optional or nullable prefixes, oversized classes) the
// result is empty and the caller must not prefilter.
//
// Only ASCII characters are turned into literals, so each literal byte stands
// for exactly one character of the input.
//
// Example:
//
//	ast, _ := syntax.Parse("(hello|world)")
//	prefixes := literal.New(literal.DefaultConfig()).ExtractPrefixes(ast)
//	// prefixes = ["hello", "world"]
type Extractor struct {
	config ExtractorConfig
}

// New creates a new Extractor with the given configuration.
// Zero limits are replaced by their defaults.
func New(config ExtractorConfig) *Extractor {
	def := DefaultConfig()
	if config.MaxLiterals <= 0 {
		config.MaxLiterals = def.MaxLiterals
	}
	if config.MaxLiteralLen <= 0 {
		config.MaxLiteralLen = def.MaxLiteralLen
	}
	if config.MaxClassSize <= 0 {
		config.MaxClassSize = def.MaxClassSize
	}
	return &Extractor{config: config}
}

// ExtractPrefixes returns the minimized set of literals that every non-empty
// match of ast starts with.
//
// Handles these node kinds:
//   - Symbol: the character itself
//   - Set: one literal per member when the class is small
//   - Sequence: cross product of consecutive exact children
//   - Alternation: union of the branches, unknown if any branch is unknown
//   - +, {n,} with n >= 1, {m,n} with m >= 1: the operand's prefixes
//   - *, ?, {,n}, {0,n}, {0,}, Any and NotSet: unknown
//
// Examples:
//
//	"hello"         -> ["hello"]
//	"(foo|bar)"     -> ["bar", "foo"]
//	"[abc]x"        -> ["ax", "bx", "cx"]
//	"ab+c"          -> ["ab"]
//	".*foo"         -> [] (no prefix requirement)
func (e *Extractor) ExtractPrefixes(ast *syntax.AST) *Seq {
	if ast == nil || ast.Len() == 0 {
		return NewSeq()
	}
	seq := e.prefixes(ast, ast.Root, 0)
	if seq == nil {
		return NewSeq()
	}
	seq.Minimize()
	return seq
}

// prefixes returns the prefix set of node i, or nil when unknown.
func (e *Extractor) prefixes(ast *syntax.AST, i, depth int) *Seq {
	// Guard against excessive recursion (deeply nested patterns)
	if depth > 100 {
		return nil
	}

	node := ast.Node(i)
	for node.Kind == syntax.NodeSequence && len(node.Children) == 1 {
		node = ast.Node(node.Children[0])
	}
	switch node.Kind {
	case syntax.NodeSymbol:
		if node.Char >= utf8.RuneSelf {
			return nil
		}
		return NewSeq(NewLiteral([]byte{byte(node.Char)}, true))

	case syntax.NodeSet:
		return e.expandSet(node.Set)

	case syntax.NodeSequence:
		return e.sequence(ast, node.Children, depth)

	case syntax.NodeAlternation:
		var all []Literal
		for _, child := range node.Children {
			seq := e.prefixes(ast, child, depth+1)
			if seq == nil {
				return nil
			}
			all = append(all, seq.literals...)
			if len(all) > e.config.MaxLiterals {
				return nil
			}
		}
		return NewSeq(all...)

	case syntax.NodeOneOrMore:
		return e.inexact(ast, node.Children[0], depth)

	case syntax.NodeAtLeast:
		if node.Min == 0 && !e.config.LegacyAtLeastZero {
			return nil
		}
		return e.inexact(ast, node.Children[0], depth)

	case syntax.NodeBetween:
		if node.Min == 0 {
			return nil
		}
		return e.inexact(ast, node.Children[0], depth)

	default:
		// ZeroOrMore, Optional, AtMost can match empty; Any and NotSet
		// match too many characters.
		return nil
	}
}

// inexact returns the prefixes of node i with every literal marked
// incomplete, for repetitions that consume the node at least once.
func (e *Extractor) inexact(ast *syntax.AST, i, depth int) *Seq {
	seq := e.prefixes(ast, i, depth+1)
	if seq != nil {
		seq.MakeInexact()
	}
	return seq
}

// sequence cross-multiplies child prefix sets left to right for as long as
// every accumulated literal is complete. The first child decides whether
// anything is known at all.
func (e *Extractor) sequence(ast *syntax.AST, children []int, depth int) *Seq {
	if len(children) == 0 {
		return nil
	}
	acc := e.prefixes(ast, children[0], depth+1)
	if acc == nil {
		return nil
	}

	consumed := 1
	for _, child := range children[1:] {
		if !acc.AllComplete() || acc.MaxLen() >= e.config.MaxLiteralLen {
			break
		}
		next := e.prefixes(ast, child, depth+1)
		if next == nil || acc.Len()*next.Len() > e.config.MaxLiterals {
			break
		}
		acc = cross(acc, next)
		consumed++
	}

	if consumed < len(children) {
		acc.MakeInexact()
	}
	return acc
}

// cross returns every concatenation a+b.
func cross(a, b *Seq) *Seq {
	out := make([]Literal, 0, a.Len()*b.Len())
	for _, x := range a.literals {
		for _, y := range b.literals {
			buf := make([]byte, 0, len(x.Bytes)+len(y.Bytes))
			buf = append(buf, x.Bytes...)
			buf = append(buf, y.Bytes...)
			out = append(out, NewLiteral(buf, x.Complete && y.Complete))
		}
	}
	return NewSeq(out...)
}

// expandSet turns a small ASCII character class into one literal per member.
// Returns nil when the class is too large or reaches beyond ASCII.
func (e *Extractor) expandSet(set []syntax.SetSymbol) *Seq {
	size := 0
	for _, sym := range set {
		if sym.Lo > sym.Hi || sym.Hi >= utf8.RuneSelf {
			return nil
		}
		size += int(sym.Hi-sym.Lo) + 1
		if size > e.config.MaxClassSize {
			return nil
		}
	}

	seen := [utf8.RuneSelf]bool{}
	lits := make([]Literal, 0, size)
	for _, sym := range set {
		for c := sym.Lo; c <= sym.Hi; c++ {
			if seen[c] {
				continue
			}
			seen[c] = true
			lits = append(lits, NewLiteral([]byte{byte(c)}, true))
		}
	}
	return NewSeq(lits...)
}
