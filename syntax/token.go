// Package syntax turns reginald pattern text into an abstract syntax tree.
//
// The package has two halves:
//   - Lexer: a pull-based tokenizer with Peek and Seek so the parser can
//     speculate and roll back
//   - Parser: a recursive-descent parser that builds an arena-indexed AST
//
// Pattern mini-language:
//
//	a        literal character (space included)
//	.        any character
//	(...)    grouping
//	x|y      alternation
//	* + ?    zero-or-more, one-or-more, optional
//	{m,}     at least m
//	{,n}     at most n (n > 0)
//	{m,n}    between m and n
//	[...]    character class, x-y ranges allowed
//	[^...]   negated character class
//
// Tab, carriage return and line feed are ignored anywhere in a pattern.
package syntax

import (
	"fmt"
	"strings"
)

// TokenKind identifies the kind of a lexical token.
type TokenKind uint8

const (
	// TokenSymbol is a literal character.
	TokenSymbol TokenKind = iota

	// TokenOpenGroup is '('.
	TokenOpenGroup

	// TokenCloseGroup is ')'.
	TokenCloseGroup

	// TokenZeroOrMore is '*'.
	TokenZeroOrMore

	// TokenOneOrMore is '+'.
	TokenOneOrMore

	// TokenOptional is '?'.
	TokenOptional

	// TokenOr is '|'.
	TokenOr

	// TokenFrom is '{min,}'.
	TokenFrom

	// TokenTo is '{,max}'.
	TokenTo

	// TokenBetween is '{min,max}'.
	TokenBetween

	// TokenSet is '[...]'.
	TokenSet

	// TokenNotSet is '[^...]'.
	TokenNotSet

	// TokenAny is '.'.
	TokenAny
)

// String returns a human-readable name of the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenSymbol:
		return "Symbol"
	case TokenOpenGroup:
		return "OpenGroup"
	case TokenCloseGroup:
		return "CloseGroup"
	case TokenZeroOrMore:
		return "ZeroOrMore"
	case TokenOneOrMore:
		return "OneOrMore"
	case TokenOptional:
		return "Optional"
	case TokenOr:
		return "Or"
	case TokenFrom:
		return "From"
	case TokenTo:
		return "To"
	case TokenBetween:
		return "Between"
	case TokenSet:
		return "Set"
	case TokenNotSet:
		return "NotSet"
	case TokenAny:
		return "Any"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// IsQuantifier reports whether the token kind is a repetition operator.
func (k TokenKind) IsQuantifier() bool {
	switch k {
	case TokenZeroOrMore, TokenOneOrMore, TokenOptional, TokenFrom, TokenTo, TokenBetween:
		return true
	}
	return false
}

// SetSymbol is one member of a character class: a single character or an
// inclusive range of ordinals.
type SetSymbol struct {
	Lo, Hi rune

	// IsRange distinguishes Range('a','a') written as "a-a" from Char('a').
	IsRange bool
}

// Char returns a single-character class member.
func Char(c rune) SetSymbol {
	return SetSymbol{Lo: c, Hi: c}
}

// Range returns a class member covering lo..hi inclusive.
func Range(lo, hi rune) SetSymbol {
	return SetSymbol{Lo: lo, Hi: hi, IsRange: true}
}

// Contains reports whether c is covered by the member.
func (s SetSymbol) Contains(c rune) bool {
	return s.Lo <= c && c <= s.Hi
}

// String formats the member as Char('a') or Range(98, 122).
func (s SetSymbol) String() string {
	if s.IsRange {
		return fmt.Sprintf("Range(%d, %d)", s.Lo, s.Hi)
	}
	return fmt.Sprintf("Char(%q)", s.Lo)
}

// Token is one lexical unit. Only the fields relevant to Kind are set.
type Token struct {
	Kind TokenKind

	// Char is set for TokenSymbol.
	Char rune

	// Min is set for TokenFrom and TokenBetween, Max for TokenTo and TokenBetween.
	Min, Max int

	// Set is set for TokenSet and TokenNotSet.
	Set []SetSymbol
}

// String returns a debug representation of the token.
func (t Token) String() string {
	switch t.Kind {
	case TokenSymbol:
		return fmt.Sprintf("Symbol(%q)", t.Char)
	case TokenFrom:
		return fmt.Sprintf("From(%d)", t.Min)
	case TokenTo:
		return fmt.Sprintf("To(%d)", t.Max)
	case TokenBetween:
		return fmt.Sprintf("Between(%d, %d)", t.Min, t.Max)
	case TokenSet, TokenNotSet:
		return t.Kind.String() + "([" + formatSet(t.Set) + "])"
	default:
		return t.Kind.String()
	}
}

func formatSet(set []SetSymbol) string {
	parts := make([]string, len(set))
	for i, s := range set {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}
