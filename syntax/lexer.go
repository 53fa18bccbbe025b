package syntax

import "math"

// Lexer produces tokens on demand from a pattern.
//
// Position is an index into the pattern's runes. Parsers snapshot it with Pos
// and rewind with Seek when a speculative parse fails.
type Lexer struct {
	data []rune
	pos  int
}

// recognizer tries to read one multi-character token starting at the current
// position. On failure it must leave the position unchanged.
type recognizer func(l *Lexer) (Token, bool)

// complexTokens lists, per leading character, the recognizers tried in order
// before falling back to a single-character token.
var complexTokens = map[rune][]recognizer{
	'{': {lexFrom, lexTo, lexBetween},
	'[': {lexClass},
}

// simpleTokens maps single metacharacters to their token kinds.
var simpleTokens = map[rune]TokenKind{
	'*': TokenZeroOrMore,
	'+': TokenOneOrMore,
	'?': TokenOptional,
	'|': TokenOr,
	'(': TokenOpenGroup,
	')': TokenCloseGroup,
	'.': TokenAny,
}

// NewLexer creates a lexer over pattern.
func NewLexer(pattern string) *Lexer {
	return &Lexer{data: []rune(pattern)}
}

// Pos returns the current absolute position.
func (l *Lexer) Pos() int {
	return l.pos
}

// Seek moves to an absolute position previously returned by Pos.
func (l *Lexer) Seek(pos int) {
	l.pos = pos
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (Token, bool) {
	pos := l.pos
	tok, ok := l.Next()
	l.pos = pos
	return tok, ok
}

// Next consumes and returns the next token. It returns false once the input
// is exhausted, and keeps returning false on every later call.
func (l *Lexer) Next() (Token, bool) {
	l.skipWhitespace()

	c, ok := l.current()
	if !ok {
		return Token{}, false
	}

	for _, recognize := range complexTokens[c] {
		if tok, ok := recognize(l); ok {
			return tok, true
		}
	}

	l.pos++
	if kind, ok := simpleTokens[c]; ok {
		return Token{Kind: kind}, true
	}
	return Token{Kind: TokenSymbol, Char: c}, true
}

// Exhausted reports whether only ignorable whitespace remains.
func (l *Lexer) Exhausted() bool {
	_, ok := l.Peek()
	return !ok
}

func (l *Lexer) current() (rune, bool) {
	if l.pos >= len(l.data) {
		return 0, false
	}
	return l.data[l.pos], true
}

// isIgnorable reports whether c is insignificant pattern whitespace.
// The space character is deliberately absent: it is a literal.
func isIgnorable(c rune) bool {
	return c == '\t' || c == '\r' || c == '\n'
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.data) && isIgnorable(l.data[l.pos]) {
		l.pos++
	}
}

// accept consumes c (after whitespace) if it is next.
func (l *Lexer) accept(c rune) bool {
	l.skipWhitespace()
	if cur, ok := l.current(); ok && cur == c {
		l.pos++
		return true
	}
	return false
}

// number reads an unsigned decimal integer (after whitespace).
func (l *Lexer) number() (int, bool) {
	l.skipWhitespace()
	n, digits := 0, 0
	for {
		c, ok := l.current()
		if !ok || c < '0' || c > '9' {
			break
		}
		d := int(c - '0')
		if n > (math.MaxInt-d)/10 {
			return 0, false
		}
		n = n*10 + d
		digits++
		l.pos++
	}
	return n, digits > 0
}

// lexFrom recognizes {min,}.
func lexFrom(l *Lexer) (Token, bool) {
	start := l.pos
	if l.accept('{') {
		if min, ok := l.number(); ok && l.accept(',') && l.accept('}') {
			return Token{Kind: TokenFrom, Min: min}, true
		}
	}
	l.pos = start
	return Token{}, false
}

// lexTo recognizes {,max}.
func lexTo(l *Lexer) (Token, bool) {
	start := l.pos
	if l.accept('{') && l.accept(',') {
		if max, ok := l.number(); ok && l.accept('}') {
			return Token{Kind: TokenTo, Max: max}, true
		}
	}
	l.pos = start
	return Token{}, false
}

// lexBetween recognizes {min,max}.
func lexBetween(l *Lexer) (Token, bool) {
	start := l.pos
	if l.accept('{') {
		if min, ok := l.number(); ok && l.accept(',') {
			if max, ok := l.number(); ok && l.accept('}') {
				return Token{Kind: TokenBetween, Min: min, Max: max}, true
			}
		}
	}
	l.pos = start
	return Token{}, false
}

// lexClass recognizes [members] and [^members].
func lexClass(l *Lexer) (Token, bool) {
	start := l.pos
	if set, negated, ok := l.class(); ok {
		if negated {
			return Token{Kind: TokenNotSet, Set: set}, true
		}
		return Token{Kind: TokenSet, Set: set}, true
	}
	l.pos = start
	return Token{}, false
}

func (l *Lexer) class() (set []SetSymbol, negated, ok bool) {
	if !l.accept('[') {
		return nil, false, false
	}
	negated = l.accept('^')

	for {
		l.skipWhitespace()
		c, ok := l.current()
		if !ok {
			return nil, false, false
		}
		l.pos++

		switch c {
		case ']':
			if len(set) == 0 {
				return nil, false, false
			}
			return set, negated, true
		case '-':
			// A dash needs a member on both sides.
			return nil, false, false
		}

		if !l.accept('-') {
			set = append(set, Char(c))
			continue
		}

		l.skipWhitespace()
		hi, ok := l.current()
		if !ok || hi == '-' || hi == ']' {
			return nil, false, false
		}
		l.pos++
		set = append(set, Range(c, hi))
	}
}
