package syntax

// Parse parses a pattern into an AST.
//
// Grammar, from the root down:
//
//	regex         := alternation | concatenation
//	alternation   := concatenation ('|' concatenation)+
//	concatenation := value+
//	value         := atom quantifier?
//	atom          := Symbol | Set | NotSet | Any | '(' regex ')'
//	quantifier    := '*' | '+' | '?' | From | To | Between
//
// When the top level is an alternation the root is a single-child sequence
// wrapping it; otherwise the root is the concatenation's sequence node.
//
// The whole input must be consumed; leftover tokens are reported as
// ErrUnknownSymbol. Repetition bounds and class ranges are validated while
// parsing and fail the parse immediately.
func Parse(pattern string) (*AST, error) {
	p := &parser{
		lex:     NewLexer(pattern),
		pattern: pattern,
		failPos: -1,
	}

	root, ok, err := p.parseRegex()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, p.errorf(p.failMsg)
	}
	if !p.lex.Exhausted() {
		return nil, p.errorf(ErrUnknownSymbol)
	}

	return &AST{Nodes: p.nodes, Root: root}, nil
}

// parser holds the in-progress arena. Every parse function returns
// (index, ok, err): ok == false is a soft failure that the caller may
// recover from, err != nil aborts the whole parse.
type parser struct {
	lex     *Lexer
	pattern string
	nodes   []Node

	// failMsg is the soft failure recorded furthest into the input.
	failPos int
	failMsg string
}

// snapshot is the rollback point for a speculative parse.
type snapshot struct {
	pos  int
	size int
}

func (p *parser) snapshot() snapshot {
	return snapshot{pos: p.lex.Pos(), size: len(p.nodes)}
}

// restore rewinds the lexer and drops every node inserted since s.
func (p *parser) restore(s snapshot) {
	p.lex.Seek(s.pos)
	p.nodes = p.nodes[:s.size]
}

func (p *parser) push(n Node) int {
	p.nodes = append(p.nodes, n)
	return len(p.nodes) - 1
}

func (p *parser) fail(msg string) {
	if pos := p.lex.Pos(); pos >= p.failPos {
		p.failPos = pos
		p.failMsg = msg
	}
}

func (p *parser) errorf(msg string) *Error {
	return &Error{Msg: msg, Expr: p.pattern}
}

// parseRegex parses an alternation, or a plain concatenation when fewer than
// two branches are present.
//
// The first branch is parsed once: a failed alternation attempt would roll back
// to the start and re-parse the same concatenation, so rolling back to the end
// of the first branch is equivalent and keeps nested groups linear.
func (p *parser) parseRegex() (int, bool, error) {
	first, ok, err := p.parseConcatenation()
	if err != nil || !ok {
		return 0, ok, err
	}

	afterFirst := p.snapshot()
	children := []int{first}
	for {
		tok, ok := p.lex.Peek()
		if !ok || tok.Kind != TokenOr {
			break
		}
		p.lex.Next()

		branch, ok, err := p.parseConcatenation()
		if err != nil {
			return 0, false, err
		}
		if !ok {
			p.restore(afterFirst)
			return first, true, nil
		}
		children = append(children, branch)
	}

	if len(children) == 1 {
		return first, true, nil
	}

	alt := p.push(Node{Kind: NodeAlternation, Children: children})
	return p.push(Node{Kind: NodeSequence, Children: []int{alt}}), true, nil
}

func (p *parser) parseConcatenation() (int, bool, error) {
	first, ok, err := p.parseValue()
	if err != nil || !ok {
		return 0, ok, err
	}

	children := []int{first}
	for {
		child, ok, err := p.parseValue()
		if err != nil {
			return 0, false, err
		}
		if !ok {
			break
		}
		children = append(children, child)
	}

	return p.push(Node{Kind: NodeSequence, Children: children}), true, nil
}

func (p *parser) parseValue() (int, bool, error) {
	s := p.snapshot()

	atom, ok, err := p.parseAtom()
	if err != nil {
		return 0, false, err
	}
	if !ok {
		p.restore(s)
		return 0, false, nil
	}

	tok, ok := p.lex.Peek()
	if !ok || !tok.Kind.IsQuantifier() {
		return atom, true, nil
	}
	p.lex.Next()

	node := Node{Children: []int{atom}, Min: tok.Min, Max: tok.Max}
	switch tok.Kind {
	case TokenZeroOrMore:
		node.Kind = NodeZeroOrMore
	case TokenOneOrMore:
		node.Kind = NodeOneOrMore
	case TokenOptional:
		node.Kind = NodeOptional
	case TokenFrom:
		node.Kind = NodeAtLeast
	case TokenTo:
		if tok.Max == 0 {
			return 0, false, p.errorf(ErrRepeatMaxZero)
		}
		node.Kind = NodeAtMost
	case TokenBetween:
		if tok.Min > tok.Max {
			return 0, false, p.errorf(ErrRepeatMinAboveMax)
		}
		if tok.Max == 0 {
			return 0, false, p.errorf(ErrRepeatMaxZero)
		}
		node.Kind = NodeBetween
	}

	return p.push(node), true, nil
}

func (p *parser) parseAtom() (int, bool, error) {
	tok, ok := p.lex.Peek()
	if !ok {
		p.fail(ErrUnexpectedEnd)
		return 0, false, nil
	}

	switch tok.Kind {
	case TokenSymbol:
		p.lex.Next()
		return p.push(Node{Kind: NodeSymbol, Char: tok.Char}), true, nil
	case TokenAny:
		p.lex.Next()
		return p.push(Node{Kind: NodeAny}), true, nil
	case TokenSet, TokenNotSet:
		if err := p.checkClass(tok.Set); err != nil {
			return 0, false, err
		}
		p.lex.Next()
		kind := NodeSet
		if tok.Kind == TokenNotSet {
			kind = NodeNotSet
		}
		return p.push(Node{Kind: kind, Set: tok.Set}), true, nil
	case TokenOpenGroup:
		return p.parseGroup()
	case TokenCloseGroup:
		p.fail(ErrUnexpectedParen)
	case TokenOr:
		p.fail(ErrMissingAlternative)
	default:
		p.fail(ErrMissingRepeatArg)
	}
	return 0, false, nil
}

// parseGroup parses '(' regex ')' and returns the inner regex node.
func (p *parser) parseGroup() (int, bool, error) {
	s := p.snapshot()
	p.lex.Next()

	inner, ok, err := p.parseRegex()
	if err != nil {
		return 0, false, err
	}
	if ok {
		if tok, more := p.lex.Peek(); more && tok.Kind == TokenCloseGroup {
			p.lex.Next()
			return inner, true, nil
		}
	}

	p.fail(ErrMissingParen)
	p.restore(s)
	return 0, false, nil
}

// Class ranges must lie within the alphanumeric ordinal band '0'..'z'.
const (
	rangeFloor   = 0x30
	rangeCeiling = 0x7A
)

func (p *parser) checkClass(set []SetSymbol) error {
	for _, sym := range set {
		if !sym.IsRange {
			continue
		}
		if sym.Lo < rangeFloor || sym.Lo > rangeCeiling || sym.Hi < rangeFloor || sym.Hi > rangeCeiling {
			return p.errorf(ErrRangeNotAlnum)
		}
		if sym.Lo > sym.Hi {
			return p.errorf(ErrRangeStartAboveEnd)
		}
	}
	return nil
}
