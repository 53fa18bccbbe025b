package nfa

import (
	"fmt"

	"github.com/coregx/reginald/syntax"
)

// CompilerConfig configures NFA compilation behavior
type CompilerConfig struct {
	// MaxRecursionDepth limits recursion during compilation to prevent stack overflow.
	// Operators, alternations and multi-element sequences count; bare grouping
	// parentheses do not.
	// Default: 100
	MaxRecursionDepth int

	// MaxStates caps the number of states; bounded repetition copies its
	// operand, so nested bounds can otherwise grow the automaton quickly.
	// Default: 100000
	MaxStates int

	// LegacyAtLeastZero compiles x{0,} like x+ instead of x*.
	// Only for compatibility with patterns written against older releases.
	LegacyAtLeastZero bool
}

// DefaultCompilerConfig returns a compiler configuration with sensible defaults
func DefaultCompilerConfig() CompilerConfig {
	return CompilerConfig{
		MaxRecursionDepth: 100,
		MaxStates:         100_000,
		LegacyAtLeastZero: false,
	}
}

// Compiler compiles syntax.AST patterns into Thompson NFAs.
//
// Every compile step takes an entry state already in the automaton and returns
// the exit state of the fragment it built; edges are only ever added.
type Compiler struct {
	config  CompilerConfig
	builder *Builder
	ast     *syntax.AST
	depth   int // current recursion depth
}

// NewCompiler creates a new NFA compiler with the given configuration
func NewCompiler(config CompilerConfig) *Compiler {
	if config.MaxRecursionDepth == 0 {
		config.MaxRecursionDepth = 100
	}
	if config.MaxStates == 0 {
		config.MaxStates = 100_000
	}
	return &Compiler{
		config:  config,
		builder: NewBuilder(),
	}
}

// NewDefaultCompiler creates a new NFA compiler with default configuration
func NewDefaultCompiler() *Compiler {
	return NewCompiler(DefaultCompilerConfig())
}

// Compile parses and compiles a pattern string into an NFA
func (c *Compiler) Compile(pattern string) (*NFA, error) {
	ast, err := syntax.Parse(pattern)
	if err != nil {
		return nil, &CompileError{
			Pattern: pattern,
			Err:     err,
		}
	}

	return c.CompileAST(ast)
}

// CompileAST compiles a parsed AST into an NFA.
// The AST is only read; it can be discarded afterwards.
func (c *Compiler) CompileAST(ast *syntax.AST) (*NFA, error) {
	c.builder = NewBuilderWithCapacity(2 * ast.Len())
	c.ast = ast
	c.depth = 0
	defer func() { c.ast = nil }()

	start := c.builder.AddEpsilon()
	end, err := c.compileNode(start, ast.Root)
	if err != nil {
		return nil, err
	}

	match := c.builder.AddMatch()
	if err := c.builder.AddEdge(end, match); err != nil {
		return nil, &CompileError{
			Err: fmt.Errorf("failed to connect to match state: %w", err),
		}
	}
	c.builder.SetStart(start)

	nfa, err := c.builder.Build()
	if err != nil {
		return nil, &CompileError{
			Err: err,
		}
	}

	return nfa, nil
}

// compileNode compiles AST node i starting at entry and returns its exit state.
func (c *Compiler) compileNode(entry StateID, i int) (StateID, error) {
	// Every group level adds a single-child sequence; unwrap them here so
	// plain grouping does not count against MaxRecursionDepth.
	for node := c.ast.Node(i); node.Kind == syntax.NodeSequence && len(node.Children) == 1; node = c.ast.Node(i) {
		i = node.Children[0]
	}

	// Check recursion depth
	c.depth++
	if c.depth > c.config.MaxRecursionDepth {
		return InvalidState, &CompileError{
			Err: ErrTooComplex,
		}
	}
	defer func() { c.depth-- }()

	if c.builder.States() > c.config.MaxStates {
		return InvalidState, &CompileError{
			Err: fmt.Errorf("%w: more than %d states", ErrTooComplex, c.config.MaxStates),
		}
	}

	node := c.ast.Node(i)
	switch node.Kind {
	case syntax.NodeSymbol:
		return c.link(entry, c.builder.AddRune(node.Char))
	case syntax.NodeAny:
		return c.link(entry, c.builder.AddAny())
	case syntax.NodeSet:
		return c.link(entry, c.builder.AddClass(classRanges(node.Set), false))
	case syntax.NodeNotSet:
		return c.link(entry, c.builder.AddClass(classRanges(node.Set), true))
	case syntax.NodeSequence:
		return c.compileSequence(entry, node.Children)
	case syntax.NodeAlternation:
		return c.compileAlternation(entry, node.Children)
	case syntax.NodeZeroOrMore:
		return c.compileZeroOrMore(entry, node.Children[0])
	case syntax.NodeOneOrMore:
		return c.compileOneOrMore(entry, node.Children[0])
	case syntax.NodeOptional:
		return c.compileOptional(entry, node.Children[0])
	case syntax.NodeAtLeast:
		return c.compileAtLeast(entry, node.Children[0], node.Min)
	case syntax.NodeAtMost:
		return c.compileBetween(entry, node.Children[0], 0, node.Max)
	case syntax.NodeBetween:
		return c.compileBetween(entry, node.Children[0], node.Min, node.Max)
	default:
		return InvalidState, &CompileError{
			Err: fmt.Errorf("unsupported node kind: %v", node.Kind),
		}
	}
}

// link adds entry -> state and returns state as the fragment exit.
func (c *Compiler) link(entry, state StateID) (StateID, error) {
	if err := c.builder.AddEdge(entry, state); err != nil {
		return InvalidState, err
	}
	return state, nil
}

func classRanges(set []syntax.SetSymbol) []RuneRange {
	ranges := make([]RuneRange, len(set))
	for i, sym := range set {
		ranges[i] = RuneRange{Lo: sym.Lo, Hi: sym.Hi}
	}
	return ranges
}

// compileSequence threads children left to right.
func (c *Compiler) compileSequence(entry StateID, children []int) (StateID, error) {
	cur := entry
	for _, child := range children {
		next, err := c.compileNode(cur, child)
		if err != nil {
			return InvalidState, err
		}
		cur = next
	}
	return cur, nil
}

// compileAlternation compiles every branch from the same entry and joins
// their exits in one shared state.
func (c *Compiler) compileAlternation(entry StateID, children []int) (StateID, error) {
	exits := make([]StateID, 0, len(children))
	for _, child := range children {
		exit, err := c.compileNode(entry, child)
		if err != nil {
			return InvalidState, err
		}
		exits = append(exits, exit)
	}

	join := c.builder.AddEpsilon()
	for _, exit := range exits {
		if err := c.builder.AddEdge(exit, join); err != nil {
			return InvalidState, err
		}
	}
	return join, nil
}

// loop compiles child behind a fresh epsilon loop head with a back-edge from
// the child's exit. The head is never a consuming state, so looping back
// re-enters the child instead of re-testing whatever character entry consumes.
func (c *Compiler) loop(entry StateID, child int) (head, exit StateID, err error) {
	head = c.builder.AddEpsilon()
	if err := c.builder.AddEdge(entry, head); err != nil {
		return InvalidState, InvalidState, err
	}
	exit, err = c.compileNode(head, child)
	if err != nil {
		return InvalidState, InvalidState, err
	}
	if err := c.builder.AddEdge(exit, head); err != nil {
		return InvalidState, InvalidState, err
	}
	return head, exit, nil
}

// compileZeroOrMore: x*. Entry and exit coincide at the loop head.
func (c *Compiler) compileZeroOrMore(entry StateID, child int) (StateID, error) {
	head, _, err := c.loop(entry, child)
	return head, err
}

// compileOneOrMore: x+. Exiting from the child's exit forces one traversal.
func (c *Compiler) compileOneOrMore(entry StateID, child int) (StateID, error) {
	_, exit, err := c.loop(entry, child)
	return exit, err
}

// compileOptional: x?. The join is reachable from entry and from the child.
func (c *Compiler) compileOptional(entry StateID, child int) (StateID, error) {
	exit, err := c.compileNode(entry, child)
	if err != nil {
		return InvalidState, err
	}

	join := c.builder.AddEpsilon()
	if err := c.builder.AddEdge(entry, join); err != nil {
		return InvalidState, err
	}
	if err := c.builder.AddEdge(exit, join); err != nil {
		return InvalidState, err
	}
	return join, nil
}

// compileAtLeast: x{n,}. n required copies followed by x*.
func (c *Compiler) compileAtLeast(entry StateID, child, n int) (StateID, error) {
	if n == 0 && c.config.LegacyAtLeastZero {
		return c.compileOneOrMore(entry, child)
	}

	cur, err := c.repeat(entry, child, n, InvalidState)
	if err != nil {
		return InvalidState, err
	}
	return c.compileZeroOrMore(cur, child)
}

// compileBetween: x{min,max}, and x{,max} with min == 0. After the required
// copies every further copy may stop early at a shared join.
func (c *Compiler) compileBetween(entry StateID, child, minCount, maxCount int) (StateID, error) {
	cur, err := c.repeat(entry, child, minCount, InvalidState)
	if err != nil {
		return InvalidState, err
	}

	join := c.builder.AddEpsilon()
	if err := c.builder.AddEdge(cur, join); err != nil {
		return InvalidState, err
	}
	if _, err := c.repeat(cur, child, maxCount-minCount, join); err != nil {
		return InvalidState, err
	}
	return join, nil
}

// repeat chains n copies of child starting at entry. When join is valid every
// copy's exit also gets an edge to it.
func (c *Compiler) repeat(entry StateID, child, n int, join StateID) (StateID, error) {
	cur := entry
	for i := 0; i < n; i++ {
		exit, err := c.compileNode(cur, child)
		if err != nil {
			return InvalidState, err
		}
		if join != InvalidState {
			if err := c.builder.AddEdge(exit, join); err != nil {
				return InvalidState, err
			}
		}
		cur = exit
	}
	return cur, nil
}
