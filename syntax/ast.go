package syntax

import (
	"fmt"
	"strings"
)

// NodeKind identifies a grammar construct in the AST.
type NodeKind uint8

const (
	// NodeSequence matches its children one after another.
	NodeSequence NodeKind = iota

	// NodeAlternation matches any one of its children.
	NodeAlternation

	// NodeZeroOrMore is x*.
	NodeZeroOrMore

	// NodeOneOrMore is x+.
	NodeOneOrMore

	// NodeOptional is x?.
	NodeOptional

	// NodeAtLeast is x{min,}.
	NodeAtLeast

	// NodeAtMost is x{,max}.
	NodeAtMost

	// NodeBetween is x{min,max}.
	NodeBetween

	// NodeSymbol is a literal character.
	NodeSymbol

	// NodeSet is a character class.
	NodeSet

	// NodeNotSet is a negated character class.
	NodeNotSet

	// NodeAny is '.'.
	NodeAny
)

// String returns the node kind name.
func (k NodeKind) String() string {
	switch k {
	case NodeSequence:
		return "Once"
	case NodeAlternation:
		return "Or"
	case NodeZeroOrMore:
		return "ZeroOrMore"
	case NodeOneOrMore:
		return "OneOrMore"
	case NodeOptional:
		return "Optional"
	case NodeAtLeast:
		return "From"
	case NodeAtMost:
		return "To"
	case NodeBetween:
		return "Between"
	case NodeSymbol:
		return "Symbol"
	case NodeSet:
		return "Set"
	case NodeNotSet:
		return "NotSet"
	case NodeAny:
		return "Any"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// IsAtomic reports whether nodes of this kind consume exactly one character.
func (k NodeKind) IsAtomic() bool {
	switch k {
	case NodeSymbol, NodeSet, NodeNotSet, NodeAny:
		return true
	}
	return false
}

// Node is one AST arena entry. Children are arena indices, each smaller than
// the index of the node itself.
type Node struct {
	Kind     NodeKind
	Children []int

	// Char is set for NodeSymbol.
	Char rune

	// Min and Max are set for the bounded repetition kinds.
	Min, Max int

	// Set is set for NodeSet and NodeNotSet.
	Set []SetSymbol
}

// label renders the node payload, e.g. Symbol('a') or Between(2, 3).
func (n *Node) label() string {
	switch n.Kind {
	case NodeSymbol:
		return fmt.Sprintf("Symbol(%q)", n.Char)
	case NodeAtLeast:
		return fmt.Sprintf("From(%d)", n.Min)
	case NodeAtMost:
		return fmt.Sprintf("To(%d)", n.Max)
	case NodeBetween:
		return fmt.Sprintf("Between(%d, %d)", n.Min, n.Max)
	case NodeSet, NodeNotSet:
		return n.Kind.String() + "([" + formatSet(n.Set) + "])"
	default:
		return n.Kind.String()
	}
}

// AST is the arena-indexed result of a parse.
type AST struct {
	Nodes []Node
	Root  int
}

// Node returns the node at index i.
func (a *AST) Node(i int) *Node {
	return &a.Nodes[i]
}

// Len returns the number of nodes in the arena.
func (a *AST) Len() int {
	return len(a.Nodes)
}

// String renders the tree in prefix-children lisp form, e.g.
// ((Symbol('a'))((Symbol('b'))OneOrMore)Once) for "ab+".
func (a *AST) String() string {
	var sb strings.Builder
	a.writeNode(&sb, a.Root)
	return sb.String()
}

func (a *AST) writeNode(sb *strings.Builder, i int) {
	n := &a.Nodes[i]
	sb.WriteByte('(')
	for _, child := range n.Children {
		a.writeNode(sb, child)
	}
	sb.WriteString(n.label())
	sb.WriteByte(')')
}

// Mermaid renders the arena as a mermaid flowchart.
func (a *AST) Mermaid() string {
	var sb strings.Builder
	sb.WriteString("flowchart LR\n")
	for i := range a.Nodes {
		n := &a.Nodes[i]
		fmt.Fprintf(&sb, "\t%d(%q)\n", i, n.label())
		for _, child := range n.Children {
			fmt.Fprintf(&sb, "\t%d-->%d\n", i, child)
		}
	}
	return sb.String()
}
