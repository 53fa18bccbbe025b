package syntax

import (
	"errors"
	"strings"
	"testing"
)

func TestParse_Shape(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"abcd", "((Symbol('a'))(Symbol('b'))(Symbol('c'))(Symbol('d'))Once)"},
		{"(ab)cd", "(((Symbol('a'))(Symbol('b'))Once)(Symbol('c'))(Symbol('d'))Once)"},
		{"a+c*d+e?", "(((Symbol('a'))OneOrMore)((Symbol('c'))ZeroOrMore)((Symbol('d'))OneOrMore)((Symbol('e'))Optional)Once)"},
		{"a{1,}c{,1}d{2,3}", "(((Symbol('a'))From(1))((Symbol('c'))To(1))((Symbol('d'))Between(2, 3))Once)"},
		{"[ab-z][^ab-z]", "((Set([Char('a'), Range(98, 122)]))(NotSet([Char('a'), Range(98, 122)]))Once)"},
		{"(ab)*cd+", "((((Symbol('a'))(Symbol('b'))Once)ZeroOrMore)(Symbol('c'))((Symbol('d'))OneOrMore)Once)"},
		{"ab|cd", "((((Symbol('a'))(Symbol('b'))Once)((Symbol('c'))(Symbol('d'))Once)Or)Once)"},
		{"(a)+b|c*d", "((((((Symbol('a'))Once)OneOrMore)(Symbol('b'))Once)(((Symbol('c'))ZeroOrMore)(Symbol('d'))Once)Or)Once)"},
		{"a.b", "((Symbol('a'))(Any)(Symbol('b'))Once)"},
		{"(a|b)", "(((((Symbol('a'))Once)((Symbol('b'))Once)Or)Once)Once)"},
		{"a b", "((Symbol('a'))(Symbol(' '))(Symbol('b'))Once)"},
		{"a\n|\tb", "((((Symbol('a'))Once)((Symbol('b'))Once)Or)Once)"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			ast, err := Parse(tt.pattern)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.pattern, err)
			}
			if got := ast.String(); got != tt.want {
				t.Errorf("Parse(%q) =\n  %s\nwant\n  %s", tt.pattern, got, tt.want)
			}
		})
	}
}

// TestParse_ArenaOrder checks that children always precede their parents and
// that rolled-back branches leave no orphans behind.
func TestParse_ArenaOrder(t *testing.T) {
	patterns := []string{
		"abc",
		"a|b|c",
		"(a|b)*c",
		"((a)|(b|c))+d",
		"a|",
		"x(y|",
		"a{2,3}[b-d]?",
	}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			ast, err := Parse(pattern)
			if err != nil {
				return
			}

			reached := make([]bool, ast.Len())
			var walk func(i int)
			walk = func(i int) {
				if reached[i] {
					t.Fatalf("node %d reached twice", i)
				}
				reached[i] = true
				for _, c := range ast.Node(i).Children {
					if c >= i {
						t.Fatalf("child %d of node %d is not inserted before its parent", c, i)
					}
					walk(c)
				}
			}
			walk(ast.Root)

			for i, ok := range reached {
				if !ok {
					t.Errorf("node %d (%s) is an orphan", i, ast.Node(i).label())
				}
			}
		})
	}
}

func TestParse_RootShape(t *testing.T) {
	ast, err := Parse("ab|c")
	if err != nil {
		t.Fatal(err)
	}
	root := ast.Node(ast.Root)
	if root.Kind != NodeSequence || len(root.Children) != 1 {
		t.Fatalf("alternation root = %s with %d children, want single-child Once", root.Kind, len(root.Children))
	}
	if child := ast.Node(root.Children[0]); child.Kind != NodeAlternation {
		t.Errorf("root child = %s, want Or", child.Kind)
	}

	ast, err = Parse("ab")
	if err != nil {
		t.Fatal(err)
	}
	root = ast.Node(ast.Root)
	if root.Kind != NodeSequence || len(root.Children) != 2 {
		t.Errorf("concatenation root = %s with %d children, want Once with 2", root.Kind, len(root.Children))
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		pattern string
		msg     string
	}{
		{"(", ErrMissingParen},
		{"(a", ErrMissingParen},
		{"", ErrUnexpectedEnd},
		{"\n", ErrUnexpectedEnd},
		{"*a", ErrMissingRepeatArg},
		{"|a", ErrMissingAlternative},
		{")", ErrUnexpectedParen},
		{"a)", ErrUnknownSymbol},
		{"a|", ErrUnknownSymbol},
		{"a**", ErrUnknownSymbol},
		{"a+?", ErrUnknownSymbol},
		{"()", ErrMissingParen},
		{"a{,0}", ErrRepeatMaxZero},
		{"a{0,0}", ErrRepeatMaxZero},
		{"a{3,2}", ErrRepeatMinAboveMax},
		{"ba{,0}", ErrRepeatMaxZero},
		{"x|(a{,0})", ErrRepeatMaxZero},
		{"[z-a]", ErrRangeStartAboveEnd},
		{"[!-a]", ErrRangeNotAlnum},
		{"[a-~]", ErrRangeNotAlnum},
		{"[^ -z]", ErrRangeNotAlnum},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			_, err := Parse(tt.pattern)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error %q", tt.pattern, tt.msg)
			}
			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("error %T is not *syntax.Error", err)
			}
			if perr.Msg != tt.msg {
				t.Errorf("Parse(%q) msg = %q, want %q", tt.pattern, perr.Msg, tt.msg)
			}
			if perr.Expr != tt.pattern {
				t.Errorf("Expr = %q, want %q", perr.Expr, tt.pattern)
			}
			if !strings.HasPrefix(err.Error(), "error parsing regexp: ") {
				t.Errorf("Error() = %q, want regexp/syntax style prefix", err.Error())
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	patterns := []string{
		"a",
		"a{0,1}",
		"a{0,}",
		"a{5,5}",
		"[0-9a-zA-Z]",
		"[0-z]",
		"[--]x",
		"{",
		"a{",
		"[",
		"]",
		"}",
		"((a))",
		"(a|b)|c",
		"a||bc",
	}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			_, err := Parse(pattern)
			wantErr := pattern == "a||bc"
			if (err != nil) != wantErr {
				t.Errorf("Parse(%q) error = %v, wantErr %v", pattern, err, wantErr)
			}
		})
	}
}

func TestParse_DeepNestingIsLinear(t *testing.T) {
	const depth = 200
	pattern := strings.Repeat("(", depth) + "a" + strings.Repeat(")", depth)
	if _, err := Parse(pattern); err != nil {
		t.Fatalf("Parse(deeply nested) error: %v", err)
	}
}

func TestAST_Mermaid(t *testing.T) {
	ast, err := Parse("ab")
	if err != nil {
		t.Fatal(err)
	}
	got := ast.Mermaid()
	for _, want := range []string{"flowchart LR", "2-->0", "2-->1"} {
		if !strings.Contains(got, want) {
			t.Errorf("Mermaid() missing %q:\n%s", want, got)
		}
	}
}
