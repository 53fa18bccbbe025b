// Package meta implements the meta-engine orchestrator.
//
// compile.go contains pattern compilation and strategy wiring.

package meta

import (
	"errors"

	"github.com/coregx/reginald/literal"
	"github.com/coregx/reginald/nfa"
	"github.com/coregx/reginald/syntax"
)

// Compile compiles a pattern string into an executable Engine.
//
// Steps:
//  1. Parse pattern into an AST
//  2. Compile the AST to a Thompson NFA
//  3. Extract prefix literals
//  4. Select strategy and build the prefilter
//
// Returns an error if:
//   - Pattern syntax is invalid
//   - Pattern is too complex (recursion or state limit exceeded)
//   - Configuration is invalid
//
// Example:
//
//	engine, err := meta.Compile("(foo|bar)[0-9]+")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.MaxStates = 1_000_000 // allow larger bounded repetitions
//	engine, err := meta.CompileWithConfig("(a{100,200}){50,}", config)
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	ast, err := syntax.Parse(pattern)
	if err != nil {
		return nil, &CompileError{
			Pattern: pattern,
			Err:     err,
		}
	}

	return CompileAST(pattern, ast, config)
}

// CompileAST builds an Engine from an already parsed pattern.
// pattern is only kept for String and error messages.
func CompileAST(pattern string, ast *syntax.AST, config Config) (*Engine, error) {
	compiler := nfa.NewCompiler(nfa.CompilerConfig{
		MaxRecursionDepth: config.MaxRecursionDepth,
		MaxStates:         config.MaxStates,
		LegacyAtLeastZero: config.LegacyAtLeastZero,
	})
	automaton, err := compiler.CompileAST(ast)
	if err != nil {
		return nil, &CompileError{
			Pattern: pattern,
			Err:     err,
		}
	}

	var prefixes *literal.Seq
	if config.EnablePrefilter {
		extractor := literal.New(literal.ExtractorConfig{
			MaxLiterals:       config.MaxLiterals,
			LegacyAtLeastZero: config.LegacyAtLeastZero,
		})
		prefixes = extractor.ExtractPrefixes(ast)
	}
	strategy, pf := selectStrategy(prefixes, config)

	return &Engine{
		pattern:   pattern,
		nfa:       automaton,
		sim:       nfa.NewSimulator(automaton),
		prefixes:  prefixes,
		prefilter: pf,
		strategy:  strategy,
		config:    config,
	}, nil
}

// CompileError represents a pattern compilation error.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
// For syntax errors, returns the error directly to match stdlib behavior.
func (e *CompileError) Error() string {
	var syntaxErr *syntax.Error
	if errors.As(e.Err, &syntaxErr) {
		return syntaxErr.Error()
	}
	return "regexp: " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}
