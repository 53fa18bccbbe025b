package meta

import "github.com/coregx/reginald/nfa"

// Config controls meta-engine behavior.
//
// Configuration affects:
//   - Prefilter selection and literal extraction limits
//   - NFA compilation limits
//   - Semantics of x{0,}
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnablePrefilter = false // always run the automaton at every position
//	engine, _ := meta.CompileWithConfig("pattern", config)
type Config struct {
	// EnablePrefilter enables literal-based prefiltering.
	// When enabled and the pattern has required prefix literals, searches on
	// ASCII input skip straight to positions where one of them occurs.
	// Default: true
	EnablePrefilter bool

	// MaxLiterals limits the number of prefix literals extracted for
	// prefiltering. Patterns that would need more are searched without one.
	// Default: 64
	MaxLiterals int

	// MaxRecursionDepth limits recursion during NFA compilation.
	// Prevents stack overflow on deeply nested patterns.
	// Default: 100
	MaxRecursionDepth int

	// MaxStates caps the size of the compiled automaton. Bounded repetition
	// copies its operand, so a{100,100}{100,100} already needs ten thousand
	// states.
	// Default: 100,000
	MaxStates int

	// LegacyAtLeastZero makes x{0,} require at least one x, like x+.
	// Default: false (x{0,} is x*)
	LegacyAtLeastZero bool
}

// DefaultConfig returns a configuration with sensible defaults.
//
// Defaults:
//   - EnablePrefilter: true
//   - MaxLiterals: 64
//   - MaxRecursionDepth: 100
//   - MaxStates: 100,000
//   - LegacyAtLeastZero: false
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:   true,
		MaxLiterals:       64,
		MaxRecursionDepth: 100,
		MaxStates:         100_000,
		LegacyAtLeastZero: false,
	}
}

// Validate checks if the configuration is valid.
// Returns a *ConfigError if any parameter is out of range.
//
// Valid ranges:
//   - MaxLiterals: 1 to 1,000 (when prefilter enabled)
//   - MaxRecursionDepth: 10 to 1,000
//   - MaxStates: 16 to 10,000,000
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.MaxStates = 0 // Invalid!
//	if err := config.Validate(); err != nil {
//	    log.Fatal(err)
//	}
func (c Config) Validate() error {
	if c.EnablePrefilter {
		if c.MaxLiterals < 1 || c.MaxLiterals > 1_000 {
			return &ConfigError{
				Field:   "MaxLiterals",
				Message: "must be between 1 and 1,000",
			}
		}
	}

	if c.MaxRecursionDepth < 10 || c.MaxRecursionDepth > 1_000 {
		return &ConfigError{
			Field:   "MaxRecursionDepth",
			Message: "must be between 10 and 1,000",
		}
	}

	if c.MaxStates < 16 || c.MaxStates > 10_000_000 {
		return &ConfigError{
			Field:   "MaxStates",
			Message: "must be between 16 and 10,000,000",
		}
	}

	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "regexp: invalid config: " + e.Field + ": " + e.Message
}

// Unwrap lets callers match any configuration error with
// errors.Is(err, nfa.ErrInvalidConfig).
func (e *ConfigError) Unwrap() error {
	return nfa.ErrInvalidConfig
}
