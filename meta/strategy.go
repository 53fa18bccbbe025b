package meta

import (
	"github.com/coregx/reginald/literal"
	"github.com/coregx/reginald/prefilter"
)

// Strategy represents the execution strategy for pattern matching.
//
// The meta-engine chooses between:
//   - UseNFA: run the simulator at every position of the input
//   - UsePrefilter: jump between literal candidates on ASCII input,
//     run the simulator only there
type Strategy int

const (
	// UseNFA runs the NFA simulator at every unconsumed position.
	// Used when the pattern has no required prefix literals.
	UseNFA Strategy = iota

	// UsePrefilter finds candidate start positions with a literal
	// prefilter before running the simulator. Non-ASCII input falls back
	// to UseNFA behavior for that search.
	UsePrefilter
)

// String returns a human-readable representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case UseNFA:
		return "UseNFA"
	case UsePrefilter:
		return "UsePrefilter"
	default:
		return "Unknown"
	}
}

// selectStrategy picks the strategy and builds the prefilter it needs.
//
// Selection rules:
//  1. Prefilter disabled in config -> UseNFA
//  2. No prefix literals (leading wildcard, nullable prefix, huge class) -> UseNFA
//  3. Otherwise -> UsePrefilter with the cheapest prefilter for the literals
func selectStrategy(prefixes *literal.Seq, config Config) (Strategy, prefilter.Prefilter) {
	if !config.EnablePrefilter || prefixes.IsEmpty() {
		return UseNFA, nil
	}
	pf := prefilter.NewBuilder(prefixes).Build()
	if pf == nil {
		return UseNFA, nil
	}
	return UsePrefilter, pf
}
