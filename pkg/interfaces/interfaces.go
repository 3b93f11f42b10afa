/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces.go
Description: Shared interfaces for Akaylee Decipher. Defines the Candidate record,
the salvage strategy contract, and the typed configuration structures used across
all packages to break import cycles and enable proper modular design.
*/

package interfaces

// Candidate represents one scored hypothesis of recovered plaintext.
// Candidates are created only by strategies, are never mutated, and are
// discarded once the final ranked list has been emitted.
type Candidate struct {
	Strategy   string  // strategy family that produced it ("base58", "super_rot", ...)
	Provenance string  // human-readable transformation path applied before the decode
	Text       string  // decoded output; deduplication key for the ranking pipeline
	Score      float64 // fitness value, unbounded, higher is better
}

// Strategy interface for salvage/search strategies. A strategy generates many
// candidate transformations of the input, feeds them through the primitive
// decoders and the fitness scorer, and returns everything it found within its
// soft time budget. Implementations must not mutate the ciphertext or the
// configuration, and must never let a decode failure escape as an error.
type Strategy interface {
	// Name returns the strategy family name used in Candidate.Strategy
	Name() string

	// Description returns a human-readable description of the strategy
	Description() string

	// DefaultConfig returns the documented defaults for this strategy.
	// Callers overlay user configuration on top of this value.
	DefaultConfig() *StrategyConfig

	// Run searches the ciphertext under config and returns all candidates
	// collected before the budget expired. Partial results are normal.
	Run(ciphertext string, config *StrategyConfig) []Candidate
}

// StrategyConfig holds the per-strategy options. Every field is optional from
// the user's point of view: each strategy publishes its own defaults through
// DefaultConfig() and configuration files only override what they name.
// Fields a strategy does not use are ignored by it.
type StrategyConfig struct {
	// Shared options
	BudgetS        float64 `mapstructure:"budget_s"`         // soft wall-clock budget in seconds
	MinTokenLen    int     `mapstructure:"min_token_len"`    // minimum token length worth decoding
	MinPlainLen    int     `mapstructure:"min_plain_len"`    // minimum decoded plaintext length to keep
	ScanSubstrings bool    `mapstructure:"scan_substrings"`  // scan for embedded alphabet runs
	PeriodicMaxK   int     `mapstructure:"periodic_max_k"`   // max period for periodic-deletion search
	TextToDecipher string  `mapstructure:"text_to_decipher"` // literal override, "%c" expands to the ciphertext

	// Base64-family and Base58 options
	AggressiveSalvage bool  `mapstructure:"aggressive_salvage"` // enable removal-based salvage
	NestedPasses      int   `mapstructure:"nested_passes"`      // extra decode hops on decoded output
	AllowURLSafe      bool  `mapstructure:"allow_urlsafe"`      // also scan URL-safe base64 tokens
	DigitComboK       int   `mapstructure:"digit_combo_k"`      // remove up to K frequent digits at once
	KGramLengths      []int `mapstructure:"kgram_lengths"`      // lengths of mixed alnum n-grams to remove
	KGramTopK         int   `mapstructure:"kgram_topk"`         // how many frequent n-grams to try

	// Base58 options
	Alphabets  []string `mapstructure:"alphabets"`   // base58 alphabet names (bitcoin, ripple, flickr)
	CheckModes []string `mapstructure:"check_modes"` // "none" and/or "b58check"

	// ROT-N options
	Shift     int  `mapstructure:"shift"`      // fixed shift when AllShifts is false
	AllShifts bool `mapstructure:"all_shifts"` // sweep all 26 shifts
	Atbash    bool `mapstructure:"atbash"`     // also emit the atbash transform

	// Progressive shift options
	StartKeys  []int    `mapstructure:"start_keys"`   // start keys to sweep (default 0..25)
	MaxAbsStep int      `mapstructure:"max_abs_step"` // sweep steps in [-N..-1, 1..N]
	Modes      []string `mapstructure:"modes"`        // "decode" and/or "encode"
	Orders     []string `mapstructure:"orders"`       // "LTR" and/or "RTL"
}

// RunConfig represents the configuration for one whole deciphering run.
type RunConfig struct {
	ActiveStrategies []string                   // ordered list of strategy names to run
	StrategyConfigs  map[string]*StrategyConfig // resolved per-strategy configuration
	TotalBudgetS     float64                    // global wall-clock budget in seconds
	TopK             int                        // final display count
	PerAlgoCap       int                        // max candidates per strategy in the ranked list
	PromoteTop       bool                       // promote each strategy's best candidate to the front
}
