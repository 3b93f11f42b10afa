/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: base45.go
Description: Base45 salvage strategy for Akaylee Decipher. Decodes RFC 9285
tokens from the whole input, from alphabet-stripped variants, from periodic
deletions, and from embedded alphabet runs. The Base45 alphabet contains the
space character, so runs may legitimately span what looks like separate words.
*/

package strategies

import (
	"fmt"
	"regexp"

	"github.com/kleascm/akaylee-decipher/pkg/encodings"
	"github.com/kleascm/akaylee-decipher/pkg/interfaces"
	"github.com/kleascm/akaylee-decipher/pkg/scoring"
)

var reBase45Run = regexp.MustCompile("[" + alphabetClass(encodings.Base45Alphabet) + "]{6,}")

// Base45Strategy implements the Base45 salvage search.
type Base45Strategy struct {
	scorer *scoring.Scorer
}

// NewBase45Strategy creates a new Base45 strategy.
func NewBase45Strategy(scorer *scoring.Scorer) *Base45Strategy {
	return &Base45Strategy{scorer: scorer}
}

// Name returns the strategy family name.
func (s *Base45Strategy) Name() string { return "base45" }

// Description returns a description of this strategy.
func (s *Base45Strategy) Description() string {
	return "Brute-forces Base45 (RFC 9285) with noise stripping, periodic-deletion salvage, and embedded token scanning"
}

// DefaultConfig returns the documented defaults for this strategy.
func (s *Base45Strategy) DefaultConfig() *interfaces.StrategyConfig {
	return &interfaces.StrategyConfig{
		BudgetS:           5.0,
		MinTokenLen:       6,
		MinPlainLen:       6,
		ScanSubstrings:    true,
		PeriodicMaxK:      6,
		AggressiveSalvage: true,
		NestedPasses:      1,
	}
}

// Run searches the ciphertext and returns every candidate found in budget.
func (s *Base45Strategy) Run(ciphertext string, cfg *interfaces.StrategyConfig) []interfaces.Candidate {
	src := normalize(resolveCiphertext(ciphertext, cfg))
	sv := newSalvage(s.Name(), s.scorer, base45Bonus, cfg.BudgetS)

	try := func(tok, path string, drop float64) {
		if len(tok) < cfg.MinTokenLen || sv.seen(tok) {
			return
		}
		raw, err := encodings.DecodeBase45(tok)
		if err != nil {
			return
		}
		plain, ok := decodedText(raw, cfg.MinPlainLen)
		if !ok {
			return
		}
		full := path + "->b45"
		sv.add(full, plain, drop)
		s.chaseNested(sv, plain, full, drop, cfg)
	}

	// 1) Whole normalized string
	try(src, "raw", 0.0)

	// 2) Keep only alphabet characters
	kept := stripToAlphabet(src, encodings.Base45Alphabet)
	if kept != src {
		try(kept, "keep_b45", dropRatio(len(kept), len(src)))
	}

	// 3) Periodic deletion, stripped afterwards
	if cfg.AggressiveSalvage {
		for k := 2; k <= cfg.PeriodicMaxK; k++ {
			if sv.budget.Expired() {
				break
			}
			for phase := 0; phase < k; phase++ {
				cleaned := stripToAlphabet(deletePeriodic(src, k, phase), encodings.Base45Alphabet)
				try(cleaned, fmt.Sprintf("rm_periodic(k=%d,ph=%d)", k, phase),
					dropRatio(len(cleaned), len(src)))
			}
		}
	}

	// 4) Embedded token scan
	if cfg.ScanSubstrings && !sv.budget.Expired() {
		for _, m := range reBase45Run.FindAllStringIndex(src, -1) {
			if sv.budget.Expired() {
				break
			}
			if m[1]-m[0] == len(src) {
				continue
			}
			try(src[m[0]:m[1]], fmt.Sprintf("scan[%d:%d]", m[0], m[1]), 0.0)
		}
	}

	return sv.results
}

// chaseNested re-decodes base64-shaped plaintext, chaining provenance labels.
func (s *Base45Strategy) chaseNested(sv *salvage, text, path string, drop float64, cfg *interfaces.StrategyConfig) {
	for hop := 0; hop < cfg.NestedPasses; hop++ {
		if sv.budget.Expired() || !reNestedShape.MatchString(text) {
			return
		}
		progressed := false
		for _, dec := range encodings.DecodeFamily(text) {
			if dec.Encoding != "base64" && dec.Encoding != "urlsafe_b64" {
				continue
			}
			plain, ok := decodedText(dec.Data, cfg.MinPlainLen)
			if !ok {
				continue
			}
			path = path + "->nested(" + dec.Encoding + ")"
			sv.add(path, plain, drop)
			text, progressed = plain, true
			break
		}
		if !progressed {
			return
		}
	}
}
