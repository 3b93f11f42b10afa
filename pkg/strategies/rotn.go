/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: rotn.go
Description: ROT-N strategy for Akaylee Decipher. Emits either a single fixed
shift or the full 26-shift sweep, plus the atbash mirror, as scored candidates.
Shifts preserve case and pass non-letters through, so the output always has the
same shape as the input.
*/

package strategies

import (
	"fmt"

	"github.com/kleascm/akaylee-decipher/pkg/encodings"
	"github.com/kleascm/akaylee-decipher/pkg/interfaces"
	"github.com/kleascm/akaylee-decipher/pkg/scoring"
)

// RotNStrategy implements the Caesar shift sweep.
type RotNStrategy struct {
	scorer *scoring.Scorer
}

// NewRotNStrategy creates a new ROT-N strategy.
func NewRotNStrategy(scorer *scoring.Scorer) *RotNStrategy {
	return &RotNStrategy{scorer: scorer}
}

// Name returns the strategy family name.
func (s *RotNStrategy) Name() string { return "rotN" }

// Description returns a description of this strategy.
func (s *RotNStrategy) Description() string {
	return "Applies Caesar shifts (a fixed N or all 26) and the atbash mirror"
}

// DefaultConfig returns the documented defaults for this strategy.
func (s *RotNStrategy) DefaultConfig() *interfaces.StrategyConfig {
	return &interfaces.StrategyConfig{
		BudgetS:     1.0,
		MinPlainLen: 1,
		Shift:       13,
	}
}

// Run applies the configured shifts in decode sense (a candidate tagged k=3
// undoes a Caesar(+3) encipherment) and returns every result as a candidate.
// The full sweep covers all 26 shifts including the k=0 identity.
func (s *RotNStrategy) Run(ciphertext string, cfg *interfaces.StrategyConfig) []interfaces.Candidate {
	src := normalize(resolveCiphertext(ciphertext, cfg))
	bud := newBudget(cfg.BudgetS)

	shifts := []int{cfg.Shift}
	if cfg.AllShifts {
		shifts = shifts[:0]
		for k := 0; k < 26; k++ {
			shifts = append(shifts, k)
		}
	}

	var out []interfaces.Candidate
	for _, k := range shifts {
		if bud.Expired() {
			return out
		}
		text := encodings.RotN(src, -k)
		out = append(out, interfaces.Candidate{
			Strategy:   s.Name(),
			Provenance: fmt.Sprintf("k=%d", k),
			Text:       text,
			Score:      s.scorer.Score(text),
		})
	}
	if cfg.Atbash && !bud.Expired() {
		text := encodings.Atbash(src)
		out = append(out, interfaces.Candidate{
			Strategy:   s.Name(),
			Provenance: "atbash",
			Text:       text,
			Score:      s.scorer.Score(text),
		})
	}
	return out
}
