/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: superrot.go
Description: Progressive-shift strategy for Akaylee Decipher. Sweeps start keys,
linear step sizes, directions, and decode/encode sense of the position-dependent
Caesar shift. Results that still look like an unfinished encoded token (base64 or
base58 shaped) are penalized so that an actual plaintext hit wins the sweep.
*/

package strategies

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kleascm/akaylee-decipher/pkg/encodings"
	"github.com/kleascm/akaylee-decipher/pkg/interfaces"
	"github.com/kleascm/akaylee-decipher/pkg/scoring"
)

var (
	reShapedB64    = regexp.MustCompile(`^[A-Za-z0-9+/]{12,}={0,2}$`)
	reShapedB64URL = regexp.MustCompile(`^[A-Za-z0-9_-]{12,}={0,2}$`)
	reShapedB58    = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{16,}$`)
)

// SuperRotStrategy implements the progressive-shift sweep.
type SuperRotStrategy struct {
	scorer *scoring.Scorer
}

// NewSuperRotStrategy creates a new progressive-shift strategy.
func NewSuperRotStrategy(scorer *scoring.Scorer) *SuperRotStrategy {
	return &SuperRotStrategy{scorer: scorer}
}

// Name returns the strategy family name.
func (s *SuperRotStrategy) Name() string { return "super_rot" }

// Description returns a description of this strategy.
func (s *SuperRotStrategy) Description() string {
	return "Sweeps position-dependent Caesar shifts: start key, linear step, direction, and decode/encode sense"
}

// DefaultConfig returns the documented defaults for this strategy.
func (s *SuperRotStrategy) DefaultConfig() *interfaces.StrategyConfig {
	return &interfaces.StrategyConfig{
		BudgetS:     60.0,
		MinPlainLen: 1,
		MaxAbsStep:  5,
		Modes:       []string{encodings.ModeDecode, encodings.ModeEncode},
		Orders:      []string{encodings.OrderLTR, encodings.OrderRTL},
	}
}

// Run sweeps the configured parameter grid and returns every scored candidate
// produced before the budget expired.
func (s *SuperRotStrategy) Run(ciphertext string, cfg *interfaces.StrategyConfig) []interfaces.Candidate {
	src := normalize(resolveCiphertext(ciphertext, cfg))
	bud := newBudget(cfg.BudgetS)

	starts := cfg.StartKeys
	if len(starts) == 0 {
		for k := 0; k < 26; k++ {
			starts = append(starts, k)
		}
	}
	var steps []int
	for d := 1; d <= cfg.MaxAbsStep; d++ {
		steps = append(steps, d, -d)
	}
	modes := cfg.Modes
	if len(modes) == 0 {
		modes = []string{encodings.ModeDecode}
	}
	orders := cfg.Orders
	if len(orders) == 0 {
		orders = []string{encodings.OrderLTR}
	}

	var out []interfaces.Candidate
	emitted := make(map[string]bool)
	for _, start := range starts {
		for _, step := range steps {
			if bud.Expired() {
				return out
			}
			for _, mode := range modes {
				for _, order := range orders {
					text := encodings.ProgressiveShift(src, start, step, mode, order)
					if emitted[text] {
						continue
					}
					emitted[text] = true
					out = append(out, interfaces.Candidate{
						Strategy:   s.Name(),
						Provenance: fmt.Sprintf("start=%d,step=%d,mode=%s,order=%s", start, step, mode, order),
						Text:       text,
						Score:      s.scorer.Score(text) - shapedPenalty(text),
					})
				}
			}
		}
	}
	return out
}

// shapedPenalty pushes down sweep outputs that still look like an encoded
// token rather than recovered plaintext.
func shapedPenalty(t string) float64 {
	switch {
	case reShapedB64.MatchString(t), reShapedB64URL.MatchString(t):
		if strings.HasSuffix(t, "==") {
			return 2.0
		}
		return 1.2
	case reShapedB58.MatchString(t):
		return 0.5
	default:
		return 0.0
	}
}
