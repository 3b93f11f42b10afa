/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: superrot_test.go
Description: Tests for the progressive-shift strategy. Verifies that a message
enciphered with a position-dependent shift is recovered by the sweep, that the
winning candidate carries the matching parameters in its provenance, and that
the RTL order is genuinely different from LTR.
*/

package strategies_test

import (
	"testing"

	"github.com/kleascm/akaylee-decipher/pkg/encodings"
	"github.com/kleascm/akaylee-decipher/pkg/scoring"
	"github.com/kleascm/akaylee-decipher/pkg/strategies"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSuperRotRecoversProgressiveCipher tests the full sweep against a known key
func TestSuperRotRecoversProgressiveCipher(t *testing.T) {
	strat := strategies.NewSuperRotStrategy(scoring.NewScorer())
	cfg := strat.DefaultConfig()

	plain := "the courier leaves from the harbor at midnight"
	cipher := encodings.ProgressiveShift(plain, 7, 3, encodings.ModeEncode, encodings.OrderLTR)
	require.NotEqual(t, plain, cipher)

	out := strat.Run(cipher, cfg)
	require.NotEmpty(t, out)

	best := out[0]
	for _, c := range out[1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	assert.Equal(t, plain, best.Text)
	assert.Contains(t, best.Provenance, "start=7")
	assert.Contains(t, best.Provenance, "step=3")
	assert.Contains(t, best.Provenance, "mode=decode")
	assert.Contains(t, best.Provenance, "order=LTR")
}

// TestSuperRotOrderMatters tests that RTL and LTR produce different outputs
func TestSuperRotOrderMatters(t *testing.T) {
	s := "attack at dawn"
	ltr := encodings.ProgressiveShift(s, 1, 1, encodings.ModeEncode, encodings.OrderLTR)
	rtl := encodings.ProgressiveShift(s, 1, 1, encodings.ModeEncode, encodings.OrderRTL)
	assert.NotEqual(t, ltr, rtl)
}

// TestSuperRotStartKeyOverride tests restricting the start key sweep
func TestSuperRotStartKeyOverride(t *testing.T) {
	strat := strategies.NewSuperRotStrategy(scoring.NewScorer())
	cfg := strat.DefaultConfig()
	cfg.StartKeys = []int{4}
	cfg.MaxAbsStep = 2

	plain := "meet me behind the library tonight"
	cipher := encodings.ProgressiveShift(plain, 4, 2, encodings.ModeEncode, encodings.OrderLTR)

	out := strat.Run(cipher, cfg)
	require.NotEmpty(t, out)
	assert.Contains(t, candidateTexts(out), plain)
}
