/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: rotn_test.go
Description: Tests for the ROT-N strategy. Verifies the full sweep covers all
26 shifts (identity included) and ranks the true plaintext first, the
fixed-shift mode deciphers rather than re-enciphers, and the atbash mirror is
included when requested.
*/

package strategies_test

import (
	"testing"

	"github.com/kleascm/akaylee-decipher/pkg/interfaces"
	"github.com/kleascm/akaylee-decipher/pkg/scoring"
	"github.com/kleascm/akaylee-decipher/pkg/strategies"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRotNSweepRecoversROT13 tests that the sweep's best candidate is the plaintext
func TestRotNSweepRecoversROT13(t *testing.T) {
	strat := strategies.NewRotNStrategy(scoring.NewScorer())
	cfg := strat.DefaultConfig()
	cfg.AllShifts = true

	ciphertext := "Uryyb, Jbeyq! Guvf vf n frperg zrffntr."
	out := strat.Run(ciphertext, cfg)
	require.Len(t, out, 26)

	best := out[0]
	var identity *interfaces.Candidate
	for i, c := range out {
		if c.Score > best.Score {
			best = c
		}
		if c.Provenance == "k=0" {
			identity = &out[i]
		}
	}
	assert.Equal(t, "Hello, World! This is a secret message.", best.Text)
	assert.Equal(t, "k=13", best.Provenance)
	assert.Equal(t, "rotN", best.Strategy)

	// the zero shift keeps the input intact so already-plain text survives
	require.NotNil(t, identity)
	assert.Equal(t, ciphertext, identity.Text)
}

// TestRotNFixedShift tests that the single-shift mode undoes the named shift
func TestRotNFixedShift(t *testing.T) {
	strat := strategies.NewRotNStrategy(scoring.NewScorer())
	cfg := &interfaces.StrategyConfig{BudgetS: 1.0, Shift: 3}

	// Caesar(+3) ciphertext; shift 3 must decipher it, not shift it further
	out := strat.Run("Khoor, Zruog!", cfg)
	require.Len(t, out, 1)
	assert.Equal(t, "Hello, World!", out[0].Text)
	assert.Equal(t, "k=3", out[0].Provenance)
}

// TestRotNAtbash tests the atbash mirror candidate
func TestRotNAtbash(t *testing.T) {
	strat := strategies.NewRotNStrategy(scoring.NewScorer())
	cfg := &interfaces.StrategyConfig{BudgetS: 1.0, Shift: 13, Atbash: true}

	out := strat.Run("Svool, Dliow!", cfg)
	require.Len(t, out, 2)

	var atbash *interfaces.Candidate
	for i := range out {
		if out[i].Provenance == "atbash" {
			atbash = &out[i]
		}
	}
	require.NotNil(t, atbash)
	assert.Equal(t, "Hello, World!", atbash.Text)
}
