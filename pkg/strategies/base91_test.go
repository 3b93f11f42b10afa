/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: base91_test.go
Description: Tests for the basE91 strategy. Covers clean whole-string decoding
via the encoder and the strategy's refusal to flood candidates from prose that
merely happens to sit inside the very permissive basE91 alphabet.
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

// TestBase91WholeString tests a clean raw decode through the encoder
func TestBase91WholeString(t *testing.T) {
	strat := strategies.NewBase91Strategy(scoring.NewScorer())
	cfg := strat.DefaultConfig()

	token := encodings.EncodeBase91([]byte("the vault code is seven nine two"))
	out := strat.Run(token, cfg)
	require.NotEmpty(t, out)
	assert.Contains(t, candidateTexts(out), "the vault code is seven nine two")
}

// TestBase91GarbageRejected tests that non-text decodes are filtered out
func TestBase91GarbageRejected(t *testing.T) {
	strat := strategies.NewBase91Strategy(scoring.NewScorer())
	cfg := strat.DefaultConfig()

	// decodes under basE91 but to bytes that fail the printability gate
	out := strat.Run("zzzzzzzzzzzzzzzzzzzzzzzz", cfg)
	for _, c := range out {
		assert.True(t, scoring.IsMostlyPrintable(c.Text, 0.9))
	}
}
