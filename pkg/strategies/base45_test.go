/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: base45_test.go
Description: Tests for the Base45 strategy. Covers clean whole-string decoding,
round-trips through the encoder, and periodic-junk recovery where the injected
junk character is itself part of the Base45 alphabet so plain stripping cannot
remove it.
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

// TestBase45WholeString tests a clean raw decode
func TestBase45WholeString(t *testing.T) {
	strat := strategies.NewBase45Strategy(scoring.NewScorer())
	cfg := strat.DefaultConfig()

	token := encodings.EncodeBase45([]byte("rendezvous at the old bridge"))
	out := strat.Run(token, cfg)
	require.NotEmpty(t, out)
	assert.Contains(t, candidateTexts(out), "rendezvous at the old bridge")
}

// TestBase45PeriodicJunk tests recovery of a token salted with in-alphabet junk
func TestBase45PeriodicJunk(t *testing.T) {
	strat := strategies.NewBase45Strategy(scoring.NewScorer())
	cfg := strat.DefaultConfig()
	cfg.MinPlainLen = 4

	// RFC 9285 vector: "ietf!" encodes to "QED8WEX0". Insert a '+' before
	// every 4 real symbols; '+' is inside the Base45 alphabet, so only the
	// periodic-deletion pass can remove it.
	token := "QED8WEX0"
	salted := ""
	for i := 0; i < len(token); i += 4 {
		salted += "+" + token[i:i+4]
	}
	require.Equal(t, "+QED8+WEX0", salted)

	out := strat.Run(salted, cfg)
	require.NotEmpty(t, out)
	assert.Contains(t, candidateTexts(out), "ietf!")
}

// TestBase45RejectsPlainProse tests that ordinary text produces no junk flood
func TestBase45RejectsPlainProse(t *testing.T) {
	strat := strategies.NewBase45Strategy(scoring.NewScorer())
	cfg := strat.DefaultConfig()

	// lowercase letters are outside the Base45 alphabet entirely
	out := strat.Run("just a plain lowercase sentence", cfg)
	assert.Empty(t, out)
}
