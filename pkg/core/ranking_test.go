/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: ranking_test.go
Description: Tests for the ranking pipeline. Covers text deduplication with
score and tie handling, stable descending sort, per-strategy capping, diversity
promotion, and final truncation.
*/

package core_test

import (
	"fmt"
	"testing"

	"github.com/kleascm/akaylee-decipher/pkg/core"
	"github.com/kleascm/akaylee-decipher/pkg/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cand(strategy, text string, score float64) interfaces.Candidate {
	return interfaces.Candidate{
		Strategy:   strategy,
		Provenance: "path=raw",
		Text:       text,
		Score:      score,
	}
}

// TestDedupeByTextKeepsBestScore tests dedup scoring
func TestDedupeByTextKeepsBestScore(t *testing.T) {
	in := []interfaces.Candidate{
		cand("base", "hello", 1.0),
		cand("base58", "hello", 3.0),
		cand("base", "world", 2.0),
	}
	out := core.DedupeByText(in)
	require.Len(t, out, 2)
	assert.Equal(t, "hello", out[0].Text)
	assert.Equal(t, 3.0, out[0].Score)
	assert.Equal(t, "base58", out[0].Strategy)
	assert.Equal(t, "world", out[1].Text)
}

// TestDedupeByTextTieKeepsFirst tests that score ties keep the first candidate
func TestDedupeByTextTieKeepsFirst(t *testing.T) {
	first := cand("base", "hello", 2.0)
	first.Provenance = "path=raw->base64"
	second := cand("base91", "hello", 2.0)

	out := core.DedupeByText([]interfaces.Candidate{first, second})
	require.Len(t, out, 1)
	assert.Equal(t, "path=raw->base64", out[0].Provenance)
	assert.Equal(t, "base", out[0].Strategy)
}

// TestDedupeIdempotent tests that deduping twice changes nothing
func TestDedupeIdempotent(t *testing.T) {
	in := []interfaces.Candidate{
		cand("base", "alpha", 1.0),
		cand("base", "alpha", 0.5),
		cand("rotN", "beta", 2.0),
	}
	once := core.DedupeByText(in)
	twice := core.DedupeByText(once)
	assert.Equal(t, once, twice)
}

// TestSortByScoreStable tests descending order with stable ties
func TestSortByScoreStable(t *testing.T) {
	in := []interfaces.Candidate{
		cand("a", "one", 1.0),
		cand("b", "two", 3.0),
		cand("c", "three", 3.0),
		cand("d", "four", 2.0),
	}
	core.SortByScore(in)
	assert.Equal(t, "two", in[0].Text)
	assert.Equal(t, "three", in[1].Text) // tie keeps input order
	assert.Equal(t, "four", in[2].Text)
	assert.Equal(t, "one", in[3].Text)
}

// TestCapPerStrategy tests the per-strategy share limit
func TestCapPerStrategy(t *testing.T) {
	var in []interfaces.Candidate
	for i := 0; i < 8; i++ {
		in = append(in, cand("base", fmt.Sprintf("b%d", i), float64(10-i)))
	}
	in = append(in, cand("rotN", "r0", 1.0))

	out := core.CapPerStrategy(in, 5)
	require.Len(t, out, 6)
	counts := map[string]int{}
	for _, c := range out {
		counts[c.Strategy]++
	}
	assert.Equal(t, 5, counts["base"])
	assert.Equal(t, 1, counts["rotN"])
}

// TestPromoteDiversity tests that each strategy's best hit reaches the front
func TestPromoteDiversity(t *testing.T) {
	in := []interfaces.Candidate{
		cand("base", "b0", 9.0),
		cand("base", "b1", 8.0),
		cand("base", "b2", 7.0),
		cand("rotN", "r0", 6.0),
		cand("base58", "s0", 5.0),
	}
	out := core.PromoteDiversity(in)
	require.Len(t, out, 5)
	assert.Equal(t, "b0", out[0].Text)
	assert.Equal(t, "r0", out[1].Text)
	assert.Equal(t, "s0", out[2].Text)
	assert.Equal(t, "b1", out[3].Text)
	assert.Equal(t, "b2", out[4].Text)
}

// TestRankPipeline tests the composed pipeline with truncation
func TestRankPipeline(t *testing.T) {
	var in []interfaces.Candidate
	for i := 0; i < 10; i++ {
		in = append(in, cand("base", fmt.Sprintf("b%d", i), float64(20-i)))
	}
	in = append(in, cand("rotN", "winner", 5.0))
	in = append(in, cand("rotN", "winner", 4.0)) // duplicate text, lower score

	out := core.Rank(in, core.RankOptions{TopK: 4, PerAlgoCap: 3, PromoteTop: true})
	require.Len(t, out, 4)

	// rotN's best must be visible despite base dominating on score
	texts := make([]string, len(out))
	for i, c := range out {
		texts[i] = c.Text
	}
	assert.Contains(t, texts, "winner")
	for _, c := range out {
		if c.Text == "winner" {
			assert.Equal(t, 5.0, c.Score)
		}
	}
}

// TestRankIdempotent tests that ranking an already-ranked slice changes nothing
func TestRankIdempotent(t *testing.T) {
	var in []interfaces.Candidate
	for i := 0; i < 10; i++ {
		in = append(in, cand("base", fmt.Sprintf("b%d", i), float64(20-i)))
	}
	in = append(in, cand("rotN", "r0", 5.0))
	in = append(in, cand("base58", "s0", 5.0)) // ties with r0 across strategies
	in = append(in, cand("base", "b0", 12.0))  // duplicate text, lower score

	opts := core.RankOptions{TopK: 6, PerAlgoCap: 3, PromoteTop: true}
	once := core.Rank(in, opts)
	twice := core.Rank(once, opts)
	assert.Equal(t, once, twice)

	// the default options path must be stable too
	onceDefault := core.Rank(in, core.RankOptions{})
	assert.Equal(t, onceDefault, core.Rank(onceDefault, core.RankOptions{}))
}
