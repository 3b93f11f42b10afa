/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: ranking.go
Description: Candidate ranking pipeline for Akaylee Decipher. Deduplicates
candidates by decoded text keeping the best score, sorts stably by score, caps
the share any single strategy may take of the final list, and optionally
promotes each strategy's best hit to the front for diversity.
*/

package core

import (
	"sort"

	"github.com/kleascm/akaylee-decipher/pkg/interfaces"
)

// RankOptions controls the ranking pipeline. Zero values select the defaults.
type RankOptions struct {
	TopK       int  // final list length (default 10)
	PerAlgoCap int  // max candidates per strategy (default 5)
	PromoteTop bool // move each strategy's best candidate to the front
}

func (o RankOptions) withDefaults() RankOptions {
	if o.TopK <= 0 {
		o.TopK = 10
	}
	if o.PerAlgoCap <= 0 {
		o.PerAlgoCap = 5
	}
	return o
}

// DedupeByText collapses candidates with identical decoded text, keeping the
// highest score. On a score tie the first-seen candidate wins, preserving its
// provenance. Output order follows first appearance.
func DedupeByText(cands []interfaces.Candidate) []interfaces.Candidate {
	index := make(map[string]int, len(cands))
	out := make([]interfaces.Candidate, 0, len(cands))
	for _, c := range cands {
		if i, ok := index[c.Text]; ok {
			if c.Score > out[i].Score {
				out[i] = c
			}
			continue
		}
		index[c.Text] = len(out)
		out = append(out, c)
	}
	return out
}

// SortByScore stable-sorts candidates by descending score. Equal scores keep
// their relative order, so runs are deterministic.
func SortByScore(cands []interfaces.Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].Score > cands[j].Score
	})
}

// CapPerStrategy keeps at most cap candidates per strategy, preserving order.
func CapPerStrategy(cands []interfaces.Candidate, cap int) []interfaces.Candidate {
	counts := make(map[string]int)
	out := make([]interfaces.Candidate, 0, len(cands))
	for _, c := range cands {
		if counts[c.Strategy] >= cap {
			continue
		}
		counts[c.Strategy]++
		out = append(out, c)
	}
	return out
}

// PromoteDiversity moves the first (therefore best, the input is sorted)
// candidate of each strategy to the front, in the order the strategies first
// appear, then appends the remainder unchanged.
func PromoteDiversity(cands []interfaces.Candidate) []interfaces.Candidate {
	promoted := make(map[int]bool)
	seen := make(map[string]bool)
	out := make([]interfaces.Candidate, 0, len(cands))
	for i, c := range cands {
		if !seen[c.Strategy] {
			seen[c.Strategy] = true
			promoted[i] = true
			out = append(out, c)
		}
	}
	for i, c := range cands {
		if !promoted[i] {
			out = append(out, c)
		}
	}
	return out
}

// Rank runs the full pipeline: dedupe, sort, per-strategy cap, optional
// diversity promotion, and truncation to the final display count.
func Rank(cands []interfaces.Candidate, opts RankOptions) []interfaces.Candidate {
	opts = opts.withDefaults()

	ranked := DedupeByText(cands)
	SortByScore(ranked)
	ranked = CapPerStrategy(ranked, opts.PerAlgoCap)
	if opts.PromoteTop {
		ranked = PromoteDiversity(ranked)
	}
	if len(ranked) > opts.TopK {
		ranked = ranked[:opts.TopK]
	}
	return ranked
}
