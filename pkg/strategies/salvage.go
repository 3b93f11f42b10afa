/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: salvage.go
Description: Shared salvage kit for Akaylee Decipher strategies. Provides input
normalization, alphabet stripping, periodic deletion, token-scan pattern
construction, decoded-text validation, the per-invocation tried-set, and the
soft cooperative time budget that every strategy polls at its loop boundaries.
*/

package strategies

import (
	"math"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/kleascm/akaylee-decipher/pkg/interfaces"
	"github.com/kleascm/akaylee-decipher/pkg/scoring"
)

// budget is a soft, advisory wall-clock budget. Exceeding it causes early
// return of whatever candidates exist, never an error.
type budget struct {
	started time.Time
	limit   time.Duration
}

func newBudget(seconds float64) *budget {
	return &budget{
		started: time.Now(),
		limit:   time.Duration(seconds * float64(time.Second)),
	}
}

// Expired reports whether the budget has been used up.
func (b *budget) Expired() bool {
	return time.Since(b.started) > b.limit
}

// salvage holds the state of one strategy invocation: the budget clock, the
// set of already-tried tokens, and the candidates collected so far. It is
// scoped to a single Run call and never shared across strategies or runs.
type salvage struct {
	name    string
	scorer  *scoring.Scorer
	budget  *budget
	profile bonusProfile
	tried   map[string]bool
	results []interfaces.Candidate
}

func newSalvage(name string, scorer *scoring.Scorer, profile bonusProfile, budgetS float64) *salvage {
	return &salvage{
		name:    name,
		scorer:  scorer,
		budget:  newBudget(budgetS),
		profile: profile,
		tried:   make(map[string]bool),
	}
}

// seen marks a token as tried and reports whether it had been tried before.
func (s *salvage) seen(tok string) bool {
	if s.tried[tok] {
		return true
	}
	s.tried[tok] = true
	return false
}

// add scores a decoded text and appends it as a candidate. The final score is
// the fitness plus the strategy's cleanliness bonus, minus the drop-ratio
// penalty and the provenance path penalty.
func (s *salvage) add(path, text string, dropRatio float64) {
	score := s.scorer.Score(text) +
		s.profile.bonus(text) -
		math.Min(2.0, dropRatio*3.0) -
		pathPenalty(path)
	s.results = append(s.results, interfaces.Candidate{
		Strategy:   s.name,
		Provenance: "path=" + path,
		Text:       text,
		Score:      score,
	})
}

// normalize canonicalizes the input: Unicode NFKC, zero-width characters
// stripped, surrounding whitespace trimmed.
func normalize(s string) string {
	t := norm.NFKC.String(s)
	t = strings.Map(func(r rune) rune {
		switch r {
		case '\u200b', '\u200c', '\u200d': // zero-width space/non-joiner/joiner
			return -1
		}
		return r
	}, t)
	return strings.TrimSpace(t)
}

// resolveCiphertext applies the text_to_decipher override, expanding the "%c"
// placeholder with the real ciphertext.
func resolveCiphertext(ciphertext string, cfg *interfaces.StrategyConfig) string {
	if cfg.TextToDecipher != "" {
		return strings.ReplaceAll(cfg.TextToDecipher, "%c", ciphertext)
	}
	return ciphertext
}

// stripToAlphabet drops every character outside the target alphabet.
func stripToAlphabet(s, alphabet string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(alphabet, r) {
			return r
		}
		return -1
	}, s)
}

// deletePeriodic removes every k-th character at the given phase, modeling
// "one junk character inserted every k characters".
func deletePeriodic(s string, k, phase int) string {
	var b strings.Builder
	b.Grow(len(s))
	for i, ch := range []rune(s) {
		if i%k != phase {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// dropRatio is the fraction of the source that a salvage edit removed.
func dropRatio(keptLen, srcLen int) float64 {
	if srcLen == 0 {
		return 0.0
	}
	return 1.0 - float64(keptLen)/float64(srcLen)
}

// decodedText converts decoded bytes to text, dropping invalid UTF-8
// sequences. It accepts the result only when the trimmed text clears the
// minimum length and is mostly printable.
func decodedText(b []byte, minLen int) (string, bool) {
	t := strings.ToValidUTF8(string(b), "")
	if len(strings.TrimSpace(t)) < minLen {
		return "", false
	}
	if !scoring.IsMostlyPrintable(t, 0.9) {
		return "", false
	}
	return t, true
}

// alphabetClass renders an alphabet as a regexp character class body, escaping
// the metacharacters that are special inside a class. Token scans match
// maximal alphabet runs, so a scan never splits a longer valid run.
func alphabetClass(alphabet string) string {
	var b strings.Builder
	for _, ch := range alphabet {
		switch ch {
		case '\\', ']', '^', '-':
			b.WriteRune('\\')
		}
		b.WriteRune(ch)
	}
	return b.String()
}
