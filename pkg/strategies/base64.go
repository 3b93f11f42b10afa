/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: base64.go
Description: Base64-family salvage strategy for Akaylee Decipher. Attempts hex,
standard and URL-safe Base64, Base32, Ascii85, and Base85 on the whole input and
on embedded tokens, repairing look-alike obfuscation characters, stripping noise,
deleting periodic junk, removing frequent digits and mixed alnum n-grams, and
chasing nested decodes, all under a soft time budget.
*/

package strategies

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/kleascm/akaylee-decipher/pkg/encodings"
	"github.com/kleascm/akaylee-decipher/pkg/interfaces"
	"github.com/kleascm/akaylee-decipher/pkg/scoring"
)

const (
	base64StdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/="
	base64URLAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_="
)

var (
	reBase64Std = regexp.MustCompile(`[A-Za-z0-9+/]{8,}={0,2}`)
	reBase64URL = regexp.MustCompile(`[A-Za-z0-9_-]{8,}={0,2}`)

	// loose shape check used before chasing a nested decode
	reNestedShape = regexp.MustCompile(`^[A-Za-z0-9+/_-]{8,}={0,2}$`)

	// common look-alike substitutions seen in obfuscated tokens
	base64Repairs = map[rune]rune{
		'|': 'I', '!': 'I', '$': 'S', '@': 'A',
		'€': 'E', '£': 'L', '—': '-', '–': '-', '·': '.',
	}
)

// Base64Strategy implements the Base64-family salvage search.
type Base64Strategy struct {
	scorer *scoring.Scorer
}

// NewBase64Strategy creates a new Base64-family strategy.
func NewBase64Strategy(scorer *scoring.Scorer) *Base64Strategy {
	return &Base64Strategy{scorer: scorer}
}

// Name returns the strategy family name.
func (s *Base64Strategy) Name() string { return "base" }

// Description returns a description of this strategy.
func (s *Base64Strategy) Description() string {
	return "Brute-forces the Base64 family (hex, base64, base32, ascii85, base85) with obfuscation repair, noise stripping, and nested decoding"
}

// DefaultConfig returns the documented defaults for this strategy.
func (s *Base64Strategy) DefaultConfig() *interfaces.StrategyConfig {
	return &interfaces.StrategyConfig{
		BudgetS:           5.0,
		MinTokenLen:       12,
		MinPlainLen:       6,
		ScanSubstrings:    true,
		PeriodicMaxK:      6,
		AggressiveSalvage: true,
		NestedPasses:      1,
		AllowURLSafe:      true,
		DigitComboK:       2,
		KGramLengths:      []int{2, 3},
		KGramTopK:         6,
	}
}

// Run searches the ciphertext and returns every candidate found in budget.
func (s *Base64Strategy) Run(ciphertext string, cfg *interfaces.StrategyConfig) []interfaces.Candidate {
	src := normalize(resolveCiphertext(ciphertext, cfg))
	sv := newSalvage(s.Name(), s.scorer, base64Bonus, cfg.BudgetS)

	tryDecode := func(tok, path string, drop float64) {
		if sv.seen(tok) {
			return
		}
		for _, dec := range encodings.DecodeFamily(tok) {
			if sv.budget.Expired() {
				return
			}
			plain, ok := decodedText(dec.Data, cfg.MinPlainLen)
			if !ok {
				continue
			}
			full := path + "->" + dec.Encoding
			sv.add(full, plain, drop)
			s.chaseNested(sv, plain, full, drop, cfg)
		}
	}

	// 1) Whole string: normalized and repaired variants
	for _, tok := range repairVariants(src) {
		if sv.budget.Expired() {
			return sv.results
		}
		tryDecode(tok, "raw", 0.0)
	}

	// 2) Keep only alphabet characters (std and URL-safe)
	for _, st := range []struct{ alphabet, tag string }{
		{base64StdAlphabet, "keep_std"},
		{base64URLAlphabet, "keep_url"},
	} {
		if sv.budget.Expired() {
			return sv.results
		}
		kept := stripToAlphabet(src, st.alphabet)
		if len(kept) >= cfg.MinTokenLen {
			tryDecode(kept, st.tag, dropRatio(len(kept), len(src)))
		}
	}

	// 3) Aggressive salvage: digit removal, combos, periodic deletion, n-grams
	if cfg.AggressiveSalvage && !sv.budget.Expired() {
		s.removeDigits(sv, src, cfg, tryDecode)
		s.removeDigitCombos(sv, src, cfg, tryDecode)
		s.removePeriodic(sv, src, cfg, tryDecode)
		s.removeKGrams(sv, src, cfg, tryDecode)
	}

	// 4) Embedded token scan with repair variants
	if cfg.ScanSubstrings && !sv.budget.Expired() {
		s.scanTokens(sv, src, cfg)
	}

	return sv.results
}

// removeDigits deletes each frequent digit on its own.
func (s *Base64Strategy) removeDigits(sv *salvage, src string, cfg *interfaces.StrategyConfig, try func(string, string, float64)) {
	for _, d := range topDigits(src, 10) {
		if sv.budget.Expired() {
			return
		}
		if strings.Count(src, string(d)) < 3 {
			continue
		}
		cleaned := strings.ReplaceAll(src, string(d), "")
		s.keepAndTry(cleaned, src, fmt.Sprintf("rm_digit[%c]", d), cfg, try)
	}
}

// removeDigitCombos deletes small combinations of the most frequent digits.
func (s *Base64Strategy) removeDigitCombos(sv *salvage, src string, cfg *interfaces.StrategyConfig, try func(string, string, float64)) {
	digits := topDigits(src, 3)
	for r := 2; r <= cfg.DigitComboK && r <= len(digits); r++ {
		for _, combo := range combinations(digits, r) {
			if sv.budget.Expired() {
				return
			}
			cleaned := src
			for _, d := range combo {
				cleaned = strings.ReplaceAll(cleaned, string(d), "")
			}
			s.keepAndTry(cleaned, src, fmt.Sprintf("rm_dcombo[%s]", string(combo)), cfg, try)
		}
	}
}

// removePeriodic deletes every k-th character for small periods and phases.
func (s *Base64Strategy) removePeriodic(sv *salvage, src string, cfg *interfaces.StrategyConfig, try func(string, string, float64)) {
	for k := 2; k <= cfg.PeriodicMaxK; k++ {
		if sv.budget.Expired() {
			return
		}
		for phase := 0; phase < k; phase++ {
			cleaned := deletePeriodic(src, k, phase)
			s.keepAndTry(cleaned, src, fmt.Sprintf("rm_periodic(k=%d,ph=%d)", k, phase), cfg, try)
		}
	}
}

// removeKGrams deletes frequent short alphanumeric n-grams that mix letters
// and digits, modeling recurring salt tokens.
func (s *Base64Strategy) removeKGrams(sv *salvage, src string, cfg *interfaces.StrategyConfig, try func(string, string, float64)) {
	for _, n := range cfg.KGramLengths {
		for _, g := range topMixedKGrams(src, n, cfg.KGramTopK) {
			if sv.budget.Expired() {
				return
			}
			cleaned := strings.ReplaceAll(src, g, "")
			s.keepAndTry(cleaned, src, fmt.Sprintf("rm_kgram[%s]", g), cfg, try)
		}
	}
}

// keepAndTry strips a cleaned string to both alphabets and attempts decoding.
func (s *Base64Strategy) keepAndTry(cleaned, src, tag string, cfg *interfaces.StrategyConfig, try func(string, string, float64)) {
	for _, st := range []struct{ alphabet, suffix string }{
		{base64StdAlphabet, "_std"},
		{base64URLAlphabet, "_url"},
	} {
		kept := stripToAlphabet(cleaned, st.alphabet)
		if len(kept) >= cfg.MinTokenLen {
			try(kept, tag+st.suffix, dropRatio(len(kept), len(src)))
		}
	}
}

// scanTokens decodes embedded alphabet runs found in the raw input.
func (s *Base64Strategy) scanTokens(sv *salvage, src string, cfg *interfaces.StrategyConfig) {
	type span struct {
		kind string
		a, b int
	}
	var spans []span
	for _, m := range reBase64Std.FindAllStringIndex(src, -1) {
		spans = append(spans, span{"b64", m[0], m[1]})
	}
	if cfg.AllowURLSafe {
		for _, m := range reBase64URL.FindAllStringIndex(src, -1) {
			spans = append(spans, span{"b64url", m[0], m[1]})
		}
	}

	seen := make(map[[2]int]bool)
	for _, sp := range spans {
		if sv.budget.Expired() {
			return
		}
		if sp.b-sp.a < cfg.MinTokenLen || seen[[2]int{sp.a, sp.b}] {
			continue
		}
		seen[[2]int{sp.a, sp.b}] = true

		tag := fmt.Sprintf("scan[%s@%d:%d]", sp.kind, sp.a, sp.b)
		for _, repaired := range repairVariants(src[sp.a:sp.b]) {
			if sv.budget.Expired() {
				return
			}
			for _, dec := range encodings.DecodeFamily(repaired) {
				if dec.Encoding != "base64" && dec.Encoding != "urlsafe_b64" {
					continue
				}
				plain, ok := decodedText(dec.Data, cfg.MinPlainLen)
				if !ok {
					continue
				}
				full := tag + "->" + dec.Encoding
				sv.add(full, plain, 0.0)
				s.chaseNested(sv, plain, full, 0.0, cfg)
			}
		}
	}
}

// chaseNested re-decodes output that is loosely shaped like another supported
// token, up to the configured pass count, chaining provenance labels.
func (s *Base64Strategy) chaseNested(sv *salvage, text, path string, drop float64, cfg *interfaces.StrategyConfig) {
	type queued struct{ text, path string }
	queue := []queued{{text, path}}
	for hop := 0; hop < cfg.NestedPasses; hop++ {
		if sv.budget.Expired() {
			return
		}
		var next []queued
		for _, q := range queue {
			tok := strings.TrimSpace(q.text)
			if !reNestedShape.MatchString(tok) {
				continue
			}
			for _, dec := range encodings.DecodeFamily(tok) {
				plain, ok := decodedText(dec.Data, cfg.MinPlainLen)
				if !ok {
					continue
				}
				p := q.path + "->nested(" + dec.Encoding + ")"
				sv.add(p, plain, drop)
				next = append(next, queued{plain, p})
			}
		}
		queue = next
	}
}

// repairVariants maps look-alike characters back to their plausible originals
// and swaps standard/URL-safe punctuation both ways.
func repairVariants(tok string) []string {
	repaired := strings.Map(func(r rune) rune {
		if to, ok := base64Repairs[r]; ok {
			return to
		}
		return r
	}, tok)

	variants := []string{tok, repaired,
		strings.NewReplacer("-", "+", "_", "/").Replace(repaired),
		strings.NewReplacer("+", "-", "/", "_").Replace(repaired),
	}
	seen := make(map[string]bool, len(variants))
	out := variants[:0]
	for _, v := range variants {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// topDigits returns the most frequent digits of s, most common first.
func topDigits(s string, k int) []byte {
	var counts [10]int
	for _, ch := range s {
		if ch >= '0' && ch <= '9' {
			counts[ch-'0']++
		}
	}
	order := make([]int, 0, 10)
	for d, c := range counts {
		if c > 0 {
			order = append(order, d)
		}
	}
	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	if len(order) > k {
		order = order[:k]
	}
	out := make([]byte, len(order))
	for i, d := range order {
		out[i] = byte('0' + d)
	}
	return out
}

// topMixedKGrams returns the most frequent length-n substrings that are fully
// alphanumeric and contain at least one letter and one digit.
func topMixedKGrams(s string, n, topK int) []string {
	counts := make(map[string]int)
	for i := 0; i+n <= len(s); i++ {
		g := s[i : i+n]
		if isMixedAlnum(g) {
			counts[g]++
		}
	}
	grams := make([]string, 0, len(counts))
	for g := range counts {
		grams = append(grams, g)
	}
	sort.Slice(grams, func(i, j int) bool {
		if counts[grams[i]] != counts[grams[j]] {
			return counts[grams[i]] > counts[grams[j]]
		}
		return grams[i] < grams[j]
	})
	if len(grams) > topK {
		grams = grams[:topK]
	}
	return grams
}

func isMixedAlnum(g string) bool {
	hasLetter, hasDigit := false, false
	for _, ch := range g {
		switch {
		case ch >= '0' && ch <= '9':
			hasDigit = true
		case (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z'):
			hasLetter = true
		default:
			return false
		}
	}
	return hasLetter && hasDigit
}

// combinations returns all r-element combinations of items, order-preserving.
func combinations(items []byte, r int) [][]byte {
	var out [][]byte
	var rec func(start int, cur []byte)
	rec = func(start int, cur []byte) {
		if len(cur) == r {
			out = append(out, append([]byte{}, cur...))
			return
		}
		for i := start; i < len(items); i++ {
			rec(i+1, append(cur, items[i]))
		}
	}
	rec(0, nil)
	return out
}
