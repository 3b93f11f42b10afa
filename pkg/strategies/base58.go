/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: base58.go
Description: Base58 salvage strategy for Akaylee Decipher. Sweeps the configured
alphabets (bitcoin, ripple, flickr) and check modes, stripping non-alphabet noise,
deleting periodic junk, scanning embedded tokens, and chasing base64-shaped nested
payloads inside the decoded output.
*/

package strategies

import (
	"fmt"
	"regexp"

	"github.com/kleascm/akaylee-decipher/pkg/encodings"
	"github.com/kleascm/akaylee-decipher/pkg/interfaces"
	"github.com/kleascm/akaylee-decipher/pkg/scoring"
)

// Base58Strategy implements the Base58 salvage search.
type Base58Strategy struct {
	scorer *scoring.Scorer
}

// NewBase58Strategy creates a new Base58 strategy.
func NewBase58Strategy(scorer *scoring.Scorer) *Base58Strategy {
	return &Base58Strategy{scorer: scorer}
}

// Name returns the strategy family name.
func (s *Base58Strategy) Name() string { return "base58" }

// Description returns a description of this strategy.
func (s *Base58Strategy) Description() string {
	return "Brute-forces Base58 across the bitcoin, ripple, and flickr alphabets with optional Base58Check verification and noise salvage"
}

// DefaultConfig returns the documented defaults for this strategy.
func (s *Base58Strategy) DefaultConfig() *interfaces.StrategyConfig {
	return &interfaces.StrategyConfig{
		BudgetS:           5.0,
		MinTokenLen:       10,
		MinPlainLen:       6,
		ScanSubstrings:    true,
		PeriodicMaxK:      6,
		AggressiveSalvage: true,
		NestedPasses:      1,
		Alphabets:         []string{"bitcoin"},
		CheckModes:        []string{"none", "b58check"},
	}
}

// Run searches the ciphertext and returns every candidate found in budget.
func (s *Base58Strategy) Run(ciphertext string, cfg *interfaces.StrategyConfig) []interfaces.Candidate {
	src := normalize(resolveCiphertext(ciphertext, cfg))
	sv := newSalvage(s.Name(), s.scorer, base58Bonus, cfg.BudgetS)

	alphabets := cfg.Alphabets
	if len(alphabets) == 0 {
		alphabets = []string{"bitcoin"}
	}
	modes := cfg.CheckModes
	if len(modes) == 0 {
		modes = []string{"none"}
	}

	for _, name := range alphabets {
		if sv.budget.Expired() {
			break
		}
		table, ok := encodings.Base58Alphabets[name]
		if !ok {
			name, table = "bitcoin", encodings.Base58StdAlphabet
		}

		try := func(tok, path string, drop float64) {
			key := name + ":" + tok
			if sv.seen(key) {
				return
			}
			raw, err := encodings.DecodeBase58(tok, name)
			if err != nil {
				return
			}
			for _, mode := range modes {
				data := raw
				tag := path
				if mode == "b58check" {
					payload, valid := encodings.Base58CheckVerify(raw)
					if !valid {
						continue
					}
					data, tag = payload, path+"+b58check"
				}
				plain, ok := decodedText(data, cfg.MinPlainLen)
				if !ok {
					continue
				}
				full := fmt.Sprintf("%s->b58(%s)", tag, name)
				sv.add(full, plain, drop)
				s.chaseNested(sv, plain, full, drop, cfg)
			}
		}

		// 1) Whole normalized string
		try(src, "raw", 0.0)

		// 2) Keep only alphabet characters
		kept := stripToAlphabet(src, table)
		if len(kept) >= cfg.MinTokenLen && kept != src {
			try(kept, "keep_b58", dropRatio(len(kept), len(src)))
		}

		// 3) Periodic deletion over the kept string
		if cfg.AggressiveSalvage {
			for k := 2; k <= cfg.PeriodicMaxK; k++ {
				if sv.budget.Expired() {
					break
				}
				for phase := 0; phase < k; phase++ {
					cleaned := stripToAlphabet(deletePeriodic(src, k, phase), table)
					if len(cleaned) >= cfg.MinTokenLen {
						try(cleaned, fmt.Sprintf("rm_periodic(k=%d,ph=%d)", k, phase),
							dropRatio(len(cleaned), len(src)))
					}
				}
			}
		}

		// 4) Embedded token scan
		if cfg.ScanSubstrings && !sv.budget.Expired() {
			re := regexp.MustCompile(fmt.Sprintf("[%s]{%d,}", alphabetClass(table), cfg.MinTokenLen))
			for _, m := range re.FindAllStringIndex(src, -1) {
				if sv.budget.Expired() {
					break
				}
				if m[1]-m[0] == len(src) {
					continue // whole string already tried raw
				}
				try(src[m[0]:m[1]], fmt.Sprintf("scan[%d:%d]", m[0], m[1]), 0.0)
			}
		}
	}

	return sv.results
}

// chaseNested re-decodes base64-shaped plaintext, chaining provenance labels.
func (s *Base58Strategy) chaseNested(sv *salvage, text, path string, drop float64, cfg *interfaces.StrategyConfig) {
	for hop := 0; hop < cfg.NestedPasses; hop++ {
		if sv.budget.Expired() || !reNestedShape.MatchString(text) {
			return
		}
		progressed := false
		for _, dec := range encodings.DecodeFamily(text) {
			if dec.Encoding != "base64" && dec.Encoding != "urlsafe_b64" {
				continue
			}
			plain, ok := decodedText(dec.Data, cfg.MinPlainLen)
			if !ok {
				continue
			}
			path = path + "->nested(" + dec.Encoding + ")"
			sv.add(path, plain, drop)
			text, progressed = plain, true
			break
		}
		if !progressed {
			return
		}
	}
}
