/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: penalty.go
Description: Provenance penalty and cleanliness bonus for Akaylee Decipher
strategies. A raw decode costs nothing, stripping and scanning cost a little,
structural surgery costs more, and every nested decode hop adds a moderate
surcharge, keeping the simplest successful hypothesis ranked first.
*/

package strategies

import (
	"strings"
	"unicode"
)

// allowedPunct are punctuation characters that ordinary plaintext may carry
// without being considered junk.
const allowedPunct = ` _-.,:;!?/|()[]{}'"` + "\\"

// pathPenalty derives a subtractive penalty from a provenance path. The
// ordering principle: raw < keep/scan < removal surgery, with a per-hop
// surcharge for nested decoding.
func pathPenalty(path string) float64 {
	if strings.HasPrefix(path, "raw") {
		return 0.55 * float64(strings.Count(path, "->nested"))
	}
	var pen float64
	if strings.Contains(path, "keep_") {
		pen += 0.35
	}
	if strings.Contains(path, "scan") {
		pen += 0.2
	}
	if strings.Contains(path, "rm_") || strings.Contains(path, "rm[") {
		pen += 1.1
	}
	pen += 0.55 * float64(strings.Count(path, "->nested"))
	return pen
}

// bonusProfile is a per-strategy Occam bonus for clean plaintext: mostly
// letters with little junk earns a boost, borderline output earns less, and
// everything else gets the fallback.
type bonusProfile struct {
	strongLetter float64
	strongOther  float64
	strongBonus  float64
	goodLetter   float64
	goodOther    float64
	goodBonus    float64
	weakBonus    float64
}

// bonus rates the decoded text against the profile thresholds.
func (p bonusProfile) bonus(t string) float64 {
	n := len([]rune(t))
	if n == 0 {
		return 0.0
	}
	letters, others := 0, 0
	for _, ch := range t {
		switch {
		case unicode.IsLetter(ch):
			letters++
		case unicode.IsDigit(ch) || strings.ContainsRune(allowedPunct, ch):
		default:
			others++
		}
	}
	lp := float64(letters) / float64(n)
	op := float64(others) / float64(n)
	switch {
	case lp >= p.strongLetter && op <= p.strongOther:
		return p.strongBonus
	case lp >= p.goodLetter && op <= p.goodOther:
		return p.goodBonus
	default:
		return p.weakBonus
	}
}

// Per-strategy profiles, tuned alongside the scorer weights.
var (
	base64Bonus = bonusProfile{0.75, 0.05, 1.6, 0.60, 0.10, 0.9, 0.3}
	base58Bonus = bonusProfile{0.75, 0.05, 1.4, 0.60, 0.10, 0.7, 0.2}
	base45Bonus = bonusProfile{0.75, 0.05, 1.3, 0.60, 0.10, 0.7, 0.2}
	base91Bonus = bonusProfile{0.70, 0.08, 1.1, 0.55, 0.12, 0.6, 0.2}
)
