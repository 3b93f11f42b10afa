/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: fitness.go
Description: English-likelihood fitness scorer for Akaylee Decipher. Combines
chi-square letter-frequency fit, index of coincidence, n-gram hits, character
class balance, wordness, and a set of gating adjustments (length damping,
control characters, printability, tail noise) into one composite score used to
rank decode candidates.
*/

package scoring

import (
	"math"
	"strings"
	"unicode"
)

// englishIC is the index-of-coincidence target for English text.
const englishIC = 0.066

// Weights holds the tunable signal weights of the scorer. The exact values
// are empirically tuned; what matters is the relative ordering (frequency,
// IC, and class signals dominate, n-gram and wordness are secondary, and the
// rest are gating adjustments).
type Weights struct {
	ChiSquare  float64 // letter-frequency fit
	IC         float64 // index of coincidence
	NGram      float64 // common n-gram hits
	CharClass  float64 // character-class balance
	SnakeNGram float64 // case-transition side-channel n-gram bonus
	Separator  float64 // per space/underscore reward
	Wordness   float64 // separator-delimited word quality

	ControlPerChar float64 // penalty per non-printable control byte
	ControlCap     float64 // upper bound on the control penalty
	ShortPenalty   float64 // flat penalty for strings shorter than 4 chars
	TinyPenalty    float64 // additional penalty for strings of length <= 2
	TailNoise      float64 // penalty for a short all-uppercase trailing token

	PrintableFloor  float64 // minimum printable fraction before gating kicks in
	PrintableFactor float64 // multiplier applied below the floor
}

// DefaultWeights returns the tuned default weights.
func DefaultWeights() Weights {
	return Weights{
		ChiSquare:  3.0,
		IC:         2.5,
		NGram:      1.2,
		CharClass:  1.3,
		SnakeNGram: 0.8,
		Separator:  0.1,
		Wordness:   0.6,

		ControlPerChar: 0.5,
		ControlCap:     3.0,
		ShortPenalty:   0.8,
		TinyPenalty:    1.2,
		TailNoise:      0.6,

		PrintableFloor:  0.9,
		PrintableFactor: 0.6,
	}
}

// Scorer scores arbitrary decoded text for resemblance to natural language or
// structured identifier text. Score is a pure function: deterministic, no
// failure modes, always returns a number.
type Scorer struct {
	weights Weights
}

// NewScorer creates a scorer with the default weights.
func NewScorer() *Scorer {
	return &Scorer{weights: DefaultWeights()}
}

// NewScorerWithWeights creates a scorer with custom weights.
func NewScorerWithWeights(w Weights) *Scorer {
	return &Scorer{weights: w}
}

// Score computes the composite fitness of t. Higher is better; negative
// values are valid and mean "poor".
func (s *Scorer) Score(t string) float64 {
	w := s.weights
	n := len([]rune(t))

	// Statistical signals are damped for short strings so lucky statistics
	// on tiny inputs cannot win.
	damp := math.Min(1.0, float64(n)/16.0)

	base := ChiSquareEnglish(t) * w.ChiSquare
	base += IndexOfCoincidence(t) * w.IC
	base += NGramHits(t) * w.NGram
	base += charClassScore(t) * w.CharClass
	base *= damp

	// camelCase inputs get partial credit for their latent word boundaries
	snake := SnakeFromCamel(t)
	if snake != strings.ToLower(t) {
		base += NGramHits(snake) * w.SnakeNGram * damp
	}

	base += float64(strings.Count(t, " ")+strings.Count(t, "_")) * w.Separator
	base += Wordness(t) * w.Wordness
	base -= controlPenalty(t, w)
	base -= tailNoisePenalty(t, w)

	if n < 4 {
		base -= w.ShortPenalty
	}
	if n <= 2 {
		base -= w.TinyPenalty
	}
	if !IsMostlyPrintable(t, w.PrintableFloor) {
		base *= w.PrintableFactor
	}
	return base
}

// ChiSquareEnglish compares the observed uppercase-letter distribution of t
// against the English unigram distribution. Returns 1/(1+chi²): close matches
// score near 1, poor matches approach 0, letterless input scores 0.
func ChiSquareEnglish(t string) float64 {
	var counts [26]int
	total := 0
	for _, ch := range strings.ToUpper(t) {
		if ch >= 'A' && ch <= 'Z' {
			counts[ch-'A']++
			total++
		}
	}
	if total == 0 {
		return 0.0
	}
	chi := 0.0
	for c, pct := range englishFreq {
		expected := float64(total) * pct / 100.0
		observed := float64(counts[c-'A'])
		chi += (observed - expected) * (observed - expected) / expected
	}
	return 1.0 / (1.0 + chi)
}

// IndexOfCoincidence computes the classical IC statistic over letters only and
// maps it to [0,1] by distance from the English target 0.066.
func IndexOfCoincidence(t string) float64 {
	var counts [26]int
	n := 0
	for _, ch := range strings.ToUpper(t) {
		if ch >= 'A' && ch <= 'Z' {
			counts[ch-'A']++
			n++
		}
	}
	if n < 2 {
		return 0.0
	}
	num := 0
	for _, c := range counts {
		num += c * (c - 1)
	}
	ic := float64(num) / float64(n*(n-1))
	return math.Max(0.0, 1.0-math.Abs(ic-englishIC)/englishIC)
}

// IsMostlyPrintable reports whether at least thresh of the characters are
// ASCII-printable (including common whitespace).
func IsMostlyPrintable(s string, thresh float64) bool {
	good, total := 0, 0
	for _, ch := range s {
		total++
		if isPrintableASCII(ch) {
			good++
		}
	}
	if total == 0 {
		return false
	}
	return float64(good)/float64(total) >= thresh
}

// Wordness splits on common separators, keeps alphabetic runs of length >= 3
// as words, and rewards word count plus each word's vowel ratio for being
// close to ~45%.
func Wordness(t string) float64 {
	var score float64
	for _, w := range splitTokens(t) {
		if len(w) < 3 || !allAlpha(w) {
			continue
		}
		vr := vowelRatio(w)
		score += 0.25 + math.Max(0.0, 0.3-math.Abs(vr-0.45))
	}
	return score
}

// charClassScore rewards letter proportion and penalizes digits, junk
// characters, and stray base64 padding markers.
func charClassScore(t string) float64 {
	n := len([]rune(t))
	if n == 0 {
		return 0.0
	}
	letters, digits, separators := 0, 0, 0
	for _, ch := range t {
		switch {
		case unicode.IsLetter(ch):
			letters++
		case unicode.IsDigit(ch):
			digits++
		case ch == ' ' || ch == '_' || ch == '-':
			separators++
		}
	}
	others := n - letters - digits - separators

	score := float64(letters) / float64(n) * 2.2
	score -= float64(digits) / float64(n) * 0.9
	score -= float64(others) / float64(n) * 2.2
	// base64 padding in a non-decoder context is a red flag
	if strings.Contains(t, "==") {
		score -= 0.8
	}
	return score
}

// controlPenalty charges a bounded penalty for non-printable control bytes,
// excluding common whitespace.
func controlPenalty(t string, w Weights) float64 {
	count := 0
	for _, ch := range t {
		if ch == '\t' || ch == '\n' || ch == '\r' {
			continue
		}
		if ch < 0x20 || ch == 0x7F {
			count++
		}
	}
	return math.Min(w.ControlCap, float64(count)*w.ControlPerChar)
}

// tailNoisePenalty charges a fixed penalty when the last separator-delimited
// token is a short all-uppercase run, a common artifact of truncated
// encodings.
func tailNoisePenalty(t string, w Weights) float64 {
	tokens := splitTokens(t)
	if len(tokens) == 0 {
		return 0.0
	}
	last := tokens[len(tokens)-1]
	if len(last) < 2 || len(last) > 5 {
		return 0.0
	}
	for _, ch := range last {
		if ch < 'A' || ch > 'Z' {
			return 0.0
		}
	}
	return w.TailNoise
}

func splitTokens(t string) []string {
	return strings.FieldsFunc(t, func(r rune) bool {
		switch r {
		case ' ', '_', '-', '.', ',', ':', ';', '!', '?', '/', '\t', '\n', '\r':
			return true
		}
		return false
	})
}

func allAlpha(s string) bool {
	for _, ch := range s {
		if !unicode.IsLetter(ch) {
			return false
		}
	}
	return true
}

func vowelRatio(s string) float64 {
	if s == "" {
		return 0.0
	}
	vowels := 0
	for _, ch := range strings.ToLower(s) {
		switch ch {
		case 'a', 'e', 'i', 'o', 'u', 'y':
			vowels++
		}
	}
	return float64(vowels) / float64(len([]rune(s)))
}

func isPrintableASCII(ch rune) bool {
	if ch >= 0x20 && ch < 0x7F {
		return true
	}
	switch ch {
	case '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
