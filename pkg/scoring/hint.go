/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: hint.go
Description: Naming-convention hint helpers for Akaylee Decipher. Suggests a
snake_case or lowercase rendering of a winning plaintext when that rendering
looks more word-like than the raw text. Display convenience only; the ranked
candidate list is never altered by these helpers.
*/

package scoring

import (
	"strings"
	"unicode"
)

// SnakeFromCamel inserts an underscore at every lowercase-to-uppercase
// transition and lowercases the result.
func SnakeFromCamel(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	runes := []rune(s)
	for i, ch := range runes {
		if i > 0 && unicode.IsLower(runes[i-1]) && unicode.IsUpper(ch) {
			b.WriteRune('_')
		}
		b.WriteRune(ch)
	}
	return strings.ToLower(b.String())
}

// SmartHint suggests an alternative rendering of t when one looks more
// word-like than the raw text. It returns a label ("snake" or "lower"), the
// rendered value, and whether a hint applies.
func SmartHint(t string) (string, string, bool) {
	lower := strings.ToLower(t)
	snake := SnakeFromCamel(t)

	// camelCase: the inserted underscores expose latent word boundaries
	if snake != lower && Wordness(snake) > Wordness(t) {
		return "snake", snake, true
	}
	// SHOUTING: plain lowercase reads better than an all-uppercase winner
	if lower != t && t == strings.ToUpper(t) && hasLetter(t) {
		return "lower", lower, true
	}
	return "", "", false
}

func hasLetter(s string) bool {
	for _, ch := range s {
		if unicode.IsLetter(ch) {
			return true
		}
	}
	return false
}
