/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: shift.go
Description: Letter-shift primitives for Akaylee Decipher. Case-preserving Caesar
shifts, the atbash mirror, and the progressive position-dependent shift that
generalizes ROT-N with a linearly increasing key.
*/

package encodings

// Shift direction and mode labels for ProgressiveShift.
const (
	ModeDecode = "decode"
	ModeEncode = "encode"
	OrderLTR   = "LTR"
	OrderRTL   = "RTL"
)

// ShiftRune shifts an ASCII letter by k positions, case-preserving. Negative
// shifts are allowed; non-letters pass through unchanged.
func ShiftRune(r rune, k int) rune {
	switch {
	case r >= 'a' && r <= 'z':
		return 'a' + (r-'a'+rune(mod26(k)))%26
	case r >= 'A' && r <= 'Z':
		return 'A' + (r-'A'+rune(mod26(k)))%26
	default:
		return r
	}
}

// AtbashRune mirrors an ASCII letter across the alphabet, case-preserving.
func AtbashRune(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z':
		return 'z' - (r - 'a')
	case r >= 'A' && r <= 'Z':
		return 'Z' - (r - 'A')
	default:
		return r
	}
}

// RotN shifts every letter of s forward by k positions.
func RotN(s string, k int) string {
	out := []rune(s)
	for i, r := range out {
		out[i] = ShiftRune(r, k)
	}
	return string(out)
}

// Atbash mirrors every letter of s across the alphabet.
func Atbash(s string) string {
	out := []rune(s)
	for i, r := range out {
		out[i] = AtbashRune(r)
	}
	return string(out)
}

// ProgressiveShift applies a position-dependent shift: the symbol at logical
// position j receives shift (start + j*step) mod 26, where j counts from the
// left for OrderLTR and from the right for OrderRTL. ModeDecode flips the sign
// of the shift. Step may be negative.
func ProgressiveShift(s string, start, step int, mode, order string) string {
	sign := 1
	if mode == ModeDecode {
		sign = -1
	}
	runes := []rune(s)
	out := make([]rune, len(runes))
	for i, r := range runes {
		j := i
		if order == OrderRTL {
			j = len(runes) - 1 - i
		}
		k := mod26(start + j*step)
		out[i] = ShiftRune(r, sign*k)
	}
	return string(out)
}

// mod26 normalizes a shift into [0, 26).
func mod26(k int) int {
	return (k%26 + 26) % 26
}
