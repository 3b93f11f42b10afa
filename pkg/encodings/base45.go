/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: base45.go
Description: Base45 codec (RFC 9285) for Akaylee Decipher. Decodes groups of three
symbols into two bytes and a trailing group of two symbols into one byte, rejecting
out-of-range values and dangling symbols. The encoder exists for round-trip testing
and fixture generation.
*/

package encodings

import "fmt"

// Base45Alphabet is the RFC 9285 symbol table.
const Base45Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var base45Index = buildIndex(Base45Alphabet)

// DecodeBase45 decodes a Base45 token per RFC 9285. It fails on characters
// outside the alphabet, on values exceeding the group range, and on a dangling
// single trailing symbol.
func DecodeBase45(s string) ([]byte, error) {
	vals := make([]int, 0, len(s))
	for _, ch := range s {
		v, ok := base45Index[ch]
		if !ok {
			return nil, fmt.Errorf("base45: invalid character %q", ch)
		}
		vals = append(vals, v)
	}

	out := make([]byte, 0, len(vals)/3*2+1)
	for i := 0; i < len(vals); {
		switch {
		case i+2 < len(vals):
			v := vals[i] + 45*vals[i+1] + 45*45*vals[i+2]
			if v > 0xFFFF {
				return nil, fmt.Errorf("base45: group value %d out of range", v)
			}
			out = append(out, byte(v/256), byte(v%256))
			i += 3
		case i+2 == len(vals):
			v := vals[i] + 45*vals[i+1]
			if v > 0xFF {
				return nil, fmt.Errorf("base45: trailing value %d out of range", v)
			}
			out = append(out, byte(v))
			i += 2
		default:
			return nil, fmt.Errorf("base45: dangling trailing symbol")
		}
	}
	return out, nil
}

// EncodeBase45 encodes raw bytes per RFC 9285.
func EncodeBase45(data []byte) string {
	out := make([]byte, 0, (len(data)+1)/2*3)
	for i := 0; i+1 < len(data); i += 2 {
		v := int(data[i])*256 + int(data[i+1])
		out = append(out,
			Base45Alphabet[v%45],
			Base45Alphabet[(v/45)%45],
			Base45Alphabet[v/(45*45)])
	}
	if len(data)%2 == 1 {
		v := int(data[len(data)-1])
		out = append(out, Base45Alphabet[v%45], Base45Alphabet[v/45])
	}
	return string(out)
}

// buildIndex maps each alphabet symbol to its value.
func buildIndex(alphabet string) map[rune]int {
	idx := make(map[rune]int, len(alphabet))
	for i, ch := range alphabet {
		idx[ch] = i
	}
	return idx
}
