/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: base91.go
Description: basE91 codec for Akaylee Decipher. Bit-packing decoder that accumulates
13 or 14 bits per symbol pair into a bit buffer and emits bytes as they fill, with
trailing partial state flushed as one final byte. The encoder exists for round-trip
testing and fixture generation.
*/

package encodings

import "fmt"

// Base91Alphabet is the canonical basE91 symbol table.
const Base91Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789" +
	"!#$%&()*+,./:;<=>?@[]^_`{|}~\""

var base91Index = buildIndex(Base91Alphabet)

// DecodeBase91 decodes a basE91 token. Symbol pairs contribute 13 or 14 bits
// depending on the pair value; an unpaired trailing symbol flushes the
// remaining buffered bits as one final byte.
func DecodeBase91(s string) ([]byte, error) {
	v := -1
	b, n := 0, 0
	out := make([]byte, 0, len(s))

	for _, ch := range s {
		c, ok := base91Index[ch]
		if !ok {
			return nil, fmt.Errorf("base91: invalid character %q", ch)
		}
		if v < 0 {
			v = c
			continue
		}
		v += c * 91
		b |= v << n
		if v&8191 > 88 {
			n += 13
		} else {
			n += 14
		}
		for {
			out = append(out, byte(b&255))
			b >>= 8
			n -= 8
			if n <= 7 {
				break
			}
		}
		v = -1
	}
	if v >= 0 {
		out = append(out, byte((b|v<<n)&255))
	}
	return out, nil
}

// EncodeBase91 encodes raw bytes as basE91 text.
func EncodeBase91(data []byte) string {
	b, n := 0, 0
	out := make([]byte, 0, len(data)*5/4+2)

	for _, ch := range data {
		b |= int(ch) << n
		n += 8
		if n > 13 {
			v := b & 8191
			if v > 88 {
				b >>= 13
				n -= 13
			} else {
				v = b & 16383
				b >>= 14
				n -= 14
			}
			out = append(out, Base91Alphabet[v%91], Base91Alphabet[v/91])
		}
	}
	if n > 0 {
		out = append(out, Base91Alphabet[b%91])
		if n > 7 || b > 90 {
			out = append(out, Base91Alphabet[b/91])
		}
	}
	return string(out)
}
