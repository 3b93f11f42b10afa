/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: family.go
Description: Base64-family decoder fan-out for Akaylee Decipher. Attempts hex,
standard and URL-safe Base64, Base32, Ascii85, and RFC 1924 Base85 independently
on a candidate token, auto-padding each token to the encoding's required length
boundary first. A token may legitimately decode under more than one encoding.
*/

package encodings

import (
	"encoding/ascii85"
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// Decoded is one successful interpretation of a token by a family member.
type Decoded struct {
	Encoding string // family member that accepted the token
	Data     []byte // decoded payload
}

// Base85Alphabet is the RFC 1924 symbol table.
const Base85Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz!#$%&()*+-;<=>?@^_`{|}~"

var base85Index = buildIndex(Base85Alphabet)

// AutoPad pads a token with '=' up to the next multiple of block.
func AutoPad(s string, block int) string {
	if m := len(s) % block; m != 0 {
		return s + strings.Repeat("=", block-m)
	}
	return s
}

// DecodeFamily attempts every family member on the token and returns one
// Decoded per member that accepted it. An empty result is the normal outcome
// for tokens that fit no encoding; it is never an error.
func DecodeFamily(s string) []Decoded {
	var outs []Decoded

	if b, err := decodeHex(s); err == nil {
		outs = append(outs, Decoded{Encoding: "hex", Data: b})
	}
	if b, err := base64.StdEncoding.DecodeString(AutoPad(s, 4)); err == nil {
		outs = append(outs, Decoded{Encoding: "base64", Data: b})
	}
	if b, err := base64.URLEncoding.DecodeString(AutoPad(s, 4)); err == nil {
		outs = append(outs, Decoded{Encoding: "urlsafe_b64", Data: b})
	}
	if b, err := base32.StdEncoding.DecodeString(AutoPad(s, 8)); err == nil {
		outs = append(outs, Decoded{Encoding: "base32", Data: b})
	}
	if b, err := decodeAscii85(s); err == nil {
		outs = append(outs, Decoded{Encoding: "a85", Data: b})
	}
	if b, err := DecodeBase85(s); err == nil {
		outs = append(outs, Decoded{Encoding: "b85", Data: b})
	}
	return outs
}

// decodeHex decodes an even-length all-hex token.
func decodeHex(s string) ([]byte, error) {
	if len(s) == 0 || len(s)%2 != 0 {
		return nil, fmt.Errorf("hex: invalid length %d", len(s))
	}
	return hex.DecodeString(s)
}

// decodeAscii85 decodes an Ascii85 token, flushing any trailing partial group.
func decodeAscii85(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("a85: empty token")
	}
	dst := make([]byte, 4*(len(s)/5+1)+4)
	ndst, nsrc, err := ascii85.Decode(dst, []byte(s), true)
	if err != nil {
		return nil, err
	}
	if nsrc < len(s) {
		return nil, fmt.Errorf("a85: trailing garbage at offset %d", nsrc)
	}
	return dst[:ndst], nil
}

// DecodeBase85 decodes an RFC 1924 Base85 token. Trailing partial groups are
// completed with the highest symbol and the surplus bytes are trimmed, the
// same convention the reference implementations use.
func DecodeBase85(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("b85: empty token")
	}
	pad := 0
	if m := len(s) % 5; m != 0 {
		pad = 5 - m
		s += strings.Repeat("~", pad)
	}
	out := make([]byte, 0, len(s)/5*4)
	for i := 0; i < len(s); i += 5 {
		var v uint64
		for _, ch := range s[i : i+5] {
			d, ok := base85Index[ch]
			if !ok {
				return nil, fmt.Errorf("b85: invalid character %q", ch)
			}
			v = v*85 + uint64(d)
		}
		if v > 0xFFFFFFFF {
			return nil, fmt.Errorf("b85: group value out of range")
		}
		out = append(out, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	}
	return out[:len(out)-pad], nil
}

// EncodeBase85 encodes raw bytes as RFC 1924 Base85 text.
func EncodeBase85(data []byte) string {
	pad := 0
	if m := len(data) % 4; m != 0 {
		pad = 4 - m
		data = append(append([]byte{}, data...), make([]byte, pad)...)
	}
	out := make([]byte, 0, len(data)/4*5)
	for i := 0; i < len(data); i += 4 {
		v := uint64(data[i])<<24 | uint64(data[i+1])<<16 | uint64(data[i+2])<<8 | uint64(data[i+3])
		var group [5]byte
		for j := 4; j >= 0; j-- {
			group[j] = Base85Alphabet[v%85]
			v /= 85
		}
		out = append(out, group[:]...)
	}
	return string(out[:len(out)-pad])
}
