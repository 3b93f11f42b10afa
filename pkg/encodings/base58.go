/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: base58.go
Description: Base58 codec for Akaylee Decipher. Big-integer positional decoding
over the bitcoin, ripple, and flickr alphabets with leading zero-symbol handling,
plus Base58Check verification via a double SHA-256 checksum. The encoder exists
for round-trip testing and fixture generation.
*/

package encodings

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"math/big"
)

// Base58Alphabets maps the supported alphabet names to their symbol tables.
var Base58Alphabets = map[string]string{
	"bitcoin": "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz",
	"ripple":  "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz",
	"flickr":  "123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ",
}

// Base58StdAlphabet is the default (bitcoin) alphabet.
const Base58StdAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var base58Indexes = map[string]map[rune]int{
	"bitcoin": buildIndex(Base58Alphabets["bitcoin"]),
	"ripple":  buildIndex(Base58Alphabets["ripple"]),
	"flickr":  buildIndex(Base58Alphabets["flickr"]),
}

// DecodeBase58 decodes a Base58 token using the named alphabet. Leading
// zero-value symbols become leading zero bytes in the output. Unknown alphabet
// names fall back to the bitcoin alphabet.
func DecodeBase58(s string, alphabet string) ([]byte, error) {
	table, ok := Base58Alphabets[alphabet]
	if !ok {
		alphabet, table = "bitcoin", Base58StdAlphabet
	}
	index := base58Indexes[alphabet]

	if s == "" {
		return []byte{}, nil
	}

	num := new(big.Int)
	base := big.NewInt(58)
	digit := new(big.Int)
	for _, ch := range s {
		v, ok := index[ch]
		if !ok {
			return nil, fmt.Errorf("base58: invalid character %q", ch)
		}
		num.Mul(num, base)
		num.Add(num, digit.SetInt64(int64(v)))
	}
	full := num.Bytes()

	zeroSym := rune(table[0])
	zeros := 0
	for _, ch := range s {
		if ch != zeroSym {
			break
		}
		zeros++
	}
	return append(make([]byte, zeros), full...), nil
}

// EncodeBase58 encodes raw bytes using the named alphabet.
func EncodeBase58(data []byte, alphabet string) string {
	table, ok := Base58Alphabets[alphabet]
	if !ok {
		table = Base58StdAlphabet
	}

	zeros := 0
	for _, b := range data {
		if b != 0 {
			break
		}
		zeros++
	}

	num := new(big.Int).SetBytes(data)
	base := big.NewInt(58)
	mod := new(big.Int)
	var digits []byte
	for num.Sign() > 0 {
		num.DivMod(num, base, mod)
		digits = append(digits, table[mod.Int64()])
	}

	out := make([]byte, 0, zeros+len(digits))
	for i := 0; i < zeros; i++ {
		out = append(out, table[0])
	}
	for i := len(digits) - 1; i >= 0; i-- {
		out = append(out, digits[i])
	}
	return string(out)
}

// Base58CheckVerify treats the last 4 decoded bytes as a checksum equal to the
// first 4 bytes of SHA-256(SHA-256(payload)). It returns the checksum-stripped
// payload and whether the checksum verified.
func Base58CheckVerify(raw []byte) ([]byte, bool) {
	if len(raw) < 5 {
		return raw, false
	}
	payload, checksum := raw[:len(raw)-4], raw[len(raw)-4:]
	return payload, bytes.Equal(checksum, base58Checksum(payload))
}

// Base58CheckAppend appends the 4-byte double SHA-256 checksum to payload.
func Base58CheckAppend(payload []byte) []byte {
	return append(append([]byte{}, payload...), base58Checksum(payload)...)
}

func base58Checksum(payload []byte) []byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return second[:4]
}
