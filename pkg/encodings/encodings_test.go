/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: encodings_test.go
Description: Tests for the primitive codecs. Covers RFC 9285 Base45 vectors,
Base58 alphabets and Base58Check checksum behavior, basE91 bit packing, the
Base64-family fan-out, and the letter-shift primitives, with round-trip
properties over pseudo-random byte sequences.
*/

package encodings_test

import (
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/kleascm/akaylee-decipher/pkg/encodings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomBytes returns deterministic pseudo-random payloads for round-trips.
func randomBytes(seed int64, n int) []byte {
	rng := rand.New(rand.NewSource(seed))
	data := make([]byte, n)
	rng.Read(data)
	return data
}

// TestBase45Vectors tests the RFC 9285 worked examples
func TestBase45Vectors(t *testing.T) {
	assert.Equal(t, "BB8", encodings.EncodeBase45([]byte("AB")))
	assert.Equal(t, "QED8WEX0", encodings.EncodeBase45([]byte("ietf!")))

	out, err := encodings.DecodeBase45("QED8WEX0")
	require.NoError(t, err)
	assert.Equal(t, []byte("ietf!"), out)
}

// TestBase45Failures tests the RFC 9285 failure modes
func TestBase45Failures(t *testing.T) {
	// character outside the alphabet
	_, err := encodings.DecodeBase45("ab")
	assert.Error(t, err)

	// dangling single trailing symbol
	_, err = encodings.DecodeBase45("BB8Q")
	assert.Error(t, err)

	// triple decoding above 0xFFFF
	_, err = encodings.DecodeBase45(":::")
	assert.Error(t, err)
}

// TestBase45RoundTrip tests encode/decode over random payloads
func TestBase45RoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 3, 16, 31, 64} {
		data := randomBytes(int64(n), n)
		out, err := encodings.DecodeBase45(encodings.EncodeBase45(data))
		require.NoError(t, err)
		assert.Equal(t, data, out)
	}
}

// TestBase58KnownVector tests the classic bitcoin-alphabet vector
func TestBase58KnownVector(t *testing.T) {
	assert.Equal(t, "StV1DL6CwTryKyV", encodings.EncodeBase58([]byte("hello world"), "bitcoin"))

	out, err := encodings.DecodeBase58("StV1DL6CwTryKyV", "bitcoin")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello world"), out)
}

// TestBase58LeadingZeros tests that zero-value symbols map to zero bytes
func TestBase58LeadingZeros(t *testing.T) {
	out, err := encodings.DecodeBase58("112", "bitcoin")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x01}, out)

	assert.Equal(t, "112", encodings.EncodeBase58([]byte{0x00, 0x00, 0x01}, "bitcoin"))
}

// TestBase58Alphabets tests round-trips across all supported alphabets
func TestBase58Alphabets(t *testing.T) {
	data := randomBytes(58, 24)
	for name := range encodings.Base58Alphabets {
		out, err := encodings.DecodeBase58(encodings.EncodeBase58(data, name), name)
		require.NoError(t, err, "alphabet %s", name)
		assert.Equal(t, data, out, "alphabet %s", name)
	}
}

// TestBase58InvalidCharacter tests decode failure on out-of-alphabet input
func TestBase58InvalidCharacter(t *testing.T) {
	// '0' and 'O' are excluded from the bitcoin alphabet
	_, err := encodings.DecodeBase58("0OIl", "bitcoin")
	assert.Error(t, err)
}

// TestBase58Check tests checksum append/verify and single-bit tamper detection
func TestBase58Check(t *testing.T) {
	payload := []byte("akaylee decipher payload")
	raw := encodings.Base58CheckAppend(payload)

	got, ok := encodings.Base58CheckVerify(raw)
	require.True(t, ok)
	assert.Equal(t, payload, got)

	// flipping any single bit in payload or checksum must fail verification
	for i := 0; i < len(raw); i++ {
		tampered := append([]byte{}, raw...)
		tampered[i] ^= 1 << uint(i%8)
		_, ok := encodings.Base58CheckVerify(tampered)
		assert.False(t, ok, "bit flip at byte %d went undetected", i)
	}

	// too short to carry a checksum
	_, ok = encodings.Base58CheckVerify([]byte{1, 2, 3, 4})
	assert.False(t, ok)
}

// TestBase91RoundTrip tests encode/decode over random payloads
func TestBase91RoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 3, 13, 32, 100} {
		data := randomBytes(int64(n)*91, n)
		out, err := encodings.DecodeBase91(encodings.EncodeBase91(data))
		require.NoError(t, err)
		assert.Equal(t, data, out)
	}
}

// TestBase91InvalidCharacter tests decode failure on out-of-alphabet input
func TestBase91InvalidCharacter(t *testing.T) {
	_, err := encodings.DecodeBase91("abc def") // space is not in the alphabet
	assert.Error(t, err)
}

// TestDecodeFamilyBase64 tests the family fan-out on a base64 token
func TestDecodeFamilyBase64(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("Hello, World!"))
	outs := encodings.DecodeFamily(token)

	found := false
	for _, d := range outs {
		if d.Encoding == "base64" {
			assert.Equal(t, []byte("Hello, World!"), d.Data)
			found = true
		}
	}
	assert.True(t, found, "base64 member did not accept its own output")
}

// TestDecodeFamilyAutoPad tests that stripped padding is restored
func TestDecodeFamilyAutoPad(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("Hello, World!"))
	stripped := token[:len(token)-2] // drop "=="
	outs := encodings.DecodeFamily(stripped)

	found := false
	for _, d := range outs {
		if d.Encoding == "base64" && string(d.Data) == "Hello, World!" {
			found = true
		}
	}
	assert.True(t, found)
}

// TestDecodeFamilyHex tests the hex member
func TestDecodeFamilyHex(t *testing.T) {
	token := hex.EncodeToString([]byte("deadline"))
	outs := encodings.DecodeFamily(token)

	found := false
	for _, d := range outs {
		if d.Encoding == "hex" {
			assert.Equal(t, []byte("deadline"), d.Data)
			found = true
		}
	}
	assert.True(t, found)
}

// TestDecodeFamilyBase32 tests the base32 member with auto-padding
func TestDecodeFamilyBase32(t *testing.T) {
	token := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString([]byte("Hello, World!"))
	outs := encodings.DecodeFamily(token)

	found := false
	for _, d := range outs {
		if d.Encoding == "base32" && string(d.Data) == "Hello, World!" {
			found = true
		}
	}
	assert.True(t, found)
}

// TestBase85RoundTrip tests the RFC 1924 codec over random payloads
func TestBase85RoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 17, 40} {
		data := randomBytes(int64(n)*85, n)
		out, err := encodings.DecodeBase85(encodings.EncodeBase85(data))
		require.NoError(t, err)
		assert.Equal(t, data, out)
	}
}

// TestRotN tests the fixed-shift primitive
func TestRotN(t *testing.T) {
	assert.Equal(t, "Hello, World!", encodings.RotN("Uryyb, Jbeyq!", 13))
	assert.Equal(t, "Uryyb, Jbeyq!", encodings.RotN("Hello, World!", 13))
	assert.Equal(t, "Hello, World!", encodings.RotN("Gdkkn, Vnqkc!", 1))
	// negative shifts are the inverse of positive ones
	assert.Equal(t, "abc", encodings.RotN(encodings.RotN("abc", 7), -7))
}

// TestAtbash tests the alphabet mirror
func TestAtbash(t *testing.T) {
	assert.Equal(t, "ZYX zyx", encodings.Atbash("ABC abc"))
	assert.Equal(t, "wizard", encodings.Atbash(encodings.Atbash("wizard")))
}

// TestProgressiveShiftRoundTrip tests that decode inverts encode for every
// direction and step sign
func TestProgressiveShiftRoundTrip(t *testing.T) {
	plain := "Progressive Shift Keeps Case!"
	for _, order := range []string{encodings.OrderLTR, encodings.OrderRTL} {
		for _, step := range []int{-3, -1, 1, 2, 5} {
			for start := 0; start < 26; start += 7 {
				enc := encodings.ProgressiveShift(plain, start, step, encodings.ModeEncode, order)
				dec := encodings.ProgressiveShift(enc, start, step, encodings.ModeDecode, order)
				assert.Equal(t, plain, dec, "start=%d step=%d order=%s", start, step, order)
			}
		}
	}
}

// TestProgressiveShiftZeroStep tests that step 0 degenerates to a plain Caesar
func TestProgressiveShiftZeroStep(t *testing.T) {
	got := encodings.ProgressiveShift("Uryyb, Jbeyq!", 13, 0, encodings.ModeDecode, encodings.OrderLTR)
	assert.Equal(t, "Hello, World!", got)
}
