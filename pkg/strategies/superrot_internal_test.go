/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: superrot_internal_test.go
Description: Internal tests for the progressive-shift sweep's encoded-shape
penalty. Covers standard and URL-safe base64 shapes, padded and unpadded, and
confirms ordinary prose is left untouched.
*/

package strategies

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestShapedPenaltyFlagsEncodedShapes tests penalties for base64-looking output
func TestShapedPenaltyFlagsEncodedShapes(t *testing.T) {
	cases := []struct {
		name string
		text string
		want float64
	}{
		{"standard padded", "QWxhZGRpbjpvcGVuIHNlc2FtZQ==", 2.0},
		{"standard unpadded", "QWxhZGRpbjpvcGVuc2VzYW1l", 1.2},
		{"urlsafe padded", "aGVsbG8td29ybGRfcGFk==", 2.0},
		{"urlsafe unpadded", "aGVsbG8td29ybGRfdG9rZW4", 1.2},
		{"plain prose", "the meeting is at noon", 0.0},
		{"too short", "YWJjZA==", 0.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, shapedPenalty(tc.text))
		})
	}
}
