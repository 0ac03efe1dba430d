package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, offset := range []int{0, 1, 20, 999, 1 << 20} {
		token := Encode(offset)
		assert.Equal(t, offset, Decode(token), "offset %d should round-trip", offset)
	}
}

func TestEncodeNegativeOffset(t *testing.T) {
	assert.Equal(t, 0, Decode(Encode(-5)))
}

func TestDecodeNeverFails(t *testing.T) {
	inputs := []string{
		"",
		"not-base64!!!",
		"AAAA",
		"////",
		"b2zDqQ==",
		"LTQy", // base64("-42")
		"YWJj", // base64("abc")
		"\x00\xff",
		"こんにちは",
	}

	for _, input := range inputs {
		offset := Decode(input)
		assert.GreaterOrEqual(t, offset, 0, "input %q must decode to a non-negative offset", input)
	}
}

func TestDecodeMalformedResetsToFirstPage(t *testing.T) {
	assert.Equal(t, 0, Decode("LTQy"))   // negative number inside
	assert.Equal(t, 0, Decode("YWJj"))   // non-numeric inside
	assert.Equal(t, 0, Decode("%%%%%%")) // not base64 at all
}

func TestDecodeAcceptsPaddedTokens(t *testing.T) {
	// Padded variant of base64("42").
	assert.Equal(t, 42, Decode("NDI="))
}

func TestEncodeIsURLSafe(t *testing.T) {
	token := Encode(123456789)
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")
}
