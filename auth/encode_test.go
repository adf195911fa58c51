package auth

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentEncode(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"abcABC123-._~", "abcABC123-._~"},
		{"a b", "a%20b"},
		{"café", "caf%C3%A9"},
		{"/?=&%", "%2F%3F%3D%26%25"},
		{"https://example.com/cb", "https%3A%2F%2Fexample.com%2Fcb"},
		{"あ", "%E3%81%82"},
		{"\x00", "%00"},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, PercentEncode(c.input))
	}
}

func TestPercentEncodeRoundTrip(t *testing.T) {
	inputs := []string{"plain", "two words", "café + crème", "100% of ~/.config"}
	for _, input := range inputs {
		decoded, err := url.QueryUnescape(PercentEncode(input))
		assert.Nil(t, err)
		assert.Equal(t, input, decoded)
	}
}

func TestIsUnreserved(t *testing.T) {
	unreserved := 0
	for i := 0; i < 256; i++ {
		if isUnreserved(byte(i)) {
			unreserved++
		}
	}
	// 26 + 26 + 10 letters and digits plus "-", ".", "_", "~"
	assert.Equal(t, 66, unreserved)
	assert.True(t, isUnreserved('~'))
	assert.False(t, isUnreserved(' '))
	assert.False(t, isUnreserved('+'))
	assert.False(t, isUnreserved('%'))
}
