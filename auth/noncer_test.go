package auth

import (
	"encoding/hex"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDerivedNonce(t *testing.T) {
	assert.Equal(t, "b5d407d51c7254a5f32d663bd6acbb43", DerivedNonce("1300000000"))
	assert.Equal(t, "5ea2b9349ee4f34b802595c034906134", DerivedNonce("137131200"))
	assert.NotEqual(t, DerivedNonce("1300000000"), DerivedNonce("1300000001"))
}

func TestNoncers(t *testing.T) {
	b64 := Base64Noncer{}.Nonce()
	assert.Len(t, b64, 44)
	assert.NotEqual(t, b64, Base64Noncer{}.Nonce())

	hexNonce := HexNoncer{}.Nonce()
	assert.Len(t, hexNonce, 64)
	_, err := hex.DecodeString(hexNonce)
	assert.Nil(t, err)

	id := UUIDNoncer{}.Nonce()
	_, err = uuid.Parse(id)
	assert.Nil(t, err)
}

func TestParseNoncer(t *testing.T) {
	// derived and empty mean the request keeps its own default
	noncer, err := ParseNoncer("derived")
	assert.Nil(t, err)
	assert.Nil(t, noncer)
	noncer, err = ParseNoncer("")
	assert.Nil(t, err)
	assert.Nil(t, noncer)

	for _, mode := range []string{"base64", "hex", "uuid"} {
		noncer, err = ParseNoncer(mode)
		assert.Nil(t, err)
		assert.NotNil(t, noncer, "mode %q", mode)
		assert.NotEmpty(t, noncer.Nonce())
	}

	_, err = ParseNoncer("words")
	assert.Error(t, err)
}
