package auth

import (
	"crypto/md5"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// Noncer provides random nonce strings.
type Noncer interface {
	Nonce() string
}

// Base64Noncer reads 32 bytes from crypto/rand and
// returns those bytes as a base64 encoded string.
type Base64Noncer struct{}

// Nonce provides a random nonce string.
func (n Base64Noncer) Nonce() string {
	b := make([]byte, 32)
	rand.Read(b)
	return base64.StdEncoding.EncodeToString(b)
}

// HexNoncer reads 32 bytes from crypto/rand and
// returns those bytes as a hex encoded string.
type HexNoncer struct{}

// Nonce provides a random nonce string.
func (n HexNoncer) Nonce() string {
	b := make([]byte, 32)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// UUIDNoncer returns a random version 4 UUID string.
type UUIDNoncer struct{}

// Nonce provides a random nonce string.
func (n UUIDNoncer) Nonce() string {
	return uuid.New().String()
}

// DerivedNonce returns the lowercase hex MD5 digest of the timestamp string.
// A new Request nonces itself this way from its cached timestamp, so two
// requests built in the same second carry the same nonce unless a Noncer or
// an explicit SetNonce overrides it.
func DerivedNonce(timestamp string) string {
	digest := md5.Sum([]byte(timestamp))
	return hex.EncodeToString(digest[:])
}

// ParseNoncer maps a nonce mode name to a Noncer. The "derived" mode (and the
// empty string) return a nil Noncer, meaning requests keep their timestamp
// derived default.
func ParseNoncer(mode string) (Noncer, error) {
	switch mode {
	case "", "derived":
		return nil, nil
	case "base64":
		return Base64Noncer{}, nil
	case "hex":
		return HexNoncer{}, nil
	case "uuid":
		return UUIDNoncer{}, nil
	}
	return nil, fmt.Errorf("oauth1: unknown nonce mode %q", mode)
}
