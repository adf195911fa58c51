package auth

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"strings"
)

// Sign computes the HMAC-SHA1 digest of a signature base string. The signing
// key is the consumer secret and token secret joined by "&"; the separator is
// present even when the token secret is empty, as it is for temporary
// credential requests. Returns the base64 encoded digest bytes.
func Sign(baseString, consumerSecret, tokenSecret string) string {
	signingKey := strings.Join([]string{consumerSecret, tokenSecret}, "&")
	mac := hmac.New(sha1.New, []byte(signingKey))
	mac.Write([]byte(baseString))
	signatureBytes := mac.Sum(nil)
	return base64.StdEncoding.EncodeToString(signatureBytes)
}
