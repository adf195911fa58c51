package auth

import (
	"fmt"
	"strings"
)

// PercentEncode percent encodes a string according to RFC 3986 2.1. Encoding
// walks the UTF-8 bytes: unreserved bytes pass through, every other byte is
// written as %XX uppercase hex.
func PercentEncode(input string) string {
	var buf strings.Builder
	for _, b := range []byte(input) {
		if isUnreserved(b) {
			buf.WriteByte(b)
		} else {
			fmt.Fprintf(&buf, "%%%02X", b)
		}
	}
	return buf.String()
}

// isUnreserved reports whether the byte is in the RFC 3986 2.3 unreserved
// set, the only bytes never escaped.
func isUnreserved(c byte) bool {
	if 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9' {
		return true
	}
	switch c {
	case '-', '.', '_', '~':
		return true
	}
	return false
}
