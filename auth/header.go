package auth

import (
	"fmt"
	"strings"
)

// AuthorizationHeader formats finalized request parameters as an OAuth
// Authorization header value according to RFC 5849 3.5.1. Pairs keep their
// finalized order, values are quoted as stored, and a non empty realm is
// placed first. The realm never participates in the signature base string,
// RFC 5849 3.4.1.3.1.
func AuthorizationHeader(params []string, realm string) string {
	pairs := make([]string, 0, len(params)+1)
	if realm != "" {
		pairs = append(pairs, fmt.Sprintf(`%s="%s"`, realmParam, realm))
	}
	for _, param := range params {
		kv := strings.SplitN(param, "=", 2)
		key, value := kv[0], ""
		if len(kv) == 2 {
			value = kv[1]
		}
		pairs = append(pairs, fmt.Sprintf(`%s="%s"`, key, value))
	}
	return authorizationPrefix + strings.Join(pairs, ", ")
}

// QueryString formats finalized request parameters as a URL query string.
// Keys and values are percent encoded, so a signature or an already encoded
// callback survives transport in a query part.
func QueryString(params []string) string {
	pairs := make([]string, len(params))
	for i, param := range params {
		kv := strings.SplitN(param, "=", 2)
		key, value := kv[0], ""
		if len(kv) == 2 {
			value = kv[1]
		}
		pairs[i] = PercentEncode(key) + "=" + PercentEncode(value)
	}
	return strings.Join(pairs, "&")
}
