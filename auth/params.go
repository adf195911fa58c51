package auth

import (
	"strings"
)

// Pair is a single request parameter. Keys and values are held exactly as
// they will appear in the finalized parameter list, so a value that must be
// stored percent encoded (the callback URL) is encoded before the Pair is
// made.
type Pair struct {
	Key   string
	Value string
}

// Params is an ordered list of request parameters. Unlike a map it preserves
// insertion order and permits duplicate keys, which the normalized parameter
// ordering then resolves by value.
type Params []Pair

// Len implements sort.Interface.
func (p Params) Len() int { return len(p) }

// Less orders pairs by key and, for equal keys, by value. String comparison
// is byte-wise, matching RFC 5849 3.4.1.3.2 ascending byte value ordering.
func (p Params) Less(i, j int) bool {
	if p[i].Key != p[j].Key {
		return p[i].Key < p[j].Key
	}
	return p[i].Value < p[j].Value
}

// Swap implements sort.Interface.
func (p Params) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

// Encode percent encodes each key and value and joins them into the
// parameter block of a signature base string. The pair separator is the
// literal token %3D and the list separator the literal token %26, never a
// raw "=" or "&".
func (p Params) Encode() string {
	pairs := make([]string, len(p))
	for i, pair := range p {
		pairs[i] = PercentEncode(pair.Key) + "%3D" + PercentEncode(pair.Value)
	}
	return strings.Join(pairs, "%26")
}

// Strings formats the parameters as "key=value" strings, values exactly as
// stored.
func (p Params) Strings() []string {
	pairs := make([]string, len(p))
	for i, pair := range p {
		pairs[i] = pair.Key + "=" + pair.Value
	}
	return pairs
}
