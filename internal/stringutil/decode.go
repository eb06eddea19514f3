// Package stringutil converts raw bytes from foreign callers into strings.
package stringutil

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// DecodeLossy decodes b as UTF-8. Every byte that is not part of a valid
// sequence becomes U+FFFD, so decoding never fails. A byte order mark is kept.
func DecodeLossy(b []byte) string {
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "\uFFFD")
	}
	return string(out)
}

// DecodeLossyString is DecodeLossy for input already held in a string.
func DecodeLossyString(s string) string {
	out, err := unicode.UTF8.NewDecoder().String(s)
	if err != nil {
		return strings.ToValidUTF8(s, "\uFFFD")
	}
	return out
}
