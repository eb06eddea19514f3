package naming

import (
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// A cases.Caser carries transform state and must not be shared between
// goroutines, so each call borrows one.
var (
	lowerPool = sync.Pool{
		New: func() any {
			c := cases.Lower(language.Und)
			return &c
		},
	}
	upperPool = sync.Pool{
		New: func() any {
			c := cases.Upper(language.Und)
			return &c
		},
	}
)

// Lower applies full Unicode lowercasing to s.
// Example: "HTTPRequest" -> "httprequest"
func Lower(s string) string {
	if s == "" {
		return ""
	}
	c := lowerPool.Get().(*cases.Caser)
	defer lowerPool.Put(c)
	return c.String(s)
}

// Upper applies full Unicode uppercasing to s.
// Example: "straße" -> "STRASSE"
func Upper(s string) string {
	if s == "" {
		return ""
	}
	c := upperPool.Get().(*cases.Caser)
	defer upperPool.Put(c)
	return c.String(s)
}

// UpperFirst uppercases the first character of s and keeps the rest as is.
// The first character may expand: "ßtraße" -> "SStraße".
func UpperFirst(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return Upper(s[:size]) + s[size:]
}
