package casing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mcoffin/caseconv/internal/naming"
)

// CamelCase is the camelCase convention. Components start at uppercase letters.
type CamelCase struct{}

// Camel is the camelCase convention.
var Camel = CamelCase{}

// Components splits s before every uppercase letter except a leading one,
// so "CamelCase" yields "Camel" and "Case". Concatenating the components
// always reproduces s.
func (CamelCase) Components(s string) Iterator {
	return &camelIterator{src: s}
}

// Build lowercases the first component and uppercases the first letter of
// every later one. The rest of each later component keeps its casing.
func (CamelCase) Build(it Iterator) string {
	first, ok := it.Next()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(naming.Lower(first))
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		if c == "" {
			continue
		}
		b.WriteString(naming.UpperFirst(c))
	}
	return b.String()
}

type camelIterator struct {
	src string
}

func (it *camelIterator) Next() (string, bool) {
	if it.src == "" {
		return "", false
	}

	// The first character always belongs to the component, uppercase or not.
	_, size := utf8.DecodeRuneInString(it.src)
	if i := strings.IndexFunc(it.src[size:], unicode.IsUpper); i >= 0 {
		i += size
		component := it.src[:i]
		it.src = it.src[i:]
		return component, true
	}

	component := it.src
	it.src = ""
	return component, true
}
