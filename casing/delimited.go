package casing

import (
	"strings"
	"unicode/utf8"

	"github.com/mcoffin/caseconv/internal/naming"
)

// Delimited is a convention whose components are separated by a single
// delimiter character.
type Delimited struct {
	Delimiter rune
}

var (
	// Snake is the snake_case convention.
	Snake = Delimited{Delimiter: '_'}

	// Kebab is the kebab-case convention.
	Kebab = Delimited{Delimiter: '-'}
)

// Components splits s at every delimiter. Adjacent delimiters produce an
// empty component, as does a leading delimiter. A trailing delimiter is
// consumed without producing one.
func (d Delimited) Components(s string) Iterator {
	return &delimitedIterator{src: s, delim: d.Delimiter, width: d.width()}
}

// Build lowercases every component and joins them with the delimiter.
func (d Delimited) Build(it Iterator) string {
	var b strings.Builder
	first := true
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		if !first {
			b.WriteRune(d.Delimiter)
		}
		first = false
		b.WriteString(naming.Lower(c))
	}
	return b.String()
}

// width is the encoded length of the delimiter in bytes.
func (d Delimited) width() int {
	if n := utf8.RuneLen(d.Delimiter); n > 0 {
		return n
	}
	return 1
}

type delimitedIterator struct {
	src   string
	delim rune
	width int
}

func (it *delimitedIterator) Next() (string, bool) {
	if it.src == "" {
		return "", false
	}

	if i := strings.IndexRune(it.src, it.delim); i >= 0 {
		component := it.src[:i]
		it.src = it.src[min(i+it.width, len(it.src)):]
		return component, true
	}

	component := it.src
	it.src = ""
	return component, true
}
