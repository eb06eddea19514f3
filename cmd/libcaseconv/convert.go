// Command libcaseconv builds the caseconv C library:
//
//	go build -buildmode=c-shared -o libcaseconv.so ./cmd/libcaseconv
//
// The exported functions are declared in include/caseconv.h. Every input is
// decoded leniently as UTF-8 and every returned string is allocated with C
// malloc and must be released with caseconv_free_string.
package main

import (
	"github.com/mcoffin/caseconv/casing"
	"github.com/mcoffin/caseconv/internal/stringutil"
)

// convertCase converts text between the conventions named by the tags. ok
// is false when either tag is out of range.
func convertCase(text string, from, to int) (string, bool) {
	src, err := casing.TypeFromInt(from)
	if err != nil {
		return "", false
	}
	dst, err := casing.TypeFromInt(to)
	if err != nil {
		return "", false
	}
	return casing.Convert(stringutil.DecodeLossyString(text), src, dst), true
}

// guessCase returns the tag of the convention text most likely uses.
func guessCase(text string) int {
	return int(casing.Guess(stringutil.DecodeLossyString(text)))
}

func unjumble(text string, to int) (string, bool) {
	dst, err := casing.TypeFromInt(to)
	if err != nil {
		return "", false
	}
	return casing.Unjumble(stringutil.DecodeLossyString(text), dst), true
}

func guessAndConvert(text string, to int) (string, bool) {
	dst, err := casing.TypeFromInt(to)
	if err != nil {
		return "", false
	}
	return casing.GuessAndConvert(stringutil.DecodeLossyString(text), dst), true
}

func main() {}
