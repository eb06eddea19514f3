package casing

import (
	"fmt"
	"strings"

	"github.com/mcoffin/caseconv/caseerrors"
)

// Candidates parses text that may mix several conventions. At each step every
// candidate proposes its next component and the shortest proposal wins. On a
// tie the candidate listed last wins.
//
// After a win the parser skips the winning component, plus the delimiter that
// follows it when the winner is delimited. An empty Candidates list yields no
// components.
type Candidates []Type

// Jumbled lists every convention: camel, snake, kebab. It is the default
// candidate set for Guess and Unjumble.
var Jumbled = Candidates{TypeCamel, TypeSnake, TypeKebab}

// Components implements Parser. The returned iterator also has an
// Err() error method, see Err.
func (c Candidates) Components(s string) Iterator {
	return &combinedIterator{candidates: c, src: s}
}

// String joins the candidate names with "+", e.g. "camel+snake+kebab".
func (c Candidates) String() string {
	names := make([]string, len(c))
	for i, t := range c {
		names[i] = t.String()
	}
	return strings.Join(names, "+")
}

// ParseCandidates parses a comma or plus separated list of case names.
// The order of the list is kept, since it decides ties.
func ParseCandidates(list string) (Candidates, error) {
	fields := strings.FieldsFunc(list, func(r rune) bool { return r == ',' || r == '+' })
	if len(fields) == 0 {
		return nil, &caseerrors.CaseTypeError{Value: list, Message: "empty candidate list"}
	}
	c := make(Candidates, 0, len(fields))
	for _, f := range fields {
		t, err := ParseType(f)
		if err != nil {
			return nil, err
		}
		c = append(c, t)
	}
	return c, nil
}

// ParseParser resolves a parser name: a single case name, "jumbled" for
// Jumbled, or a candidate list as accepted by ParseCandidates. The result
// is a Type or a Candidates, both of which implement fmt.Stringer.
func ParseParser(name string) (Parser, error) {
	name = strings.TrimSpace(name)
	switch {
	case strings.EqualFold(name, "jumbled"):
		return Jumbled, nil
	case strings.ContainsAny(name, ",+"):
		return ParseCandidates(name)
	default:
		return ParseType(name)
	}
}

type combinedIterator struct {
	candidates Candidates
	src        string
	err        error
}

func (it *combinedIterator) Next() (string, bool) {
	if it.err != nil {
		return "", false
	}

	var (
		winner    Type
		component string
		found     bool
	)
	for _, t := range it.candidates {
		c, ok := t.Components(it.src).Next()
		if !ok {
			continue
		}
		if !found || len(c) <= len(component) {
			winner, component, found = t, c, true
		}
	}
	if !found {
		return "", false
	}

	rest, err := advance(it.src, component, winner.delimiterWidth())
	if err != nil {
		it.err = err
		it.src = ""
		return "", false
	}
	it.src = rest
	return component, true
}

// Err returns the fault that stopped the iterator, or nil.
func (it *combinedIterator) Err() error {
	return it.err
}

// advance drops component and any trailing delimiter of the given width from
// the front of src. A delimited component that ran to the end of src has no
// delimiter after it, matching how the delimited parser empties its buffer.
func advance(src, component string, delimiterWidth int) (string, error) {
	n := len(component)
	if n > len(src) {
		return "", &caseerrors.InternalError{
			Op:      "combined parser",
			Message: fmt.Sprintf("component length %d exceeds remaining input %d", n, len(src)),
		}
	}
	if n < len(src) {
		n += delimiterWidth
	}
	if n > len(src) {
		return "", &caseerrors.InternalError{
			Op:      "combined parser",
			Message: fmt.Sprintf("advance %d exceeds remaining input %d", n, len(src)),
		}
	}
	return src[n:], nil
}
