package casing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mcoffin/caseconv/caseerrors"
)

// Type selects a convention at runtime. The numeric values are stable and
// shared with the C interface.
type Type int

const (
	// TypeCamel selects camelCase. It is the zero value.
	TypeCamel Type = iota
	// TypeSnake selects snake_case.
	TypeSnake
	// TypeKebab selects kebab-case.
	TypeKebab
)

// typeNames maps accepted case names to types. Lookups are lowercased first.
var typeNames = map[string]Type{
	"camel":       TypeCamel,
	"camelcase":   TypeCamel,
	"lower_camel": TypeCamel,
	"snake":       TypeSnake,
	"snake_case":  TypeSnake,
	"snakecase":   TypeSnake,
	"kebab":       TypeKebab,
	"kebab-case":  TypeKebab,
	"kebabcase":   TypeKebab,
}

// Types returns every valid Type in tag order.
func Types() []Type {
	return []Type{TypeCamel, TypeSnake, TypeKebab}
}

// TypeNames returns the canonical name of every valid Type in tag order.
func TypeNames() []string {
	return []string{TypeCamel.String(), TypeSnake.String(), TypeKebab.String()}
}

// ParseType returns the Type named by name. Matching ignores case and
// surrounding whitespace, and accepts a few common spellings such as
// "snake_case" or "kebab-case".
func ParseType(name string) (Type, error) {
	if t, ok := typeNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t, nil
	}
	return TypeCamel, &caseerrors.CaseTypeError{
		Value:   name,
		Message: "expected one of " + strings.Join(TypeNames(), ", "),
	}
}

// TypeFromInt validates a numeric tag, as received from a foreign caller.
func TypeFromInt(v int) (Type, error) {
	t := Type(v)
	if !t.Valid() {
		return TypeCamel, &caseerrors.CaseTypeError{
			Value:   strconv.Itoa(v),
			Message: "tag out of range",
		}
	}
	return t, nil
}

// Valid reports whether t is one of the defined types.
func (t Type) Valid() bool {
	return t >= TypeCamel && t <= TypeKebab
}

// String returns the canonical lowercase name of t.
func (t Type) String() string {
	switch t {
	case TypeCamel:
		return "camel"
	case TypeSnake:
		return "snake"
	case TypeKebab:
		return "kebab"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Convention returns the concrete convention t selects.
// Invalid types select camel, the default.
func (t Type) Convention() Convention {
	switch t {
	case TypeSnake:
		return Snake
	case TypeKebab:
		return Kebab
	default:
		return Camel
	}
}

// Components implements Parser by dispatching to the selected convention.
func (t Type) Components(s string) Iterator {
	return t.Convention().Components(s)
}

// Build implements Builder by dispatching to the selected convention.
func (t Type) Build(it Iterator) string {
	return t.Convention().Build(it)
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, &caseerrors.CaseTypeError{Value: strconv.Itoa(int(t)), Message: "tag out of range"}
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseType.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// delimiterWidth is how many bytes follow a component of t before the next
// one starts: the delimiter for delimited types, nothing for camel.
func (t Type) delimiterWidth() int {
	if d, ok := t.Convention().(Delimited); ok {
		return d.width()
	}
	return 0
}

// Guess returns the convention that splits s into the most components.
// On a tie the type listed last in Jumbled wins, so kebab beats snake and
// snake beats camel. Empty text guesses camel.
func Guess(s string) Type {
	if s == "" {
		return TypeCamel
	}

	best, bestCount := TypeCamel, -1
	for _, t := range Jumbled {
		if n := Count(t.Components(s)); n >= bestCount {
			best, bestCount = t, n
		}
	}
	return best
}

// Score is one convention's component count for a string.
type Score struct {
	Type  Type `json:"case"  yaml:"case"`
	Count int  `json:"count" yaml:"count"`
}

// Scores returns the component count of s under every type in Jumbled order.
// Guess picks the last of the highest entries.
func Scores(s string) []Score {
	scores := make([]Score, 0, len(Jumbled))
	for _, t := range Jumbled {
		scores = append(scores, Score{Type: t, Count: Count(t.Components(s))})
	}
	return scores
}
