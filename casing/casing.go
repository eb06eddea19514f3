package casing

import (
	"iter"
	"slices"
)

// Iterator yields the components of one identifier, left to right.
// Iterators are single-use: once Next reports false it keeps doing so.
type Iterator interface {
	Next() (string, bool)
}

// Parser splits text into components.
type Parser interface {
	Components(s string) Iterator
}

// Builder joins components into an identifier.
type Builder interface {
	Build(it Iterator) string
}

// Convention is a naming convention that can both parse and build.
type Convention interface {
	Parser
	Builder
}

// Convert parses s with from and builds the result with to.
//
// Example:
//
//	casing.Convert("simple_snake_case", casing.Snake, casing.Camel) // "simpleSnakeCase"
func Convert(s string, from Parser, to Builder) string {
	return to.Build(from.Components(s))
}

// GuessAndConvert converts s using the convention Guess picks for it.
func GuessAndConvert(s string, to Builder) string {
	return Convert(s, Guess(s), to)
}

// Unjumble converts s treating it as a mix of every known convention.
func Unjumble(s string, to Builder) string {
	return Convert(s, Jumbled, to)
}

// Split returns the components p finds in s.
func Split(s string, p Parser) []string {
	return Collect(p.Components(s))
}

// All adapts an Iterator to a range-over-func sequence.
// The sequence inherits the iterator's single-use semantics.
func All(it Iterator) iter.Seq[string] {
	return func(yield func(string) bool) {
		for c, ok := it.Next(); ok; c, ok = it.Next() {
			if !yield(c) {
				return
			}
		}
	}
}

// Collect drains it into a slice. Returns nil when there are no components.
func Collect(it Iterator) []string {
	return slices.Collect(All(it))
}

// Count drains it and returns how many components it produced.
func Count(it Iterator) int {
	n := 0
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}
	return n
}

// Err returns the fault recorded by it, if it records one.
// Only the combined parser can fault; the result is nil for every other iterator.
func Err(it Iterator) error {
	if e, ok := it.(interface{ Err() error }); ok {
		return e.Err()
	}
	return nil
}

// FromSlice returns an Iterator over components already split.
func FromSlice(components []string) Iterator {
	return &sliceIterator{components: components}
}

type sliceIterator struct {
	components []string
}

func (it *sliceIterator) Next() (string, bool) {
	if len(it.components) == 0 {
		return "", false
	}
	c := it.components[0]
	it.components = it.components[1:]
	return c, true
}
