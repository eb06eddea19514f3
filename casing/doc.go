// Package casing splits identifiers into word components and joins
// components back into identifiers under a naming convention.
//
// Three conventions are supported: camelCase, snake_case and kebab-case.
// A convention is a [Parser] (text to components) paired with a [Builder]
// (components to text). Converting between conventions is parsing with one
// and building with the other:
//
//	out := casing.Convert("simpleCamelCase", casing.Camel, casing.Kebab)
//	// out == "simple-camel-case"
//
// # Static and Dynamic Conventions
//
// [Camel], [Snake] and [Kebab] are the concrete conventions. When the
// convention is only known at runtime (a flag, a config value, a tag passed
// from C), use [Type], which dispatches to the matching concrete convention:
//
//	from, err := casing.ParseType("snake")
//	out := casing.Convert("simple_snake_case", from, casing.TypeCamel)
//
// # Guessing
//
// [Guess] picks the convention that splits a string into the most
// components. Ties go to the convention listed last in [Jumbled]
// (kebab, then snake, then camel). Empty text guesses camel.
//
// # Jumbled Identifiers
//
// Some identifiers mix conventions, such as "simple_jumbledCase". A
// [Candidates] list parses such text by asking every candidate for its next
// component and keeping the shortest one:
//
//	out := casing.Unjumble("simple_jumbledCase", casing.Kebab)
//	// out == "simple-jumbled-case"
//
// # Components
//
// Components are substrings of the input, so parsing never copies text.
// Iterators are lazy and single-use. Casing is applied only when building:
// camel keeps each component's casing apart from its first letter, while the
// delimited conventions lowercase every component.
//
// All functions are safe for concurrent use.
package casing
