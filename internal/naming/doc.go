// Package naming provides the case mappings used to build identifiers.
//
// The mappings are full Unicode mappings from golang.org/x/text/cases rather
// than the per-rune mappings of the unicode package, so a character may map
// to several: "ß" uppercases to "SS". Casers are pooled because a
// cases.Caser is not safe for concurrent use.
//
// These functions are used by the casing package's camelCase and delimited
// builders. As an internal package, they are not part of the public API and
// may change without notice.
package naming
