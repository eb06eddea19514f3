// Package caseconv converts identifiers between camelCase, snake_case and
// kebab-case.
//
// Every conversion is a split followed by a join: a parser breaks the input
// into components and a builder re-cases and joins them. caseconv also guesses
// the convention of an identifier, and "unjumbles" identifiers that mix
// several conventions such as simple_jumbledCase.
//
// # Overview
//
// The library consists of these packages:
//
//   - casing: Parsers, builders, the guess heuristic and the combined parser
//   - converter: Option-driven conversion with limits, results and batches
//   - caseerrors: Error types shared by every package
//
// The module also ships a command-line tool (cmd/caseconv), an MCP server
// reachable through "caseconv mcp", and a C shared library (cmd/libcaseconv).
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/mcoffin/caseconv
//
// Install the CLI:
//
//	go install github.com/mcoffin/caseconv/cmd/caseconv@latest
//
// # Quick Start
//
// Convert between known conventions:
//
//	import "github.com/mcoffin/caseconv/casing"
//
//	casing.Convert("simpleCamelCase", casing.Camel, casing.Kebab)   // "simple-camel-case"
//	casing.Convert("simple_snake_case", casing.Snake, casing.Camel) // "simpleSnakeCase"
//
// Guess the source convention, or unjumble mixed input:
//
//	casing.Guess("simple-kebab-case")                   // casing.TypeKebab
//	casing.GuessAndConvert("simpleCamelCase", casing.Snake) // "simple_camel_case"
//	casing.Unjumble("simple_jumbledCase", casing.Kebab)  // "simple-jumbled-case"
//
// Convert user input with validation and limits:
//
//	import "github.com/mcoffin/caseconv/converter"
//
//	result, err := converter.ConvertWithOptions(
//		converter.WithInput(name),
//		converter.WithSourceCaseName(from),
//		converter.WithTargetCaseName(to),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Output)
//
// # Conventions
//
// Camel splits before every uppercase letter except the first character, and
// builds by lowercasing the first component and capitalizing the first
// letter of the others. Snake and kebab split at their delimiter and build by
// lowercasing every component. Case mapping covers all of Unicode.
//
// # Guessing
//
// Guess counts the components each convention finds and picks the highest
// count. Ties go to kebab over snake over camel, so "simple" guesses kebab.
//
// # Unjumbling
//
// The combined parser asks every candidate convention for its next component
// and takes the shortest. See casing.Candidates.
//
// # Error Handling
//
// The casing package never fails. The converter package returns errors from
// the caseerrors package, which support errors.Is against sentinel values:
//
//	if errors.Is(err, caseerrors.ErrInvalidCaseType) {
//		// unknown case name
//	}
//
// # Command-Line Tool
//
//	caseconv convert --from camel --to kebab simpleCamelCase
//	caseconv guess simple_snake_case
//	caseconv unjumble --to snake simple_jumbledCase
//	echo fooBar | caseconv auto --to snake --format json
//
// Run "caseconv help" for all commands.
package caseconv
