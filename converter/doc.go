// Package converter converts identifiers between naming conventions with
// validation, input limits, structured results and batch processing.
//
// The casing package holds the conversion algorithms. This package wraps them
// for callers that take conventions from user input: it resolves case names,
// enforces limits, reports which source convention was used and how the
// identifier was split, and fans batches out over a bounded worker pool.
//
// # Quick Start
//
// Convert one identifier using functional options:
//
//	result, err := converter.ConvertWithOptions(
//		converter.WithInput("userProfileId"),
//		converter.WithSourceCaseName("camel"),
//		converter.WithTargetCaseName("snake"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Output) // user_profile_id
//
// Or build a reusable Converter:
//
//	c, err := converter.New(
//		converter.WithGuess(true),
//		converter.WithTargetCase(casing.TypeKebab),
//	)
//	r1, _ := c.Convert("simpleCamelCase")
//	r2, _ := c.Convert("simple_snake_case")
//
// # Source Modes
//
// Exactly one source mode must be chosen:
//
//   - WithSourceCase / WithSourceCaseName: parse with a fixed convention
//   - WithGuess: pick the convention with casing.Guess per input
//   - WithUnjumble / WithCandidates: parse with the combined parser
//
// # Batches
//
// ConvertBatch converts many identifiers concurrently, bounded by WithWorkers
// and WithMaxBatch. Results keep the order of the inputs.
//
// # Related Packages
//
//   - [github.com/mcoffin/caseconv/casing] - Parsers, builders and the guess heuristic
//   - [github.com/mcoffin/caseconv/caseerrors] - Error types returned by this package
package converter
