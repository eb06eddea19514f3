// Package caseerrors provides structured error types for caseconv.
//
// The casing engine itself never fails: every identifier parses and every
// component sequence builds. Errors only arise at the edges, where case names
// arrive as strings or integers, where options are combined, and where input
// sizes are bounded. These types let callers tell those situations apart with
// errors.Is() and errors.As().
//
// # Error Categories
//
//   - CaseTypeError: an unknown case name or an out-of-range case tag
//   - ConfigError: invalid option combinations or configuration values
//   - InputLimitError: an input or batch larger than the configured limit
//   - InternalError: a violated internal invariant (a bug, never user error)
//
// # Usage with errors.Is
//
//	t, err := casing.ParseType(name)
//	if errors.Is(err, caseerrors.ErrInvalidCaseType) {
//	    // ask the user for camel, snake or kebab
//	}
//
// # Usage with errors.As
//
//	var limitErr *caseerrors.InputLimitError
//	if errors.As(err, &limitErr) {
//	    fmt.Printf("input exceeds %d %s\n", limitErr.Limit, limitErr.Unit)
//	}
package caseerrors
