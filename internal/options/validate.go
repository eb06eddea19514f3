// Package options provides shared utilities for option validation across packages.
package options

import "github.com/mcoffin/caseconv/caseerrors"

// ValidateSingleChoice ensures exactly one of a set of mutually exclusive
// options is specified. choices is a variadic list of booleans indicating
// whether each option is set. option names the setting in the returned
// *caseerrors.ConfigError; noneMsg and multiMsg are its messages for the
// zero and many cases.
func ValidateSingleChoice(option, noneMsg, multiMsg string, choices ...bool) error {
	count := 0
	for _, set := range choices {
		if set {
			count++
		}
	}

	if count == 0 {
		return &caseerrors.ConfigError{Option: option, Message: noneMsg}
	}
	if count > 1 {
		return &caseerrors.ConfigError{Option: option, Message: multiMsg}
	}

	return nil
}
