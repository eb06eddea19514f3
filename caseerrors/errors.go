package caseerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrInvalidCaseType indicates an unknown case name or tag.
	ErrInvalidCaseType = errors.New("invalid case type")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrInputLimit indicates an input or batch exceeded a configured limit.
	ErrInputLimit = errors.New("input limit exceeded")

	// ErrInternal indicates a violated internal invariant.
	ErrInternal = errors.New("internal error")
)

// CaseTypeError reports a case name or tag that does not name a known case.
type CaseTypeError struct {
	// Value is the rejected name, or the decimal form of a rejected tag
	Value string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *CaseTypeError) Error() string {
	msg := "invalid case type"
	if e.Value != "" {
		msg += fmt.Sprintf(" %q", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *CaseTypeError) Is(target error) bool {
	return target == ErrInvalidCaseType
}

// ConfigError represents an invalid configuration or option combination.
type ConfigError struct {
	// Option is the name of the problematic option or config key
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// InputLimitError reports an input that is too large to process.
type InputLimitError struct {
	// Unit names what was counted: "bytes" for a single input, "inputs" for a batch
	Unit string
	// Limit is the configured maximum
	Limit int64
	// Actual is the size that exceeded the limit
	Actual int64
}

// Error returns a human-readable error message.
func (e *InputLimitError) Error() string {
	msg := "input limit exceeded"
	if e.Limit > 0 {
		msg += fmt.Sprintf(": %d %s (limit: %d)", e.Actual, e.Unit, e.Limit)
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *InputLimitError) Is(target error) bool {
	return target == ErrInputLimit
}

// InternalError reports a broken internal invariant. Seeing one is a bug.
type InternalError struct {
	// Op names the operation that detected the fault
	Op string
	// Message describes the violated invariant
	Message string
}

// Error returns a human-readable error message.
func (e *InternalError) Error() string {
	msg := "internal error"
	if e.Op != "" {
		msg += " in " + e.Op
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *InternalError) Is(target error) bool {
	return target == ErrInternal
}
