package converter

import (
	"fmt"

	"github.com/mcoffin/caseconv/caseerrors"
	"github.com/mcoffin/caseconv/casing"
	"github.com/mcoffin/caseconv/internal/options"
)

// Defaults applied when the corresponding option is not given.
const (
	// DefaultMaxInputSize is the largest identifier accepted, in bytes.
	DefaultMaxInputSize = 64 << 10
	// DefaultMaxBatch is the largest number of identifiers in one batch.
	DefaultMaxBatch = 1000
	// DefaultWorkers is the number of identifiers converted concurrently in a batch.
	DefaultWorkers = 4
)

// Option is a function that configures a conversion
type Option func(*convertConfig) error

// convertConfig holds configuration for a conversion
type convertConfig struct {
	input *string

	// Source mode (exactly one must be set)
	sourceCase *casing.Type
	guess      bool
	candidates casing.Candidates

	targetCase *casing.Type

	maxInputSize int
	maxBatch     int
	workers      int
	logger       Logger
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*convertConfig, error) {
	cfg := &convertConfig{
		maxInputSize: DefaultMaxInputSize,
		maxBatch:     DefaultMaxBatch,
		workers:      DefaultWorkers,
		logger:       NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleChoice(
		"source",
		"must specify a source case (use WithSourceCase, WithGuess or WithUnjumble)",
		"must specify exactly one source case mode",
		cfg.sourceCase != nil, cfg.guess, cfg.candidates != nil,
	); err != nil {
		return nil, err
	}

	if cfg.targetCase == nil {
		return nil, &caseerrors.ConfigError{
			Option:  "target",
			Message: "must specify a target case (use WithTargetCase or WithTargetCaseName)",
		}
	}

	return cfg, nil
}

// WithInput specifies the identifier to convert.
// Only ConvertWithOptions accepts it; a Converter takes its inputs per call.
func WithInput(text string) Option {
	return func(cfg *convertConfig) error {
		cfg.input = &text
		return nil
	}
}

// WithSourceCase parses inputs with a fixed convention.
func WithSourceCase(t casing.Type) Option {
	return func(cfg *convertConfig) error {
		if !t.Valid() {
			return &caseerrors.ConfigError{
				Option: "source",
				Value:  int(t),
				Cause:  &caseerrors.CaseTypeError{Value: t.String(), Message: "unknown case type"},
			}
		}
		cfg.sourceCase = &t
		return nil
	}
}

// WithSourceCaseName is WithSourceCase for a case name such as "snake".
func WithSourceCaseName(name string) Option {
	return func(cfg *convertConfig) error {
		t, err := casing.ParseType(name)
		if err != nil {
			return fmt.Errorf("source case: %w", err)
		}
		cfg.sourceCase = &t
		return nil
	}
}

// WithGuess enables or disables guessing the source convention per input.
// Default: false
func WithGuess(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.guess = enabled
		return nil
	}
}

// WithUnjumble enables or disables parsing inputs with every convention at
// once, as casing.Unjumble does.
// Default: false
func WithUnjumble(enabled bool) Option {
	return func(cfg *convertConfig) error {
		if enabled {
			cfg.candidates = casing.Jumbled
		} else {
			cfg.candidates = nil
		}
		return nil
	}
}

// WithCandidates parses inputs with the combined parser restricted to the
// given conventions. Order matters: on a tie the later candidate wins.
func WithCandidates(c casing.Candidates) Option {
	return func(cfg *convertConfig) error {
		if len(c) == 0 {
			return &caseerrors.ConfigError{Option: "candidates", Message: "must name at least one case"}
		}
		for _, t := range c {
			if !t.Valid() {
				return &caseerrors.ConfigError{
					Option: "candidates",
					Value:  int(t),
					Cause:  &caseerrors.CaseTypeError{Value: t.String(), Message: "unknown case type"},
				}
			}
		}
		cfg.candidates = c
		return nil
	}
}

// WithTargetCase sets the convention outputs are built in.
func WithTargetCase(t casing.Type) Option {
	return func(cfg *convertConfig) error {
		if !t.Valid() {
			return &caseerrors.ConfigError{
				Option: "target",
				Value:  int(t),
				Cause:  &caseerrors.CaseTypeError{Value: t.String(), Message: "unknown case type"},
			}
		}
		cfg.targetCase = &t
		return nil
	}
}

// WithTargetCaseName is WithTargetCase for a case name such as "kebab".
func WithTargetCaseName(name string) Option {
	return func(cfg *convertConfig) error {
		t, err := casing.ParseType(name)
		if err != nil {
			return fmt.Errorf("target case: %w", err)
		}
		cfg.targetCase = &t
		return nil
	}
}

// WithMaxInputSize limits the size of a single input in bytes. Zero disables the limit.
// Default: DefaultMaxInputSize
func WithMaxInputSize(n int) Option {
	return func(cfg *convertConfig) error {
		if n < 0 {
			return &caseerrors.ConfigError{Option: "max_input_size", Value: n, Message: "must not be negative"}
		}
		cfg.maxInputSize = n
		return nil
	}
}

// WithMaxBatch limits the number of inputs in one batch. Zero disables the limit.
// Default: DefaultMaxBatch
func WithMaxBatch(n int) Option {
	return func(cfg *convertConfig) error {
		if n < 0 {
			return &caseerrors.ConfigError{Option: "max_batch", Value: n, Message: "must not be negative"}
		}
		cfg.maxBatch = n
		return nil
	}
}

// WithWorkers sets how many inputs of a batch are converted concurrently.
// Default: DefaultWorkers
func WithWorkers(n int) Option {
	return func(cfg *convertConfig) error {
		if n < 1 {
			return &caseerrors.ConfigError{Option: "workers", Value: n, Message: "must be at least 1"}
		}
		cfg.workers = n
		return nil
	}
}

// WithLogger sets the logger for conversion diagnostics.
// Default: NopLogger
func WithLogger(l Logger) Option {
	return func(cfg *convertConfig) error {
		if l == nil {
			l = NopLogger{}
		}
		cfg.logger = l
		return nil
	}
}
