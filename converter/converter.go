package converter

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mcoffin/caseconv/caseerrors"
	"github.com/mcoffin/caseconv/casing"
)

// ConversionResult contains the result of converting one identifier
type ConversionResult struct {
	// Input is the identifier as given
	Input string `json:"input" yaml:"input"`
	// Output is the identifier rebuilt in the target convention
	Output string `json:"output" yaml:"output"`
	// SourceCase names the convention the input was parsed with. For the
	// combined parser it lists the candidates, e.g. "camel+snake+kebab".
	SourceCase string `json:"source_case" yaml:"source_case"`
	// TargetCase names the convention the output was built in
	TargetCase string `json:"target_case" yaml:"target_case"`
	// Components are the pieces the input was split into, before re-casing
	Components []string `json:"components" yaml:"components"`
	// Guessed is true if SourceCase was picked by casing.Guess
	Guessed bool `json:"guessed,omitempty" yaml:"guessed,omitempty"`
	// Unjumbled is true if the input was parsed with the combined parser
	Unjumbled bool `json:"unjumbled,omitempty" yaml:"unjumbled,omitempty"`
}

// Changed returns true if the output differs from the input
func (r *ConversionResult) Changed() bool {
	return r.Input != r.Output
}

// Converter converts identifiers with a fixed configuration. It is safe for
// concurrent use.
type Converter struct {
	sourceCase   *casing.Type
	guess        bool
	candidates   casing.Candidates
	targetCase   casing.Type
	maxInputSize int
	maxBatch     int
	workers      int
	logger       Logger
}

// New creates a Converter from the given options. A source mode and a target
// case are required; WithInput is rejected since inputs are passed per call.
func New(opts ...Option) (*Converter, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	if cfg.input != nil {
		return nil, &caseerrors.ConfigError{
			Option:  "input",
			Message: "WithInput is only valid for ConvertWithOptions",
		}
	}
	return newConverter(cfg), nil
}

func newConverter(cfg *convertConfig) *Converter {
	return &Converter{
		sourceCase:   cfg.sourceCase,
		guess:        cfg.guess,
		candidates:   cfg.candidates,
		targetCase:   *cfg.targetCase,
		maxInputSize: cfg.maxInputSize,
		maxBatch:     cfg.maxBatch,
		workers:      cfg.workers,
		logger:       cfg.logger,
	}
}

// ConvertWithOptions converts a single identifier using functional options.
//
// Example:
//
//	result, err := converter.ConvertWithOptions(
//		converter.WithInput("simple_jumbledCase"),
//		converter.WithUnjumble(true),
//		converter.WithTargetCaseName("kebab"),
//	)
func ConvertWithOptions(opts ...Option) (*ConversionResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	if cfg.input == nil {
		return nil, &caseerrors.ConfigError{
			Option:  "input",
			Message: "must specify an input (use WithInput)",
		}
	}
	return newConverter(cfg).Convert(*cfg.input)
}

// ConvertBatch converts inputs concurrently with at most workers in flight.
// It is equivalent to creating a Converter with New(opts...) and calling
// ConvertBatch on it.
func ConvertBatch(ctx context.Context, inputs []string, workers int, opts ...Option) ([]*ConversionResult, error) {
	c, err := New(append(opts[:len(opts):len(opts)], WithWorkers(workers))...)
	if err != nil {
		return nil, err
	}
	return c.ConvertBatch(ctx, inputs)
}

// TargetCase returns the convention outputs are built in
func (c *Converter) TargetCase() casing.Type {
	return c.targetCase
}

// Convert converts one identifier
func (c *Converter) Convert(text string) (*ConversionResult, error) {
	if c.maxInputSize > 0 && len(text) > c.maxInputSize {
		return nil, &caseerrors.InputLimitError{
			Unit:   "bytes",
			Limit:  int64(c.maxInputSize),
			Actual: int64(len(text)),
		}
	}

	result := &ConversionResult{
		Input:      text,
		TargetCase: c.targetCase.String(),
	}

	var parser casing.Parser
	switch {
	case c.guess:
		guessed := casing.Guess(text)
		parser = guessed
		result.SourceCase = guessed.String()
		result.Guessed = true
		c.logger.Debug("guessed source case", "input", text, "case", result.SourceCase)
	case c.candidates != nil:
		parser = c.candidates
		result.SourceCase = c.candidates.String()
		result.Unjumbled = true
	default:
		parser = *c.sourceCase
		result.SourceCase = c.sourceCase.String()
	}

	it := parser.Components(text)
	result.Components = casing.Collect(it)
	if err := casing.Err(it); err != nil {
		c.logger.Error("splitting input failed", "input", text, "source", result.SourceCase, "error", err)
		return nil, fmt.Errorf("converting %q: %w", text, err)
	}
	if result.Components == nil {
		result.Components = []string{}
	}

	result.Output = c.targetCase.Build(casing.FromSlice(result.Components))
	c.logger.Debug("converted identifier",
		"input", text,
		"output", result.Output,
		"source", result.SourceCase,
		"target", result.TargetCase,
		"components", len(result.Components),
	)
	return result, nil
}

// ConvertBatch converts inputs concurrently. Results keep the order of the
// inputs. The first failure cancels the remaining work and is returned.
func (c *Converter) ConvertBatch(ctx context.Context, inputs []string) ([]*ConversionResult, error) {
	if c.maxBatch > 0 && len(inputs) > c.maxBatch {
		return nil, &caseerrors.InputLimitError{
			Unit:   "inputs",
			Limit:  int64(c.maxBatch),
			Actual: int64(len(inputs)),
		}
	}

	results := make([]*ConversionResult, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, text := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := c.Convert(text)
			if err != nil {
				return fmt.Errorf("input %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		c.logger.Warn("batch conversion failed", "inputs", len(inputs), "error", err)
		return nil, err
	}

	c.logger.Info("batch converted", "inputs", len(inputs), "workers", c.workers)
	return results, nil
}
