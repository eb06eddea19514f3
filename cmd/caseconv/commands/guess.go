package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/mcoffin/caseconv/caseerrors"
	"github.com/mcoffin/caseconv/casing"
)

// GuessFlags contains flags for the guess command
type GuessFlags struct {
	CommonFlags
	Scores bool
}

// GuessReport is the guess for one identifier
type GuessReport struct {
	Input  string         `json:"input"  yaml:"input"`
	Case   casing.Type    `json:"case"   yaml:"case"`
	Scores []casing.Score `json:"scores" yaml:"scores"`
}

// SetupGuessFlags creates and configures a FlagSet for the guess command.
func SetupGuessFlags() (*flag.FlagSet, *GuessFlags) {
	fs := flag.NewFlagSet("guess", flag.ContinueOnError)
	flags := &GuessFlags{}

	fs.BoolVar(&flags.Scores, "scores", false, "show the component count behind each guess (text format)")
	addCommonFlags(fs, &flags.CommonFlags)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: caseconv guess [flags] [identifier...|-]\n\n")
		Writef(fs.Output(), "Guess whether identifiers are camel, snake, or kebab case.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  caseconv guess simple_snake_case\n")
		Writef(fs.Output(), "  caseconv guess --scores mixed_jumbledCase\n")
		Writef(fs.Output(), "\nNotes:\n")
		Writef(fs.Output(), "  - The case that splits an identifier into the most components wins\n")
		Writef(fs.Output(), "  - Ties go to kebab over snake over camel; empty input guesses camel\n")
	}

	return fs, flags
}

// HandleGuess executes the guess command
func HandleGuess(args []string) error {
	fs, flags := SetupGuessFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := loadSettings(&flags.CommonFlags)
	if err != nil {
		return err
	}

	inputs, err := ReadInputs(fs.Args(), cfg.MaxInputSize)
	if err != nil {
		return err
	}
	if cfg.MaxBatch > 0 && len(inputs) > cfg.MaxBatch {
		return &caseerrors.InputLimitError{Unit: "inputs", Limit: int64(cfg.MaxBatch), Actual: int64(len(inputs))}
	}

	reports := make([]GuessReport, 0, len(inputs))
	for _, input := range inputs {
		if cfg.MaxInputSize > 0 && len(input) > cfg.MaxInputSize {
			return &caseerrors.InputLimitError{Unit: "bytes", Limit: int64(cfg.MaxInputSize), Actual: int64(len(input))}
		}
		reports = append(reports, GuessReport{
			Input:  input,
			Case:   casing.Guess(input),
			Scores: casing.Scores(input),
		})
	}

	if cfg.Format != FormatText {
		return OutputStructured(reports, cfg.Format)
	}

	for _, r := range reports {
		if !flags.Scores {
			Writef(stdout, "%s\n", r.Case)
			continue
		}
		parts := make([]string, 0, len(r.Scores))
		for _, s := range r.Scores {
			parts = append(parts, fmt.Sprintf("%s=%d", s.Type, s.Count))
		}
		Writef(stdout, "%s\t%s\n", r.Case, strings.Join(parts, " "))
	}
	return nil
}
