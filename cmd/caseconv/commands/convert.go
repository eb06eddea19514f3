package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/mcoffin/caseconv/converter"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	CommonFlags
	From string
	To   string
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.From, "f", "", "source case: camel, snake, or kebab (required)")
	fs.StringVar(&flags.From, "from", "", "source case: camel, snake, or kebab (required)")
	fs.StringVar(&flags.To, "t", "", "target case: camel, snake, or kebab (default: CASECONV_TARGET or kebab)")
	fs.StringVar(&flags.To, "to", "", "target case: camel, snake, or kebab (default: CASECONV_TARGET or kebab)")
	addCommonFlags(fs, &flags.CommonFlags)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: caseconv convert --from <case> [flags] [identifier...|-]\n\n")
		Writef(fs.Output(), "Convert identifiers from a known case to another case.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  caseconv convert --from camel --to kebab simpleCamelCase\n")
		Writef(fs.Output(), "  caseconv convert -f snake -t camel user_id account_name\n")
		Writef(fs.Output(), "  cat names.txt | caseconv convert -f kebab -t snake --format json\n")
		Writef(fs.Output(), "\nInput:\n")
		Writef(fs.Output(), "  - Identifiers are read from the arguments, or from stdin (one per line) when none or '-' is given\n")
		Writef(fs.Output(), "  - Output formats: %s\n", formatNames())
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.From == "" {
		fs.Usage()
		return fmt.Errorf("source case is required (use -f or --from)")
	}

	return runConversion(fs.Args(), &flags.CommonFlags, flags.To, converter.WithSourceCaseName(flags.From))
}

// runConversion converts the identifiers named by args with the given source
// mode and prints the results.
func runConversion(args []string, common *CommonFlags, to string, mode converter.Option) error {
	cfg, err := loadSettings(common)
	if err != nil {
		return err
	}

	inputs, err := ReadInputs(args, cfg.MaxInputSize)
	if err != nil {
		return err
	}

	c, err := converter.New(converterOptions(cfg, to, mode)...)
	if err != nil {
		return err
	}

	results, err := c.ConvertBatch(context.Background(), inputs)
	if err != nil {
		return fmt.Errorf("converting: %w", err)
	}

	return outputResults(results, cfg.Format)
}
