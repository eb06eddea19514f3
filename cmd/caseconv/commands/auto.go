package commands

import (
	"errors"
	"flag"

	"github.com/mcoffin/caseconv/converter"
)

// AutoFlags contains flags for the auto command
type AutoFlags struct {
	CommonFlags
	To string
}

// SetupAutoFlags creates and configures a FlagSet for the auto command.
func SetupAutoFlags() (*flag.FlagSet, *AutoFlags) {
	fs := flag.NewFlagSet("auto", flag.ContinueOnError)
	flags := &AutoFlags{}

	fs.StringVar(&flags.To, "t", "", "target case: camel, snake, or kebab (default: CASECONV_TARGET or kebab)")
	fs.StringVar(&flags.To, "to", "", "target case: camel, snake, or kebab (default: CASECONV_TARGET or kebab)")
	addCommonFlags(fs, &flags.CommonFlags)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: caseconv auto [flags] [identifier...|-]\n\n")
		Writef(fs.Output(), "Guess the case of each identifier, then convert it.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  caseconv auto --to snake simpleCamelCase simple-kebab-case\n")
		Writef(fs.Output(), "  caseconv auto --to camel --format yaml < names.txt\n")
		Writef(fs.Output(), "\nNotes:\n")
		Writef(fs.Output(), "  - The guess picks the case that finds the most components; kebab wins ties over snake, snake over camel\n")
		Writef(fs.Output(), "  - For identifiers that mix cases, use 'caseconv unjumble'\n")
	}

	return fs, flags
}

// HandleAuto executes the auto command
func HandleAuto(args []string) error {
	fs, flags := SetupAutoFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	return runConversion(fs.Args(), &flags.CommonFlags, flags.To, converter.WithGuess(true))
}
