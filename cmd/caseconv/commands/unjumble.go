package commands

import (
	"errors"
	"flag"

	"github.com/mcoffin/caseconv/casing"
	"github.com/mcoffin/caseconv/converter"
)

// UnjumbleFlags contains flags for the unjumble command
type UnjumbleFlags struct {
	CommonFlags
	To         string
	Candidates string
}

// SetupUnjumbleFlags creates and configures a FlagSet for the unjumble command.
func SetupUnjumbleFlags() (*flag.FlagSet, *UnjumbleFlags) {
	fs := flag.NewFlagSet("unjumble", flag.ContinueOnError)
	flags := &UnjumbleFlags{}

	fs.StringVar(&flags.To, "t", "", "target case: camel, snake, or kebab (default: CASECONV_TARGET or kebab)")
	fs.StringVar(&flags.To, "to", "", "target case: camel, snake, or kebab (default: CASECONV_TARGET or kebab)")
	fs.StringVar(&flags.Candidates, "candidates", "", "comma separated cases to split with, in tie-break order (default: camel,snake,kebab)")
	addCommonFlags(fs, &flags.CommonFlags)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: caseconv unjumble [flags] [identifier...|-]\n\n")
		Writef(fs.Output(), "Convert identifiers that mix cases, such as simple_jumbledCase.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  caseconv unjumble --to kebab simple_jumbledCase\n")
		Writef(fs.Output(), "  caseconv unjumble --candidates snake,camel --to snake foo_barBaz\n")
		Writef(fs.Output(), "\nNotes:\n")
		Writef(fs.Output(), "  - At each step every candidate proposes its next component and the shortest wins\n")
		Writef(fs.Output(), "  - On a tie the candidate listed later wins\n")
	}

	return fs, flags
}

// HandleUnjumble executes the unjumble command
func HandleUnjumble(args []string) error {
	fs, flags := SetupUnjumbleFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	mode := converter.WithUnjumble(true)
	if flags.Candidates != "" {
		candidates, err := casing.ParseCandidates(flags.Candidates)
		if err != nil {
			return err
		}
		mode = converter.WithCandidates(candidates)
	}

	return runConversion(fs.Args(), &flags.CommonFlags, flags.To, mode)
}
