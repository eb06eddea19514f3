package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/mcoffin/caseconv/caseerrors"
	"github.com/mcoffin/caseconv/casing"
)

// SplitFlags contains flags for the split command
type SplitFlags struct {
	CommonFlags
	From string
}

// SplitReport lists the components of one identifier
type SplitReport struct {
	Input      string   `json:"input"      yaml:"input"`
	Components []string `json:"components" yaml:"components"`
}

// SetupSplitFlags creates and configures a FlagSet for the split command.
func SetupSplitFlags() (*flag.FlagSet, *SplitFlags) {
	fs := flag.NewFlagSet("split", flag.ContinueOnError)
	flags := &SplitFlags{}

	fs.StringVar(&flags.From, "f", "jumbled", "parser: camel, snake, kebab, jumbled, or a list such as snake,camel")
	fs.StringVar(&flags.From, "from", "jumbled", "parser: camel, snake, kebab, jumbled, or a list such as snake,camel")
	addCommonFlags(fs, &flags.CommonFlags)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: caseconv split [flags] [identifier...|-]\n\n")
		Writef(fs.Output(), "List the components identifiers split into.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  caseconv split simple_jumbledCase\n")
		Writef(fs.Output(), "  caseconv split --from camel --format json parseHTTPRequest\n")
	}

	return fs, flags
}

// HandleSplit executes the split command
func HandleSplit(args []string) error {
	fs, flags := SetupSplitFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	parser, err := casing.ParseParser(flags.From)
	if err != nil {
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

	reports := make([]SplitReport, 0, len(inputs))
	for _, input := range inputs {
		if cfg.MaxInputSize > 0 && len(input) > cfg.MaxInputSize {
			return &caseerrors.InputLimitError{Unit: "bytes", Limit: int64(cfg.MaxInputSize), Actual: int64(len(input))}
		}
		it := parser.Components(input)
		components := casing.Collect(it)
		if err := casing.Err(it); err != nil {
			return fmt.Errorf("splitting %q: %w", input, err)
		}
		if components == nil {
			components = []string{}
		}
		reports = append(reports, SplitReport{Input: input, Components: components})
	}

	if cfg.Format != FormatText {
		return OutputStructured(reports, cfg.Format)
	}

	for _, r := range reports {
		Writef(stdout, "%q\n", r.Components)
	}
	return nil
}
