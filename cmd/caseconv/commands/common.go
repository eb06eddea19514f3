// Package commands provides CLI command handlers for caseconv.
package commands

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/mcoffin/caseconv/caseerrors"
	"github.com/mcoffin/caseconv/converter"
	"github.com/mcoffin/caseconv/internal/config"
	"github.com/mcoffin/caseconv/internal/stringutil"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinArg is the special argument used to indicate reading identifiers from stdin.
const StdinArg = "-"

// maxStdinLine bounds a stdin line when no input size limit is configured.
const maxStdinLine = 1 << 20

// Standard streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// CommonFlags contains the flags shared by every conversion command
type CommonFlags struct {
	Format  string
	Config  string
	Verbose bool
}

// addCommonFlags binds the shared flags to fs.
func addCommonFlags(fs *flag.FlagSet, flags *CommonFlags) {
	fs.StringVar(&flags.Format, "format", "", "output format: text, json, or yaml (default: CASECONV_FORMAT or text)")
	fs.StringVar(&flags.Config, "config", "", "path to a YAML config file (default: CASECONV_CONFIG)")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log conversion details to stderr")
}

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// loadSettings loads the config named by the flags, applies flag overrides
// and installs the stderr logger.
func loadSettings(flags *CommonFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.Config)
	if err != nil {
		return nil, err
	}

	if flags.Format != "" {
		if err := ValidateOutputFormat(flags.Format); err != nil {
			return nil, err
		}
		cfg.Format = flags.Format
	}

	level := cfg.LogLevel
	if flags.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	return cfg, nil
}

// ReadInputs returns the identifiers named by args. With no arguments, or
// the single argument "-", identifiers are read from stdin one per line and
// blank lines are skipped. Bytes that are not valid UTF-8 become U+FFFD.
func ReadInputs(args []string, maxInputSize int) ([]string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == StdinArg) {
		return readLines(stdin, maxInputSize)
	}

	inputs := make([]string, 0, len(args))
	for _, arg := range args {
		inputs = append(inputs, stringutil.DecodeLossyString(arg))
	}
	return inputs, nil
}

func readLines(r io.Reader, maxInputSize int) ([]string, error) {
	maxLine := maxInputSize
	if maxLine <= 0 {
		maxLine = maxStdinLine
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(maxLine+1, 4096)), maxLine+1)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimSuffix(stringutil.DecodeLossy(scanner.Bytes()), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("reading stdin: line longer than %d bytes: %w", maxLine, caseerrors.ErrInputLimit)
		}
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return lines, nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	Writef(stdout, "%s\n", strings.TrimRight(string(bytes), "\n"))
	return nil
}

// outputResults prints conversion results: one output per line for text,
// the full results otherwise.
func outputResults(results []*converter.ConversionResult, format string) error {
	if format != FormatText {
		return OutputStructured(results, format)
	}
	for _, r := range results {
		Writef(stdout, "%s\n", r.Output)
	}
	return nil
}

// converterOptions returns the converter options for cfg with the source
// mode and, when to is non-empty, an explicit target.
func converterOptions(cfg *config.Config, to string, mode converter.Option) []converter.Option {
	opts := append(cfg.ConverterOptions(),
		mode,
		converter.WithLogger(converter.NewSlogAdapter(slog.Default())),
	)
	if to != "" {
		opts = append(opts, converter.WithTargetCaseName(to))
	}
	return opts
}

// formatNames lists config.Formats for help output.
func formatNames() string {
	return strings.Join(config.Formats, ", ")
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil { //nolint:gosec // G705 - CLI tool, not a web server
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}
