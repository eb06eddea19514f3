package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcoffin/caseconv/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() (*flag.FlagSet, *CommonFlags) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	flags := &CommonFlags{}
	addCommonFlags(fs, flags)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: caseconv mcp [flags]\n\n")
		Writef(fs.Output(), "Serve the case conversion tools over MCP (Model Context Protocol) on stdio.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nTools:\n")
		Writef(fs.Output(), "  convert_case, guess_case, guess_and_convert, unjumble, split\n")
		Writef(fs.Output(), "\nNotes:\n")
		Writef(fs.Output(), "  - Logs go to stderr; stdout carries the protocol\n")
		Writef(fs.Output(), "  - Defaults come from CASECONV_* environment variables or --config\n")
	}

	return fs, flags
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs, flags := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := loadSettings(flags)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx, cfg)
}
