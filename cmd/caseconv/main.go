package main

import (
	"fmt"
	"os"

	"github.com/mcoffin/caseconv"
	"github.com/mcoffin/caseconv/cmd/caseconv/commands"
)

// commandNames lists every top-level command, in suggestion order.
var commandNames = []string{"convert", "auto", "guess", "unjumble", "split", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var handler func([]string) error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("caseconv v%s\n", caseconv.Version())
		if len(args) > 0 && (args[0] == "--verbose" || args[0] == "-verbose") {
			fmt.Println(caseconv.BuildInfo())
		}
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "convert":
		handler = commands.HandleConvert
	case "auto":
		handler = commands.HandleAuto
	case "guess":
		handler = commands.HandleGuess
	case "unjumble":
		handler = commands.HandleUnjumble
	case "split":
		handler = commands.HandleSplit
	case "mcp":
		handler = commands.HandleMCP
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err := handler(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the closest command within edit distance 2 of
// input, or "" when none is that close.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// levenshtein returns the edit distance between a and b, counted in runes.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`caseconv - Identifier Case Conversion Tools

Usage:
  caseconv <command> [options]

Commands:
  convert     Convert identifiers from a known case to another case
  auto        Guess the case of each identifier, then convert it
  guess       Report the case each identifier appears to be written in
  unjumble    Split identifiers that mix cases, then convert them
  split       List the components an identifier splits into
  mcp         Serve the conversion tools over MCP on stdio
  version     Show version information (--verbose for build details)
  help        Show this help message

Cases:
  camel (simpleCamelCase), snake (simple_snake_case), kebab (simple-kebab-case)

Examples:
  caseconv convert --from camel --to snake simpleCamelCase
  caseconv auto --to camel simple-kebab-case
  caseconv guess --scores mixed_jumbledCase
  caseconv unjumble --to kebab simple_jumbledCase
  cat identifiers.txt | caseconv auto --to snake --format json

Environment:
  CASECONV_TARGET, CASECONV_FORMAT, CASECONV_WORKERS, CASECONV_MAX_INPUT_SIZE,
  CASECONV_MAX_BATCH, CASECONV_LOG_LEVEL, CASECONV_CONFIG

Run 'caseconv <command> --help' for more information on a command.`)
}
