// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes caseconv capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mcoffin/caseconv"
	"github.com/mcoffin/caseconv/caseerrors"
	"github.com/mcoffin/caseconv/internal/config"
)

const serverInstructions = `caseconv MCP server: converts identifiers between camelCase, snake_case and kebab-case, guesses the convention of an identifier, and splits identifiers that mix conventions.

Every tool takes either "text" (one identifier) or "texts" (a batch) and returns one result per input, in order. Case names are "camel", "snake" and "kebab".

Configuration: defaults come from CASECONV_* environment variables set in your MCP client config.
- CASECONV_TARGET (default: kebab): target case when "to" is omitted
- CASECONV_MAX_INPUT_SIZE (default: 65536): largest identifier in bytes
- CASECONV_MAX_BATCH (default: 1000): largest "texts" batch
- CASECONV_WORKERS (default: 4): concurrent conversions per batch`

// tools holds the settings shared by every tool handler.
type tools struct {
	cfg    *config.Config
	logger *slog.Logger
}

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	server := newServer(cfg, slog.Default())
	return server.Run(ctx, &mcp.StdioTransport{})
}

func newServer(cfg *config.Config, logger *slog.Logger) *mcp.Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	server := mcp.NewServer(
		&mcp.Implementation{Name: "caseconv", Version: caseconv.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server, &tools{cfg: cfg, logger: logger})
	return server
}

func registerAllTools(server *mcp.Server, t *tools) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_case",
		Description: "Convert identifiers from a known case to another case. Set from to camel, snake or kebab. The target defaults to CASECONV_TARGET when to is omitted. Returns the output and the components each input was split into.",
	}, t.handleConvertCase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "guess_case",
		Description: "Guess whether identifiers are camel, snake or kebab case. The case that splits an identifier into the most components wins; on a tie kebab beats snake and snake beats camel. Returns the per-case component counts behind each guess.",
	}, t.handleGuessCase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "guess_and_convert",
		Description: "Guess the case of each identifier, then convert it. Use this when inputs are consistently cased but the case is unknown. For identifiers that mix cases (e.g. simple_jumbledCase) use unjumble instead.",
	}, t.handleGuessAndConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "unjumble",
		Description: "Convert identifiers that mix cases, such as simple_jumbledCase, by splitting them with every case at once. Use candidates to restrict which cases are considered; order matters, the later candidate wins a tie.",
	}, t.handleUnjumble)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "split",
		Description: "List the components an identifier splits into. Set from to camel, snake, kebab or jumbled (default). Useful to see why a conversion produced a given output.",
	}, t.handleSplit)
}

// textInput is the identifier source shared by every tool.
// Exactly one of Text or Texts must be set.
type textInput struct {
	Text  string   `json:"text,omitempty"  jsonschema:"A single identifier"`
	Texts []string `json:"texts,omitempty" jsonschema:"A batch of identifiers, converted concurrently"`
}

// resolve returns the identifiers to process.
func (in textInput) resolve(maxBatch int) ([]string, error) {
	switch {
	case in.Text != "" && len(in.Texts) > 0:
		return nil, fmt.Errorf("exactly one of text or texts must be provided")
	case in.Text != "":
		return []string{in.Text}, nil
	case len(in.Texts) > 0:
		if maxBatch > 0 && len(in.Texts) > maxBatch {
			return nil, &caseerrors.InputLimitError{Unit: "inputs", Limit: int64(maxBatch), Actual: int64(len(in.Texts))}
		}
		return in.Texts, nil
	default:
		return nil, fmt.Errorf("exactly one of text or texts must be provided")
	}
}

// checkSize rejects an identifier larger than the configured limit.
func (t *tools) checkSize(s string) error {
	if limit := t.cfg.MaxInputSize; limit > 0 && len(s) > limit {
		return &caseerrors.InputLimitError{Unit: "bytes", Limit: int64(limit), Actual: int64(len(s))}
	}
	return nil
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
