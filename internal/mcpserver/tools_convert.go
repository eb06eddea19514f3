package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mcoffin/caseconv/casing"
	"github.com/mcoffin/caseconv/converter"
)

type convertCaseInput struct {
	Text  string   `json:"text,omitempty"  jsonschema:"A single identifier"`
	Texts []string `json:"texts,omitempty" jsonschema:"A batch of identifiers, converted concurrently"`
	From  string   `json:"from"            jsonschema:"Case of the input: camel\\, snake or kebab"`
	To    string   `json:"to,omitempty"    jsonschema:"Target case: camel\\, snake or kebab. Defaults to CASECONV_TARGET"`
}

type guessAndConvertInput struct {
	Text  string   `json:"text,omitempty"  jsonschema:"A single identifier"`
	Texts []string `json:"texts,omitempty" jsonschema:"A batch of identifiers, converted concurrently"`
	To    string   `json:"to,omitempty"    jsonschema:"Target case: camel\\, snake or kebab. Defaults to CASECONV_TARGET"`
}

type unjumbleInput struct {
	Text       string   `json:"text,omitempty"       jsonschema:"A single identifier"`
	Texts      []string `json:"texts,omitempty"      jsonschema:"A batch of identifiers, converted concurrently"`
	To         string   `json:"to,omitempty"         jsonschema:"Target case: camel\\, snake or kebab. Defaults to CASECONV_TARGET"`
	Candidates []string `json:"candidates,omitempty" jsonschema:"Cases to split with\\, in tie-break order. Defaults to camel\\, snake\\, kebab"`
}

type conversionOutput struct {
	Count   int                           `json:"count"`
	Results []*converter.ConversionResult `json:"results"`
}

func (t *tools) handleConvertCase(ctx context.Context, _ *mcp.CallToolRequest, input convertCaseInput) (*mcp.CallToolResult, conversionOutput, error) {
	if input.From == "" {
		return errResult(fmt.Errorf("from is required")), conversionOutput{}, nil
	}
	return t.convert(ctx, textInput{Text: input.Text, Texts: input.Texts}, input.To,
		converter.WithSourceCaseName(input.From))
}

func (t *tools) handleGuessAndConvert(ctx context.Context, _ *mcp.CallToolRequest, input guessAndConvertInput) (*mcp.CallToolResult, conversionOutput, error) {
	return t.convert(ctx, textInput{Text: input.Text, Texts: input.Texts}, input.To,
		converter.WithGuess(true))
}

func (t *tools) handleUnjumble(ctx context.Context, _ *mcp.CallToolRequest, input unjumbleInput) (*mcp.CallToolResult, conversionOutput, error) {
	mode := converter.WithUnjumble(true)
	if len(input.Candidates) > 0 {
		candidates := make(casing.Candidates, 0, len(input.Candidates))
		for _, name := range input.Candidates {
			c, err := casing.ParseType(name)
			if err != nil {
				return errResult(fmt.Errorf("candidates: %w", err)), conversionOutput{}, nil
			}
			candidates = append(candidates, c)
		}
		mode = converter.WithCandidates(candidates)
	}
	return t.convert(ctx, textInput{Text: input.Text, Texts: input.Texts}, input.To, mode)
}

// convert runs a batch conversion with the server defaults, the given source
// mode and, when to is non-empty, an explicit target case.
func (t *tools) convert(ctx context.Context, in textInput, to string, mode converter.Option) (*mcp.CallToolResult, conversionOutput, error) {
	texts, err := in.resolve(t.cfg.MaxBatch)
	if err != nil {
		return errResult(err), conversionOutput{}, nil
	}

	opts := append(t.cfg.ConverterOptions(),
		mode,
		converter.WithLogger(converter.NewSlogAdapter(t.logger)),
	)
	if to != "" {
		opts = append(opts, converter.WithTargetCaseName(to))
	}

	c, err := converter.New(opts...)
	if err != nil {
		return errResult(err), conversionOutput{}, nil
	}

	results, err := c.ConvertBatch(ctx, texts)
	if err != nil {
		return errResult(err), conversionOutput{}, nil
	}

	return nil, conversionOutput{Count: len(results), Results: results}, nil
}
