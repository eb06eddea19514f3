package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mcoffin/caseconv/casing"
)

type splitInput struct {
	Text  string   `json:"text,omitempty"  jsonschema:"A single identifier"`
	Texts []string `json:"texts,omitempty" jsonschema:"A batch of identifiers"`
	From  string   `json:"from,omitempty"  jsonschema:"camel\\, snake\\, kebab\\, jumbled (default) or a list such as snake+camel"`
}

type splitResult struct {
	Input      string   `json:"input"`
	Components []string `json:"components"`
}

type splitOutput struct {
	Parser  string        `json:"parser"`
	Count   int           `json:"count"`
	Results []splitResult `json:"results"`
}

func (t *tools) handleSplit(_ context.Context, _ *mcp.CallToolRequest, input splitInput) (*mcp.CallToolResult, splitOutput, error) {
	texts, err := textInput{Text: input.Text, Texts: input.Texts}.resolve(t.cfg.MaxBatch)
	if err != nil {
		return errResult(err), splitOutput{}, nil
	}

	from := input.From
	if from == "" {
		from = "jumbled"
	}
	parser, err := casing.ParseParser(from)
	if err != nil {
		return errResult(err), splitOutput{}, nil
	}

	output := splitOutput{Parser: fmt.Sprint(parser), Results: makeSlice[splitResult](len(texts))}
	for _, text := range texts {
		if err := t.checkSize(text); err != nil {
			return errResult(err), splitOutput{}, nil
		}

		it := parser.Components(text)
		components := casing.Collect(it)
		if err := casing.Err(it); err != nil {
			return errResult(err), splitOutput{}, nil
		}
		if components == nil {
			components = []string{}
		}
		output.Results = append(output.Results, splitResult{Input: text, Components: components})
	}
	output.Count = len(output.Results)

	return nil, output, nil
}
