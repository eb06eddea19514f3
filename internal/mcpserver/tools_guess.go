package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mcoffin/caseconv/casing"
)

type guessCaseInput struct {
	Text  string   `json:"text,omitempty"  jsonschema:"A single identifier"`
	Texts []string `json:"texts,omitempty" jsonschema:"A batch of identifiers"`
}

type caseScore struct {
	Case  string `json:"case"`
	Count int    `json:"count"`
}

type guessResult struct {
	Input  string      `json:"input"`
	Case   string      `json:"case"`
	Scores []caseScore `json:"scores"`
}

type guessCaseOutput struct {
	Count   int           `json:"count"`
	Results []guessResult `json:"results"`
}

func (t *tools) handleGuessCase(_ context.Context, _ *mcp.CallToolRequest, input guessCaseInput) (*mcp.CallToolResult, guessCaseOutput, error) {
	texts, err := textInput{Text: input.Text, Texts: input.Texts}.resolve(t.cfg.MaxBatch)
	if err != nil {
		return errResult(err), guessCaseOutput{}, nil
	}

	output := guessCaseOutput{Results: makeSlice[guessResult](len(texts))}
	for _, text := range texts {
		if err := t.checkSize(text); err != nil {
			return errResult(err), guessCaseOutput{}, nil
		}

		scores := casing.Scores(text)
		result := guessResult{
			Input:  text,
			Case:   casing.Guess(text).String(),
			Scores: make([]caseScore, 0, len(scores)),
		}
		for _, s := range scores {
			result.Scores = append(result.Scores, caseScore{Case: s.Type.String(), Count: s.Count})
		}
		output.Results = append(output.Results, result)
	}
	output.Count = len(output.Results)

	return nil, output, nil
}
