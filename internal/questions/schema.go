package questions

import "github.com/novexa/novexa/internal/llm"

// QuestionSchema defines the JSON schema for generated interview questions.
var QuestionSchema = &llm.Schema{
	Name:        "interview-question",
	Description: "A single interview question to ask the candidate next",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "The question, phrased as the interviewer would speak it",
			},
		},
		"required":             []any{"question"},
		"additionalProperties": false,
	},
}
