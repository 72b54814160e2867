package engine

import "github.com/novexa/novexa/internal/llm"

// DecisionSchema defines the JSON schema for turn decisions.
var DecisionSchema = &llm.Schema{
	Name:        "turn-decision",
	Description: "The interviewer's next move after hearing an answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"action": map[string]any{
				"type":        "string",
				"enum":        []any{"follow_up", "next_question", "end"},
				"description": "Whether to probe deeper, move on, or end the interview",
			},
			"strength": map[string]any{
				"type":        "string",
				"enum":        []any{"weak", "moderate", "strong"},
				"description": "Estimated quality of the latest answer",
			},
			"text": map[string]any{
				"type":        "string",
				"description": "The follow-up question when action is follow_up, otherwise empty",
			},
		},
		"required":             []any{"action", "strength", "text"},
		"additionalProperties": false,
	},
}
