package report

import "github.com/novexa/novexa/internal/llm"

func stringList(desc string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": desc,
	}
}

// ReportSchema defines the JSON schema for the qualitative report
// sections. The numeric sections never come from the model.
var ReportSchema = &llm.Schema{
	Name:        "interview-report",
	Description: "Qualitative coaching feedback for a completed mock interview",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"overall_feedback": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "A concise paragraph summarizing overall performance",
			},
			"strengths":  stringList("What the candidate did well, 2-3 bullets"),
			"weaknesses": stringList("Areas for improvement, 2-3 bullets"),
			"improvement_plan": map[string]any{
				"type":        "array",
				"description": "Actionable improvement steps with examples",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":       map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"example":     map[string]any{"type": "string"},
					},
					"required":             []any{"title", "description", "example"},
					"additionalProperties": false,
				},
			},
			"practice_prompts": stringList("3 practice prompts similar to the answered questions"),
			"resource_links":   stringList("2-3 resources or exercises to improve skills"),
		},
		"required": []any{
			"overall_feedback", "strengths", "weaknesses",
			"improvement_plan", "practice_prompts", "resource_links",
		},
		"additionalProperties": false,
	},
}

// FeedbackSchema defines the JSON schema for single-answer feedback.
var FeedbackSchema = &llm.Schema{
	Name:        "answer-feedback",
	Description: "Coaching feedback for a single interview answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "2-3 lines summarizing the overall answer quality",
			},
			"strengths":  stringList("What worked in the answer, 2 bullets"),
			"weaknesses": stringList("What fell short, 2 bullets"),
			"improvements": map[string]any{
				"type":        "array",
				"description": "3 actionable improvement steps with rewritten examples",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":       map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"example":     map[string]any{"type": "string"},
					},
					"required":             []any{"title", "description", "example"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"summary", "strengths", "weaknesses", "improvements"},
		"additionalProperties": false,
	},
}
