package scoring

import "github.com/novexa/novexa/internal/llm"

// scoreDimension builds the schema fragment for one 0-5 rubric dimension.
func scoreDimension(desc string) map[string]any {
	return map[string]any{
		"type":        "integer",
		"minimum":     0,
		"maximum":     5,
		"description": desc,
	}
}

// ScoresSchema defines the JSON schema for per-answer scoring responses.
var ScoresSchema = &llm.Schema{
	Name:        "answer-scores",
	Description: "Rubric scores for a single interview answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"clarity":            scoreDimension("How clearly the answer communicates its points"),
			"structure":          scoreDimension("How well the answer is organized (intro, reasoning, conclusion)"),
			"examples":           scoreDimension("Use of concrete examples or experience to support claims"),
			"technical_accuracy": scoreDimension("Correctness of technical content for the role"),
			"overall":            scoreDimension("Overall answer quality"),
		},
		"required":             []any{"clarity", "structure", "examples", "technical_accuracy", "overall"},
		"additionalProperties": false,
	},
}
