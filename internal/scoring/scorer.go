// Package scoring derives per-answer rubric scores. The rubric strategy
// is swappable: the default LLM scorer judges answers with a
// schema-validated model call, and a deterministic heuristic scorer
// covers tests and model outages.
package scoring

import (
	"context"

	"github.com/novexa/novexa/internal/candidate"
	"github.com/novexa/novexa/internal/transcript"
)

// Scorer scores a single answer against the question it responds to.
type Scorer interface {
	Score(ctx context.Context, profile candidate.Profile, question, answer string) (transcript.Scores, error)
}
