package report

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/novexa/novexa/internal/candidate"
	"github.com/novexa/novexa/internal/llm"
	"github.com/novexa/novexa/internal/scoring"
	"github.com/novexa/novexa/internal/transcript"
)

// Feedback is coaching feedback for a single question and answer,
// independent of any session.
type Feedback struct {
	Scores       transcript.Scores `json:"scores"`
	Summary      string            `json:"summary"`
	Strengths    []string          `json:"strengths"`
	Weaknesses   []string          `json:"weaknesses"`
	Improvements []ImprovementStep `json:"improvements"`
}

const feedbackSystemPrompt = `You are an expert interview coach evaluating a single candidate answer. Be specific and actionable; every improvement step must include a short rewritten example applying the fix.`

// GenerateFeedback scores one answer and asks the model for coaching
// feedback on it. Unlike the session report this is an on-demand
// operation with no fallback; a model failure is returned to the caller.
func GenerateFeedback(ctx context.Context, provider llm.Provider, scorer scoring.Scorer, profile candidate.Profile, question, answer string) (*Feedback, error) {
	ctx = llm.WithPurpose(ctx, "feedback")

	scores, err := scorer.Score(ctx, profile, question, answer)
	if err != nil {
		return nil, fmt.Errorf("score answer: %w", err)
	}

	scoresJSON, _ := json.Marshal(scores)
	userMsg := fmt.Sprintf(
		"Role: %s\n\nQUESTION: %s\n\nANSWER: %s\n\nPre-computed rubric scores (0-5):\n%s",
		profile.Role, question, answer, scoresJSON,
	)

	resp, err := provider.Generate(ctx, llm.Request{
		System: feedbackSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      FeedbackSchema,
		MaxTokens:   800,
		Temperature: 0.5,
	})
	if err != nil {
		return nil, fmt.Errorf("generate feedback: %w", err)
	}

	fb := &Feedback{Scores: scores}
	if err := json.Unmarshal(resp.Content, fb); err != nil {
		return nil, fmt.Errorf("parse feedback response: %w", err)
	}
	return fb, nil
}
