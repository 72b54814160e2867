package scoring

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/novexa/novexa/internal/candidate"
	"github.com/novexa/novexa/internal/llm"
	"github.com/novexa/novexa/internal/transcript"
)

const scorerSystemPrompt = `You are an expert interview evaluator. Score the candidate's answer against the question it responds to, on the 0-5 rubric you are given. Judge only what was said; do not reward length for its own sake. A 0 means no usable content, a 5 means an answer a strong hire would give.`

// LLMScorerConfig holds configuration for the model-backed scorer.
type LLMScorerConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultLLMScorerConfig returns sensible defaults. Temperature stays low:
// scoring should be as repeatable as the model allows.
func DefaultLLMScorerConfig() LLMScorerConfig {
	return LLMScorerConfig{
		MaxTokens:   256,
		Temperature: 0.2,
	}
}

// LLMScorer scores answers with a schema-validated model call.
type LLMScorer struct {
	provider llm.Provider
	cfg      LLMScorerConfig
}

// NewLLMScorer creates a model-backed scorer.
func NewLLMScorer(provider llm.Provider, cfg LLMScorerConfig) *LLMScorer {
	return &LLMScorer{provider: provider, cfg: cfg}
}

func (s *LLMScorer) Score(ctx context.Context, profile candidate.Profile, question, answer string) (transcript.Scores, error) {
	ctx = llm.WithPurpose(ctx, "answer-scoring")

	userMsg := fmt.Sprintf(
		"Role: %s\nDifficulty: %s\n\nQUESTION: %s\n\nANSWER: %s",
		profile.Role, profile.Difficulty, question, answer,
	)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: scorerSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      ScoresSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return transcript.Scores{}, fmt.Errorf("score answer: %w", err)
	}

	var scores transcript.Scores
	if err := json.Unmarshal(resp.Content, &scores); err != nil {
		return transcript.Scores{}, fmt.Errorf("parse scoring response: %w", err)
	}
	return scores, nil
}

// WithFallback wraps a primary scorer with a fallback used when the
// primary fails. The decision pipeline must never lose an answer to a
// scoring outage.
func WithFallback(primary, fallback Scorer) Scorer {
	return fallbackScorer{primary: primary, fallback: fallback}
}

type fallbackScorer struct {
	primary  Scorer
	fallback Scorer
}

func (f fallbackScorer) Score(ctx context.Context, profile candidate.Profile, question, answer string) (transcript.Scores, error) {
	scores, err := f.primary.Score(ctx, profile, question, answer)
	if err == nil {
		return scores, nil
	}
	return f.fallback.Score(ctx, profile, question, answer)
}
