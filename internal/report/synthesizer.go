package report

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/novexa/novexa/internal/candidate"
	"github.com/novexa/novexa/internal/llm"
	"github.com/novexa/novexa/internal/transcript"
)

const coachSystemPrompt = `You are an expert interview coach. You receive the full transcript of a mock interview with per-answer rubric scores and the computed averages. Write honest, specific, encouraging feedback grounded in what the candidate actually said.`

const correctiveInstruction = "Your previous response did not match the required JSON structure. Return ONLY a JSON object with exactly the required fields, no commentary and no markdown."

// maxAttempts bounds the model calls per report before falling back.
const maxAttempts = 3

// SynthesizerConfig holds configuration for report generation calls.
type SynthesizerConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultSynthesizerConfig returns sensible defaults.
func DefaultSynthesizerConfig() SynthesizerConfig {
	return SynthesizerConfig{
		MaxTokens:   1200,
		Temperature: 0.5,
	}
}

// Synthesizer produces end-of-interview reports.
type Synthesizer struct {
	provider llm.Provider
	cfg      SynthesizerConfig
}

// NewSynthesizer creates a report synthesizer.
func NewSynthesizer(provider llm.Provider, cfg SynthesizerConfig) *Synthesizer {
	return &Synthesizer{provider: provider, cfg: cfg}
}

// Synthesize builds the report for a finished transcript. Scores and
// averages are computed locally; the model fills in the qualitative
// sections with a bounded retry, and after the last failed attempt the
// deterministic fallback report is returned with a nil error.
func (s *Synthesizer) Synthesize(ctx context.Context, profile candidate.Profile, entries []transcript.Entry) (*Report, error) {
	ctx = llm.WithPurpose(ctx, "report")

	perQuestion := make([]QuestionScore, len(entries))
	for i, e := range entries {
		perQuestion[i] = QuestionScore{Question: e.Question, Answer: e.Answer, Scores: e.Scores}
	}
	avg := transcript.Averages(entries)

	messages := []llm.Message{
		{Role: llm.RoleUser, Content: reportUserPrompt(profile, perQuestion, avg)},
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, err := s.provider.Generate(ctx, llm.Request{
			System:      coachSystemPrompt,
			Messages:    messages,
			Schema:      ReportSchema,
			MaxTokens:   s.cfg.MaxTokens,
			Temperature: s.cfg.Temperature,
		})
		if err != nil {
			messages = withCorrective(messages)
			continue
		}

		var qualitative struct {
			OverallFeedback string            `json:"overall_feedback"`
			Strengths       []string          `json:"strengths"`
			Weaknesses      []string          `json:"weaknesses"`
			ImprovementPlan []ImprovementStep `json:"improvement_plan"`
			PracticePrompts []string          `json:"practice_prompts"`
			ResourceLinks   []string          `json:"resource_links"`
		}
		if err := json.Unmarshal(resp.Content, &qualitative); err != nil || qualitative.OverallFeedback == "" {
			messages = withCorrective(messages)
			continue
		}

		return &Report{
			PerQuestion:     perQuestion,
			AvgScores:       avg,
			OverallFeedback: qualitative.OverallFeedback,
			Strengths:       qualitative.Strengths,
			Weaknesses:      qualitative.Weaknesses,
			ImprovementPlan: qualitative.ImprovementPlan,
			Practice: Practice{
				Prompts:   qualitative.PracticePrompts,
				Resources: qualitative.ResourceLinks,
			},
		}, nil
	}

	return fallbackReport(perQuestion, avg), nil
}

// withCorrective appends the corrective instruction once; repeated
// failures reuse the same conversation rather than growing it.
func withCorrective(messages []llm.Message) []llm.Message {
	last := messages[len(messages)-1]
	if last.Role == llm.RoleUser && strings.Contains(last.Content, correctiveInstruction) {
		return messages
	}
	return append(messages, llm.Message{Role: llm.RoleUser, Content: correctiveInstruction})
}

func reportUserPrompt(profile candidate.Profile, perQuestion []QuestionScore, avg transcript.AverageScores) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Role: %s", profile.Role)
	if profile.Branch != "" {
		fmt.Fprintf(&b, " (%s)", profile.Branch)
	}
	fmt.Fprintf(&b, "\nDifficulty: %s\n\n", profile.Difficulty)

	fmt.Fprintf(&b, "Average scores (0-5): clarity %.2f, structure %.2f, examples %.2f, technical accuracy %.2f, overall %.2f\n\n",
		avg.Clarity, avg.Structure, avg.Examples, avg.TechnicalAccuracy, avg.Overall)

	b.WriteString("Transcript:\n")
	for i, q := range perQuestion {
		fmt.Fprintf(&b, "%d. Q: %s\n   A: %s\n   scores: clarity %d, structure %d, examples %d, technical accuracy %d, overall %d\n",
			i+1, q.Question, q.Answer,
			q.Scores.Clarity, q.Scores.Structure, q.Scores.Examples, q.Scores.TechnicalAccuracy, q.Scores.Overall)
	}

	b.WriteString("\nWrite the coaching report: a concise overall feedback paragraph, 2-3 strengths, 2-3 weaknesses, an improvement plan with concrete examples, 3 practice prompts similar to the answered questions, and 2-3 resources or exercises.")
	return b.String()
}
