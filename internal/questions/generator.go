package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/novexa/novexa/internal/candidate"
	"github.com/novexa/novexa/internal/llm"
)

const interviewerSystemPrompt = `You are Novexa, a professional interviewer running a mock %s interview (branch: %s, specialization: %s, difficulty: %s) with a candidate named %s. Ask one question at a time. Keep questions concise and speakable aloud; never include preamble, numbering, or commentary.`

// GeneratorConfig holds configuration for question generation calls.
type GeneratorConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultGeneratorConfig returns sensible defaults. Generation runs a
// little warm so fresh questions do not repeat the seeds verbatim.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		MaxTokens:   200,
		Temperature: 0.7,
	}
}

// Generator produces interview questions with the model: fresh questions
// once the seed list is exhausted, and rephrasings of catalog seeds so
// the candidate never hears the raw catalog text. Both operations
// soft-fail: a model outage degrades the wording, never the interview.
type Generator struct {
	provider llm.Provider
	cfg      GeneratorConfig
}

// NewGenerator creates a model-backed question generator.
func NewGenerator(provider llm.Provider, cfg GeneratorConfig) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

func systemPrompt(profile candidate.Profile) string {
	return fmt.Sprintf(interviewerSystemPrompt,
		profile.Role, profile.Branch, profile.Specialization, profile.Difficulty, profile.Name)
}

// Generate asks the model for a new question that does not repeat any of
// the already-asked ones. On any failure it returns the generic fallback
// question and a nil error.
func (g *Generator) Generate(ctx context.Context, profile candidate.Profile, asked []string) (string, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	var b strings.Builder
	b.WriteString("Generate a new, unique interview question for this role. Do not repeat previous questions.")
	if len(asked) > 0 {
		b.WriteString("\n\nAlready asked:\n")
		for _, q := range asked {
			b.WriteString("- ")
			b.WriteString(q)
			b.WriteString("\n")
		}
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt(profile),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: b.String()},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return GenericQuestion, nil
	}

	q := parseQuestion(resp)
	if q == "" {
		return GenericQuestion, nil
	}
	return q, nil
}

// Rephrase asks the model to reword a seed question in the interviewer's
// voice. On any failure it returns the seed unchanged and a nil error.
func (g *Generator) Rephrase(ctx context.Context, profile candidate.Profile, seed string) (string, error) {
	ctx = llm.WithPurpose(ctx, "question-rephrase")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt(profile),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: "Rephrase the following interview question concisely:\n" + seed},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return seed, nil
	}

	q := parseQuestion(resp)
	if q == "" {
		return seed, nil
	}
	return q, nil
}

func parseQuestion(resp *llm.Response) string {
	var out struct {
		Question string `json:"question"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return ""
	}
	return strings.TrimSpace(out.Question)
}
