package engine

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/novexa/novexa/internal/candidate"
	"github.com/novexa/novexa/internal/llm"
	"github.com/novexa/novexa/internal/questions"
	"github.com/novexa/novexa/internal/scoring"
	"github.com/novexa/novexa/internal/transcript"
)

// Canned interviewer lines for deterministic paths.
const (
	endConfirmedText = "Thank you for your time. Ending the interview now."
	endNaturalText   = "That covers everything I wanted to ask. Thank you for your time."
	bridgeText       = "Let's keep going a little longer. "
	genericProbeText = "Could you elaborate on that?"
)

// Input is a point-in-time view of one session. The engine reads it,
// calls the model with no locks held, and reports what happened through
// the Outcome; the caller owns committing side effects.
type Input struct {
	Profile      candidate.Profile
	Entries      []transcript.Entry
	LastQuestion string
	Answer       string

	Elapsed        time.Duration
	QuestionsAsked int
	FollowUps      int

	// MaxFollowUps overrides the configured follow-up cap for this
	// session when positive. Role catalogs can set it per role.
	MaxFollowUps int

	SeedCursor int
	Source     *questions.Source
}

// Outcome carries the side effects the caller must commit alongside the
// decision. Entry is the scored latest exchange. Confirmation marks the
// decision as the end-confirmation prompt, which does not count against
// the follow-up cap.
type Outcome struct {
	Entry        transcript.Entry
	Confirmation bool
}

// Engine turns answers into decisions.
type Engine struct {
	provider  llm.Provider
	scorer    scoring.Scorer
	generator *questions.Generator
	cfg       Config
}

// New creates an Engine. The scorer should already wrap its own fallback;
// the engine adds a heuristic backstop regardless.
func New(provider llm.Provider, scorer scoring.Scorer, generator *questions.Generator, cfg Config) *Engine {
	return &Engine{provider: provider, scorer: scorer, generator: generator, cfg: cfg}
}

// Decide scores the answer and chooses the interviewer's next move.
// Model failure degrades to deterministic fallbacks; the only error
// Decide returns is context cancellation.
func (e *Engine) Decide(ctx context.Context, in Input) (Decision, Outcome, error) {
	out := Outcome{Entry: transcript.Entry{
		Question: in.LastQuestion,
		Answer:   in.Answer,
		Scores:   e.score(ctx, in),
	}}

	if err := ctx.Err(); err != nil {
		return Decision{}, Outcome{}, err
	}

	minimumsMet := in.Elapsed >= e.cfg.MinDuration && in.QuestionsAsked >= e.cfg.MinQuestions

	// Two-step termination: an end request is always confirmed first,
	// and a confirmed end only sticks once the minimums are met.
	if detectConfirmation(in.LastQuestion, in.Answer) {
		if minimumsMet {
			return Decision{Action: ActionEnd, Text: endConfirmedText}, out, nil
		}
		d := e.nextQuestion(ctx, in, minimumsMet)
		d.Text = bridgeText + d.Text
		return d, out, nil
	}
	if detectEndIntent(in.Answer) {
		out.Confirmation = true
		return Decision{Action: ActionFollowUp, Text: confirmEndPrompt}, out, nil
	}

	strength := scoring.Classify(in.Answer)
	action, followUp := e.modelDecision(ctx, in, strength)

	if action == ActionEnd && !minimumsMet {
		d := e.nextQuestion(ctx, in, minimumsMet)
		d.Text = bridgeText + d.Text
		return d, out, nil
	}

	switch action {
	case ActionEnd:
		return Decision{Action: ActionEnd, Text: endConfirmedText}, out, nil
	case ActionFollowUp:
		if in.FollowUps >= e.followUpCap(in) {
			return e.nextQuestion(ctx, in, minimumsMet), out, nil
		}
		if followUp == "" {
			followUp = genericProbeText
		}
		return Decision{Action: ActionFollowUp, Text: followUp}, out, nil
	default:
		return e.nextQuestion(ctx, in, minimumsMet), out, nil
	}
}

func (e *Engine) score(ctx context.Context, in Input) transcript.Scores {
	scores, err := e.scorer.Score(ctx, in.Profile, in.LastQuestion, in.Answer)
	if err != nil {
		scores, _ = scoring.HeuristicScorer{}.Score(ctx, in.Profile, in.LastQuestion, in.Answer)
	}
	return scores
}

// modelDecision consults the model and normalizes its output. Any failure
// falls back to the deterministic strength heuristic.
func (e *Engine) modelDecision(ctx context.Context, in Input, strength scoring.Strength) (Action, string) {
	ctx = llm.WithPurpose(ctx, "turn-decision")

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: decisionSystemPrompt(in.Profile),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: decisionUserPrompt(in.Entries, in.LastQuestion, in.Answer, string(strength))},
		},
		Schema:      DecisionSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return fallbackAction(strength), ""
	}

	var verdict struct {
		Action   string `json:"action"`
		Strength string `json:"strength"`
		Text     string `json:"text"`
	}
	if err := json.Unmarshal(resp.Content, &verdict); err != nil {
		return fallbackAction(strength), ""
	}

	action, ok := ParseAction(verdict.Action)
	if !ok {
		return fallbackAction(strength), ""
	}
	return action, strings.TrimSpace(verdict.Text)
}

func (e *Engine) followUpCap(in Input) int {
	if in.MaxFollowUps > 0 {
		return in.MaxFollowUps
	}
	return e.cfg.MaxFollowUps
}

// fallbackAction maps answer strength to an action when the model is
// unavailable: weak answers get probed, strong ones advance.
func fallbackAction(strength scoring.Strength) Action {
	if strength == scoring.StrengthStrong {
		return ActionNextQuestion
	}
	return ActionFollowUp
}

// nextQuestion advances the interview: the next seed (rephrased) when one
// remains, a generated question when the seeds ran out, or the natural
// end once exhaustion coincides with the minimums being met.
func (e *Engine) nextQuestion(ctx context.Context, in Input, minimumsMet bool) Decision {
	seed, err := in.Source.Next(in.SeedCursor + 1)
	if err != nil {
		if minimumsMet {
			return Decision{Action: ActionEnd, Text: endNaturalText}
		}
		q, _ := e.generator.Generate(ctx, in.Profile, askedQuestions(in))
		return Decision{Action: ActionNextQuestion, Text: q}
	}

	rephrased, _ := e.generator.Rephrase(ctx, in.Profile, seed)
	return Decision{Action: ActionNextQuestion, Text: rephrased}
}

func askedQuestions(in Input) []string {
	asked := make([]string, 0, len(in.Entries)+1)
	for _, entry := range in.Entries {
		asked = append(asked, entry.Question)
	}
	if in.LastQuestion != "" {
		asked = append(asked, in.LastQuestion)
	}
	return asked
}
