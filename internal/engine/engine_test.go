package engine

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/novexa/novexa/internal/candidate"
	"github.com/novexa/novexa/internal/llm"
	"github.com/novexa/novexa/internal/questions"
	"github.com/novexa/novexa/internal/scoring"
)

var engineProfile = candidate.Profile{
	Name: "Ada", Role: "backend", Difficulty: candidate.DifficultyMedium,
}

func newTestEngine(mock *llm.MockProvider) *Engine {
	gen := questions.NewGenerator(mock, questions.DefaultGeneratorConfig())
	return New(mock, scoring.HeuristicScorer{}, gen, DefaultConfig())
}

func baseInput() Input {
	return Input{
		Profile:        engineProfile,
		LastQuestion:   "How would you design a rate limiter?",
		Answer:         "I would use a token bucket keyed by client id, refilled on a timer, with limits tuned per endpoint.",
		Elapsed:        4 * time.Minute,
		QuestionsAsked: 2,
		SeedCursor:     0,
		Source: questions.NewSourceFromSeeds([]string{
			"seed one", "seed two", "seed three",
		}),
	}
}

func decisionJSON(action, strength, text string) llm.MockResponse {
	raw, _ := json.Marshal(map[string]string{
		"action": action, "strength": strength, "text": text,
	})
	return llm.MockResponse{Content: raw}
}

func questionJSON(q string) llm.MockResponse {
	raw, _ := json.Marshal(map[string]string{"question": q})
	return llm.MockResponse{Content: raw}
}

func TestDecide_EndIntentGetsConfirmation(t *testing.T) {
	mock := llm.NewMockProvider()
	e := newTestEngine(mock)

	in := baseInput()
	in.Answer = "Can we end the interview here? I have another meeting."

	d, out, err := e.Decide(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Action != ActionFollowUp {
		t.Fatalf("expected follow_up confirmation, got %v", d.Action)
	}
	if !strings.Contains(strings.ToLower(d.Text), "are you sure") {
		t.Errorf("confirmation prompt missing, got %q", d.Text)
	}
	if !out.Confirmation {
		t.Error("outcome should be flagged as confirmation")
	}
	if mock.CallCount() != 0 {
		t.Errorf("end-intent detection should not call the model, got %d calls", mock.CallCount())
	}
}

func TestDecide_ConfirmedEndWithMinimumsMet(t *testing.T) {
	mock := llm.NewMockProvider()
	e := newTestEngine(mock)

	in := baseInput()
	in.LastQuestion = confirmEndPrompt
	in.Answer = "Yes, I'm sure."
	in.Elapsed = 12 * time.Minute
	in.QuestionsAsked = 6

	d, out, err := e.Decide(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Action != ActionEnd {
		t.Fatalf("expected end, got %v (%q)", d.Action, d.Text)
	}
	if out.Entry.Answer != in.Answer {
		t.Error("confirmed answer should still be scored and recorded")
	}
}

func TestDecide_ConfirmedEndBlockedByMinimums(t *testing.T) {
	mock := llm.NewMockProvider(questionJSON("rephrased seed two"))
	e := newTestEngine(mock)

	in := baseInput()
	in.LastQuestion = confirmEndPrompt
	in.Answer = "yes"
	in.Elapsed = 4 * time.Minute
	in.QuestionsAsked = 2

	d, _, err := e.Decide(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Action == ActionEnd {
		t.Fatal("must not end before duration and question minimums are met")
	}
	if !strings.HasPrefix(d.Text, bridgeText) {
		t.Errorf("expected bridging prefix, got %q", d.Text)
	}
}

func TestDecide_ModelEndDowngradedBeforeMinimums(t *testing.T) {
	mock := llm.NewMockProvider(
		decisionJSON("end", "strong", ""),
		questionJSON("rephrased seed two"),
	)
	e := newTestEngine(mock)

	d, _, err := e.Decide(context.Background(), baseInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Action != ActionNextQuestion {
		t.Fatalf("model end must downgrade to next_question, got %v", d.Action)
	}
	if !strings.HasPrefix(d.Text, bridgeText) {
		t.Errorf("expected bridging prefix, got %q", d.Text)
	}
}

func TestDecide_ModelEndHonoredAfterMinimums(t *testing.T) {
	mock := llm.NewMockProvider(decisionJSON("end", "strong", ""))
	e := newTestEngine(mock)

	in := baseInput()
	in.Elapsed = 11 * time.Minute
	in.QuestionsAsked = 6

	d, _, err := e.Decide(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Action != ActionEnd {
		t.Errorf("expected end, got %v", d.Action)
	}
}

func TestDecide_FollowUpServedFromModel(t *testing.T) {
	mock := llm.NewMockProvider(decisionJSON("follow_up", "moderate", "What refill rate would you pick?"))
	e := newTestEngine(mock)

	d, _, err := e.Decide(context.Background(), baseInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Action != ActionFollowUp {
		t.Fatalf("expected follow_up, got %v", d.Action)
	}
	if d.Text != "What refill rate would you pick?" {
		t.Errorf("unexpected follow-up text %q", d.Text)
	}
}

func TestDecide_MaxFollowUpsForcesAdvance(t *testing.T) {
	mock := llm.NewMockProvider(
		decisionJSON("follow_up", "weak", "one more probe"),
		questionJSON("rephrased seed two"),
	)
	e := newTestEngine(mock)

	in := baseInput()
	in.FollowUps = DefaultConfig().MaxFollowUps

	d, _, err := e.Decide(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Action != ActionNextQuestion {
		t.Errorf("expected forced advancement, got %v", d.Action)
	}
	if d.Text != "rephrased seed two" {
		t.Errorf("expected rephrased next seed, got %q", d.Text)
	}
}

func TestDecide_SessionFollowUpCapOverridesConfig(t *testing.T) {
	// A positive per-session cap wins over the configured default, so a
	// role allowing a single follow-up advances on the second probe.
	mock := llm.NewMockProvider(
		decisionJSON("follow_up", "weak", "one more probe"),
		questionJSON("rephrased seed two"),
	)
	e := newTestEngine(mock)

	in := baseInput()
	in.MaxFollowUps = 1
	in.FollowUps = 1

	d, _, err := e.Decide(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Action != ActionNextQuestion {
		t.Errorf("cap of 1 with 1 follow-up spent must advance, got %v", d.Action)
	}

	// A zero override means the config default still applies.
	mock = llm.NewMockProvider(decisionJSON("follow_up", "weak", "one more probe"))
	e = newTestEngine(mock)

	in = baseInput()
	in.MaxFollowUps = 0
	in.FollowUps = 1

	d, _, err = e.Decide(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Action != ActionFollowUp {
		t.Errorf("zero override must fall back to the config cap, got %v", d.Action)
	}
}

func TestDecide_ModelFailureFallsBackByStrength(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	e := newTestEngine(mock)

	in := baseInput()
	in.Answer = "not sure"

	d, _, err := e.Decide(context.Background(), in)
	if err != nil {
		t.Fatalf("Decide must not hard-fail on model outage: %v", err)
	}
	if d.Action != ActionFollowUp {
		t.Fatalf("weak answer should fall back to follow_up, got %v", d.Action)
	}
	if d.Text != genericProbeText {
		t.Errorf("expected generic probe, got %q", d.Text)
	}
}

func TestDecide_MalformedModelOutputFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"action":"shrug","strength":"weak","text":""}`)},
	)
	e := newTestEngine(mock)

	in := baseInput()
	in.Answer = "I think maybe we could probably cache it somehow"

	d, _, err := e.Decide(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Action != ActionFollowUp {
		t.Errorf("weak answer with unparseable action should probe, got %v", d.Action)
	}
}

func TestDecide_SeedExhaustionGeneratesQuestion(t *testing.T) {
	mock := llm.NewMockProvider(
		decisionJSON("next_question", "strong", ""),
		questionJSON("What trade-offs does eventual consistency impose on your API design?"),
	)
	e := newTestEngine(mock)

	in := baseInput()
	in.SeedCursor = in.Source.Len() - 1

	d, _, err := e.Decide(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Action != ActionNextQuestion {
		t.Fatalf("exhaustion must generate, not end or fail, got %v", d.Action)
	}
	if d.Text != "What trade-offs does eventual consistency impose on your API design?" {
		t.Errorf("expected generated question, got %q", d.Text)
	}
}

func TestDecide_ExhaustionWithMinimumsMetEndsNaturally(t *testing.T) {
	mock := llm.NewMockProvider(decisionJSON("next_question", "strong", ""))
	e := newTestEngine(mock)

	in := baseInput()
	in.SeedCursor = in.Source.Len() - 1
	in.Elapsed = 15 * time.Minute
	in.QuestionsAsked = 7

	d, _, err := e.Decide(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Action != ActionEnd {
		t.Errorf("expected natural end, got %v (%q)", d.Action, d.Text)
	}
}

func TestDecide_NeverEndsBeforeMinimums(t *testing.T) {
	// Every model verdict, including repeated "end", must be held back
	// while either minimum is unmet.
	cases := []struct {
		name           string
		elapsed        time.Duration
		questionsAsked int
	}{
		{"duration unmet", 4 * time.Minute, 9},
		{"questions unmet", 20 * time.Minute, 2},
		{"both unmet", 1 * time.Minute, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mock := llm.NewMockProvider(
				decisionJSON("end", "strong", ""),
				questionJSON("next one"),
			)
			e := newTestEngine(mock)

			in := baseInput()
			in.Elapsed = tc.elapsed
			in.QuestionsAsked = tc.questionsAsked

			d, _, err := e.Decide(context.Background(), in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.Action == ActionEnd {
				t.Errorf("ended at elapsed=%v questions=%d", tc.elapsed, tc.questionsAsked)
			}
		})
	}
}

func TestDecide_RecordsScoredEntry(t *testing.T) {
	mock := llm.NewMockProvider(decisionJSON("follow_up", "moderate", "probe"))
	e := newTestEngine(mock)

	in := baseInput()
	_, out, err := e.Decide(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Entry.Question != in.LastQuestion || out.Entry.Answer != in.Answer {
		t.Errorf("outcome entry does not match the exchange: %+v", out.Entry)
	}
	if out.Entry.Scores.Overall < 0 || out.Entry.Scores.Overall > 5 {
		t.Errorf("scores out of range: %+v", out.Entry.Scores)
	}
}
