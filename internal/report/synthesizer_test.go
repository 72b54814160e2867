package report

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/novexa/novexa/internal/candidate"
	"github.com/novexa/novexa/internal/llm"
	"github.com/novexa/novexa/internal/scoring"
	"github.com/novexa/novexa/internal/transcript"
)

var reportProfile = candidate.Profile{
	Name: "Ada", Role: "backend", Difficulty: candidate.DifficultyMedium,
}

func sampleEntries() []transcript.Entry {
	return []transcript.Entry{
		{
			Question: "How would you design a rate limiter?",
			Answer:   "Token bucket per client key.",
			Scores:   transcript.Scores{Clarity: 4, Structure: 3, Examples: 2, TechnicalAccuracy: 4, Overall: 3},
		},
		{
			Question: "How do you keep a cache consistent?",
			Answer:   "Write-through with TTLs as a backstop.",
			Scores:   transcript.Scores{Clarity: 2, Structure: 3, Examples: 2, TechnicalAccuracy: 4, Overall: 3},
		},
	}
}

const validReportJSON = `{
	"overall_feedback": "Solid technical grounding, needs more concrete examples.",
	"strengths": ["clear mental models", "good trade-off awareness"],
	"weaknesses": ["few concrete examples"],
	"improvement_plan": [
		{"title": "Use STAR", "description": "Anchor answers in a real situation.", "example": "When our cache..."}
	],
	"practice_prompts": ["Design a URL shortener", "Debug a memory leak", "Scale a websocket service"],
	"resource_links": ["https://example.com/system-design", "https://example.com/star-method"]
}`

func TestSynthesize_ValidModelResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validReportJSON)})
	s := NewSynthesizer(mock, DefaultSynthesizerConfig())

	entries := sampleEntries()
	r, err := s.Synthesize(context.Background(), reportProfile, entries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(r.PerQuestion) != len(entries) {
		t.Errorf("expected %d per-question entries, got %d", len(entries), len(r.PerQuestion))
	}
	if r.OverallFeedback != "Solid technical grounding, needs more concrete examples." {
		t.Errorf("unexpected feedback %q", r.OverallFeedback)
	}
	if len(r.Practice.Prompts) != 3 || len(r.Practice.Resources) != 2 {
		t.Errorf("practice sections not carried over: %+v", r.Practice)
	}

	want := transcript.Averages(entries)
	if r.AvgScores != want {
		t.Errorf("averages must be computed locally: got %+v want %+v", r.AvgScores, want)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected a single model call, got %d", mock.CallCount())
	}
}

func TestSynthesize_AveragesNeverFromModel(t *testing.T) {
	// A response that tries to smuggle in its own numbers still parses;
	// the local computation must win regardless.
	doctored := `{
		"overall_feedback": "fine",
		"strengths": [], "weaknesses": [], "improvement_plan": [],
		"practice_prompts": [], "resource_links": []
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(doctored)})
	s := NewSynthesizer(mock, DefaultSynthesizerConfig())

	entries := sampleEntries()
	r, err := s.Synthesize(context.Background(), reportProfile, entries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.AvgScores != transcript.Averages(entries) {
		t.Errorf("averages drifted from local computation: %+v", r.AvgScores)
	}
}

func TestSynthesize_RetriesWithCorrectiveThenSucceeds(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrInvalidResponse{}},
		llm.MockResponse{Content: json.RawMessage(validReportJSON)},
	)
	s := NewSynthesizer(mock, DefaultSynthesizerConfig())

	r, err := s.Synthesize(context.Background(), reportProfile, sampleEntries())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.OverallFeedback == feedbackUnavailable {
		t.Error("second attempt succeeded, fallback should not be used")
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}

	last := mock.LastCall()
	lastMsg := last.Messages[len(last.Messages)-1]
	if lastMsg.Content != correctiveInstruction {
		t.Errorf("retry should append the corrective instruction, got %q", lastMsg.Content)
	}
}

func TestSynthesize_FallsBackAfterMaxAttempts(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrInvalidResponse{}},
		llm.MockResponse{Err: &llm.ErrInvalidResponse{}},
		llm.MockResponse{Err: &llm.ErrInvalidResponse{}},
	)
	s := NewSynthesizer(mock, DefaultSynthesizerConfig())

	entries := sampleEntries()
	r, err := s.Synthesize(context.Background(), reportProfile, entries)
	if err != nil {
		t.Fatalf("fallback must not surface an error: %v", err)
	}
	if mock.CallCount() != maxAttempts {
		t.Errorf("expected %d attempts, got %d", maxAttempts, mock.CallCount())
	}
	if r.OverallFeedback != feedbackUnavailable {
		t.Errorf("expected the fallback report, got %q", r.OverallFeedback)
	}
	if len(r.PerQuestion) != len(entries) {
		t.Errorf("fallback must keep the transcript, got %d entries", len(r.PerQuestion))
	}
	if r.AvgScores != transcript.Averages(entries) {
		t.Errorf("fallback averages wrong: %+v", r.AvgScores)
	}
}

func TestSynthesize_FallbackFlagsWeakDimensions(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue: every call fails
	s := NewSynthesizer(mock, DefaultSynthesizerConfig())

	entries := []transcript.Entry{
		{
			Question: "q", Answer: "a",
			Scores: transcript.Scores{Clarity: 1, Structure: 4, Examples: 2, TechnicalAccuracy: 4, Overall: 2},
		},
	}
	r, err := s.Synthesize(context.Background(), reportProfile, entries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := map[string]bool{}
	for _, w := range r.Weaknesses {
		found[w] = true
	}
	if !found["clarity"] || !found["examples"] {
		t.Errorf("low dimensions should be flagged, got %v", r.Weaknesses)
	}
	if found["structure"] || found["technical accuracy"] {
		t.Errorf("healthy dimensions should not be flagged, got %v", r.Weaknesses)
	}
}

func TestSynthesize_EmptyTranscript(t *testing.T) {
	mock := llm.NewMockProvider()
	s := NewSynthesizer(mock, DefaultSynthesizerConfig())

	r, err := s.Synthesize(context.Background(), reportProfile, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.PerQuestion) != 0 {
		t.Errorf("expected empty per-question list, got %d", len(r.PerQuestion))
	}
	if (r.AvgScores != transcript.AverageScores{}) {
		t.Errorf("expected zero averages, got %+v", r.AvgScores)
	}
}

func TestGenerateFeedback(t *testing.T) {
	fbJSON := `{
		"summary": "Concise but thin on detail.",
		"strengths": ["direct", "technically sound"],
		"weaknesses": ["no example", "no trade-offs"],
		"improvements": [
			{"title": "Add an example", "description": "Ground the claim.", "example": "In my last role..."}
		]
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(fbJSON)})

	fb, err := GenerateFeedback(context.Background(), mock, scoring.HeuristicScorer{},
		reportProfile, "How do you version an API?", "Path versioning with deprecation headers.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fb.Summary != "Concise but thin on detail." {
		t.Errorf("unexpected summary %q", fb.Summary)
	}
	if fb.Scores.Overall < 0 || fb.Scores.Overall > 5 {
		t.Errorf("scores out of range: %+v", fb.Scores)
	}
	if len(fb.Improvements) != 1 || fb.Improvements[0].Title != "Add an example" {
		t.Errorf("improvements not parsed: %+v", fb.Improvements)
	}
}

func TestGenerateFeedback_ModelFailureSurfaces(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})

	_, err := GenerateFeedback(context.Background(), mock, scoring.HeuristicScorer{},
		reportProfile, "q", "a")
	if err == nil {
		t.Fatal("expected error when the model is unavailable")
	}
}
