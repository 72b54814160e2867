package scoring

import (
	"context"
	"strings"
	"testing"

	"github.com/novexa/novexa/internal/candidate"
)

var testProfile = candidate.Profile{
	Name: "Ada", Role: "backend", Difficulty: candidate.DifficultyMedium,
}

func TestHeuristic_ShortAnswerScoresLow(t *testing.T) {
	scores, err := HeuristicScorer{}.Score(context.Background(), testProfile, "q", "I don't know.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scores.Overall > 2 {
		t.Errorf("expected low overall for a non-answer, got %d", scores.Overall)
	}
}

func TestHeuristic_DetailedAnswerScoresHigher(t *testing.T) {
	answer := strings.Repeat("We sharded the orders table by customer id and moved reads to replicas. ", 8) +
		"For example, when I migrated the billing service, the situation required zero downtime. " +
		"The result was a p99 drop from 900ms to 120ms."
	scores, err := HeuristicScorer{}.Score(context.Background(), testProfile, "q", answer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scores.Overall < 3 {
		t.Errorf("expected overall >= 3 for a detailed answer, got %d", scores.Overall)
	}
	if scores.Examples < 3 {
		t.Errorf("expected example markers to lift examples score, got %d", scores.Examples)
	}
}

func TestHeuristic_HedgingLowersClarity(t *testing.T) {
	plain := "We used a message queue to decouple the services and retried failed deliveries with backoff until they succeeded."
	hedged := "We maybe used a message queue, I think, to sort of decouple the services and probably retried failed deliveries."

	plainScores, _ := HeuristicScorer{}.Score(context.Background(), testProfile, "q", plain)
	hedgedScores, _ := HeuristicScorer{}.Score(context.Background(), testProfile, "q", hedged)

	if hedgedScores.Clarity >= plainScores.Clarity {
		t.Errorf("hedged clarity %d should be below plain clarity %d",
			hedgedScores.Clarity, plainScores.Clarity)
	}
}

func TestHeuristic_ScoresWithinRange(t *testing.T) {
	answers := []string{
		"",
		"yes",
		"I think maybe probably not sure",
		strings.Repeat("a detailed and well structured answer with many words. ", 20),
	}
	for _, a := range answers {
		scores, err := HeuristicScorer{}.Score(context.Background(), testProfile, "q", a)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for name, v := range map[string]int{
			"clarity":            scores.Clarity,
			"structure":          scores.Structure,
			"examples":           scores.Examples,
			"technical_accuracy": scores.TechnicalAccuracy,
			"overall":            scores.Overall,
		} {
			if v < 0 || v > 5 {
				t.Errorf("answer %q: %s = %d outside 0-5", a, name, v)
			}
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		answer string
		want   Strength
	}{
		{"no", StrengthWeak},
		{"I think it might be a cache issue maybe", StrengthWeak},
		{"We use Redis for caching and Postgres for the rest", StrengthModerate},
		{"For example, when I led the migration, the situation demanded careful planning: we split traffic, monitored error rates, and rolled back twice before the final cutover succeeded without customer impact", StrengthStrong},
	}
	for _, tt := range tests {
		if got := Classify(tt.answer); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.answer, got, tt.want)
		}
	}
}
