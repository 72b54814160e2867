package scoring

import (
	"context"
	"regexp"
	"strings"

	"github.com/novexa/novexa/internal/candidate"
	"github.com/novexa/novexa/internal/transcript"
)

// Word-count thresholds separating weak, moderate, and strong answers.
const (
	veryShortWords = 8
	weakWords      = 20
	strongWords    = 60
)

// hedgeWords signal uncertainty and lower the clarity score.
var hedgeWords = []string{
	"maybe", "might", "sort of", "i think", "perhaps",
	"probably", "could be", "not sure",
}

// exampleMarkers suggest the answer grounds claims in concrete experience
// (STAR-style storytelling).
var exampleMarkers = []string{
	"for example", "for instance", "situation", "task",
	"action", "result", "when i", "in my last",
}

var wordRe = regexp.MustCompile(`\w+`)

// HeuristicScorer derives scores from surface features of the answer:
// length, hedging, and concrete-example markers. It never fails, which
// makes it the fallback when the model scorer is unavailable.
type HeuristicScorer struct{}

func (HeuristicScorer) Score(_ context.Context, _ candidate.Profile, _ string, answer string) (transcript.Scores, error) {
	words := len(wordRe.FindAllString(answer, -1))
	lower := strings.ToLower(answer)

	base := 3
	switch {
	case words < veryShortWords:
		base = 1
	case words < weakWords:
		base = 2
	case words >= strongWords:
		base = 4
	}

	clarity := base
	if containsAny(lower, hedgeWords) {
		clarity = max(clarity-1, 0)
	}

	examples := max(base-1, 1)
	if containsAny(lower, exampleMarkers) {
		examples = min(base+1, 5)
	}

	// Structure rewards multi-sentence answers.
	structure := base
	if strings.Count(answer, ".")+strings.Count(answer, "\n") < 2 {
		structure = max(base-1, 1)
	}

	// Without model judgment, technical accuracy can only track overall
	// answer substance.
	technical := base

	overall := (clarity + structure + examples + technical) / 4

	return transcript.Scores{
		Clarity:           clarity,
		Structure:         structure,
		Examples:          examples,
		TechnicalAccuracy: technical,
		Overall:           overall,
	}, nil
}

// Strength is the coarse answer-quality label used by the decision prompt.
type Strength string

const (
	StrengthWeak     Strength = "weak"
	StrengthModerate Strength = "moderate"
	StrengthStrong   Strength = "strong"
)

// Classify maps an answer to a coarse strength label using the same
// surface features as the heuristic scorer.
func Classify(answer string) Strength {
	words := len(wordRe.FindAllString(answer, -1))
	lower := strings.ToLower(answer)

	if words < veryShortWords || containsAny(lower, hedgeWords) {
		return StrengthWeak
	}
	if words < weakWords {
		return StrengthModerate
	}
	return StrengthStrong
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
