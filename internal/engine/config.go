package engine

import "time"

// Config holds the interview policy knobs.
type Config struct {
	// MinDuration is the minimum elapsed interview time before the
	// engine may end the session.
	MinDuration time.Duration

	// MinQuestions is the minimum number of main questions asked before
	// the engine may end the session.
	MinQuestions int

	// MaxFollowUps caps consecutive follow-ups on one question before
	// advancement is forced.
	MaxFollowUps int

	// MaxTokens and Temperature apply to the decision model call.
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard interview policy.
func DefaultConfig() Config {
	return Config{
		MinDuration:  10 * time.Minute,
		MinQuestions: 5,
		MaxFollowUps: 3,
		MaxTokens:    300,
		Temperature:  0.4,
	}
}
