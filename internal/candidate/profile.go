// Package candidate defines the interviewee profile shared by the
// question source, decision engine, and report synthesizer.
package candidate

import (
	"errors"
	"fmt"
	"strings"
)

// Difficulty is the requested interview difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty normalizes and validates a difficulty string.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	case "":
		return DifficultyMedium, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
}

// Profile describes the candidate and the interview they asked for.
// Branch and Specialization are optional refinements of Role.
type Profile struct {
	Name           string
	Role           string
	Branch         string
	Specialization string
	Difficulty     Difficulty
}

// Validate checks the required fields. Difficulty must already be one of
// the recognized levels (use ParseDifficulty on raw input).
func (p Profile) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if strings.TrimSpace(p.Role) == "" {
		errs = append(errs, errors.New("role is required"))
	}
	switch p.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		errs = append(errs, fmt.Errorf("unknown difficulty %q", p.Difficulty))
	}
	return errors.Join(errs...)
}
