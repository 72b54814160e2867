// Package engine decides what the interviewer does after each answer:
// probe deeper, move on, or end the interview. Model judgment steers the
// choice; deterministic guards bound it.
package engine

import "fmt"

// Action is what the interviewer does next.
type Action int

const (
	// ActionFollowUp probes deeper into the current question.
	ActionFollowUp Action = iota
	// ActionNextQuestion advances to a new question.
	ActionNextQuestion
	// ActionEnd terminates the interview.
	ActionEnd
)

// String returns the wire name of the action.
func (a Action) String() string {
	switch a {
	case ActionFollowUp:
		return "follow_up"
	case ActionNextQuestion:
		return "next_question"
	case ActionEnd:
		return "end"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// ParseAction maps a wire name back to an Action.
func ParseAction(s string) (Action, bool) {
	switch s {
	case "follow_up":
		return ActionFollowUp, true
	case "next_question":
		return ActionNextQuestion, true
	case "end":
		return ActionEnd, true
	default:
		return 0, false
	}
}

// Decision is the engine's verdict for one answer. Text is what the
// interviewer says next: the follow-up or next question, or the closing
// line when Action is ActionEnd.
type Decision struct {
	Action Action
	Text   string
}
