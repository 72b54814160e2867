package engine

import (
	"fmt"
	"strings"

	"github.com/novexa/novexa/internal/candidate"
	"github.com/novexa/novexa/internal/transcript"
)

const decisionSystemTemplate = `You are Novexa, a professional interviewer running a mock %s interview (branch: %s, specialization: %s, difficulty: %s). You have the interview so far and the candidate's latest answer. Decide whether the answer needs a follow-up, whether to proceed to the next question, or whether the interview has naturally run its course.`

const decisionInstruction = `Decide whether the candidate's latest answer needs a follow-up or we should proceed to the next question. Choose "end" only when the interview has clearly covered enough ground. When you choose "follow_up", text must be a single concise follow-up question; otherwise leave text empty.`

func decisionSystemPrompt(profile candidate.Profile) string {
	return fmt.Sprintf(decisionSystemTemplate,
		profile.Role, profile.Branch, profile.Specialization, profile.Difficulty)
}

// decisionUserPrompt renders the transcript context, latest exchange, and
// the deterministic strength estimate for the decision call.
func decisionUserPrompt(entries []transcript.Entry, lastQuestion, answer, strength string) string {
	var b strings.Builder

	if len(entries) > 0 {
		b.WriteString("Interview so far:\n")
		for _, e := range entries {
			fmt.Fprintf(&b, "Q: %s\nA: %s\n", e.Question, e.Answer)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Latest question: %s\n", lastQuestion)
	fmt.Fprintf(&b, "Latest answer: %s\n", answer)
	fmt.Fprintf(&b, "Heuristic strength estimate: %s\n\n", strength)
	b.WriteString(decisionInstruction)
	return b.String()
}
