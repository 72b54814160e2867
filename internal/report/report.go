// Package report turns a finished interview transcript into the final
// coaching report. The numbers are always computed here; the model only
// contributes the qualitative sections.
package report

import (
	"github.com/novexa/novexa/internal/transcript"
)

// QuestionScore is one transcript exchange with its rubric scores.
type QuestionScore struct {
	Question string            `json:"question"`
	Answer   string            `json:"answer"`
	Scores   transcript.Scores `json:"scores"`
}

// ImprovementStep is one actionable coaching item.
type ImprovementStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

// Practice holds follow-up material for the candidate.
type Practice struct {
	Prompts   []string `json:"prompts"`
	Resources []string `json:"resources"`
}

// Report is the full end-of-interview report.
type Report struct {
	PerQuestion     []QuestionScore          `json:"per_question"`
	AvgScores       transcript.AverageScores `json:"avg_scores"`
	OverallFeedback string                   `json:"overall_feedback"`
	Strengths       []string                 `json:"strengths"`
	Weaknesses      []string                 `json:"weaknesses"`
	ImprovementPlan []ImprovementStep        `json:"improvement_plan"`
	Practice        Practice                 `json:"practice"`
}

const feedbackUnavailable = "Detailed feedback is unavailable for this session."

// fallbackReport builds the deterministic minimal report used when the
// model cannot produce a valid one: scores and averages from the
// transcript, weaknesses from the dimensions averaging below 3, and the
// qualitative sections marked unavailable.
func fallbackReport(perQuestion []QuestionScore, avg transcript.AverageScores) *Report {
	var weaknesses []string
	for _, dim := range []struct {
		name string
		avg  float64
	}{
		{"clarity", avg.Clarity},
		{"structure", avg.Structure},
		{"examples", avg.Examples},
		{"technical accuracy", avg.TechnicalAccuracy},
	} {
		if dim.avg < 3 {
			weaknesses = append(weaknesses, dim.name)
		}
	}

	return &Report{
		PerQuestion:     perQuestion,
		AvgScores:       avg,
		OverallFeedback: feedbackUnavailable,
		Weaknesses:      weaknesses,
	}
}
