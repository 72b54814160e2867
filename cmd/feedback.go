package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/novexa/novexa/internal/candidate"
	"github.com/novexa/novexa/internal/llm"
	"github.com/novexa/novexa/internal/report"
	"github.com/novexa/novexa/internal/scoring"
	"github.com/novexa/novexa/internal/store"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Score a single question/answer pair and get coaching feedback",
	RunE: func(cmd *cobra.Command, args []string) error {
		question, _ := cmd.Flags().GetString("question")
		answer, _ := cmd.Flags().GetString("answer")
		role, _ := cmd.Flags().GetString("role")
		difficultyRaw, _ := cmd.Flags().GetString("difficulty")

		difficulty, err := candidate.ParseDifficulty(difficultyRaw)
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("model provider not configured: %w", err)
		}

		scorer := scoring.WithFallback(
			scoring.NewLLMScorer(provider, scoring.DefaultLLMScorerConfig()),
			scoring.HeuristicScorer{},
		)
		profile := candidate.Profile{Name: "Candidate", Role: role, Difficulty: difficulty}

		fb, err := report.GenerateFeedback(ctx, provider, scorer, profile, question, answer)
		if err != nil {
			return fmt.Errorf("generate feedback: %w", err)
		}

		fmt.Println(renderFeedback(question, fb))
		return nil
	},
}

func renderFeedback(question string, fb *report.Feedback) string {
	var out []string
	out = append(out, headingStyle.Render("Question"), question, "")
	out = append(out, headingStyle.Render("Scores (0-5)"))
	out = append(out, fmt.Sprintf("  clarity %d  structure %d  examples %d  technical %d  overall %d",
		fb.Scores.Clarity, fb.Scores.Structure, fb.Scores.Examples,
		fb.Scores.TechnicalAccuracy, fb.Scores.Overall))
	out = append(out, "", headingStyle.Render("Summary"), fb.Summary)

	if len(fb.Strengths) > 0 {
		out = append(out, "", headingStyle.Render("Strengths"))
		for _, s := range fb.Strengths {
			out = append(out, "  - "+s)
		}
	}
	if len(fb.Weaknesses) > 0 {
		out = append(out, "", headingStyle.Render("Weaknesses"))
		for _, w := range fb.Weaknesses {
			out = append(out, "  - "+w)
		}
	}
	if len(fb.Improvements) > 0 {
		out = append(out, "", headingStyle.Render("Improvements"))
		for i, step := range fb.Improvements {
			out = append(out, fmt.Sprintf("  %d. %s: %s", i+1, step.Title, step.Description))
			if step.Example != "" {
				out = append(out, dimStyle.Render("     e.g. "+step.Example))
			}
		}
	}

	return reportCardStyle.Render(strings.Join(out, "\n"))
}

func init() {
	feedbackCmd.Flags().StringP("question", "q", "", "Interview question that was asked")
	feedbackCmd.Flags().StringP("answer", "a", "", "Candidate answer to evaluate")
	feedbackCmd.Flags().String("role", "backend", "Role context for scoring")
	feedbackCmd.Flags().String("difficulty", "medium", "Difficulty: easy, medium, or hard")
	_ = feedbackCmd.MarkFlagRequired("question")
	_ = feedbackCmd.MarkFlagRequired("answer")
}
