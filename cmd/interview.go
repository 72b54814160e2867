package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/novexa/novexa/internal/candidate"
	"github.com/novexa/novexa/internal/engine"
	"github.com/novexa/novexa/internal/llm"
	"github.com/novexa/novexa/internal/questions"
	"github.com/novexa/novexa/internal/report"
	"github.com/novexa/novexa/internal/scoring"
	"github.com/novexa/novexa/internal/session"
	"github.com/novexa/novexa/internal/store"
	"github.com/novexa/novexa/internal/tts"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run a mock interview",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInterview(cmd)
	},
}

func init() {
	interviewCmd.Flags().String("name", "", "Candidate name (prompted if omitted)")
	interviewCmd.Flags().String("role", "", "Interview role, e.g. backend, engineer, sales (prompted if omitted)")
	interviewCmd.Flags().String("branch", "", "Role branch, e.g. software, electrical")
	interviewCmd.Flags().String("specialization", "", "Optional specialization within the role")
	interviewCmd.Flags().String("difficulty", "medium", "Difficulty: easy, medium, or hard")
	interviewCmd.Flags().Bool("speak", false, "Synthesize interviewer speech (requires NOVEXA_TTS_ENDPOINT)")
}

// runInterview opens the store, wires the interview engine, and drives
// the question/answer loop on the terminal.
func runInterview(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	eventRepo := st.EventRepo()

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		return fmt.Errorf("model provider not configured: %w", err)
	}

	catalog, err := questions.LoadCatalog()
	if err != nil {
		return fmt.Errorf("load role catalogs: %w", err)
	}

	generator := questions.NewGenerator(provider, questions.DefaultGeneratorConfig())
	scorer := scoring.WithFallback(
		scoring.NewLLMScorer(provider, scoring.DefaultLLMScorerConfig()),
		scoring.HeuristicScorer{},
	)
	eng := engine.New(provider, scorer, generator, engine.DefaultConfig())
	synth := report.NewSynthesizer(provider, report.DefaultSynthesizerConfig())

	mgr := session.NewManager(catalog, eng, synth, eventRepo, session.ConfigFromEnv())
	defer mgr.Close()

	reader := bufio.NewScanner(cmd.InOrStdin())
	profile, err := profileFromFlags(cmd, catalog, reader)
	if err != nil {
		return err
	}

	speaker := newSpeaker(cmd)

	id, first, err := mgr.Create(ctx, profile)
	if err != nil {
		return fmt.Errorf("start interview: %w", err)
	}

	fmt.Println()
	say(ctx, speaker, first)
	fmt.Println(dimStyle.Render("Answer each question. Type 'quit' to end the interview early."))

	for {
		fmt.Print(promptStyle.Render("> "))
		if !reader.Scan() {
			break
		}
		answer := strings.TrimSpace(reader.Text())
		if answer == "" {
			continue
		}
		if strings.EqualFold(answer, "quit") {
			break
		}

		decision, err := mgr.Submit(ctx, id, answer)
		if errors.Is(err, session.ErrSessionEnded) {
			break
		}
		if err != nil {
			return fmt.Errorf("submit answer: %w", err)
		}

		fmt.Println()
		say(ctx, speaker, decision.Text)
		if decision.Action == engine.ActionEnd {
			break
		}
	}

	r, err := mgr.End(ctx, id)
	if err != nil {
		return fmt.Errorf("end interview: %w", err)
	}

	fmt.Println()
	fmt.Println(renderReport(r))
	return nil
}

// profileFromFlags assembles the candidate profile, prompting on the
// terminal for anything required but not passed as a flag.
func profileFromFlags(cmd *cobra.Command, catalog *questions.Catalog, reader *bufio.Scanner) (candidate.Profile, error) {
	name, _ := cmd.Flags().GetString("name")
	role, _ := cmd.Flags().GetString("role")
	branch, _ := cmd.Flags().GetString("branch")
	specialization, _ := cmd.Flags().GetString("specialization")
	difficultyRaw, _ := cmd.Flags().GetString("difficulty")

	if name == "" {
		name = promptLine(reader, "Your name: ")
	}
	if role == "" {
		fmt.Println(dimStyle.Render("Available roles: " + strings.Join(catalog.Roles(), ", ")))
		role = promptLine(reader, "Role: ")
	}

	difficulty, err := candidate.ParseDifficulty(difficultyRaw)
	if err != nil {
		return candidate.Profile{}, err
	}

	return candidate.Profile{
		Name:           name,
		Role:           role,
		Branch:         branch,
		Specialization: specialization,
		Difficulty:     difficulty,
	}, nil
}

func promptLine(reader *bufio.Scanner, label string) string {
	fmt.Print(promptStyle.Render(label))
	if !reader.Scan() {
		return ""
	}
	return strings.TrimSpace(reader.Text())
}

// speaker synthesizes interviewer lines to audio files when enabled.
type speaker struct {
	synth   tts.Synthesizer
	enabled bool
	seq     int
	dir     string
}

func newSpeaker(cmd *cobra.Command) *speaker {
	speak, _ := cmd.Flags().GetBool("speak")
	cfg := tts.ConfigFromEnv()
	if !speak || cfg.Endpoint == "" {
		return &speaker{synth: tts.NopSynthesizer{}}
	}
	return &speaker{
		synth:   tts.NewClient(cfg),
		enabled: true,
		dir:     os.TempDir(),
	}
}

// say prints the interviewer line and, when speech is enabled, writes
// the synthesized audio next to it. Synthesis failures are reported and
// skipped; the interview continues on text.
func say(ctx context.Context, sp *speaker, text string) {
	fmt.Println(interviewerStyle.Render("Novexa: ") + text)
	if !sp.enabled {
		return
	}

	audio, err := sp.synth.Synthesize(ctx, text)
	if err != nil {
		fmt.Println(errorStyle.Render("(speech unavailable: " + err.Error() + ")"))
		return
	}

	sp.seq++
	path := filepath.Join(sp.dir, fmt.Sprintf("novexa-%d.mp3", sp.seq))
	if err := os.WriteFile(path, audio, 0o644); err != nil {
		fmt.Println(errorStyle.Render("(could not save audio: " + err.Error() + ")"))
		return
	}
	fmt.Println(dimStyle.Render("audio: " + path))
}

// renderReport formats the final report for the terminal.
func renderReport(r *report.Report) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("Interview Report"))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Average scores (0-5)\n")
	fmt.Fprintf(&b, "  clarity             %.2f\n", r.AvgScores.Clarity)
	fmt.Fprintf(&b, "  structure           %.2f\n", r.AvgScores.Structure)
	fmt.Fprintf(&b, "  examples            %.2f\n", r.AvgScores.Examples)
	fmt.Fprintf(&b, "  technical accuracy  %.2f\n", r.AvgScores.TechnicalAccuracy)
	fmt.Fprintf(&b, "  overall             %.2f\n", r.AvgScores.Overall)
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("Feedback"))
	b.WriteString("\n" + r.OverallFeedback + "\n")

	writeList(&b, "Strengths", r.Strengths)
	writeList(&b, "Weaknesses", r.Weaknesses)

	if len(r.ImprovementPlan) > 0 {
		b.WriteString("\n" + headingStyle.Render("Improvement plan") + "\n")
		for i, step := range r.ImprovementPlan {
			fmt.Fprintf(&b, "%d. %s — %s\n", i+1, step.Title, step.Description)
			if step.Example != "" {
				b.WriteString(dimStyle.Render("   e.g. "+step.Example) + "\n")
			}
		}
	}

	writeList(&b, "Practice prompts", r.Practice.Prompts)
	writeList(&b, "Resources", r.Practice.Resources)

	if len(r.PerQuestion) > 0 {
		b.WriteString("\n" + headingStyle.Render("Per-question scores") + "\n")
		for i, q := range r.PerQuestion {
			fmt.Fprintf(&b, "%d. %s\n", i+1, q.Question)
			fmt.Fprintf(&b, "   clarity %d  structure %d  examples %d  technical %d  overall %d\n",
				q.Scores.Clarity, q.Scores.Structure, q.Scores.Examples,
				q.Scores.TechnicalAccuracy, q.Scores.Overall)
		}
	}

	return reportCardStyle.Render(b.String())
}

func writeList(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n" + headingStyle.Render(heading) + "\n")
	for _, item := range items {
		b.WriteString("  - " + item + "\n")
	}
}
