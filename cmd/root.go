package cmd

import (
	"github.com/novexa/novexa/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "novexa",
	Short: "AI mock interviewer",
	Long:  "Novexa — terminal mock interviews with per-answer scoring and a coaching report at the end.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInterview(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides NOVEXA_DB env var)")

	rootCmd.AddCommand(interviewCmd)
	rootCmd.AddCommand(rolesCmd)
	rootCmd.AddCommand(feedbackCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then NOVEXA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
