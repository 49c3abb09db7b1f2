package cmd

import (
	"github.com/spf13/cobra"

	"github.com/avinashj/socratic/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "socratic",
	Short: "AI tutor that teaches by asking",
	Long:  "Socratic is a terminal tutor: it asks questions on a topic, evaluates your answers, explains what you missed, and adapts the difficulty as you go.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SOCRATIC_DB env var)")

	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then SOCRATIC_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
