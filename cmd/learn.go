package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avinashj/socratic/internal/app"
	"github.com/avinashj/socratic/internal/gateway"
	"github.com/avinashj/socratic/internal/store"
	"github.com/avinashj/socratic/internal/tutor"
)

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Start an interactive tutoring session",
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")
		topic, _ := cmd.Flags().GetString("topic")
		levelFlag, _ := cmd.Flags().GetString("level")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		gw, err := gateway.NewGatewayFromEnv(cmd.Context(), st.EventRepo())
		if err != nil {
			return fmt.Errorf("no model configured: %w\n\nSet SOCRATIC_LLM_PROVIDER and its API key, or export one of ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY, OPENROUTER_API_KEY", err)
		}

		engine := tutor.NewEngine(gw, st.ProgressStore(), st.EventRepo(), tutor.DefaultPolicy())
		return app.Run(engine, student, topic, tutor.ParseLevel(levelFlag))
	},
}

func init() {
	learnCmd.Flags().StringP("student", "s", "", "Student identifier")
	learnCmd.Flags().StringP("topic", "t", "", "Topic to study")
	learnCmd.Flags().StringP("level", "l", "beginner", "Starting level (beginner, intermediate, advanced)")
	_ = learnCmd.MarkFlagRequired("student")
	_ = learnCmd.MarkFlagRequired("topic")
}
