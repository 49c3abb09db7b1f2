package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avinashj/socratic/internal/store"
)

var progressCmd = &cobra.Command{
	Use:   "progress <student>",
	Short: "Show a student's progress report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		student := args[0]

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		prog, err := st.ProgressStore().Load(cmd.Context(), student)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		if len(prog.Sessions) == 0 {
			fmt.Printf("No sessions recorded for %s.\n", student)
			return nil
		}

		fmt.Printf("Progress for %s\n", student)
		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("Sessions:         %d\n", len(prog.Sessions))
		fmt.Printf("Questions:        %d\n", prog.TotalQuestions)
		fmt.Printf("Correct:          %d\n", prog.TotalCorrect)
		fmt.Printf("Overall accuracy: %.1f%%\n", prog.OverallAccuracy())

		fmt.Println()
		fmt.Println("Topics")
		fmt.Println(strings.Repeat("─", 60))
		for _, topic := range prog.TopicsCovered {
			fmt.Printf("%-30s  %s\n", topic, prog.UnderstandingLevels[topic])
		}

		limit, _ := cmd.Flags().GetInt("limit")
		recent := prog.Sessions
		if limit > 0 && len(recent) > limit {
			recent = recent[len(recent)-limit:]
		}

		fmt.Println()
		fmt.Println("Recent sessions")
		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("%-19s  %-20s  %5s  %7s  %8s\n", "Date", "Topic", "Asked", "Correct", "Accuracy")
		for i := len(recent) - 1; i >= 0; i-- {
			s := recent[i]
			note := ""
			if s.EndedEarly {
				note = "  (ended early)"
			}
			fmt.Printf("%-19s  %-20s  %5d  %7d  %7.1f%%%s\n",
				s.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(s.Topic, 20),
				s.QuestionsAsked,
				s.CorrectAnswers,
				s.Accuracy,
				note,
			)
		}
		return nil
	},
}

// truncate shortens s to at most max runes, never splitting one.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func init() {
	progressCmd.Flags().IntP("limit", "n", 10, "Number of recent sessions to show")
}
