package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avinashj/socratic/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete student data",
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")
		all, _ := cmd.Flags().GetBool("all")

		if student == "" && !all {
			return fmt.Errorf("specify --student <id> or --all")
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
		if all {
			if err := st.Reset(ctx); err != nil {
				return err
			}
			fmt.Println("All student data deleted.")
			return nil
		}

		n, err := st.ProgressStore().Delete(ctx, student)
		if err != nil {
			return err
		}
		if n == 0 {
			fmt.Printf("No record found for %s.\n", student)
			return nil
		}
		fmt.Printf("Deleted progress for %s.\n", student)
		return nil
	},
}

func init() {
	resetCmd.Flags().StringP("student", "s", "", "Student identifier to reset")
	resetCmd.Flags().Bool("all", false, "Delete every student record and all events")
}
