package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avinashj/socratic/internal/selfupdate"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("socratic", version)

		// Best effort: a release check failing must not break version.
		ctx, cancel := context.WithTimeout(cmd.Context(), 3*time.Second)
		defer cancel()

		checker := selfupdate.NewChecker(selfupdate.WithTimeout(3 * time.Second))
		result, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
		if err != nil {
			return
		}
		if result.UpdateAvailable {
			fmt.Printf("\nA newer version is available: %s\nRun 'socratic update' to install it.\n", result.LatestVersion)
		}
	},
}
