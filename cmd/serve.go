package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avinashj/socratic/internal/api"
	"github.com/avinashj/socratic/internal/gateway"
	"github.com/avinashj/socratic/internal/store"
	"github.com/avinashj/socratic/internal/tutor"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tutoring session HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

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
			return fmt.Errorf("no model configured: %w", err)
		}

		ps := st.ProgressStore()
		engine := tutor.NewEngine(gw, ps, st.EventRepo(), tutor.DefaultPolicy())

		fmt.Printf("Listening on %s\n", addr)
		return api.NewServer(engine, ps).Run(addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
}
