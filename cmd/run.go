package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/derivio/internal/app"
	"github.com/abhisek/derivio/internal/catalog"
	"github.com/abhisek/derivio/internal/llm"
	"github.com/abhisek/derivio/internal/progress"
	"github.com/abhisek/derivio/internal/store"
	"github.com/abhisek/derivio/internal/tutor"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the tutor (same as running derivio with no arguments)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	tracker, err := progress.NewTracker(ctx, st.ProgressRepo(), st.EventRepo())
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	deps := app.Deps{
		Catalog: cat,
		Tracker: tracker,
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The AI tutor will be unavailable.")
	} else {
		deps.Tutor = tutor.NewService(provider, st.EventRepo(), tutor.DefaultConfig())
	}

	return app.Run(deps)
}
