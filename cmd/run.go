package cmd

import (
	"fmt"
	"os"

	"github.com/clinsaude/clin/internal/app"
	"github.com/clinsaude/clin/internal/orientation"
	"github.com/clinsaude/clin/internal/store"
	"github.com/clinsaude/clin/internal/triage"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, startTriage bool) error {
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

	opts := app.Options{
		TriageRepo:  st.TriageRepo(),
		Gateway:     st.Gateway(),
		Identity:    triage.EnvIdentity{},
		StartTriage: startTriage,
	}

	provider, err := orientation.NewProviderFromEnv(ctx, st.LLMEventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Wellness tips will be unavailable.")
	} else if provider != nil {
		opts.Tips = orientation.NewTipsService(provider)
	}

	return app.Run(opts)
}
