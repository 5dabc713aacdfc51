package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/guerrerocarlos/rescuetime-reporter/internal/contract"
	"github.com/guerrerocarlos/rescuetime-reporter/internal/render"
)

// statusCmd prints the artifact inventory per category.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the generated artifacts per category.",
	Long: `List how many artifacts each category holds and the date range they
cover, without touching any remote API.

Examples:
  # Inspect the output directory
  rescuetime-reporter status --output ~/daylog`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := render.StatusTable(os.Stdout, cfg, store.Status()); err != nil {
			contract.LogFatal("Cannot render status", err)
		}
	},
}
