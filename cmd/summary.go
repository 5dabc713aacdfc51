package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/guerrerocarlos/rescuetime-reporter/core"
	"github.com/guerrerocarlos/rescuetime-reporter/internal/contract"
	"github.com/guerrerocarlos/rescuetime-reporter/internal/openai"
)

// summaryCmd generates the AI narrative summary for one date.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Generate the AI narrative summary for a date.",
	Long: `Compose the day's activity report, its commit history and the most
recent prior summaries into a prompt, send it to the language model and
persist the response under summaries/. The date must already have a report;
a failed model call still writes a sentinel file so later days find context.

Examples:
  # Summarize a specific day
  rescuetime-reporter summary --date 2025-04-20`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if cfg.Date == "" {
			contract.LogFatal("Cannot generate summary", errors.New("--date is required"))
		}
		if err := creds.RequireOpenAI(); err != nil {
			contract.LogFatal("Cannot generate summary", err)
		}

		chat := openai.NewClient(cfg, creds.OpenAIKey)
		if err := core.ExecuteSummary(rootCtx, cfg, chat, store, cfg.Date); err != nil {
			contract.LogFatal("Cannot generate summary", err)
		}
	},
}
