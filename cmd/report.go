package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/guerrerocarlos/rescuetime-reporter/core"
	"github.com/guerrerocarlos/rescuetime-reporter/internal/contract"
	"github.com/guerrerocarlos/rescuetime-reporter/internal/rescuetime"
)

// reportCmd generates the per-date time-tracking reports.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate daily time-tracking reports.",
	Long: `Fetch one or more days of tracked activity and render each day as a
markdown report under reports/. Dates that already have a report are skipped,
so re-runs are cheap and only fill in the gaps.

Examples:
  # Generate yesterday's report
  rescuetime-reporter report

  # Generate a report for a specific date
  rescuetime-reporter report --date 2025-04-20

  # Fill in every missing day of the current month
  rescuetime-reporter report --month`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := creds.RequireRescueTime(); err != nil {
			contract.LogFatal("Cannot generate reports", err)
		}

		dates := contract.DatesFor(cfg.Date, cfg.Month, time.Now())
		svc := rescuetime.NewClient(cfg.RescueTimeBaseURL, creds.RescueTimeKey)
		if err := core.ExecuteReports(rootCtx, cfg, svc, store, dates); err != nil {
			contract.LogFatal("Cannot generate reports", err)
		}
	},
}
