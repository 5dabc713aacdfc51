package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/guerrerocarlos/rescuetime-reporter/core"
	"github.com/guerrerocarlos/rescuetime-reporter/internal/contract"
	"github.com/guerrerocarlos/rescuetime-reporter/internal/github"
)

// commitsCmd generates the current month's commit-history report.
var commitsCmd = &cobra.Command{
	Use:   "commits",
	Short: "Generate the current month's commit-history report.",
	Long: `Discover commits authored since the start of the current month and
render them, grouped by day and repository, under context/commits/. Discovery
tries the commit search API first and falls back to enumerating every
reachable repository only when search returns nothing.

Examples:
  # Generate this month's commit report
  rescuetime-reporter commits`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := creds.RequireGitHub(); err != nil {
			contract.LogFatal("Cannot generate commit report", err)
		}

		svc := github.NewClient(cfg, creds.GitHubUser, creds.GitHubToken)
		if err := core.ExecuteCommits(rootCtx, svc, store, time.Now()); err != nil {
			contract.LogFatal("Cannot generate commit report", err)
		}
	},
}
