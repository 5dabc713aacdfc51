// Package cmd defines the command-line interface for rescuetime-reporter.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/guerrerocarlos/rescuetime-reporter/internal/contract"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(commitsCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("output", "o", ".", "Root directory for generated artifacts")
	rootCmd.PersistentFlags().String("prompt", contract.DefaultPromptPath, "Path to the system prompt template")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent per-repository fetches")
	rootCmd.PersistentFlags().Int("page-size", contract.DefaultPageSize, "Page size for paginated API calls")
	rootCmd.PersistentFlags().Int("page-delay-ms", contract.DefaultPageDelayMS, "Delay between successive page fetches in milliseconds")
	rootCmd.PersistentFlags().Int("top-activities", contract.DefaultTopActivities, "Number of activities to render in the report")
	rootCmd.PersistentFlags().Int("top-per-hour", contract.DefaultTopPerHour, "Number of window titles to render per hour")
	rootCmd.PersistentFlags().Int("context-window", contract.DefaultContextWindow, "Number of recent summaries fed into summarization")
	rootCmd.PersistentFlags().String("model", contract.DefaultModel, "Language model identifier for summarization")
	rootCmd.PersistentFlags().Float64("temperature", contract.DefaultTemperature, "Sampling temperature for summarization")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in console output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	// The date/month selectors are shared by the report and summary commands,
	// so they live on the root to keep a single viper binding.
	rootCmd.PersistentFlags().String("date", "", "Explicit target date (yyyy-MM-dd)")
	rootCmd.PersistentFlags().Bool("month", false, "Target every day of the current month (report only)")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
