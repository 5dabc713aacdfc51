package cmd

import (
	"github.com/spf13/cobra"

	"github.com/guerrerocarlos/rescuetime-reporter/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the reporter MCP server",
	Long:  `Launch an MCP server that allows AI agents to generate reports and summaries via standard tools.`,
	// The tool handlers suppress the normal progress lines to avoid polluting
	// stdio, which carries the protocol.
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, creds, store)
	},
}
