// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/guerrerocarlos/rescuetime-reporter/internal/artifact"
	"github.com/guerrerocarlos/rescuetime-reporter/internal/contract"
)

// NewMCPServer initializes and configures the reporter MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, creds *contract.Credentials, store *artifact.Store) *server.MCPServer {
	s := server.NewMCPServer(
		"RescueTime Reporter Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		creds:   creds,
		store:   store,
	}

	// --- 1. Tool: generate_report ---
	s.AddTool(mcp.NewTool("generate_report",
		mcp.WithDescription("Generate the daily time-tracking report for a date, yesterday, or the whole current month."),
		mcp.WithString("date", mcp.Description("Target date (yyyy-MM-dd). Defaults to yesterday.")),
		mcp.WithBoolean("month", mcp.Description("Generate a report for every day of the current month.")),
	), h.handleGenerateReport)

	// --- 2. Tool: generate_commit_report ---
	s.AddTool(mcp.NewTool("generate_commit_report",
		mcp.WithDescription("Generate the current month's commit-history report."),
	), h.handleGenerateCommitReport)

	// --- 3. Tool: generate_summary ---
	s.AddTool(mcp.NewTool("generate_summary",
		mcp.WithDescription("Generate the AI narrative summary for a date that already has a report."),
		mcp.WithString("date", mcp.Description("Target date (yyyy-MM-dd)."), mcp.Required()),
	), h.handleGenerateSummary)

	// --- 4. Tool: list_artifacts ---
	s.AddTool(mcp.NewTool("list_artifacts",
		mcp.WithDescription("List the generated artifacts per category with date ranges."),
	), h.handleListArtifacts)

	// --- 5. Tool: get_project_context ---
	s.AddTool(mcp.NewTool("get_project_context",
		mcp.WithDescription("Concatenate the free-text context files under the context root."),
	), h.handleGetProjectContext)

	return s
}

// StartMCPServer starts the reporter MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, creds *contract.Credentials, store *artifact.Store) error {
	s := NewMCPServer(baseCfg, creds, store)
	return server.ServeStdio(s)
}
