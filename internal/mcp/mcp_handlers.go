package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/guerrerocarlos/rescuetime-reporter/core"
	"github.com/guerrerocarlos/rescuetime-reporter/internal/artifact"
	"github.com/guerrerocarlos/rescuetime-reporter/internal/contract"
	"github.com/guerrerocarlos/rescuetime-reporter/internal/github"
	"github.com/guerrerocarlos/rescuetime-reporter/internal/openai"
	"github.com/guerrerocarlos/rescuetime-reporter/internal/rescuetime"
	"github.com/guerrerocarlos/rescuetime-reporter/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	creds   *contract.Credentials
	store   *artifact.Store
}

func (h *toolHandler) handleGenerateReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.creds.RequireRescueTime(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cfg := h.baseCfg.Clone()
	cfg.Date = request.GetString("date", "")
	cfg.Month = request.GetBool("month", false)
	if cfg.Date != "" {
		if _, err := time.Parse(schema.ISODate, cfg.Date); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid date %q", cfg.Date)), nil
		}
	}

	dates := contract.DatesFor(cfg.Date, cfg.Month, time.Now())
	svc := rescuetime.NewClient(cfg.RescueTimeBaseURL, h.creds.RescueTimeKey)
	if err := core.ExecuteReports(core.WithQuietConsole(ctx), cfg, svc, h.store, dates); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("report generation failed: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Generated reports for %d date(s)", len(dates))), nil
}

func (h *toolHandler) handleGenerateCommitReport(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.creds.RequireGitHub(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	svc := github.NewClient(h.baseCfg, h.creds.GitHubUser, h.creds.GitHubToken)
	if err := core.ExecuteCommits(core.WithQuietConsole(ctx), svc, h.store, time.Now()); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("commit report generation failed: %v", err)), nil
	}
	return mcp.NewToolResultText("Commit report generated"), nil
}

func (h *toolHandler) handleGenerateSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.creds.RequireOpenAI(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	date := request.GetString("date", "")
	if _, err := time.Parse(schema.ISODate, date); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid date %q", date)), nil
	}

	chat := openai.NewClient(h.baseCfg, h.creds.OpenAIKey)
	if err := core.ExecuteSummary(core.WithQuietConsole(ctx), h.baseCfg, chat, h.store, date); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("summary generation failed: %v", err)), nil
	}
	return mcp.NewToolResultText("Summary generated for " + date), nil
}

func (h *toolHandler) handleListArtifacts(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	statuses := h.store.Status()
	jsonData, _ := json.MarshalIndent(statuses, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetProjectContext(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content := h.store.CollectContext()
	if content == "" {
		return mcp.NewToolResultText("No context files found"), nil
	}
	return mcp.NewToolResultText(content), nil
}
