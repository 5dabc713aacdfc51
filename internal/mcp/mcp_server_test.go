package mcp_test

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guerrerocarlos/rescuetime-reporter/internal/artifact"
	"github.com/guerrerocarlos/rescuetime-reporter/internal/contract"
	mcp_internal "github.com/guerrerocarlos/rescuetime-reporter/internal/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func testServer(t *testing.T, creds *contract.Credentials) *server.MCPServer {
	t.Helper()
	baseCfg := &contract.Config{
		OutputRoot:    t.TempDir(),
		TopActivities: contract.DefaultTopActivities,
		TopPerHour:    contract.DefaultTopPerHour,
		ContextWindow: contract.DefaultContextWindow,
	}
	store := artifact.NewStore(baseCfg.OutputRoot)
	return mcp_internal.NewMCPServer(baseCfg, creds, store)
}

func TestMCPServerToolRegistration(t *testing.T) {
	s := testServer(t, &contract.Credentials{})

	for _, name := range []string{
		"generate_report",
		"generate_commit_report",
		"generate_summary",
		"list_artifacts",
		"get_project_context",
	} {
		assert.NotNil(t, s.GetTool(name), "Tool %s should exist", name)
	}
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	creds := &contract.Credentials{
		RescueTimeKey: "rt-key",
		GitHubUser:    "octocat",
		GitHubToken:   "gh-token",
		OpenAIKey:     "sk-test",
	}
	s := testServer(t, creds)
	ctx := context.Background()

	t.Run("generate_report invalid date", func(t *testing.T) {
		tool := s.GetTool("generate_report")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "generate_report",
				Arguments: map[string]any{
					"date": "20-04-2025",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid date")
	})

	t.Run("generate_summary missing date", func(t *testing.T) {
		tool := s.GetTool("generate_summary")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "generate_summary",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid date")
	})
}

func TestMCPServerHandlers_MissingCredentials(t *testing.T) {
	s := testServer(t, &contract.Credentials{})
	ctx := context.Background()

	tests := []struct {
		tool string
		want string
	}{
		{"generate_report", "RESCUETIME_API_KEY is not set"},
		{"generate_commit_report", "GH_USERNAME is not set"},
		{"generate_summary", "OPENAI_API_KEY is not set"},
	}
	for _, tc := range tests {
		t.Run(tc.tool, func(t *testing.T) {
			tool := s.GetTool(tc.tool)
			require.NotNil(t, tool)

			req := mcp.CallToolRequest{
				Params: mcp.CallToolParams{Name: tc.tool, Arguments: map[string]any{}},
			}

			res, err := tool.Handler(ctx, req)
			require.NoError(t, err)
			assert.True(t, res.IsError)
			assert.Contains(t, res.Content[0].(mcp.TextContent).Text, tc.want)
		})
	}
}

func TestMCPServerHandlers_ArtifactTools(t *testing.T) {
	s := testServer(t, &contract.Credentials{})
	ctx := context.Background()

	t.Run("list_artifacts empty store", func(t *testing.T) {
		tool := s.GetTool("list_artifacts")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{Name: "list_artifacts", Arguments: map[string]any{}},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.False(t, res.IsError)
	})

	t.Run("get_project_context without context files", func(t *testing.T) {
		tool := s.GetTool("get_project_context")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{Name: "get_project_context", Arguments: map[string]any{}},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "No context files found")
	})
}
