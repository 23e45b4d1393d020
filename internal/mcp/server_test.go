package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/florafind/florasearch/internal/search"
	"github.com/florafind/florasearch/pkg/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	server, err := NewServer(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = server.annotator.Close()
		_ = server.store.Close()
	})
	return server
}

func toolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestServerInitialization(t *testing.T) {
	t.Run("custom path creates seeded catalog", func(t *testing.T) {
		server := newTestServer(t)

		assert.NotNil(t, server.mcp)
		assert.NotNil(t, server.search)

		count, err := server.store.CountPlants(context.Background())
		require.NoError(t, err)
		assert.Greater(t, count, 0, "catalog should be seeded on first run")
	})

	t.Run("existing catalog is not re-seeded", func(t *testing.T) {
		dir := t.TempDir()

		first, err := NewServer(dir)
		require.NoError(t, err)
		before, err := first.store.CountPlants(context.Background())
		require.NoError(t, err)
		require.NoError(t, first.store.Close())

		second, err := NewServer(dir)
		require.NoError(t, err)
		defer func() { _ = second.store.Close() }()

		after, err := second.store.CountPlants(context.Background())
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestHandleSearchPlants(t *testing.T) {
	server := newTestServer(t)

	t.Run("plant name query returns results", func(t *testing.T) {
		result, err := server.handleSearchPlants(context.Background(),
			toolRequest("search_plants", map[string]interface{}{"query": "tulsi"}))
		require.NoError(t, err)

		text := resultText(t, result)
		assert.Contains(t, text, `"tulsi"`)
		assert.Contains(t, text, "relevance_score")
		assert.Contains(t, text, "search_analysis")
	})

	t.Run("no match returns suggestions", func(t *testing.T) {
		result, err := server.handleSearchPlants(context.Background(),
			toolRequest("search_plants", map[string]interface{}{"query": "xyzzy varietal"}))
		require.NoError(t, err)

		text := resultText(t, result)
		assert.Contains(t, text, "suggestions")
		assert.NotContains(t, text, "relevance_score")
	})

	t.Run("missing query is a protocol error", func(t *testing.T) {
		_, err := server.handleSearchPlants(context.Background(),
			toolRequest("search_plants", map[string]interface{}{}))
		require.Error(t, err)

		var mcpErr *MCPError
		require.ErrorAs(t, err, &mcpErr)
		assert.Equal(t, ErrorCodeEmptyQuery, mcpErr.Code)
	})

	t.Run("whitespace query is a protocol error", func(t *testing.T) {
		_, err := server.handleSearchPlants(context.Background(),
			toolRequest("search_plants", map[string]interface{}{"query": "   "}))
		require.Error(t, err)

		var mcpErr *MCPError
		require.ErrorAs(t, err, &mcpErr)
		assert.Equal(t, ErrorCodeEmptyQuery, mcpErr.Code)
	})

	t.Run("limit out of range rejected", func(t *testing.T) {
		_, err := server.handleSearchPlants(context.Background(),
			toolRequest("search_plants", map[string]interface{}{
				"query": "tulsi",
				"limit": float64(50),
			}))
		require.Error(t, err)

		var mcpErr *MCPError
		require.ErrorAs(t, err, &mcpErr)
		assert.Equal(t, ErrorCodeInvalidParams, mcpErr.Code)
	})
}

func TestHandleGetStatus(t *testing.T) {
	server := newTestServer(t)

	result, err := server.handleGetStatus(context.Background(),
		toolRequest("get_status", map[string]interface{}{}))
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Contains(t, text, "plants_count")
	assert.Contains(t, text, "build_mode")
	assert.Contains(t, text, ServerName)
}

func TestFormatResponse(t *testing.T) {
	t.Run("result response", func(t *testing.T) {
		eco := 9.0
		resp := &search.Response{
			Results: []types.RankedResult{{
				Plant:          types.PlantRecord{Name: "tulsi", EcoImpactScore: &eco},
				RelevanceScore: 95,
			}},
			Count: 1,
		}
		out := formatResponse(resp)
		assert.Equal(t, 1, out["count"])
		assert.Contains(t, out, "plants")
		assert.NotContains(t, out, "suggestions")
	})

	t.Run("suggestion response", func(t *testing.T) {
		resp := &search.Response{
			Suggestions: &search.Suggestions{
				Message: "nothing found",
				Plants:  []string{"tulsi", "mint"},
			},
		}
		out := formatResponse(resp)
		assert.Contains(t, out, "suggestions")
		assert.NotContains(t, out, "plants")
	})

	t.Run("degraded flag surfaces", func(t *testing.T) {
		resp := &search.Response{
			Suggestions: &search.Suggestions{Plants: []string{"tulsi"}},
			Degraded:    true,
		}
		out := formatResponse(resp)
		assert.Equal(t, true, out["degraded"])
	})
}
