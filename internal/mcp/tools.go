package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/florafind/florasearch/internal/search"
	"github.com/florafind/florasearch/internal/storage"
	"github.com/florafind/florasearch/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
	ErrorCodeEmptyQuery    = -32001 // Query parameter is empty
)

const defaultLimit = 10

// handleSearchPlants handles the search_plants tool invocation
func (s *Server) handleSearchPlants(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return nil, newMCPError(ErrorCodeEmptyQuery, "query parameter is required and cannot be empty", map[string]interface{}{
			"param":  "query",
			"reason": "missing or empty",
		})
	}

	limit := getIntDefault(args, "limit", defaultLimit)
	if limit < 1 || limit > storage.RetrieveLimit {
		return nil, newMCPError(ErrorCodeInvalidParams,
			fmt.Sprintf("limit must be between 1 and %d", storage.RetrieveLimit),
			map[string]interface{}{
				"param": "limit",
				"value": limit,
			})
	}

	req := search.Request{
		Query:       query,
		UserContext: getStringDefault(args, "user_context", ""),
		Limit:       limit,
		UseCache:    getBoolDefault(args, "use_cache", true),
	}

	// The retriever call is the only blocking step; bound it here at the
	// caller seam rather than inside the pipeline.
	ctx, cancel := context.WithTimeout(ctx, retrievalTimeout)
	defer cancel()

	resp, err := s.search.Search(ctx, req)
	if errors.Is(err, types.ErrEmptyQuery) {
		return nil, newMCPError(ErrorCodeEmptyQuery, "query cannot be empty or whitespace", nil)
	}
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "search failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return mcp.NewToolResultText(formatJSON(formatResponse(resp))), nil
}

// handleGetStatus handles the get_status tool invocation
func (s *Server) handleGetStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	count, err := s.store.CountPlants(ctx)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to read catalog", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"server":  ServerName,
		"version": ServerVersion,
		"catalog": map[string]interface{}{
			"plants_count":   count,
			"schema_version": storage.CurrentSchemaVersion,
		},
		"storage": map[string]interface{}{
			"build_mode": storage.BuildMode,
			"driver":     storage.DriverName,
		},
		"annotator": s.annotator.Provider(),
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// formatResponse renders a search response for tool output.
func formatResponse(resp *search.Response) map[string]interface{} {
	out := map[string]interface{}{
		"count":           resp.Count,
		"search_analysis": resp.Analysis,
	}

	if resp.Suggestions != nil {
		out["message"] = resp.Suggestions.Message
		out["suggestions"] = resp.Suggestions.Plants
		if len(resp.Suggestions.SearchTips) > 0 {
			out["search_tips"] = resp.Suggestions.SearchTips
		}
	}
	if len(resp.Results) > 0 {
		plants := make([]map[string]interface{}, 0, len(resp.Results))
		for _, r := range resp.Results {
			plants = append(plants, formatResult(r))
		}
		out["plants"] = plants
	}
	if len(resp.FollowUps) > 0 {
		out["follow_up_suggestions"] = resp.FollowUps
	}
	if resp.Degraded {
		out["degraded"] = true
	}
	if resp.CacheHit {
		out["cache_hit"] = true
	}

	return out
}

// formatResult flattens one ranked result into the caller-facing shape.
func formatResult(r types.RankedResult) map[string]interface{} {
	p := r.Plant
	out := map[string]interface{}{
		"name":              p.Name,
		"scientific_name":   p.ScientificName,
		"season":            p.Season,
		"climate":           p.Climate,
		"difficulty_level":  p.DifficultyLevel,
		"care_instructions": p.CareInstructions,
		"native_region":     p.NativeRegion,
		"eco_benefits":      p.EcoBenefits,
		"relevance_score":   r.RelevanceScore,
		"quick_actions":     r.QuickActions,
		"care_summary":      r.CareSummary,
		"semantic_tags":     r.SemanticTags,
	}
	if p.EcoImpactScore != nil {
		out["eco_impact_score"] = *p.EcoImpactScore
	}
	if p.MedicinalProperties != "" {
		out["medicinal_properties"] = p.MedicinalProperties
	}
	return out
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getBoolDefault extracts a boolean parameter with a default value
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}
