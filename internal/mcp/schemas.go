package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// searchPlantsTool returns the tool definition for search_plants
func searchPlantsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_plants",
		Description: "Search the plant catalog with free-text queries like 'easy indoor medicinal herbs' or 'how to water tulsi'",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Free-text search query (plant names, care questions, descriptions)",
				},
				"user_context": map[string]interface{}{
					"type":        "string",
					"description": "Optional session context hint; affects caching, not scoring",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return (1-20)",
					"default":     10,
					"minimum":     1,
					"maximum":     20,
				},
				"use_cache": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, serve repeated queries from the result cache",
					"default":     true,
				},
			},
			Required: []string{"query"},
		},
	}
}

// getStatusTool returns the tool definition for get_status
func getStatusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_status",
		Description: "Report catalog size, storage build mode, and annotator configuration",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
