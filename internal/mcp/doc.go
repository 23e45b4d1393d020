// Package mcp implements the Model Context Protocol (MCP) server for
// FloraSearch.
//
// The server exposes two tools to MCP clients:
//   - search_plants: Free-text search over the plant catalog
//   - get_status: Catalog size and configuration report
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport; the server reads
// requests from stdin and writes responses to stdout, so all logging
// goes to stderr.
//
// # Tool: search_plants
//
//	Request:
//	{
//	  "name": "search_plants",
//	  "arguments": {
//	    "query": "easy indoor medicinal herbs",
//	    "limit": 10
//	  }
//	}
//
//	Response (tool text content, JSON):
//	{
//	  "count": 4,
//	  "plants": [
//	    {
//	      "name": "tulsi",
//	      "relevance_score": 95.0,
//	      "quick_actions": [...],
//	      "care_summary": {...},
//	      "semantic_tags": ["difficulty_beginner", "type_indoor"]
//	    }
//	  ],
//	  "search_analysis": {
//	    "intent": "recommendation",
//	    "modifiers": [...]
//	  }
//	}
//
// A query matching nothing returns a suggestion list instead of plants;
// a retrieval failure returns a degraded response with a fixed fallback
// list. Only empty queries and malformed parameters produce protocol
// errors.
package mcp
