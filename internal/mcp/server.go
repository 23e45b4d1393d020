package mcp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/florafind/florasearch/internal/annotate"
	"github.com/florafind/florasearch/internal/lexicon"
	"github.com/florafind/florasearch/internal/search"
	"github.com/florafind/florasearch/internal/storage"
)

const (
	// ServerName is the MCP server name
	ServerName = "florasearch-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
	// DefaultDBPath is the default location for the catalog database
	DefaultDBPath = "~/.florasearch"

	// retrievalTimeout bounds the retriever call per search request. The
	// scoring and extraction stages are pure computation and need no
	// timeout of their own.
	retrievalTimeout = 10 * time.Second

	cacheEntries = 1000
	cacheTTL     = time.Hour
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp       *server.MCPServer
	store     storage.PlantStore
	annotator annotate.Annotator
	search    *search.Service
}

// NewServer creates a new MCP server instance. An empty catalog is
// seeded from the embedded starter data on first run.
func NewServer(dbPath string) (*Server, error) {
	if dbPath == "" || dbPath == DefaultDBPath {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".florasearch")
	}

	if err := os.MkdirAll(dbPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	dbFile := filepath.Join(dbPath, "florasearch.db")

	store, err := storage.NewSQLiteStore(dbFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	count, err := store.CountPlants(context.Background())
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to check catalog: %w", err)
	}
	if count == 0 {
		if _, err := storage.Seed(context.Background(), store); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	annotator, err := annotate.NewFromEnv()
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to initialize annotator: %w", err)
	}

	svc := search.New(lexicon.Default(), annotator, store,
		search.WithCache(cacheEntries, cacheTTL))

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:       mcpServer,
		store:     store,
		annotator: annotator,
		search:    svc,
	}

	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	defer func() {
		_ = s.annotator.Close()
		_ = s.store.Close()
	}()
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() error {
	s.mcp.AddTool(searchPlantsTool(), s.handleSearchPlants)
	s.mcp.AddTool(getStatusTool(), s.handleGetStatus)
	return nil
}
