// Command seeder loads the embedded starter catalog into a FloraSearch
// database. Safe to re-run: records are upserted by name.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/florafind/florasearch/internal/storage"
)

func main() {
	log.SetOutput(os.Stderr)

	dbPath := flag.String("db", "", "path to the catalog database file (default: $FLORASEARCH_DB_PATH/florasearch.db or ~/.florasearch/florasearch.db)")
	flag.Parse()

	file, err := resolveDBFile(*dbPath)
	if err != nil {
		log.Fatalf("Failed to resolve database path: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	store, err := storage.NewSQLiteStore(file)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	n, err := storage.Seed(ctx, store)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	total, err := store.CountPlants(ctx)
	if err != nil {
		log.Fatalf("Failed to count plants: %v", err)
	}

	log.Printf("Seeded %d plants into %s (catalog total: %d)", n, file, total)
}

func resolveDBFile(flagPath string) (string, error) {
	if flagPath != "" {
		return flagPath, nil
	}
	dir := os.Getenv("FLORASEARCH_DB_PATH")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".florasearch")
	}
	return filepath.Join(dir, "florasearch.db"), nil
}
