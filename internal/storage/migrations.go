package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

const (
	// CurrentSchemaVersion tracks the database schema version
	CurrentSchemaVersion = "1.0.0"
)

// Migration represents a database schema migration
type Migration struct {
	Version string
	Up      string
	Down    string
}

// AllMigrations contains all database migrations in order
var AllMigrations = []Migration{
	{
		Version: "1.0.0",
		Up:      migrationV1Up,
		Down:    migrationV1Down,
	},
}

const migrationV1Up = `
-- Schema version tracking
CREATE TABLE IF NOT EXISTS schema_version (
    version TEXT PRIMARY KEY,
    applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Plant catalog
CREATE TABLE IF NOT EXISTS plants (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    scientific_name TEXT,
    season TEXT,
    climate TEXT,
    care_instructions TEXT,
    native_region TEXT,
    eco_impact_score REAL,
    difficulty_level TEXT,
    cultural_significance TEXT,
    medicinal_properties TEXT,
    watering_frequency_summer INTEGER,
    watering_frequency_winter INTEGER,
    watering_frequency_monsoon INTEGER,
    sunlight_requirement TEXT,
    soil_type TEXT,
    growth_height_cm REAL,
    growth_time_months INTEGER,
    eco_benefits TEXT,
    care_tips_detailed TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_plants_name ON plants(name);
CREATE INDEX IF NOT EXISTS idx_plants_difficulty ON plants(difficulty_level);
CREATE INDEX IF NOT EXISTS idx_plants_eco_score ON plants(eco_impact_score);
`

const migrationV1Down = `
DROP INDEX IF EXISTS idx_plants_eco_score;
DROP INDEX IF EXISTS idx_plants_difficulty;
DROP INDEX IF EXISTS idx_plants_name;
DROP TABLE IF EXISTS plants;
DROP TABLE IF EXISTS schema_version;
`

// ApplyMigrations applies any migrations newer than the recorded schema
// version, in order.
func ApplyMigrations(ctx context.Context, db *sql.DB) error {
	current, err := schemaVersion(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, m := range AllMigrations {
		target, err := semver.NewVersion(m.Version)
		if err != nil {
			return fmt.Errorf("invalid migration version %q: %w", m.Version, err)
		}
		if current != nil && !target.GreaterThan(current) {
			continue
		}

		if _, err := db.ExecContext(ctx, m.Up); err != nil {
			return fmt.Errorf("migration %s failed: %w", m.Version, err)
		}
		if _, err := db.ExecContext(ctx,
			"INSERT OR REPLACE INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return fmt.Errorf("failed to record migration %s: %w", m.Version, err)
		}
		current = target
	}

	return nil
}

// schemaVersion returns the highest applied schema version, or nil when
// the database is fresh.
func schemaVersion(ctx context.Context, db *sql.DB) (*semver.Version, error) {
	var exists int
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, nil
	}

	rows, err := db.QueryContext(ctx, "SELECT version FROM schema_version")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var highest *semver.Version
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		parsed, err := semver.NewVersion(v)
		if err != nil {
			continue // ignore malformed rows
		}
		if highest == nil || parsed.GreaterThan(highest) {
			highest = parsed
		}
	}
	return highest, rows.Err()
}
