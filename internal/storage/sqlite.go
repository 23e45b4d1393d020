package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/florafind/florasearch/internal/predicate"
	"github.com/florafind/florasearch/pkg/types"
)

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")
)

// RetrieveLimit caps the candidate list handed to the ranker.
const RetrieveLimit = 20

// SQLiteStore implements PlantStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// openDatabase opens a SQLite database with appropriate settings
func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// SQLite benefits from a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// NewSQLiteStore creates a new SQLite plant store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := ApplyMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

const plantColumns = `id, name, scientific_name, season, climate, care_instructions,
       native_region, eco_impact_score, difficulty_level, cultural_significance,
       medicinal_properties, watering_frequency_summer, watering_frequency_winter,
       watering_frequency_monsoon, sunlight_requirement, soil_type,
       growth_height_cm, growth_time_months, eco_benefits, care_tips_detailed`

// Retrieve executes the predicate set and returns candidates pre-sorted
// by the ordering hint. Connectivity and SQL failures are returned as
// errors wrapping types.ErrRetrieval so the service can distinguish them
// from a legitimate empty result.
func (s *SQLiteStore) Retrieve(ctx context.Context, set *predicate.Set) ([]types.PlantRecord, error) {
	where, args := RenderSet(set)

	// Coarse pre-sort: exact name match, then beginner items when the
	// query prefers them, then high eco impact. Final ordering is owned
	// by the ranker.
	query := fmt.Sprintf(`
		SELECT %s
		FROM plants
		WHERE %s
		ORDER BY
			CASE
				WHEN LOWER(name) LIKE ? THEN 1
				WHEN difficulty_level = 'beginner' AND ? THEN 2
				WHEN eco_impact_score >= 7 THEN 3
				ELSE 4
			END,
			eco_impact_score DESC,
			name ASC
		LIMIT %d
	`, plantColumns, where, RetrieveLimit)

	args = append(args, "%"+set.Hint.NameTerm+"%", set.Hint.PreferBeginner)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrRetrieval, err)
	}
	defer func() { _ = rows.Close() }()

	var plants []types.PlantRecord
	for rows.Next() {
		plant, err := scanPlant(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrRetrieval, err)
		}
		plants = append(plants, *plant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrRetrieval, err)
	}

	return plants, nil
}

// UpsertPlant inserts or replaces a catalog record by name.
func (s *SQLiteStore) UpsertPlant(ctx context.Context, plant *types.PlantRecord) error {
	query := `
		INSERT INTO plants (name, scientific_name, season, climate, care_instructions,
			native_region, eco_impact_score, difficulty_level, cultural_significance,
			medicinal_properties, watering_frequency_summer, watering_frequency_winter,
			watering_frequency_monsoon, sunlight_requirement, soil_type,
			growth_height_cm, growth_time_months, eco_benefits, care_tips_detailed,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			scientific_name = excluded.scientific_name,
			season = excluded.season,
			climate = excluded.climate,
			care_instructions = excluded.care_instructions,
			native_region = excluded.native_region,
			eco_impact_score = excluded.eco_impact_score,
			difficulty_level = excluded.difficulty_level,
			cultural_significance = excluded.cultural_significance,
			medicinal_properties = excluded.medicinal_properties,
			watering_frequency_summer = excluded.watering_frequency_summer,
			watering_frequency_winter = excluded.watering_frequency_winter,
			watering_frequency_monsoon = excluded.watering_frequency_monsoon,
			sunlight_requirement = excluded.sunlight_requirement,
			soil_type = excluded.soil_type,
			growth_height_cm = excluded.growth_height_cm,
			growth_time_months = excluded.growth_time_months,
			eco_benefits = excluded.eco_benefits,
			care_tips_detailed = excluded.care_tips_detailed,
			updated_at = excluded.updated_at
	`
	now := time.Now()
	result, err := s.db.ExecContext(ctx, query,
		plant.Name, plant.ScientificName, plant.Season, plant.Climate,
		plant.CareInstructions, plant.NativeRegion, plant.EcoImpactScore,
		plant.DifficultyLevel, plant.CulturalSignificance, plant.MedicinalProperties,
		plant.WateringSummerDays, plant.WateringWinterDays, plant.WateringMonsoonDays,
		plant.SunlightRequirement, plant.SoilType, plant.GrowthHeightCM,
		plant.GrowthTimeMonths, plant.EcoBenefits, plant.CareTipsDetailed,
		now, now)
	if err != nil {
		return fmt.Errorf("failed to upsert plant %q: %w", plant.Name, err)
	}

	if plant.ID == 0 {
		if id, err := result.LastInsertId(); err == nil {
			plant.ID = id
		}
	}
	return nil
}

// GetPlantByName fetches one record by exact name.
func (s *SQLiteStore) GetPlantByName(ctx context.Context, name string) (*types.PlantRecord, error) {
	query := fmt.Sprintf("SELECT %s FROM plants WHERE LOWER(name) = LOWER(?)", plantColumns)
	row := s.db.QueryRowContext(ctx, query, name)

	plant, err := scanPlant(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get plant %q: %w", name, err)
	}
	return plant, nil
}

// CountPlants returns the catalog size.
func (s *SQLiteStore) CountPlants(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM plants").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count plants: %w", err)
	}
	return count, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPlant(row scanner) (*types.PlantRecord, error) {
	var p types.PlantRecord
	var (
		scientificName, season, climate, care, region   sql.NullString
		difficulty, cultural, medicinal, sunlight, soil sql.NullString
		ecoBenefits, careTips                           sql.NullString
		ecoScore, growthHeight                          sql.NullFloat64
		wSummer, wWinter, wMonsoon, growthMonths        sql.NullInt64
	)

	err := row.Scan(&p.ID, &p.Name, &scientificName, &season, &climate, &care,
		&region, &ecoScore, &difficulty, &cultural, &medicinal,
		&wSummer, &wWinter, &wMonsoon, &sunlight, &soil,
		&growthHeight, &growthMonths, &ecoBenefits, &careTips)
	if err != nil {
		return nil, err
	}

	p.ScientificName = scientificName.String
	p.Season = season.String
	p.Climate = climate.String
	p.CareInstructions = care.String
	p.NativeRegion = region.String
	p.DifficultyLevel = difficulty.String
	p.CulturalSignificance = cultural.String
	p.MedicinalProperties = medicinal.String
	p.SunlightRequirement = sunlight.String
	p.SoilType = soil.String
	p.EcoBenefits = ecoBenefits.String
	p.CareTipsDetailed = careTips.String

	if ecoScore.Valid {
		v := ecoScore.Float64
		p.EcoImpactScore = &v
	}
	if growthHeight.Valid {
		v := growthHeight.Float64
		p.GrowthHeightCM = &v
	}
	if wSummer.Valid {
		v := int(wSummer.Int64)
		p.WateringSummerDays = &v
	}
	if wWinter.Valid {
		v := int(wWinter.Int64)
		p.WateringWinterDays = &v
	}
	if wMonsoon.Valid {
		v := int(wMonsoon.Int64)
		p.WateringMonsoonDays = &v
	}
	if growthMonths.Valid {
		v := int(growthMonths.Int64)
		p.GrowthTimeMonths = &v
	}

	return &p, nil
}
