package storage

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/florafind/florasearch/pkg/types"
)

//go:embed catalog.json
var catalogJSON []byte

// seedRecord is the on-disk shape of one catalog entry. It is kept
// separate from types.PlantRecord so the wire format can evolve without
// touching the core types.
type seedRecord struct {
	Name                 string   `json:"name"`
	ScientificName       string   `json:"scientific_name"`
	Season               string   `json:"season"`
	Climate              string   `json:"climate"`
	CareInstructions     string   `json:"care_instructions"`
	NativeRegion         string   `json:"native_region"`
	EcoImpactScore       *float64 `json:"eco_impact_score"`
	DifficultyLevel      string   `json:"difficulty_level"`
	CulturalSignificance string   `json:"cultural_significance"`
	MedicinalProperties  string   `json:"medicinal_properties"`
	WateringSummer       *int     `json:"watering_frequency_summer"`
	WateringWinter       *int     `json:"watering_frequency_winter"`
	WateringMonsoon      *int     `json:"watering_frequency_monsoon"`
	SunlightRequirement  string   `json:"sunlight_requirement"`
	SoilType             string   `json:"soil_type"`
	GrowthHeightCM       *float64 `json:"growth_height_cm"`
	GrowthTimeMonths     *int     `json:"growth_time_months"`
	EcoBenefits          string   `json:"eco_benefits"`
	CareTipsDetailed     string   `json:"care_tips_detailed"`
}

func (r *seedRecord) toPlant() *types.PlantRecord {
	return &types.PlantRecord{
		Name:                 r.Name,
		ScientificName:       r.ScientificName,
		Season:               r.Season,
		Climate:              r.Climate,
		CareInstructions:     r.CareInstructions,
		NativeRegion:         r.NativeRegion,
		EcoImpactScore:       r.EcoImpactScore,
		DifficultyLevel:      r.DifficultyLevel,
		CulturalSignificance: r.CulturalSignificance,
		MedicinalProperties:  r.MedicinalProperties,
		WateringSummerDays:   r.WateringSummer,
		WateringWinterDays:   r.WateringWinter,
		WateringMonsoonDays:  r.WateringMonsoon,
		SunlightRequirement:  r.SunlightRequirement,
		SoilType:             r.SoilType,
		GrowthHeightCM:       r.GrowthHeightCM,
		GrowthTimeMonths:     r.GrowthTimeMonths,
		EcoBenefits:          r.EcoBenefits,
		CareTipsDetailed:     r.CareTipsDetailed,
	}
}

// EmbeddedCatalog decodes the bundled starter catalog.
func EmbeddedCatalog() ([]types.PlantRecord, error) {
	var records []seedRecord
	if err := json.Unmarshal(catalogJSON, &records); err != nil {
		return nil, fmt.Errorf("failed to decode embedded catalog: %w", err)
	}
	plants := make([]types.PlantRecord, 0, len(records))
	for i := range records {
		plants = append(plants, *records[i].toPlant())
	}
	return plants, nil
}

// Seed upserts the embedded catalog into the store. Upserts run through
// an errgroup so a single bad record reports its error without masking
// the rest; SQLite serializes the writes on its single connection.
func Seed(ctx context.Context, store PlantStore) (int, error) {
	plants, err := EmbeddedCatalog()
	if err != nil {
		return 0, err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i := range plants {
		plant := plants[i]
		g.Go(func() error {
			if err := store.UpsertPlant(ctx, &plant); err != nil {
				return fmt.Errorf("seed %q: %w", plant.Name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return len(plants), nil
}
