package types

// PlantRecord is one row of the plant catalog as returned by the candidate
// retriever. Nullable columns map to pointers; absence is meaningful to
// the ranker and the care-summary rules.
type PlantRecord struct {
	ID                   int64
	Name                 string
	ScientificName       string
	Season               string
	Climate              string
	CareInstructions     string
	NativeRegion         string
	EcoImpactScore       *float64
	DifficultyLevel      string
	CulturalSignificance string
	MedicinalProperties  string

	WateringSummerDays  *int
	WateringWinterDays  *int
	WateringMonsoonDays *int

	SunlightRequirement string
	SoilType            string
	GrowthHeightCM      *float64
	GrowthTimeMonths    *int
	EcoBenefits         string
	CareTipsDetailed    string
}

// EcoScoreAtLeast reports whether the eco-impact score is present and at
// least min.
func (p *PlantRecord) EcoScoreAtLeast(min float64) bool {
	return p.EcoImpactScore != nil && *p.EcoImpactScore >= min
}
