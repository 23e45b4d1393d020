package types

// QuickAction is a rule-derived action chip attached to a ranked result.
type QuickAction struct {
	Action string `json:"action"`
	Icon   string `json:"icon"`
	Text   string `json:"text"`
}

// CareSummary condenses the care columns of a plant record into the shape
// the caller renders.
type CareSummary struct {
	Difficulty     string   `json:"difficulty"`
	Sunlight       string   `json:"sunlight"`
	WaterFrequency string   `json:"water_frequency"`
	GrowthTime     string   `json:"growth_time"`
	SpecialCare    []string `json:"special_care"`
}

// RankedResult is a candidate plant with its computed relevance score and
// derived metadata. Immutable once assembled; lives for one response.
type RankedResult struct {
	Plant          PlantRecord
	RelevanceScore float64
	QuickActions   []QuickAction
	CareSummary    CareSummary
	SemanticTags   []string
}

// Analysis is the structured summary of query understanding returned with
// every response for caller transparency and debugging.
type Analysis struct {
	Intent            string     `json:"intent"`
	Confidence        float64    `json:"confidence"`
	PlantMentions     []string   `json:"plant_mentions"`
	Categories        []string   `json:"categories"`
	CareAspects       []string   `json:"care_aspects"`
	Modifiers         []Modifier `json:"modifiers"`
	ProblemIndicators []string   `json:"problem_indicators,omitempty"`
	Urgency           string     `json:"urgency,omitempty"`
	TotalResults      int        `json:"total_results"`
}
