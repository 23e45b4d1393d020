package ranker

import (
	"testing"

	"github.com/florafind/florasearch/internal/lexicon"
	"github.com/florafind/florasearch/pkg/types"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func plant(name string, opts ...func(*types.PlantRecord)) types.PlantRecord {
	p := types.PlantRecord{Name: name}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func TestRankMentionDominates(t *testing.T) {
	q := &types.ProcessedQuery{
		Original:      "tulsi",
		PlantMentions: []string{"tulsi"},
	}
	candidates := []types.PlantRecord{
		plant("rose", func(p *types.PlantRecord) { p.EcoImpactScore = floatPtr(9) }),
		plant("tulsi"),
	}

	results := New().Rank(q, candidates)
	if results[0].Plant.Name != "tulsi" {
		t.Fatalf("top result = %q, want tulsi", results[0].Plant.Name)
	}
	// A name-matched plant scores at least the mention bonus above any
	// candidate that matched nothing.
	gap := results[0].RelevanceScore - results[1].RelevanceScore
	if gap < mentionBonus-ecoBonus {
		t.Errorf("score gap = %.1f, too small for a mention match", gap)
	}
}

func TestRankMentionBonusIsAdditive(t *testing.T) {
	q := &types.ProcessedQuery{
		Original:      "tulsi and mint",
		PlantMentions: []string{"tulsi", "mint"},
	}
	// Contrived name containing both mentions collects the bonus twice.
	both := plant("tulsi mint blend")
	one := plant("mint")

	results := New().Rank(q, []types.PlantRecord{one, both})
	var bothScore, oneScore float64
	for _, r := range results {
		switch r.Plant.Name {
		case "tulsi mint blend":
			bothScore = r.RelevanceScore
		case "mint":
			oneScore = r.RelevanceScore
		}
	}
	if bothScore-oneScore < mentionBonus-30 {
		t.Errorf("double mention %.1f vs single %.1f, want roughly one extra bonus", bothScore, oneScore)
	}
}

func TestRankBeginnerBonus(t *testing.T) {
	q := &types.ProcessedQuery{
		Original: "easy plants for beginners",
		Keywords: []string{"beginner"},
	}
	beginner := plant("mint", func(p *types.PlantRecord) { p.DifficultyLevel = "beginner" })
	advanced := plant("mint", func(p *types.PlantRecord) { p.DifficultyLevel = "advanced" })

	results := New().Rank(q, []types.PlantRecord{advanced, beginner})
	if results[0].Plant.DifficultyLevel != "beginner" {
		t.Errorf("top result difficulty = %q, want beginner", results[0].Plant.DifficultyLevel)
	}
	if results[0].RelevanceScore-results[1].RelevanceScore != beginnerBonus {
		t.Errorf("score gap = %.1f, want %v", results[0].RelevanceScore-results[1].RelevanceScore, beginnerBonus)
	}
}

func TestRankBeginnerBonusFromContext(t *testing.T) {
	// Degraded tokenizer mode: the inflected keyword never matches, but
	// the detected difficulty preference still triggers the bonus.
	q := &types.ProcessedQuery{
		Original: "plants for beginners",
		Keywords: []string{"beginners"},
		Context:  types.CareContext{DifficultyPreference: "beginner"},
	}
	beginner := plant("mint", func(p *types.PlantRecord) { p.DifficultyLevel = "beginner" })

	results := New().Rank(q, []types.PlantRecord{beginner})
	if results[0].RelevanceScore < beginnerBonus {
		t.Errorf("score = %.1f, want at least the beginner bonus", results[0].RelevanceScore)
	}
}

func TestRankCareAspectAndEcoBonuses(t *testing.T) {
	q := &types.ProcessedQuery{
		Original:    "watering help",
		CareAspects: []string{"water"},
	}
	p := plant("fern",
		func(p *types.PlantRecord) { p.CareInstructions = "Water regularly in summer." },
		func(p *types.PlantRecord) { p.EcoImpactScore = floatPtr(8) },
	)
	bare := plant("fern")

	results := New().Rank(q, []types.PlantRecord{bare, p})
	gap := results[0].RelevanceScore - results[1].RelevanceScore
	if gap != careAspectBonus+ecoBonus {
		t.Errorf("score gap = %.1f, want %v", gap, careAspectBonus+ecoBonus)
	}
}

func TestRankStableOnTies(t *testing.T) {
	q := &types.ProcessedQuery{Original: "zz"}
	candidates := []types.PlantRecord{
		plant("aster"), plant("aster"), plant("aster"),
	}
	candidates[0].ID = 1
	candidates[1].ID = 2
	candidates[2].ID = 3

	for run := 0; run < 5; run++ {
		results := New().Rank(q, candidates)
		for i, r := range results {
			if r.Plant.ID != int64(i+1) {
				t.Fatalf("run %d: position %d has ID %d, tie order not preserved", run, i, r.Plant.ID)
			}
		}
	}
}

func TestRankEmptyInput(t *testing.T) {
	if results := New().Rank(&types.ProcessedQuery{Original: "x"}, nil); results != nil {
		t.Errorf("Rank(nil candidates) = %v, want nil", results)
	}
}

func TestQuickActions(t *testing.T) {
	p := plant("tulsi",
		func(p *types.PlantRecord) { p.DifficultyLevel = "beginner" },
		func(p *types.PlantRecord) { p.Season = "summer" },
		func(p *types.PlantRecord) { p.EcoImpactScore = floatPtr(9) },
		func(p *types.PlantRecord) { p.MedicinalProperties = "adaptogenic" },
		func(p *types.PlantRecord) { p.EcoBenefits = "Air purification" },
	)

	actions := quickActions(&p)
	want := []string{"perfect_for_beginners", "summer_friendly", "eco_champion", "medicinal_uses", "air_purifier"}
	if len(actions) != len(want) {
		t.Fatalf("got %d actions, want %d", len(actions), len(want))
	}
	for i, a := range actions {
		if a.Action != want[i] {
			t.Errorf("action[%d] = %q, want %q", i, a.Action, want[i])
		}
	}

	if got := quickActions(&types.PlantRecord{Name: "bare"}); len(got) != 0 {
		t.Errorf("bare plant actions = %v, want none", got)
	}

	// eco_champion needs >= 8, not the ranker's >= 7 threshold.
	seven := plant("x", func(p *types.PlantRecord) { p.EcoImpactScore = floatPtr(7) })
	if got := quickActions(&seven); len(got) != 0 {
		t.Errorf("eco 7 actions = %v, want none", got)
	}
}

func TestCareSummaryDefaults(t *testing.T) {
	bare := plant("bare")
	summary := careSummary(&bare)
	if summary.Sunlight != "Natural light" {
		t.Errorf("Sunlight = %q, want Natural light", summary.Sunlight)
	}
	if summary.GrowthTime != "Variable" {
		t.Errorf("GrowthTime = %q, want Variable", summary.GrowthTime)
	}
	if summary.WaterFrequency != "Regular watering" {
		t.Errorf("WaterFrequency = %q, want Regular watering", summary.WaterFrequency)
	}
}

func TestWateringAdviceDegradation(t *testing.T) {
	full := plant("a",
		func(p *types.PlantRecord) { p.WateringSummerDays = intPtr(2) },
		func(p *types.PlantRecord) { p.WateringWinterDays = intPtr(5) },
	)
	if got := wateringAdvice(&full); got != "Every 2 days (summer), 5 days (winter)" {
		t.Errorf("full advice = %q", got)
	}

	summerOnly := plant("b", func(p *types.PlantRecord) { p.WateringSummerDays = intPtr(3) })
	if got := wateringAdvice(&summerOnly); got != "Every 3 days in summer" {
		t.Errorf("summer-only advice = %q", got)
	}

	winterOnly := plant("c", func(p *types.PlantRecord) { p.WateringWinterDays = intPtr(10) })
	if got := wateringAdvice(&winterOnly); got != "Regular watering" {
		t.Errorf("winter-only advice = %q", got)
	}
}

func TestSpecialCareTipsCapped(t *testing.T) {
	p := plant("rose", func(p *types.PlantRecord) {
		p.CareInstructions = "Deadhead weekly, prune in winter, needs full sun, tolerates light shade."
	})
	tips := specialCareTips(&p)
	if len(tips) != maxSpecialCareTips {
		t.Fatalf("got %d tips, want %d", len(tips), maxSpecialCareTips)
	}
	if tips[0] != "Regular deadheading" {
		t.Errorf("tips[0] = %q", tips[0])
	}
}

func TestSemanticTags(t *testing.T) {
	q := &types.ProcessedQuery{
		Original:    "recommend easy indoor plants for sunlight",
		Intent:      lexicon.IntentRecommend,
		Modifiers:   []types.Modifier{{Type: types.ModifierDifficulty, Value: "beginner"}},
		CareAspects: []string{"sunlight"},
	}
	p := plant("snake plant", func(p *types.PlantRecord) {
		p.CareInstructions = "Tolerates low sunlight levels."
	})

	tags := semanticTags(q, &p)
	want := []string{"recommended", "difficulty_beginner", "good_for_sunlight"}
	if len(tags) != len(want) {
		t.Fatalf("tags = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("tags[%d] = %q, want %q", i, tags[i], want[i])
		}
	}

	// An aspect missing from the care text contributes no tag.
	other := plant("fern")
	if tags := semanticTags(q, &other); len(tags) != 2 {
		t.Errorf("tags without aspect match = %v, want 2 entries", tags)
	}
}
