package ranker

import (
	"fmt"
	"strings"

	"github.com/florafind/florasearch/internal/lexicon"
	"github.com/florafind/florasearch/pkg/types"
)

const maxSpecialCareTips = 3

// quickActions derives the rule-based action chips for one plant.
func quickActions(plant *types.PlantRecord) []types.QuickAction {
	var actions []types.QuickAction

	if plant.DifficultyLevel == "beginner" {
		actions = append(actions, types.QuickAction{
			Action: "perfect_for_beginners", Icon: "🌱", Text: "Perfect for Beginners",
		})
	}
	if strings.Contains(strings.ToLower(plant.Season), "summer") {
		actions = append(actions, types.QuickAction{
			Action: "summer_friendly", Icon: "☀️", Text: "Summer Friendly",
		})
	}
	if plant.EcoScoreAtLeast(8) {
		actions = append(actions, types.QuickAction{
			Action: "eco_champion", Icon: "🌍", Text: "Eco Champion",
		})
	}
	if plant.MedicinalProperties != "" {
		actions = append(actions, types.QuickAction{
			Action: "medicinal_uses", Icon: "💊", Text: "Medicinal Uses",
		})
	}
	if strings.Contains(strings.ToLower(plant.EcoBenefits), "air") {
		actions = append(actions, types.QuickAction{
			Action: "air_purifier", Icon: "🌬️", Text: "Air Purifier",
		})
	}

	return actions
}

// careSummary condenses the care columns with defaults for absent data.
func careSummary(plant *types.PlantRecord) types.CareSummary {
	sunlight := plant.SunlightRequirement
	if sunlight == "" {
		sunlight = "Natural light"
	}

	growth := "Variable"
	if plant.GrowthTimeMonths != nil {
		growth = fmt.Sprintf("%d months", *plant.GrowthTimeMonths)
	}

	return types.CareSummary{
		Difficulty:     plant.DifficultyLevel,
		Sunlight:       sunlight,
		WaterFrequency: wateringAdvice(plant),
		GrowthTime:     growth,
		SpecialCare:    specialCareTips(plant),
	}
}

// wateringAdvice degrades gracefully as seasonal frequencies go missing.
func wateringAdvice(plant *types.PlantRecord) string {
	summer := plant.WateringSummerDays
	winter := plant.WateringWinterDays

	switch {
	case summer != nil && winter != nil:
		return fmt.Sprintf("Every %d days (summer), %d days (winter)", *summer, *winter)
	case summer != nil:
		return fmt.Sprintf("Every %d days in summer", *summer)
	default:
		return "Regular watering"
	}
}

// specialCareTips extracts up to three tips from substring tests on the
// care-instructions text.
func specialCareTips(plant *types.PlantRecord) []string {
	careText := strings.ToLower(plant.CareInstructions)

	rules := []struct {
		marker string
		tip    string
	}{
		{"deadhead", "Regular deadheading"},
		{"prune", "Pruning required"},
		{"full sun", "Needs full sun"},
		{"shade", "Tolerates shade"},
	}

	var tips []string
	for _, r := range rules {
		if strings.Contains(careText, r.marker) {
			tips = append(tips, r.tip)
		}
		if len(tips) == maxSpecialCareTips {
			break
		}
	}
	return tips
}

// semanticTags labels a result with query-derived tags: an intent tag,
// one tag per extracted modifier, and a good_for tag per care aspect the
// plant's care text actually covers.
func semanticTags(q *types.ProcessedQuery, plant *types.PlantRecord) []string {
	var tags []string

	if q.Intent == lexicon.IntentRecommend {
		tags = append(tags, "recommended")
	}

	for _, mod := range q.Modifiers {
		tags = append(tags, fmt.Sprintf("%s_%s", mod.Type, mod.Value))
	}

	careText := strings.ToLower(plant.CareInstructions)
	for _, aspect := range q.CareAspects {
		if strings.Contains(careText, aspect) {
			tags = append(tags, "good_for_"+aspect)
		}
	}

	return tags
}
