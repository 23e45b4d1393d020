// Package ranker turns retriever candidates into scored, metadata-rich
// results. Scoring is pure computation over the processed query and the
// candidate row; the package holds no state and is safe for concurrent
// use.
package ranker

import (
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/florafind/florasearch/pkg/types"
)

// Scoring weights.
const (
	nameSimilarityWeight = 0.3
	mentionBonus         = 50.0
	beginnerBonus        = 30.0
	careAspectBonus      = 20.0
	ecoBonus             = 15.0

	ecoBonusThreshold = 7.0
)

// Ranker scores and orders candidate plants for a processed query.
type Ranker struct{}

// New creates a Ranker.
func New() *Ranker {
	return &Ranker{}
}

// Rank scores each candidate against the query and returns results in
// descending score order. The sort is stable: candidates with equal
// scores keep the retriever's pre-sort order, so identical inputs always
// produce identical output order.
func (r *Ranker) Rank(q *types.ProcessedQuery, candidates []types.PlantRecord) []types.RankedResult {
	if len(candidates) == 0 {
		return nil
	}

	results := make([]types.RankedResult, 0, len(candidates))
	for _, plant := range candidates {
		results = append(results, types.RankedResult{
			Plant:          plant,
			RelevanceScore: score(q, &plant),
			QuickActions:   quickActions(&plant),
			CareSummary:    careSummary(&plant),
			SemanticTags:   semanticTags(q, &plant),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})

	return results
}

func score(q *types.ProcessedQuery, plant *types.PlantRecord) float64 {
	var s float64

	name := strings.ToLower(plant.Name)
	query := strings.ToLower(q.Original)

	s += float64(fuzzy.PartialRatio(query, name)) * nameSimilarityWeight

	// Additive per mention, not capped.
	for _, mention := range q.PlantMentions {
		if strings.Contains(name, strings.ToLower(mention)) {
			s += mentionBonus
		}
	}

	if beginnerPreferred(q) && plant.DifficultyLevel == "beginner" {
		s += beginnerBonus
	}

	careText := strings.ToLower(plant.CareInstructions)
	for _, aspect := range q.CareAspects {
		if strings.Contains(careText, aspect) {
			s += careAspectBonus
		}
	}

	if plant.EcoScoreAtLeast(ecoBonusThreshold) {
		s += ecoBonus
	}

	return s
}

// beginnerPreferred accepts either the literal keyword or a detected
// beginner difficulty preference, which covers inflected forms
// ("beginners") in degraded tokenizer mode.
func beginnerPreferred(q *types.ProcessedQuery) bool {
	return q.HasKeyword("beginner") || q.Context.DifficultyPreference == "beginner"
}
