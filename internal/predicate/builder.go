package predicate

import (
	"strings"

	"github.com/florafind/florasearch/internal/lexicon"
	"github.com/florafind/florasearch/pkg/types"
)

// MaxFallbackKeywords caps the tier-3 keyword scan at the two most
// significant extracted keywords.
const MaxFallbackKeywords = 2

// Builder turns a processed query into a predicate set.
type Builder struct {
	lex *lexicon.Lexicon
}

// NewBuilder creates a Builder backed by the given knowledge base.
func NewBuilder(lex *lexicon.Lexicon) *Builder {
	return &Builder{lex: lex}
}

// Build constructs the tiered predicate set for q. Tiers present are
// combined with AND; the broad keyword fallback is only constructed when
// neither a plant-identity signal nor a category tag was found.
func (b *Builder) Build(q *types.ProcessedQuery) *Set {
	text := strings.ToLower(q.Original)
	set := &Set{
		Hint: Hint{
			NameTerm:       text,
			PreferBeginner: beginnerPreferred(q),
		},
	}

	// Tier 1: extracted plant mentions, strongest identity signal.
	if expr := mentionExpr(q.PlantMentions); expr != nil {
		set.Groups = append(set.Groups, Group{Tier: TierPlantIdentity, Expr: expr})
	}

	// Tier 1b: direct lexical scan of the raw text against the alias
	// table, independent of the extractor's mention list.
	directHits := b.directNameHits(text)
	if expr := directHitExpr(directHits); expr != nil {
		set.Groups = append(set.Groups, Group{Tier: TierPlantIdentity, Expr: expr})
	}

	// Tier 2: category filters, OR-ed across detected tags.
	if expr := b.categoryExpr(q.Categories); expr != nil {
		set.Groups = append(set.Groups, Group{Tier: TierCategory, Expr: expr})
	}

	// Tier 2b: modifier filters, each an independent AND-ed constraint.
	for _, mod := range q.Modifiers {
		if expr := modifierExpr(mod); expr != nil {
			set.Groups = append(set.Groups, Group{Tier: TierCategory, Expr: expr})
		}
	}

	// Tier 3: broad keyword fallback, suppressed by any identity or
	// category signal.
	if len(q.PlantMentions) == 0 && len(directHits) == 0 && len(q.Categories) == 0 {
		for _, expr := range b.keywordExprs(q.Keywords) {
			set.Groups = append(set.Groups, Group{Tier: TierKeyword, Expr: expr})
		}
	}

	return set
}

// beginnerPreferred mirrors the ranker's beginner bonus trigger: either
// the keyword itself or a detected beginner difficulty preference.
func beginnerPreferred(q *types.ProcessedQuery) bool {
	return q.HasKeyword("beginner") || q.Context.DifficultyPreference == "beginner"
}

func mentionExpr(mentions []string) Expr {
	if len(mentions) == 0 {
		return nil
	}
	group := make(Or, 0, len(mentions))
	for _, plant := range mentions {
		name := strings.ToLower(plant)
		group = append(group, Or{
			Cond{Field: FieldName, Op: OpEq, Value: name},
			Cond{Field: FieldName, Op: OpContains, Value: name},
			Cond{Field: FieldScientificName, Op: OpContains, Value: name},
		})
	}
	return group
}

// directNameHits scans the raw text for canonical names and aliases,
// returning matched canonical names in table order.
func (b *Builder) directNameHits(text string) []string {
	var hits []string
	for _, plant := range b.lex.Plants {
		if strings.Contains(text, plant.Name) {
			hits = append(hits, plant.Name)
			continue
		}
		for _, alias := range plant.Aliases {
			if strings.Contains(text, alias) {
				hits = append(hits, plant.Name)
				break
			}
		}
	}
	return hits
}

func directHitExpr(hits []string) Expr {
	if len(hits) == 0 {
		return nil
	}
	group := make(Or, 0, len(hits))
	for _, plant := range hits {
		name := strings.ToLower(plant)
		group = append(group, Or{
			Cond{Field: FieldName, Op: OpEq, Value: name},
			Cond{Field: FieldName, Op: OpContains, Value: name},
		})
	}
	return group
}

// categoryExpr maps each detected category tag to its field rule. Rules
// follow the catalog schema: "medicinal" tests the medicinal-properties
// column, "tree" tests a name substring or a height threshold, and so on.
func (b *Builder) categoryExpr(categories []string) Expr {
	if len(categories) == 0 {
		return nil
	}
	group := make(Or, 0, len(categories))
	for _, tag := range categories {
		switch tag {
		case lexicon.CategoryFruit:
			group = append(group, Or{
				Cond{Field: FieldName, Op: OpContains, Value: "fruit"},
				Cond{Field: FieldEcoBenefits, Op: OpContains, Value: "edible fruit"},
			})
		case lexicon.CategoryFlower:
			group = append(group, Cond{Field: FieldName, Op: OpContains, Value: "flower"})
		case lexicon.CategoryMedicinal:
			group = append(group, Cond{Field: FieldMedicinal, Op: OpNotEmpty})
		case lexicon.CategoryHerb:
			group = append(group, Cond{Field: FieldName, Op: OpContains, Value: "herb"})
		case lexicon.CategoryVegetable:
			group = append(group, Or{
				Cond{Field: FieldName, Op: OpContains, Value: "vegetable"},
				Cond{Field: FieldEcoBenefits, Op: OpContains, Value: "edible"},
			})
		case lexicon.CategorySucculent:
			group = append(group, Or{
				Cond{Field: FieldName, Op: OpContains, Value: "succulent"},
				Cond{Field: FieldClimate, Op: OpContains, Value: "arid"},
			})
		case lexicon.CategoryTree:
			group = append(group, Or{
				Cond{Field: FieldName, Op: OpContains, Value: "tree"},
				Cond{Field: FieldGrowthHeight, Op: OpGT, Value: 200.0},
			})
		case lexicon.CategoryClimber:
			group = append(group, Or{
				Cond{Field: FieldName, Op: OpContains, Value: "climber"},
				Cond{Field: FieldCare, Op: OpContains, Value: "climbing"},
			})
		case lexicon.CategoryAquatic:
			group = append(group, Or{
				Cond{Field: FieldName, Op: OpContains, Value: "aquatic"},
				Cond{Field: FieldClimate, Op: OpContains, Value: "water"},
			})
		case lexicon.CategoryAirPurifying:
			group = append(group, Cond{Field: FieldEcoBenefits, Op: OpContains, Value: "air purif"})
		}
	}
	if len(group) == 0 {
		return nil
	}
	return group
}

// modifierExpr maps one modifier to its filter. The all_seasons value and
// unmapped type values contribute nothing.
func modifierExpr(mod types.Modifier) Expr {
	switch mod.Type {
	case types.ModifierSeason:
		if mod.Value == "all_seasons" {
			return nil
		}
		return Or{
			Cond{Field: FieldSeason, Op: OpContains, Value: mod.Value},
			Cond{Field: FieldSeason, Op: OpEq, Value: mod.Value},
		}
	case types.ModifierDifficulty:
		return Cond{Field: FieldDifficulty, Op: OpEq, Value: mod.Value}
	case types.ModifierType:
		switch mod.Value {
		case "medicinal":
			return Cond{Field: FieldMedicinal, Op: OpNotEmpty}
		case "indoor":
			return Or{
				Cond{Field: FieldClimate, Op: OpContains, Value: "indoor"},
				Cond{Field: FieldCare, Op: OpContains, Value: "indoor"},
			}
		}
	}
	return nil
}

// keywordExprs builds one AND-ed group per significant keyword, scanning
// name, care instructions, and medicinal properties.
func (b *Builder) keywordExprs(keywords []string) []Expr {
	var exprs []Expr
	for _, kw := range keywords {
		if b.lex.IsGenericTerm(kw) {
			continue
		}
		exprs = append(exprs, Or{
			Cond{Field: FieldName, Op: OpContains, Value: kw},
			Cond{Field: FieldCare, Op: OpContains, Value: kw},
			Cond{Field: FieldMedicinal, Op: OpContains, Value: kw},
		})
		if len(exprs) == MaxFallbackKeywords {
			break
		}
	}
	return exprs
}
