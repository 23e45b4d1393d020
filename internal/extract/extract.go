// Package extract finds plant-name mentions, category tags, modifiers,
// care aspects, and context flags in a normalized query. Mentions and
// categories are substring-matched against the raw lower-cased text;
// modifiers and care aspects are exact-token matched against the lemma
// list, so "winterized" never triggers the winter season modifier.
package extract

import (
	"strings"

	"github.com/florafind/florasearch/internal/lexicon"
	"github.com/florafind/florasearch/pkg/types"
)

// Extractor pulls structured entities out of a query.
type Extractor struct {
	lex *lexicon.Lexicon
}

// New creates an Extractor backed by the given knowledge base.
func New(lex *lexicon.Lexicon) *Extractor {
	return &Extractor{lex: lex}
}

// Extract fills the entity, modifier, and context fields of a
// ProcessedQuery. Extraction never fails: absent signals produce empty
// slices, not errors.
func (e *Extractor) Extract(rawText string, tokens []types.Token) *types.ProcessedQuery {
	text := strings.ToLower(rawText)
	lemmas := lemmaSet(tokens)

	q := &types.ProcessedQuery{
		Original: rawText,
		Tokens:   tokens,
	}

	q.PlantMentions = e.plantMentions(text)
	q.Categories = e.categories(text)
	q.Modifiers = e.modifiers(lemmas)
	q.CareAspects = e.careAspects(lemmas)
	q.Keywords = e.keywords(tokens)
	q.Context = e.careContext(text)

	// A medicinal query always carries the medicinal type modifier, even
	// when the word arrived as a category trigger rather than a lemma.
	if q.HasCategory(lexicon.CategoryMedicinal) && !hasModifier(q.Modifiers, types.ModifierType, "medicinal") {
		q.Modifiers = append(q.Modifiers, types.Modifier{Type: types.ModifierType, Value: "medicinal"})
	}

	return q
}

// plantMentions returns canonical names whose name or any alias appears
// as a substring of the text. Deduplicated; order follows the alias
// table.
func (e *Extractor) plantMentions(text string) []string {
	var mentions []string
	for _, plant := range e.lex.Plants {
		if containsAny(text, append([]string{plant.Name}, plant.Aliases...)) {
			mentions = append(mentions, plant.Name)
		}
	}
	return mentions
}

// categories returns category tags triggered by substring keywords.
func (e *Extractor) categories(text string) []string {
	var tags []string
	for _, cat := range e.lex.Categories {
		if containsAny(text, cat.Keywords) {
			tags = append(tags, cat.Tag)
		}
	}
	return tags
}

// modifiers returns (type, value) pairs whose trigger terms appear as
// exact lemma tokens. Order reflects vocabulary iteration, not query
// order; ranking compensates.
func (e *Extractor) modifiers(lemmas map[string]bool) []types.Modifier {
	var mods []types.Modifier
	for _, set := range e.lex.Modifiers {
		for _, v := range set.Values {
			if tokenHit(lemmas, v.Terms) {
				mods = append(mods, types.Modifier{Type: set.Type, Value: v.Value})
			}
		}
	}
	return mods
}

func (e *Extractor) careAspects(lemmas map[string]bool) []string {
	var aspects []string
	for _, aspect := range e.lex.CareAspects {
		if tokenHit(lemmas, aspect.Terms) {
			aspects = append(aspects, aspect.Value)
		}
	}
	return aspects
}

// keywords returns the significant lemmas of the query. With annotation
// available only nouns, adjectives, and verbs that hit the vocabulary
// qualify; in degraded mode any non-stop word longer than two characters
// does.
func (e *Extractor) keywords(tokens []types.Token) []string {
	var kws []string
	seen := make(map[string]bool)
	for _, tok := range tokens {
		if tok.Stop || seen[tok.Lemma] {
			continue
		}
		var keep bool
		switch tok.POS {
		case types.POSUnknown:
			keep = len(tok.Lemma) > 2
		case types.POSNoun, types.POSAdj, types.POSVerb:
			keep = e.lex.IsVocabularyTerm(tok.Lemma) || len(tok.Lemma) > 2
		}
		if keep {
			kws = append(kws, tok.Lemma)
			seen[tok.Lemma] = true
		}
	}
	return kws
}

// careContext detects urgency, seasonality, preference, and problem flags
// via direct substring scans over fixed word lists, independent of the
// modifier vocabulary.
func (e *Extractor) careContext(text string) types.CareContext {
	ctx := types.CareContext{Urgency: "normal"}

	if containsAny(text, e.lex.UrgentWords) {
		ctx.Urgency = "high"
	}
	ctx.SeasonSpecific = containsAny(text, e.lex.SeasonalWords)

	if containsAny(text, []string{"easy", "beginner", "simple"}) {
		ctx.DifficultyPreference = "beginner"
	} else if containsAny(text, []string{"advanced", "expert", "difficult"}) {
		ctx.DifficultyPreference = "expert"
	}

	if containsAny(text, []string{"indoor", "inside", "house", "apartment"}) {
		ctx.LocationPreference = "indoor"
	} else if containsAny(text, []string{"outdoor", "garden", "yard", "balcony"}) {
		ctx.LocationPreference = "outdoor"
	}

	for _, w := range e.lex.ProblemWords {
		if strings.Contains(text, w) {
			ctx.ProblemIndicators = append(ctx.ProblemIndicators, w)
		}
	}

	return ctx
}

func hasModifier(mods []types.Modifier, typ, value string) bool {
	for _, m := range mods {
		if m.Type == typ && m.Value == value {
			return true
		}
	}
	return false
}

func lemmaSet(tokens []types.Token) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		if t.Stop {
			continue
		}
		set[t.Lemma] = true
		// Surface form too: the degraded tokenizer has identity lemmas,
		// and annotated plurals still trigger their surface term.
		set[t.Text] = true
		// Cheap plural fold so the degraded tokenizer still matches
		// singular trigger terms ("beginners" -> "beginner").
		if s := strings.TrimSuffix(t.Text, "s"); s != t.Text && len(s) > 3 {
			set[s] = true
		}
	}
	return set
}

func tokenHit(lemmas map[string]bool, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(term, " ") || strings.Contains(term, "-") {
			// Multi-word triggers cannot be a single token; skip rather
			// than silently substring-match.
			continue
		}
		if lemmas[term] {
			return true
		}
	}
	return false
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
