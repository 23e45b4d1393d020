package lexicon

// PlantAlias maps a canonical plant name to its known aliases (common
// names, scientific names, frequent misspellings). Alias lists may overlap
// across plants when genuinely ambiguous; ranking resolves the ambiguity,
// not the table.
type PlantAlias struct {
	Name    string
	Aliases []string
}

// CategorySet maps a category tag to its trigger keywords. Triggers are
// matched as substrings of the lower-cased query text.
type CategorySet struct {
	Tag      string
	Keywords []string
}

// IntentSet maps an intent label to its trigger keywords. The slice order
// of intents is the tie-break order for equal scores, so it must stay
// deterministic.
type IntentSet struct {
	Label    string
	Keywords []string
}

// ModifierValue maps one modifier value to its trigger terms. Triggers are
// matched as exact tokens against the lemma list, never as substrings.
type ModifierValue struct {
	Value string
	Terms []string
}

// ModifierSet groups the values of one modifier type (season, difficulty,
// type).
type ModifierSet struct {
	Type   string
	Values []ModifierValue
}

// Lexicon is the compiled-in knowledge base. It is built once at startup,
// injected into each pipeline component, and never mutated afterwards, so
// unsynchronized concurrent reads are safe.
type Lexicon struct {
	Plants     []PlantAlias
	Categories []CategorySet
	Intents    []IntentSet
	Modifiers  []ModifierSet

	// CareAspects is the care_type vocabulary: aspect label to exact-token
	// trigger terms.
	CareAspects []ModifierValue

	// Word lists for care-context detection, matched as substrings.
	UrgentWords   []string
	SeasonalWords []string
	ProblemWords  []string

	// GenericTerms are excluded from the tier-3 keyword fallback.
	GenericTerms []string

	// Suggestion buckets for the no-match response, keyed by
	// "<modifierType>_<value>", plus the generic default list.
	SuggestionBuckets  map[string][]string
	GenericSuggestions []string
	SearchTips         []string
}

// CanonicalNames returns the canonical plant names in table order.
func (l *Lexicon) CanonicalNames() []string {
	names := make([]string, len(l.Plants))
	for i, p := range l.Plants {
		names[i] = p.Name
	}
	return names
}

// IsGenericTerm reports whether the keyword is too generic to filter on.
func (l *Lexicon) IsGenericTerm(kw string) bool {
	for _, g := range l.GenericTerms {
		if g == kw {
			return true
		}
	}
	return false
}

// IsVocabularyTerm reports whether the lemma appears anywhere in the
// modifier, care-aspect, or category vocabularies.
func (l *Lexicon) IsVocabularyTerm(lemma string) bool {
	for _, set := range l.Modifiers {
		for _, v := range set.Values {
			for _, t := range v.Terms {
				if t == lemma {
					return true
				}
			}
		}
	}
	for _, aspect := range l.CareAspects {
		for _, t := range aspect.Terms {
			if t == lemma {
				return true
			}
		}
	}
	for _, cat := range l.Categories {
		for _, kw := range cat.Keywords {
			if kw == lemma {
				return true
			}
		}
	}
	return false
}
