package types

// Part-of-speech values used by the pipeline. Annotation providers may
// emit a richer set; the degraded tokenizer always emits POSUnknown.
const (
	POSNoun    = "NOUN"
	POSVerb    = "VERB"
	POSAdj     = "ADJ"
	POSUnknown = "UNKNOWN"
)

// Token is a single normalized query token. In degraded mode Lemma equals
// Text and POS is POSUnknown; the downstream contract is unchanged.
type Token struct {
	Text  string
	Lemma string
	POS   string
	Stop  bool // stopword or punctuation; excluded from keyword extraction
}

// Modifier is a (type, value) qualifier extracted from the query,
// e.g. (season, summer) or (difficulty, beginner).
type Modifier struct {
	Type  string
	Value string
}

// Modifier types.
const (
	ModifierSeason     = "season"
	ModifierDifficulty = "difficulty"
	ModifierType       = "type"
	ModifierLocation   = "location"
)

// CareContext carries coarse context flags detected by direct word-list
// scans, independent of the modifier vocabulary.
type CareContext struct {
	Urgency              string   // "normal" or "high"
	SeasonSpecific       bool
	DifficultyPreference string   // "", "beginner", or "expert"
	LocationPreference   string   // "", "indoor", or "outdoor"
	ProblemIndicators    []string // subset of the fixed problem word list
}

// ProcessedQuery is the structured understanding of one raw query. It is
// produced by the normalizer, classifier, and extractor, consumed by the
// predicate builder and ranker, and discarded after response assembly.
type ProcessedQuery struct {
	Original   string
	Language   string // detected language code, logging only
	Tokens     []Token
	Intent     string
	Confidence float64

	// PlantMentions holds canonical plant names, deduplicated, in
	// alias-table iteration order.
	PlantMentions []string
	// Categories holds detected category tags; order is not significant.
	Categories  []string
	Modifiers   []Modifier
	CareAspects []string
	Keywords    []string
	Context     CareContext
}

// HasCategory reports whether tag was detected in the query.
func (q *ProcessedQuery) HasCategory(tag string) bool {
	for _, c := range q.Categories {
		if c == tag {
			return true
		}
	}
	return false
}

// HasKeyword reports whether the extracted keyword list contains kw.
func (q *ProcessedQuery) HasKeyword(kw string) bool {
	for _, k := range q.Keywords {
		if k == kw {
			return true
		}
	}
	return false
}

// FirstModifier returns the first extracted modifier of the given type,
// or ok=false if none was detected.
func (q *ProcessedQuery) FirstModifier(typ string) (Modifier, bool) {
	for _, m := range q.Modifiers {
		if m.Type == typ {
			return m, true
		}
	}
	return Modifier{}, false
}

// Lemmas returns the lemma list of non-stop tokens, preserving order.
func (q *ProcessedQuery) Lemmas() []string {
	lemmas := make([]string, 0, len(q.Tokens))
	for _, t := range q.Tokens {
		if t.Stop {
			continue
		}
		lemmas = append(lemmas, t.Lemma)
	}
	return lemmas
}
