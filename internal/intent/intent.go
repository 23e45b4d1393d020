// Package intent scores a query against the intent keyword sets and picks
// the best label. Exact substring hits count 1, fuzzy token hits count
// 0.5; the fuzzy bonus is a secondary nudge, never a primary signal.
package intent

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/florafind/florasearch/internal/lexicon"
	"github.com/florafind/florasearch/pkg/types"
)

// FuzzyThreshold is the partial-ratio score (0-100) a token must exceed
// against a keyword to earn the 0.5 fuzzy bonus.
const FuzzyThreshold = 80

// Result is a classified intent with its confidence.
type Result struct {
	Label      string
	Confidence float64
}

// Classifier assigns an intent label to a processed query.
type Classifier struct {
	lex *lexicon.Lexicon
	// fallback is returned with confidence 0.5 when no intent scores
	// above zero. The conversational entry point uses general_info, the
	// plain search entry point uses search.
	fallback string
}

// New creates a Classifier with the given zero-score fallback label.
func New(lex *lexicon.Lexicon, fallback string) *Classifier {
	if fallback == "" {
		fallback = lexicon.IntentSearch
	}
	return &Classifier{lex: lex, fallback: fallback}
}

// Classify scores every intent keyword set against the raw lower-cased
// text and the token stream. Ties break on table order, which is
// deterministic by construction.
func (c *Classifier) Classify(rawText string, tokens []types.Token) Result {
	text := strings.ToLower(rawText)

	best := Result{Label: c.fallback, Confidence: 0.5}
	bestScore := 0.0

	for _, set := range c.lex.Intents {
		score := c.scoreIntent(text, tokens, set)
		if score > bestScore {
			bestScore = score
			best = Result{
				Label:      set.Label,
				Confidence: confidence(score, len(set.Keywords)),
			}
		}
	}

	return best
}

func (c *Classifier) scoreIntent(text string, tokens []types.Token, set lexicon.IntentSet) float64 {
	score := 0.0
	for _, kw := range set.Keywords {
		if strings.Contains(text, kw) {
			score++
			// An exact hit already counted; the fuzzy pass below would
			// only double count the same keyword.
			continue
		}
		if fuzzyTokenHit(kw, tokens) {
			score += 0.5
		}
	}
	return score
}

// fuzzyTokenHit reports whether any non-stop token scores above the
// threshold against the keyword under partial-ratio similarity.
func fuzzyTokenHit(keyword string, tokens []types.Token) bool {
	for _, tok := range tokens {
		if tok.Stop {
			continue
		}
		if fuzzy.PartialRatio(keyword, tok.Text) > FuzzyThreshold {
			return true
		}
	}
	return false
}

func confidence(score float64, keywordCount int) float64 {
	if keywordCount == 0 {
		return 0
	}
	conf := score / float64(keywordCount)
	if conf > 1.0 {
		conf = 1.0
	}
	return conf
}
