package intent

import (
	"context"
	"testing"

	"github.com/florafind/florasearch/internal/annotate"
	"github.com/florafind/florasearch/internal/lexicon"
	"github.com/florafind/florasearch/pkg/types"
)

func tokenize(t *testing.T, text string) []types.Token {
	t.Helper()
	local, _ := annotate.NewLocalProvider()
	tokens, err := local.Annotate(context.Background(), text)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	return tokens
}

func TestClassifyWatering(t *testing.T) {
	c := New(lexicon.Default(), lexicon.IntentSearch)
	res := c.Classify("how often should I water my snake plant", tokenize(t, "how often should I water my snake plant"))
	if res.Label != lexicon.IntentWatering {
		t.Fatalf("intent = %s, want watering", res.Label)
	}
	if res.Confidence <= 0 || res.Confidence > 1 {
		t.Fatalf("confidence out of range: %v", res.Confidence)
	}
}

func TestClassifyBeginnerRecommendation(t *testing.T) {
	c := New(lexicon.Default(), lexicon.IntentSearch)
	res := c.Classify("suggest easy plants for beginners", tokenize(t, "suggest easy plants for beginners"))
	// "easy" and "beginner" hit the beginner set; "suggest" hits
	// recommendation. Either label is a defensible winner, but the score
	// math makes beginner win (2 exact hits vs 1).
	if res.Label != lexicon.IntentBeginner {
		t.Fatalf("intent = %s, want beginner", res.Label)
	}
}

func TestClassifyFallback(t *testing.T) {
	c := New(lexicon.Default(), lexicon.IntentGeneralInfo)
	res := c.Classify("zzz qqq", tokenize(t, "zzz qqq"))
	if res.Label != lexicon.IntentGeneralInfo {
		t.Fatalf("intent = %s, want general_info fallback", res.Label)
	}
	if res.Confidence != 0.5 {
		t.Fatalf("fallback confidence = %v, want 0.5", res.Confidence)
	}
}

func TestClassifySearchFallback(t *testing.T) {
	c := New(lexicon.Default(), "")
	res := c.Classify("zzz", tokenize(t, "zzz"))
	if res.Label != lexicon.IntentSearch {
		t.Fatalf("intent = %s, want search fallback", res.Label)
	}
}

func TestClassifyFuzzyNudge(t *testing.T) {
	// "irigation" is a typo for "irrigation"; no exact keyword matches,
	// so only the 0.5 fuzzy bonus can select watering.
	c := New(lexicon.Default(), lexicon.IntentSearch)
	res := c.Classify("irigation tips", tokenize(t, "irigation tips"))
	if res.Label != lexicon.IntentWatering {
		t.Fatalf("intent = %s, want watering via fuzzy match", res.Label)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := New(lexicon.Default(), lexicon.IntentSearch)
	query := "easy indoor medicinal herbs for summer"
	tokens := tokenize(t, query)

	first := c.Classify(query, tokens)
	for i := 0; i < 10; i++ {
		if got := c.Classify(query, tokens); got != first {
			t.Fatalf("classification not deterministic: %+v vs %+v", got, first)
		}
	}
}
