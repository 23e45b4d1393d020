package lexicon

import "testing"

func TestDefaultCanonicalNamesUnique(t *testing.T) {
	lex := Default()
	seen := make(map[string]bool)
	for _, p := range lex.Plants {
		if p.Name == "" {
			t.Fatal("empty canonical plant name")
		}
		if seen[p.Name] {
			t.Fatalf("duplicate canonical name %q", p.Name)
		}
		seen[p.Name] = true
	}
}

func TestDefaultIntentOrderDeterministic(t *testing.T) {
	// Equal-score ties break on slice order, so two loads must agree.
	a, b := Default(), Default()
	if len(a.Intents) != len(b.Intents) {
		t.Fatalf("intent counts differ: %d vs %d", len(a.Intents), len(b.Intents))
	}
	for i := range a.Intents {
		if a.Intents[i].Label != b.Intents[i].Label {
			t.Fatalf("intent order differs at %d: %s vs %s", i, a.Intents[i].Label, b.Intents[i].Label)
		}
	}
}

func TestDefaultTablesNonEmpty(t *testing.T) {
	lex := Default()
	if len(lex.Plants) == 0 || len(lex.Categories) == 0 || len(lex.Intents) == 0 {
		t.Fatal("knowledge base tables must not be empty")
	}
	for _, in := range lex.Intents {
		if len(in.Keywords) == 0 {
			t.Fatalf("intent %s has no keywords", in.Label)
		}
	}
	for _, set := range lex.Modifiers {
		for _, v := range set.Values {
			if len(v.Terms) == 0 {
				t.Fatalf("modifier %s/%s has no trigger terms", set.Type, v.Value)
			}
		}
	}
}

func TestIsVocabularyTerm(t *testing.T) {
	lex := Default()
	for _, term := range []string{"easy", "indoor", "summer", "watering", "herb"} {
		if !lex.IsVocabularyTerm(term) {
			t.Errorf("expected %q to be a vocabulary term", term)
		}
	}
	if lex.IsVocabularyTerm("xyzzy") {
		t.Error("xyzzy should not be a vocabulary term")
	}
}

func TestSuggestionBucketsResolve(t *testing.T) {
	lex := Default()
	for key, plants := range lex.SuggestionBuckets {
		if len(plants) == 0 {
			t.Errorf("bucket %s is empty", key)
		}
	}
	if len(lex.GenericSuggestions) == 0 {
		t.Fatal("generic suggestion list must not be empty")
	}
}
