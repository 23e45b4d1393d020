package normalize

import (
	"context"
	"errors"
	"testing"

	"github.com/florafind/florasearch/pkg/types"
)

// failingAnnotator always errors, forcing the degraded path.
type failingAnnotator struct{}

func (f *failingAnnotator) Annotate(ctx context.Context, text string) ([]types.Token, error) {
	return nil, errors.New("service down")
}

func (f *failingAnnotator) Provider() string { return "failing" }
func (f *failingAnnotator) Close() error     { return nil }

func TestNormalizeFallsBackSilently(t *testing.T) {
	n := New(&failingAnnotator{}, nil)

	tokens := n.Normalize(context.Background(), "Watering Roses")
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2", len(tokens))
	}
	if tokens[0].Text != "watering" || tokens[1].Text != "roses" {
		t.Errorf("unexpected tokens: %+v", tokens)
	}
}

func TestNormalizeWithoutAnnotator(t *testing.T) {
	n := New(nil, nil)

	tokens := n.Normalize(context.Background(), "  Easy indoor plants  ")
	want := []string{"easy", "indoor", "plants"}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, w := range want {
		if tokens[i].Text != w {
			t.Errorf("token %d = %q, want %q", i, tokens[i].Text, w)
		}
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	n := New(nil, nil)
	if got := n.Normalize(context.Background(), "   "); got != nil {
		t.Fatalf("expected nil token stream for blank input, got %v", got)
	}
}
