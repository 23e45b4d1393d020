// Package normalize turns raw query text into the token stream the rest
// of the pipeline consumes. Annotation failures are absorbed here: the
// degraded word-boundary tokenizer always produces a usable stream, so a
// normalization call never fails for non-empty input.
package normalize

import (
	"context"
	"log/slog"
	"strings"

	"github.com/florafind/florasearch/internal/annotate"
	"github.com/florafind/florasearch/pkg/types"
)

// Normalizer lower-cases and tokenizes query text, annotating tokens via
// the configured provider when one is available.
type Normalizer struct {
	annotator annotate.Annotator
	fallback  *annotate.LocalProvider
	logger    *slog.Logger
}

// New creates a Normalizer. A nil annotator means degraded mode only.
func New(annotator annotate.Annotator, logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	fallback, _ := annotate.NewLocalProvider()
	return &Normalizer{
		annotator: annotator,
		fallback:  fallback,
		logger:    logger,
	}
}

// Normalize produces the token stream for text. The caller is responsible
// for rejecting empty input before calling; Normalize itself treats an
// empty stream as a valid (if useless) result.
func (n *Normalizer) Normalize(ctx context.Context, text string) []types.Token {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return nil
	}

	if n.annotator != nil {
		tokens, err := n.annotator.Annotate(ctx, text)
		if err == nil {
			return tokens
		}
		// AnnotationUnavailable: recover locally, log, never surface.
		n.logger.Warn("annotation service unavailable, using degraded tokenizer",
			"provider", n.annotator.Provider(), "err", err)
	}

	tokens, err := n.fallback.Annotate(ctx, text)
	if err != nil {
		// Only possible for empty text, which was handled above.
		return nil
	}
	return tokens
}
