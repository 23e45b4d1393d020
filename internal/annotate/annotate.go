package annotate

import (
	"context"
	"errors"

	"github.com/florafind/florasearch/pkg/types"
)

// Common errors
var (
	ErrEmptyText         = errors.New("text cannot be empty")
	ErrProviderFailed    = errors.New("annotation provider failed")
	ErrUnknownProvider   = errors.New("unknown annotation provider")
	ErrNoProviderEnabled = errors.New("no annotation provider configured")
)

// Annotator produces a normalized token stream for raw query text.
// Providers that reach an external linguistic service return lemma and
// part-of-speech per token; the local provider returns surface tokens
// only. Both satisfy the same downstream contract.
type Annotator interface {
	// Annotate tokenizes and annotates the given text.
	Annotate(ctx context.Context, text string) ([]types.Token, error)

	// Provider returns the provider name.
	Provider() string

	// Close releases any resources held by the annotator.
	Close() error
}

// ValidateText validates annotation input.
func ValidateText(text string) error {
	if text == "" {
		return ErrEmptyText
	}
	return nil
}
