package annotate

import (
	"fmt"
	"os"
	"strings"
)

// Environment variables for annotator selection.
const (
	EnvProvider   = "FLORASEARCH_ANNOTATOR"
	EnvServiceURL = "FLORASEARCH_ANNOTATOR_URL"
)

// Config holds annotator configuration.
type Config struct {
	Provider   string
	ServiceURL string
}

// NewFromEnv creates an annotator based on environment variables.
// Priority:
//  1. FLORASEARCH_ANNOTATOR (http, local)
//  2. FLORASEARCH_ANNOTATOR_URL set implies the HTTP provider
//  3. Default to the local degraded tokenizer
func NewFromEnv() (Annotator, error) {
	provider := os.Getenv(EnvProvider)
	serviceURL := os.Getenv(EnvServiceURL)

	if provider != "" {
		provider = strings.ToLower(provider)
		switch provider {
		case ProviderHTTP:
			return NewHTTPProvider(serviceURL)
		case ProviderLocal:
			return NewLocalProvider()
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
		}
	}

	if serviceURL != "" {
		return NewHTTPProvider(serviceURL)
	}

	return NewLocalProvider()
}

// New creates an annotator with explicit configuration.
func New(cfg Config) (Annotator, error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderHTTP:
		return NewHTTPProvider(cfg.ServiceURL)
	case ProviderLocal, "":
		return NewLocalProvider()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Provider)
	}
}
