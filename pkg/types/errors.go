package types

import "errors"

// Error taxonomy for the search pipeline.
var (
	// ErrEmptyQuery is returned when the query is empty after trimming.
	// Surfaced to the caller as a rejected request; the retriever is
	// never invoked.
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrRetrieval wraps candidate retriever failures (connectivity,
	// malformed predicate). The service converts it into a degraded
	// suggestion response rather than a crash.
	ErrRetrieval = errors.New("candidate retrieval failed")

	// ErrAnnotationUnavailable indicates the optional linguistic
	// annotation service is missing or failed. Recovered locally by the
	// degraded tokenizer and never surfaced to callers.
	ErrAnnotationUnavailable = errors.New("annotation service unavailable")
)
