// Package types defines the shared data structures passed between the
// query-understanding pipeline stages: annotated tokens, the processed
// query, plant records returned by the retriever, and ranked results.
//
// All per-request values here are owned by a single request and carry no
// cross-request state. The pipeline creates them, the response assembler
// consumes them, and they are discarded with the response.
package types
