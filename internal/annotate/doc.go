// Package annotate provides pluggable linguistic annotation for query
// text. The HTTP provider calls an external annotation service for lemma
// and part-of-speech tags; the local provider is the degraded-mode
// word-boundary tokenizer used when no service is configured or the
// service fails. Both produce the same token stream shape, so downstream
// stages never branch on which provider ran.
package annotate
