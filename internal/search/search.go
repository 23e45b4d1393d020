// Package search orchestrates the query pipeline: normalize, classify,
// extract, build predicates, retrieve, rank, assemble. The pipeline is
// stateless per request; the only blocking step is the retriever call.
package search

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/abadojack/whatlanggo"

	"github.com/florafind/florasearch/internal/annotate"
	"github.com/florafind/florasearch/internal/extract"
	"github.com/florafind/florasearch/internal/intent"
	"github.com/florafind/florasearch/internal/lexicon"
	"github.com/florafind/florasearch/internal/normalize"
	"github.com/florafind/florasearch/internal/predicate"
	"github.com/florafind/florasearch/internal/ranker"
	"github.com/florafind/florasearch/internal/storage"
	"github.com/florafind/florasearch/pkg/types"
)

// Request is one search invocation.
type Request struct {
	Query string
	// UserContext is optional caller-supplied context (e.g. a session
	// hint). It participates in the cache key but not in scoring.
	UserContext string
	// Limit caps the number of ranked results; zero means no extra cap
	// beyond the retriever's own limit.
	Limit int
	// UseCache opts this request into the result cache, if the service
	// has one installed.
	UseCache bool
}

// Suggestions is the no-match / degraded branch of a response.
type Suggestions struct {
	Message    string   `json:"message"`
	Plants     []string `json:"suggestions"`
	SearchTips []string `json:"search_tips,omitempty"`
}

// Response is the outcome of one search. Exactly one of Results and
// Suggestions is populated. Responses are immutable once assembled.
type Response struct {
	Results     []types.RankedResult `json:"plants,omitempty"`
	Count       int                  `json:"count"`
	Suggestions *Suggestions         `json:"no_match,omitempty"`
	Analysis    types.Analysis       `json:"search_analysis"`
	FollowUps   []string             `json:"follow_up_suggestions,omitempty"`

	// Degraded is set when the retriever failed and the suggestions are
	// the fixed fallback list rather than a query-derived one.
	Degraded bool `json:"degraded,omitempty"`
	CacheHit bool `json:"-"`
}

// QueryLogger is an optional hook the caller installs to persist
// query/result-count pairs. The service itself persists nothing.
type QueryLogger func(query string, resultCount int)

// Service runs the search pipeline.
type Service struct {
	lex        *lexicon.Lexicon
	normalizer *normalize.Normalizer
	classifier *intent.Classifier
	extractor  *extract.Extractor
	builder    *predicate.Builder
	retriever  storage.Retriever
	ranker     *ranker.Ranker

	cache    *resultCache
	logger   *slog.Logger
	queryLog QueryLogger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger installs a structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithQueryLogger installs the caller's query-logging hook.
func WithQueryLogger(fn QueryLogger) Option {
	return func(s *Service) { s.queryLog = fn }
}

// WithCache enables the LRU result cache. Entries expire after ttl; the
// cache is consulted only for requests that set UseCache.
func WithCache(maxEntries int, ttl time.Duration) Option {
	return func(s *Service) { s.cache = newResultCache(maxEntries, ttl) }
}

// New creates a Service. The annotator may be nil, in which case the
// degraded tokenizer handles all queries.
func New(lex *lexicon.Lexicon, annotator annotate.Annotator, retriever storage.Retriever, opts ...Option) *Service {
	s := &Service{
		lex:        lex,
		normalizer: normalize.New(annotator, nil),
		classifier: intent.New(lex, lexicon.IntentSearch),
		extractor:  extract.New(lex),
		builder:    predicate.NewBuilder(lex),
		retriever:  retriever,
		ranker:     ranker.New(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search runs the full pipeline for one query. An empty query is
// rejected with types.ErrEmptyQuery before the retriever is invoked.
// Retriever failures produce a degraded suggestion response, not an
// error; every other stage has a deterministic fallback, so a non-empty
// query always completes with either results or suggestions.
func (s *Service) Search(ctx context.Context, req Request) (*Response, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, types.ErrEmptyQuery
	}

	if req.UseCache && s.cache != nil {
		if cached, ok := s.cache.get(query, req.UserContext, req.Limit); ok {
			s.logger.Debug("cache hit", "query", query)
			return cached, nil
		}
	}

	start := time.Now()

	// Language detection is observability only; non-English queries
	// still flow through the English vocabulary.
	info := whatlanggo.Detect(query)
	lang := whatlanggo.LangToString(info.Lang)

	tokens := s.normalizer.Normalize(ctx, query)
	classified := s.classifier.Classify(query, tokens)

	pq := s.extractor.Extract(query, tokens)
	pq.Language = lang
	pq.Intent = classified.Label
	pq.Confidence = classified.Confidence

	set := s.builder.Build(pq)

	candidates, err := s.retriever.Retrieve(ctx, set)
	if err != nil {
		s.logger.Error("retrieval failed", "query", query, "error", err)
		resp := s.degradedResponse(query, pq)
		s.logQuery(query, 0)
		return resp, nil
	}

	ranked := s.ranker.Rank(pq, candidates)
	if req.Limit > 0 && len(ranked) > req.Limit {
		ranked = ranked[:req.Limit]
	}

	var resp *Response
	if len(ranked) == 0 {
		resp = s.suggestionResponse(query, pq)
	} else {
		resp = &Response{
			Results:   ranked,
			Count:     len(ranked),
			Analysis:  analysis(pq, len(ranked)),
			FollowUps: followUps(pq),
		}
	}

	s.logger.Info("search completed",
		"query", query,
		"language", lang,
		"intent", pq.Intent,
		"results", resp.Count,
		"duration", time.Since(start))
	s.logQuery(query, resp.Count)

	if req.UseCache && s.cache != nil {
		s.cache.put(query, req.UserContext, req.Limit, resp)
	}

	return resp, nil
}

func (s *Service) logQuery(query string, count int) {
	if s.queryLog == nil {
		return
	}
	s.queryLog(query, count)
}

// analysis builds the transparency block attached to every response.
func analysis(pq *types.ProcessedQuery, total int) types.Analysis {
	return types.Analysis{
		Intent:            pq.Intent,
		Confidence:        pq.Confidence,
		PlantMentions:     pq.PlantMentions,
		Categories:        pq.Categories,
		CareAspects:       pq.CareAspects,
		Modifiers:         pq.Modifiers,
		ProblemIndicators: pq.Context.ProblemIndicators,
		Urgency:           pq.Context.Urgency,
		TotalResults:      total,
	}
}
