package search

import (
	"fmt"

	"github.com/florafind/florasearch/internal/lexicon"
	"github.com/florafind/florasearch/pkg/types"
)

// degradedSuggestions is the fixed fallback list used when the retriever
// itself fails and no query-derived bucket can be consulted.
var degradedSuggestions = []string{"tulsi", "neem", "rose", "mint", "aloe vera"}

const maxFollowUps = 4

// suggestionResponse builds the no-match branch: the bucket of the first
// modifier whose type/value pair maps to a curated list, else the
// generic list.
func (s *Service) suggestionResponse(query string, pq *types.ProcessedQuery) *Response {
	plants := s.lex.GenericSuggestions
	for _, mod := range pq.Modifiers {
		if bucket, ok := s.lex.SuggestionBuckets[mod.Type+"_"+mod.Value]; ok {
			plants = bucket
			break
		}
	}

	return &Response{
		Suggestions: &Suggestions{
			Message:    fmt.Sprintf("No plants found for %q. Here are some suggestions based on your search:", query),
			Plants:     plants,
			SearchTips: s.lex.SearchTips,
		},
		Analysis:  analysis(pq, 0),
		FollowUps: followUps(pq),
	}
}

// degradedResponse is the retrieval-failure branch: fixed suggestions,
// no query-derived curation.
func (s *Service) degradedResponse(query string, pq *types.ProcessedQuery) *Response {
	return &Response{
		Suggestions: &Suggestions{
			Message: fmt.Sprintf("Search is temporarily unavailable for %q. Try one of these:", query),
			Plants:  degradedSuggestions,
		},
		Analysis: analysis(pq, 0),
		Degraded: true,
	}
}

// followUps generates up to four follow-up question strings from the
// detected intent and the first plant mention.
func followUps(pq *types.ProcessedQuery) []string {
	var out []string

	switch pq.Intent {
	case lexicon.IntentWatering:
		out = append(out,
			"How often should I water in different seasons?",
			"What are signs of overwatering?",
			"Best time of day to water plants?")
	case lexicon.IntentPests:
		out = append(out,
			"Natural pest control methods?",
			"How to identify common plant pests?",
			"Preventive pest management tips?")
	case lexicon.IntentLight:
		out = append(out,
			"Low light indoor plants?",
			"How to provide adequate light indoors?",
			"Plants for south-facing windows?")
	}

	if len(pq.PlantMentions) > 0 {
		plant := pq.PlantMentions[0]
		out = append(out,
			fmt.Sprintf("When is %s blooming season?", plant),
			fmt.Sprintf("Common problems with %s?", plant),
			fmt.Sprintf("Best companion plants for %s?", plant))
	}

	if len(out) > maxFollowUps {
		out = out[:maxFollowUps]
	}
	return out
}
