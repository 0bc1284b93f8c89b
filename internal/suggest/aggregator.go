// Package suggest orchestrates next-item prediction: it fans a query out
// to the custom sequence, the pattern knowledge base, historical
// co-occurrence and catalog autocomplete, then merges the candidates into
// one deterministic ranked list.
package suggest

import (
	"fmt"

	"github.com/voltquote/voltquote/internal/autocomplete"
	"github.com/voltquote/voltquote/internal/history"
	"github.com/voltquote/voltquote/internal/knowledge"
	"github.com/voltquote/voltquote/internal/model"
	"github.com/voltquote/voltquote/internal/sequence"
)

// DefaultLimit is used when a query requests no explicit count.
// Callers typically ask for between 3 and 8 depending on UI context.
const DefaultLimit = 5

// Query carries one suggestion request. PartialText is whatever the user
// is currently typing; LastItem is the most recently committed draft item.
// Either may be empty, but not both.
type Query struct {
	PartialText string
	LastItem    string
	DraftItems  []string
	Catalog     []model.Item
	Documents   []model.Document
	Limit       int
}

// Aggregator combines all suggestion sources. Construct once at startup
// and share; it holds no per-query state.
type Aggregator struct {
	knowledge *knowledge.Base
	sequences *sequence.Store
	scoring   model.Scoring
}

// New creates an aggregator over the given sources.
func New(kb *knowledge.Base, sequences *sequence.Store, scoring model.Scoring) *Aggregator {
	return &Aggregator{
		knowledge: kb,
		sequences: sequences,
		scoring:   scoring,
	}
}

// Suggest returns the ranked suggestion list for a query. It never fails:
// inputs with nothing to suggest produce an empty list, and malformed
// documents are skipped by the analyzers.
func (a *Aggregator) Suggest(q Query) model.Suggestions {
	if model.NormalizeName(q.PartialText) == "" && model.NormalizeName(q.LastItem) == "" {
		return model.Suggestions{}
	}
	if len(q.Catalog) == 0 {
		return model.Suggestions{}
	}

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	exclude := make(map[string]bool, len(q.DraftItems))
	for _, item := range q.DraftItems {
		if key := model.NormalizeName(item); key != "" {
			exclude[key] = true
		}
	}

	var pool model.Suggestions

	// Custom sequence candidates enter the pool first and patterns are
	// damped while a sequence is active: the user's own ordering beats
	// the built-in rules.
	hasSequence := a.sequences != nil && a.sequences.HasSequence()
	if hasSequence {
		if q.LastItem != "" {
			pool = append(pool, a.sequences.GetNext(q.LastItem, 3)...)
		}
		if q.PartialText != "" {
			pool = append(pool, a.sequences.FindMatches(q.PartialText, 5)...)
		}
	}

	pool = append(pool, a.patternCandidates(q, exclude, hasSequence)...)
	pool = append(pool, a.historicalCandidates(q)...)
	pool = append(pool, a.commonCandidates(q)...)

	for _, name := range autocomplete.Complete(q.PartialText, q.Catalog, 5) {
		pool = append(pool, model.Suggestion{
			Text:       name,
			Confidence: a.scoring.AutocompleteConfidence,
			Source:     model.SourceAutocomplete,
			Reason:     "Catalog match",
		})
	}

	ranked := a.filterAndRank(pool, q, exclude)
	return ranked.TopN(limit)
}

func (a *Aggregator) patternCandidates(q Query, exclude map[string]bool, damped bool) model.Suggestions {
	if a.knowledge == nil {
		return nil
	}

	var candidates model.Suggestions
	if q.LastItem != "" {
		candidates = append(candidates, a.knowledge.Suggest(q.LastItem, exclude)...)
	}
	if q.PartialText != "" {
		candidates = append(candidates, a.knowledge.Suggest(q.PartialText, exclude)...)
	}

	if damped {
		for i := range candidates {
			candidates[i].Confidence *= a.scoring.PatternDamping
		}
	}
	return candidates
}

func (a *Aggregator) historicalCandidates(q Query) model.Suggestions {
	if q.LastItem == "" || len(q.Documents) == 0 {
		return nil
	}

	var candidates model.Suggestions
	for _, entry := range history.CoOccurringWith(q.LastItem, q.Documents) {
		if entry.Frequency < a.scoring.HistoricalMinFrequency {
			continue
		}
		candidates = append(candidates, model.Suggestion{
			Text:       entry.Item,
			Confidence: capped(float64(entry.Frequency)*a.scoring.HistoricalPerUse, a.scoring.HistoricalCap),
			Source:     model.SourceHistorical,
			Reason:     fmt.Sprintf("Used together %d times", entry.Frequency),
		})
	}

	// Directed ordering signal gets a small edge over co-membership.
	for _, entry := range history.FollowsAfter(q.LastItem, q.Documents, a.scoring.FollowWindow) {
		if entry.Frequency < a.scoring.HistoricalMinFrequency {
			continue
		}
		confidence := capped(
			float64(entry.Frequency)*a.scoring.HistoricalPerUse+a.scoring.HistoricalFollowsBonus,
			a.scoring.HistoricalCap,
		)
		candidates = append(candidates, model.Suggestion{
			Text:       entry.Item,
			Confidence: confidence,
			Source:     model.SourceHistorical,
			Reason:     fmt.Sprintf("Followed %s %d times", q.LastItem, entry.Frequency),
		})
	}

	return candidates
}

func (a *Aggregator) commonCandidates(q Query) model.Suggestions {
	if q.LastItem == "" || len(q.Documents) == 0 {
		return nil
	}

	var candidates model.Suggestions
	for _, entry := range history.CommonItems(q.Documents) {
		if entry.Frequency < a.scoring.HistoricalMinFrequency {
			continue
		}
		candidates = append(candidates, model.Suggestion{
			Text:       entry.Item,
			Confidence: capped(float64(entry.Frequency)*a.scoring.CommonPerUse, a.scoring.CommonCap),
			Source:     model.SourceCatalogCommon,
			Reason:     fmt.Sprintf("Used %d times overall", entry.Frequency),
		})
	}
	return candidates
}

// filterAndRank applies the exclusion rules, deduplicates across sources
// and sorts. Dedup keeps the occurrence with the higher source priority,
// then the higher confidence within equal priority.
func (a *Aggregator) filterAndRank(pool model.Suggestions, q Query, exclude map[string]bool) model.Suggestions {
	partialKey := model.NormalizeName(q.PartialText)
	lastKey := model.NormalizeName(q.LastItem)

	best := make(map[string]model.Suggestion)
	order := make([]string, 0, len(pool))

	for _, candidate := range pool {
		key := model.NormalizeName(candidate.Text)
		if key == "" || exclude[key] || key == partialKey || key == lastKey {
			continue
		}
		if candidate.Confidence < 0 {
			candidate.Confidence = 0
		}
		if candidate.Confidence > 1 {
			candidate.Confidence = 1
		}

		current, ok := best[key]
		if !ok {
			best[key] = candidate
			order = append(order, key)
			continue
		}
		if candidate.Source.Priority() > current.Source.Priority() ||
			(candidate.Source.Priority() == current.Source.Priority() && candidate.Confidence > current.Confidence) {
			best[key] = candidate
		}
	}

	result := make(model.Suggestions, 0, len(best))
	for _, key := range order {
		result = append(result, best[key])
	}
	result.Sort()
	return result
}

func capped(value, ceiling float64) float64 {
	if value > ceiling {
		return ceiling
	}
	return value
}
