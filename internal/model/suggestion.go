package model

import (
	"fmt"
	"sort"
)

// SuggestionSource identifies which signal produced a suggestion.
type SuggestionSource string

// Suggestion source constants, strongest signal first.
const (
	SourceCustomSequence SuggestionSource = "custom-sequence"
	SourcePattern        SuggestionSource = "pattern"
	SourceHistorical     SuggestionSource = "historical"
	SourceCatalogCommon  SuggestionSource = "catalog-common"
	SourceAutocomplete   SuggestionSource = "autocomplete"
)

// sourcePriority orders sources for ranking and deduplication. Higher wins.
// catalog-common and autocomplete share the lowest tier.
var sourcePriority = map[SuggestionSource]int{
	SourceCustomSequence: 4,
	SourcePattern:        3,
	SourceHistorical:     2,
	SourceCatalogCommon:  1,
	SourceAutocomplete:   1,
}

// Priority returns the ranking tier for a source. Unknown sources rank last.
func (s SuggestionSource) Priority() int {
	return sourcePriority[s]
}

// Suggestion is a single next-item candidate. Suggestions are transient:
// constructed fresh per query, never persisted.
type Suggestion struct {
	Text       string
	Reason     string // Human-readable provenance, e.g. "Used together 3 times"
	Source     SuggestionSource
	Confidence float64
}

// Validate ensures the suggestion has valid data.
func (s *Suggestion) Validate() error {
	if s.Text == "" {
		return fmt.Errorf("suggestion text is required")
	}
	if s.Confidence < 0.0 || s.Confidence > 1.0 {
		return fmt.Errorf("confidence must be between 0.0 and 1.0, got %.2f", s.Confidence)
	}
	if s.Source.Priority() == 0 {
		return fmt.Errorf("unknown suggestion source %q", s.Source)
	}
	return nil
}

// Suggestions is a slice of Suggestion that supports ranking and utility methods.
type Suggestions []Suggestion

// Len implements sort.Interface.
func (s Suggestions) Len() int {
	return len(s)
}

// Less implements sort.Interface - higher source priority first, then
// higher confidence, then text for stable deterministic output.
func (s Suggestions) Less(i, j int) bool {
	pi, pj := s[i].Source.Priority(), s[j].Source.Priority()
	if pi != pj {
		return pi > pj
	}
	if s[i].Confidence != s[j].Confidence {
		return s[i].Confidence > s[j].Confidence
	}
	return s[i].Text < s[j].Text
}

// Swap implements sort.Interface.
func (s Suggestions) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// Sort orders the suggestions by priority then confidence, descending.
func (s Suggestions) Sort() {
	sort.Stable(s)
}

// TopN returns the N highest-ranked suggestions.
func (s Suggestions) TopN(n int) Suggestions {
	if n <= 0 {
		return Suggestions{}
	}
	s.Sort()
	if n > len(s) {
		n = len(s)
	}
	result := make(Suggestions, n)
	copy(result, s[:n])
	return result
}

// Validate ensures all suggestions are valid and no two share a
// case-insensitive text.
func (s Suggestions) Validate() error {
	seen := make(map[string]bool)
	for i := range s {
		if err := s[i].Validate(); err != nil {
			return fmt.Errorf("invalid suggestion at index %d: %w", i, err)
		}
		key := NormalizeName(s[i].Text)
		if seen[key] {
			return fmt.Errorf("duplicate suggestion text %q", s[i].Text)
		}
		seen[key] = true
	}
	return nil
}
