package model

import "fmt"

// Scoring collects every heuristic constant used to score suggestions, so
// ranking behavior is tunable and testable as a single unit. All sources
// consume the same instance; confidences stay within [0, 1].
type Scoring struct {
	// Pattern knowledge base
	PatternDecay   float64 // Per-position confidence decay while expanding a sequence
	PatternFloor   float64 // Lower bound on the decay multiplier
	PatternDamping float64 // Applied to pattern confidences when a custom sequence is active

	// Custom sequence
	SequenceNextStart    float64 // Confidence of the first following entry
	SequenceNextDecay    float64 // Per-entry decay for subsequent entries
	SequenceNextFloor    float64 // Absolute confidence floor for following entries
	SequencePrevious     float64 // Fixed confidence for preceding entries
	SequenceExactMatch   float64 // findMatches confidence for exact matches
	SequencePartialMatch float64 // findMatches confidence for substring matches
	SequenceRecommended  float64 // Confidence for completion nextRecommended entries

	// Historical co-occurrence
	HistoricalPerUse       float64 // Confidence contributed per observed co-occurrence
	HistoricalCap          float64 // Upper bound on historical confidence
	HistoricalFollowsBonus float64 // Edge given to directed follows-after hits
	HistoricalMinFrequency int     // Weaker signals are discarded
	FollowWindow           int     // Items after the anchor counted by FollowsAfter

	// Catalog-common fallback
	CommonPerUse float64
	CommonCap    float64

	// Autocomplete
	AutocompleteConfidence float64
}

// DefaultScoring returns the standard scoring constants.
func DefaultScoring() Scoring {
	return Scoring{
		PatternDecay:   0.1,
		PatternFloor:   0.5,
		PatternDamping: 0.7,

		SequenceNextStart:    0.9,
		SequenceNextDecay:    0.1,
		SequenceNextFloor:    0.5,
		SequencePrevious:     0.7,
		SequenceExactMatch:   1.0,
		SequencePartialMatch: 0.8,
		SequenceRecommended:  0.9,

		HistoricalPerUse:       0.1,
		HistoricalCap:          0.8,
		HistoricalFollowsBonus: 0.05,
		HistoricalMinFrequency: 2,
		FollowWindow:           3,

		CommonPerUse: 0.05,
		CommonCap:    0.5,

		AutocompleteConfidence: 0.6,
	}
}

// Validate ensures every constant is in a sane range.
func (s Scoring) Validate() error {
	unit := map[string]float64{
		"PatternDecay":           s.PatternDecay,
		"PatternFloor":           s.PatternFloor,
		"PatternDamping":         s.PatternDamping,
		"SequenceNextStart":      s.SequenceNextStart,
		"SequenceNextDecay":      s.SequenceNextDecay,
		"SequenceNextFloor":      s.SequenceNextFloor,
		"SequencePrevious":       s.SequencePrevious,
		"SequenceExactMatch":     s.SequenceExactMatch,
		"SequencePartialMatch":   s.SequencePartialMatch,
		"SequenceRecommended":    s.SequenceRecommended,
		"HistoricalPerUse":       s.HistoricalPerUse,
		"HistoricalCap":          s.HistoricalCap,
		"HistoricalFollowsBonus": s.HistoricalFollowsBonus,
		"CommonPerUse":           s.CommonPerUse,
		"CommonCap":              s.CommonCap,
		"AutocompleteConfidence": s.AutocompleteConfidence,
	}
	for name, v := range unit {
		if v < 0.0 || v > 1.0 {
			return fmt.Errorf("scoring constant %s must be between 0.0 and 1.0, got %.2f", name, v)
		}
	}
	if s.HistoricalMinFrequency < 1 {
		return fmt.Errorf("HistoricalMinFrequency must be at least 1, got %d", s.HistoricalMinFrequency)
	}
	if s.FollowWindow < 1 {
		return fmt.Errorf("FollowWindow must be at least 1, got %d", s.FollowWindow)
	}
	return nil
}
