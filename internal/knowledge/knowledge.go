// Package knowledge provides the static domain rule base used for
// next-item prediction: named installation sequences keyed by trigger phrases.
package knowledge

import (
	"fmt"

	"github.com/voltquote/voltquote/internal/model"
)

// Base holds the validated pattern table. It is pure lookup: loaded once,
// never mutated.
type Base struct {
	patterns []model.Pattern
	scoring  model.Scoring
}

// NewBase creates a knowledge base from the given patterns, validating
// every entry up front.
func NewBase(patterns []model.Pattern, scoring model.Scoring) (*Base, error) {
	if err := scoring.Validate(); err != nil {
		return nil, err
	}
	for i := range patterns {
		if err := patterns[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid pattern at index %d: %w", i, err)
		}
	}

	return &Base{
		patterns: patterns,
		scoring:  scoring,
	}, nil
}

// PatternCount returns the number of loaded patterns.
func (b *Base) PatternCount() int {
	return len(b.patterns)
}

// MatchTriggers returns every pattern whose trigger set matches text:
// case-insensitive containment in either direction. All matching patterns
// contribute candidates; an empty match is an empty slice, not an error.
func (b *Base) MatchTriggers(text string) []model.Pattern {
	var matched []model.Pattern
	for _, p := range b.patterns {
		if p.MatchesTrigger(text) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Expand walks the pattern's sequence in order, skipping items already in
// exclude (keys are normalized names). Confidence decays with position in
// the filtered output, floored so late entries keep a usable score:
//
//	confidence = BaseConfidence x max(1 - i x PatternDecay, PatternFloor)
func (b *Base) Expand(pattern model.Pattern, exclude map[string]bool) model.Suggestions {
	var suggestions model.Suggestions
	for _, item := range pattern.Sequence {
		if exclude[model.NormalizeName(item)] {
			continue
		}
		i := len(suggestions)
		multiplier := 1.0 - float64(i)*b.scoring.PatternDecay
		if multiplier < b.scoring.PatternFloor {
			multiplier = b.scoring.PatternFloor
		}
		suggestions = append(suggestions, model.Suggestion{
			Text:       item,
			Confidence: pattern.BaseConfidence * multiplier,
			Source:     model.SourcePattern,
			Reason:     fmt.Sprintf("Step %d of %s", i+1, pattern.Name),
		})
	}
	return suggestions
}

// Suggest matches triggers against text and expands every hit.
func (b *Base) Suggest(text string, exclude map[string]bool) model.Suggestions {
	var suggestions model.Suggestions
	for _, pattern := range b.MatchTriggers(text) {
		suggestions = append(suggestions, b.Expand(pattern, exclude)...)
	}
	return suggestions
}
