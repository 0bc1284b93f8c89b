// Package sequence manages the user's custom item sequence: one global
// ordered list of item names, persisted across sessions, used to predict
// what comes next while drafting.
package sequence

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"

	"github.com/voltquote/voltquote/internal/model"
	"github.com/voltquote/voltquote/internal/service"
)

// PersistenceKey is the single key the store reads and writes.
const PersistenceKey = "custom_sequence"

// Store holds the active custom sequence. Construct one at application
// start and inject it wherever suggestions are produced; the in-memory
// sequence is authoritative, the key-value store is best-effort durability.
type Store struct {
	kv       service.KeyValueStore
	scoring  model.Scoring
	sequence model.CustomSequence
}

// NewStore creates a sequence store and loads any persisted sequence.
// A corrupted persisted value is logged and treated as no sequence;
// callers never see a load error.
func NewStore(ctx context.Context, kv service.KeyValueStore, scoring model.Scoring) (*Store, error) {
	if err := scoring.Validate(); err != nil {
		return nil, err
	}

	s := &Store{
		kv:      kv,
		scoring: scoring,
	}

	payload, ok, err := kv.GetValue(ctx, PersistenceKey)
	if err != nil {
		slog.Warn("failed to load custom sequence, starting empty", "error", err)
		return s, nil
	}
	if !ok {
		return s, nil
	}

	var seq model.CustomSequence
	if err := json.Unmarshal([]byte(payload), &seq); err != nil {
		slog.Warn("corrupted custom sequence in store, starting empty", "error", err)
		return s, nil
	}

	s.sequence = seq.Normalize()
	slog.Debug("loaded custom sequence", "items", len(s.sequence.Items))
	return s, nil
}

// SetSequence replaces the active sequence wholesale: entries are trimmed,
// empties removed, and the result persisted. A persistence failure is
// logged, not returned - the in-memory sequence still takes effect for the
// session and the next SetSequence retries naturally.
func (s *Store) SetSequence(ctx context.Context, items []string) model.CustomSequence {
	s.sequence = model.CustomSequence{Items: items}.Normalize()

	payload, err := json.Marshal(s.sequence)
	if err != nil {
		slog.Error("failed to serialize custom sequence", "error", err)
		return s.sequence
	}
	if err := s.kv.SetValue(ctx, PersistenceKey, string(payload)); err != nil {
		slog.Error("failed to persist custom sequence", "error", err)
	}

	return s.sequence
}

// SetFromDocument extracts the sequence from a reference document's ordered
// item names.
func (s *Store) SetFromDocument(ctx context.Context, doc model.Document) model.CustomSequence {
	return s.SetSequence(ctx, doc.ItemNames())
}

// GetSequence returns the active sequence.
func (s *Store) GetSequence() model.CustomSequence {
	return s.sequence
}

// HasSequence reports whether a custom sequence is active.
func (s *Store) HasSequence() bool {
	return !s.sequence.IsEmpty()
}

// Clear removes both the in-memory and persisted sequence. Persistence
// failures are logged, not returned.
func (s *Store) Clear(ctx context.Context) {
	s.sequence = model.CustomSequence{}
	if err := s.kv.DeleteValue(ctx, PersistenceKey); err != nil {
		slog.Error("failed to clear persisted custom sequence", "error", err)
	}
}

// GetNext returns up to count entries following currentItem in the
// sequence. The item is located by case-insensitive containment in either
// direction; an unknown item yields an empty list.
func (s *Store) GetNext(currentItem string, count int) model.Suggestions {
	idx := s.sequence.IndexOf(currentItem)
	if idx < 0 || count <= 0 {
		return nil
	}

	var suggestions model.Suggestions
	for i := idx + 1; i < len(s.sequence.Items) && len(suggestions) < count; i++ {
		step := len(suggestions)
		confidence := math.Max(
			s.scoring.SequenceNextStart-float64(step)*s.scoring.SequenceNextDecay,
			s.scoring.SequenceNextFloor,
		)
		suggestions = append(suggestions, model.Suggestion{
			Text:       s.sequence.Items[i],
			Confidence: confidence,
			Source:     model.SourceCustomSequence,
			Reason:     fmt.Sprintf("Position %d in your sequence", i+1),
		})
	}
	return suggestions
}

// GetPrevious returns up to count entries preceding currentItem, nearest
// first, with a fixed confidence.
func (s *Store) GetPrevious(currentItem string, count int) model.Suggestions {
	idx := s.sequence.IndexOf(currentItem)
	if idx < 0 || count <= 0 {
		return nil
	}

	var suggestions model.Suggestions
	for i := idx - 1; i >= 0 && len(suggestions) < count; i-- {
		suggestions = append(suggestions, model.Suggestion{
			Text:       s.sequence.Items[i],
			Confidence: s.scoring.SequencePrevious,
			Source:     model.SourceCustomSequence,
			Reason:     fmt.Sprintf("Position %d in your sequence", i+1),
		})
	}
	return suggestions
}

// FindMatches searches the whole sequence for entries matching searchTerm:
// exact matches score SequenceExactMatch, substring matches
// SequencePartialMatch.
func (s *Store) FindMatches(searchTerm string, maxResults int) model.Suggestions {
	normalized := model.NormalizeName(searchTerm)
	if normalized == "" || maxResults <= 0 {
		return nil
	}

	var suggestions model.Suggestions
	for i, entry := range s.sequence.Items {
		if len(suggestions) >= maxResults {
			break
		}
		if !model.NamesMatch(entry, searchTerm) {
			continue
		}
		confidence := s.scoring.SequencePartialMatch
		if model.NormalizeName(entry) == normalized {
			confidence = s.scoring.SequenceExactMatch
		}
		suggestions = append(suggestions, model.Suggestion{
			Text:       entry,
			Confidence: confidence,
			Source:     model.SourceCustomSequence,
			Reason:     fmt.Sprintf("Position %d in your sequence", i+1),
		})
	}
	return suggestions
}

// GetCompletion reports how much of the sequence the draft covers. A
// position counts as completed when any draft item matches it
// (case-insensitive containment, either direction).
func (s *Store) GetCompletion(draftItems []string) model.SequenceCompletion {
	total := len(s.sequence.Items)
	completion := model.SequenceCompletion{Total: total}
	if total == 0 {
		return completion
	}

	for i, entry := range s.sequence.Items {
		completed := false
		for _, draft := range draftItems {
			if model.NamesMatch(entry, draft) {
				completed = true
				break
			}
		}

		if completed {
			completion.Completed++
			continue
		}

		completion.MissingItems = append(completion.MissingItems, entry)
		if len(completion.NextRecommended) < 3 {
			completion.NextRecommended = append(completion.NextRecommended, model.Suggestion{
				Text:       entry,
				Confidence: s.scoring.SequenceRecommended,
				Source:     model.SourceCustomSequence,
				Reason:     fmt.Sprintf("Position %d in your sequence", i+1),
			})
		}
	}

	completion.Percentage = int(math.Round(float64(completion.Completed) / float64(total) * 100))
	return completion
}
