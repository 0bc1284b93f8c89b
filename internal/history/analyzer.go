// Package history derives co-occurrence and ordering statistics from the
// user's saved documents. Everything here is a pure function of its inputs:
// nothing is cached, each call recomputes from the document list it is
// given. Callers debounce invocation; see the draft TUI.
package history

import (
	"sort"

	"github.com/voltquote/voltquote/internal/model"
)

// ItemFrequency is one aggregated count: an item name (display form) and
// how often it was observed.
type ItemFrequency struct {
	Item      string
	Frequency int
}

// CoOccurringWith scans every document; for each document containing an
// item matching itemName (case-insensitive containment, either direction)
// it counts every other item name in that document. Results are sorted by
// frequency descending, then name for determinism. Documents without line
// items are skipped, not fatal.
func CoOccurringWith(itemName string, documents []model.Document) []ItemFrequency {
	if model.NormalizeName(itemName) == "" {
		return nil
	}

	counts := make(map[string]int)
	display := make(map[string]string)

	for _, doc := range documents {
		if len(doc.Items) == 0 {
			continue
		}
		if !doc.ContainsItem(itemName) {
			continue
		}
		for _, li := range doc.Items {
			if model.NamesMatch(li.Particular, itemName) {
				continue
			}
			key := model.NormalizeName(li.Particular)
			if key == "" {
				continue
			}
			counts[key]++
			if _, ok := display[key]; !ok {
				display[key] = li.Particular
			}
		}
	}

	return sortedFrequencies(counts, display)
}

// FollowsAfter captures ordering rather than co-membership: wherever
// itemName appears at index k in a document, the items at indices
// k+1 .. k+windowSize are counted. Used for "what comes right after X".
func FollowsAfter(itemName string, documents []model.Document, windowSize int) []ItemFrequency {
	if model.NormalizeName(itemName) == "" || windowSize < 1 {
		return nil
	}

	counts := make(map[string]int)
	display := make(map[string]string)

	for _, doc := range documents {
		if len(doc.Items) == 0 {
			continue
		}
		for k, li := range doc.Items {
			if !model.NamesMatch(li.Particular, itemName) {
				continue
			}
			for j := k + 1; j <= k+windowSize && j < len(doc.Items); j++ {
				follower := doc.Items[j].Particular
				if model.NamesMatch(follower, itemName) {
					continue
				}
				key := model.NormalizeName(follower)
				if key == "" {
					continue
				}
				counts[key]++
				if _, ok := display[key]; !ok {
					display[key] = follower
				}
			}
		}
	}

	return sortedFrequencies(counts, display)
}

// CommonItems aggregates overall item usage across every document, the
// weak fallback signal behind all the directed ones.
func CommonItems(documents []model.Document) []ItemFrequency {
	counts := make(map[string]int)
	display := make(map[string]string)

	for _, doc := range documents {
		for _, li := range doc.Items {
			key := model.NormalizeName(li.Particular)
			if key == "" {
				continue
			}
			counts[key]++
			if _, ok := display[key]; !ok {
				display[key] = li.Particular
			}
		}
	}

	return sortedFrequencies(counts, display)
}

func sortedFrequencies(counts map[string]int, display map[string]string) []ItemFrequency {
	result := make([]ItemFrequency, 0, len(counts))
	for key, freq := range counts {
		result = append(result, ItemFrequency{Item: display[key], Frequency: freq})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Frequency != result[j].Frequency {
			return result[i].Frequency > result[j].Frequency
		}
		return result[i].Item < result[j].Item
	})

	return result
}
