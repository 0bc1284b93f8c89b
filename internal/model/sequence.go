package model

import "strings"

// CustomSequence is the user's preferred item ordering: an ordered list of
// item names set once (manually or extracted from a reference document) and
// persisted across sessions. At most one is active at a time, app-wide.
type CustomSequence struct {
	Items []string `json:"items"`
}

// Normalize trims entries and drops empties, preserving order.
func (cs CustomSequence) Normalize() CustomSequence {
	items := make([]string, 0, len(cs.Items))
	for _, item := range cs.Items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return CustomSequence{Items: items}
}

// IsEmpty reports whether the sequence has no entries.
func (cs CustomSequence) IsEmpty() bool {
	return len(cs.Items) == 0
}

// IndexOf locates item in the sequence by case-insensitive containment in
// either direction. Returns -1 when not found.
func (cs CustomSequence) IndexOf(item string) int {
	for i, entry := range cs.Items {
		if NamesMatch(entry, item) {
			return i
		}
	}
	return -1
}

// SequenceCompletion reports how much of the custom sequence a draft
// document has covered.
type SequenceCompletion struct {
	NextRecommended Suggestions // Up to 3 uncompleted positions, in sequence order
	MissingItems    []string
	Completed       int
	Total           int
	Percentage      int // completed/total x 100, rounded
}
