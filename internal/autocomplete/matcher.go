// Package autocomplete matches free text against the item catalog.
package autocomplete

import (
	"strings"

	"github.com/voltquote/voltquote/internal/model"
)

// DefaultLimit caps results when the caller passes no limit.
const DefaultLimit = 5

// Complete returns catalog item names starting with prefix
// (case-insensitive), deduplicated, in catalog order, truncated to limit.
// A blank prefix returns nothing: completing against an empty box would
// flood the UI with the entire catalog.
func Complete(prefix string, catalog []model.Item, limit int) []string {
	normalized := model.NormalizeName(prefix)
	if normalized == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	seen := make(map[string]bool)
	var results []string
	for _, item := range catalog {
		if len(results) >= limit {
			break
		}
		key := model.NormalizeName(item.Name)
		if key == "" || seen[key] {
			continue
		}
		if strings.HasPrefix(key, normalized) {
			seen[key] = true
			results = append(results, item.Name)
		}
	}

	return results
}
