// Package model defines the core domain models used throughout the application.
package model

import (
	"strings"
	"time"
)

// Item represents a single catalog entry available for selection and autocomplete.
type Item struct {
	CreatedAt time.Time
	Name      string // Canonical display text, e.g. "Light point"
	Category  string
	Unit      string
	Rate      float64
	Quantity  float64
	ID        int64
}

// NormalizeName returns the canonical lowercase form used for
// case-insensitive item identity.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NamesMatch reports whether two item names refer to the same item for
// suggestion purposes: case-insensitive containment in either direction.
func NamesMatch(a, b string) bool {
	na, nb := NormalizeName(a), NormalizeName(b)
	if na == "" || nb == "" {
		return false
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}
