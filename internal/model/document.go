package model

import "time"

// DocumentKind distinguishes quotes from bills.
type DocumentKind string

// Document kind constants.
const (
	KindQuote DocumentKind = "QUOTE"
	KindBill  DocumentKind = "BILL"
)

// LineItem is one row of a saved document: an item name plus the
// quantities the user entered for it.
type LineItem struct {
	Particular string // Item name as typed, e.g. "Light point"
	Unit       string
	Quantity   float64
	Rate       float64
	Position   int // 0-based order within the document
}

// Amount returns the line total.
func (li LineItem) Amount() float64 {
	return li.Quantity * li.Rate
}

// Document represents a previously saved quote or bill. Documents are
// immutable once fetched: the suggestion core reads them, never writes.
type Document struct {
	CreatedAt time.Time
	Title     string
	Customer  string
	Kind      DocumentKind
	Items     []LineItem
	ID        int64
}

// ItemNames returns the document's item names in saved order.
func (d Document) ItemNames() []string {
	names := make([]string, 0, len(d.Items))
	for _, li := range d.Items {
		names = append(names, li.Particular)
	}
	return names
}

// ContainsItem reports whether any line item matches name
// (case-insensitive containment, either direction).
func (d Document) ContainsItem(name string) bool {
	for _, li := range d.Items {
		if NamesMatch(li.Particular, name) {
			return true
		}
	}
	return false
}
