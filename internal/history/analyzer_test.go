package history

import (
	"testing"

	"github.com/voltquote/voltquote/internal/model"
)

func doc(names ...string) model.Document {
	items := make([]model.LineItem, len(names))
	for i, name := range names {
		items[i] = model.LineItem{Particular: name, Position: i}
	}
	return model.Document{Title: "test", Kind: model.KindQuote, Items: items}
}

func findFrequency(t *testing.T, freqs []ItemFrequency, item string) int {
	t.Helper()
	for _, f := range freqs {
		if f.Item == item {
			return f.Frequency
		}
	}
	return 0
}

func TestCoOccurringWith(t *testing.T) {
	documents := []model.Document{
		doc("Wire coil", "Switch", "MCB"),
		doc("Wire coil", "Switch", "Earthing"),
		doc("Light point", "Fan point"),
	}

	got := CoOccurringWith("wire coil", documents)

	if freq := findFrequency(t, got, "Switch"); freq != 2 {
		t.Errorf("Switch frequency = %d, want 2", freq)
	}
	if freq := findFrequency(t, got, "MCB"); freq != 1 {
		t.Errorf("MCB frequency = %d, want 1", freq)
	}
	// Items from documents without the anchor are absent
	if freq := findFrequency(t, got, "Light point"); freq != 0 {
		t.Errorf("Light point frequency = %d, want 0", freq)
	}
	// The anchor itself never appears
	if freq := findFrequency(t, got, "Wire coil"); freq != 0 {
		t.Errorf("anchor appeared in its own co-occurrence list")
	}
	// Sorted by frequency descending
	if len(got) == 0 || got[0].Item != "Switch" {
		t.Errorf("first entry = %+v, want Switch", got)
	}
}

func TestCoOccurringWith_EdgeCases(t *testing.T) {
	documents := []model.Document{
		doc("Wire coil", "Switch"),
		{Title: "empty", Kind: model.KindQuote}, // no items: skipped
	}

	tests := []struct {
		name     string
		itemName string
		docs     []model.Document
		wantLen  int
	}{
		{name: "blank anchor", itemName: "  ", docs: documents, wantLen: 0},
		{name: "no documents", itemName: "Wire coil", docs: nil, wantLen: 0},
		{name: "empty documents skipped", itemName: "Wire coil", docs: documents, wantLen: 1},
		{name: "anchor not present anywhere", itemName: "Geyser", docs: documents, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoOccurringWith(tt.itemName, tt.docs); len(got) != tt.wantLen {
				t.Errorf("got %d entries, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestFollowsAfter(t *testing.T) {
	documents := []model.Document{
		doc("Light point", "Fan point", "Plug point", "Switch board", "MCB"),
		doc("Light point", "Fan point", "Earthing"),
	}

	got := FollowsAfter("light point", documents, 3)

	// Fan point follows in both documents
	if freq := findFrequency(t, got, "Fan point"); freq != 2 {
		t.Errorf("Fan point frequency = %d, want 2", freq)
	}
	// Switch board is within the window of 3 in the first document
	if freq := findFrequency(t, got, "Switch board"); freq != 1 {
		t.Errorf("Switch board frequency = %d, want 1", freq)
	}
	// MCB is at offset 4, outside the window
	if freq := findFrequency(t, got, "MCB"); freq != 0 {
		t.Errorf("MCB frequency = %d, want 0 (outside window)", freq)
	}
	if len(got) == 0 || got[0].Item != "Fan point" {
		t.Errorf("first entry = %+v, want Fan point", got)
	}
}

func TestFollowsAfter_OrderingNotMembership(t *testing.T) {
	// Wire coil precedes the anchor, so it must not count as a follower.
	documents := []model.Document{
		doc("Wire coil", "Light point", "Fan point"),
	}

	got := FollowsAfter("Light point", documents, 3)
	if freq := findFrequency(t, got, "Wire coil"); freq != 0 {
		t.Errorf("Wire coil frequency = %d, want 0 (precedes anchor)", freq)
	}
	if freq := findFrequency(t, got, "Fan point"); freq != 1 {
		t.Errorf("Fan point frequency = %d, want 1", freq)
	}
}

func TestFollowsAfter_InvalidWindow(t *testing.T) {
	documents := []model.Document{doc("Light point", "Fan point")}
	if got := FollowsAfter("Light point", documents, 0); got != nil {
		t.Errorf("expected nil for window 0, got %v", got)
	}
}

func TestCommonItems(t *testing.T) {
	documents := []model.Document{
		doc("Light point", "Fan point"),
		doc("Light point", "Plug point"),
		doc("Light point", "Fan point", "Earthing"),
	}

	got := CommonItems(documents)

	if len(got) == 0 || got[0].Item != "Light point" || got[0].Frequency != 3 {
		t.Fatalf("first entry = %+v, want (Light point, 3)", got)
	}
	if freq := findFrequency(t, got, "Fan point"); freq != 2 {
		t.Errorf("Fan point frequency = %d, want 2", freq)
	}
}

func TestAnalyzer_PureRecomputation(t *testing.T) {
	documents := []model.Document{doc("Wire coil", "Switch")}

	first := CoOccurringWith("Wire coil", documents)

	// Mutating the input afterwards must not affect a fresh call's result
	documents = append(documents, doc("Wire coil", "Switch"))
	second := CoOccurringWith("Wire coil", documents)

	if findFrequency(t, first, "Switch") != 1 {
		t.Errorf("first call frequency = %d, want 1", findFrequency(t, first, "Switch"))
	}
	if findFrequency(t, second, "Switch") != 2 {
		t.Errorf("second call frequency = %d, want 2", findFrequency(t, second, "Switch"))
	}
}
