package autocomplete

import (
	"testing"

	"github.com/voltquote/voltquote/internal/model"
)

func catalog(names ...string) []model.Item {
	items := make([]model.Item, len(names))
	for i, name := range names {
		items[i] = model.Item{Name: name}
	}
	return items
}

func TestComplete(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		catalog []model.Item
		limit   int
		want    []string
	}{
		{
			name:    "prefix match",
			prefix:  "lig",
			catalog: catalog("Light point", "Plug point"),
			limit:   5,
			want:    []string{"Light point"},
		},
		{
			name:    "case insensitive",
			prefix:  "LIG",
			catalog: catalog("light point"),
			limit:   5,
			want:    []string{"light point"},
		},
		{
			name:    "catalog order preserved",
			prefix:  "p",
			catalog: catalog("Plug point", "Power plug point 16A", "PVC conduit", "Light point"),
			limit:   5,
			want:    []string{"Plug point", "Power plug point 16A", "PVC conduit"},
		},
		{
			name:    "limit truncates",
			prefix:  "p",
			catalog: catalog("Plug point", "Power plug point 16A", "PVC conduit"),
			limit:   2,
			want:    []string{"Plug point", "Power plug point 16A"},
		},
		{
			name:    "duplicates removed",
			prefix:  "light",
			catalog: catalog("Light point", "LIGHT POINT", "Light fitting"),
			limit:   5,
			want:    []string{"Light point", "Light fitting"},
		},
		{
			name:    "empty prefix yields nothing",
			prefix:  "",
			catalog: catalog("Light point"),
			limit:   5,
			want:    nil,
		},
		{
			name:    "whitespace prefix yields nothing",
			prefix:  "   ",
			catalog: catalog("Light point"),
			limit:   5,
			want:    nil,
		},
		{
			name:    "substring but not prefix does not match",
			prefix:  "point",
			catalog: catalog("Light point"),
			limit:   5,
			want:    nil,
		},
		{
			name:    "zero limit falls back to default",
			prefix:  "i",
			catalog: catalog("Item 1", "Item 2", "Item 3", "Item 4", "Item 5", "Item 6", "Item 7"),
			limit:   0,
			want:    []string{"Item 1", "Item 2", "Item 3", "Item 4", "Item 5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Complete(tt.prefix, tt.catalog, tt.limit)
			if len(got) != len(tt.want) {
				t.Fatalf("Complete() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("result %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
