package sequence

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/voltquote/voltquote/internal/model"
)

// fakeKV is an in-memory KeyValueStore with injectable failures.
type fakeKV struct {
	values     map[string]string
	failWrites bool
	failReads  bool
}

func newFakeKV() *fakeKV {
	return &fakeKV{values: make(map[string]string)}
}

func (f *fakeKV) GetValue(_ context.Context, key string) (string, bool, error) {
	if f.failReads {
		return "", false, errors.New("kv read failure")
	}
	value, ok := f.values[key]
	return value, ok, nil
}

func (f *fakeKV) SetValue(_ context.Context, key, value string) error {
	if f.failWrites {
		return errors.New("kv write failure")
	}
	f.values[key] = value
	return nil
}

func (f *fakeKV) DeleteValue(_ context.Context, key string) error {
	if f.failWrites {
		return errors.New("kv write failure")
	}
	delete(f.values, key)
	return nil
}

func newTestStore(t *testing.T, kv *fakeKV) *Store {
	t.Helper()
	store, err := NewStore(context.Background(), kv, model.DefaultScoring())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	return store
}

func TestStore_SetSequence_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	store := newTestStore(t, kv)

	got := store.SetSequence(ctx, []string{" Light point ", "", "Fan point", "Two way point"})

	want := []string{"Light point", "Fan point", "Two way point"}
	if len(got.Items) != len(want) {
		t.Fatalf("SetSequence returned %d items, want %d", len(got.Items), len(want))
	}
	for i := range want {
		if got.Items[i] != want[i] {
			t.Errorf("item %d: got %q, want %q", i, got.Items[i], want[i])
		}
	}
	if !store.HasSequence() {
		t.Error("HasSequence() = false after SetSequence")
	}

	// Persisted and reloadable
	reloaded := newTestStore(t, kv)
	if !reloaded.HasSequence() {
		t.Fatal("sequence not reloaded from persistence")
	}
	if reloaded.GetSequence().Items[0] != "Light point" {
		t.Errorf("reloaded first item %q, want %q", reloaded.GetSequence().Items[0], "Light point")
	}
}

func TestStore_SetSequence_WriteFailureKeepsMemory(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	kv.failWrites = true
	store := newTestStore(t, kv)

	store.SetSequence(ctx, []string{"Light point", "Fan point"})

	// In-memory sequence is authoritative for the session
	if !store.HasSequence() {
		t.Error("sequence lost after persistence failure")
	}
	if got := store.GetNext("Light point", 1); len(got) != 1 {
		t.Errorf("GetNext returned %d suggestions, want 1", len(got))
	}
}

func TestNewStore_CorruptedPayload(t *testing.T) {
	kv := newFakeKV()
	kv.values[PersistenceKey] = "{not json"

	store := newTestStore(t, kv)
	if store.HasSequence() {
		t.Error("expected empty sequence after corrupted payload")
	}
}

func TestNewStore_ReadFailure(t *testing.T) {
	kv := newFakeKV()
	kv.failReads = true

	store := newTestStore(t, kv)
	if store.HasSequence() {
		t.Error("expected empty sequence after read failure")
	}
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	store := newTestStore(t, kv)

	store.SetSequence(ctx, []string{"Light point"})
	store.Clear(ctx)

	if store.HasSequence() {
		t.Error("HasSequence() = true after Clear")
	}
	if _, ok := kv.values[PersistenceKey]; ok {
		t.Error("persisted value still present after Clear")
	}
}

func TestStore_GetNext(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, newFakeKV())
	store.SetSequence(ctx, []string{"Light point", "Fan point", "Two way point", "Plug point", "Switch board", "MCB", "Earthing"})

	t.Run("confidences decay from 0.9", func(t *testing.T) {
		got := store.GetNext("Light point", 2)
		if len(got) != 2 {
			t.Fatalf("got %d suggestions, want 2", len(got))
		}
		if got[0].Text != "Fan point" || math.Abs(got[0].Confidence-0.9) > 1e-9 {
			t.Errorf("first = (%q, %.2f), want (Fan point, 0.90)", got[0].Text, got[0].Confidence)
		}
		if got[1].Text != "Two way point" || math.Abs(got[1].Confidence-0.8) > 1e-9 {
			t.Errorf("second = (%q, %.2f), want (Two way point, 0.80)", got[1].Text, got[1].Confidence)
		}
	})

	t.Run("confidence floors at 0.5", func(t *testing.T) {
		got := store.GetNext("Light point", 6)
		if len(got) != 6 {
			t.Fatalf("got %d suggestions, want 6", len(got))
		}
		last := got[len(got)-1]
		if math.Abs(last.Confidence-0.5) > 1e-9 {
			t.Errorf("last confidence %.2f, want 0.50", last.Confidence)
		}
	})

	t.Run("substring locate", func(t *testing.T) {
		got := store.GetNext("fan", 1)
		if len(got) != 1 || got[0].Text != "Two way point" {
			t.Fatalf("GetNext(fan) = %+v, want [Two way point]", got)
		}
	})

	t.Run("unknown item yields empty", func(t *testing.T) {
		if got := store.GetNext("Geyser", 3); len(got) != 0 {
			t.Errorf("got %d suggestions for unknown item, want 0", len(got))
		}
	})

	t.Run("end of sequence yields empty", func(t *testing.T) {
		if got := store.GetNext("Earthing", 3); len(got) != 0 {
			t.Errorf("got %d suggestions past the end, want 0", len(got))
		}
	})
}

func TestStore_GetPrevious(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, newFakeKV())
	store.SetSequence(ctx, []string{"Light point", "Fan point", "Two way point"})

	got := store.GetPrevious("Two way point", 2)
	if len(got) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(got))
	}
	// Nearest first, fixed confidence
	if got[0].Text != "Fan point" || got[1].Text != "Light point" {
		t.Errorf("order = [%s, %s], want [Fan point, Light point]", got[0].Text, got[1].Text)
	}
	for _, s := range got {
		if math.Abs(s.Confidence-0.7) > 1e-9 {
			t.Errorf("confidence %.2f for %q, want 0.70", s.Confidence, s.Text)
		}
	}

	if got := store.GetPrevious("Light point", 2); len(got) != 0 {
		t.Errorf("got %d suggestions before first item, want 0", len(got))
	}
}

func TestStore_FindMatches(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, newFakeKV())
	store.SetSequence(ctx, []string{"Light point", "Fan point", "Two way point", "Plug point"})

	t.Run("exact match scores 1.0", func(t *testing.T) {
		got := store.FindMatches("fan point", 5)
		if len(got) != 1 {
			t.Fatalf("got %d matches, want 1", len(got))
		}
		if math.Abs(got[0].Confidence-1.0) > 1e-9 {
			t.Errorf("confidence %.2f, want 1.00", got[0].Confidence)
		}
	})

	t.Run("substring match scores 0.8", func(t *testing.T) {
		got := store.FindMatches("point", 10)
		if len(got) != 4 {
			t.Fatalf("got %d matches, want 4", len(got))
		}
		for _, s := range got {
			if math.Abs(s.Confidence-0.8) > 1e-9 {
				t.Errorf("confidence %.2f for %q, want 0.80", s.Confidence, s.Text)
			}
		}
	})

	t.Run("maxResults truncates", func(t *testing.T) {
		if got := store.FindMatches("point", 2); len(got) != 2 {
			t.Errorf("got %d matches, want 2", len(got))
		}
	})

	t.Run("blank term yields empty", func(t *testing.T) {
		if got := store.FindMatches("   ", 5); len(got) != 0 {
			t.Errorf("got %d matches for blank term, want 0", len(got))
		}
	})
}

func TestStore_GetCompletion(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, newFakeKV())
	store.SetSequence(ctx, []string{"Light point", "Fan point", "Plug point"})

	completion := store.GetCompletion([]string{"Light point"})

	if completion.Completed != 1 || completion.Total != 3 {
		t.Errorf("completed/total = %d/%d, want 1/3", completion.Completed, completion.Total)
	}
	if completion.Percentage != 33 {
		t.Errorf("percentage = %d, want 33", completion.Percentage)
	}
	if len(completion.MissingItems) != 2 {
		t.Fatalf("missing = %v, want 2 entries", completion.MissingItems)
	}
	if len(completion.NextRecommended) != 2 {
		t.Fatalf("nextRecommended has %d entries, want 2", len(completion.NextRecommended))
	}
	// First uncompleted position first, fixed 0.9 confidence
	if completion.NextRecommended[0].Text != "Fan point" {
		t.Errorf("first recommendation %q, want Fan point", completion.NextRecommended[0].Text)
	}
	for _, s := range completion.NextRecommended {
		if math.Abs(s.Confidence-0.9) > 1e-9 {
			t.Errorf("recommendation confidence %.2f, want 0.90", s.Confidence)
		}
	}
}

func TestStore_GetCompletion_CapsRecommendations(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, newFakeKV())
	store.SetSequence(ctx, []string{"A1", "B2", "C3", "D4", "E5"})

	completion := store.GetCompletion(nil)
	if len(completion.NextRecommended) != 3 {
		t.Errorf("nextRecommended has %d entries, want 3", len(completion.NextRecommended))
	}
	if completion.Percentage != 0 {
		t.Errorf("percentage = %d, want 0", completion.Percentage)
	}
	if len(completion.MissingItems) != 5 {
		t.Errorf("missing = %d entries, want 5", len(completion.MissingItems))
	}
}

func TestStore_SetFromDocument(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, newFakeKV())

	doc := model.Document{
		Title: "Reference job",
		Kind:  model.KindQuote,
		Items: []model.LineItem{
			{Particular: "Light point"},
			{Particular: "Fan point"},
			{Particular: "Earthing"},
		},
	}

	got := store.SetFromDocument(ctx, doc)
	if len(got.Items) != 3 || got.Items[2] != "Earthing" {
		t.Errorf("extracted sequence = %v, want document item order", got.Items)
	}
}

// The store deliberately keeps a single global sequence: replacing it
// affects every consumer. A per-document sequence would be a scope change.
func TestStore_SingleGlobalSequence(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, newFakeKV())

	store.SetSequence(ctx, []string{"Light point"})
	store.SetSequence(ctx, []string{"Earthing"})

	seq := store.GetSequence()
	if len(seq.Items) != 1 || seq.Items[0] != "Earthing" {
		t.Errorf("sequence = %v, want wholesale replacement [Earthing]", seq.Items)
	}
}
