package model

import (
	"testing"
)

func TestSuggestion_Validate(t *testing.T) {
	tests := []struct {
		name       string
		errMsg     string
		suggestion Suggestion
		wantErr    bool
	}{
		{
			name: "valid suggestion",
			suggestion: Suggestion{
				Text:       "Fan point",
				Confidence: 0.85,
				Source:     SourcePattern,
				Reason:     "Typically follows light point installation",
			},
			wantErr: false,
		},
		{
			name: "empty text",
			suggestion: Suggestion{
				Confidence: 0.5,
				Source:     SourcePattern,
			},
			wantErr: true,
			errMsg:  "suggestion text is required",
		},
		{
			name: "confidence too low",
			suggestion: Suggestion{
				Text:       "Plug point",
				Confidence: -0.1,
				Source:     SourceHistorical,
			},
			wantErr: true,
			errMsg:  "confidence must be between 0.0 and 1.0, got -0.10",
		},
		{
			name: "confidence too high",
			suggestion: Suggestion{
				Text:       "Plug point",
				Confidence: 1.1,
				Source:     SourceHistorical,
			},
			wantErr: true,
			errMsg:  "confidence must be between 0.0 and 1.0, got 1.10",
		},
		{
			name: "unknown source",
			suggestion: Suggestion{
				Text:       "Plug point",
				Confidence: 0.5,
				Source:     SuggestionSource("oracle"),
			},
			wantErr: true,
			errMsg:  `unknown suggestion source "oracle"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.suggestion.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err.Error() != tt.errMsg {
				t.Errorf("Validate() error = %q, want %q", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestSuggestions_Sort(t *testing.T) {
	suggestions := Suggestions{
		{Text: "Switch board", Confidence: 0.95, Source: SourceAutocomplete},
		{Text: "Fan point", Confidence: 0.6, Source: SourceCustomSequence},
		{Text: "Plug point", Confidence: 0.8, Source: SourcePattern},
		{Text: "Wire coil", Confidence: 0.4, Source: SourceHistorical},
		{Text: "Two way point", Confidence: 0.9, Source: SourceCustomSequence},
	}

	suggestions.Sort()

	wantOrder := []string{"Two way point", "Fan point", "Plug point", "Wire coil", "Switch board"}
	for i, want := range wantOrder {
		if suggestions[i].Text != want {
			t.Errorf("position %d: got %q, want %q", i, suggestions[i].Text, want)
		}
	}
}

func TestSuggestions_TopN(t *testing.T) {
	suggestions := Suggestions{
		{Text: "A", Confidence: 0.5, Source: SourcePattern},
		{Text: "B", Confidence: 0.9, Source: SourcePattern},
		{Text: "C", Confidence: 0.7, Source: SourcePattern},
	}

	top := suggestions.TopN(2)
	if len(top) != 2 {
		t.Fatalf("TopN(2) returned %d entries", len(top))
	}
	if top[0].Text != "B" || top[1].Text != "C" {
		t.Errorf("TopN(2) = [%s, %s], want [B, C]", top[0].Text, top[1].Text)
	}

	if got := suggestions.TopN(0); len(got) != 0 {
		t.Errorf("TopN(0) returned %d entries, want 0", len(got))
	}
	if got := suggestions.TopN(10); len(got) != 3 {
		t.Errorf("TopN(10) returned %d entries, want 3", len(got))
	}
}

func TestSuggestions_Validate_Duplicates(t *testing.T) {
	suggestions := Suggestions{
		{Text: "Light point", Confidence: 0.9, Source: SourceCustomSequence},
		{Text: "LIGHT POINT", Confidence: 0.5, Source: SourcePattern},
	}

	if err := suggestions.Validate(); err == nil {
		t.Error("expected duplicate text error, got nil")
	}
}

func TestNamesMatch(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{name: "exact match", a: "Light point", b: "Light point", want: true},
		{name: "case insensitive", a: "light POINT", b: "Light point", want: true},
		{name: "substring forward", a: "Light", b: "Light point", want: true},
		{name: "substring reverse", a: "Light point wiring", b: "light point", want: true},
		{name: "no match", a: "Fan point", b: "Plug point", want: false},
		{name: "empty left", a: "", b: "Light point", want: false},
		{name: "whitespace only", a: "   ", b: "Light point", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NamesMatch(tt.a, tt.b); got != tt.want {
				t.Errorf("NamesMatch(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
