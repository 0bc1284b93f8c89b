package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voltquote/voltquote/internal/model"
)

// Run starts the interactive draft screen and returns the committed items
// once the user finishes.
func Run(suggestFn SuggestFunc, catalog []model.Item, documents []model.Document) ([]string, error) {
	program := tea.NewProgram(NewModel(suggestFn, catalog, documents))

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("draft screen failed: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected final model type %T", final)
	}
	return m.Draft(), nil
}
