// Package tui implements the interactive draft screen: a text input that
// feeds debounced queries to the suggestion engine, with committed items
// accumulating into the draft below.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/voltquote/voltquote/internal/model"
	"github.com/voltquote/voltquote/internal/suggest"
)

// DebounceInterval is the quiet period required before a keystroke
// triggers suggestion recomputation. Co-occurrence analysis recomputes
// from scratch on every call, so it must not run per keystroke.
const DebounceInterval = 150 * time.Millisecond

// SuggestFunc computes suggestions for a query. Injected so tests can
// count invocations without a full engine.
type SuggestFunc func(suggest.Query) model.Suggestions

// debounceMsg fires after the debounce interval; generation identifies
// the keystroke that scheduled it.
type debounceMsg struct {
	generation int
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFB454"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// Model is the bubbletea model for the draft screen.
type Model struct {
	suggestFn   SuggestFunc
	title       string
	draft       []string
	suggestions model.Suggestions
	catalog     []model.Item
	documents   []model.Document
	input       textinput.Model
	generation  int
	selected    int
	limit       int
	quitting    bool
}

// NewModel creates a draft screen over the given data and engine.
func NewModel(suggestFn SuggestFunc, catalog []model.Item, documents []model.Document) Model {
	input := textinput.New()
	input.Placeholder = "type an item..."
	input.Focus()
	input.CharLimit = 120
	input.Width = 48

	return Model{
		suggestFn: suggestFn,
		input:     input,
		title:     "New quote",
		catalog:   catalog,
		documents: documents,
		limit:     5,
		selected:  -1,
	}
}

// Draft returns the committed items in order.
func (m Model) Draft() []string {
	return m.draft
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			m = m.commit()
			cmd := m.scheduleSuggest()
			return m, cmd

		case tea.KeyTab:
			if len(m.suggestions) > 0 {
				m.selected = (m.selected + 1) % len(m.suggestions)
			}
			return m, nil

		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			m.selected = -1
			debounce := m.scheduleSuggest()
			return m, tea.Batch(cmd, debounce)
		}

	case debounceMsg:
		// Only the most recent keystroke's timer may trigger a recompute.
		if msg.generation != m.generation {
			return m, nil
		}
		m = m.recompute()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// scheduleSuggest arms the debounce timer for the current input state.
// The receiver is a pointer so the bumped generation survives into the
// model bubbletea keeps.
func (m *Model) scheduleSuggest() tea.Cmd {
	m.generation++
	generation := m.generation
	return tea.Tick(DebounceInterval, func(time.Time) tea.Msg {
		return debounceMsg{generation: generation}
	})
}

// recompute queries the engine synchronously for the current state.
func (m Model) recompute() Model {
	if m.suggestFn == nil {
		return m
	}
	m.suggestions = m.suggestFn(suggest.Query{
		PartialText: m.input.Value(),
		LastItem:    m.lastItem(),
		DraftItems:  m.draft,
		Catalog:     m.catalog,
		Documents:   m.documents,
		Limit:       m.limit,
	})
	if m.selected >= len(m.suggestions) {
		m.selected = -1
	}
	return m
}

// commit adds the selected suggestion, or the typed text, to the draft.
func (m Model) commit() Model {
	text := strings.TrimSpace(m.input.Value())
	if m.selected >= 0 && m.selected < len(m.suggestions) {
		text = m.suggestions[m.selected].Text
	}
	if text == "" {
		return m
	}

	m.draft = append(m.draft, text)
	m.input.SetValue("")
	m.selected = -1
	m.suggestions = nil
	return m
}

func (m Model) lastItem() string {
	if len(m.draft) == 0 {
		return ""
	}
	return m.draft[len(m.draft)-1]
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("⚡ "+m.title) + "\n\n")

	for i, item := range m.draft {
		b.WriteString(fmt.Sprintf("  %2d. %s\n", i+1, item))
	}
	if len(m.draft) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(m.input.View() + "\n\n")

	if len(m.suggestions) > 0 {
		b.WriteString(subtleStyle.Render("suggestions (tab to select, enter to add):") + "\n")
		for i, s := range m.suggestions {
			marker := " "
			line := fmt.Sprintf(" %s %s  %3.0f%%", marker, s.Text, s.Confidence*100)
			if i == m.selected {
				line = selectedStyle.Render(fmt.Sprintf(" ▸ %s  %3.0f%%", s.Text, s.Confidence*100))
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString("\n" + subtleStyle.Render("esc to finish"))
	return b.String()
}
