// Package tui is the interactive todo view: a fixed-size list with a
// movable selection and a completion toggle.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todos/internal/datelabel"
	"github.com/idilsaglam/todos/internal/model"
	"github.com/idilsaglam/todos/internal/ui"
)

// Viewport size, borders included.
const (
	Width  = 106
	Height = 16
)

const noSelection = -1

// Model implements tea.Model over a borrowed todo slice. Toggles write
// through to the slice; nothing else about it changes.
type Model struct {
	todos    []model.Todo
	selected int
	changed  bool

	keys    keyMap
	help    help.Model
	labeler datelabel.Labeler
	styles  ui.Styles
}

// New returns a Model with nothing selected.
func New(todos []model.Todo, l datelabel.Labeler, s ui.Styles) Model {
	h := help.New()
	h.Styles.ShortKey = s.Help
	h.Styles.ShortDesc = s.Help
	h.Styles.ShortSeparator = s.Help
	return Model{
		todos:    todos,
		selected: noSelection,
		keys:     defaultKeys(),
		help:     h,
		labeler:  l,
		styles:   s,
	}
}

// Selected returns the selected index and whether anything is selected.
func (m Model) Selected() (int, bool) { return m.selected, m.selected != noSelection }

// Changed reports whether any todo was toggled.
func (m Model) Changed() bool { return m.changed }

// Next moves the selection down, wrapping to the top.
func (m *Model) Next() {
	if len(m.todos) == 0 {
		return
	}
	switch {
	case m.selected == noSelection, m.selected >= len(m.todos)-1:
		m.selected = 0
	default:
		m.selected++
	}
}

// Previous moves the selection up, wrapping to the bottom.
func (m *Model) Previous() {
	if len(m.todos) == 0 {
		return
	}
	switch m.selected {
	case noSelection:
		m.selected = 0
	case 0:
		m.selected = len(m.todos) - 1
	default:
		m.selected--
	}
}

// Unselect clears the selection.
func (m *Model) Unselect() { m.selected = noSelection }

// Toggle flips completion of the selected todo.
func (m *Model) Toggle() {
	if m.selected == noSelection || m.selected >= len(m.todos) {
		return
	}
	m.todos[m.selected].Toggle()
	m.changed = true
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(k, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(k, m.keys.Down):
		m.Next()
	case key.Matches(k, m.keys.Up):
		m.Previous()
	case key.Matches(k, m.keys.Unselect):
		m.Unselect()
	case key.Matches(k, m.keys.Toggle):
		m.Toggle()
	}
	return m, nil
}

// rows is how many todos fit between the header and the help line.
const rows = Height - 2 - 2

func (m Model) View() string {
	done := 0
	for _, t := range m.todos {
		if t.Completed {
			done++
		}
	}
	lines := []string{fmt.Sprintf("%s  %s",
		m.styles.Header.Render("Todos"),
		m.styles.Accent.Render(ui.ProgressBar(done, len(m.todos), 20)))}

	offset := 0
	if m.selected >= rows {
		offset = m.selected - rows + 1
	}
	for i := offset; i < len(m.todos) && i < offset+rows; i++ {
		lines = append(lines, m.row(i))
	}
	for len(lines) < rows+1 {
		lines = append(lines, "")
	}
	lines = append(lines, m.help.View(m.keys))

	return m.styles.Panel(lines, Width, Height)
}

func (m Model) row(i int) string {
	t := m.todos[i]
	box := m.styles.Theme.BoxUnchecked
	if t.Completed {
		box = m.styles.Theme.BoxChecked
	}
	text := fmt.Sprintf("%s %s  (%s)", box, t.Text, m.labeler.Label(t.CreatedAt))

	switch {
	case i == m.selected:
		return m.styles.Selected.Render("> " + text)
	case t.Completed:
		return "  " + m.styles.Completed.Render(text)
	default:
		return "  " + text
	}
}

// Run shows the view until the user quits and reports whether anything was
// toggled. todos is mutated in place.
func Run(todos []model.Todo, l datelabel.Labeler, s ui.Styles, opts ...tea.ProgramOption) (bool, error) {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	final, err := tea.NewProgram(New(todos, l, s), opts...).Run()
	if err != nil {
		return false, err
	}
	fm, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return fm.Changed(), nil
}
