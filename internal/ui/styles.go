package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles every renderer pulls from. They are bound
// to a renderer, so output written to a pipe or buffer carries no escapes.
type Styles struct {
	Theme Theme

	Header    lipgloss.Style
	Index     lipgloss.Style
	Done      lipgloss.Style
	Open      lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Selected  lipgloss.Style
	Completed lipgloss.Style
	Help      lipgloss.Style
	Frame     lipgloss.Style
}

// NewStyles builds the styles for theme t on renderer r.
func NewStyles(r *lipgloss.Renderer, t Theme) Styles {
	return Styles{
		Theme:     t,
		Header:    r.NewStyle().Bold(true).Foreground(t.Title),
		Index:     r.NewStyle().Italic(true),
		Done:      r.NewStyle().Foreground(t.Success).Strikethrough(true),
		Open:      r.NewStyle().Foreground(t.Open),
		Muted:     r.NewStyle().Faint(true),
		Accent:    r.NewStyle().Foreground(t.Accent),
		Success:   r.NewStyle().Foreground(t.Success),
		Error:     r.NewStyle().Foreground(t.Error).Bold(true),
		Selected:  r.NewStyle().Bold(true).Foreground(t.HighlightFG).Background(t.HighlightBG),
		Completed: r.NewStyle().Foreground(t.CompletedRow),
		Help:      r.NewStyle().Faint(true),
		Frame:     r.NewStyle().Border(t.Border).BorderForeground(t.Muted).Padding(0, 1),
	}
}

// ForWriter is NewStyles on a renderer that detects w's color support.
func ForWriter(w io.Writer, t Theme) Styles {
	return NewStyles(lipgloss.NewRenderer(w), t)
}

// OK prints a success line.
func (s Styles) OK(w io.Writer, msg string) {
	fmt.Fprintln(w, s.Success.Render(s.Theme.SymOK+" "+msg))
}

// Fail prints an error line.
func (s Styles) Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, s.Error.Render(s.Theme.SymFail+" "+msg))
}
