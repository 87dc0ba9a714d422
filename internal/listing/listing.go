// Package listing prints todos grouped by how recently they were created.
package listing

import (
	"fmt"
	"io"

	"github.com/idilsaglam/todos/internal/datelabel"
	"github.com/idilsaglam/todos/internal/model"
	"github.com/idilsaglam/todos/internal/ui"
)

// Partition splits todos into those created before yesterday (other) and
// those created today or yesterday (recent), keeping their relative order.
func Partition(todos []model.Todo, l datelabel.Labeler) (other, recent []model.Todo) {
	for _, t := range todos {
		if l.IsRecent(t.CreatedAt) {
			recent = append(recent, t)
		} else {
			other = append(other, t)
		}
	}
	return other, recent
}

// Render prints the "other" group, then the "recent" group. Each non-empty
// group gets a single header taken from its first todo's label, so an "other"
// group spanning several dates shows only the first date. Line numbers
// restart at 0 in each group.
func Render(w io.Writer, todos []model.Todo, l datelabel.Labeler, s ui.Styles) {
	other, recent := Partition(todos, l)
	for _, group := range [][]model.Todo{other, recent} {
		if len(group) == 0 {
			continue
		}
		fmt.Fprintln(w, s.Header.Render(l.Label(group[0].CreatedAt).String()))
		for i, t := range group {
			fmt.Fprintf(w, "%s %s\n", s.Index.Render(fmt.Sprintf("%d.", i)), Line(t, s))
		}
	}
}

// Line renders a todo's text with its completion style.
func Line(t model.Todo, s ui.Styles) string {
	if t.Completed {
		return s.Done.Render(t.Text)
	}
	return s.Open.Render(t.Text)
}
