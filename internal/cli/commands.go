package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todos/internal/listing"
)

func newAddCmd(a *app) *cobra.Command {
	var text string
	cmd := &cobra.Command{
		Use:   "add [-t text | text...]",
		Short: "Add a new todo",
		Example: `  todos add -t "Buy milk"
  todos add Buy milk`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if text != "" && len(args) > 0 {
				return fmt.Errorf("add: give the todo either with -t or as arguments, not both (extra: %q)", strings.Join(args, " "))
			}
			if text == "" {
				text = strings.Join(args, " ")
			}
			text = strings.TrimSpace(text)
			if text == "" {
				return errors.New("add: empty todo")
			}
			t := a.store.Add(text)
			a.log.Debug("added todo", "id", t.ID)
			a.list()
			a.save()
			return nil
		},
	}
	cmd.Flags().StringVarP(&text, "todo", "t", "", "todo text")
	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	return indexCmd(a, "check", "Mark the todo at <index> as done", func(id int64) {
		a.store.MarkCompleted(id)
	})
}

func newUncheckCmd(a *app) *cobra.Command {
	cmd := indexCmd(a, "un-check", "Mark the todo at <index> as not done", func(id int64) {
		a.store.UnmarkCompleted(id)
	})
	cmd.Aliases = []string{"uncheck"}
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	cmd := indexCmd(a, "delete", "Delete the todo at <index>", func(id int64) {
		a.store.Remove(id)
	})
	cmd.Aliases = []string{"rm"}
	return cmd
}

// indexCmd builds a subcommand addressing a todo by its 0-based position in
// the file's order (not the per-group numbers shown by list).
func indexCmd(a *app, name, short string, apply func(id int64)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <index>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%s: not a number: %s", name, args[0])
			}
			t, err := a.store.At(n)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			apply(t.ID)
			a.log.Debug(name, "index", n, "id", t.ID)
			a.list()
			a.save()
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List todos grouped by day",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.list()
			return nil
		},
	}
}

func newUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Browse and toggle todos interactively",
		Long: "Browse and toggle todos interactively.\n\n" +
			"Keys: j/down next, k/up previous, h/left unselect, t/space toggle, q quit.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed, err := a.opt.RunUI(a.store.Todos(), a.labeler, a.styles)
			if err != nil {
				a.log.Error("interactive view failed", "err", err)
			}
			if changed {
				a.save()
				a.styles.OK(a.opt.Out, "saved")
			}
			return nil
		},
	}
}

func newTestCmd(a *app) *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:    "test",
		Short:  "Print whether test lists would be printed",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				fmt.Fprintln(a.opt.Out, "Printing testing lists...")
			} else {
				fmt.Fprintln(a.opt.Out, "Not printing testing lists...")
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&list, "list", "l", false, "print test lists")
	return cmd
}

func (a *app) list() {
	listing.Render(a.opt.Out, a.store.Todos(), a.labeler, a.styles)
}
