package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todos/internal/config"
	"github.com/idilsaglam/todos/internal/datelabel"
	"github.com/idilsaglam/todos/internal/logging"
	"github.com/idilsaglam/todos/internal/model"
	"github.com/idilsaglam/todos/internal/store/jsonstore"
	"github.com/idilsaglam/todos/internal/tui"
	"github.com/idilsaglam/todos/internal/ui"
)

// UIRunner runs the interactive view over todos and reports whether any were
// changed.
type UIRunner func(todos []model.Todo, l datelabel.Labeler, s ui.Styles) (bool, error)

// Options wire the command tree to its environment.
type Options struct {
	Out   io.Writer        // stdout by default; logs go here too
	Now   func() time.Time // wall clock by default
	RunUI UIRunner         // tui.Run by default
}

func (o Options) withDefaults() Options {
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.RunUI == nil {
		o.RunUI = func(todos []model.Todo, l datelabel.Labeler, s ui.Styles) (bool, error) {
			return tui.Run(todos, l, s)
		}
	}
	return o
}

// app is the per-invocation state shared by every subcommand.
type app struct {
	opt Options

	name       string
	configPath string
	debug      int

	cfg     *config.Config
	log     *log.Logger
	store   *jsonstore.Store
	labeler datelabel.Labeler
	styles  ui.Styles
}

// Execute runs the command line in args and returns the process exit code:
// 0 on success (I/O problems are logged, not fatal), 1 on argument errors.
func Execute(args []string, opt Options) int {
	opt = opt.withDefaults()
	root, a := newRootCmd(opt)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		styles := a.styles
		if styles.Theme.Name == "" {
			styles = ui.ForWriter(opt.Out, ui.ThemeByName(config.DefaultTheme))
		}
		styles.Fail(opt.Out, err.Error())
		if errors.Is(err, jsonstore.ErrIndexOutOfRange) {
			fmt.Fprintln(opt.Out, styles.Muted.Render("Hint: run `todos list` to see valid indexes"))
		}
		return 1
	}
	return 0
}

func newRootCmd(opt Options) (*cobra.Command, *app) {
	a := &app{opt: opt}

	root := &cobra.Command{
		Use:   "todos [name]",
		Short: "A tiny personal todo list",
		Long: "todos keeps a list of short items with their completion status and\n" +
			"creation date in a JSON file, and lists them grouped by day.",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && cmd.Parent() == nil {
				a.name = args[0]
			}
			a.setup(cmd)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error { return nil },
	}
	root.SetOut(opt.Out)
	root.SetErr(opt.Out)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.name, "name", "n", "", "name to echo")
	pf.StringVarP(&a.configPath, "config", "c", "", "config file (YAML)")
	pf.CountVarP(&a.debug, "debug", "d", "debug verbosity (repeatable)")
	pf.String("db", config.DefaultDB, "todo file")
	pf.String("theme", config.DefaultTheme, "color theme: classic, neon or mono")
	pf.String("timezone", config.DefaultTimezone, "time zone for dates")

	root.AddCommand(
		newAddCmd(a),
		newCheckCmd(a),
		newUncheckCmd(a),
		newDeleteCmd(a),
		newListCmd(a),
		newUICmd(a),
		newTestCmd(a),
	)
	return root, a
}

// setup resolves configuration, loads the store and echoes the diagnostic
// options. Failures are logged; the command still runs.
func (a *app) setup(cmd *cobra.Command) {
	out := a.opt.Out
	a.log = logging.New(out, a.debug)

	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		a.log.Error("problem in config, continuing with the remaining settings", "err", err)
	}
	if !ui.ValidTheme(cfg.Theme) {
		a.log.Warn("unknown theme, using classic", "theme", cfg.Theme, "themes", ui.ThemeNames)
	}
	a.cfg = cfg

	loc, err := cfg.Location()
	if err != nil {
		loc = time.Local
	}
	a.labeler = datelabel.Labeler{Location: loc, Now: a.opt.Now}
	a.styles = ui.ForWriter(out, ui.ThemeByName(cfg.Theme))
	a.store = jsonstore.New(cfg.DB,
		jsonstore.WithLogger(a.log),
		jsonstore.WithClock(a.opt.Now),
		jsonstore.WithLocation(loc),
	)

	if err := a.store.Load(); err != nil {
		a.log.Error("could not load todos", "err", err)
	}

	if a.name != "" {
		fmt.Fprintf(out, "Value for name: %s\n", a.name)
	}
	if a.configPath != "" {
		fmt.Fprintf(out, "Value for config: %s\n", a.configPath)
	}
	fmt.Fprintln(out, logging.DebugBanner(a.debug))
	a.log.Debug("resolved config", "db", cfg.DB, "theme", cfg.Theme, "timezone", cfg.Timezone)
}

// save persists the store, logging failures.
func (a *app) save() {
	if err := a.store.Save(); err != nil {
		a.log.Error("could not save todos", "err", err)
	}
}
