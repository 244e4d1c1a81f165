package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/urbancafe/internal/config"
	"github.com/Makepad-fr/urbancafe/internal/logger"
	"github.com/Makepad-fr/urbancafe/internal/site"
	"github.com/Makepad-fr/urbancafe/internal/store/jsonstore"
	"github.com/Makepad-fr/urbancafe/internal/ui"
)

// usageError marks mistakes in the command line; they exit with code 2.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, a ...any) error { return usageError{err: fmt.Errorf(format, a...)} }

// app is what every subcommand needs once flags and config are resolved.
type app struct {
	cfg    *config.Config
	home   string
	log    *slog.Logger
	closer io.Closer
	prefs  *jsonstore.Preferences
	out    io.Writer
	errOut io.Writer
}

type flags struct {
	config   string
	logLevel string
	color    string
	menu     string
}

func newRootCmd(a *app) *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:   "urbancafe",
		Short: "Urban Cafè in your terminal",
		Long: `urbancafe renders the Urban Cafè page in the terminal: the menu by
category, the photo gallery, a rotating hero carousel and a light/dark
theme that follows the time of day unless you pick one.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(f)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.closer != nil {
				_ = a.closer.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.browse(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&f.config, "config", "urbancafe.yml", "config file path")
	root.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	root.PersistentFlags().StringVar(&f.color, "color", "", "auto, always or never")
	root.PersistentFlags().StringVar(&f.menu, "menu", "", "menu document path or URL")

	root.AddCommand(
		newBrowseCmd(a),
		newCategoriesCmd(a),
		newShowCmd(a),
		newThemeCmd(a),
	)
	return root
}

func (a *app) setup(f *flags) error {
	cfg, err := config.Load(f.config)
	if err != nil {
		return err
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if f.color != "" {
		cfg.Color = f.color
	}
	if f.menu != "" {
		cfg.MenuSource = f.menu
	}
	if err := cfg.Validate(); err != nil {
		return usagef("%v", err)
	}
	a.cfg = cfg

	switch cfg.Color {
	case "always":
		ui.SetColorForcing(true, false)
	case "never":
		ui.SetColorForcing(false, true)
	}

	home, err := jsonstore.HomeDir(cfg.Home)
	if err != nil {
		return err
	}
	a.home = home
	a.prefs = jsonstore.NewPreferences(home)

	log, closer, err := logger.Open(cfg.LogLevel, home, cfg.LogFile)
	if err != nil {
		// logging is best effort; the page works without it
		log, closer = logger.New(cfg.LogLevel, io.Discard), nil
		ui.Hint(a.errOut, "logging disabled: "+err.Error())
	}
	slog.SetDefault(log)
	a.log, a.closer = log, closer
	return nil
}

// newState builds the page state for a viewport of the given width in cells.
func (a *app) newState(cols int) *site.State {
	s := a.cfg.Scroll
	return site.NewState(site.Options{
		Prefs:         a.prefs,
		ViewportWidth: cols * s.ColumnWidth,
		Scroll: site.ScrollConfig{
			HideAfter:      s.HideAfter,
			BackToTopAfter: s.BackToTopAfter,
			HeaderOffset:   s.HeaderOffset,
		},
		Log: a.log,
	})
}

func (a *app) loader() *jsonstore.MenuLoader {
	return jsonstore.NewMenuLoader(a.cfg.MenuSource, a.log)
}

// Run executes the command line and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string) int {
	return run(ctx, args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, out, errOut io.Writer) int {
	a := &app{out: out, errOut: errOut}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	ui.Fail(a.errOut, err.Error())
	var ue usageError
	if errors.As(err, &ue) || isCobraUsage(err) {
		fmt.Fprintln(a.errOut)
		_ = root.Usage()
		return 2
	}
	return 1
}

// cobra reports flag and argument problems as plain errors.
func isCobraUsage(err error) bool {
	msg := err.Error()
	for _, p := range []string{"unknown command", "unknown flag", "unknown shorthand", "accepts ", "requires at least", "invalid argument"} {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}
