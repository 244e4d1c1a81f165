package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/urbancafe/internal/model"
	"github.com/Makepad-fr/urbancafe/internal/site"
	"github.com/Makepad-fr/urbancafe/internal/tui"
	"github.com/Makepad-fr/urbancafe/internal/ui"
)

var timeNow = time.Now

// ErrUnknownCategory is returned by show for names outside the category list.
var ErrUnknownCategory = errors.New("unknown category")

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive page (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.browse(cmd.Context())
		},
	}
}

func (a *app) browse(ctx context.Context) error {
	cols, _ := tui.Size()
	st := a.newState(cols)
	st.Theme.Init()
	a.log.Info("starting page", "menu_source", a.cfg.MenuSource, "columns", cols)

	err := tui.Run(tui.Options{
		Context:   ctx,
		State:     st,
		Loader:    a.loader(),
		Pictures:  ui.NewPictures(a.cfg.ImageDir),
		RowHeight: a.cfg.Scroll.RowHeight,
		Log:       a.log,
	})
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// start loads the menu and applies the theme the way the page does on ready.
func (a *app) start(ctx context.Context) *site.State {
	cols, _ := tui.Size()
	st := a.newState(cols)
	if err := st.Start(ctx, a.loader()); err != nil {
		ui.Hint(a.errOut, "menu unavailable: "+err.Error())
	}
	return st
}

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "categories",
		Aliases: []string{"ls"},
		Short:   "Print the menu categories",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := a.start(cmd.Context())
			t := ui.ForMode(st.Theme.Dark())
			cols, _ := tui.Size()
			fmt.Fprintln(a.out, ui.CategoryGrid(t, st.Menu.Buttons(), -1, cols))

			data := st.Menu.Data()
			lines := make([]string, 0, len(st.Menu.Buttons()))
			for _, b := range st.Menu.Buttons() {
				lines = append(lines, ui.Leader(b.Label, fmt.Sprintf("%d", len(data.Items(b.Name))), 32))
			}
			fmt.Fprintln(a.out, ui.Panel(t, lines))
			return nil
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <category>",
		Short: "Print the items of one category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.ToLower(strings.TrimSpace(args[0]))
			if _, ok := model.LookupCategory(name); !ok {
				return usagef("%w: %s", ErrUnknownCategory, args[0])
			}
			st := a.start(cmd.Context())
			d, err := st.Menu.RenderCategoryDetail(name)
			if err != nil {
				return err
			}
			t := ui.ForMode(st.Theme.Dark())
			fmt.Fprintln(a.out, ui.Panel(t, []string{ui.DetailView(t, d, 48)}))
			st.Modals.Close(site.ModalMenu)
			return nil
		},
	}
}

func newThemeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|auto|toggle]",
		Short:     "Show or set the color theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark", "auto", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			st := a.newState(80)
			if len(args) == 0 {
				v, ok, err := a.prefs.Get(site.ThemeKey)
				if err != nil {
					return err
				}
				if !ok {
					mode := site.ModeForHour(timeNow().Hour())
					fmt.Fprintf(a.out, "auto (%s now)\n", mode)
					return nil
				}
				fmt.Fprintln(a.out, v)
				return nil
			}

			switch arg := strings.ToLower(args[0]); arg {
			case "auto":
				if err := a.prefs.Delete(site.ThemeKey); err != nil {
					return err
				}
				mode := site.ModeForHour(timeNow().Hour())
				ui.OK(a.out, fmt.Sprintf("theme follows the clock (%s now)", mode))
				return nil
			case "toggle":
				st.Theme.Init()
				mode := st.Theme.Toggle()
				ui.OK(a.out, "theme "+string(mode)+" "+st.Theme.ToggleIcon())
				return nil
			default:
				mode, err := site.ParseMode(arg)
				if err != nil {
					return usagef("%v", err)
				}
				if err := st.Theme.SetTheme(mode); err != nil {
					return err
				}
				ui.OK(a.out, "theme "+string(mode)+" "+st.Theme.ToggleIcon())
				return nil
			}
		},
	}
}
