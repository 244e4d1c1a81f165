package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down, PageUp, PageDown key.Binding
	Left, Right, Switch, Open  key.Binding
	Nav, Theme, Top, Close     key.Binding
	Anchor, Quit               key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", " "), key.WithHelp("pgdn", "page down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Switch:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "menu/gallery")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Nav:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "navigation")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Close:    key.NewBinding(key.WithKeys("esc", "x"), key.WithHelp("esc", "close")),
		Anchor:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "jump")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Switch, k.Open, k.Nav, k.Theme, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top},
		{k.Left, k.Right, k.Switch, k.Open, k.Close},
		{k.Nav, k.Anchor, k.Theme, k.Quit},
	}
}
