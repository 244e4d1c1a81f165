package ui

import "github.com/charmbracelet/lipgloss"

// Brand is the café yellow used for icons and highlights.
const Brand = lipgloss.Color("#fcd401")

// Theme bundles the styles of one color scheme.
// Every view pulls from the Theme handed to it.
type Theme struct {
	Name string

	Page, Title, Muted, Accent, Price, Error lipgloss.Style
	Header, Footer                           lipgloss.Style
	Button, ButtonSelected                   lipgloss.Style
	Box, Overlay                             lipgloss.Style
}

func newTheme(name string, fg, bg, muted, surface, border lipgloss.Color) Theme {
	return Theme{
		Name:   name,
		Page:   lipgloss.NewStyle().Foreground(fg),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(fg),
		Muted:  lipgloss.NewStyle().Foreground(muted),
		Accent: lipgloss.NewStyle().Foreground(Brand).Bold(true),
		Price:  lipgloss.NewStyle().Bold(true).Foreground(fg),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg).
			Background(surface).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		Button: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Foreground(fg).
			Padding(0, 1).
			Align(lipgloss.Center),
		ButtonSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Brand).
			Foreground(fg).
			Bold(true).
			Padding(0, 1).
			Align(lipgloss.Center),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Background(bg).
			Foreground(fg).
			Padding(1, 2),
		Overlay: lipgloss.NewStyle().
			Background(surface).
			Foreground(fg).
			Padding(1, 2),
	}
}

var (
	light = newTheme("light",
		lipgloss.Color("#1f1f1f"), lipgloss.Color("#ffffff"),
		lipgloss.Color("#6b7280"), lipgloss.Color("#f3f4f6"), lipgloss.Color("#d1d5db"))
	dark = newTheme("dark",
		lipgloss.Color("#f5f5f5"), lipgloss.Color("#1a1a1a"),
		lipgloss.Color("#9ca3af"), lipgloss.Color("#111111"), lipgloss.Color("#4b5563"))
)

// ForMode returns the dark theme when dark is set, the light one otherwise.
func ForMode(dark bool) Theme {
	if dark {
		return Dark()
	}
	return Light()
}

func Light() Theme { return light }
func Dark() Theme  { return dark }
