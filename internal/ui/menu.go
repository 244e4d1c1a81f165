package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/urbancafe/internal/model"
	"github.com/Makepad-fr/urbancafe/internal/site"
)

var iconGlyphs = map[string]string{
	"fa-coffee":               "☕",
	"fa-glass-water":          "🥤",
	"fa-beer":                 "🍺",
	"fa-wine-glass":           "🍷",
	"fa-burger":               "🍔",
	"fa-glass-whiskey":        "🥃",
	"fa-martini-glass-citrus": "🍸",
	"fa-wine-bottle":          "🍾",
	"fa-whiskey-glass":        "🥃",
	"fa-bottle-droplet":       "💧",
}

// Glyph maps a symbolic icon name to something a terminal can draw.
func Glyph(icon string) string {
	if g, ok := iconGlyphs[icon]; ok {
		return g
	}
	return "•"
}

const buttonWidth = 15

// GridColumns is how many category buttons fit in width.
func GridColumns(width int) int {
	cols := width / (buttonWidth + 3)
	if cols < 1 {
		cols = 1
	}
	return cols
}

// CategoryGrid lays the buttons out in rows, highlighting selected.
func CategoryGrid(t Theme, buttons []site.CategoryButton, selected, width int) string {
	if len(buttons) == 0 {
		return t.Muted.Render("(nessuna categoria)")
	}
	cols := GridColumns(width)
	var rows []string
	for start := 0; start < len(buttons); start += cols {
		end := start + cols
		if end > len(buttons) {
			end = len(buttons)
		}
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			b := buttons[i]
			style := t.Button
			if i == selected {
				style = t.ButtonSelected
			}
			body := t.Accent.Render(Glyph(b.Icon)) + "\n" + b.Label
			cells = append(cells, style.Width(buttonWidth).Render(body))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// RowLines renders one menu row. Extended rows always carry the
// description and ingredient lines, blank when the item has none.
func RowLines(t Theme, r site.Row, width int) []string {
	price := t.Price.Render("€" + r.Price)
	if r.Layout != model.LayoutExtended {
		return []string{Leader(r.Name, price, width)}
	}
	return []string{
		Leader(t.Title.Render(r.Name), price, width),
		t.Muted.Render(r.Description),
		t.Muted.Render(lipgloss.NewStyle().Bold(true).Render("Ingredienti:") + " " + r.Ingredients),
	}
}

// DetailView renders the body of the menu modal.
func DetailView(t Theme, d site.Detail, width int) string {
	if width < 20 {
		width = 20
	}
	var b strings.Builder
	b.WriteString(t.Accent.Render(d.Title))
	b.WriteString("\n\n")
	if len(d.Rows) == 0 {
		b.WriteString(t.Muted.Render("Nessun prodotto disponibile"))
		return b.String()
	}
	rule := t.Muted.Render(strings.Repeat("─", width))
	for i, r := range d.Rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.Join(RowLines(t, r, width), "\n"))
		b.WriteString("\n")
		b.WriteString(rule)
	}
	return b.String()
}
