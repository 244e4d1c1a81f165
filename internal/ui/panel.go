package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel frames lines with the theme's box border.
func Panel(t Theme, lines []string) string {
	return t.Box.Render(strings.Join(lines, "\n"))
}

// Dots renders a slide indicator such as "○ ● ○ ○".
func Dots(current, total int) string {
	if total <= 0 {
		return ""
	}
	parts := make([]string, total)
	for i := range parts {
		parts[i] = "○"
		if i == current {
			parts[i] = lipgloss.NewStyle().Foreground(Brand).Render("●")
		}
	}
	return strings.Join(parts, " ")
}

// PadRight fills s with spaces up to width visible cells.
func PadRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// Leader joins left and right with a dotted leader to fill width.
func Leader(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		return left + " " + right
	}
	return left + " " + strings.Repeat("·", gap) + " " + right
}
