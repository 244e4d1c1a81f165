package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	faint     = lipgloss.NewStyle().Faint(true)

	symCheck = "✔"
	symCross = "✖"
)

// SetColorForcing overrides terminal detection: force wins over disable.
func SetColorForcing(force, disable bool) {
	switch {
	case force:
		lipgloss.SetColorProfile(termenv.TrueColor)
	case disable:
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

func OK(w io.Writer, msg string)   { fmt.Fprintln(w, okStyle.Render(symCheck+" "+msg)) }
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, failStyle.Render(symCross+" "+msg)) }

// Hint prints a dimmed line to w.
func Hint(w io.Writer, msg string) { fmt.Fprintln(w, faint.Render(msg)) }
