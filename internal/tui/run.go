package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive page and blocks until the user quits.
func Run(opt Options) error {
	m := New(opt)
	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if opt.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opt.Context))
	}
	p := tea.NewProgram(m, progOpts...)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
