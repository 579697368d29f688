package app

import (
	"errors"

	"github.com/atomicstack/selectbox/internal/logging/events"
	"github.com/atomicstack/selectbox/internal/selection"
	"github.com/atomicstack/selectbox/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	OptionsFile string
	Width       int
	ShowFooter  bool
	Placeholder string
}

// Run executes the Bubble Tea program over opts.
func Run(cfg Config, opts []selection.Option) error {
	model := ui.NewModel(opts, cfg.Width, cfg.ShowFooter, cfg.Placeholder)
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	_, err := program.Run()
	events.App.Exit(err)
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
