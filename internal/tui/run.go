package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/neutech/estates/internal/service"
)

// Run starts the terminal UI and blocks until the user quits.
func Run(storage service.Storage, describer service.Describer, cfg Config) error {
	p := tea.NewProgram(New(storage, describer, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running terminal UI: %w", err)
	}
	return nil
}
