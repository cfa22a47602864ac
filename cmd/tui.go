package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/wonderland-desktop/wonderctl/internal/tui"
)

func runTUI() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	l, err := cfg.ThemeLoader()
	if err != nil {
		return err
	}

	// Browsing works without a compositor; applying does not.
	var applier tui.Applier
	if c, err := cfg.HyprlandClient(); err != nil {
		log.Debug("compositor unavailable", "err", err)
	} else {
		applier = newSyncer(cfg, c)
	}

	p := tea.NewProgram(tui.New(l, applier), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}
