// Package themesync pushes theme colors to the compositor.
package themesync

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/wonderland-desktop/wonderctl/internal/theme"
)

// Keyworder sets live compositor options.
type Keyworder interface {
	Keyword(option, value string) error
}

// Syncer maps a theme's border colors onto compositor options.
type Syncer struct {
	Client         Keyworder
	ActiveOption   string // e.g. general:col.active_border
	InactiveOption string // e.g. general:col.inactive_border
}

// Apply sets the active border to BorderActive and the inactive border to Border.
func (s *Syncer) Apply(t theme.Theme) error {
	if s.ActiveOption != "" {
		if err := s.Client.Keyword(s.ActiveOption, t.BorderActive.HyprRGBA()); err != nil {
			return fmt.Errorf("set %s: %w", s.ActiveOption, err)
		}
	}
	if s.InactiveOption != "" {
		if err := s.Client.Keyword(s.InactiveOption, t.Border.HyprRGBA()); err != nil {
			return fmt.Errorf("set %s: %w", s.InactiveOption, err)
		}
	}
	return nil
}

// Source provides the active theme.
type Source interface {
	CurrentName() (string, error)
	Load(name string) (theme.Theme, error)
}

// Watcher re-applies the active theme whenever its name changes.
type Watcher struct {
	Source   Source
	Syncer   *Syncer
	Interval time.Duration

	applied string
}

// Run applies the current theme, then polls until ctx is done.
// Errors are logged and polling continues.
func (w *Watcher) Run(ctx context.Context) error {
	interval := w.Interval
	if interval <= 0 {
		interval = 5 * time.Second
	}

	w.Poll()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.Poll()
		}
	}
}

// Poll checks the active theme once and applies it if it changed.
// It reports whether a theme was applied.
func (w *Watcher) Poll() bool {
	name, err := w.Source.CurrentName()
	if err != nil {
		log.Warn("resolve current theme", "err", err)
		return false
	}
	if name == w.applied {
		return false
	}

	t, err := w.Source.Load(name)
	if err != nil {
		log.Warn("load theme", "theme", name, "err", err)
		return false
	}
	if err := w.Syncer.Apply(t); err != nil {
		log.Warn("apply theme", "theme", name, "err", err)
		return false
	}

	log.Info("applied theme", "theme", name)
	w.applied = name
	return true
}
