package theme

import (
	"github.com/wonderland-desktop/wonderctl/internal/color"
)

// Built-in status colors shared by every theme.
const (
	errorHex   = "#f38ba8"
	warningHex = "#f9e2af"
	successHex = "#a6e3a1"
)

// Seed colors used when a theme ships no waybar.css.
const (
	DefaultForeground = "#cdd6f4"
	DefaultBackground = "#1e1e2e"
)

// Theme is a fully derived palette. It is a snapshot: loading again
// produces a new value.
type Theme struct {
	Name string `json:"name" toml:"name"`
	Path string `json:"path" toml:"path"`

	// Seeds, read from waybar.css.
	Foreground color.Color `json:"foreground" toml:"foreground"`
	Background color.Color `json:"background" toml:"background"`

	// Derived from the seeds, optionally overridden by theme.toml.
	Primary      color.Color `json:"primary" toml:"primary"`
	Secondary    color.Color `json:"secondary" toml:"secondary"`
	Surface      color.Color `json:"surface" toml:"surface"`
	Error        color.Color `json:"error" toml:"error"`
	Warning      color.Color `json:"warning" toml:"warning"`
	Success      color.Color `json:"success" toml:"success"`
	Border       color.Color `json:"border" toml:"border"`
	BorderActive color.Color `json:"border_active" toml:"border_active"`
	TextMuted    color.Color `json:"text_muted" toml:"text_muted"`
}

// Derive builds the extended palette from foreground and background.
// Name and Path are left empty.
func Derive(fg, bg color.Color) Theme {
	t := Theme{
		Foreground:   fg,
		Background:   bg,
		Primary:      fg,
		Secondary:    fg.Darken(0.2),
		Error:        constantOr(errorHex, fg),
		Warning:      constantOr(warningHex, fg),
		Success:      constantOr(successHex, fg),
		BorderActive: fg,
	}

	if bg.IsDark() {
		t.Surface = bg.Lighten(0.08)
		t.TextMuted = fg.Darken(0.3)
		t.Border = bg.Lighten(0.15)
	} else {
		t.Surface = bg.Darken(0.05)
		t.TextMuted = fg.Lighten(0.3)
		t.Border = bg.Darken(0.15)
	}

	return t
}

func constantOr(hex string, fallback color.Color) color.Color {
	c, err := color.FromHex(hex)
	if err != nil {
		return fallback
	}
	return c
}

// IsDark reports whether the theme uses the dark derivation branch.
func (t Theme) IsDark() bool {
	return t.Background.IsDark()
}

// Palette returns the named colors in display order.
func (t Theme) Palette() []NamedColor {
	return []NamedColor{
		{"foreground", t.Foreground},
		{"background", t.Background},
		{"primary", t.Primary},
		{"secondary", t.Secondary},
		{"surface", t.Surface},
		{"error", t.Error},
		{"warning", t.Warning},
		{"success", t.Success},
		{"border", t.Border},
		{"border_active", t.BorderActive},
		{"text_muted", t.TextMuted},
	}
}

// NamedColor pairs a palette slot with its value.
type NamedColor struct {
	Name  string
	Color color.Color
}
