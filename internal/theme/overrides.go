package theme

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"github.com/wonderland-desktop/wonderctl/internal/color"
)

// overrides is the optional theme.toml file. Any color set under
// [colors] replaces the derived value.
type overrides struct {
	Colors struct {
		Primary      *color.Color `toml:"primary"`
		Secondary    *color.Color `toml:"secondary"`
		Surface      *color.Color `toml:"surface"`
		Error        *color.Color `toml:"error"`
		Warning      *color.Color `toml:"warning"`
		Success      *color.Color `toml:"success"`
		Border       *color.Color `toml:"border"`
		BorderActive *color.Color `toml:"border_active"`
		TextMuted    *color.Color `toml:"text_muted"`
	} `toml:"colors"`
}

func applyOverrides(t *Theme, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", overridesFile, err)
	}

	var o overrides
	if err := toml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("parse %s: %w", overridesFile, err)
	}

	set := func(dst *color.Color, src *color.Color) {
		if src != nil {
			*dst = *src
		}
	}
	set(&t.Primary, o.Colors.Primary)
	set(&t.Secondary, o.Colors.Secondary)
	set(&t.Surface, o.Colors.Surface)
	set(&t.Error, o.Colors.Error)
	set(&t.Warning, o.Colors.Warning)
	set(&t.Success, o.Colors.Success)
	set(&t.Border, o.Colors.Border)
	set(&t.BorderActive, o.Colors.BorderActive)
	set(&t.TextMuted, o.Colors.TextMuted)

	log.Debug("applied theme overrides", "path", path)
	return nil
}
