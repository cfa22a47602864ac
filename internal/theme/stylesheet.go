package theme

import (
	"fmt"
	"io"
	"strings"

	"github.com/wonderland-desktop/wonderctl/internal/color"
)

const defineColor = "@define-color"

// ParseSeeds scans a waybar stylesheet for the foreground and background
// declarations:
//
//	@define-color foreground #cdd6f4;
//
// Only those two exact names are recognized. A later declaration replaces
// an earlier one. Anything else in the file is ignored. Lines have no
// length limit.
func ParseSeeds(r io.Reader) (fg, bg color.Color, err error) {
	var haveFG, haveBG bool

	data, err := io.ReadAll(r)
	if err != nil {
		return fg, bg, fmt.Errorf("read stylesheet: %w", err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		name, value, ok := defineColorLine(line)
		if !ok {
			continue
		}

		switch name {
		case "foreground":
			if fg, err = color.FromHex(value); err != nil {
				return fg, bg, fmt.Errorf("parse foreground: %w", err)
			}
			haveFG = true
		case "background":
			if bg, err = color.FromHex(value); err != nil {
				return fg, bg, fmt.Errorf("parse background: %w", err)
			}
			haveBG = true
		}
	}
	if !haveFG {
		return fg, bg, &MissingColorError{Name: "foreground"}
	}
	if !haveBG {
		return fg, bg, &MissingColorError{Name: "background"}
	}
	return fg, bg, nil
}

// defineColorLine splits "@define-color <name> <value>;" into name and value.
func defineColorLine(line string) (name, value string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) < 3 || fields[0] != defineColor {
		return "", "", false
	}
	return fields[1], strings.TrimRight(fields[2], ";"), true
}
