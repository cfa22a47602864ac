package theme

import (
	"errors"
	"fmt"
)

// ErrNoHomeDir is returned when default theme paths cannot be resolved.
var ErrNoHomeDir = errors.New("home directory not set")

// NotFoundError is returned when a theme directory does not exist.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("theme not found: %s", e.Name)
}

// InvalidPathError is returned when the current-theme link target has no
// final path segment.
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid theme path: %q", e.Path)
}

// MissingColorError is returned when waybar.css lacks a required declaration.
type MissingColorError struct {
	Name string
}

func (e *MissingColorError) Error() string {
	return fmt.Sprintf("missing required color: %s", e.Name)
}
