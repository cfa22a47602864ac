package theme

import (
	"fmt"
	"os"
	"path/filepath"
)

// NameResolver reports the name of the active theme.
type NameResolver interface {
	CurrentName() (string, error)
}

// LinkResolver reads the active theme from a symlink whose target's last
// path segment is the theme name. The theme itself is not checked.
type LinkResolver struct {
	Path string
}

// CurrentName implements NameResolver.
func (r LinkResolver) CurrentName() (string, error) {
	target, err := os.Readlink(r.Path)
	if err != nil {
		return "", fmt.Errorf("read current theme link %s: %w", r.Path, err)
	}
	return lastSegment(target)
}

func lastSegment(target string) (string, error) {
	if target == "" {
		return "", &InvalidPathError{Path: target}
	}
	base := filepath.Base(filepath.Clean(target))
	switch base {
	case string(filepath.Separator), ".", "..":
		return "", &InvalidPathError{Path: target}
	}
	return base, nil
}

// StaticName is a NameResolver that always returns itself.
type StaticName string

// CurrentName implements NameResolver.
func (s StaticName) CurrentName() (string, error) {
	return string(s), nil
}
