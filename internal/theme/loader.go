// Package theme loads themes from disk and derives their UI palette.
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/wonderland-desktop/wonderctl/internal/color"
)

// Default locations, relative to the home directory.
const (
	ThemesDir   = ".config/theme/themes"
	CurrentLink = ".config/theme/current/theme"
)

const (
	stylesheetFile = "waybar.css"
	overridesFile  = "theme.toml"
	backgroundsDir = "backgrounds"
)

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
	".bmp":  true,
}

// Loader reads themes from a themes directory. It holds no state beyond
// its paths and is safe for concurrent use.
type Loader struct {
	themesDir string
	current   NameResolver
}

// NewLoader creates a loader that resolves the active theme through the
// symlink at currentLink.
func NewLoader(themesDir, currentLink string) *Loader {
	return &Loader{themesDir: themesDir, current: LinkResolver{Path: currentLink}}
}

// NewLoaderWithResolver creates a loader with a custom active-theme resolver.
func NewLoaderWithResolver(themesDir string, r NameResolver) *Loader {
	return &Loader{themesDir: themesDir, current: r}
}

// DefaultPaths returns the themes directory and current-theme link under home.
func DefaultPaths(home string) (themesDir, currentLink string) {
	return filepath.Join(home, ThemesDir), filepath.Join(home, CurrentLink)
}

// NewDefaultLoader creates a loader for the standard locations under $HOME.
func NewDefaultLoader() (*Loader, error) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return nil, ErrNoHomeDir
	}
	return NewLoader(DefaultPaths(home)), nil
}

// Dir returns the themes directory.
func (l *Loader) Dir() string {
	return l.themesDir
}

// ListThemes returns the names of all theme directories, sorted.
func (l *Loader) ListThemes() ([]string, error) {
	entries, err := os.ReadDir(l.themesDir)
	if err != nil {
		return nil, fmt.Errorf("read themes dir %s: %w", l.themesDir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
			continue
		}
		// Symlinked theme directories count too.
		if e.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(l.themesDir, e.Name())); err == nil && info.IsDir() {
				names = append(names, e.Name())
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

// CurrentName returns the active theme name without checking that it exists.
func (l *Loader) CurrentName() (string, error) {
	return l.current.CurrentName()
}

// LoadCurrent loads the active theme.
func (l *Loader) LoadCurrent() (Theme, error) {
	name, err := l.CurrentName()
	if err != nil {
		return Theme{}, err
	}
	return l.Load(name)
}

// Load reads a theme by name and derives its palette.
func (l *Loader) Load(name string) (Theme, error) {
	dir, err := l.themeDir(name)
	if err != nil {
		return Theme{}, err
	}

	fg, bg, err := loadSeeds(filepath.Join(dir, stylesheetFile))
	if err != nil {
		return Theme{}, fmt.Errorf("theme %s: %w", name, err)
	}

	t := Derive(fg, bg)
	t.Name = name
	t.Path = dir

	if err := applyOverrides(&t, filepath.Join(dir, overridesFile)); err != nil {
		return Theme{}, fmt.Errorf("theme %s: %w", name, err)
	}

	return t, nil
}

// themeDir returns the directory of an existing theme. Names that are
// empty, contain a separator, or are "." or ".." are never found.
func (l *Loader) themeDir(name string) (string, error) {
	if name == "" || strings.ContainsRune(name, filepath.Separator) || name == "." || name == ".." {
		return "", &NotFoundError{Name: name}
	}
	dir := filepath.Join(l.themesDir, name)
	if _, err := os.Stat(dir); err != nil {
		return "", &NotFoundError{Name: name}
	}
	return dir, nil
}

func loadSeeds(path string) (fg, bg color.Color, err error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug("no stylesheet, using default seeds", "path", path)
		return color.MustHex(DefaultForeground), color.MustHex(DefaultBackground), nil
	}
	if err != nil {
		return fg, bg, fmt.Errorf("open %s: %w", stylesheetFile, err)
	}
	defer f.Close()

	return ParseSeeds(f)
}

// BackgroundsDir returns the wallpaper directory of a theme. No I/O.
func (l *Loader) BackgroundsDir(name string) string {
	return filepath.Join(l.themesDir, name, backgroundsDir)
}

// ListBackgrounds returns the image files in a theme's backgrounds
// directory, sorted. A theme without the directory has none; an unknown
// theme is a NotFoundError.
func (l *Loader) ListBackgrounds(name string) ([]string, error) {
	themeDir, err := l.themeDir(name)
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(themeDir, backgroundsDir)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read backgrounds dir %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}
