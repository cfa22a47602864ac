package preset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wonderland-desktop/wonderctl/internal/config"
)

const presetExt = ".yaml"

// Store finds presets in a list of directories, then in the bundled set.
type Store struct {
	dirs []string
}

// NewStore creates a store searching dirs in order.
func NewStore(dirs ...string) *Store {
	return &Store{dirs: dirs}
}

// DefaultStore searches the user config dir, then the data dir.
func DefaultStore() *Store {
	return NewStore(
		filepath.Join(config.ConfigDir(), "presets"),
		filepath.Join(config.DataDir(), "presets"),
	)
}

// Load loads a preset by name. User presets shadow bundled ones.
func (s *Store) Load(name string) (*Preset, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("invalid preset name: %q", name)
	}

	for _, dir := range s.dirs {
		path := filepath.Join(dir, name+presetExt)
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("read preset %s: %w", path, err)
		}
		return parseAndValidate(path, data)
	}

	if data, ok := Bundled[name]; ok {
		return parseAndValidate("bundled:"+name, []byte(data))
	}

	return nil, fmt.Errorf("preset not found: %s", name)
}

func parseAndValidate(source string, data []byte) (*Preset, error) {
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse preset %s: %w", source, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("validate preset %s: %w", source, err)
	}
	return p, nil
}

// List returns available preset names, sorted.
func (s *Store) List() ([]string, error) {
	seen := make(map[string]bool)
	for name := range Bundled {
		seen[name] = true
	}

	for _, dir := range s.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("read presets dir %s: %w", dir, err)
		}
		for _, e := range entries {
			if e.IsDir() || filepath.Ext(e.Name()) != presetExt {
				continue
			}
			seen[strings.TrimSuffix(e.Name(), presetExt)] = true
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
