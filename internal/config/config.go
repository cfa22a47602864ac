package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/wonderland-desktop/wonderctl/internal/hyprland"
	"github.com/wonderland-desktop/wonderctl/internal/theme"
)

// ThemeConfig holds theme locations.
type ThemeConfig struct {
	ThemesDir   string `toml:"themes_dir"`   // supports ~/
	CurrentLink string `toml:"current_link"` // symlink naming the active theme
}

// HyprlandConfig holds compositor socket settings.
type HyprlandConfig struct {
	SocketLayout string `toml:"socket_layout"` // "runtime" or "legacy"
	Socket       string `toml:"socket"`        // explicit path, skips discovery
}

// SyncConfig holds theme sync settings.
type SyncConfig struct {
	Interval       int    `toml:"interval"` // seconds between polls
	ActiveBorder   string `toml:"active_border"`
	InactiveBorder string `toml:"inactive_border"`
}

// Config holds all wonderctl configuration.
type Config struct {
	Theme    ThemeConfig    `toml:"theme"`
	Hyprland HyprlandConfig `toml:"hyprland"`
	Sync     SyncConfig     `toml:"sync"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Theme: ThemeConfig{
			ThemesDir:   "~/" + theme.ThemesDir,
			CurrentLink: "~/" + theme.CurrentLink,
		},
		Hyprland: HyprlandConfig{
			SocketLayout: string(hyprland.LayoutRuntime),
		},
		Sync: SyncConfig{
			Interval:       5,
			ActiveBorder:   "general:col.active_border",
			InactiveBorder: "general:col.inactive_border",
		},
	}
}

// ConfigPath returns the path of config.toml.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// LoadConfig loads configuration from the config file, using defaults for missing values.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(ConfigPath())
}

// LoadConfigFrom loads configuration from path, using defaults for missing values.
func LoadConfigFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // No config file, use defaults
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Validate and fix invalid values
	if cfg.Sync.Interval < 1 {
		cfg.Sync.Interval = 5
	}
	switch hyprland.SocketLayout(cfg.Hyprland.SocketLayout) {
	case hyprland.LayoutRuntime, hyprland.LayoutLegacy:
	case "":
		cfg.Hyprland.SocketLayout = string(hyprland.LayoutRuntime)
	default:
		return nil, fmt.Errorf("invalid socket_layout %q (valid: runtime, legacy)", cfg.Hyprland.SocketLayout)
	}

	return cfg, nil
}

// SaveConfig writes the config to the config file.
func SaveConfig(cfg *Config) error {
	if err := os.MkdirAll(ConfigDir(), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(), data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// DataDir returns the data directory for presets, logs and pid files.
func DataDir() string {
	if dir := os.Getenv("WONDERCTL_DATA_DIR"); dir != "" {
		return dir
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "wonderctl")
}

// ConfigDir returns the config directory for user settings and presets.
func ConfigDir() string {
	if dir := os.Getenv("WONDERCTL_CONFIG_DIR"); dir != "" {
		return dir
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, "wonderctl")
}

// ThemeLoader builds a loader for the configured theme locations.
func (c *Config) ThemeLoader() (*theme.Loader, error) {
	themesDir := ExpandPath(c.Theme.ThemesDir)
	currentLink := ExpandPath(c.Theme.CurrentLink)
	if strings.HasPrefix(themesDir, "~") || strings.HasPrefix(currentLink, "~") {
		return nil, theme.ErrNoHomeDir
	}
	return theme.NewLoader(themesDir, currentLink), nil
}

// HyprlandEnv combines the process environment with the configured socket layout.
func (c *Config) HyprlandEnv() hyprland.Env {
	env := hyprland.EnvFromOS()
	env.Layout = hyprland.SocketLayout(c.Hyprland.SocketLayout)
	return env
}

// HyprlandClient builds a compositor client. An explicit socket path in the
// config bypasses discovery.
func (c *Config) HyprlandClient() (*hyprland.Client, error) {
	if c.Hyprland.Socket != "" {
		return hyprland.NewClientWithSocket(ExpandPath(c.Hyprland.Socket)), nil
	}
	return hyprland.NewClient(c.HyprlandEnv())
}
