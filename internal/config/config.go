// Package config handles path resolution and settings file loading.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ToolDirName is the subdirectory of the config home owned by this tool.
const ToolDirName = "tiny-theme-switcher"

// File names inside the tool directory.
const (
	PointerFileName  = "theme"
	ThemesFileName   = "themes.yaml"
	SettingsFileName = "config.toml"
)

// Default settings values.
const (
	DefaultWallpaperCommand = "feh"
	DefaultRofiLayout       = "layout.rasi"
	DefaultPolybarThemesDir = "~/.config/polybar/themes"
)

// Config holds the optional tool settings loaded from config.toml.
type Config struct {
	Wallpaper WallpaperConfig `toml:"wallpaper"`
	Rofi      RofiConfig      `toml:"rofi"`
	Polybar   PolybarConfig   `toml:"polybar"`
	Alacritty AlacrittyConfig `toml:"alacritty"`
}

// WallpaperConfig configures the external wallpaper setter.
type WallpaperConfig struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"` // Placed before the wallpaper path
}

// RofiConfig configures the rofi fragment.
type RofiConfig struct {
	Config string `toml:"config"` // Empty = <config home>/rofi/config.rasi
	Layout string `toml:"layout"`
}

// PolybarConfig configures the polybar fragment.
type PolybarConfig struct {
	Colors    string `toml:"colors"` // Empty = <config home>/polybar/colors
	ThemesDir string `toml:"themes_dir"`
}

// AlacrittyConfig configures the alacritty rewrite.
type AlacrittyConfig struct {
	Config string `toml:"config"` // Empty = <config home>/alacritty/alacritty.yml
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Wallpaper: WallpaperConfig{
			Command: DefaultWallpaperCommand,
			Args:    []string{"--bg-fill"},
		},
		Rofi: RofiConfig{
			Layout: DefaultRofiLayout,
		},
		Polybar: PolybarConfig{
			ThemesDir: DefaultPolybarThemesDir,
		},
	}
}

// ConfigHome returns the user config root.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigHome() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return configHome
}

// RofiConfigPath returns the rofi fragment path.
func (c *Config) RofiConfigPath() string {
	if c.Rofi.Config != "" {
		return ExpandHome(c.Rofi.Config)
	}
	return filepath.Join(ConfigHome(), "rofi", "config.rasi")
}

// PolybarColorsPath returns the polybar fragment path.
func (c *Config) PolybarColorsPath() string {
	if c.Polybar.Colors != "" {
		return ExpandHome(c.Polybar.Colors)
	}
	return filepath.Join(ConfigHome(), "polybar", "colors")
}

// AlacrittyConfigPath returns the alacritty config path.
func (c *Config) AlacrittyConfigPath() string {
	if c.Alacritty.Config != "" {
		return ExpandHome(c.Alacritty.Config)
	}
	return filepath.Join(ConfigHome(), "alacritty", "alacritty.yml")
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// LoadConfig loads settings from the specified path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.Wallpaper.Command == "" {
		cfg.Wallpaper.Command = DefaultWallpaperCommand
	}
	if cfg.Rofi.Layout == "" {
		cfg.Rofi.Layout = DefaultRofiLayout
	}
	if cfg.Polybar.ThemesDir == "" {
		cfg.Polybar.ThemesDir = DefaultPolybarThemesDir
	}

	return cfg, nil
}

// Save writes the settings to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
