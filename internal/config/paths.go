package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Paths are the files owned by the tool inside a config directory.
type Paths struct {
	Base     string // Config root (override or ConfigHome)
	Dir      string // <Base>/tiny-theme-switcher
	Pointer  string // Currently selected theme name
	Themes   string // Themes database
	Settings string // Optional settings file
}

// ResolvePaths derives the tool paths from base, falling back to ConfigHome
// when base is empty. The tool directory is created if missing; base itself
// must already exist.
func ResolvePaths(base string) (Paths, error) {
	if base == "" {
		base = ConfigHome()
	}
	if base == "" {
		return Paths{}, errors.New("unable to determine config directory")
	}

	info, err := os.Stat(base)
	if err != nil {
		return Paths{}, fmt.Errorf("config directory %s: %w", base, err)
	}
	if !info.IsDir() {
		return Paths{}, fmt.Errorf("config directory %s is not a directory", base)
	}

	dir := filepath.Join(base, ToolDirName)
	if err := os.Mkdir(dir, 0755); err != nil && !errors.Is(err, os.ErrExist) {
		return Paths{}, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	return Paths{
		Base:     base,
		Dir:      dir,
		Pointer:  filepath.Join(dir, PointerFileName),
		Themes:   filepath.Join(dir, ThemesFileName),
		Settings: filepath.Join(dir, SettingsFileName),
	}, nil
}
