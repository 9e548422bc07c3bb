// Package manager owns loading, selecting, applying and persisting themes.
package manager

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/jmylchreest/tiny-theme-switcher/internal/apply"
	"github.com/jmylchreest/tiny-theme-switcher/internal/config"
	"github.com/jmylchreest/tiny-theme-switcher/internal/model"
	"github.com/jmylchreest/tiny-theme-switcher/internal/store"
)

var (
	// ErrThemeNotFound is returned when a named theme does not exist.
	ErrThemeNotFound = errors.New("theme not found")

	// ErrNoThemeSelected is returned when an operation needs a selected theme
	// and the database is empty.
	ErrNoThemeSelected = errors.New("no theme selected")
)

// Options configures a Manager.
type Options struct {
	// ConfigDir overrides the config root. Empty uses the XDG config home.
	ConfigDir string

	// Settings overrides the settings loaded from config.toml.
	Settings *config.Config

	// Appliers overrides the applier set built from Settings.
	Appliers *apply.Set

	Logger *slog.Logger
}

// Manager holds the themes database and the current selection for a single
// invocation. It is not safe for concurrent use.
type Manager struct {
	logger   *slog.Logger
	paths    config.Paths
	settings *config.Config
	appliers *apply.Set

	themesFile  *store.ThemesFile
	pointerFile *store.PointerFile

	themes   map[string]model.Theme
	selected string // Empty when no theme is selected
}

// New resolves paths, loads the database and selects the stored theme.
func New(opts Options) (*Manager, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	m := &Manager{logger: logger}
	if err := m.GeneratePaths(opts.ConfigDir); err != nil {
		return nil, err
	}

	m.settings = opts.Settings
	if m.settings == nil {
		settings, err := config.LoadConfig(m.paths.Settings)
		if err != nil {
			return nil, fmt.Errorf("failed to load settings %s: %w", m.paths.Settings, err)
		}
		m.settings = settings
	}

	m.appliers = opts.Appliers
	if m.appliers == nil {
		m.appliers = apply.NewSet(m.settings, nil, logger)
	}

	if err := m.LoadThemes(); err != nil {
		return nil, err
	}
	if err := m.SelectTheme(""); err != nil {
		return nil, err
	}
	return m, nil
}

// GeneratePaths resolves the config directory and derives the pointer and
// database file paths, creating the tool directory if missing.
func (m *Manager) GeneratePaths(configDir string) error {
	paths, err := config.ResolvePaths(configDir)
	if err != nil {
		return err
	}
	m.paths = paths
	m.themesFile = store.NewThemesFile(paths.Themes)
	m.pointerFile = store.NewPointerFile(paths.Pointer)
	m.logger.Debug("resolved paths", "dir", paths.Dir, "themes", paths.Themes, "pointer", paths.Pointer)
	return nil
}

// Paths returns the resolved file paths.
func (m *Manager) Paths() config.Paths {
	return m.paths
}

// LoadThemes reads the themes database, replacing the in-memory set.
func (m *Manager) LoadThemes() error {
	themes, err := m.themesFile.Load()
	if err != nil {
		return fmt.Errorf("failed to load themes: %w", err)
	}
	m.themes = themes
	m.logger.Debug("loaded themes", "count", len(themes))
	return nil
}

// defaultName is the alphabetically first theme name, or empty.
func (m *Manager) defaultName() string {
	names := m.Names()
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// SelectTheme resolves and activates a theme.
//
// Resolution order: the explicit name, else the pointer file, else the
// alphabetically first theme. A resolved name that does not exist falls back
// to the alphabetical default. The pointer file is rewritten when an explicit
// name is accepted or when a fallback produced a theme.
func (m *Manager) SelectTheme(name string) error {
	explicit := name != ""

	resolved := name
	if !explicit {
		stored, found, err := m.pointerFile.Load()
		if err != nil {
			return fmt.Errorf("failed to read selection: %w", err)
		}
		if found {
			resolved = stored
		} else {
			resolved = m.defaultName()
		}
	}

	persist := explicit
	if _, ok := m.themes[resolved]; !ok {
		if resolved != "" {
			m.logger.Debug("theme not found, using default", "theme", resolved)
		}
		resolved = m.defaultName()
		persist = resolved != ""
	}

	m.selected = resolved
	if persist {
		if err := m.pointerFile.Save(resolved); err != nil {
			return fmt.Errorf("failed to save selection: %w", err)
		}
	}
	return nil
}

// useDefault selects the alphabetical default without touching the pointer file.
func (m *Manager) useDefault() {
	m.selected = m.defaultName()
}

// Selected returns the selected theme name. ok is false when none is selected.
func (m *Manager) Selected() (name string, ok bool) {
	return m.selected, m.selected != ""
}

// Current returns a copy of the selected theme.
// The empty theme is returned when none is selected.
func (m *Manager) Current() model.Theme {
	if m.selected == "" {
		return model.EmptyTheme()
	}
	return m.themes[m.selected]
}

// Names returns all theme names in alphabetical order.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.themes))
	for name := range m.themes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Themes returns a copy of the themes mapping.
func (m *Manager) Themes() map[string]model.Theme {
	out := make(map[string]model.Theme, len(m.themes))
	for name, t := range m.themes {
		out[name] = t
	}
	return out
}

// Theme returns the named theme.
func (m *Manager) Theme(name string) (model.Theme, error) {
	t, ok := m.themes[name]
	if !ok {
		return model.Theme{}, fmt.Errorf("%w: %s", ErrThemeNotFound, name)
	}
	return t, nil
}

// Apply applies the selected theme. It does nothing when none is selected.
func (m *Manager) Apply(ctx context.Context) error {
	if m.selected == "" {
		m.logger.Debug("no theme selected, nothing to apply")
		return nil
	}
	m.logger.Debug("applying theme", "theme", m.selected)
	if err := m.appliers.Apply(ctx, m.Current()); err != nil {
		return fmt.Errorf("failed to apply theme %s: %w", m.selected, err)
	}
	return nil
}

// Append adds an empty theme under name, replacing any existing one, and
// persists the database.
func (m *Manager) Append(name string) error {
	if name == "" {
		return errors.New("theme name must not be empty")
	}
	m.themes[name] = model.EmptyTheme()
	return m.Dump()
}

// Remove deletes the named theme and persists the database. If it was the
// selected theme, the alphabetical default becomes selected.
func (m *Manager) Remove(name string) error {
	if _, ok := m.themes[name]; !ok {
		return fmt.Errorf("%w: %s", ErrThemeNotFound, name)
	}
	delete(m.themes, name)

	if err := m.Dump(); err != nil {
		return err
	}

	if m.selected == name {
		m.useDefault()
	}
	return nil
}

// GetField returns one field of the selected theme.
func (m *Manager) GetField(field model.Field) (string, error) {
	if m.selected == "" {
		return "", ErrNoThemeSelected
	}
	return m.Current().Get(field), nil
}

// SetField sets one field of the selected theme and persists the database.
func (m *Manager) SetField(field model.Field, value string) error {
	if m.selected == "" {
		return ErrNoThemeSelected
	}

	t := m.themes[m.selected]
	if err := t.Set(field, value); err != nil {
		return err
	}
	m.themes[m.selected] = t
	return m.Dump()
}

// Dump writes the full themes database to disk.
func (m *Manager) Dump() error {
	if err := m.themesFile.Save(m.themes); err != nil {
		return fmt.Errorf("failed to save themes: %w", err)
	}
	return nil
}
