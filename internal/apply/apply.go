// Package apply writes theme fragments for external desktop tools.
package apply

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmylchreest/tiny-theme-switcher/internal/config"
	"github.com/jmylchreest/tiny-theme-switcher/internal/model"
)

// Applier applies one theme field to an external tool.
type Applier interface {
	// Field returns the theme field this applier consumes.
	Field() model.Field

	// Apply performs the side effect for value. It must be idempotent.
	Apply(ctx context.Context, value string) error
}

// ApplyError represents a failure applying a single field.
type ApplyError struct {
	Field   model.Field
	Message string
	Err     error
}

func (e *ApplyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ApplyError) Unwrap() error {
	return e.Err
}

// Set is an ordered collection of appliers.
type Set struct {
	logger   *slog.Logger
	appliers []Applier
}

// NewSet returns the standard appliers configured from cfg.
// A nil runner executes real commands.
func NewSet(cfg *config.Config, runner Runner, logger *slog.Logger) *Set {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Set{
		logger: logger,
		appliers: []Applier{
			NewWallpaper(runner, cfg.Wallpaper.Command, cfg.Wallpaper.Args),
			NewRofi(cfg.RofiConfigPath(), cfg.Rofi.Layout),
			NewPolybar(cfg.PolybarColorsPath(), cfg.Polybar.ThemesDir),
			NewAlacritty(cfg.AlacrittyConfigPath()),
		},
	}
}

// NewSetWith builds a Set from explicit appliers.
func NewSetWith(logger *slog.Logger, appliers ...Applier) *Set {
	if logger == nil {
		logger = slog.Default()
	}
	return &Set{logger: logger, appliers: appliers}
}

// Apply runs every applier whose field is set on t.
// Unset fields are skipped. The first failure stops the run.
func (s *Set) Apply(ctx context.Context, t model.Theme) error {
	handled := make(map[model.Field]bool, len(s.appliers))

	for _, a := range s.appliers {
		field := a.Field()
		handled[field] = true

		value := t.Get(field)
		if value == "" {
			continue
		}

		s.logger.Debug("applying theme field", "field", field, "value", value)
		if err := a.Apply(ctx, value); err != nil {
			return err
		}
	}

	for _, field := range model.Fields() {
		if !handled[field] && t.Get(field) != "" {
			s.logger.Debug("no applier for field, skipping", "field", field)
		}
	}

	return nil
}
