package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tiny-theme-switcher/internal/manager"
	"github.com/jmylchreest/tiny-theme-switcher/internal/store"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-apply the theme whenever it changes on disk",
	Long: `Apply the current theme, then keep running and apply it again each time
themes.yaml or the selection file changes.

Useful in a window manager autostart so that edits made with
"tts theme set" or by hand take effect immediately. Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := getManager()
	paths := m.Paths()

	watcher, err := store.NewFileWatcher(logger, paths.Themes, paths.Pointer)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Start(); err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}
	defer watcher.Stop()

	if err := m.Apply(ctx); err != nil {
		return err
	}
	logger.Info("watching for theme changes", "dir", paths.Dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-watcher.Changes():
			if err := reapply(ctx); err != nil {
				// Keep watching; a half-written file is fixed by the next save
				logger.Warn("failed to re-apply theme", "error", err)
			}
		}
	}
}

// reapply reloads state from disk and applies the selected theme.
func reapply(ctx context.Context) error {
	m, err := manager.New(manager.Options{
		ConfigDir: globalOpts.configDir,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	themeManager = m

	name, _ := m.Selected()
	logger.Info("theme changed, applying", "theme", name)
	return m.Apply(ctx)
}
