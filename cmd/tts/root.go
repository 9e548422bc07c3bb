// Package main provides the CLI entrypoint for tts.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tiny-theme-switcher/internal/manager"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	globalOpts struct {
		verbose   bool
		configDir string
	}
	logger *slog.Logger

	// themeManager is loaded fresh for every invocation
	themeManager *manager.Manager
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tts",
	Short: "Switch desktop themes on the fly",
	Long: `tts manages named desktop themes and applies them on the fly.

A theme bundles a wallpaper with theme names for rofi, polybar, alacritty
and gtk. Themes are stored in ~/.config/tiny-theme-switcher/themes.yaml and
the selected theme is remembered between runs.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		if globalOpts.configDir != "" {
			info, err := os.Stat(globalOpts.configDir)
			if err != nil {
				return fmt.Errorf("invalid --config: %w", err)
			}
			if !info.IsDir() {
				return fmt.Errorf("invalid --config: %s is not a directory", globalOpts.configDir)
			}
		}

		var err error
		themeManager, err = manager.New(manager.Options{
			ConfigDir: globalOpts.configDir,
			Logger:    logger,
		})
		if err != nil {
			return fmt.Errorf("failed to load themes: %w", err)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configDir, "config", "",
		"Path to the directory where all configs are saved (default: ~/.config)")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// getManager returns the manager for this invocation.
func getManager() *manager.Manager {
	return themeManager
}
