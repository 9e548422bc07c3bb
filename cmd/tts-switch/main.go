// Package main is the quick-switch entry point.
//
// Without arguments it lists theme names, one per line. With a single
// argument it selects that theme and applies it.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jmylchreest/tiny-theme-switcher/internal/manager"
)

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [theme]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(context.Background(), os.Stdout, logger, "", flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// run lists themes or switches to args[0]. configDir empty means the XDG
// config home.
func run(ctx context.Context, out io.Writer, logger *slog.Logger, configDir string, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("expected at most one theme name, got %d", len(args))
	}

	m, err := manager.New(manager.Options{ConfigDir: configDir, Logger: logger})
	if err != nil {
		return err
	}

	if len(args) == 0 {
		for _, name := range m.Names() {
			if _, err := fmt.Fprintln(out, name); err != nil {
				return err
			}
		}
		return nil
	}

	if err := m.SelectTheme(args[0]); err != nil {
		return err
	}
	return m.Apply(ctx)
}
