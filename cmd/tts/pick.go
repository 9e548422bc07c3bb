package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tiny-theme-switcher/internal/tui"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick and apply a theme interactively",
	Long: `Open an interactive picker listing every theme.

Key bindings:
  j/k, ↑/↓    Navigate list
  /           Filter by name
  enter       Select and apply the highlighted theme
  q, esc      Quit without changes`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	m := getManager()

	names := m.Names()
	if len(names) == 0 {
		return fmt.Errorf("no themes defined; create one with 'tts theme create --name NAME'")
	}

	current, _ := m.Selected()
	chosen, err := tui.Run(tui.RunOptions{
		Names:   names,
		Themes:  m.Themes(),
		Current: current,
	})
	if err != nil {
		return fmt.Errorf("picker failed: %w", err)
	}
	if chosen == "" {
		logger.Debug("picker cancelled")
		return nil
	}

	if err := m.SelectTheme(chosen); err != nil {
		return err
	}
	return m.Apply(cmd.Context())
}
