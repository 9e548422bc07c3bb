package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tiny-theme-switcher/internal/tui"
)

var showOpts struct {
	plain bool
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current theme",
	Long: `Show every field of the currently selected theme.

Output is styled when stdout is a terminal; use --plain for "field: value"
lines.`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	themeCmd.AddCommand(themeShowCmd)

	themeShowCmd.Flags().BoolVar(&showOpts.plain, "plain", false,
		"Disable styling")
}

func runShow(cmd *cobra.Command, args []string) error {
	m := getManager()

	name, ok := m.Selected()
	if !ok {
		fmt.Fprintln(cmd.ErrOrStderr(), "no theme selected")
		return nil
	}

	styled := !showOpts.plain && cmd.OutOrStdout() == os.Stdout &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))

	_, err := fmt.Fprint(cmd.OutOrStdout(), tui.RenderTheme(name, m.Current(), styled))
	return err
}
