package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tiny-theme-switcher/internal/manager"
)

var applyOpts struct {
	name string
}

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply a theme",
	Long: `Apply a theme to the desktop.

With --name, the theme is selected first and remembered for later runs.
Without it, the current selection is applied again. An unknown name falls
back to the alphabetically first theme.

Examples:
  # Switch to the "work" theme
  tts apply --name work

  # Re-apply the current theme (e.g. from an autostart script)
  tts apply`,
	Args: cobra.NoArgs,
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().StringVar(&applyOpts.name, "name", "",
		"Theme name to use, will reapply the previous one if unspecified")
	_ = applyCmd.RegisterFlagCompletionFunc("name", completeThemeNames)
}

func runApply(cmd *cobra.Command, args []string) error {
	m := getManager()

	if applyOpts.name != "" {
		if err := m.SelectTheme(applyOpts.name); err != nil {
			return err
		}
	}

	return m.Apply(cmd.Context())
}

// completeThemeNames offers existing theme names for shell completion.
func completeThemeNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	m := getManager()
	if m == nil {
		// Completion runs without the persistent pre-run hook
		var err error
		m, err = manager.New(manager.Options{ConfigDir: globalOpts.configDir})
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
	}
	return m.Names(), cobra.ShellCompDirectiveNoFileComp
}
