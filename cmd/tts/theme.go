package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tiny-theme-switcher/internal/adapter/output"
)

var themeOpts struct {
	name     string
	format   string
	template string
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Create, destroy or modify themes",
}

var themeCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new empty theme",
	Long: `Create a new theme with every field unset.

An existing theme with the same name is replaced.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getManager().Append(themeOpts.name); err != nil {
			return err
		}
		logger.Info("created theme", "name", themeOpts.name)
		return nil
	},
}

var themeDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a theme",
	Long: `Delete a theme.

If the deleted theme was selected, the alphabetically first remaining theme
becomes the selection.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getManager().Remove(themeOpts.name); err != nil {
			return err
		}
		logger.Info("deleted theme", "name", themeOpts.name)
		return nil
	},
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all themes",
	Long: `List all themes, one name per line in alphabetical order.

Examples:
  # Pick a theme with rofi
  tts theme list | rofi -dmenu | xargs tts-switch

  # Mark the selected theme
  tts theme list --template '{{if .Selected}}* {{else}}  {{end}}{{.Name}}'

  # Dump every theme as JSON
  tts theme list --format json`,
	Args: cobra.NoArgs,
	RunE: runThemeList,
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeCreateCmd, themeDeleteCmd, themeListCmd)

	themeCreateCmd.Flags().StringVar(&themeOpts.name, "name", "",
		"The name for the newly created theme")
	_ = themeCreateCmd.MarkFlagRequired("name")

	themeDeleteCmd.Flags().StringVar(&themeOpts.name, "name", "",
		"The name of the deleted theme")
	_ = themeDeleteCmd.MarkFlagRequired("name")
	_ = themeDeleteCmd.RegisterFlagCompletionFunc("name", completeThemeNames)

	themeListCmd.Flags().StringVarP(&themeOpts.format, "format", "f", string(output.FormatPlain),
		"Output format ("+strings.Join(output.FormatTypes(), ", ")+")")
	themeListCmd.Flags().StringVar(&themeOpts.template, "template", "",
		"Custom Go template for plain output, executed per theme")
}

func runThemeList(cmd *cobra.Command, args []string) error {
	format := output.FormatType(strings.ToLower(themeOpts.format))
	switch format {
	case output.FormatPlain, output.FormatJSON, output.FormatYAML:
	default:
		return fmt.Errorf("unknown format %q (valid: %s)", themeOpts.format, strings.Join(output.FormatTypes(), ", "))
	}

	formatter, err := output.NewFormatter(format, output.FormatterOptions{Template: themeOpts.template})
	if err != nil {
		return err
	}

	m := getManager()
	selected, _ := m.Selected()
	themes := m.Themes()

	var entries []output.Entry
	for _, name := range m.Names() {
		entries = append(entries, output.Entry{
			Name:     name,
			Selected: name == selected,
			Theme:    themes[name],
		})
	}

	return formatter.Format(cmd.OutOrStdout(), entries)
}
