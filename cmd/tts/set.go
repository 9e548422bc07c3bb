package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tiny-theme-switcher/internal/model"
)

var setOpts struct {
	field string
	value string
}

var themeSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set a field of the current theme",
	Long: `Set one field of the currently selected theme and save it.

Valid fields: ` + strings.Join(model.FieldNames(), ", ") + `

An empty --value unsets the field, so it is left untouched on apply.

Examples:
  tts theme set --field wallpaper --value ~/Pictures/forest.png
  tts theme set --field rofi_theme --value nord`,
	Args: cobra.NoArgs,
	RunE: runSet,
}

func init() {
	themeCmd.AddCommand(themeSetCmd)

	themeSetCmd.Flags().StringVar(&setOpts.field, "field", "",
		"The field to be modified")
	themeSetCmd.Flags().StringVar(&setOpts.value, "value", "",
		"The target value")
	_ = themeSetCmd.MarkFlagRequired("field")
	_ = themeSetCmd.MarkFlagRequired("value")
	_ = themeSetCmd.RegisterFlagCompletionFunc("field", completeFieldNames)
}

func runSet(cmd *cobra.Command, args []string) error {
	field, err := model.ParseField(setOpts.field)
	if err != nil {
		return err
	}

	m := getManager()
	if err := m.SetField(field, setOpts.value); err != nil {
		return fmt.Errorf("failed to set %s: %w", field, err)
	}

	name, _ := m.Selected()
	logger.Info("updated theme", "name", name, "field", field, "value", setOpts.value)
	return nil
}

// completeFieldNames offers the known theme fields for shell completion.
func completeFieldNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return model.FieldNames(), cobra.ShellCompDirectiveNoFileComp
}
