package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tiny-theme-switcher/internal/model"
)

var getOpts struct {
	field string
}

var themeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a field of the current theme",
	Long: `Print one field of the currently selected theme.

Valid fields: ` + strings.Join(model.FieldNames(), ", ") + `

An unset field prints an empty line.`,
	Args: cobra.NoArgs,
	RunE: runGet,
}

func init() {
	themeCmd.AddCommand(themeGetCmd)

	themeGetCmd.Flags().StringVar(&getOpts.field, "field", "",
		"The field to be retrieved")
	_ = themeGetCmd.MarkFlagRequired("field")
	_ = themeGetCmd.RegisterFlagCompletionFunc("field", completeFieldNames)
}

func runGet(cmd *cobra.Command, args []string) error {
	field, err := model.ParseField(getOpts.field)
	if err != nil {
		return err
	}

	value, err := getManager().GetField(field)
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", field, err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
	return err
}
