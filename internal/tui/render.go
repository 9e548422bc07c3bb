package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/tiny-theme-switcher/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(16)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	unsetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

// RenderTheme formats a theme's fields for display.
// With styled false the output is plain "field: value" lines suitable for
// scripts; unset fields have an empty value.
func RenderTheme(name string, t model.Theme, styled bool) string {
	var sb strings.Builder

	if !styled {
		fmt.Fprintf(&sb, "name: %s\n", name)
		for _, f := range model.Fields() {
			fmt.Fprintf(&sb, "%s: %s\n", f, t.Get(f))
		}
		return sb.String()
	}

	sb.WriteString(titleStyle.Render(name))
	for _, f := range model.Fields() {
		sb.WriteString("\n")
		sb.WriteString(labelStyle.Render(string(f)))
		if v := t.Get(f); v != "" {
			sb.WriteString(valueStyle.Render(v))
		} else {
			sb.WriteString(unsetStyle.Render("unset"))
		}
	}
	return boxStyle.Render(sb.String()) + "\n"
}

// Summary returns a one-line description of the set fields.
func Summary(t model.Theme) string {
	var parts []string
	for _, f := range model.Fields() {
		if v := t.Get(f); v != "" {
			parts = append(parts, strings.TrimSuffix(string(f), "_theme")+": "+v)
		}
	}
	if len(parts) == 0 {
		return "empty"
	}
	return strings.Join(parts, " · ")
}
