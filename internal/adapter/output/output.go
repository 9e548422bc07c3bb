// Package output provides output formatters for theme listings.
package output

import (
	"io"

	"github.com/jmylchreest/tiny-theme-switcher/internal/model"
)

// Entry is a named theme as presented to a formatter.
type Entry struct {
	Name     string      `json:"name" yaml:"name"`
	Selected bool        `json:"selected" yaml:"selected"`
	Theme    model.Theme `json:"theme" yaml:"theme"`
}

// Formatter formats theme entries for output.
type Formatter interface {
	// Format writes formatted entries to the writer.
	Format(w io.Writer, entries []Entry) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
)

// FormatTypes lists the supported formats.
func FormatTypes() []string {
	return []string{string(FormatPlain), string(FormatJSON), string(FormatYAML)}
}

// FormatterOptions configures formatter behavior.
type FormatterOptions struct {
	Template string // Custom template for plain format, executed per entry
}

// NewFormatter creates a formatter for the specified format type.
// Unknown formats fall back to plain.
func NewFormatter(format FormatType, opts FormatterOptions) (Formatter, error) {
	switch format {
	case FormatJSON:
		return NewJSONFormatter(), nil
	case FormatYAML:
		return NewYAMLFormatter(), nil
	case FormatPlain:
		fallthrough
	default:
		return NewPlainFormatter(opts)
	}
}
