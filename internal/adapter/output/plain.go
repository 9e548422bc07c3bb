package output

import (
	"fmt"
	"io"
	"text/template"
)

// PlainFormatter writes one line per theme, the name by default.
type PlainFormatter struct {
	template *template.Template
}

// NewPlainFormatter creates a new plain text formatter.
// opts.Template, when set, is executed with an Entry and must parse.
func NewPlainFormatter(opts FormatterOptions) (*PlainFormatter, error) {
	f := &PlainFormatter{}

	if opts.Template != "" {
		tmpl, err := template.New("plain").Parse(opts.Template)
		if err != nil {
			return nil, fmt.Errorf("invalid template: %w", err)
		}
		f.template = tmpl
	}

	return f, nil
}

// Format writes entries as plain text.
func (f *PlainFormatter) Format(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if f.template != nil {
			if err := f.template.Execute(w, e); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintln(w, e.Name); err != nil {
			return err
		}
	}
	return nil
}
