package apply

import (
	"bytes"
	"context"
	"os"
	"strings"
	"text/template"

	"github.com/jmylchreest/tiny-theme-switcher/internal/model"
)

var (
	rofiTemplate = template.Must(template.New("rofi").Parse(
		"@import \"{{.Layout}}\"\n@import \"themes/{{.Theme}}.rasi\"\n"))

	polybarTemplate = template.Must(template.New("polybar").Parse(
		"include-file='{{.ThemesDir}}/{{.Theme}}'"))

	alacrittyColorsTemplate = template.Must(template.New("alacritty").Parse(
		"colors: *{{.Theme}}-theme"))
)

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Wallpaper sets the desktop background through an external command.
type Wallpaper struct {
	runner  Runner
	command string
	args    []string
}

// NewWallpaper creates a wallpaper applier invoking command args... <path>.
func NewWallpaper(runner Runner, command string, args []string) *Wallpaper {
	return &Wallpaper{runner: runner, command: command, args: args}
}

func (w *Wallpaper) Field() model.Field { return model.FieldWallpaper }

func (w *Wallpaper) Apply(ctx context.Context, path string) error {
	args := make([]string, 0, len(w.args)+1)
	args = append(args, w.args...)
	args = append(args, path)

	if err := w.runner.Run(ctx, w.command, args...); err != nil {
		return &ApplyError{Field: w.Field(), Message: "failed to set wallpaper", Err: err}
	}
	return nil
}

// Rofi rewrites the rofi config to import the layout and the selected theme.
type Rofi struct {
	path   string
	layout string
}

// NewRofi creates a rofi applier writing to path.
func NewRofi(path, layout string) *Rofi {
	return &Rofi{path: path, layout: layout}
}

func (r *Rofi) Field() model.Field { return model.FieldRofiTheme }

func (r *Rofi) Apply(_ context.Context, theme string) error {
	content, err := render(rofiTemplate, struct{ Layout, Theme string }{r.layout, theme})
	if err != nil {
		return &ApplyError{Field: r.Field(), Message: "failed to render config", Err: err}
	}
	if err := os.WriteFile(r.path, []byte(content), 0644); err != nil {
		return &ApplyError{Field: r.Field(), Message: "failed to write config", Err: err}
	}
	return nil
}

// Polybar rewrites the polybar colors include.
type Polybar struct {
	path      string
	themesDir string
}

// NewPolybar creates a polybar applier writing to path.
func NewPolybar(path, themesDir string) *Polybar {
	return &Polybar{path: path, themesDir: strings.TrimRight(themesDir, "/")}
}

func (p *Polybar) Field() model.Field { return model.FieldPolybarTheme }

func (p *Polybar) Apply(_ context.Context, theme string) error {
	content, err := render(polybarTemplate, struct{ ThemesDir, Theme string }{p.themesDir, theme})
	if err != nil {
		return &ApplyError{Field: p.Field(), Message: "failed to render config", Err: err}
	}
	if err := os.WriteFile(p.path, []byte(content), 0644); err != nil {
		return &ApplyError{Field: p.Field(), Message: "failed to write config", Err: err}
	}
	return nil
}

// Alacritty rewrites the final line of the alacritty config to reference
// a colors anchor. The last non-blank line is assumed to be the colors
// directive; its content is not checked.
type Alacritty struct {
	path string
}

// NewAlacritty creates an alacritty applier editing path in place.
func NewAlacritty(path string) *Alacritty {
	return &Alacritty{path: path}
}

func (a *Alacritty) Field() model.Field { return model.FieldAlacrittyTheme }

func (a *Alacritty) Apply(_ context.Context, theme string) error {
	original, err := os.ReadFile(a.path)
	if err != nil {
		return &ApplyError{Field: a.Field(), Message: "failed to read config", Err: err}
	}

	colors, err := render(alacrittyColorsTemplate, struct{ Theme string }{theme})
	if err != nil {
		return &ApplyError{Field: a.Field(), Message: "failed to render colors", Err: err}
	}

	result, ok := replaceLastLine(string(original), colors)
	if !ok {
		return &ApplyError{Field: a.Field(), Message: "config has no content to replace"}
	}

	if err := os.WriteFile(a.path, []byte(result), 0644); err != nil {
		return &ApplyError{Field: a.Field(), Message: "failed to write config", Err: err}
	}
	return nil
}

// replaceLastLine drops trailing empty lines, swaps the last line for
// replacement and terminates the text with a single newline.
// ok is false when content has no non-empty line.
func replaceLastLine(content, replacement string) (string, bool) {
	lines := strings.Split(content, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return "", false
	}

	lines[len(lines)-1] = replacement
	lines = append(lines, "")
	return strings.Join(lines, "\n"), true
}
