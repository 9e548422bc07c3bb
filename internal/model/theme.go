// Package model defines the core data types for tiny-theme-switcher.
package model

import (
	"fmt"
	"strings"
)

// Field identifies one attribute of a Theme.
type Field string

const (
	FieldWallpaper      Field = "wallpaper"
	FieldRofiTheme      Field = "rofi_theme"
	FieldPolybarTheme   Field = "polybar_theme"
	FieldGTKTheme       Field = "gtk_theme"
	FieldAlacrittyTheme Field = "alacritty_theme"
)

// Theme is a named bundle of per-tool visual configuration references.
// An empty string means the aspect is not set and is left untouched on apply.
type Theme struct {
	Wallpaper      string
	RofiTheme      string
	PolybarTheme   string
	GTKTheme       string
	AlacrittyTheme string
}

// EmptyTheme returns a theme with every field unset.
// Applying it does nothing.
func EmptyTheme() Theme {
	return Theme{}
}

// accessor pairs the getter and setter for a single field.
type accessor struct {
	get func(t *Theme) string
	set func(t *Theme, v string)
}

// fieldOrder is the canonical field order, used for listing and serialization.
var fieldOrder = []Field{
	FieldWallpaper,
	FieldRofiTheme,
	FieldPolybarTheme,
	FieldGTKTheme,
	FieldAlacrittyTheme,
}

var accessors = map[Field]accessor{
	FieldWallpaper: {
		get: func(t *Theme) string { return t.Wallpaper },
		set: func(t *Theme, v string) { t.Wallpaper = v },
	},
	FieldRofiTheme: {
		get: func(t *Theme) string { return t.RofiTheme },
		set: func(t *Theme, v string) { t.RofiTheme = v },
	},
	FieldPolybarTheme: {
		get: func(t *Theme) string { return t.PolybarTheme },
		set: func(t *Theme, v string) { t.PolybarTheme = v },
	},
	FieldGTKTheme: {
		get: func(t *Theme) string { return t.GTKTheme },
		set: func(t *Theme, v string) { t.GTKTheme = v },
	},
	FieldAlacrittyTheme: {
		get: func(t *Theme) string { return t.AlacrittyTheme },
		set: func(t *Theme, v string) { t.AlacrittyTheme = v },
	},
}

// Fields returns all known fields in canonical order.
func Fields() []Field {
	out := make([]Field, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}

// FieldNames returns the names of all known fields in canonical order.
func FieldNames() []string {
	names := make([]string, len(fieldOrder))
	for i, f := range fieldOrder {
		names[i] = string(f)
	}
	return names
}

// ParseField validates a field name. Matching is case-insensitive.
func ParseField(s string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := accessors[f]; !ok {
		return "", fmt.Errorf("unknown field %q (valid: %s)", s, strings.Join(FieldNames(), ", "))
	}
	return f, nil
}

// Get returns the value of a field. Unknown fields return an empty string.
func (t Theme) Get(f Field) string {
	a, ok := accessors[f]
	if !ok {
		return ""
	}
	return a.get(&t)
}

// Set assigns the value of a field. An empty value unsets it.
func (t *Theme) Set(f Field, value string) error {
	a, ok := accessors[f]
	if !ok {
		return fmt.Errorf("unknown field %q", f)
	}
	a.set(t, value)
	return nil
}

// IsEmpty reports whether no field is set.
func (t Theme) IsEmpty() bool {
	return t == EmptyTheme()
}
