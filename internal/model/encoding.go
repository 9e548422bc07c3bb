package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// themeRecord is the on-disk shape of a Theme. Unset fields are written as null.
type themeRecord struct {
	Wallpaper      *string `yaml:"wallpaper" json:"wallpaper"`
	RofiTheme      *string `yaml:"rofi_theme" json:"rofi_theme"`
	PolybarTheme   *string `yaml:"polybar_theme" json:"polybar_theme"`
	GTKTheme       *string `yaml:"gtk_theme" json:"gtk_theme"`
	AlacrittyTheme *string `yaml:"alacritty_theme" json:"alacritty_theme"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func (t Theme) record() themeRecord {
	return themeRecord{
		Wallpaper:      optional(t.Wallpaper),
		RofiTheme:      optional(t.RofiTheme),
		PolybarTheme:   optional(t.PolybarTheme),
		GTKTheme:       optional(t.GTKTheme),
		AlacrittyTheme: optional(t.AlacrittyTheme),
	}
}

func (r themeRecord) theme() Theme {
	return Theme{
		Wallpaper:      deref(r.Wallpaper),
		RofiTheme:      deref(r.RofiTheme),
		PolybarTheme:   deref(r.PolybarTheme),
		GTKTheme:       deref(r.GTKTheme),
		AlacrittyTheme: deref(r.AlacrittyTheme),
	}
}

// MarshalYAML implements yaml.Marshaler.
func (t Theme) MarshalYAML() (any, error) {
	return t.record(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
// Unknown keys are ignored and missing keys are left unset.
func (t *Theme) UnmarshalYAML(node *yaml.Node) error {
	var r themeRecord
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind == yaml.MappingNode {
		if err := node.Decode(&r); err != nil {
			return err
		}
	}
	*t = r.theme()
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Theme) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.record())
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Theme) UnmarshalJSON(data []byte) error {
	var r themeRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*t = r.theme()
	return nil
}
