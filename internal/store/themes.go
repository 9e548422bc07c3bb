// Package store persists the themes database and the selection pointer.
package store

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/tiny-theme-switcher/internal/model"
)

// ThemesFile manages the YAML themes database.
// There is no locking; concurrent writers race and the last one wins.
type ThemesFile struct {
	path string
}

// NewThemesFile creates a new ThemesFile.
func NewThemesFile(path string) *ThemesFile {
	return &ThemesFile{path: path}
}

// Path returns the database file path.
func (f *ThemesFile) Path() string {
	return f.path
}

// Load reads all themes from the file.
// A missing file, an empty file, or a document whose top level is not a
// mapping all yield an empty set. Malformed YAML is an error.
func (f *ThemesFile) Load() (map[string]model.Theme, error) {
	themes := make(map[string]model.Theme)

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return themes, nil
		}
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.path, err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return themes, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return themes, nil
	}

	var entries map[string]yaml.Node
	if err := root.Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.path, err)
	}

	// Entries with no body (null) are empty themes.
	for name, node := range entries {
		t := model.EmptyTheme()
		if err := t.UnmarshalYAML(&node); err != nil {
			return nil, fmt.Errorf("decode theme %q in %s: %w", name, f.path, err)
		}
		themes[name] = t
	}
	return themes, nil
}

// Save overwrites the file with the given themes.
func (f *ThemesFile) Save(themes map[string]model.Theme) error {
	if themes == nil {
		themes = map[string]model.Theme{}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(themes); err != nil {
		return fmt.Errorf("encode themes: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}

	return os.WriteFile(f.path, buf.Bytes(), 0644)
}
