package store

import (
	"os"
	"strings"
)

// PointerFile stores the name of the currently selected theme.
type PointerFile struct {
	path string
}

// NewPointerFile creates a new PointerFile.
func NewPointerFile(path string) *PointerFile {
	return &PointerFile{path: path}
}

// Path returns the pointer file path.
func (p *PointerFile) Path() string {
	return p.path
}

// Load returns the stored name with surrounding whitespace trimmed.
// found is false when the file does not exist.
func (p *PointerFile) Load() (name string, found bool, err error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return strings.TrimSpace(string(data)), true, nil
}

// Save overwrites the file with name.
func (p *PointerFile) Save(name string) error {
	return os.WriteFile(p.path, []byte(name), 0644)
}
