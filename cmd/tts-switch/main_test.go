package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, "rofi"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(home, "tiny-theme-switcher"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(home, "tiny-theme-switcher", "themes.yaml"), []byte(`
work:
  rofi_theme: nord
gaming:
  rofi_theme: dracula
`), 0644))
	return home
}

func TestRun_ListsNames(t *testing.T) {
	home := setup(t)
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), &out, nil, home, nil))
	assert.Equal(t, "gaming\nwork\n", out.String())
}

func TestRun_SwitchesTheme(t *testing.T) {
	home := setup(t)
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), &out, nil, home, []string{"work"}))
	assert.Empty(t, out.String())

	pointer, err := os.ReadFile(filepath.Join(home, "tiny-theme-switcher", "theme"))
	require.NoError(t, err)
	assert.Equal(t, "work", string(pointer))

	rofi, err := os.ReadFile(filepath.Join(home, "rofi", "config.rasi"))
	require.NoError(t, err)
	assert.Contains(t, string(rofi), "themes/nord.rasi")
}

func TestRun_TooManyArgs(t *testing.T) {
	home := setup(t)
	assert.Error(t, run(context.Background(), &bytes.Buffer{}, nil, home, []string{"a", "b"}))
}

func TestRun_EmptyState(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), &out, nil, home, nil))
	assert.Empty(t, out.String())
}
