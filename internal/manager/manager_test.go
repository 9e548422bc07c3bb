package manager

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/tiny-theme-switcher/internal/apply"
	"github.com/jmylchreest/tiny-theme-switcher/internal/model"
)

// recordingApplier captures applied values for one field.
type recordingApplier struct {
	field  model.Field
	values []string
	err    error
}

func (r *recordingApplier) Field() model.Field { return r.field }

func (r *recordingApplier) Apply(_ context.Context, value string) error {
	r.values = append(r.values, value)
	return r.err
}

// newTestManager creates a manager rooted in a temp dir with recording appliers.
func newTestManager(t *testing.T, dir string) (*Manager, *recordingApplier) {
	t.Helper()
	rec := &recordingApplier{field: model.FieldWallpaper}
	m, err := New(Options{
		ConfigDir: dir,
		Appliers:  apply.NewSetWith(nil, rec),
	})
	require.NoError(t, err)
	return m, rec
}

func writeThemes(t *testing.T, dir, content string) {
	t.Helper()
	toolDir := filepath.Join(dir, "tiny-theme-switcher")
	require.NoError(t, os.MkdirAll(toolDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(toolDir, "themes.yaml"), []byte(content), 0644))
}

func writePointer(t *testing.T, dir, name string) {
	t.Helper()
	toolDir := filepath.Join(dir, "tiny-theme-switcher")
	require.NoError(t, os.MkdirAll(toolDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(toolDir, "theme"), []byte(name), 0644))
}

func readPointer(t *testing.T, dir string) (string, bool) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "tiny-theme-switcher", "theme"))
	if os.IsNotExist(err) {
		return "", false
	}
	require.NoError(t, err)
	return string(data), true
}

const threeThemes = `
b:
  wallpaper: /b.png
a:
  wallpaper: /a.png
c:
  wallpaper: /c.png
`

func TestNew_CreatesToolDir(t *testing.T) {
	dir := t.TempDir()
	m, _ := newTestManager(t, dir)

	info, err := os.Stat(filepath.Join(dir, "tiny-theme-switcher"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, filepath.Join(dir, "tiny-theme-switcher", "themes.yaml"), m.Paths().Themes)
	assert.Equal(t, filepath.Join(dir, "tiny-theme-switcher", "theme"), m.Paths().Pointer)
}

func TestNew_MissingConfigDir(t *testing.T) {
	_, err := New(Options{ConfigDir: filepath.Join(t.TempDir(), "nope")})
	assert.Error(t, err)
}

func TestNew_LoadsSettings(t *testing.T) {
	dir := t.TempDir()
	toolDir := filepath.Join(dir, "tiny-theme-switcher")
	require.NoError(t, os.MkdirAll(toolDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(toolDir, "config.toml"), []byte("not [valid"), 0644))

	_, err := New(Options{ConfigDir: dir})
	assert.Error(t, err)
}

func TestEmptyState(t *testing.T) {
	dir := t.TempDir()
	m, rec := newTestManager(t, dir)

	assert.Empty(t, m.Names())
	_, ok := m.Selected()
	assert.False(t, ok)
	assert.True(t, m.Current().IsEmpty())

	require.NoError(t, m.Apply(context.Background()))
	assert.Empty(t, rec.values)

	_, exists := readPointer(t, dir)
	assert.False(t, exists)
}

func TestDefaultSelection_Alphabetical(t *testing.T) {
	dir := t.TempDir()
	writeThemes(t, dir, threeThemes)

	m, _ := newTestManager(t, dir)

	name, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "a", name)
	assert.Equal(t, []string{"a", "b", "c"}, m.Names())

	// Default selection from a missing pointer is not persisted
	_, exists := readPointer(t, dir)
	assert.False(t, exists)
}

func TestSelectTheme_FromPointerFile(t *testing.T) {
	dir := t.TempDir()
	writeThemes(t, dir, threeThemes)
	writePointer(t, dir, "c\n")

	m, _ := newTestManager(t, dir)

	name, _ := m.Selected()
	assert.Equal(t, "c", name)
}

func TestSelectTheme_InvalidPointerFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeThemes(t, dir, threeThemes)
	writePointer(t, dir, "missing")

	m, _ := newTestManager(t, dir)

	name, _ := m.Selected()
	assert.Equal(t, "a", name)

	pointer, exists := readPointer(t, dir)
	require.True(t, exists)
	assert.Equal(t, "a", pointer)
}

func TestSelectTheme_InvalidPointerNoThemes(t *testing.T) {
	dir := t.TempDir()
	writePointer(t, dir, "gone")

	m, _ := newTestManager(t, dir)

	_, ok := m.Selected()
	assert.False(t, ok)

	pointer, _ := readPointer(t, dir)
	assert.Equal(t, "gone", pointer)
}

func TestSelectTheme_ExplicitPersists(t *testing.T) {
	dir := t.TempDir()
	writeThemes(t, dir, threeThemes)

	m, _ := newTestManager(t, dir)
	require.NoError(t, m.SelectTheme("b"))

	name, _ := m.Selected()
	assert.Equal(t, "b", name)

	pointer, exists := readPointer(t, dir)
	require.True(t, exists)
	assert.Equal(t, "b", pointer)

	fresh, _ := newTestManager(t, dir)
	name, _ = fresh.Selected()
	assert.Equal(t, "b", name)
}

func TestSelectTheme_ExplicitInvalid(t *testing.T) {
	dir := t.TempDir()
	writeThemes(t, dir, threeThemes)
	writePointer(t, dir, "c")

	m, _ := newTestManager(t, dir)
	require.NoError(t, m.SelectTheme("nope"))

	name, _ := m.Selected()
	assert.Equal(t, "a", name)

	pointer, _ := readPointer(t, dir)
	assert.Equal(t, "a", pointer)
}

func TestApply_UsesSelectedTheme(t *testing.T) {
	dir := t.TempDir()
	writeThemes(t, dir, threeThemes)

	m, rec := newTestManager(t, dir)
	require.NoError(t, m.SelectTheme("c"))
	require.NoError(t, m.Apply(context.Background()))

	assert.Equal(t, []string{"/c.png"}, rec.values)
}

func TestApply_PropagatesError(t *testing.T) {
	dir := t.TempDir()
	writeThemes(t, dir, threeThemes)

	m, rec := newTestManager(t, dir)
	rec.err = errors.New("feh missing")

	err := m.Apply(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, rec.err)
}

func TestAppend(t *testing.T) {
	dir := t.TempDir()
	m, _ := newTestManager(t, dir)

	require.NoError(t, m.Append("work"))
	assert.Equal(t, []string{"work"}, m.Names())

	fresh, _ := newTestManager(t, dir)
	assert.Equal(t, []string{"work"}, fresh.Names())
	th, err := fresh.Theme("work")
	require.NoError(t, err)
	assert.True(t, th.IsEmpty())
}

func TestAppend_Overwrites(t *testing.T) {
	dir := t.TempDir()
	writeThemes(t, dir, threeThemes)

	m, _ := newTestManager(t, dir)
	require.NoError(t, m.Append("a"))

	th, err := m.Theme("a")
	require.NoError(t, err)
	assert.True(t, th.IsEmpty())
}

func TestAppend_EmptyName(t *testing.T) {
	m, _ := newTestManager(t, t.TempDir())
	assert.Error(t, m.Append(""))
}

func TestRemove_Missing(t *testing.T) {
	m, _ := newTestManager(t, t.TempDir())

	err := m.Remove("ghost")
	assert.ErrorIs(t, err, ErrThemeNotFound)
}

func TestRemove_SelectedReselectsDefault(t *testing.T) {
	dir := t.TempDir()
	writeThemes(t, dir, threeThemes)

	m, _ := newTestManager(t, dir)
	require.NoError(t, m.SelectTheme("a"))
	require.NoError(t, m.Remove("a"))

	name, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "b", name)
	assert.Equal(t, []string{"b", "c"}, m.Names())

	fresh, _ := newTestManager(t, dir)
	assert.Equal(t, []string{"b", "c"}, fresh.Names())
}

func TestRemove_LastTheme(t *testing.T) {
	dir := t.TempDir()
	m, _ := newTestManager(t, dir)
	require.NoError(t, m.Append("only"))
	require.NoError(t, m.Remove("only"))

	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Empty(t, m.Names())
}

func TestRemove_OtherKeepsSelection(t *testing.T) {
	dir := t.TempDir()
	writeThemes(t, dir, threeThemes)

	m, _ := newTestManager(t, dir)
	require.NoError(t, m.SelectTheme("b"))
	require.NoError(t, m.Remove("c"))

	name, _ := m.Selected()
	assert.Equal(t, "b", name)
}

func TestSetGetField(t *testing.T) {
	dir := t.TempDir()
	m, _ := newTestManager(t, dir)
	require.NoError(t, m.Append("work"))
	require.NoError(t, m.SelectTheme("work"))

	require.NoError(t, m.SetField(model.FieldWallpaper, "/tmp/a.png"))

	fresh, _ := newTestManager(t, dir)
	value, err := fresh.GetField(model.FieldWallpaper)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/a.png", value)

	value, err = fresh.GetField(model.FieldRofiTheme)
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestSetField_NoSelection(t *testing.T) {
	m, _ := newTestManager(t, t.TempDir())

	assert.ErrorIs(t, m.SetField(model.FieldWallpaper, "x"), ErrNoThemeSelected)
	_, err := m.GetField(model.FieldWallpaper)
	assert.ErrorIs(t, err, ErrNoThemeSelected)
}

func TestDumpLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeThemes(t, dir, `
nord:
  wallpaper: /n.png
  rofi_theme: nord
  polybar_theme: nord
  gtk_theme: Nordic
  alacritty_theme: nord
partial:
  rofi_theme: gruvbox
  polybar_theme: null
blank: {}
`)

	m, _ := newTestManager(t, dir)
	before := m.Themes()
	require.NoError(t, m.Dump())
	require.NoError(t, m.LoadThemes())

	assert.Equal(t, before, m.Themes())
	assert.Equal(t, model.Theme{RofiTheme: "gruvbox"}, before["partial"])
}

func TestThemes_ReturnsCopy(t *testing.T) {
	dir := t.TempDir()
	writeThemes(t, dir, threeThemes)
	m, _ := newTestManager(t, dir)

	themes := m.Themes()
	delete(themes, "a")

	assert.Equal(t, []string{"a", "b", "c"}, m.Names())
}
