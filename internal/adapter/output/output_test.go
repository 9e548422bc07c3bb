package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/tiny-theme-switcher/internal/model"
)

func testEntries() []Entry {
	return []Entry{
		{Name: "gaming", Theme: model.Theme{AlacrittyTheme: "dracula"}},
		{Name: "work", Selected: true, Theme: model.Theme{Wallpaper: "/tmp/a.png", RofiTheme: "nord"}},
	}
}

func TestPlainFormatter_Format(t *testing.T) {
	var buf bytes.Buffer

	f, err := NewPlainFormatter(FormatterOptions{})
	require.NoError(t, err)
	require.NoError(t, f.Format(&buf, testEntries()))

	assert.Equal(t, "gaming\nwork\n", buf.String())
}

func TestPlainFormatter_Empty(t *testing.T) {
	var buf bytes.Buffer

	f, err := NewPlainFormatter(FormatterOptions{})
	require.NoError(t, err)
	require.NoError(t, f.Format(&buf, nil))

	assert.Empty(t, buf.String())
}

func TestPlainFormatter_Template(t *testing.T) {
	var buf bytes.Buffer

	f, err := NewPlainFormatter(FormatterOptions{
		Template: `{{if .Selected}}* {{else}}  {{end}}{{.Name}}`,
	})
	require.NoError(t, err)
	require.NoError(t, f.Format(&buf, testEntries()))

	assert.Equal(t, "  gaming\n* work\n", buf.String())
}

func TestPlainFormatter_InvalidTemplate(t *testing.T) {
	_, err := NewPlainFormatter(FormatterOptions{Template: "{{.Name"})
	assert.Error(t, err)
}

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewJSONFormatter().Format(&buf, testEntries()))

	var decoded []Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, testEntries(), decoded)
	assert.Contains(t, buf.String(), `"gtk_theme": null`)
}

func TestJSONFormatter_Empty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewJSONFormatter().Format(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestYAMLFormatter_Format(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewYAMLFormatter().Format(&buf, testEntries()))

	var decoded []Entry
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, testEntries(), decoded)
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format   FormatType
		expected any
	}{
		{FormatPlain, &PlainFormatter{}},
		{FormatJSON, &JSONFormatter{}},
		{FormatYAML, &YAMLFormatter{}},
		{FormatType("unknown"), &PlainFormatter{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			f, err := NewFormatter(tt.format, FormatterOptions{})
			require.NoError(t, err)
			assert.IsType(t, tt.expected, f)
		})
	}
}
