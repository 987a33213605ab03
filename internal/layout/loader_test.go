package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLayout = `
version: "1"
columns:
  - name: label
    binding: label
  - name: label_ja
    binding: label
    profile: japanese
  - binding: code
    optional: true
`

func TestParse(t *testing.T) {
	l, err := Parse([]byte(sampleLayout))
	require.NoError(t, err)
	require.NotNil(t, l)

	assert.Equal(t, "1", l.Version)
	assert.Equal(t, "default", l.Profile)
	require.Len(t, l.Columns, 3)

	assert.Equal(t, "label", l.Columns[0].Name)
	assert.Equal(t, "default", l.ProfileOf(l.Columns[0]))

	assert.Equal(t, "label_ja", l.Columns[1].Name)
	assert.Equal(t, "japanese", l.ProfileOf(l.Columns[1]))

	// name defaults to the binding
	assert.Equal(t, "code", l.Columns[2].Name)
	assert.True(t, l.Columns[2].Optional)

	assert.Equal(t, []string{"label", "label_ja", "code"}, l.Header())
}

func TestParse_Defaults(t *testing.T) {
	l, err := Parse([]byte("profile: japanese\ncolumns:\n  - binding: label\n"))
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, l.Version)
	assert.Equal(t, "japanese", l.ProfileOf(l.Columns[0]))
}

func TestParse_UnquotedVersion(t *testing.T) {
	for _, version := range []string{"1", "1.0", "1.2.0", `"1"`} {
		l, err := Parse([]byte("version: " + version + "\ncolumns:\n  - binding: code\n"))
		require.NoError(t, err, version)
		assert.True(t, versionSupported(l.Version), l.Version)
	}

	l, err := Parse([]byte("version: 1.0\ncolumns:\n  - binding: code\n"))
	require.NoError(t, err)
	assert.Equal(t, "1.0", l.Version)

	_, err = Parse([]byte("version: [1]\ncolumns:\n  - binding: code\n"))
	require.ErrorIs(t, err, ErrInvalidLayout)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("columns: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse layout YAML")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleLayout), 0o600))

	l, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, l.Columns, 3)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshal_RoundTrip(t *testing.T) {
	l, err := Parse([]byte(sampleLayout))
	require.NoError(t, err)

	data, err := Marshal(l)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, l, back)
}

func TestParse_SchemaErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"misspelled key", "colums:\n  - binding: label\n", "colums"},
		{"missing binding", "columns:\n  - name: x\n", "binding"},
		{"wrong type", "columns:\n  - binding: label\n    optional: maybe\n", "optional"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.ErrorIs(t, err, ErrInvalidLayout)
			assert.Contains(t, err.Error(), tt.want)
			assert.NotContains(t, err.Error(), "file://")
			assert.NotContains(t, err.Error(), "doesn't validate")
		})
	}
}
