package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestValidate(t *testing.T) {
	tests := []struct {
		name      string
		manifest  Manifest
		wantField string
	}{
		{
			name:     "valid",
			manifest: Manifest{Name: "git-operations", Version: "1.0", Author: "aa89227"},
		},
		{
			name:      "missing name",
			manifest:  Manifest{Version: "1.0", Author: "aa89227"},
			wantField: "name",
		},
		{
			name:      "blank version",
			manifest:  Manifest{Name: "x", Version: "   ", Author: "aa89227"},
			wantField: "version",
		},
		{
			name:      "missing author",
			manifest:  Manifest{Name: "x", Version: "1.0"},
			wantField: "author",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.manifest.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, CauseMissingField, CauseOf(err))
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestReadManifestYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plugin.yaml")
	content := "name: git-operations\nversion: \"1.0\"\nauthor: aa89227\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	m, err := readManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "git-operations", m.Name)
	assert.Equal(t, "1.0", m.Version)
	assert.Equal(t, "aa89227", m.Author)
}

func TestReadManifestJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plugin.json")
	content := `{"name": "git-operations", "version": "1.0", "author": "aa89227"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	m, err := readManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "git-operations", m.Name)
}

func TestReadManifestParseFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plugin.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := readManifest(path)
	require.Error(t, err)
	assert.Equal(t, CauseUnreadablePath, CauseOf(err))
}

func TestReadManifestMissingFile(t *testing.T) {
	_, err := readManifest(filepath.Join(t.TempDir(), "plugin.yaml"))
	require.Error(t, err)
	assert.Equal(t, CauseUnreadablePath, CauseOf(err))
}
