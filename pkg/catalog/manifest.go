package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultManifestNames are the manifest filenames recognized during
// discovery, tried in order
var DefaultManifestNames = []string{"plugin.yaml", "plugin.yml", "plugin.json"}

// Manifest is the structured metadata file identifying a plugin
type Manifest struct {
	Name    string `json:"name" yaml:"name" jsonschema:"required"`
	Version string `json:"version" yaml:"version" jsonschema:"required"`
	Author  string `json:"author" yaml:"author" jsonschema:"required"`
}

// Validate checks that all required manifest fields are non-empty
func (m *Manifest) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", m.Name},
		{"version", m.Version},
		{"author", m.Author},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return missingFieldError(f.name)
		}
	}
	return nil
}

// readManifest parses a manifest file as YAML or JSON depending on its
// extension. Parse failures carry CauseUnreadablePath.
func readManifest(path string) (*Manifest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, unreadableError(errors.Wrap(err, "failed to read manifest"))
	}

	var m Manifest
	if filepath.Ext(path) == ".json" {
		if err := json.Unmarshal(content, &m); err != nil {
			return nil, unreadableError(errors.Wrap(err, "failed to parse manifest as JSON"))
		}
	} else {
		if err := yaml.Unmarshal(content, &m); err != nil {
			return nil, unreadableError(errors.Wrap(err, "failed to parse manifest as YAML"))
		}
	}

	return &m, nil
}
