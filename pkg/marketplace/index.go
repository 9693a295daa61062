// Package marketplace maintains the marketplace index file: a JSON catalog
// of the plugins available under a root, derived from a loaded catalog and
// committed alongside the plugin sources so consumers can list available
// plugins without walking the tree.
package marketplace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"

	"github.com/aa89227/skillcat/pkg/catalog"
)

// IndexFileName is the marketplace index file expected at the catalog root
const IndexFileName = "marketplace.json"

// SkillEntry summarizes a skill in the index
type SkillEntry struct {
	Name        string   `json:"name" jsonschema:"required"`
	Description string   `json:"description" jsonschema:"required"`
	Tags        []string `json:"tags,omitempty"`
}

// Entry describes one available plugin
type Entry struct {
	Name    string       `json:"name" jsonschema:"required"`
	Version string       `json:"version" jsonschema:"required"`
	Author  string       `json:"author" jsonschema:"required"`
	Path    string       `json:"path,omitempty"`
	Skills  []SkillEntry `json:"skills,omitempty"`
}

// Index is the marketplace index document
type Index struct {
	Plugins []Entry `json:"plugins"`
}

// Build derives an index from a loaded catalog. Output is deterministic:
// entries sorted by plugin name, paths relative to the catalog root.
func Build(c *catalog.Catalog) *Index {
	idx := &Index{Plugins: []Entry{}}

	for _, plugin := range c.Plugins() {
		entry := Entry{
			Name:    plugin.Name,
			Version: plugin.Version,
			Author:  plugin.Author,
			Path:    relPath(c.Root(), plugin.Directory),
		}
		for _, skill := range plugin.Skills() {
			entry.Skills = append(entry.Skills, SkillEntry{
				Name:        skill.Name,
				Description: skill.Description,
				Tags:        skill.Meta.Tags,
			})
		}
		idx.Plugins = append(idx.Plugins, entry)
	}

	return idx
}

func relPath(root, dir string) string {
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return filepath.ToSlash(dir)
	}
	return filepath.ToSlash(rel)
}

// Load reads an index file
func Load(path string) (*Index, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read marketplace index")
	}

	var idx Index
	if err := json.Unmarshal(content, &idx); err != nil {
		return nil, errors.Wrap(err, "failed to parse marketplace index")
	}

	return &idx, nil
}

// Save writes an index file, indented, with a trailing newline
func Save(path string, idx *Index) error {
	content, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal marketplace index")
	}

	if err := os.WriteFile(path, append(content, '\n'), 0o644); err != nil {
		return errors.Wrap(err, "failed to write marketplace index")
	}

	return nil
}

// JSON returns the indented JSON rendering of the index
func (idx *Index) JSON() (string, error) {
	content, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal marketplace index")
	}
	return string(content) + "\n", nil
}

// Diff compares a committed index against a loaded catalog and returns
// human-readable drift messages, one per discrepancy. An empty result means
// the index is up to date.
func Diff(idx *Index, c *catalog.Catalog) []string {
	var drift []string

	indexed := make(map[string]Entry, len(idx.Plugins))
	for _, entry := range idx.Plugins {
		indexed[entry.Name] = entry
	}

	for _, name := range c.PluginNames() {
		plugin, _ := c.Plugin(name)
		entry, ok := indexed[name]
		if !ok {
			drift = append(drift, fmt.Sprintf("plugin %q is missing from the index", name))
			continue
		}
		if entry.Version != plugin.Version {
			drift = append(drift, fmt.Sprintf("plugin %q has version %s in the index but %s on disk", name, entry.Version, plugin.Version))
		}
		if len(entry.Skills) != len(plugin.SkillNames()) {
			drift = append(drift, fmt.Sprintf("plugin %q lists %d skills in the index but has %d on disk", name, len(entry.Skills), len(plugin.SkillNames())))
		}
	}

	var extras []string
	for name := range indexed {
		if _, ok := c.Plugin(name); !ok {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	for _, name := range extras {
		drift = append(drift, fmt.Sprintf("plugin %q is in the index but not on disk", name))
	}

	return drift
}
