package catalog

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"

	"github.com/aa89227/skillcat/pkg/logger"
)

const skillsSubdir = "skills"

// Loader discovers plugins under a root directory and builds a Catalog.
// Loading is a single synchronous pass; discovery order is lexicographic by
// path so repeated loads of the same tree yield identical catalogs.
type Loader struct {
	manifestNames []string
	ignore        []string
}

// Option configures a Loader
type Option func(*Loader) error

// WithManifestNames overrides the manifest filenames recognized during
// discovery
func WithManifestNames(names ...string) Option {
	return func(l *Loader) error {
		if len(names) == 0 {
			return errors.New("at least one manifest name must be specified")
		}
		l.manifestNames = names
		return nil
	}
}

// WithIgnorePatterns skips entries whose root-relative path matches any of
// the given doublestar globs (e.g. "archive/**", "*-wip")
func WithIgnorePatterns(patterns ...string) Option {
	return func(l *Loader) error {
		for _, p := range patterns {
			if !doublestar.ValidatePattern(p) {
				return errors.Errorf("invalid ignore pattern %q", p)
			}
		}
		l.ignore = append(l.ignore, patterns...)
		return nil
	}
}

// NewLoader creates a Loader with the given options
func NewLoader(opts ...Option) (*Loader, error) {
	l := &Loader{
		manifestNames: DefaultManifestNames,
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Load builds a Catalog from the immediate subdirectories of root. Only an
// unreadable root fails the whole load; invalid plugins and skills are
// excluded and recorded as rejections.
func (l *Loader) Load(ctx context.Context, root string) (*Catalog, error) {
	log := logger.G(ctx).WithField("root", root)

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog root %q", root)
	}

	c := &Catalog{
		root:    root,
		plugins: make(map[string]*Plugin),
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if l.ignored(entry.Name()) {
			log.WithField("dir", entry.Name()).Debug("plugin directory ignored")
			continue
		}

		pluginDir := filepath.Join(root, entry.Name())
		manifestPath, ok := l.findManifest(pluginDir)
		if !ok {
			// Not a plugin directory, skip silently
			continue
		}

		manifest, err := readManifest(manifestPath)
		if err != nil {
			log.WithError(err).WithField("manifest", manifestPath).Debug("rejected unparsable manifest")
			c.reject(manifestPath, err)
			continue
		}
		if err := manifest.Validate(); err != nil {
			log.WithError(err).WithField("manifest", manifestPath).Debug("rejected invalid manifest")
			c.reject(manifestPath, err)
			continue
		}

		if _, exists := c.plugins[manifest.Name]; exists {
			log.WithField("plugin", manifest.Name).Debug("rejected duplicate plugin")
			c.reject(pluginDir, duplicateNameError("plugin", manifest.Name))
			continue
		}

		plugin := &Plugin{
			Name:      manifest.Name,
			Version:   manifest.Version,
			Author:    manifest.Author,
			Directory: pluginDir,
		}

		l.loadSkills(ctx, c, plugin, entry.Name())
		c.addPlugin(plugin)

		log.WithField("plugin", plugin.Name).
			WithField("skills", len(plugin.order)).
			Debug("loaded plugin")
	}

	return c, nil
}

// loadSkills discovers skill directories for a plugin. Skills live under
// the plugin's skills/ subdirectory when present, otherwise under the plugin
// directory itself.
func (l *Loader) loadSkills(ctx context.Context, c *Catalog, plugin *Plugin, pluginRel string) {
	log := logger.G(ctx).WithField("plugin", plugin.Name)

	skillsRel := pluginRel
	skillsDir := plugin.Directory
	if info, err := os.Stat(filepath.Join(plugin.Directory, skillsSubdir)); err == nil && info.IsDir() {
		skillsRel = filepath.Join(pluginRel, skillsSubdir)
		skillsDir = filepath.Join(plugin.Directory, skillsSubdir)
	}

	entries, err := os.ReadDir(skillsDir)
	if err != nil {
		log.WithError(err).WithField("dir", skillsDir).Debug("failed to read skills directory")
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if l.ignored(filepath.Join(skillsRel, entry.Name())) {
			log.WithField("dir", entry.Name()).Debug("skill directory ignored")
			continue
		}

		skillDir := filepath.Join(skillsDir, entry.Name())
		skillPath := filepath.Join(skillDir, SkillFileName)
		if _, err := os.Stat(skillPath); err != nil {
			// Not a skill directory, skip silently
			continue
		}

		skill, err := parseSkillFile(skillPath)
		if err != nil {
			log.WithError(err).WithField("skill", skillPath).Debug("rejected invalid skill")
			c.reject(skillPath, err)
			continue
		}

		if _, exists := plugin.skills[skill.Name]; exists {
			log.WithField("skill", skill.Name).Debug("rejected duplicate skill")
			c.reject(skillPath, duplicateNameError("skill", skill.Name))
			continue
		}

		skill.Directory = skillDir
		plugin.addSkill(skill)
	}
}

// findManifest returns the first recognized manifest file in dir
func (l *Loader) findManifest(dir string) (string, bool) {
	for _, name := range l.manifestNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// ignored reports whether a root-relative path matches any ignore pattern
func (l *Loader) ignored(relPath string) bool {
	rel := filepath.ToSlash(relPath)
	for _, pattern := range l.ignore {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// Load discovers plugins under root with default loader settings
func Load(ctx context.Context, root string) (*Catalog, error) {
	l, err := NewLoader()
	if err != nil {
		return nil, err
	}
	return l.Load(ctx, root)
}
