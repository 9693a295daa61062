// Package catalog loads skill plugin bundles from a directory tree into an
// immutable in-memory index. A plugin is a subdirectory with a manifest file
// and a set of skill directories, each containing a SKILL.md document with
// YAML frontmatter. Invalid entries are excluded and recorded as rejections;
// a single bad plugin or skill never fails the whole load.
package catalog

import "sort"

// SkillMeta is the structured metadata block of a skill header
type SkillMeta struct {
	Author  string   `json:"author" yaml:"author" jsonschema:"required"`
	Version string   `json:"version" yaml:"version" jsonschema:"required"`
	Tags    []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Skill is a named unit of guidance content owned by exactly one plugin.
// Content carries everything after the frontmatter unmodified.
type Skill struct {
	Name        string
	Description string
	License     string
	Meta        SkillMeta
	Directory   string
	Content     string
}

// HasTag reports whether the skill declares the given tag
func (s *Skill) HasTag(tag string) bool {
	for _, t := range s.Meta.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Plugin is a named, versioned bundle of skills discovered from a single
// plugin directory
type Plugin struct {
	Name      string
	Version   string
	Author    string
	Directory string

	skills map[string]*Skill
	order  []string
}

// Skill returns the named skill, or false when the plugin does not own it
func (p *Plugin) Skill(name string) (*Skill, bool) {
	s, ok := p.skills[name]
	return s, ok
}

// Skills returns the plugin's skills in discovery order
func (p *Plugin) Skills() []*Skill {
	out := make([]*Skill, 0, len(p.order))
	for _, name := range p.order {
		out = append(out, p.skills[name])
	}
	return out
}

// SkillNames returns the skill names in discovery order
func (p *Plugin) SkillNames() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

func (p *Plugin) addSkill(s *Skill) {
	if p.skills == nil {
		p.skills = make(map[string]*Skill)
	}
	p.skills[s.Name] = s
	p.order = append(p.order, s.Name)
}

// Catalog is the aggregate index of all discovered plugins plus the
// rejection records for entries that were excluded. It is built once by a
// Loader and never mutated afterwards.
type Catalog struct {
	root       string
	plugins    map[string]*Plugin
	order      []string
	rejections Rejections
}

// Root returns the directory the catalog was loaded from
func (c *Catalog) Root() string {
	return c.root
}

// Len returns the number of plugins in the catalog
func (c *Catalog) Len() int {
	return len(c.plugins)
}

// Plugin returns the named plugin, or false when it is not in the catalog
func (c *Catalog) Plugin(name string) (*Plugin, bool) {
	p, ok := c.plugins[name]
	return p, ok
}

// Plugins returns all plugins sorted by name
func (c *Catalog) Plugins() []*Plugin {
	names := c.PluginNames()
	out := make([]*Plugin, 0, len(names))
	for _, name := range names {
		out = append(out, c.plugins[name])
	}
	return out
}

// PluginNames returns all plugin names in sorted order
func (c *Catalog) PluginNames() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	sort.Strings(names)
	return names
}

// Skill returns a skill by plugin and skill name
func (c *Catalog) Skill(pluginName, skillName string) (*Skill, bool) {
	p, ok := c.plugins[pluginName]
	if !ok {
		return nil, false
	}
	return p.Skill(skillName)
}

// Rejections returns the records of entries excluded during the load
func (c *Catalog) Rejections() Rejections {
	out := make(Rejections, len(c.rejections))
	copy(out, c.rejections)
	return out
}

func (c *Catalog) addPlugin(p *Plugin) {
	c.plugins[p.Name] = p
	c.order = append(c.order, p.Name)
}

func (c *Catalog) reject(path string, err error) {
	c.rejections = append(c.rejections, Rejection{
		Path:  path,
		Cause: CauseOf(err),
		Err:   err,
	})
}
