package catalog

import (
	"bytes"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

// SkillFileName is the metadata document expected in every skill directory
const SkillFileName = "SKILL.md"

// parseSkillFile loads a skill from its SKILL.md file. The YAML frontmatter
// declares name, description, license, and a metadata block with author,
// version, and tags; everything after the frontmatter is opaque body content.
func parseSkillFile(path string) (*Skill, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, unreadableError(errors.Wrap(err, "failed to read skill file"))
	}

	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	var buf bytes.Buffer
	pctx := parser.NewContext()

	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return nil, unreadableError(errors.Wrap(err, "failed to parse markdown"))
	}

	metaData := meta.Get(pctx)
	if metaData == nil {
		return nil, unreadableError(errors.New("missing frontmatter"))
	}

	skill := &Skill{
		Name:        metaString(metaData, "name"),
		Description: metaString(metaData, "description"),
		License:     metaString(metaData, "license"),
		Content:     extractBody(string(content)),
	}

	block := asStringMap(metaData["metadata"])
	skill.Meta = SkillMeta{
		Author:  metaString(block, "author"),
		Version: metaString(block, "version"),
		Tags:    normalizeTags(asStringSlice(block["tags"])),
	}

	if skill.Name == "" {
		return nil, missingFieldError("name")
	}
	if skill.Description == "" {
		return nil, missingFieldError("description")
	}
	if skill.License == "" {
		return nil, missingFieldError("license")
	}
	if skill.Meta.Author == "" {
		return nil, missingFieldError("metadata.author")
	}
	if skill.Meta.Version == "" {
		return nil, missingFieldError("metadata.version")
	}

	return skill, nil
}

// metaString reads a string value from a frontmatter mapping
func metaString(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

// asStringMap coerces a nested frontmatter mapping. goldmark-meta yields
// map[interface{}]interface{} for nested blocks.
func asStringMap(v interface{}) map[string]interface{} {
	switch m := v.(type) {
	case map[string]interface{}:
		return m
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, val := range m {
			if key, ok := k.(string); ok {
				out[key] = val
			}
		}
		return out
	default:
		return nil
	}
}

// asStringSlice coerces a frontmatter sequence to its string elements
func asStringSlice(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// normalizeTags deduplicates and sorts tags. Tags are a set: order and
// duplicates in the source document are not meaningful.
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	if len(out) == 0 {
		return nil
	}
	sort.Strings(out)
	return out
}

// extractBody strips the YAML frontmatter and returns the remainder
// unmodified apart from leading newlines
func extractBody(content string) string {
	if !strings.HasPrefix(content, "---") {
		return content
	}

	lines := strings.Split(content, "\n")
	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			end = i
			break
		}
	}
	if end == -1 {
		return content
	}

	return strings.TrimLeft(strings.Join(lines[end+1:], "\n"), "\n")
}
