// Package schema generates JSON Schema documents for the skillcat file
// formats, so plugin authors can validate manifests and skill headers in
// their editors or CI.
package schema

import (
	"encoding/json"
	"sort"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"

	"github.com/aa89227/skillcat/pkg/catalog"
	"github.com/aa89227/skillcat/pkg/marketplace"
)

// Kinds of schema that can be generated
const (
	KindManifest = "manifest"
	KindSkill    = "skill"
	KindIndex    = "index"
)

// skillHeader mirrors the SKILL.md frontmatter for schema generation
type skillHeader struct {
	Name        string            `json:"name" jsonschema:"required"`
	Description string            `json:"description" jsonschema:"required"`
	License     string            `json:"license" jsonschema:"required"`
	Metadata    catalog.SkillMeta `json:"metadata" jsonschema:"required"`
}

var kinds = map[string]func() *jsonschema.Schema{
	KindManifest: func() *jsonschema.Schema { return reflectSchema(&catalog.Manifest{}) },
	KindSkill:    func() *jsonschema.Schema { return reflectSchema(&skillHeader{}) },
	KindIndex:    func() *jsonschema.Schema { return reflectSchema(&marketplace.Index{}) },
}

func reflectSchema(v interface{}) *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	return reflector.Reflect(v)
}

// Kinds returns the supported schema kinds in sorted order
func Kinds() []string {
	out := make([]string, 0, len(kinds))
	for kind := range kinds {
		out = append(out, kind)
	}
	sort.Strings(out)
	return out
}

// Generate returns the JSON Schema for the given kind
func Generate(kind string) (*jsonschema.Schema, error) {
	build, ok := kinds[kind]
	if !ok {
		return nil, errors.Errorf("unknown schema kind %q (supported: %v)", kind, Kinds())
	}
	return build(), nil
}

// GenerateJSON returns the indented JSON Schema document for the given kind
func GenerateJSON(kind string) (string, error) {
	s, err := Generate(kind)
	if err != nil {
		return "", err
	}

	content, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal schema")
	}

	return string(content) + "\n", nil
}
