package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	assert.Equal(t, []string{"index", "manifest", "skill"}, Kinds())
}

func TestGenerateUnknownKind(t *testing.T) {
	_, err := Generate("bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}

func TestGenerateManifestSchema(t *testing.T) {
	out, err := GenerateJSON(KindManifest)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	props, ok := doc["properties"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, props, "name")
	assert.Contains(t, props, "version")
	assert.Contains(t, props, "author")

	required, ok := doc["required"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, required, "name")
}

func TestGenerateSkillSchema(t *testing.T) {
	out, err := GenerateJSON(KindSkill)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	props, ok := doc["properties"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, props, "license")
	assert.Contains(t, props, "metadata")
}

func TestGenerateIndexSchema(t *testing.T) {
	out, err := GenerateJSON(KindIndex)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	props, ok := doc["properties"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, props, "plugins")
}
