package version

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, GitCommit, info.GitCommit)
}

func TestString(t *testing.T) {
	info := Info{Version: "1.2.3", GitCommit: "abc1234"}
	s := info.String()
	assert.Contains(t, s, "1.2.3")
	assert.Contains(t, s, "abc1234")
}

func TestJSON(t *testing.T) {
	info := Info{Version: "1.2.3", GitCommit: "abc1234"}
	out, err := info.JSON()
	require.NoError(t, err)

	var decoded Info
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, info, decoded)
}
