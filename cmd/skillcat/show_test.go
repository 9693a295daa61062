package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		arg        string
		wantPlugin string
		wantSkill  string
	}{
		{"git-operations", "git-operations", ""},
		{"git-operations/git-commit-messages", "git-operations", "git-commit-messages"},
		{"plug/skill/with/slashes", "plug", "skill/with/slashes"},
	}

	for _, tt := range tests {
		plugin, skill := parseTarget(tt.arg)
		assert.Equal(t, tt.wantPlugin, plugin)
		assert.Equal(t, tt.wantSkill, skill)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly-10", truncate("exactly-10", 10))
	assert.Equal(t, "this is...", truncate("this is far too long", 10))
}
