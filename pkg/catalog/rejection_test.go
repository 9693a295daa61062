package catalog

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRejectionsErr(t *testing.T) {
	var empty Rejections
	assert.NoError(t, empty.Err())

	rs := Rejections{
		{Path: "/a/plugin.yaml", Cause: CauseMissingField, Err: missingFieldError("name")},
		{Path: "/b/SKILL.md", Cause: CauseDuplicateName, Err: duplicateNameError("skill", "x")},
	}

	err := rs.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/a/plugin.yaml")
	assert.Contains(t, err.Error(), "/b/SKILL.md")
}

func TestRejectionsByCause(t *testing.T) {
	rs := Rejections{
		{Path: "a", Cause: CauseMissingField, Err: missingFieldError("name")},
		{Path: "b", Cause: CauseDuplicateName, Err: duplicateNameError("plugin", "x")},
		{Path: "c", Cause: CauseMissingField, Err: missingFieldError("author")},
	}

	missing := rs.ByCause(CauseMissingField)
	require.Len(t, missing, 2)
	assert.Equal(t, "a", missing[0].Path)
	assert.Equal(t, "c", missing[1].Path)

	assert.Empty(t, rs.ByCause(CauseUnreadablePath))
}

func TestCauseOf(t *testing.T) {
	assert.Equal(t, CauseMissingField, CauseOf(missingFieldError("name")))
	assert.Equal(t, CauseDuplicateName, CauseOf(duplicateNameError("plugin", "x")))
	assert.Equal(t, CauseUnreadablePath, CauseOf(unreadableError(errors.New("bad"))))
	assert.Equal(t, CauseUnreadablePath, CauseOf(errors.New("unclassified")))
}

func TestCauseOfWrappedError(t *testing.T) {
	wrapped := errors.Wrap(missingFieldError("license"), "loading skill")
	assert.Equal(t, CauseMissingField, CauseOf(wrapped))
}

func TestRejectionString(t *testing.T) {
	r := Rejection{Path: "/root/p/plugin.yaml", Cause: CauseMissingField, Err: missingFieldError("name")}
	s := r.String()
	assert.Contains(t, s, "/root/p/plugin.yaml")
	assert.Contains(t, s, "missing_field")
	assert.Contains(t, s, "name")
}
