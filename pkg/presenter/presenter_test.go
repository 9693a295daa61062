package presenter

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func newTestPresenter() (*TerminalPresenter, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return NewWithOptions(out, errOut, ColorNever), out, errOut
}

func TestError(t *testing.T) {
	p, out, errOut := newTestPresenter()

	p.Error(errors.New("boom"), "loading catalog")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "loading catalog")
	assert.Contains(t, errOut.String(), "boom")
}

func TestErrorWithoutContext(t *testing.T) {
	p, _, errOut := newTestPresenter()

	p.Error(errors.New("boom"), "")

	assert.Contains(t, errOut.String(), "boom")
	assert.NotContains(t, errOut.String(), ": :")
}

func TestNilErrorIsIgnored(t *testing.T) {
	p, _, errOut := newTestPresenter()

	p.Error(nil, "context")

	assert.Empty(t, errOut.String())
}

func TestSuccessWarningInfo(t *testing.T) {
	p, out, _ := newTestPresenter()

	p.Success("installed")
	p.Warning("duplicate skipped")
	p.Info("3 plugins loaded")

	assert.Contains(t, out.String(), "installed")
	assert.Contains(t, out.String(), "duplicate skipped")
	assert.Contains(t, out.String(), "3 plugins loaded")
}

func TestQuietSuppressesAllButErrors(t *testing.T) {
	p, out, errOut := newTestPresenter()
	p.SetQuiet(true)

	p.Success("installed")
	p.Warning("skipped")
	p.Info("loaded")
	p.Section("Plugins")
	p.Error(errors.New("boom"), "")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "boom")
	assert.True(t, p.IsQuiet())
}

func TestColorModeNever(t *testing.T) {
	prev := color.NoColor
	defer func() { color.NoColor = prev }()

	NewWithOptions(&bytes.Buffer{}, &bytes.Buffer{}, ColorNever)
	assert.True(t, color.NoColor)

	NewWithOptions(&bytes.Buffer{}, &bytes.Buffer{}, ColorAlways)
	assert.False(t, color.NoColor)
}

func TestDetectColorModeRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ColorNever, detectColorMode())
}

func TestDetectColorModeRespectsSkillcatColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("SKILLCAT_COLOR", "always")
	assert.Equal(t, ColorAlways, detectColorMode())

	t.Setenv("SKILLCAT_COLOR", "never")
	assert.Equal(t, ColorNever, detectColorMode())
}
