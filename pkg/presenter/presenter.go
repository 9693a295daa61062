// Package presenter provides consistent user-facing CLI output: success,
// error, warning, and informational messages with color support and a quiet
// mode for scripting.
package presenter

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Presenter defines the interface for user-facing CLI output
type Presenter interface {
	Error(err error, context string)
	Success(message string)
	Warning(message string)
	Info(message string)
	Section(title string)
	SetQuiet(quiet bool)
	IsQuiet() bool
}

// ColorMode controls whether output is colorized
type ColorMode int

const (
	// ColorAuto colorizes when stdout is a terminal
	ColorAuto ColorMode = iota
	// ColorAlways forces colorized output
	ColorAlways
	// ColorNever disables colorized output
	ColorNever
)

// TerminalPresenter implements Presenter for terminal output
type TerminalPresenter struct {
	output      io.Writer
	errorOutput io.Writer
	quiet       bool
}

// New creates a TerminalPresenter writing to stdout/stderr with
// environment-driven color detection
func New() *TerminalPresenter {
	return NewWithOptions(os.Stdout, os.Stderr, detectColorMode())
}

// NewWithOptions creates a TerminalPresenter with explicit writers and color mode
func NewWithOptions(output, errorOutput io.Writer, mode ColorMode) *TerminalPresenter {
	switch mode {
	case ColorAlways:
		color.NoColor = false
	case ColorNever:
		color.NoColor = true
	}
	return &TerminalPresenter{
		output:      output,
		errorOutput: errorOutput,
	}
}

// detectColorMode resolves the color mode from NO_COLOR, SKILLCAT_COLOR, and
// whether stdout is a terminal
func detectColorMode() ColorMode {
	if os.Getenv("NO_COLOR") != "" {
		return ColorNever
	}
	switch os.Getenv("SKILLCAT_COLOR") {
	case "always", "force":
		return ColorAlways
	case "never", "off":
		return ColorNever
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return ColorNever
	}
	return ColorAuto
}

// Error prints an error with optional context to the error output.
// Errors are printed even in quiet mode.
func (p *TerminalPresenter) Error(err error, context string) {
	if err == nil {
		return
	}
	red := color.New(color.FgRed, color.Bold)
	if context != "" {
		fmt.Fprintf(p.errorOutput, "%s %s: %v\n", red.Sprint("Error:"), context, err)
		return
	}
	fmt.Fprintf(p.errorOutput, "%s %v\n", red.Sprint("Error:"), err)
}

// Success prints a success message
func (p *TerminalPresenter) Success(message string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.output, "%s %s\n", color.New(color.FgGreen).Sprint("✓"), message)
}

// Warning prints a warning message
func (p *TerminalPresenter) Warning(message string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.output, "%s %s\n", color.New(color.FgYellow).Sprint("!"), message)
}

// Info prints an informational message
func (p *TerminalPresenter) Info(message string) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.output, message)
}

// Section prints a section header
func (p *TerminalPresenter) Section(title string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.output, "\n%s\n", color.New(color.Bold).Sprint(title))
}

// SetQuiet toggles quiet mode
func (p *TerminalPresenter) SetQuiet(quiet bool) {
	p.quiet = quiet
}

// IsQuiet reports whether quiet mode is enabled
func (p *TerminalPresenter) IsQuiet() bool {
	return p.quiet
}

var defaultPresenter Presenter = New()

// Error prints an error via the default presenter
func Error(err error, context string) { defaultPresenter.Error(err, context) }

// Success prints a success message via the default presenter
func Success(message string) { defaultPresenter.Success(message) }

// Warning prints a warning message via the default presenter
func Warning(message string) { defaultPresenter.Warning(message) }

// Info prints an informational message via the default presenter
func Info(message string) { defaultPresenter.Info(message) }

// Section prints a section header via the default presenter
func Section(title string) { defaultPresenter.Section(title) }

// SetQuiet toggles quiet mode on the default presenter
func SetQuiet(quiet bool) { defaultPresenter.SetQuiet(quiet) }

// SetDefault replaces the default presenter, returning the previous one.
// Intended for tests.
func SetDefault(p Presenter) Presenter {
	prev := defaultPresenter
	defaultPresenter = p
	return prev
}
