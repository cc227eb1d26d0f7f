package search

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Emitter receives traversal events as they happen. depth is the current
// archive nesting level and drives indentation in console output.
type Emitter interface {
	// Info reports routine progress: entering a directory, extracting an
	// archive.
	Info(depth int, format string, args ...any)
	// Warn reports a recovered problem: a failed extraction, a skipped
	// subtree.
	Warn(depth int, format string, args ...any)
	// Match reports a successful match.
	Match(depth int, format string, args ...any)
}

// NopEmitter discards all events.
type NopEmitter struct{}

func (NopEmitter) Info(int, string, ...any)  {}
func (NopEmitter) Warn(int, string, ...any)  {}
func (NopEmitter) Match(int, string, ...any) {}

// ConsoleEmitter writes human-readable event lines, indented by depth.
// Warnings print yellow and matches green when colors are enabled.
type ConsoleEmitter struct {
	out   io.Writer
	warn  *color.Color
	match *color.Color
	quiet bool
}

// NewConsoleEmitter creates a console emitter. enabled=false disables color;
// quiet suppresses info lines (warnings and matches always print).
func NewConsoleEmitter(out io.Writer, enabled, quiet bool) *ConsoleEmitter {
	e := &ConsoleEmitter{
		out:   out,
		warn:  color.New(color.FgYellow),
		match: color.New(color.FgGreen),
		quiet: quiet,
	}
	if !enabled {
		e.warn.DisableColor()
		e.match.DisableColor()
	}
	return e
}

func (e *ConsoleEmitter) Info(depth int, format string, args ...any) {
	if e.quiet {
		return
	}
	fmt.Fprintf(e.out, indent(depth)+format+"\n", args...)
}

func (e *ConsoleEmitter) Warn(depth int, format string, args ...any) {
	e.warn.Fprintf(e.out, indent(depth)+format+"\n", args...)
}

func (e *ConsoleEmitter) Match(depth int, format string, args ...any) {
	e.match.Fprintf(e.out, indent(depth)+format+"\n", args...)
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
