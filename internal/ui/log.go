package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	logTag   = color.New(color.FgHiBlue, color.Bold)
	warnTag  = color.New(color.FgHiYellow, color.Bold)
	errorTag = color.New(color.FgHiRed, color.Bold)
	message  = color.New(color.Bold)
)

// Logger prints indented status lines. The zero depth is the top level;
// Nest returns a logger one level deeper and leaves the receiver unchanged.
type Logger struct {
	out   io.Writer
	depth int
}

// NewLogger creates a Logger writing to stderr
func NewLogger() *Logger {
	return &Logger{out: os.Stderr}
}

// NewLoggerWithWriter creates a Logger writing to w (for testing)
func NewLoggerWithWriter(w io.Writer) *Logger {
	return &Logger{out: w}
}

// Nest returns a logger for a scoped sub-step
func (l *Logger) Nest() *Logger {
	return &Logger{out: l.out, depth: l.depth + 1}
}

// Depth returns the current nesting depth
func (l *Logger) Depth() int {
	return l.depth
}

// Log prints an informational status line
func (l *Logger) Log(format string, args ...interface{}) {
	l.print(logTag, "[log]", format, args...)
}

// Warn prints a warning status line
func (l *Logger) Warn(format string, args ...interface{}) {
	l.print(warnTag, "[wrn]", format, args...)
}

// Error prints an error status line
func (l *Logger) Error(format string, args ...interface{}) {
	l.print(errorTag, "[err]", format, args...)
}

func (l *Logger) print(tag *color.Color, label, format string, args ...interface{}) {
	indent := strings.Repeat(" ", l.depth*2)
	fmt.Fprintf(l.out, "%s%s %s\n", indent, tag.Sprint(label), message.Sprintf(format, args...))
}
