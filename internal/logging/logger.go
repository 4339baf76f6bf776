// Package logging provides the console logger used by the CLI.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger is the logging interface used across the tool.
type Logger interface {
	Verbose(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

var (
	verboseColor = color.New(color.FgCyan)
	warnColor    = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// ConsoleLogger writes log messages to a writer, stderr by default.
type ConsoleLogger struct {
	out     io.Writer
	verbose bool
}

// NewConsoleLogger creates a logger writing to stderr.
// Verbose messages are dropped unless verbose is true.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewWriterLogger(os.Stderr, verbose)
}

// NewWriterLogger creates a logger writing to out.
func NewWriterLogger(out io.Writer, verbose bool) *ConsoleLogger {
	return &ConsoleLogger{out: out, verbose: verbose}
}

// SetColor enables or disables coloured prefixes for every logger.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

// Verbose logs detailed progress information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.write(verboseColor.Sprint("[VERBOSE]")+" ", format, args)
}

// Info logs informational messages.
func (l *ConsoleLogger) Info(format string, args ...any) {
	l.write("", format, args)
}

// Warn logs recoverable problems.
func (l *ConsoleLogger) Warn(format string, args ...any) {
	l.write(warnColor.Sprint("[WARN]")+" ", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...any) {
	l.write(errorColor.Sprint("[ERROR]")+" ", format, args)
}

func (l *ConsoleLogger) write(prefix, format string, args []any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	fmt.Fprint(l.out, prefix+msg+"\n")
}

// NullLogger discards every message.
type NullLogger struct{}

// NewNullLogger creates a logger that discards everything.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (NullLogger) Verbose(string, ...any) {}
func (NullLogger) Info(string, ...any)    {}
func (NullLogger) Warn(string, ...any)    {}
func (NullLogger) Error(string, ...any)   {}
