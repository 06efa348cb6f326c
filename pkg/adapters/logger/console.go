// Package logger provides logging implementations.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ideamans/go-l10n"
	"github.com/mattn/go-isatty"

	"github.com/user/framepump/pkg/ports"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGray   = "\033[90m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorCyan   = "\033[36m"
)

// ConsoleLogger writes diagnostic lines to a single stream.
// Standard output carries the encoded bitstream, so every level goes to the
// same diagnostic writer.
type ConsoleLogger struct {
	level     ports.LogLevel
	component string
	color     bool

	mu *sync.Mutex
	w  io.Writer
}

// NewConsole creates a console logger writing to standard error.
// Color output is enabled when standard error is a terminal.
func NewConsole(level ports.LogLevel) *ConsoleLogger {
	fd := os.Stderr.Fd()
	return NewWriter(os.Stderr, level, isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
}

// NewWriter creates a logger writing to w.
func NewWriter(w io.Writer, level ports.LogLevel, color bool) *ConsoleLogger {
	return &ConsoleLogger{
		level: level,
		color: color,
		mu:    &sync.Mutex{},
		w:     w,
	}
}

// Debug logs a debug message.
func (l *ConsoleLogger) Debug(msg string, args ...interface{}) {
	if l.level > ports.LevelDebug {
		return
	}
	l.log(ports.LevelDebug, msg, args...)
}

// Info logs an informational message.
func (l *ConsoleLogger) Info(msg string, args ...interface{}) {
	if l.level > ports.LevelInfo {
		return
	}
	l.log(ports.LevelInfo, msg, args...)
}

// Warn logs a warning message.
func (l *ConsoleLogger) Warn(msg string, args ...interface{}) {
	if l.level > ports.LevelWarn {
		return
	}
	l.log(ports.LevelWarn, msg, args...)
}

// Error logs an error message.
func (l *ConsoleLogger) Error(msg string, args ...interface{}) {
	if l.level > ports.LevelError {
		return
	}
	l.log(ports.LevelError, msg, args...)
}

// WithComponent returns a new logger with the specified component name.
// The returned logger shares the writer and its lock.
func (l *ConsoleLogger) WithComponent(component string) ports.Logger {
	return &ConsoleLogger{
		level:     l.level,
		component: component,
		color:     l.color,
		mu:        l.mu,
		w:         l.w,
	}
}

func (l *ConsoleLogger) log(level ports.LogLevel, msg string, args ...interface{}) {
	translated := l10n.F(msg, args...)

	var output string
	if l.component != "" {
		if l.color {
			output = fmt.Sprintf("%s[%s]%s %s", colorCyan, l.component, colorReset, translated)
		} else {
			output = fmt.Sprintf("[%s] %s", l.component, translated)
		}
	} else {
		output = translated
	}

	if l.color {
		switch level {
		case ports.LevelDebug:
			output = colorGray + output + colorReset
		case ports.LevelWarn:
			output = colorYellow + output + colorReset
		case ports.LevelError:
			output = colorRed + output + colorReset
		}
	}

	l.mu.Lock()
	fmt.Fprintln(l.w, output)
	l.mu.Unlock()
}

var _ ports.Logger = (*ConsoleLogger)(nil)
