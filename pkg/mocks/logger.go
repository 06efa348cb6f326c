package mocks

import (
	"fmt"
	"strings"
	"sync"

	"github.com/user/framepump/pkg/ports"
)

// LogEntry is one recorded log call.
type LogEntry struct {
	Level     ports.LogLevel
	Component string
	Message   string // formatted, untranslated
}

// Logger records every message it receives.
type Logger struct {
	mu        *sync.Mutex
	entries   *[]LogEntry
	component string
}

// NewLogger creates a new recording Logger.
func NewLogger() *Logger {
	return &Logger{
		mu:      &sync.Mutex{},
		entries: &[]LogEntry{},
	}
}

func (m *Logger) Debug(msg string, args ...interface{}) { m.add(ports.LevelDebug, msg, args) }
func (m *Logger) Info(msg string, args ...interface{})  { m.add(ports.LevelInfo, msg, args) }
func (m *Logger) Warn(msg string, args ...interface{})  { m.add(ports.LevelWarn, msg, args) }
func (m *Logger) Error(msg string, args ...interface{}) { m.add(ports.LevelError, msg, args) }

// WithComponent returns a Logger sharing the same record.
func (m *Logger) WithComponent(component string) ports.Logger {
	return &Logger{mu: m.mu, entries: m.entries, component: component}
}

// Entries returns a copy of all recorded entries.
func (m *Logger) Entries() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]LogEntry(nil), *m.entries...)
}

// Count returns the number of entries at level whose message contains substr.
func (m *Logger) Count(level ports.LogLevel, substr string) int {
	n := 0
	for _, e := range m.Entries() {
		if e.Level == level && strings.Contains(e.Message, substr) {
			n++
		}
	}
	return n
}

func (m *Logger) add(level ports.LogLevel, msg string, args []interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	*m.entries = append(*m.entries, LogEntry{
		Level:     level,
		Component: m.component,
		Message:   fmt.Sprintf(msg, args...),
	})
}

var _ ports.Logger = (*Logger)(nil)
