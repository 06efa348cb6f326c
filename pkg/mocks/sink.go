package mocks

import (
	"sync"

	"github.com/user/framepump/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	RawFrames   map[int][]byte
	AccessUnits map[int][]byte
	SaveErr     error
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:     enabled,
		RawFrames:   make(map[int][]byte),
		AccessUnits: make(map[int][]byte),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveRawFrame(index int, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.RawFrames[index] = append([]byte(nil), data...)
	return nil
}

func (m *DebugSink) SaveAccessUnit(index int, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.AccessUnits[index] = append([]byte(nil), data...)
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
