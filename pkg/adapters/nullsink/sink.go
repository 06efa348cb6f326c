// Package nullsink provides a no-op debug sink implementation.
package nullsink

import "github.com/user/framepump/pkg/ports"

// Sink discards all debug output. Used when --debug-dir is not set.
type Sink struct{}

// New creates a new NullSink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false; the pump skips sink calls entirely.
func (s *Sink) Enabled() bool {
	return false
}

// SaveRawFrame does nothing.
func (s *Sink) SaveRawFrame(index int, data []byte) error {
	return nil
}

// SaveAccessUnit does nothing.
func (s *Sink) SaveAccessUnit(index int, data []byte) error {
	return nil
}

var _ ports.DebugSink = (*Sink)(nil)
