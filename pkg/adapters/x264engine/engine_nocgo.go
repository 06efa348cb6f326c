//go:build !cgo

// Package x264engine encodes frames in-process with libx264.
package x264engine

import "github.com/user/framepump/pkg/ports"

// Name is the engine name used in logs and summaries.
const Name = "x264"

// Available reports whether this build can encode with libx264.
func Available() bool {
	return false
}

// Engine is a placeholder that always fails to initialize.
type Engine struct{}

// New creates an Engine.
func New(logger ports.Logger) *Engine {
	return &Engine{}
}

// Name implements ports.CodecEngine.
func (e *Engine) Name() string {
	return Name
}

// Init always returns ErrUnavailable.
func (e *Engine) Init(p ports.SessionParams) (ports.CodecSession, error) {
	return nil, ErrUnavailable
}

var _ ports.CodecEngine = (*Engine)(nil)
