//go:build !(darwin || linux)

// Package hicodec drives the vendor hardware encoder library libhicodec
// through purego, without cgo.
package hicodec

import "github.com/user/framepump/pkg/ports"

// Name is the engine name used in logs and summaries.
const Name = "hicodec"

// Available reports whether libhicodec can be loaded.
func Available(libraryPath string) bool {
	return false
}

// Engine is a placeholder that always fails to initialize.
type Engine struct{}

// New creates an Engine.
func New(libraryPath string, logger ports.Logger) *Engine {
	return &Engine{}
}

// Name implements ports.CodecEngine.
func (e *Engine) Name() string {
	return Name
}

// Init always returns ErrUnsupportedPlatform.
func (e *Engine) Init(p ports.SessionParams) (ports.CodecSession, error) {
	return nil, ErrUnsupportedPlatform
}

var _ ports.CodecEngine = (*Engine)(nil)
