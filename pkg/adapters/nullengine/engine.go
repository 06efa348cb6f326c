// Package nullengine provides a codec engine that accepts every frame and
// produces no output.
package nullengine

import (
	"strconv"
	"sync/atomic"

	"github.com/user/framepump/pkg/ports"
)

// Name is the engine name used in logs and summaries.
const Name = "null"

var sessionSeq atomic.Uint32

// Engine discards all frames. Used with --engine null to measure the pump
// and the producer without an encoder.
type Engine struct{}

// New creates a new null Engine.
func New() *Engine {
	return &Engine{}
}

// Name implements ports.CodecEngine.
func (e *Engine) Name() string {
	return Name
}

// Init always succeeds.
func (e *Engine) Init(p ports.SessionParams) (ports.CodecSession, error) {
	return &session{id: sessionSeq.Add(1)}, nil
}

type session struct {
	id uint32
}

func (s *session) ID() string {
	return strconv.FormatUint(uint64(s.id), 10)
}

// Encode reports zero bytes.
func (s *session) Encode(hint ports.FrameType, in, out []byte) (int, error) {
	return 0, nil
}

// Destroy does nothing.
func (s *session) Destroy() {}

var (
	_ ports.CodecEngine  = (*Engine)(nil)
	_ ports.CodecSession = (*session)(nil)
)
