//go:build cgo

// Package x264engine encodes frames in-process with libx264.
package x264engine

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"sync/atomic"

	x264 "github.com/gen2brain/x264-go"

	"github.com/user/framepump/pkg/i420"
	"github.com/user/framepump/pkg/ports"
)

// Name is the engine name used in logs and summaries.
const Name = "x264"

var sessionSeq atomic.Int64

// Available reports whether this build can encode with libx264.
func Available() bool {
	return true
}

// Engine creates libx264 encoder sessions.
type Engine struct {
	logger ports.Logger
}

// New creates an Engine.
func New(logger ports.Logger) *Engine {
	return &Engine{logger: logger.WithComponent(Name)}
}

// Name implements ports.CodecEngine.
func (e *Engine) Name() string {
	return Name
}

// Init opens a libx264 encoder for p.
func (e *Engine) Init(p ports.SessionParams) (ports.CodecSession, error) {
	if p.Codec != ports.CodecH264 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCodec, p.Codec)
	}

	warnIgnoredParams(e.logger, p)

	s := &session{
		id:     strconv.FormatInt(sessionSeq.Add(1), 10),
		width:  p.Width,
		height: p.Height,
		buf:    &bytes.Buffer{},
	}

	enc, err := x264.NewEncoder(s.buf, &x264.Options{
		Width:     p.Width,
		Height:    p.Height,
		FrameRate: p.FPS,
		Tune:      "zerolatency",
		Preset:    preset,
		Profile:   "baseline",
		LogLevel:  x264.LogWarning,
	})
	if err != nil {
		return nil, fmt.Errorf("x264 open: %w", err)
	}
	s.enc = enc

	return s, nil
}

type session struct {
	id     string
	width  int
	height int
	enc    *x264.Encoder
	buf    *bytes.Buffer
	closed bool
}

func (s *session) ID() string {
	return s.id
}

// Encode encodes one frame. With the zerolatency tune every frame produces
// its access unit immediately.
func (s *session) Encode(hint ports.FrameType, in, out []byte) (int, error) {
	img, err := i420.View(s.width, s.height, in)
	if err != nil {
		return 0, err
	}

	if err := s.enc.Encode(img); err != nil {
		return 0, fmt.Errorf("x264 encode: %w", err)
	}

	n := s.buf.Len()
	if n > len(out) {
		s.buf.Reset()
		return n, nil
	}
	copy(out, s.buf.Bytes())
	s.buf.Reset()
	return n, nil
}

// Drain writes delayed frames to w.
func (s *session) Drain(w io.Writer) error {
	if err := s.enc.Flush(); err != nil {
		return fmt.Errorf("x264 flush: %w", err)
	}
	if s.buf.Len() == 0 {
		return nil
	}
	_, err := w.Write(s.buf.Bytes())
	s.buf.Reset()
	return err
}

func (s *session) Destroy() {
	if s.closed {
		return
	}
	s.closed = true
	s.enc.Close()
}

var (
	_ ports.CodecEngine  = (*Engine)(nil)
	_ ports.CodecSession = (*session)(nil)
	_ ports.Drainer      = (*session)(nil)
)
