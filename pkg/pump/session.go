package pump

import (
	"fmt"
	"io"
	"sync"

	"github.com/user/framepump/pkg/ports"
)

// Session owns the single encoder session of a run.
type Session struct {
	engine  string
	session ports.CodecSession
	logger  ports.Logger

	once sync.Once
}

// Open initializes one session on engine. The caller must Close it.
func Open(engine ports.CodecEngine, params ports.SessionParams, logger ports.Logger) (*Session, error) {
	logger = logger.WithComponent("session")

	logger.Info("vl_video_encoder_init: width=%d, height=%d, frame_rate=%d, bit_rate=%d, gop=%d",
		params.Width, params.Height, params.FPS, params.Bitrate, params.GOP)
	logger.Debug("Engine %s, codec %s", engine.Name(), params.Codec)

	s, err := engine.Init(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInitFailed, engine.Name(), err)
	}

	logger.Info("handle = %s", s.ID())

	return &Session{
		engine:  engine.Name(),
		session: s,
		logger:  logger,
	}, nil
}

// Engine returns the name of the engine the session runs on.
func (s *Session) Engine() string {
	return s.engine
}

// ID returns the engine handle identifier.
func (s *Session) ID() string {
	return s.session.ID()
}

// Encode submits one frame.
func (s *Session) Encode(hint ports.FrameType, in, out []byte) (int, error) {
	return s.session.Encode(hint, in, out)
}

// Drain flushes output the engine still holds, if it holds any.
// It returns the number of bytes written to w.
func (s *Session) Drain(w io.Writer) (int64, error) {
	d, ok := s.session.(ports.Drainer)
	if !ok {
		return 0, nil
	}

	cw := &countingWriter{w: w}
	err := d.Drain(cw)
	return cw.n, err
}

// Close destroys the session. Calls after the first do nothing.
func (s *Session) Close() {
	s.once.Do(func() {
		s.session.Destroy()
		s.logger.Debug("Session %s destroyed", s.session.ID())
	})
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
