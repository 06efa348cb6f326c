// Package ffmpegengine encodes frames with an ffmpeg subprocess fed through
// its standard input.
package ffmpegengine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"sync"

	"github.com/user/framepump/pkg/ports"
)

// Name is the engine name used in logs and summaries.
const Name = "ffmpeg"

// Engine starts one ffmpeg process per session.
type Engine struct {
	ffmpegPath string
	logger     ports.Logger
}

// New creates an Engine. An empty ffmpegPath means search for one.
func New(ffmpegPath string, logger ports.Logger) *Engine {
	return &Engine{
		ffmpegPath: ffmpegPath,
		logger:     logger.WithComponent(Name),
	}
}

// Name implements ports.CodecEngine.
func (e *Engine) Name() string {
	return Name
}

// Init starts ffmpeg reading raw yuv420p frames and writing an H.264
// elementary stream.
func (e *Engine) Init(p ports.SessionParams) (ports.CodecSession, error) {
	if p.Codec != ports.CodecH264 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCodec, p.Codec)
	}

	path, err := FindFFmpeg(e.ffmpegPath)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("Using ffmpeg at %s", path)

	s := &session{
		done:   make(chan struct{}),
		logger: e.logger,
	}

	s.cmd = exec.Command(path, Args(p)...)
	s.cmd.Stderr = &s.stderr

	stdin, err := s.cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to get stdin pipe: %w", err)
	}
	stdout, err := s.cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to get stdout pipe: %w", err)
	}
	s.stdin = stdin

	if err := s.cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	go s.readLoop(stdout)

	return s, nil
}

// Args returns the ffmpeg command line for p.
func Args(p ports.SessionParams) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		"-f", "rawvideo",
		"-pix_fmt", "yuv420p",
		"-s", fmt.Sprintf("%dx%d", p.Width, p.Height),
		"-r", strconv.Itoa(p.FPS),
		"-i", "pipe:0",
		"-c:v", "libx264",
		"-preset", "veryfast",
		"-tune", "zerolatency",
		"-b:v", strconv.Itoa(p.Bitrate),
		"-g", strconv.Itoa(p.GOP),
		"-bf", "0",
		"-f", "h264",
		"pipe:1",
	}
}

// session is one running ffmpeg process. A goroutine moves everything
// ffmpeg writes into pending; Encode hands out what has arrived so far.
type session struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stderr bytes.Buffer
	logger ports.Logger

	mu      sync.Mutex
	pending bytes.Buffer
	readErr error
	done    chan struct{}

	closeOnce sync.Once
	closed    bool
}

func (s *session) ID() string {
	return strconv.Itoa(s.cmd.Process.Pid)
}

// Encode writes one frame to ffmpeg. The returned bytes are whatever ffmpeg
// has produced since the previous call, which lags the input by the
// encoder's delay. Output that does not fit stays pending for the next call.
func (s *session) Encode(hint ports.FrameType, in, out []byte) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	if _, err := s.stdin.Write(in); err != nil {
		return 0, fmt.Errorf("failed to write frame: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending.Read(out[:min(len(out), s.pending.Len())])
}

// Drain closes ffmpeg's input, waits for it to exit and writes the rest of
// its output to w.
func (s *session) Drain(w io.Writer) error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true

	s.stdin.Close()
	<-s.done
	waitErr := s.cmd.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending.Len() > 0 {
		if _, err := w.Write(s.pending.Bytes()); err != nil {
			return err
		}
		s.pending.Reset()
	}

	if waitErr != nil {
		return fmt.Errorf("ffmpeg encoding failed: %w\nstderr: %s", waitErr, s.stderr.String())
	}
	if s.readErr != nil {
		return fmt.Errorf("failed to read output: %w", s.readErr)
	}
	return nil
}

// Destroy stops ffmpeg if Drain has not.
func (s *session) Destroy() {
	s.closeOnce.Do(func() {
		if s.closed {
			return
		}
		s.closed = true
		s.stdin.Close()
		if err := s.cmd.Process.Kill(); err != nil {
			s.logger.Debug("Failed to kill ffmpeg: %s", err)
		}
		<-s.done
		s.cmd.Wait()
	})
}

func (s *session) readLoop(r io.Reader) {
	defer close(s.done)

	buf := make([]byte, 32*1024)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.pending.Write(buf[:n])
			s.mu.Unlock()
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.mu.Lock()
				s.readErr = err
				s.mu.Unlock()
			}
			return
		}
	}
}

var (
	_ ports.CodecEngine  = (*Engine)(nil)
	_ ports.CodecSession = (*session)(nil)
	_ ports.Drainer      = (*session)(nil)
)
