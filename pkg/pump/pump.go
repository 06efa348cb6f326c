// Package pump moves I420 frames from an input stream through an encoder
// session to an output stream.
package pump

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/user/framepump/pkg/bitstream"
	"github.com/user/framepump/pkg/config"
	"github.com/user/framepump/pkg/ports"
)

// ProgressInterval is the number of frames between progress lines.
const ProgressInterval = 100

// Stats describes one completed run of the pump.
type Stats struct {
	Frames         int           `yaml:"frames"`
	BytesIn        int64         `yaml:"bytes_in"`
	BytesOut       int64         `yaml:"bytes_out"`
	DrainedBytes   int64         `yaml:"drained_bytes"`
	EncodeFailures int           `yaml:"encode_failures"`
	DiscardedBytes int           `yaml:"discarded_bytes"`
	Elapsed        time.Duration `yaml:"elapsed"`

	Bitstream bitstream.Report `yaml:"bitstream"`
}

// Pump is the read, encode, write loop.
type Pump struct {
	session *Session
	in      io.Reader
	out     io.Writer
	sink    ports.DebugSink
	logger  ports.Logger
	inspect *bitstream.Inspector

	frame  []byte
	output []byte
}

// New creates a Pump for cfg. Both buffers are allocated here and reused
// for every frame.
func New(cfg config.Config, session *Session, in io.Reader, out io.Writer, sink ports.DebugSink, logger ports.Logger) *Pump {
	return &Pump{
		session: session,
		in:      in,
		out:     out,
		sink:    sink,
		logger:  logger.WithComponent("pump"),
		inspect: bitstream.NewInspector(cfg.Width, cfg.Height, logger),
		frame:   make([]byte, cfg.FrameSize()),
		output:  make([]byte, cfg.OutputCapacity()),
	}
}

// Run pumps frames until the input can no longer supply a full frame, then
// drains the session. It does not close the session.
func (p *Pump) Run(ctx context.Context) (stats Stats, err error) {
	start := time.Now()
	defer func() {
		stats.Elapsed = time.Since(start)
		stats.Bitstream = p.inspect.Report()
		if stats.EncodeFailures > 1 {
			p.logger.Warn("Encode failed on %d of %d frames", stats.EncodeFailures, stats.Frames)
		}
	}()

	for index := 0; ; index++ {
		if err := ctx.Err(); err != nil {
			p.logger.Info("Interrupted after %d frames", stats.Frames)
			if derr := p.drain(&stats); derr != nil {
				return stats, derr
			}
			return stats, fmt.Errorf("%w: %v", ErrInterrupted, err)
		}

		if !p.fill(&stats) {
			break
		}

		if err := p.cycle(index, &stats); err != nil {
			return stats, err
		}

		if index%ProgressInterval == 0 {
			p.logger.Info("frameCount=%d (%d processed)", index, index+1)
		}
		stats.Frames++
	}

	if err := p.drain(&stats); err != nil {
		return stats, err
	}

	p.logger.Debug("End of stream after %d frames, %d bytes out", stats.Frames, stats.BytesOut+stats.DrainedBytes)
	return stats, nil
}

// fill reads exactly one frame. It reports false when the stream ended.
func (p *Pump) fill(stats *Stats) bool {
	n, err := io.ReadFull(p.in, p.frame)
	if err == nil {
		stats.BytesIn += int64(n)
		return true
	}

	switch {
	case errors.Is(err, io.EOF):
	case errors.Is(err, io.ErrUnexpectedEOF):
		p.logger.Debug("read underflow (%d of %d)", n, len(p.frame))
	default:
		p.logger.Warn("read failed (%s)", err)
		if n > 0 {
			p.logger.Debug("read underflow (%d of %d)", n, len(p.frame))
		}
	}
	stats.DiscardedBytes = n
	return false
}

// cycle encodes the frame in the buffer and emits its output.
func (p *Pump) cycle(index int, stats *Stats) error {
	if p.sink.Enabled() {
		if err := p.sink.SaveRawFrame(index, p.frame); err != nil {
			p.logger.Warn("Failed to save debug frame %d: %s", index, err)
		}
	}

	n, err := p.session.Encode(ports.FrameTypeAuto, p.frame, p.output)
	if err != nil {
		stats.EncodeFailures++
		// Only the first failure is a warning; the total is reported at the end.
		if stats.EncodeFailures == 1 {
			p.logger.Warn("Encode failed on frame %d: %s", index, err)
		} else {
			p.logger.Debug("Encode failed on frame %d: %s", index, err)
		}
		return nil
	}

	if n > len(p.output) {
		p.logger.Error("Output buffer overflow (%d of %d bytes)", n, len(p.output))
		return fmt.Errorf("%w: frame %d: engine reported %d bytes, capacity %d",
			ErrOutputOverflow, index, n, len(p.output))
	}
	if n <= 0 {
		return nil
	}

	au := p.output[:n]
	if _, err := p.out.Write(au); err != nil {
		return fmt.Errorf("%w: frame %d: %v", ErrWriteFailed, index, err)
	}
	stats.BytesOut += int64(n)

	p.inspect.Inspect(au)
	if p.sink.Enabled() {
		if err := p.sink.SaveAccessUnit(index, au); err != nil {
			p.logger.Warn("Failed to save debug access unit %d: %s", index, err)
		}
	}
	return nil
}

// drain writes whatever the session still holds after the last frame.
func (p *Pump) drain(stats *Stats) error {
	n, err := p.session.Drain(&inspectingWriter{w: p.out, inspect: p.inspect})
	stats.DrainedBytes += n
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDrainFailed, err)
	}
	if n > 0 {
		p.logger.Debug("Drained %d bytes", n)
	}
	return nil
}

// inspectingWriter passes each drained chunk to the inspector once it has
// been written.
type inspectingWriter struct {
	w       io.Writer
	inspect *bitstream.Inspector
}

func (iw *inspectingWriter) Write(b []byte) (int, error) {
	n, err := iw.w.Write(b)
	if n > 0 {
		iw.inspect.Inspect(b[:n])
	}
	return n, err
}
