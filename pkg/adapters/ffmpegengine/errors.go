package ffmpegengine

import "errors"

var (
	// ErrFFmpegNotFound is returned when no ffmpeg binary can be located.
	ErrFFmpegNotFound = errors.New("ffmpegengine: ffmpeg not found")

	// ErrUnsupportedCodec is returned for codec kinds other than H.264.
	ErrUnsupportedCodec = errors.New("ffmpegengine: unsupported codec")

	// ErrClosed is returned when a session is used after Drain or Destroy.
	ErrClosed = errors.New("ffmpegengine: session closed")
)
