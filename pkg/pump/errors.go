package pump

import "errors"

var (
	// ErrInitFailed is returned when the engine refuses to create a session.
	ErrInitFailed = errors.New("pump: failed to init encoder")

	// ErrOutputOverflow is returned when the engine reports more output than
	// the output buffer can hold.
	ErrOutputOverflow = errors.New("pump: output buffer overflow")

	// ErrWriteFailed is returned when encoded output cannot be delivered.
	ErrWriteFailed = errors.New("pump: write failed")

	// ErrDrainFailed is returned when buffered output cannot be flushed
	// after the last frame.
	ErrDrainFailed = errors.New("pump: drain failed")

	// ErrInterrupted is returned when the context is cancelled between frames.
	ErrInterrupted = errors.New("pump: interrupted")
)
