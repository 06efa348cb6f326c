package x264engine

import "errors"

var (
	// ErrUnavailable is returned when the binary was built without cgo.
	ErrUnavailable = errors.New("x264engine: built without cgo")

	// ErrUnsupportedCodec is returned for codec kinds other than H.264.
	ErrUnsupportedCodec = errors.New("x264engine: unsupported codec")
)
