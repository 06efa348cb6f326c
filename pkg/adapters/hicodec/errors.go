package hicodec

import "errors"

var (
	// ErrLibraryNotFound is returned when libhicodec cannot be loaded.
	ErrLibraryNotFound = errors.New("hicodec: library not found")

	// ErrUnsupportedPlatform is returned on platforms without dlopen support.
	ErrUnsupportedPlatform = errors.New("hicodec: platform not supported")

	// ErrInitFailed is returned when vl_video_encoder_init reports failure.
	ErrInitFailed = errors.New("hicodec: encoder init failed")

	// ErrEncodeFailed is returned when vl_video_encoder_encode returns a negative count.
	ErrEncodeFailed = errors.New("hicodec: encode failed")
)
