// Package i420 maps planar YUV 4:2:0 frame buffers onto image.YCbCr.
package i420

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrShortFrame is returned when a buffer is smaller than one frame.
	ErrShortFrame = errors.New("i420: buffer shorter than frame")

	// ErrOddGeometry is returned for frames whose chroma planes would not
	// cover the luma plane.
	ErrOddGeometry = errors.New("i420: width and height must be even")
)

// Size returns the byte size of one width x height frame.
func Size(width, height int) int {
	luma := width * height
	return luma + luma/2
}

// View returns an image.YCbCr whose planes alias data. Nothing is copied,
// so the image is only valid until data is overwritten.
func View(width, height int, data []byte) (*image.YCbCr, error) {
	if width%2 != 0 || height%2 != 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrOddGeometry, width, height)
	}
	size := Size(width, height)
	if len(data) < size {
		return nil, fmt.Errorf("%w: %d < %d", ErrShortFrame, len(data), size)
	}

	luma := width * height
	chroma := luma / 4

	return &image.YCbCr{
		Y:              data[:luma:luma],
		Cb:             data[luma : luma+chroma : luma+chroma],
		Cr:             data[luma+chroma : size : size],
		YStride:        width,
		CStride:        width / 2,
		SubsampleRatio: image.YCbCrSubsampleRatio420,
		Rect:           image.Rect(0, 0, width, height),
	}, nil
}

// Gradient fills a new frame with a moving luma gradient and flat chroma.
// Frame n differs from frame n-1, which keeps encoders from emitting only
// skip blocks.
func Gradient(width, height, n int) []byte {
	data := make([]byte, Size(width, height))
	luma := width * height

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			data[y*width+x] = byte((x + y + n*4) % 256)
		}
	}
	for i := luma; i < len(data); i++ {
		data[i] = 128
	}
	return data
}
