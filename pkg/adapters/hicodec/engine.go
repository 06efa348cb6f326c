//go:build darwin || linux

// Package hicodec drives the vendor hardware encoder library libhicodec
// through purego, without cgo.
package hicodec

import (
	"fmt"
	"runtime"
	"strconv"
	"sync"
	"unsafe"

	"github.com/user/framepump/pkg/ports"
)

// Name is the engine name used in logs and summaries.
const Name = "hicodec"

// shicodec mirrors SHICODEC. It is heap-allocated and handed to the library
// by address for the whole session.
type shicodec struct {
	hPlayer uint32
	hWindow uint32
	hCodec  int32
	hPriv   [128]uint32
}

// Available reports whether libhicodec can be loaded.
func Available(libraryPath string) bool {
	return load(libraryPath) == nil
}

// Engine creates libhicodec encoder sessions.
type Engine struct {
	libraryPath string
	logger      ports.Logger
}

// New creates an Engine. An empty libraryPath means search for the library.
func New(libraryPath string, logger ports.Logger) *Engine {
	return &Engine{
		libraryPath: libraryPath,
		logger:      logger.WithComponent(Name),
	}
}

// Name implements ports.CodecEngine.
func (e *Engine) Name() string {
	return Name
}

// Init loads the library if needed and calls vl_video_encoder_init.
func (e *Engine) Init(p ports.SessionParams) (ports.CodecSession, error) {
	if err := load(e.libraryPath); err != nil {
		return nil, err
	}
	e.logger.Debug("Loaded %s, version %s", libPath, libVersion)

	codec := &shicodec{}
	ok := vlVideoEncoderInit(
		uintptr(unsafe.Pointer(codec)),
		int32(p.Codec),
		int32(p.Width),
		int32(p.Height),
		int32(p.FPS),
		int32(p.Bitrate),
		int32(p.GOP),
	)
	runtime.KeepAlive(codec)
	if !ok {
		return nil, fmt.Errorf("%w: codec %s, %dx%d", ErrInitFailed, p.Codec, p.Width, p.Height)
	}

	return &session{
		codec: codec,
		out:   new(uintptr),
	}, nil
}

type session struct {
	codec *shicodec
	// out is the uint8_t** argument. The library may replace the pointer
	// with one to its own buffer.
	out *uintptr

	once sync.Once
}

func (s *session) ID() string {
	return strconv.FormatUint(uint64(s.codec.hPlayer), 10)
}

// Encode submits one frame. When the library answers with its own buffer,
// the bytes are copied into out if they fit.
func (s *session) Encode(hint ports.FrameType, in, out []byte) (int, error) {
	if len(in) == 0 || len(out) == 0 {
		return 0, fmt.Errorf("%w: empty buffer", ErrEncodeFailed)
	}

	dst := uintptr(unsafe.Pointer(&out[0]))
	*s.out = dst

	res := vlVideoEncoderEncode(
		uintptr(unsafe.Pointer(s.codec)),
		int32(hint),
		uintptr(unsafe.Pointer(&in[0])),
		int32(len(in)),
		uintptr(unsafe.Pointer(s.out)),
	)
	runtime.KeepAlive(in)
	runtime.KeepAlive(out)
	runtime.KeepAlive(s.codec)

	n, err := encodeResult(res)
	if n == 0 || err != nil {
		return 0, err
	}
	if n > len(out) {
		return n, nil
	}

	if src := *s.out; src != dst && src != 0 {
		copy(out, unsafe.Slice((*byte)(unsafe.Pointer(src)), n))
	}
	return n, nil
}

// encodeResult interprets the value returned by vl_video_encoder_encode.
// Zero means the library kept the frame without producing output yet.
func encodeResult(n int32) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: result %d", ErrEncodeFailed, n)
	}
	return int(n), nil
}

func (s *session) Destroy() {
	s.once.Do(func() {
		vlVideoEncoderDestroy(uintptr(unsafe.Pointer(s.codec)))
		runtime.KeepAlive(s.codec)
	})
}

var (
	_ ports.CodecEngine  = (*Engine)(nil)
	_ ports.CodecSession = (*session)(nil)
)
