package ports

import "io"

// CodecKind identifies a bitstream format the engine can produce.
// Values match the engine's native codec enumeration.
type CodecKind int

const (
	CodecMPEG2 CodecKind = iota
	CodecMPEG4
	CodecAVS
	CodecH263
	CodecH264
	CodecReal8
	CodecReal9
	CodecVC1
	CodecVP6
	CodecVP6F
	CodecVP6A
	CodecMJPEG
	CodecSorenson
	CodecDivX3
	CodecRaw
	CodecJPEG
	CodecVP8
	CodecMSMPEG4V1
	CodecMSMPEG4V2
	CodecMSVideo1
	CodecWMV1
	CodecWMV2
	CodecRV10
	CodecRV20
	CodecSVQ1
	CodecSVQ3
	CodecH261
	CodecVP3
	CodecVP5
	CodecCinepak
	CodecIndeo2
	CodecIndeo3
	CodecIndeo4
	CodecIndeo5
	CodecMJPEGB
	CodecMVC
	CodecHEVC
	CodecDV
	CodecVP9
	CodecNone
)

// String returns a short name for the codec kinds this tool knows about.
func (c CodecKind) String() string {
	switch c {
	case CodecH264:
		return "h264"
	case CodecHEVC:
		return "hevc"
	case CodecMPEG4:
		return "mpeg4"
	case CodecMJPEG:
		return "mjpeg"
	case CodecVP8:
		return "vp8"
	case CodecVP9:
		return "vp9"
	case CodecNone:
		return "none"
	default:
		return "other"
	}
}

// FrameType is a hint telling the engine which picture type to produce.
type FrameType int

const (
	FrameTypeNone FrameType = iota
	FrameTypeAuto           // engine's rate control and GOP logic decide
	FrameTypeIDR
	FrameTypeI
	FrameTypeP
)

// String returns the string representation of the frame type.
func (f FrameType) String() string {
	switch f {
	case FrameTypeNone:
		return "none"
	case FrameTypeAuto:
		return "auto"
	case FrameTypeIDR:
		return "idr"
	case FrameTypeI:
		return "i"
	case FrameTypeP:
		return "p"
	default:
		return "unknown"
	}
}

// SessionParams are the values an encoder session is created with.
type SessionParams struct {
	Codec   CodecKind
	Width   int
	Height  int
	FPS     int
	Bitrate int // bits per second
	GOP     int // maximum I-frame interval in frames
}

// CodecEngine abstracts an external video encoder implementation.
type CodecEngine interface {
	// Name returns the backend name (e.g. "hicodec", "x264").
	Name() string

	// Init creates one encoder session. Failure is final; callers do not retry.
	Init(params SessionParams) (CodecSession, error)
}

// CodecSession is one live encoder handle.
type CodecSession interface {
	// ID identifies the handle in diagnostics.
	ID() string

	// Encode compresses one raw frame.
	// The encoded bytes are written into out and their count is returned.
	// A count larger than len(out) reports an overflow; in that case nothing
	// beyond len(out) has been written and the caller must not use out.
	// A count of zero means the engine produced no output for this frame.
	Encode(hint FrameType, in, out []byte) (int, error)

	// Destroy releases the engine resources. Called exactly once.
	Destroy()
}

// Drainer is implemented by sessions that buffer output internally
// and can hand it over once the input has ended.
type Drainer interface {
	// Drain signals end of input and writes every remaining byte to w.
	Drain(w io.Writer) error
}
