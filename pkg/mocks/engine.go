package mocks

import (
	"io"

	"github.com/user/framepump/pkg/ports"
)

// CodecEngine is a mock implementation of ports.CodecEngine.
type CodecEngine struct {
	NameValue string
	InitFunc  func(params ports.SessionParams) (ports.CodecSession, error)

	// Session is returned by Init when InitFunc is nil.
	Session *CodecSession

	// Recorded calls for verification
	InitCalls []ports.SessionParams
}

func (m *CodecEngine) Name() string {
	if m.NameValue == "" {
		return "mock"
	}
	return m.NameValue
}

func (m *CodecEngine) Init(params ports.SessionParams) (ports.CodecSession, error) {
	m.InitCalls = append(m.InitCalls, params)
	if m.InitFunc != nil {
		return m.InitFunc(params)
	}
	if m.Session == nil {
		m.Session = &CodecSession{}
	}
	return m.Session, nil
}

// CodecSession is a mock implementation of ports.CodecSession.
// Without EncodeFunc it echoes the input into out, bounded by len(out),
// and reports the input length.
type CodecSession struct {
	IDValue    string
	EncodeFunc func(hint ports.FrameType, in, out []byte) (int, error)

	// Recorded calls for verification
	EncodeCalls  []EncodeCall
	DestroyCalls int
}

// EncodeCall records a call to Encode.
type EncodeCall struct {
	Hint  ports.FrameType
	Input []byte
}

func (m *CodecSession) ID() string {
	if m.IDValue == "" {
		return "1"
	}
	return m.IDValue
}

func (m *CodecSession) Encode(hint ports.FrameType, in, out []byte) (int, error) {
	m.EncodeCalls = append(m.EncodeCalls, EncodeCall{
		Hint:  hint,
		Input: append([]byte(nil), in...),
	})
	if m.EncodeFunc != nil {
		return m.EncodeFunc(hint, in, out)
	}
	copy(out, in)
	return len(in), nil
}

func (m *CodecSession) Destroy() {
	m.DestroyCalls++
}

// DrainingSession is a CodecSession that also implements ports.Drainer.
type DrainingSession struct {
	CodecSession

	// Pending is written by Drain.
	Pending    []byte
	DrainErr   error
	DrainCalls int
}

func (m *DrainingSession) Drain(w io.Writer) error {
	m.DrainCalls++
	if m.DrainErr != nil {
		return m.DrainErr
	}
	if len(m.Pending) == 0 {
		return nil
	}
	_, err := w.Write(m.Pending)
	return err
}

var (
	_ ports.CodecEngine  = (*CodecEngine)(nil)
	_ ports.CodecSession = (*CodecSession)(nil)
	_ ports.Drainer      = (*DrainingSession)(nil)
)
