package ports

// DebugSink receives copies of the data flowing through the pump.
// It never affects what is written to the output stream.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveRawFrame saves one raw I420 input frame.
	SaveRawFrame(index int, data []byte) error

	// SaveAccessUnit saves the encoded bytes produced for one frame.
	SaveAccessUnit(index int, data []byte) error
}
