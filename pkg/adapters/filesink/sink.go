// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"path/filepath"

	"github.com/user/framepump/pkg/ports"
)

// DefaultMaxFrames is the number of leading frames dumped per run.
const DefaultMaxFrames = 10

// Sink saves raw frames and encoded access units to files under baseDir.
// Only frames with an index below maxFrames are written.
type Sink struct {
	baseDir   string
	fs        ports.FileSystem
	maxFrames int
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, maxFrames int) *Sink {
	if maxFrames <= 0 {
		maxFrames = DefaultMaxFrames
	}
	return &Sink{
		baseDir:   baseDir,
		fs:        fs,
		maxFrames: maxFrames,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveRawFrame saves one I420 input frame as frames/raw/frame-NNNN.yuv.
func (s *Sink) SaveRawFrame(index int, data []byte) error {
	if index >= s.maxFrames {
		return nil
	}
	return s.save(filepath.Join("frames", "raw"), fmt.Sprintf("frame-%04d.yuv", index), data)
}

// SaveAccessUnit saves the encoded output of one frame as frames/encoded/au-NNNN.h264.
func (s *Sink) SaveAccessUnit(index int, data []byte) error {
	if index >= s.maxFrames {
		return nil
	}
	return s.save(filepath.Join("frames", "encoded"), fmt.Sprintf("au-%04d.h264", index), data)
}

func (s *Sink) save(sub, name string, data []byte) error {
	dir := filepath.Join(s.baseDir, sub)
	if err := s.fs.MkdirAll(dir); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	return s.fs.WriteFile(filepath.Join(dir, name), data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
