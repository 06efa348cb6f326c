package filesink

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/user/framepump/pkg/mocks"
)

// testBaseDir is a platform-independent base directory for tests
var testBaseDir = filepath.Join("debug")

func TestSink_Enabled(t *testing.T) {
	sink := New(testBaseDir, mocks.NewFileSystem(), 0)

	if !sink.Enabled() {
		t.Error("expected Enabled to return true")
	}
}

func TestSink_SaveRawFrame(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, 0)

	data := []byte{0x10, 0x20, 0x30, 0x40, 0x80, 0x80}
	if err := sink.SaveRawFrame(3, data); err != nil {
		t.Fatalf("SaveRawFrame failed: %v", err)
	}

	expectedDir := filepath.Join(testBaseDir, "frames", "raw")
	if !fs.HasDir(expectedDir) {
		t.Errorf("expected directory %s to be created", expectedDir)
	}

	expectedPath := filepath.Join(expectedDir, "frame-0003.yuv")
	saved, ok := fs.GetFile(expectedPath)
	if !ok {
		t.Fatalf("expected file to be saved at %s", expectedPath)
	}
	if string(saved) != string(data) {
		t.Errorf("expected %v, got %v", data, saved)
	}
}

func TestSink_SaveAccessUnit(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, 0)

	data := []byte{0, 0, 0, 1, 0x65, 0x88}
	if err := sink.SaveAccessUnit(0, data); err != nil {
		t.Fatalf("SaveAccessUnit failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "frames", "encoded", "au-0000.h264")
	saved, ok := fs.GetFile(expectedPath)
	if !ok {
		t.Fatalf("expected file to be saved at %s", expectedPath)
	}
	if string(saved) != string(data) {
		t.Errorf("expected %v, got %v", data, saved)
	}
}

func TestSink_FrameLimit(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, 2)

	for i := 0; i < 5; i++ {
		if err := sink.SaveRawFrame(i, []byte{byte(i)}); err != nil {
			t.Fatalf("SaveRawFrame(%d) failed: %v", i, err)
		}
		if err := sink.SaveAccessUnit(i, []byte{byte(i)}); err != nil {
			t.Fatalf("SaveAccessUnit(%d) failed: %v", i, err)
		}
	}

	if fs.FileCount() != 4 {
		t.Errorf("expected 4 files (2 raw + 2 encoded), got %d", fs.FileCount())
	}
}

func TestSink_MkdirError(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.MkdirAllFunc = func(path string) error {
		return errors.New("read-only file system")
	}
	sink := New(testBaseDir, fs, 0)

	if err := sink.SaveRawFrame(0, []byte{1}); err == nil {
		t.Error("expected error when directory cannot be created")
	}
}
