//go:build darwin || linux

package hicodec

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
)

var (
	libMu      sync.Mutex
	libHandle  uintptr
	libPath    string
	libVersion string
)

// libhicodec function pointers
var (
	vlGetVersion          func() string
	vlVideoEncoderInit    func(codec uintptr, codecID, width, height, frameRate, bitRate, gop int32) bool
	vlVideoEncoderEncode  func(codec uintptr, frameType int32, in uintptr, inSize int32, out uintptr) int32
	vlVideoEncoderDestroy func(codec uintptr)
)

// load opens libhicodec once. Failed attempts are not cached so that a
// later call with a different custom path can still succeed.
func load(custom string) error {
	libMu.Lock()
	defer libMu.Unlock()

	if libHandle != 0 {
		return nil
	}

	var lastErr error
	for _, path := range libPaths(custom) {
		handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			lastErr = err
			continue
		}

		purego.RegisterLibFunc(&vlGetVersion, handle, "vl_get_version")
		purego.RegisterLibFunc(&vlVideoEncoderInit, handle, "vl_video_encoder_init")
		purego.RegisterLibFunc(&vlVideoEncoderEncode, handle, "vl_video_encoder_encode")
		purego.RegisterLibFunc(&vlVideoEncoderDestroy, handle, "vl_video_encoder_destroy")

		libHandle = handle
		libPath = path
		libVersion = vlGetVersion()
		return nil
	}

	if lastErr != nil {
		return fmt.Errorf("%w: %v", ErrLibraryNotFound, lastErr)
	}
	return ErrLibraryNotFound
}

func libName() string {
	if runtime.GOOS == "darwin" {
		return "libhicodec.dylib"
	}
	return "libhicodec.so"
}

// libPaths lists the candidate library locations, highest priority first.
func libPaths(custom string) []string {
	var paths []string
	name := libName()

	if custom != "" {
		paths = append(paths, custom)
	}

	if envPath := os.Getenv("HICODEC_LIB_PATH"); envPath != "" {
		paths = append(paths, envPath)
	}

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, name),
			filepath.Join(exeDir, "..", "lib", name),
		)
	}

	// System paths (lowest priority); a bare name goes through the loader's
	// own search, including LD_LIBRARY_PATH.
	switch runtime.GOOS {
	case "darwin":
		paths = append(paths,
			name,
			"/usr/local/lib/"+name,
			"/opt/homebrew/lib/"+name,
		)
	case "linux":
		paths = append(paths,
			name,
			"/usr/local/lib/"+name,
			"/usr/lib/"+name,
		)
	}

	return paths
}
