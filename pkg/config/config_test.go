package config

import (
	"errors"
	"testing"

	"github.com/user/framepump/pkg/mocks"
	"github.com/user/framepump/pkg/ports"
)

func TestResolve_Defaults(t *testing.T) {
	cfg, err := Resolve(Options{
		Width:  Int(1920),
		Height: Int(1080),
		FPS:    Int(30),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Bitrate != DefaultBitrate {
		t.Errorf("expected bitrate %d, got %d", DefaultBitrate, cfg.Bitrate)
	}
	if cfg.GOP != DefaultGOP {
		t.Errorf("expected gop %d, got %d", DefaultGOP, cfg.GOP)
	}
	if cfg.Engine != EngineAuto {
		t.Errorf("expected engine %q, got %q", EngineAuto, cfg.Engine)
	}
	if cfg.LogLevel != ports.LevelInfo {
		t.Errorf("expected log level info, got %s", cfg.LogLevel)
	}
}

func TestResolve_RequiredMissing(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"no width", Options{Height: Int(2), FPS: Int(30)}},
		{"no height", Options{Width: Int(2), FPS: Int(30)}},
		{"no fps", Options{Width: Int(2), Height: Int(2)}},
		{"nothing", Options{Bitrate: Int(1000), GOP: Int(5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.opts)
			if !errors.Is(err, ErrRequiredMissing) {
				t.Errorf("expected ErrRequiredMissing, got %v", err)
			}
		})
	}
}

func TestResolve_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"zero width", Options{Width: Int(0), Height: Int(2), FPS: Int(30)}},
		{"negative height", Options{Width: Int(2), Height: Int(-1), FPS: Int(30)}},
		{"zero fps", Options{Width: Int(2), Height: Int(2), FPS: Int(0)}},
		{"zero bitrate", Options{Width: Int(2), Height: Int(2), FPS: Int(30), Bitrate: Int(0)}},
		{"negative gop", Options{Width: Int(2), Height: Int(2), FPS: Int(30), GOP: Int(-10)}},
		{"bad log level", Options{Width: Int(2), Height: Int(2), FPS: Int(30), LogLevel: "verbose"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.opts)
			if !errors.Is(err, ErrInvalidValue) {
				t.Errorf("expected ErrInvalidValue, got %v", err)
			}
		})
	}
}

func TestResolve_UnknownEngine(t *testing.T) {
	_, err := Resolve(Options{Width: Int(2), Height: Int(2), FPS: Int(30), Engine: "vaapi"})
	if !errors.Is(err, ErrUnknownEngine) {
		t.Errorf("expected ErrUnknownEngine, got %v", err)
	}
}

func TestResolve_FrameTooLarge(t *testing.T) {
	_, err := Resolve(Options{Width: Int(65536), Height: Int(65536), FPS: Int(30)})
	if !errors.Is(err, ErrFrameTooLarge) {
		t.Errorf("expected ErrFrameTooLarge, got %v", err)
	}
}

func TestConfig_BufferSizes(t *testing.T) {
	tests := []struct {
		width, height int
		frameSize     int
		capacity      int
	}{
		{2, 2, 6, 16},
		{320, 240, 115200, 307200},
		{1920, 1080, 3110400, 8294400},
		{7680, 4320, 49766400, 132710400},
	}

	for _, tt := range tests {
		cfg, err := Resolve(Options{Width: Int(tt.width), Height: Int(tt.height), FPS: Int(30)})
		if err != nil {
			t.Fatalf("%dx%d: unexpected error: %v", tt.width, tt.height, err)
		}
		if cfg.FrameSize() != tt.frameSize {
			t.Errorf("%dx%d: expected frame size %d, got %d", tt.width, tt.height, tt.frameSize, cfg.FrameSize())
		}
		if cfg.OutputCapacity() != tt.capacity {
			t.Errorf("%dx%d: expected capacity %d, got %d", tt.width, tt.height, tt.capacity, cfg.OutputCapacity())
		}
	}
}

func TestConfig_SessionParams(t *testing.T) {
	cfg, err := Resolve(Options{Width: Int(640), Height: Int(480), FPS: Int(25), Bitrate: Int(800000), GOP: Int(50)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := cfg.SessionParams(ports.CodecH264)
	want := ports.SessionParams{Codec: ports.CodecH264, Width: 640, Height: 480, FPS: 25, Bitrate: 800000, GOP: 50}
	if p != want {
		t.Errorf("expected %+v, got %+v", want, p)
	}

	if got := cfg.String(); got != "width=640, height=480, frame_rate=25, bit_rate=800000, gop=50" {
		t.Errorf("unexpected summary line: %s", got)
	}
}

func TestMerge_OverrideWins(t *testing.T) {
	base := Options{Width: Int(320), Height: Int(240), Bitrate: Int(1000), Engine: EngineFFmpeg}
	override := Options{Width: Int(640), FPS: Int(30), LogLevel: "debug"}

	merged := Merge(base, override)

	if *merged.Width != 640 {
		t.Errorf("expected width 640, got %d", *merged.Width)
	}
	if *merged.Height != 240 {
		t.Errorf("expected height 240 from base, got %d", *merged.Height)
	}
	if *merged.FPS != 30 {
		t.Errorf("expected fps 30, got %d", *merged.FPS)
	}
	if *merged.Bitrate != 1000 {
		t.Errorf("expected bitrate 1000 from base, got %d", *merged.Bitrate)
	}
	if merged.GOP != nil {
		t.Errorf("expected gop unset, got %d", *merged.GOP)
	}
	if merged.Engine != EngineFFmpeg {
		t.Errorf("expected engine from base, got %q", merged.Engine)
	}
	if merged.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %q", merged.LogLevel)
	}
}

func TestLoadFile(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFile("framepump.yaml", []byte(`
width: 1280
height: 720
fps: 60
gop: 120
engine: x264
log_level: warn
debug_dir: ./dump
`))

	opts, err := LoadFile(fs, "framepump.yaml")
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if opts.Width == nil || *opts.Width != 1280 {
		t.Errorf("expected width 1280, got %v", opts.Width)
	}
	if opts.FPS == nil || *opts.FPS != 60 {
		t.Errorf("expected fps 60, got %v", opts.FPS)
	}
	if opts.Bitrate != nil {
		t.Errorf("expected bitrate unset, got %d", *opts.Bitrate)
	}
	if opts.Engine != EngineX264 {
		t.Errorf("expected engine x264, got %q", opts.Engine)
	}
	if opts.DebugDir != "./dump" {
		t.Errorf("expected debug dir ./dump, got %q", opts.DebugDir)
	}

	cfg, err := Resolve(opts)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.LogLevel != ports.LevelWarn {
		t.Errorf("expected log level warn, got %s", cfg.LogLevel)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	fs := mocks.NewFileSystem()

	if _, err := LoadFile(fs, "missing.yaml"); err == nil {
		t.Error("expected error for missing file")
	}

	fs.WriteFile("bad.yaml", []byte("width: [1, 2"))
	if _, err := LoadFile(fs, "bad.yaml"); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
