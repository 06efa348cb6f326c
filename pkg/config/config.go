// Package config resolves the pump configuration from flags, environment,
// an optional YAML file and built-in defaults.
package config

import (
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/user/framepump/pkg/ports"
)

const (
	// DefaultBitrate is the target bitrate in bits per second.
	DefaultBitrate = 5000000
	// DefaultGOP is the maximum I-frame interval in frames.
	DefaultGOP = 10
)

// Engine backend names.
const (
	EngineAuto    = "auto"
	EngineHicodec = "hicodec"
	EngineX264    = "x264"
	EngineFFmpeg  = "ffmpeg"
	EngineNull    = "null"
)

// Engines lists every accepted --engine value.
var Engines = []string{EngineAuto, EngineHicodec, EngineX264, EngineFFmpeg, EngineNull}

// Options is the unresolved configuration. A nil numeric field was not
// supplied by the source it came from.
type Options struct {
	Width   *int `yaml:"width"`
	Height  *int `yaml:"height"`
	FPS     *int `yaml:"fps"`
	Bitrate *int `yaml:"bitrate"`
	GOP     *int `yaml:"gop"`

	Engine      string `yaml:"engine"`
	LogLevel    string `yaml:"log_level"`
	LibraryPath string `yaml:"library"`
	FFmpegPath  string `yaml:"ffmpeg"`
	DebugDir    string `yaml:"debug_dir"`
	SummaryPath string `yaml:"summary"`
}

// Config is the resolved, validated configuration.
type Config struct {
	Width   int
	Height  int
	FPS     int
	Bitrate int
	GOP     int

	Engine      string
	LogLevel    ports.LogLevel
	LibraryPath string
	FFmpegPath  string
	DebugDir    string
	SummaryPath string
}

// FrameSize returns the size of one I420 frame: a full-resolution luma plane
// followed by two quarter-resolution chroma planes.
func (c Config) FrameSize() int {
	luma := c.Width * c.Height
	return luma + luma/2
}

// OutputCapacity returns the size of the buffer lent to the engine.
func (c Config) OutputCapacity() int {
	return c.Width * c.Height * 4
}

// SessionParams returns the encoder session parameters for codec.
func (c Config) SessionParams(codec ports.CodecKind) ports.SessionParams {
	return ports.SessionParams{
		Codec:   codec,
		Width:   c.Width,
		Height:  c.Height,
		FPS:     c.FPS,
		Bitrate: c.Bitrate,
		GOP:     c.GOP,
	}
}

// String formats the encoder-facing part of the configuration.
func (c Config) String() string {
	return fmt.Sprintf("width=%d, height=%d, frame_rate=%d, bit_rate=%d, gop=%d",
		c.Width, c.Height, c.FPS, c.Bitrate, c.GOP)
}

// LoadFile reads Options from a YAML file.
func LoadFile(fs ports.FileSystem, path string) (Options, error) {
	var opts Options

	data, err := fs.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse config %s: %w", path, err)
	}

	return opts, nil
}

// Merge returns base with every field that override supplies replaced.
func Merge(base, override Options) Options {
	out := base
	if override.Width != nil {
		out.Width = override.Width
	}
	if override.Height != nil {
		out.Height = override.Height
	}
	if override.FPS != nil {
		out.FPS = override.FPS
	}
	if override.Bitrate != nil {
		out.Bitrate = override.Bitrate
	}
	if override.GOP != nil {
		out.GOP = override.GOP
	}
	if override.Engine != "" {
		out.Engine = override.Engine
	}
	if override.LogLevel != "" {
		out.LogLevel = override.LogLevel
	}
	if override.LibraryPath != "" {
		out.LibraryPath = override.LibraryPath
	}
	if override.FFmpegPath != "" {
		out.FFmpegPath = override.FFmpegPath
	}
	if override.DebugDir != "" {
		out.DebugDir = override.DebugDir
	}
	if override.SummaryPath != "" {
		out.SummaryPath = override.SummaryPath
	}
	return out
}

// Resolve applies defaults and validates opts.
func Resolve(opts Options) (Config, error) {
	var missing []string
	if opts.Width == nil {
		missing = append(missing, "width")
	}
	if opts.Height == nil {
		missing = append(missing, "height")
	}
	if opts.FPS == nil {
		missing = append(missing, "fps")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", ErrRequiredMissing, strings.Join(missing, ", "))
	}

	cfg := Config{
		Width:       *opts.Width,
		Height:      *opts.Height,
		FPS:         *opts.FPS,
		Bitrate:     valueOr(opts.Bitrate, DefaultBitrate),
		GOP:         valueOr(opts.GOP, DefaultGOP),
		Engine:      opts.Engine,
		LibraryPath: opts.LibraryPath,
		FFmpegPath:  opts.FFmpegPath,
		DebugDir:    opts.DebugDir,
		SummaryPath: opts.SummaryPath,
	}

	for _, p := range []struct {
		name  string
		value int
	}{
		{"width", cfg.Width},
		{"height", cfg.Height},
		{"fps", cfg.FPS},
		{"bitrate", cfg.Bitrate},
		{"gop", cfg.GOP},
	} {
		if p.value <= 0 {
			return Config{}, fmt.Errorf("%w: %s must be > 0, got %d", ErrInvalidValue, p.name, p.value)
		}
	}

	// Checked in int64 so that the product itself cannot wrap on 32-bit platforms.
	if int64(cfg.Width)*int64(cfg.Height)*4 > math.MaxInt32 {
		return Config{}, fmt.Errorf("%w: %dx%d", ErrFrameTooLarge, cfg.Width, cfg.Height)
	}

	if cfg.Engine == "" {
		cfg.Engine = EngineAuto
	}
	if !isEngine(cfg.Engine) {
		return Config{}, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownEngine, cfg.Engine, strings.Join(Engines, ", "))
	}

	level, err := ports.ParseLogLevel(opts.LogLevel)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	cfg.LogLevel = level

	return cfg, nil
}

// Int returns a pointer to v, for building Options literals.
func Int(v int) *int {
	return &v
}

func valueOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func isEngine(name string) bool {
	for _, e := range Engines {
		if e == name {
			return true
		}
	}
	return false
}
