// Package summarizer builds and writes the run summary.
package summarizer

import (
	"time"

	"github.com/user/framepump/pkg/config"
	"github.com/user/framepump/pkg/pump"
)

// Summary contains everything known about one run after teardown.
type Summary struct {
	GeneratedAt time.Time `yaml:"generated_at"`

	// Outcome is "ok" or the error that ended the run.
	Outcome  string `yaml:"outcome"`
	ExitCode int    `yaml:"exit_code"`

	Settings Settings   `yaml:"settings"`
	Engine   EngineInfo `yaml:"engine"`
	Stats    pump.Stats `yaml:"stats"`
}

// Settings is the resolved encoder configuration.
type Settings struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	FPS       int `yaml:"fps"`
	Bitrate   int `yaml:"bitrate"`
	GOP       int `yaml:"gop"`
	FrameSize int `yaml:"frame_size"`
	Capacity  int `yaml:"output_capacity"`
}

// EngineInfo identifies the engine and session that did the encoding.
type EngineInfo struct {
	Requested string `yaml:"requested"`
	Name      string `yaml:"name,omitempty"`
	Handle    string `yaml:"handle,omitempty"`
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
		Outcome:     "ok",
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithConfig sets the settings and the requested engine from cfg.
func (b *Builder) WithConfig(cfg config.Config) *Builder {
	b.summary.Settings = Settings{
		Width:     cfg.Width,
		Height:    cfg.Height,
		FPS:       cfg.FPS,
		Bitrate:   cfg.Bitrate,
		GOP:       cfg.GOP,
		FrameSize: cfg.FrameSize(),
		Capacity:  cfg.OutputCapacity(),
	}
	b.summary.Engine.Requested = cfg.Engine
	return b
}

// WithSession sets the engine that was actually used.
func (b *Builder) WithSession(engine, handle string) *Builder {
	b.summary.Engine.Name = engine
	b.summary.Engine.Handle = handle
	return b
}

// WithStats sets the pump statistics.
func (b *Builder) WithStats(stats pump.Stats) *Builder {
	b.summary.Stats = stats
	return b
}

// WithOutcome records how the run ended.
func (b *Builder) WithOutcome(err error, exitCode int) *Builder {
	b.summary.ExitCode = exitCode
	if err != nil {
		b.summary.Outcome = err.Error()
	}
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
