// Package smartengine selects the codec engine backend, probing the
// available ones in order of preference when asked for "auto".
package smartengine

import (
	"errors"
	"fmt"

	"github.com/user/framepump/pkg/adapters/ffmpegengine"
	"github.com/user/framepump/pkg/adapters/hicodec"
	"github.com/user/framepump/pkg/adapters/nullengine"
	"github.com/user/framepump/pkg/adapters/x264engine"
	"github.com/user/framepump/pkg/config"
	"github.com/user/framepump/pkg/ports"
)

// ErrNoEngineAvailable is returned when auto selection finds no backend.
var ErrNoEngineAvailable = errors.New("smartengine: no engine available")

// Info describes the selected backend.
type Info struct {
	// Requested is the engine name from the configuration.
	Requested string
	// Backend is the engine actually selected.
	Backend string
	// Probed lists the backends tried before Backend, in order.
	Probed []string
}

// Candidate is one backend auto selection may pick.
type Candidate struct {
	Name      string
	Available func() bool
	New       func() ports.CodecEngine
}

// Candidates returns the backends in order of preference: the vendor
// hardware encoder, then in-process libx264, then an ffmpeg subprocess.
func Candidates(cfg config.Config, logger ports.Logger) []Candidate {
	return []Candidate{
		{
			Name:      config.EngineHicodec,
			Available: func() bool { return hicodec.Available(cfg.LibraryPath) },
			New:       func() ports.CodecEngine { return hicodec.New(cfg.LibraryPath, logger) },
		},
		{
			Name:      config.EngineX264,
			Available: x264engine.Available,
			New:       func() ports.CodecEngine { return x264engine.New(logger) },
		},
		{
			Name:      config.EngineFFmpeg,
			Available: func() bool { return ffmpegengine.IsAvailable(cfg.FFmpegPath) },
			New:       func() ports.CodecEngine { return ffmpegengine.New(cfg.FFmpegPath, logger) },
		},
	}
}

// New returns the engine named by cfg.Engine. Named engines are returned
// without probing; their availability is checked when a session is opened.
func New(cfg config.Config, logger ports.Logger) (ports.CodecEngine, Info, error) {
	logger = logger.WithComponent("engine")
	return Select(cfg.Engine, Candidates(cfg, logger), logger)
}

// Select picks from candidates. It never initializes a session, so a
// failed init is never retried on another backend.
func Select(requested string, candidates []Candidate, logger ports.Logger) (ports.CodecEngine, Info, error) {
	info := Info{Requested: requested}

	switch requested {
	case config.EngineNull:
		info.Backend = nullengine.Name
		return nullengine.New(), info, nil
	case config.EngineAuto, "":
		for _, c := range candidates {
			if c.Available() {
				info.Backend = c.Name
				logger.Debug("Selected %s engine", c.Name)
				return c.New(), info, nil
			}
			logger.Debug("%s engine not available", c.Name)
			info.Probed = append(info.Probed, c.Name)
		}
		return nil, info, ErrNoEngineAvailable
	}

	for _, c := range candidates {
		if c.Name == requested {
			info.Backend = c.Name
			return c.New(), info, nil
		}
	}
	return nil, info, fmt.Errorf("%w: %q", config.ErrUnknownEngine, requested)
}
