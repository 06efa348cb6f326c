// Package orchestrator drives one framepump run from configuration to exit.
package orchestrator

import (
	"context"
	"fmt"
	"io"

	"github.com/user/framepump/pkg/config"
	"github.com/user/framepump/pkg/ports"
	"github.com/user/framepump/pkg/pump"
	"github.com/user/framepump/pkg/summarizer"
)

// State is the lifecycle state of a run.
type State int

const (
	StateUnconfigured State = iota
	StateConfigured
	StateEncoderReady
	StateLooping
	StateDraining
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateUnconfigured:
		return "unconfigured"
	case StateConfigured:
		return "configured"
	case StateEncoderReady:
		return "encoder-ready"
	case StateLooping:
		return "looping"
	case StateDraining:
		return "draining"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// EngineFactory builds the codec engine selected by cfg.
type EngineFactory func(cfg config.Config) (ports.CodecEngine, error)

// SinkFactory builds the debug sink selected by cfg.
type SinkFactory func(cfg config.Config) ports.DebugSink

// RunResult contains what is known about a run once it has terminated.
type RunResult struct {
	Config config.Config
	Engine string
	Handle string
	Stats  pump.Stats
	States []State
}

// Orchestrator owns the encoder session of a run.
type Orchestrator struct {
	engines EngineFactory
	sinks   SinkFactory
	fs      ports.FileSystem
	logger  ports.Logger

	state  State
	states []State
}

// New creates a new Orchestrator.
func New(engines EngineFactory, sinks SinkFactory, fs ports.FileSystem, logger ports.Logger) *Orchestrator {
	return &Orchestrator{
		engines: engines,
		sinks:   sinks,
		fs:      fs,
		logger:  logger,
	}
}

// Run resolves opts, opens one encoder session and pumps in to out until
// the input ends. The returned error, if any, is an *ExitError.
func (o *Orchestrator) Run(ctx context.Context, opts config.Options, in io.Reader, out io.Writer) (RunResult, error) {
	o.state = StateUnconfigured
	o.states = []State{StateUnconfigured}

	var result RunResult
	err := o.run(ctx, opts, in, out, &result)
	o.transition(StateTerminated)
	result.States = append([]State(nil), o.states...)

	if err != nil {
		o.logger.Error("%s", err)
	}

	if result.Config.SummaryPath != "" {
		o.writeSummary(result, err)
	}

	return result, exitError(err)
}

func (o *Orchestrator) run(ctx context.Context, opts config.Options, in io.Reader, out io.Writer, result *RunResult) error {
	cfg, err := config.Resolve(opts)
	if err != nil {
		return err
	}
	result.Config = cfg
	o.transition(StateConfigured)

	engine, err := o.engines(cfg)
	if err != nil {
		return fmt.Errorf("%w: %v", pump.ErrInitFailed, err)
	}

	session, err := pump.Open(engine, cfg.SessionParams(ports.CodecH264), o.logger)
	if err != nil {
		return err
	}
	defer func() {
		o.transition(StateDraining)
		session.Close()
	}()
	result.Engine = session.Engine()
	result.Handle = session.ID()
	o.transition(StateEncoderReady)

	p := pump.New(cfg, session, in, out, o.sinks(cfg), o.logger)
	o.transition(StateLooping)

	stats, err := p.Run(ctx)
	result.Stats = stats
	if err != nil {
		return err
	}

	o.logger.Info("Encoded %d frames, %d bytes in %s", stats.Frames, stats.BytesOut+stats.DrainedBytes, stats.Elapsed)
	return nil
}

func (o *Orchestrator) transition(to State) {
	o.logger.Debug("State %s -> %s", o.state, to)
	o.state = to
	o.states = append(o.states, to)
}

func (o *Orchestrator) writeSummary(result RunResult, runErr error) {
	summary := summarizer.NewBuilder().
		WithConfig(result.Config).
		WithSession(result.Engine, result.Handle).
		WithStats(result.Stats).
		WithOutcome(runErr, ExitCode(runErr)).
		Build()

	w := summarizer.NewWriter(summarizer.NewYAMLFormatter(), o.fs)
	if err := w.Write(result.Config.SummaryPath, summary); err != nil {
		o.logger.Warn("Failed to write summary: %s", err)
		return
	}
	o.logger.Debug("Summary saved to %s", result.Config.SummaryPath)
}
