// Package main provides the CLI entry point for framepump.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/user/framepump/pkg/adapters/filesink"
	"github.com/user/framepump/pkg/adapters/logger"
	"github.com/user/framepump/pkg/adapters/nullsink"
	"github.com/user/framepump/pkg/adapters/osfilesystem"
	"github.com/user/framepump/pkg/adapters/smartengine"
	"github.com/user/framepump/pkg/config"
	"github.com/user/framepump/pkg/orchestrator"
	"github.com/user/framepump/pkg/ports"
)

var version = "dev"

const envPrefix = "FRAMEPUMP_"

func main() {
	l10n.ForceLanguage(localeLanguage(os.Getenv))

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, l10n.F("Failed to load .env: %s", err))
	}

	app := newApp()
	app.Action = run

	err := app.Run(os.Args)
	if err != nil {
		var ee *orchestrator.ExitError
		if !errors.As(err, &ee) {
			// Not logged by the orchestrator: command line errors.
			fmt.Fprintln(os.Stderr, err)
		}
	}
	os.Exit(orchestrator.ExitCode(err))
}

// newApp builds the command line definition without an action.
func newApp() *cli.App {
	// -h is --height, so help is long-only.
	cli.HelpFlag = &cli.BoolFlag{
		Name:  "help",
		Usage: l10n.T("Show help"),
	}

	return &cli.App{
		Name:            "framepump",
		Usage:           l10n.T("Encode raw I420 frames from stdin to an H.264 stream on stdout"),
		UsageText:       "framepump --width W --height H --fps F [options] < frames.yuv > out.h264",
		Version:         version,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "width",
				Aliases:  []string{"w"},
				Usage:    l10n.T("Frame width in pixels (required)"),
				EnvVars:  envVars("WIDTH"),
				Category: l10n.T("Encoder"),
			},
			&cli.IntFlag{
				Name:     "height",
				Aliases:  []string{"h"},
				Usage:    l10n.T("Frame height in pixels (required)"),
				EnvVars:  envVars("HEIGHT"),
				Category: l10n.T("Encoder"),
			},
			&cli.IntFlag{
				Name:     "fps",
				Aliases:  []string{"f"},
				Usage:    l10n.T("Frame rate (required)"),
				EnvVars:  envVars("FPS"),
				Category: l10n.T("Encoder"),
			},
			&cli.IntFlag{
				Name:     "bitrate",
				Aliases:  []string{"b"},
				Usage:    l10n.F("Target bitrate in bits per second (default: %d)", config.DefaultBitrate),
				EnvVars:  envVars("BITRATE"),
				Category: l10n.T("Encoder"),
			},
			&cli.IntFlag{
				Name:     "gop",
				Aliases:  []string{"g"},
				Usage:    l10n.F("Maximum I-frame interval in frames (default: %d)", config.DefaultGOP),
				EnvVars:  envVars("GOP"),
				Category: l10n.T("Encoder"),
			},
			&cli.StringFlag{
				Name:     "engine",
				Usage:    l10n.T("Codec engine: auto, hicodec, x264, ffmpeg or null (default: auto)"),
				EnvVars:  envVars("ENGINE"),
				Category: l10n.T("Engine"),
			},
			&cli.StringFlag{
				Name:     "library",
				Usage:    l10n.T("Path to libhicodec (falls back to HICODEC_LIB_PATH, then system paths)"),
				EnvVars:  envVars("LIBRARY"),
				Category: l10n.T("Engine"),
			},
			&cli.StringFlag{
				Name:     "ffmpeg",
				Usage:    l10n.T("Path to ffmpeg (falls back to FFMPEG_PATH, then PATH)"),
				EnvVars:  envVars("FFMPEG"),
				Category: l10n.T("Engine"),
			},
			&cli.StringFlag{
				Name:     "config",
				Usage:    l10n.T("YAML file with default option values"),
				EnvVars:  envVars("CONFIG"),
				Category: l10n.T("Configuration"),
			},
			&cli.StringFlag{
				Name:     "debug-dir",
				Usage:    l10n.T("Directory for dumping the first frames and access units"),
				EnvVars:  envVars("DEBUG_DIR"),
				Category: l10n.T("Debug"),
			},
			&cli.StringFlag{
				Name:     "summary",
				Usage:    l10n.T("Write a YAML run summary to this file"),
				EnvVars:  envVars("SUMMARY"),
				Category: l10n.T("Debug"),
			},
			&cli.StringFlag{
				Name:     "log-level",
				Usage:    l10n.T("Log level (debug, info, warn, error)"),
				EnvVars:  envVars("LOG_LEVEL"),
				Category: l10n.T("Logging"),
			},
			&cli.StringFlag{
				Name:     "lang",
				Usage:    l10n.T("Diagnostic language, en or ja (default: from the locale)"),
				EnvVars:  envVars("LANG"),
				Category: l10n.T("Logging"),
			},
			&cli.BoolFlag{
				Name:     "quiet",
				Aliases:  []string{"q"},
				Usage:    l10n.T("Suppress all log output"),
				EnvVars:  envVars("QUIET"),
				Category: l10n.T("Logging"),
			},
		},
		OnUsageError: func(c *cli.Context, err error, isSubcommand bool) error {
			return fmt.Errorf("%w: %v", config.ErrUsage, err)
		},
		// Exit codes are decided in main.
		ExitErrHandler: func(c *cli.Context, err error) {},
	}
}

func envVars(name string) []string {
	return []string{envPrefix + name}
}

// run executes one pump run.
func run(c *cli.Context) error {
	if c.Args().Present() {
		return fmt.Errorf("%w: unexpected argument %q", config.ErrUsage, c.Args().First())
	}

	fs := osfilesystem.New()

	opts, err := buildOptions(c, fs)
	if err != nil {
		return err
	}

	if c.IsSet("lang") {
		l10n.ForceLanguage(normalizeLanguage(c.String("lang")))
	}

	log := newLogger(opts, c.Bool("quiet"))

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	done := make(chan struct{})
	defer close(done)
	interrupts := &interruptHandler{
		signals: sigCh,
		stop:    func() { signal.Stop(sigCh) },
		cancel:  cancel,
		logger:  log,
		grace:   shutdownGrace,
		exit:    os.Exit,
	}
	go interrupts.watch(done)

	engines := func(cfg config.Config) (ports.CodecEngine, error) {
		engine, info, err := smartengine.New(cfg, log)
		if err != nil {
			return nil, err
		}
		log.Info("Using %s engine", info.Backend)
		return engine, nil
	}

	sinks := func(cfg config.Config) ports.DebugSink {
		if cfg.DebugDir == "" {
			return nullsink.New()
		}
		return filesink.New(cfg.DebugDir, fs, filesink.DefaultMaxFrames)
	}

	orch := orchestrator.New(engines, sinks, fs, log)
	_, err = orch.Run(ctx, opts, os.Stdin, os.Stdout)
	return err
}

// buildOptions merges the optional config file under the flags and
// environment variables.
func buildOptions(c *cli.Context, fs ports.FileSystem) (config.Options, error) {
	var base config.Options
	if path := c.String("config"); path != "" {
		fileOpts, err := config.LoadFile(fs, path)
		if err != nil {
			return config.Options{}, fmt.Errorf("%w: %v", config.ErrUsage, err)
		}
		base = fileOpts
	}

	var flags config.Options
	intFlags := []struct {
		name string
		dst  **int
	}{
		{"width", &flags.Width},
		{"height", &flags.Height},
		{"fps", &flags.FPS},
		{"bitrate", &flags.Bitrate},
		{"gop", &flags.GOP},
	}
	for _, f := range intFlags {
		if c.IsSet(f.name) {
			*f.dst = config.Int(c.Int(f.name))
		}
	}

	flags.Engine = c.String("engine")
	flags.LibraryPath = c.String("library")
	flags.FFmpegPath = c.String("ffmpeg")
	flags.DebugDir = c.String("debug-dir")
	flags.SummaryPath = c.String("summary")
	flags.LogLevel = c.String("log-level")

	return config.Merge(base, flags), nil
}

func newLogger(opts config.Options, quiet bool) ports.Logger {
	// An invalid level is reported by config.Resolve; log at info until then.
	level, _ := ports.ParseLogLevel(opts.LogLevel)
	if quiet || level == ports.LevelQuiet {
		return logger.NewNoop()
	}
	return logger.NewConsole(level)
}
