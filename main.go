// pulse-bar is a status line generator for i3bar.
//
// It polls a small set of widgets (clock, battery, memory) on a fixed
// interval and streams the result to stdout using the i3bar JSON protocol.
// Slow widgets are throttled with per-widget cooldowns so the battery and
// memory commands are not run on every update.
//
// Usage:
//
//	pulse-bar [flags]
//
// Flags:
//
//	-config string  Path to configuration file (default: ~/.config/pulse-bar/config.toml)
//	-ticks int      Stop after this many updates (0 = run forever)
//	-preview        Show the bar in the terminal instead of emitting JSON
//	-verbose        Enable verbose logging
//	-version        Print version and exit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"gitlab.com/tinyland/lab/pulse-bar/pkg/collectors"
	"gitlab.com/tinyland/lab/pulse-bar/pkg/collectors/sysmetrics"
	"gitlab.com/tinyland/lab/pulse-bar/pkg/config"
	"gitlab.com/tinyland/lab/pulse-bar/pkg/i3bar"
	"gitlab.com/tinyland/lab/pulse-bar/pkg/preview"
	"gitlab.com/tinyland/lab/pulse-bar/pkg/statusbar"
	"gitlab.com/tinyland/lab/pulse-bar/pkg/widgets"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		ticks       = flag.Int("ticks", 0, "Stop after this many updates (0 = run forever)")
		runPreview  = flag.Bool("preview", false, "Show the bar in the terminal instead of emitting JSON")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("pulse-bar %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}
	if *ticks < 0 {
		fmt.Fprintf(os.Stderr, "invalid -ticks %d: must not be negative\n", *ticks)
		os.Exit(1)
	}

	// stdout belongs to i3bar, so logs go to stderr only.
	logLevel := cfg.Level()
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ws, err := buildWidgets(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	bar := statusbar.New(ws, statusbar.WithLogger(logger))
	logger.Info("starting pulse-bar",
		"version", version,
		"widgets", cfg.Widgets,
		"interval", cfg.Interval.Duration,
	)

	if *runPreview {
		if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			fmt.Fprintln(os.Stderr, "-preview requires a terminal on stdout")
			os.Exit(1)
		}
		if err := preview.Run(ctx, bar, cfg.Interval.Duration); err != nil && ctx.Err() == nil {
			fmt.Fprintf(os.Stderr, "preview error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if isatty.IsTerminal(os.Stdout.Fd()) {
		logger.Debug("stdout is a terminal; output is meant for i3bar (try -preview)")
	}

	streamer := i3bar.NewStreamer(bar, i3bar.StreamConfig{
		Interval: cfg.Interval.Duration,
		Ticks:    *ticks,
		Logger:   logger,
	})
	if err := streamer.Run(ctx, os.Stdout); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("received shutdown signal")
			return
		}
		logger.Error("stream stopped", "error", err)
		os.Exit(1)
	}
}

// buildWidgets registers every known widget with its configured backend and
// returns the ones selected by cfg.Widgets, in order.
func buildWidgets(cfg *config.Config) ([]widgets.Widget, error) {
	runner := collectors.ExecRunner{}

	reg := widgets.NewRegistry()
	for _, w := range []widgets.Widget{
		widgets.NewClock(),
		widgets.NewBattery(runner, widgets.WithBatteryCommand(cfg.Battery.Command)),
		widgets.NewMemory(newMemoryReader(cfg, runner)),
	} {
		if err := reg.Register(w); err != nil {
			return nil, err
		}
	}
	return reg.Select(cfg.Widgets)
}

// newMemoryReader picks the memory backend named by cfg.Memory.Source.
func newMemoryReader(cfg *config.Config, runner collectors.Runner) widgets.MemoryReader {
	if cfg.Memory.Source == config.MemorySourceGopsutil {
		return sysmetrics.New()
	}
	return widgets.NewFreeReader(runner, cfg.Memory.Command)
}
