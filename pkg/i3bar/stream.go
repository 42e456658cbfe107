package i3bar

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"time"

	"gitlab.com/tinyland/lab/pulse-bar/pkg/components"
)

// DefaultInterval is the update period used when none is configured.
const DefaultInterval = 2 * time.Second

// Ticker produces the bar contents for one update. *statusbar.StatusBar
// satisfies it.
type Ticker interface {
	Tick(ctx context.Context) ([]components.Segment, error)
}

// StreamConfig holds the settings for a Streamer.
type StreamConfig struct {
	// Interval between updates (default 2s).
	Interval time.Duration

	// Ticks stops the stream after this many updates. Zero streams until
	// the context is cancelled.
	Ticks int

	// Logger receives failed-tick warnings (default slog.Default()).
	Logger *slog.Logger
}

// Streamer drives a Ticker at a fixed period and writes each update to an
// output stream.
type Streamer struct {
	bar Ticker
	cfg StreamConfig
}

// NewStreamer creates a Streamer over bar. Zero-value fields in cfg are
// replaced with defaults.
func NewStreamer(bar Ticker, cfg StreamConfig) *Streamer {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Streamer{bar: bar, cfg: cfg}
}

// Run writes the header and then one update per interval. A failed tick is
// shown as a single red error block and the stream carries on; only write
// errors and context cancellation end it. With Ticks set, Run returns nil
// after that many updates without waiting out the last interval.
func (s *Streamer) Run(ctx context.Context, out io.Writer) error {
	w := bufio.NewWriter(out)
	if err := WriteHeader(w); err != nil {
		return err
	}

	for n := 1; ; n++ {
		segs, err := s.bar.Tick(ctx)
		if err != nil {
			s.cfg.Logger.Warn("status bar tick failed", "tick", n, "error", err)
			segs = ErrorSegments(err)
		}
		if err := WriteTick(w, segs); err != nil {
			return err
		}

		if s.cfg.Ticks > 0 && n >= s.cfg.Ticks {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.cfg.Interval):
		}
	}
}
