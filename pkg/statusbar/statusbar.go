// Package statusbar schedules widget renders. Each widget gets a countdown
// timer and a cache of its last successful render; a tick re-renders only
// the widgets whose timer has run out and assembles the bar from the caches.
package statusbar

import (
	"context"
	"log/slog"

	"gitlab.com/tinyland/lab/pulse-bar/pkg/components"
	"gitlab.com/tinyland/lab/pulse-bar/pkg/widgets"
)

// spacerText separates widgets (and trails the last one).
const spacerText = "    "

// StatusBar owns the widget list and the per-widget timer and cache. It is
// driven from a single goroutine and does no locking.
type StatusBar struct {
	widgets []widgets.Widget
	timers  []int
	cache   [][]components.Segment
	logger  *slog.Logger
}

// RenderError reports which widget failed a tick. Its message is the
// widget's own error text, which is what the bar displays.
type RenderError struct {
	Widget string
	Err    error
}

func (e *RenderError) Error() string { return e.Err.Error() }

func (e *RenderError) Unwrap() error { return e.Err }

// Option configures a StatusBar.
type Option func(*StatusBar)

// WithLogger sets the logger used for render diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(sb *StatusBar) {
		if l != nil {
			sb.logger = l
		}
	}
}

// New creates a StatusBar over ws. All timers start at zero so every widget
// renders on the first tick.
func New(ws []widgets.Widget, opts ...Option) *StatusBar {
	sb := &StatusBar{
		widgets: append([]widgets.Widget(nil), ws...),
		timers:  make([]int, len(ws)),
		cache:   make([][]components.Segment, len(ws)),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(sb)
	}
	return sb
}

// Step advances every widget by one tick. A widget whose timer reads zero is
// rendered and its timer reset to its cooldown; then every timer is
// decremented, including one that was just reset, so a widget with cooldown
// C renders once every C ticks.
//
// If any render fails, Step returns the error and leaves all timers and
// caches exactly as they were before the call.
func (sb *StatusBar) Step(ctx context.Context) error {
	timers := append([]int(nil), sb.timers...)
	rendered := make(map[int][]components.Segment)

	for i, w := range sb.widgets {
		if timers[i] == 0 {
			segs, err := w.Render(ctx)
			if err != nil {
				sb.logger.Debug("widget render failed", "widget", w.Name(), "error", err)
				return &RenderError{Widget: w.Name(), Err: err}
			}
			rendered[i] = segs
			timers[i] = w.Cooldown()
			sb.logger.Debug("widget rendered", "widget", w.Name(), "segments", len(segs), "cooldown", timers[i])
		}
		timers[i]--
	}

	for i, segs := range rendered {
		sb.cache[i] = segs
	}
	sb.timers = timers
	return nil
}

// Blit returns the displayed sequence: each widget's cached segments
// followed by a spacer.
func (sb *StatusBar) Blit() []components.Segment {
	n := len(sb.cache)
	for _, c := range sb.cache {
		n += len(c)
	}
	out := make([]components.Segment, 0, n)
	spacer := components.Plain(spacerText)
	for _, c := range sb.cache {
		out = append(out, c...)
		out = append(out, spacer)
	}
	return out
}

// Tick runs Step and, if it succeeds, returns Blit.
func (sb *StatusBar) Tick(ctx context.Context) ([]components.Segment, error) {
	if err := sb.Step(ctx); err != nil {
		return nil, err
	}
	return sb.Blit(), nil
}

// Len returns the number of widgets.
func (sb *StatusBar) Len() int {
	return len(sb.widgets)
}

// Timers returns a copy of the per-widget timers.
func (sb *StatusBar) Timers() []int {
	return append([]int(nil), sb.timers...)
}

// Cache returns a copy of the cached render of widget i.
func (sb *StatusBar) Cache(i int) []components.Segment {
	return append([]components.Segment(nil), sb.cache[i]...)
}
