package widgets

import (
	"context"
	"time"

	"gitlab.com/tinyland/lab/pulse-bar/pkg/components"
)

// clockLayout renders e.g. "Oct 6    09:04:05": abbreviated month, unpadded
// day, four spaces, zero-padded 24h time.
const clockLayout = "Jan 2    15:04:05"

// Clock shows the local date and time. It re-renders every tick.
type Clock struct {
	now func() time.Time
}

// ClockOption configures a Clock.
type ClockOption func(*Clock)

// WithNow sets the time source used by Render.
func WithNow(now func() time.Time) ClockOption {
	return func(c *Clock) { c.now = now }
}

// NewClock creates a Clock reading time.Now.
func NewClock(opts ...ClockOption) *Clock {
	c := &Clock{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns "clock".
func (c *Clock) Name() string { return "clock" }

// Cooldown returns DefaultCooldown.
func (c *Clock) Cooldown() int { return DefaultCooldown }

// Render returns a single plain segment with the formatted local time.
func (c *Clock) Render(ctx context.Context) ([]components.Segment, error) {
	return []components.Segment{
		components.Plain(c.now().Local().Format(clockLayout)),
	}, nil
}
