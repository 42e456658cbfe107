// Package widgets provides the status bar widgets: clock, battery, and
// memory. Each widget renders itself to colored segments on demand; when to
// render is decided by the statusbar scheduler, not by the widget.
package widgets

import (
	"context"

	"gitlab.com/tinyland/lab/pulse-bar/pkg/components"
)

// DefaultCooldown is the cooldown of a widget that re-renders every tick.
const DefaultCooldown = 1

// Widget is one element of the status bar.
type Widget interface {
	// Name returns a unique identifier for this widget (e.g., "battery").
	Name() string

	// Cooldown returns how many scheduler ticks a successful render stays
	// valid. It must be positive.
	Cooldown() int

	// Render produces the widget's segments. It may block on an external
	// program; a failure aborts the scheduler tick it happens in.
	Render(ctx context.Context) ([]components.Segment, error)
}
