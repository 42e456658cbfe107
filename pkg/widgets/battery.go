package widgets

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"gitlab.com/tinyland/lab/pulse-bar/pkg/collectors"
	"gitlab.com/tinyland/lab/pulse-bar/pkg/components"
)

const (
	// DefaultBatteryCommand is the program queried for battery state.
	DefaultBatteryCommand = "acpi"

	batteryCooldown = 6
	batteryBarWidth = 8
)

// batteryRegex matches acpi(1) lines such as
//
//	Battery 0: Discharging, 42%, 01:30:00 remaining
//	Battery 0: Charging, 80%, 00:40:12 until charged
//	Battery 0: Unknown, 97%, discharging at zero rate
//	Battery 0: Full, 100%
//
// Groups: status word, percentage, then hours, minutes, seconds when a time
// estimate is present. Without an estimate the line must end after the
// percentage or read "discharging at zero rate"; anything else, such as
// "rate information unavailable", does not match.
var batteryRegex = regexp.MustCompile(`(?m)Battery \d+: (\S+), (\d+)%(?:, (?:(\d+):(\d+):(\d+)|discharging at zero rate)|[ \t]*$)`)

type batteryState int

const (
	batteryDischarging batteryState = iota
	batteryCharging
	batteryFull
)

// batteryTier selects the color scheme for a reading.
type batteryTier int

const (
	tierCritical batteryTier = iota
	tierLow
	tierHigh
	tierFullish
	tierCharging
	tierFullCharged
)

// batteryColors holds (bright, dark) pairs per tier. Bars fade from dark at
// the left edge to bright; the percentage text uses bright.
var batteryColors = [...]struct{ bright, dark string }{
	tierCritical:    {"#f42c00", "#a81e00"},
	tierLow:         {"#f4db00", "#948500"},
	tierHigh:        {"#51e800", "#2d8200"},
	tierFullish:     {"#00b2f4", "#004290"},
	tierCharging:    {"#0062d7", "#004290"},
	tierFullCharged: {"#ffffff", "#bbbbbb"},
}

// batteryReading is one parsed acpi line.
type batteryReading struct {
	percent int
	state   batteryState
	hours   int
	minutes int
}

// Battery shows charge level, charging state, and time remaining.
type Battery struct {
	runner  collectors.Runner
	command string
	bars    []components.FillBar
}

// BatteryOption configures a Battery.
type BatteryOption func(*Battery)

// WithBatteryCommand overrides the program queried for battery state.
func WithBatteryCommand(name string) BatteryOption {
	return func(b *Battery) {
		if name != "" {
			b.command = name
		}
	}
}

// NewBattery creates a Battery widget that reads acpi output through runner.
func NewBattery(runner collectors.Runner, opts ...BatteryOption) *Battery {
	b := &Battery{
		runner:  runner,
		command: DefaultBatteryCommand,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.bars = make([]components.FillBar, len(batteryColors))
	for i, c := range batteryColors {
		b.bars[i] = components.MustGradient(batteryBarWidth, c.dark, c.bright)
	}
	return b
}

// Name returns "battery".
func (b *Battery) Name() string { return "battery" }

// Cooldown returns 6 ticks.
func (b *Battery) Cooldown() int { return batteryCooldown }

// Render queries the battery and draws "bat: [####    ]  42%  1h30".
func (b *Battery) Render(ctx context.Context) ([]components.Segment, error) {
	out, err := b.runner.Run(ctx, b.command)
	if err != nil {
		return nil, err
	}
	r, err := parseBattery(out)
	if err != nil {
		return nil, err
	}

	tier := batteryTierFor(r)
	glyph := '>'
	if r.state == batteryDischarging {
		glyph = '#'
	}

	var status string
	switch r.state {
	case batteryFull:
		status = "full."
	default:
		status = fmt.Sprintf(" %dh%02d", r.hours, r.minutes)
	}

	segs := []components.Segment{components.Plain("bat: [")}
	segs = append(segs, b.bars[tier].Render(glyph, r.percent, 100)...)
	segs = append(segs,
		components.Plain("]  "),
		components.NewSegment(fmt.Sprintf("%02d%% ", r.percent), batteryColors[tier].bright),
		components.NewSegment(status, components.ColorMuted),
	)
	return segs, nil
}

// parseBattery extracts a reading from acpi output. A line with no time
// estimate (bare percentage or zero rate) is reported as full regardless of
// its status word.
func parseBattery(out string) (batteryReading, error) {
	caps, err := collectors.Match(batteryRegex, out, "acpi doesn't match regex")
	if err != nil {
		return batteryReading{}, err
	}

	var r batteryReading
	if r.percent, err = strconv.Atoi(caps[2]); err != nil {
		return batteryReading{}, collectors.Malformed("invalid int")
	}

	if caps[3] == "" {
		r.state = batteryFull
		return r, nil
	}

	if r.hours, err = strconv.Atoi(caps[3]); err != nil {
		return batteryReading{}, collectors.Malformed("invalid int")
	}
	if r.minutes, err = strconv.Atoi(caps[4]); err != nil {
		return batteryReading{}, collectors.Malformed("invalid int")
	}

	switch caps[1] {
	case "Charging":
		r.state = batteryCharging
	case "Discharging":
		r.state = batteryDischarging
	default:
		return batteryReading{}, collectors.Malformed("not charging or discharging?")
	}
	return r, nil
}

// batteryTierFor maps a reading to its color tier.
func batteryTierFor(r batteryReading) batteryTier {
	switch r.state {
	case batteryCharging:
		return tierCharging
	case batteryFull:
		return tierFullCharged
	}
	switch {
	case r.percent <= 15:
		return tierCritical
	case r.percent <= 35:
		return tierLow
	case r.percent <= 95:
		return tierHigh
	default:
		return tierFullish
	}
}
