// Package config provides TOML/YAML configuration for pulse-bar.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Widget names understood by the assembly point.
const (
	WidgetClock   = "clock"
	WidgetBattery = "battery"
	WidgetMemory  = "memory"
)

// Memory sources.
const (
	MemorySourceFree     = "free"
	MemorySourceGopsutil = "gopsutil"
)

// KnownWidgets lists every widget compiled into pulse-bar, in default order.
var KnownWidgets = []string{WidgetClock, WidgetBattery, WidgetMemory}

// Config is the top-level configuration.
type Config struct {
	// Interval is the time between bar updates (default 2s).
	Interval Duration `toml:"interval" yaml:"interval"`

	// Widgets lists the widgets to show, left to right.
	Widgets []string `toml:"widgets" yaml:"widgets"`

	// LogLevel is one of debug, info, warn, error (default info).
	LogLevel string `toml:"log_level" yaml:"log_level"`

	Battery BatteryConfig `toml:"battery" yaml:"battery"`
	Memory  MemoryConfig  `toml:"memory" yaml:"memory"`
}

// BatteryConfig configures the battery widget.
type BatteryConfig struct {
	// Command is the acpi-compatible program to run (default "acpi").
	Command string `toml:"command" yaml:"command"`
}

// MemoryConfig configures the memory widget.
type MemoryConfig struct {
	// Source is "free" (run Command) or "gopsutil" (read via gopsutil).
	Source string `toml:"source" yaml:"source"`

	// Command is the free-compatible program to run (default "free").
	Command string `toml:"command" yaml:"command"`
}

// Validate reports configuration errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Interval.Duration <= 0 {
		errs = append(errs, fmt.Errorf("interval must be positive, got %s", c.Interval.Duration))
	}

	if len(c.Widgets) == 0 {
		errs = append(errs, errors.New("widgets: at least one widget is required"))
	}
	seen := make(map[string]bool, len(c.Widgets))
	for _, name := range c.Widgets {
		if !isKnownWidget(name) {
			errs = append(errs, fmt.Errorf("widgets: unknown widget %q (known: %s)", name, strings.Join(KnownWidgets, ", ")))
			continue
		}
		if seen[name] {
			errs = append(errs, fmt.Errorf("widgets: %q listed twice", name))
		}
		seen[name] = true
	}

	switch c.Memory.Source {
	case MemorySourceFree, MemorySourceGopsutil:
	default:
		errs = append(errs, fmt.Errorf("memory.source: unknown source %q", c.Memory.Source))
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Level returns the configured slog level, defaulting to info.
func (c *Config) Level() slog.Level {
	l, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// ParseLevel maps a level name to a slog.Level. The empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("log_level: unknown level %q", s)
}

func isKnownWidget(name string) bool {
	for _, k := range KnownWidgets {
		if k == name {
			return true
		}
	}
	return false
}
