package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// cfgClearEnv blanks the override variables for the duration of a test.
func cfgClearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PULSEBAR_INTERVAL", "PULSEBAR_WIDGETS", "PULSEBAR_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Interval.Duration != 2*time.Second {
		t.Errorf("Interval = %v, want 2s", cfg.Interval.Duration)
	}
	if strings.Join(cfg.Widgets, ",") != "clock,battery,memory" {
		t.Errorf("Widgets = %v", cfg.Widgets)
	}
	if cfg.Battery.Command != "acpi" || cfg.Memory.Command != "free" {
		t.Errorf("commands = %q, %q", cfg.Battery.Command, cfg.Memory.Command)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadTOML(t *testing.T) {
	cfgClearEnv(t)
	in := `
interval = "500ms"
widgets = ["memory", "clock"]
log_level = "debug"

[memory]
source = "gopsutil"
`
	cfg, err := LoadFromReader(strings.NewReader(in), FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromReader error: %v", err)
	}
	if cfg.Interval.Duration != 500*time.Millisecond {
		t.Errorf("Interval = %v, want 500ms", cfg.Interval.Duration)
	}
	if strings.Join(cfg.Widgets, ",") != "memory,clock" {
		t.Errorf("Widgets = %v", cfg.Widgets)
	}
	if cfg.Memory.Source != MemorySourceGopsutil {
		t.Errorf("Memory.Source = %q", cfg.Memory.Source)
	}
	if cfg.Memory.Command != "free" {
		t.Errorf("Memory.Command = %q, want default free", cfg.Memory.Command)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("Level() = %v, want debug", cfg.Level())
	}
}

func TestLoadYAML(t *testing.T) {
	cfgClearEnv(t)
	in := `
interval: 3s
widgets: [battery]
battery:
  command: /usr/local/bin/acpi
`
	cfg, err := LoadFromReader(strings.NewReader(in), FormatYAML)
	if err != nil {
		t.Fatalf("LoadFromReader error: %v", err)
	}
	if cfg.Interval.Duration != 3*time.Second {
		t.Errorf("Interval = %v, want 3s", cfg.Interval.Duration)
	}
	if len(cfg.Widgets) != 1 || cfg.Widgets[0] != "battery" {
		t.Errorf("Widgets = %v", cfg.Widgets)
	}
	if cfg.Battery.Command != "/usr/local/bin/acpi" {
		t.Errorf("Battery.Command = %q", cfg.Battery.Command)
	}
}

func TestLoadEmptyYAMLKeepsDefaults(t *testing.T) {
	cfgClearEnv(t)
	cfg, err := LoadFromReader(strings.NewReader(""), FormatYAML)
	if err != nil {
		t.Fatalf("LoadFromReader error: %v", err)
	}
	if cfg.Interval.Duration != 2*time.Second {
		t.Errorf("Interval = %v, want 2s", cfg.Interval.Duration)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	cfgClearEnv(t)
	for _, in := range []string{`interval = "soon"`, `interval = "-1s"`} {
		if _, err := LoadFromReader(strings.NewReader(in), FormatTOML); err == nil {
			t.Errorf("%s: expected error", in)
		}
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfgClearEnv(t)
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFromFile error: %v", err)
	}
	if cfg.Interval.Duration != 2*time.Second {
		t.Errorf("missing file should yield defaults, Interval = %v", cfg.Interval.Duration)
	}
}

func TestLoadFromFileByExtension(t *testing.T) {
	cfgClearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("log_level: warn\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile error: %v", err)
	}
	if cfg.Level() != slog.LevelWarn {
		t.Errorf("Level() = %v, want warn", cfg.Level())
	}
}

func TestLoadSearchesXDG(t *testing.T) {
	cfgClearEnv(t)
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "pulse-bar"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "pulse-bar", "config.toml"), []byte(`interval = "7s"`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Interval.Duration != 7*time.Second {
		t.Errorf("Interval = %v, want 7s", cfg.Interval.Duration)
	}
}

func TestEnvOverrides(t *testing.T) {
	cfgClearEnv(t)
	t.Setenv("PULSEBAR_INTERVAL", "1s")
	t.Setenv("PULSEBAR_WIDGETS", " memory , battery ")
	t.Setenv("PULSEBAR_LOG_LEVEL", "error")

	cfg, err := LoadFromReader(strings.NewReader(`interval = "9s"`), FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromReader error: %v", err)
	}
	if cfg.Interval.Duration != time.Second {
		t.Errorf("Interval = %v, want 1s", cfg.Interval.Duration)
	}
	if strings.Join(cfg.Widgets, ",") != "memory,battery" {
		t.Errorf("Widgets = %v", cfg.Widgets)
	}
	if cfg.Level() != slog.LevelError {
		t.Errorf("Level() = %v, want error", cfg.Level())
	}
}

func TestEnvOverrideBadInterval(t *testing.T) {
	cfgClearEnv(t)
	t.Setenv("PULSEBAR_INTERVAL", "fast")
	if _, err := LoadFromReader(strings.NewReader(""), FormatTOML); err == nil {
		t.Error("expected error for bad PULSEBAR_INTERVAL")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"zero interval", func(c *Config) { c.Interval = Duration{} }, "interval"},
		{"no widgets", func(c *Config) { c.Widgets = nil }, "at least one widget"},
		{"unknown widget", func(c *Config) { c.Widgets = []string{"wifi"} }, "unknown widget"},
		{"duplicate widget", func(c *Config) { c.Widgets = []string{"clock", "clock"} }, "listed twice"},
		{"bad source", func(c *Config) { c.Memory.Source = "proc" }, "memory.source"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %q, want substring %q", err, tt.want)
			}
		})
	}
}

func TestDurationMarshalText(t *testing.T) {
	b, err := Duration{90 * time.Second}.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "1m30s" {
		t.Errorf("MarshalText = %q, want 1m30s", b)
	}
}
