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
	// DefaultMemoryCommand is the program queried for memory usage.
	DefaultMemoryCommand = "free"

	memoryCooldown = 4
	memoryBarWidth = 12
	memoryBarColor = "#20ba00"
)

// freeRegex matches the "Mem:" row of free(1): total, used, free (kB).
var freeRegex = regexp.MustCompile(`Mem:\s+(\d+)\s+(\d+)\s+(\d+)`)

// MemoryReader supplies physical memory usage.
type MemoryReader interface {
	ReadMemory(ctx context.Context) (collectors.MemoryUsage, error)
}

// FreeReader reads memory usage by running free(1).
type FreeReader struct {
	runner  collectors.Runner
	command string
}

// NewFreeReader returns a FreeReader running command through runner. An
// empty command means DefaultMemoryCommand.
func NewFreeReader(runner collectors.Runner, command string) *FreeReader {
	if command == "" {
		command = DefaultMemoryCommand
	}
	return &FreeReader{runner: runner, command: command}
}

// ReadMemory runs free and extracts the total and used columns.
func (f *FreeReader) ReadMemory(ctx context.Context) (collectors.MemoryUsage, error) {
	out, err := f.runner.Run(ctx, f.command)
	if err != nil {
		return collectors.MemoryUsage{}, err
	}
	caps, err := collectors.Match(freeRegex, out, "free doesn't match regex")
	if err != nil {
		return collectors.MemoryUsage{}, err
	}
	total, err := strconv.Atoi(caps[1])
	if err != nil {
		return collectors.MemoryUsage{}, collectors.Malformed("invalid int")
	}
	used, err := strconv.Atoi(caps[2])
	if err != nil {
		return collectors.MemoryUsage{}, collectors.Malformed("invalid int")
	}
	return collectors.MemoryUsage{TotalKB: total, UsedKB: used}, nil
}

// Memory shows used physical memory as a bar and a megabyte count.
type Memory struct {
	reader MemoryReader
	bar    components.FillBar
}

// NewMemory creates a Memory widget reading usage from reader.
func NewMemory(reader MemoryReader) *Memory {
	return &Memory{
		reader: reader,
		bar:    components.MustSingle(memoryBarWidth, memoryBarColor),
	}
}

// Name returns "memory".
func (m *Memory) Name() string { return "memory" }

// Cooldown returns 4 ticks.
func (m *Memory) Cooldown() int { return memoryCooldown }

// Render draws "mem: [\\\\\\      ] 7812mb".
func (m *Memory) Render(ctx context.Context) ([]components.Segment, error) {
	u, err := m.reader.ReadMemory(ctx)
	if err != nil {
		return nil, err
	}
	usedMB := u.UsedKB / 1024
	totalMB := u.TotalKB / 1024
	if totalMB <= 0 {
		return nil, collectors.Malformed("total memory below 1mb")
	}

	segs := []components.Segment{components.Plain("mem: [")}
	segs = append(segs, m.bar.Render('\\', usedMB, totalMB)...)
	segs = append(segs,
		components.Plain("] "),
		components.NewSegment(fmt.Sprintf("%dmb", usedMB), components.ColorMuted),
	)
	return segs, nil
}
