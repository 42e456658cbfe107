package sysmetrics

import (
	"context"
	"errors"
	"testing"

	"github.com/shirou/gopsutil/v4/mem"

	"gitlab.com/tinyland/lab/pulse-bar/pkg/collectors"
)

// --- helpers ---

func smFixed(total, used uint64) VirtualMemoryFunc {
	return func(ctx context.Context) (*mem.VirtualMemoryStat, error) {
		return &mem.VirtualMemoryStat{Total: total, Used: used}, nil
	}
}

// --- tests ---

func TestHealthyInitialState(t *testing.T) {
	if !New().Healthy() {
		t.Error("Healthy() should be true before any read")
	}
}

func TestReadMemoryConvertsBytesToKB(t *testing.T) {
	r := NewWithFunc(smFixed(16*1024*1024*1024, 8*1024*1024*1024))
	u, err := r.ReadMemory(context.Background())
	if err != nil {
		t.Fatalf("ReadMemory error: %v", err)
	}
	if u.TotalKB != 16*1024*1024 {
		t.Errorf("TotalKB = %d, want %d", u.TotalKB, 16*1024*1024)
	}
	if u.UsedKB != 8*1024*1024 {
		t.Errorf("UsedKB = %d, want %d", u.UsedKB, 8*1024*1024)
	}
}

func TestReadMemoryError(t *testing.T) {
	r := NewWithFunc(func(ctx context.Context) (*mem.VirtualMemoryStat, error) {
		return nil, errors.New("boom")
	})
	_, err := r.ReadMemory(context.Background())
	if !errors.Is(err, collectors.ErrCommandFailed) {
		t.Errorf("err = %v, want ErrCommandFailed", err)
	}
	if r.Healthy() {
		t.Error("Healthy() should be false after a failed read")
	}
}

func TestReadMemoryZeroTotal(t *testing.T) {
	r := NewWithFunc(smFixed(0, 0))
	_, err := r.ReadMemory(context.Background())
	var mo *collectors.MalformedOutputError
	if !errors.As(err, &mo) {
		t.Errorf("err = %v, want *MalformedOutputError", err)
	}
}

func TestReadMemoryCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().ReadMemory(ctx); err == nil {
		t.Error("ReadMemory with cancelled context should return error")
	}
}

// --- Integration test (runs on actual host) ---

func TestReadMemoryHost(t *testing.T) {
	u, err := New().ReadMemory(context.Background())
	if err != nil {
		t.Skipf("gopsutil unavailable on this host: %v", err)
	}
	if u.TotalKB <= 0 {
		t.Errorf("TotalKB = %d, want > 0", u.TotalKB)
	}
	if u.UsedKB > u.TotalKB {
		t.Errorf("UsedKB (%d) > TotalKB (%d)", u.UsedKB, u.TotalKB)
	}
}
