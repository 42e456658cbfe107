// Package sysmetrics reads memory statistics through gopsutil instead of
// parsing free(1). It works on Darwin and Linux without /proc parsing of our
// own and backs the memory widget when memory.source = "gopsutil".
package sysmetrics

import (
	"context"
	"fmt"
	"sync"

	"github.com/shirou/gopsutil/v4/mem"

	"gitlab.com/tinyland/lab/pulse-bar/pkg/collectors"
)

// VirtualMemoryFunc matches mem.VirtualMemoryWithContext so tests can
// substitute fixed statistics.
type VirtualMemoryFunc func(ctx context.Context) (*mem.VirtualMemoryStat, error)

// Reader gathers physical memory usage via gopsutil. It satisfies the
// widgets.MemoryReader interface.
type Reader struct {
	vm      VirtualMemoryFunc
	mu      sync.Mutex
	healthy bool
}

// New returns a Reader backed by mem.VirtualMemoryWithContext.
func New() *Reader {
	return NewWithFunc(mem.VirtualMemoryWithContext)
}

// NewWithFunc returns a Reader that calls vm for statistics.
func NewWithFunc(vm VirtualMemoryFunc) *Reader {
	return &Reader{
		vm:      vm,
		healthy: true, // healthy until proven otherwise
	}
}

// Healthy reports whether the last read succeeded.
func (r *Reader) Healthy() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.healthy
}

func (r *Reader) setHealthy(h bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.healthy = h
}

// ReadMemory returns total and used physical memory in kB. gopsutil reports
// bytes; the values are divided by 1024 to match free(1).
func (r *Reader) ReadMemory(ctx context.Context) (collectors.MemoryUsage, error) {
	select {
	case <-ctx.Done():
		return collectors.MemoryUsage{}, ctx.Err()
	default:
	}

	vm, err := r.vm(ctx)
	if err != nil {
		r.setHealthy(false)
		return collectors.MemoryUsage{}, fmt.Errorf("%w: virtual memory: %v", collectors.ErrCommandFailed, err)
	}
	if vm == nil || vm.Total == 0 {
		r.setHealthy(false)
		return collectors.MemoryUsage{}, collectors.Malformed("gopsutil reported no memory")
	}

	r.setHealthy(true)
	return collectors.MemoryUsage{
		TotalKB: int(vm.Total / 1024),
		UsedKB:  int(vm.Used / 1024),
	}, nil
}
