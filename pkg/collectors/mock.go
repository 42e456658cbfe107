package collectors

import (
	"context"
	"sync"
	"sync/atomic"
)

// MockRunner implements Runner for testing. It returns canned output and
// tracks how many times Run has been called.
type MockRunner struct {
	mu     sync.RWMutex
	output string
	err    error

	callCount atomic.Int64
	lastName  atomic.Value

	// RunFunc, if set, overrides the default Run behavior. Tests use it to
	// return different output on each call.
	RunFunc func(ctx context.Context, name string, args ...string) (string, error)
}

// MockRunnerOption configures a MockRunner.
type MockRunnerOption func(*MockRunner)

// WithOutput sets the text returned by Run.
func WithOutput(out string) MockRunnerOption {
	return func(m *MockRunner) { m.output = out }
}

// WithError sets the error returned by Run.
func WithError(err error) MockRunnerOption {
	return func(m *MockRunner) { m.err = err }
}

// WithRunFunc sets a custom function for Run.
func WithRunFunc(fn func(ctx context.Context, name string, args ...string) (string, error)) MockRunnerOption {
	return func(m *MockRunner) { m.RunFunc = fn }
}

// NewMockRunner creates a mock runner with the given options.
func NewMockRunner(opts ...MockRunnerOption) *MockRunner {
	m := &MockRunner{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetOutput updates the returned text (thread-safe).
func (m *MockRunner) SetOutput(out string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.output = out
}

// SetError updates the returned error (thread-safe).
func (m *MockRunner) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Run records the call and returns the configured output and error, or
// delegates to RunFunc if set.
func (m *MockRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	m.callCount.Add(1)
	m.lastName.Store(name)

	if m.RunFunc != nil {
		return m.RunFunc(ctx, name, args...)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.output, m.err
}

// CallCount returns how many times Run has been called.
func (m *MockRunner) CallCount() int64 {
	return m.callCount.Load()
}

// LastName returns the program name passed to the most recent Run call.
func (m *MockRunner) LastName() string {
	s, _ := m.lastName.Load().(string)
	return s
}
