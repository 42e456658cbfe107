package widgets

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds the widgets compiled into the binary, keyed by name, so
// configuration can pick and order them. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	widgets map[string]Widget
}

// NewRegistry returns an empty registry ready for widget registration.
func NewRegistry() *Registry {
	return &Registry{widgets: make(map[string]Widget)}
}

// Register adds a widget to the registry. It returns an error if a widget
// with the same name is already registered.
func (r *Registry) Register(w Widget) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := w.Name()
	if _, exists := r.widgets[name]; exists {
		return fmt.Errorf("widget %q already registered", name)
	}
	r.widgets[name] = w
	return nil
}

// Get returns the widget with the given name, or false if not found.
func (r *Registry) Get(name string) (Widget, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.widgets[name]
	return w, ok
}

// List returns a sorted slice of all registered widget names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.widgets))
	for name := range r.widgets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select returns the named widgets in the given order. Unknown or repeated
// names are an error.
func (r *Registry) Select(names []string) ([]Widget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Widget, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return nil, fmt.Errorf("widget %q listed twice", name)
		}
		seen[name] = true

		w, ok := r.widgets[name]
		if !ok {
			return nil, fmt.Errorf("unknown widget %q", name)
		}
		out = append(out, w)
	}
	return out, nil
}
