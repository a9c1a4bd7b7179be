package systems

import (
	"fmt"
	"sort"
	"sync"
)

// Locator constructs or retrieves system instances. The factory only keeps
// references to what a Locator hands out.
type Locator interface {
	GetSystem(name string) (System, bool)
}

// Registry is an in-memory Locator that owns system instances by name.
type Registry struct {
	mu      sync.RWMutex
	systems map[string]System
}

var _ Locator = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{
		systems: make(map[string]System),
	}
}

// RegisterSystem stores s under s.Name().
func (r *Registry) RegisterSystem(s System) error {
	if s == nil || s.Name() == "" {
		return ErrInvalidSystem
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.systems[s.Name()]; exists {
		return fmt.Errorf("%w: %s", ErrSystemAlreadyExists, s.Name())
	}
	r.systems[s.Name()] = s
	return nil
}

// ReplaceSystem stores s, overwriting any system with the same name.
// Tests use it to swap in fakes.
func (r *Registry) ReplaceSystem(s System) error {
	if s == nil || s.Name() == "" {
		return ErrInvalidSystem
	}
	r.mu.Lock()
	r.systems[s.Name()] = s
	r.mu.Unlock()
	return nil
}

func (r *Registry) UnregisterSystem(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.systems[name]; !exists {
		return fmt.Errorf("%w: %s", ErrSystemNotFound, name)
	}
	delete(r.systems, name)
	return nil
}

func (r *Registry) GetSystem(name string) (System, bool) {
	r.mu.RLock()
	s, ok := r.systems[name]
	r.mu.RUnlock()
	return s, ok
}

func (r *Registry) HasSystem(name string) bool {
	_, ok := r.GetSystem(name)
	return ok
}

// ListSystems returns the registered systems sorted by name.
func (r *Registry) ListSystems() []System {
	r.mu.RLock()
	out := make([]System, 0, len(r.systems))
	for _, s := range r.systems {
		out = append(out, s)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}
