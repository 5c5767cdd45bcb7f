package backend

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/uidriver"
)

// Factory creates a renderer from cfg.
type Factory func(cfg Config) (uidriver.Renderer, error)

// registry holds registered backends.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// Priority order for Default (first that builds wins).
	backendPriority = []string{Ebiten, Software}
)

// Register registers a backend factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it is replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns the registered backend names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Get builds the named backend.
func Get(name string, cfg Config) (uidriver.Renderer, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("backend %q: %w", name, ErrBackendNotAvailable)
	}

	cfg, err := cfg.Normalize()
	if err != nil {
		return nil, err
	}
	r, err := factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("backend %q: %w", name, err)
	}
	uidriver.Logger().Debug("backend created", "name", name, "width", cfg.Width, "height", cfg.Height)
	return r, nil
}

// Default builds the first backend in priority order that succeeds, then
// any other registered backend. Priority order: ebiten > software.
func Default(cfg Config) (uidriver.Renderer, string, error) {
	tried := make(map[string]bool)
	var errs []error

	try := func(name string) (uidriver.Renderer, bool) {
		if tried[name] || !IsRegistered(name) {
			return nil, false
		}
		tried[name] = true
		r, err := Get(name, cfg)
		if err != nil {
			errs = append(errs, err)
			return nil, false
		}
		return r, true
	}

	for _, name := range backendPriority {
		if r, ok := try(name); ok {
			return r, name, nil
		}
	}
	for _, name := range Available() {
		if r, ok := try(name); ok {
			return r, name, nil
		}
	}

	if len(errs) == 0 {
		return nil, "", ErrBackendNotAvailable
	}
	return nil, "", errors.Join(append([]error{ErrBackendNotAvailable}, errs...)...)
}
