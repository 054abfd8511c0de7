package backend

import (
	"errors"
	"fmt"
	"image"
	"slices"
	"sync"

	"github.com/gogpu/shapes"
)

// Registered renderer names.
const (
	Software = "software"
	Terminal = "terminal"
)

// ErrNotAvailable is returned when no renderer is registered under a name.
var ErrNotAvailable = errors.New("backend: renderer not available")

// Offscreen is a shapes.Backend that renders into an image.
type Offscreen interface {
	shapes.Backend

	// SetCaption sets a label drawn over the shape on subsequent draws.
	SetCaption(s string)

	// Image returns the result of the last draw.
	Image() image.Image

	// Close releases the renderer's resources.
	Close() error
}

// Factory creates an Offscreen renderer with a size×size image.
type Factory func(size int) (Offscreen, error)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
	// Priority order for Default. Software antialiases, so it wins.
	priority = []string{Software, Terminal}
)

// Register registers a factory under name, replacing any previous one.
// It is typically called from init functions.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = f
}

// Unregister removes name from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Available returns the registered names, sorted.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered reports whether a renderer is registered under name.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}

// Get creates the renderer registered under name.
func Get(name string, size int) (Offscreen, error) {
	registryMu.RLock()
	f, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotAvailable, name)
	}
	r, err := f(size)
	if err != nil {
		return nil, fmt.Errorf("backend: create %s: %w", name, err)
	}
	return r, nil
}

// Default creates the best available renderer and returns its name.
// Names outside the priority list are tried last, in sorted order.
func Default(size int) (Offscreen, string, error) {
	order := slices.Clone(priority)
	for _, name := range Available() {
		if !slices.Contains(order, name) {
			order = append(order, name)
		}
	}

	var errs []error
	for _, name := range order {
		if !IsRegistered(name) {
			continue
		}
		r, err := Get(name, size)
		if err == nil {
			return r, name, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil, "", ErrNotAvailable
	}
	return nil, "", errors.Join(errs...)
}

// MustDefault returns the default renderer or panics.
func MustDefault(size int) Offscreen {
	r, _, err := Default(size)
	if err != nil {
		panic(err)
	}
	return r
}
