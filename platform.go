// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package uikit

import (
	"errors"
	"sort"
	"sync"

	"github.com/gogpu/uikit/drawing"
)

// HandlerOptions carries parameters for creating a graphics handler.
type HandlerOptions struct {
	// Width is the target width in pixels.
	Width int

	// Height is the target height in pixels.
	Height int
}

// HandlerFactory creates a new graphics handler with the given options.
// Implementations should validate options and return descriptive errors.
type HandlerFactory func(opts HandlerOptions) (drawing.GraphicsHandler, error)

// PlatformEntry represents a registered platform backend.
type PlatformEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: GPU backends
	//   - 10: pure software backends
	Priority int

	// Factory creates handler instances.
	Factory HandlerFactory

	// Available reports if the backend is usable on this system.
	Available func() bool
}

// globalPlatforms is the default registry.
var globalPlatforms = &Platforms{}

// Platforms manages registered platform backends.
//
// The registry enables backend packages to register themselves from an
// init function without requiring changes to the core library. A blank
// import of a backend package is enough to make it selectable:
//
//	import _ "github.com/gogpu/uikit/backend/software"
//
// Example usage:
//
//	g, err := uikit.NewGraphicsByName("software", 800, 600)
//	// or auto-select best available:
//	g, err := uikit.NewGraphics(800, 600)
type Platforms struct {
	mu      sync.RWMutex
	entries map[string]*PlatformEntry
}

// NewPlatforms creates a new empty registry.
// Most code should use the global registry via Register and NewGraphics.
func NewPlatforms() *Platforms {
	return &Platforms{
		entries: make(map[string]*PlatformEntry),
	}
}

// Register adds a backend to the global registry.
//
// Parameters:
//   - name: unique identifier (e.g., "software", "gpu")
//   - priority: selection priority (higher = preferred)
//   - factory: function to create handler instances
//   - available: function to check if the backend is usable
//
// If available is nil, the backend is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory HandlerFactory, available func() bool) {
	globalPlatforms.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalPlatforms.Unregister(name)
}

// List returns all registered backend names sorted by priority (highest first).
func List() []string {
	return globalPlatforms.List()
}

// Available returns names of all available backends sorted by priority.
func Available() []string {
	return globalPlatforms.Available()
}

// Get returns information about a specific backend.
func Get(name string) (*PlatformEntry, bool) {
	return globalPlatforms.Get(name)
}

// NewGraphics creates a Graphics using the best available backend.
// Returns an error if no backends are available.
func NewGraphics(width, height int) (*drawing.Graphics, error) {
	return globalPlatforms.NewGraphics(HandlerOptions{Width: width, Height: height})
}

// NewGraphicsWithOptions creates a Graphics using the best available backend.
func NewGraphicsWithOptions(opts HandlerOptions) (*drawing.Graphics, error) {
	return globalPlatforms.NewGraphics(opts)
}

// NewGraphicsByName creates a Graphics using a specific named backend.
func NewGraphicsByName(name string, width, height int) (*drawing.Graphics, error) {
	return globalPlatforms.NewGraphicsByName(name, HandlerOptions{Width: width, Height: height})
}

// Register adds a backend to this registry.
func (p *Platforms) Register(name string, priority int, factory HandlerFactory, available func() bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.entries == nil {
		p.entries = make(map[string]*PlatformEntry)
	}

	if available == nil {
		available = func() bool { return true }
	}

	p.entries[name] = &PlatformEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (p *Platforms) Unregister(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.entries, name)
}

// List returns all registered backend names sorted by priority.
func (p *Platforms) List() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.sortedNames(false)
}

// Available returns names of all available backends sorted by priority.
func (p *Platforms) Available() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.sortedNames(true)
}

// Get returns information about a specific backend.
func (p *Platforms) Get(name string) (*PlatformEntry, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	entry, ok := p.entries[name]
	if !ok {
		return nil, false
	}

	// Return a copy to prevent modification
	entryCopy := *entry
	return &entryCopy, true
}

// NewGraphics creates a Graphics using the best available backend.
func (p *Platforms) NewGraphics(opts HandlerOptions) (*drawing.Graphics, error) {
	p.mu.RLock()
	available := p.sortedNames(true)
	p.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoPlatformAvailable
	}

	// Try each available backend in priority order
	var lastErr error
	for _, name := range available {
		g, err := p.NewGraphicsByName(name, opts)
		if err == nil {
			return g, nil
		}
		lastErr = err
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrNoPlatformAvailable
}

// NewGraphicsByName creates a Graphics using a specific backend.
func (p *Platforms) NewGraphicsByName(name string, opts HandlerOptions) (*drawing.Graphics, error) {
	p.mu.RLock()
	entry, ok := p.entries[name]
	p.mu.RUnlock()

	if !ok {
		return nil, &PlatformNotFoundError{Name: name}
	}

	if !entry.Available() {
		return nil, &PlatformUnavailableError{Name: name}
	}

	h, err := entry.Factory(opts)
	if err != nil {
		return nil, err
	}

	Logger().Debug("uikit: platform handler created", "name", name)
	return drawing.NewGraphics(h), nil
}

// sortedNames returns backend names sorted by priority (highest first).
// If onlyAvailable is true, filters to available backends only.
// Must be called with lock held.
func (p *Platforms) sortedNames(onlyAvailable bool) []string {
	if len(p.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}

	entries := make([]entry, 0, len(p.entries))
	for name, e := range p.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].priority > entries[j].priority
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// Errors.
var (
	// ErrNoPlatformAvailable is returned when no platform backends are
	// registered or available on the current system.
	ErrNoPlatformAvailable = errors.New("uikit: no platform available")
)

// PlatformNotFoundError indicates a named backend is not registered.
type PlatformNotFoundError struct {
	Name string
}

func (e *PlatformNotFoundError) Error() string {
	return "uikit: platform not found: " + e.Name
}

// PlatformUnavailableError indicates a backend exists but is not available.
type PlatformUnavailableError struct {
	Name string
}

func (e *PlatformUnavailableError) Error() string {
	return "uikit: platform unavailable: " + e.Name
}
