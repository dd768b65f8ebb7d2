// Package registry provides a global registry for scene factories.
// Scenes register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/sim"
)

// Scene is the interface every arena setup implements.
// Scenes hold the simulation; the platform handles timing, input and display.
type Scene interface {
	// ID returns a unique identifier for this scene (e.g., "bounce").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset builds a fresh arena sized from the runtime screen and starts
	// the simulation clock at now (milliseconds on the host timeline).
	// Frames are painted into dst.
	Reset(cfg core.RuntimeConfig, dst *core.Screen, now float64) error

	// Frame handles one host frame: runs every elapsed tick, then paints.
	Frame(now float64) sim.FrameResult

	// SetDiagnostics shows or hides the FPS and figure count overlay.
	SetDiagnostics(on bool)

	// Totals returns running counters since the last Reset.
	Totals() sim.Totals
}

// SceneInfo contains metadata about a registered scene.
type SceneInfo struct {
	ID    string
	Title string
}

// Factory creates a new scene instance from a configuration.
type Factory func(cfg config.BounceConfig) Scene

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a scene factory to the registry.
// Typically called from a scene package's init() function.
// Panics if a scene with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f(config.DefaultBounceConfig()).Title()
}

// List returns information about all registered scenes, sorted by ID.
func List() []SceneInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SceneInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SceneInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new scene by its ID.
// Returns an error if the scene ID is not registered.
func Create(id string, cfg config.BounceConfig) (Scene, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown scene %q", id)
	}

	return f(cfg), nil
}

// Exists checks if a scene with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
