// Package registry provides a global registry for host backends.
// Hosts register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/glyph-snake/internal/core"
)

// Host drives a Simulation against a real terminal: it owns the timer,
// decodes keys and draws frames. The simulation contains pure logic and
// never sees the host.
type Host interface {
	// Name returns a unique identifier for this host (e.g., "tui", "tcell").
	// Used for the --backend flag.
	Name() string

	// Description returns a one-line human-readable summary.
	Description() string

	// Run blocks until the user quits or ctx is cancelled.
	// Tick and HandleInput are always called from a single goroutine.
	Run(ctx context.Context, sim core.Simulation, opts Options) error
}

// Options carries everything a host needs besides the simulation.
type Options struct {
	Config core.RuntimeConfig
	Logger *log.Logger

	// OnFrame, if set, is called after every tick with that tick's frame.
	// The CLI hooks audio cues in here.
	OnFrame func(core.Frame)
}

// Normalize fills unset options with defaults.
func (o Options) Normalize() Options {
	if o.Config.TickRate <= 0 {
		o.Config.TickRate = core.DefaultConfig().TickRate
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// HostInfo contains metadata about a registered host.
type HostInfo struct {
	Name        string
	Description string
}

// Factory is a function that creates a new instance of a host.
type Factory func() Host

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a host factory to the registry.
// Typically called from a host package's init() function.
// Panics if a host with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: host %q already registered", name))
	}

	factories[name] = f

	// Get description by creating a temporary instance
	h := f()
	descriptions[name] = h.Description()
}

// List returns information about all registered hosts, sorted by name.
func List() []HostInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]HostInfo, 0, len(factories))
	for name := range factories {
		result = append(result, HostInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a new host by its name.
// Returns an error if the name is not registered.
func Create(name string) (Host, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown host %q", name)
	}

	return f(), nil
}

// Exists checks if a host with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
