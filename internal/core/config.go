package core

// RuntimeConfig contains configuration passed to hosts at startup.
type RuntimeConfig struct {
	TickRate int  // Simulation ticks per second (default 10)
	Sound    bool // Play audio cues if the host supports them
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 10,
	}
}

// Simulation is what a host drives: one Tick per timer interrupt, one
// HandleInput per decoded key. Calls must never overlap.
type Simulation interface {
	// Tick advances one frame and returns its draw commands and events.
	// The returned Draws slice is only valid until the next Tick.
	Tick() Frame

	// HandleInput applies a decoded key event. Unknown events are ignored.
	HandleInput(ev InputEvent)

	// Score returns the running score.
	Score() int
}
