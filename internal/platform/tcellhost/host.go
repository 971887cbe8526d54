// Package tcellhost provides a tcell/v2 host for the glyph snake. It draws
// straight into terminal cells instead of building a string per frame.
package tcellhost

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/glyph-snake/internal/core"
	"github.com/vovakirdan/glyph-snake/internal/registry"
)

// HostName is the registry name of the tcell host.
const HostName = "tcell"

func init() {
	registry.Register(HostName, func() registry.Host { return New() })
}

// Host runs the game on a tcell screen.
type Host struct {
	newScreen func() (tcell.Screen, error)
}

var _ registry.Host = (*Host)(nil)

// New creates a host on the real terminal.
func New() *Host {
	return &Host{newScreen: tcell.NewScreen}
}

// NewWithScreen creates a host on a caller-provided screen, such as a
// tcell simulation screen. The host takes ownership of the screen.
func NewWithScreen(s tcell.Screen) *Host {
	return &Host{newScreen: func() (tcell.Screen, error) { return s, nil }}
}

// Name implements registry.Host.
func (h *Host) Name() string { return HostName }

// Description implements registry.Host.
func (h *Host) Description() string {
	return "tcell screen with direct cell drawing"
}

// Run implements registry.Host.
func (h *Host) Run(ctx context.Context, sim core.Simulation, opts registry.Options) error {
	opts = opts.Normalize()

	screen, err := h.newScreen()
	if err != nil {
		return fmt.Errorf("tcell: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell: init screen: %w", err)
	}
	defer screen.Fini()

	opts.Logger.Info("starting host", "backend", HostName, "tick_rate", opts.Config.TickRate, "sound", opts.Config.Sound)

	s := newSession(screen, sim, opts)
	s.loop(ctx)

	opts.Logger.Info("host stopped", "backend", HostName, "ticks", s.ticks, "score", sim.Score())
	return nil
}

// session is one run of the event loop. All simulation calls happen on
// the goroutine running loop.
type session struct {
	screen tcell.Screen
	sim    core.Simulation
	opts   registry.Options
	out    cellRenderer
	ticks  int
}

func newSession(screen tcell.Screen, sim core.Simulation, opts registry.Options) *session {
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.HideCursor()
	screen.Clear()

	return &session{
		screen: screen,
		sim:    sim,
		opts:   opts,
		out:    cellRenderer{screen: screen},
	}
}

// loop multiplexes terminal events and the tick timer until quit.
func (s *session) loop(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(s.opts.Config.TickRate))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-eventChan:
			if !s.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			s.tick()
		}
	}
}

// handleEvent applies one terminal event. Returns false on quit.
func (s *session) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return false
		}
		if in, ok := mapKey(ev); ok {
			s.sim.HandleInput(in)
		}

	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

// tick advances the simulation and pushes its frame to the terminal.
func (s *session) tick() {
	frame := s.sim.Tick()
	core.Replay(s.out, frame.Draws)
	s.screen.Show()
	s.ticks++

	if frame.Eaten > 0 {
		s.opts.Logger.Debug("food eaten", "tick", s.ticks, "count", frame.Eaten, "score", s.sim.Score())
	}
	if frame.Reset {
		s.opts.Logger.Debug("snake reset", "tick", s.ticks, "score", s.sim.Score())
	}
	if s.opts.OnFrame != nil {
		s.opts.OnFrame(frame)
	}
}
