//go:build ebiten

package window

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/glyph-snake/internal/core"
	"github.com/vovakirdan/glyph-snake/internal/registry"
)

// HostName is the registry name of the window host.
const HostName = "window"

// Window scale factor applied to the logical board size.
const scale = 2

func init() {
	registry.Register(HostName, func() registry.Host { return Host{} })
}

// Host runs the game in a desktop window.
type Host struct{}

var _ registry.Host = Host{}

// Name implements registry.Host.
func (Host) Name() string { return HostName }

// Description implements registry.Host.
func (Host) Description() string {
	return "ebiten desktop window (built with -tags ebiten)"
}

// Run implements registry.Host. ebiten runs one Update per tick, so the
// tick rate becomes the window's TPS.
func (Host) Run(ctx context.Context, sim core.Simulation, opts registry.Options) error {
	opts = opts.Normalize()
	g := newGame(ctx, sim, opts)

	ebiten.SetWindowSize(core.BoardWidth*CellWidth*scale, core.BoardHeight*CellHeight*scale)
	ebiten.SetWindowTitle("Glyph Snake")
	ebiten.SetTPS(opts.Config.TickRate)

	opts.Logger.Info("starting host", "backend", HostName, "tick_rate", opts.Config.TickRate, "sound", opts.Config.Sound)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	opts.Logger.Info("host stopped", "backend", HostName, "ticks", g.ticks, "score", sim.Score())
	return nil
}

// game adapts a core simulation to the ebiten.Game interface.
type game struct {
	ctx    context.Context
	sim    core.Simulation
	opts   registry.Options
	screen *core.Screen
	chars  []rune
	ticks  int
}

func newGame(ctx context.Context, sim core.Simulation, opts registry.Options) *game {
	return &game{
		ctx:    ctx,
		sim:    sim,
		opts:   opts,
		screen: core.NewBoardScreen(),
	}
}

// Update handles input and advances the simulation by one tick.
func (g *game) Update() error {
	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	keys := keyState{
		left:  inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft),
		right: inpututil.IsKeyJustPressed(ebiten.KeyArrowRight),
		up:    inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		down:  inpututil.IsKeyJustPressed(ebiten.KeyArrowDown),
	}
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, ev := range inputEvents(keys, g.chars) {
		g.sim.HandleInput(ev)
	}

	frame := g.sim.Tick()
	core.Replay(g.screen, frame.Draws)
	g.ticks++

	if frame.Eaten > 0 {
		g.opts.Logger.Debug("food eaten", "tick", g.ticks, "count", frame.Eaten, "score", g.sim.Score())
	}
	if frame.Reset {
		g.opts.Logger.Debug("snake reset", "tick", g.ticks, "score", g.sim.Score())
	}
	if g.opts.OnFrame != nil {
		g.opts.OnFrame(frame)
	}
	return nil
}

// Draw paints every cell: a background rectangle, then the glyph.
func (g *game) Draw(dst *ebiten.Image) {
	face := basicfont.Face7x13
	for y := 0; y < g.screen.Height(); y++ {
		for x := 0; x < g.screen.Width(); x++ {
			c := g.screen.GetCell(x, y)
			px, py := x*CellWidth, y*CellHeight
			vector.DrawFilledRect(dst, float32(px), float32(py), CellWidth, CellHeight, RGBA(c.Bg), false)
			if c.Rune != ' ' {
				text.Draw(dst, string(c.Rune), face, px, py+glyphAscent, RGBA(c.Fg))
			}
		}
	}
}

// Layout returns the logical screen size.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return core.BoardWidth * CellWidth, core.BoardHeight * CellHeight
}
