// Package snake implements the glyph snake: a single-row string of glyphs
// that wanders a wrap-around board, eats food cells and is reset by hazards.
package snake

import (
	"github.com/vovakirdan/glyph-snake/internal/core"
)

// GameState is the whole game: snake geometry, velocity, the fixed food and
// hazard cells, and the score. It is driven by Tick and HandleInput, which
// must never run concurrently.
type GameState struct {
	// Snake glyph buffer. Capacity equals the board width, so growth
	// saturates instead of reallocating.
	letters   [core.BoardWidth]rune
	length    int      // Segments in use, 1..BoardWidth
	headIndex core.Mod // Slot the next grown segment is written to
	column    core.Mod // Head x
	row       core.Mod // The row the whole snake occupies

	dx core.Mod
	dy core.Mod

	score int

	food    []core.Point
	hazards []core.Point
	palette Palette

	// Draw commands of the current frame, reused between ticks
	out core.Recorder
}

var _ core.Simulation = (*GameState)(nil)

// New creates a game on the default board.
func New() *GameState {
	return NewWithLayout(DefaultLayout())
}

// NewWithLayout creates a game with custom food/hazard cells and palette.
// The layout is copied; callers should Validate it first.
func NewWithLayout(l Layout) *GameState {
	g := &GameState{
		food:    append([]core.Point(nil), l.Food...),
		hazards: append([]core.Point(nil), l.Hazards...),
		palette: l.Palette,
	}
	g.out.Cmds = make([]core.DrawCmd, 0, 3*core.BoardWidth+len(l.Food)+len(l.Hazards)+24)
	g.initSnake()
	return g
}

// initSnake puts the snake back to its starting shape: one filler segment
// at the board center, standing still. Score is untouched.
func (g *GameState) initSnake() {
	for i := range g.letters {
		g.letters[i] = g.palette.Filler
	}
	g.length = 1
	g.headIndex = core.NewMod(1, core.BoardWidth)
	g.column = core.NewMod(core.BoardWidth/2, core.BoardWidth)
	g.row = core.NewMod(core.BoardHeight/2, core.BoardHeight)
	g.dx = core.NewMod(0, core.BoardWidth)
	g.dy = core.NewMod(0, core.BoardHeight)
}

// Tick advances the game by one frame.
//
// Phase order matters: old glyphs are erased before moving, and food/hazard
// checks run on post-move coordinates.
func (g *GameState) Tick() core.Frame {
	g.out.Reset()

	g.drawFood()
	g.drawHazards()
	g.drawScore()
	g.clearCurrent()
	g.updateLocation()
	g.drawCurrent()
	eaten := g.consumeFood()

	reset := g.hitsHazard()
	if reset {
		g.reset()
	}

	return core.Frame{
		Draws: g.out.Cmds,
		Eaten: eaten,
		Reset: reset,
	}
}

// segmentColumn returns the column of segment i; segment 0 is the head and
// the body trails behind it.
func (g *GameState) segmentColumn(i int) int {
	return g.column.Sub(i).Value()
}

func (g *GameState) drawFood() {
	p := g.palette
	for _, f := range g.food {
		g.out.Draw(p.FoodGlyph, f.X, f.Y, p.FoodColor, p.Background)
	}
}

func (g *GameState) drawHazards() {
	p := g.palette
	for _, h := range g.hazards {
		g.out.Draw(p.HazardGlyph, h.X, h.Y, p.HazardColor, p.Background)
	}
}

func (g *GameState) drawScore() {
	core.DrawNumber(&g.out, g.score, 0, 0, g.palette.ScoreColor, g.palette.Background)
}

func (g *GameState) clearCurrent() {
	bg := g.palette.Background
	for i := 0; i < g.length; i++ {
		g.out.Draw(' ', g.segmentColumn(i), g.row.Value(), bg, bg)
	}
}

func (g *GameState) updateLocation() {
	g.column = g.column.Add(g.dx.Value())
	g.row = g.row.Add(g.dy.Value())
}

func (g *GameState) drawCurrent() {
	p := g.palette
	for i := 0; i < g.length; i++ {
		g.out.Draw(g.letters[i], g.segmentColumn(i), g.row.Value(), p.SnakeColor, p.Background)
	}
}

// consumeFood grows the snake once per body cell lying on a food cell.
// Food cells are never removed, so a snake parked on one keeps eating.
func (g *GameState) consumeFood() int {
	eaten := 0
	n := g.length // Segments grown this tick are not checked until the next one
	for i := 0; i < n; i++ {
		x := g.segmentColumn(i)
		for _, f := range g.food {
			if x == f.X && g.row.Value() == f.Y {
				g.grow()
				eaten++
			}
		}
	}
	return eaten
}

func (g *GameState) grow() {
	g.letters[g.headIndex.Value()] = g.palette.Filler
	g.headIndex = g.headIndex.Add(1)
	g.score++
	if g.length < core.BoardWidth {
		g.length++
	}
}

func (g *GameState) hitsHazard() bool {
	hit := false
	for i := 0; i < g.length; i++ {
		x := g.segmentColumn(i)
		for _, h := range g.hazards {
			if x == h.X && g.row.Value() == h.Y {
				hit = true
			}
		}
	}
	return hit
}

// reset erases the snake and restores its starting state. The score
// survives a reset.
func (g *GameState) reset() {
	g.clearCurrent()
	g.initSnake()
}

// HandleInput applies a decoded key event.
func (g *GameState) HandleInput(ev core.InputEvent) {
	switch ev.Kind {
	case core.EventKey:
		g.handleKey(ev.Key)
	case core.EventRune:
		g.handleRune(ev.Rune)
	}
}

func (g *GameState) handleKey(k core.Key) {
	switch k {
	case core.KeyLeft:
		g.dx = g.dx.Sub(1)
	case core.KeyRight:
		g.dx = g.dx.Add(1)
	case core.KeyUp:
		g.dy = g.dy.Sub(1)
	case core.KeyDown:
		g.dy = g.dy.Add(1)
	}
}

// handleRune is reserved: drawable characters are accepted but do nothing
// yet, everything else is ignored.
func (g *GameState) handleRune(r rune) {
	if core.IsDrawable(r) {
		return
	}
}

// Render replays the last frame's draw commands onto dst.
func (g *GameState) Render(dst core.Renderer) {
	core.Replay(dst, g.out.Cmds)
}

// Score returns the running score.
func (g *GameState) Score() int {
	return g.score
}

// Length returns the number of snake segments.
func (g *GameState) Length() int {
	return g.length
}

// Head returns the head cell.
func (g *GameState) Head() core.Point {
	return core.Point{X: g.column.Value(), Y: g.row.Value()}
}

// Body returns the occupied cells, head first.
func (g *GameState) Body() []core.Point {
	cells := make([]core.Point, g.length)
	for i := range cells {
		cells[i] = core.Point{X: g.segmentColumn(i), Y: g.row.Value()}
	}
	return cells
}
