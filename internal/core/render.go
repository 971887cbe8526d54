package core

// Renderer draws one glyph with a foreground/background color at a board
// cell. The game never calls it outside [0,BoardWidth)x[0,BoardHeight).
type Renderer interface {
	Draw(glyph rune, x, y int, fg, bg Color)
}

// DrawCmd is a single recorded Renderer call.
type DrawCmd struct {
	Glyph rune
	X, Y  int
	Fg    Color
	Bg    Color
}

// Frame is the outcome of one simulation tick: the draw commands in emission
// order plus what happened during the tick.
type Frame struct {
	Draws []DrawCmd
	Eaten int  // Food cells consumed this tick
	Reset bool // Whether a hazard collision reset the snake
}

// Replay issues every command to dst in order.
func Replay(dst Renderer, cmds []DrawCmd) {
	for _, c := range cmds {
		dst.Draw(c.Glyph, c.X, c.Y, c.Fg, c.Bg)
	}
}

// Recorder is a Renderer that appends every call to Cmds.
type Recorder struct {
	Cmds []DrawCmd
}

// Draw records the call.
func (r *Recorder) Draw(glyph rune, x, y int, fg, bg Color) {
	r.Cmds = append(r.Cmds, DrawCmd{Glyph: glyph, X: x, Y: y, Fg: fg, Bg: bg})
}

// Reset drops recorded commands, keeping capacity.
func (r *Recorder) Reset() {
	r.Cmds = r.Cmds[:0]
}

// DrawNumber draws n in decimal starting at (x, y), most significant digit
// first, one column per digit. Returns the number of cells drawn.
func DrawNumber(dst Renderer, n, x, y int, fg, bg Color) int {
	drawn := 0
	if n < 0 {
		dst.Draw('-', x, y, fg, bg)
		x++
		drawn++
		n = -n
	}

	divisor := 1
	for n/divisor >= 10 {
		divisor *= 10
	}

	for ; divisor > 0; divisor /= 10 {
		dst.Draw(rune('0'+(n/divisor)%10), x, y, fg, bg)
		x++
		drawn++
	}
	return drawn
}
