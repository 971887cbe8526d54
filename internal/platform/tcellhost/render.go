package tcellhost

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/glyph-snake/internal/core"
)

// cellRenderer adapts a tcell.Screen to core.Renderer.
type cellRenderer struct {
	screen tcell.Screen
}

// Draw implements core.Renderer.
func (r cellRenderer) Draw(glyph rune, x, y int, fg, bg core.Color) {
	r.screen.SetContent(x, y, glyph, nil, Style(fg, bg))
}

// Color converts a palette color to a tcell color.
func Color(c core.Color) tcell.Color {
	n := c.ANSI()
	if n < 0 {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(n)
}

// Style builds the tcell style for a cell.
func Style(fg, bg core.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(Color(fg)).Background(Color(bg))
}
