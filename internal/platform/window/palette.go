// Package window provides a desktop-window host for the glyph snake built
// on ebiten. The host itself needs the ebiten build tag:
//
//	go build -tags ebiten ./cmd/glyphsnake
//
// Without the tag only the tag-independent helpers compile and the host is
// not registered.
package window

import (
	"image/color"

	"github.com/vovakirdan/glyph-snake/internal/core"
)

// Cell size in pixels, matching basicfont.Face7x13.
const (
	CellWidth   = 7
	CellHeight  = 13
	glyphAscent = 11
)

// xterm's first 16 colors.
var basePalette = [16]color.RGBA{
	{0x00, 0x00, 0x00, 0xff}, {0xcd, 0x00, 0x00, 0xff}, {0x00, 0xcd, 0x00, 0xff}, {0xcd, 0xcd, 0x00, 0xff},
	{0x00, 0x00, 0xee, 0xff}, {0xcd, 0x00, 0xcd, 0xff}, {0x00, 0xcd, 0xcd, 0xff}, {0xe5, 0xe5, 0xe5, 0xff},
	{0x7f, 0x7f, 0x7f, 0xff}, {0xff, 0x00, 0x00, 0xff}, {0x00, 0xff, 0x00, 0xff}, {0xff, 0xff, 0x00, 0xff},
	{0x5c, 0x5c, 0xff, 0xff}, {0xff, 0x00, 0xff, 0xff}, {0x00, 0xff, 0xff, 0xff}, {0xff, 0xff, 0xff, 0xff},
}

// RGBA converts a palette color to the RGB value an xterm would show for
// its 256-color index. ColorDefault maps to light gray.
func RGBA(c core.Color) color.RGBA {
	n := c.ANSI()
	switch {
	case n < 0:
		return basePalette[7]
	case n < 16:
		return basePalette[n]
	case n < 232:
		// 6x6x6 color cube
		n -= 16
		return color.RGBA{cubeLevel(n / 36), cubeLevel(n / 6 % 6), cubeLevel(n % 6), 0xff}
	default:
		// Grayscale ramp
		v := uint8(8 + 10*(n-232))
		return color.RGBA{v, v, v, 0xff}
	}
}

func cubeLevel(i int) uint8 {
	if i == 0 {
		return 0
	}
	return uint8(55 + 40*i)
}

// keyState is the set of arrows pressed since the last update.
type keyState struct {
	left, right, up, down bool
}

// inputEvents turns one update's key presses and typed characters into
// game events: arrows first in a fixed order, then characters as typed.
func inputEvents(keys keyState, chars []rune) []core.InputEvent {
	var events []core.InputEvent
	if keys.left {
		events = append(events, core.KeyEvent(core.KeyLeft))
	}
	if keys.right {
		events = append(events, core.KeyEvent(core.KeyRight))
	}
	if keys.up {
		events = append(events, core.KeyEvent(core.KeyUp))
	}
	if keys.down {
		events = append(events, core.KeyEvent(core.KeyDown))
	}
	for _, r := range chars {
		events = append(events, core.RuneEvent(r))
	}
	return events
}
