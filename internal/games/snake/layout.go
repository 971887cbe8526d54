package snake

import (
	"fmt"

	"github.com/vovakirdan/glyph-snake/internal/core"
)

// Palette holds the glyphs and colors a GameState draws with.
type Palette struct {
	FoodGlyph   rune
	HazardGlyph rune
	Filler      rune // Glyph written into new snake segments

	FoodColor   core.Color
	HazardColor core.Color
	SnakeColor  core.Color
	ScoreColor  core.Color
	Background  core.Color
}

// DefaultPalette returns the classic look: cyan food and snake, red hazards,
// yellow score on black.
func DefaultPalette() Palette {
	return Palette{
		FoodGlyph:   '@',
		HazardGlyph: 'W',
		Filler:      '*',
		FoodColor:   core.ColorCyan,
		HazardColor: core.ColorRed,
		SnakeColor:  core.ColorCyan,
		ScoreColor:  core.ColorYellow,
		Background:  core.ColorBlack,
	}
}

// Layout is the immutable board configuration a GameState is built from.
type Layout struct {
	Food    []core.Point
	Hazards []core.Point
	Palette Palette
}

// Default diagonal indexes for food and hazard cells.
var (
	DefaultFood    = []int{2, 5, 8, 16, 15, 9}
	DefaultHazards = []int{1, 3, 7, 19, 13, 11}
)

// DefaultLayout returns the standard board.
func DefaultLayout() Layout {
	return Layout{
		Food:    Diagonal(DefaultFood...),
		Hazards: Diagonal(DefaultHazards...),
		Palette: DefaultPalette(),
	}
}

// Diagonal converts indexes k into the cells (k, k).
func Diagonal(ks ...int) []core.Point {
	points := make([]core.Point, len(ks))
	for i, k := range ks {
		points[i] = core.Point{X: k, Y: k}
	}
	return points
}

// Validate checks that every food and hazard cell lies on the board.
func (l Layout) Validate() error {
	for _, p := range l.Food {
		if !onBoard(p) {
			return fmt.Errorf("snake: food cell (%d,%d) is off the %dx%d board", p.X, p.Y, core.BoardWidth, core.BoardHeight)
		}
	}
	for _, p := range l.Hazards {
		if !onBoard(p) {
			return fmt.Errorf("snake: hazard cell (%d,%d) is off the %dx%d board", p.X, p.Y, core.BoardWidth, core.BoardHeight)
		}
	}
	return nil
}

func onBoard(p core.Point) bool {
	return p.X >= 0 && p.X < core.BoardWidth && p.Y >= 0 && p.Y < core.BoardHeight
}
