package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/glyph-snake/internal/core"
)

// Snapshot captures the complete game state as a comparable value, for
// determinism tests, the sim command and debug logging.
type Snapshot struct {
	Column    int
	Row       int
	DX        int // Raw modular value in [0, BoardWidth)
	DY        int // Raw modular value in [0, BoardHeight)
	Length    int
	HeadIndex int
	Score     int
	Letters   string // Full glyph buffer
}

// Snapshot returns the current game snapshot.
func (g *GameState) Snapshot() Snapshot {
	return Snapshot{
		Column:    g.column.Value(),
		Row:       g.row.Value(),
		DX:        g.dx.Value(),
		DY:        g.dy.Value(),
		Length:    g.length,
		HeadIndex: g.headIndex.Value(),
		Score:     g.score,
		Letters:   string(g.letters[:]),
	}
}

// Velocity returns (dx, dy) as signed steps, e.g. 79 is reported as -1.
func (s Snapshot) Velocity() (int, int) {
	return core.NewMod(s.DX, core.BoardWidth).Signed(), core.NewMod(s.DY, core.BoardHeight).Signed()
}

// String returns a short human-readable summary.
func (s Snapshot) String() string {
	var b strings.Builder
	dx, dy := s.Velocity()
	b.WriteString(fmt.Sprintf("Score: %d, Length: %d\n", s.Score, s.Length))
	b.WriteString(fmt.Sprintf("Head: (%d, %d), Velocity: (%d, %d)\n", s.Column, s.Row, dx, dy))
	b.WriteString(fmt.Sprintf("Segments: %s\n", string([]rune(s.Letters)[:s.Length])))
	return b.String()
}
