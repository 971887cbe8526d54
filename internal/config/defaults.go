package config

import (
	_ "embed"

	"github.com/vovakirdan/glyph-snake/internal/games/snake"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default game configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		TickRate: 10,
		Food:     append([]int(nil), snake.DefaultFood...),
		Hazards:  append([]int(nil), snake.DefaultHazards...),
		Glyphs: GlyphConfig{
			Food:   "@",
			Hazard: "W",
			Filler: "*",
		},
		Colors: ColorConfig{
			Food:       "cyan",
			Hazard:     "red",
			Snake:      "cyan",
			Score:      "yellow",
			Background: "black",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGameYAML
}
