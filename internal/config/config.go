// Package config provides YAML-based game configuration loading for the
// glyph snake. The board size is fixed and deliberately not configurable.
package config

// GameConfig contains all configuration for the game.
type GameConfig struct {
	TickRate int         `yaml:"tick_rate"`
	Food     []int       `yaml:"food"`    // Diagonal indexes, cell (k, k)
	Hazards  []int       `yaml:"hazards"` // Diagonal indexes, cell (k, k)
	Glyphs   GlyphConfig `yaml:"glyphs"`
	Colors   ColorConfig `yaml:"colors"`
}

// GlyphConfig defines the characters drawn for each board element.
// Each value must be exactly one printable character.
type GlyphConfig struct {
	Food   string `yaml:"food"`
	Hazard string `yaml:"hazard"`
	Filler string `yaml:"filler"`
}

// ColorConfig defines palette color names, e.g. "cyan" or "bright_red".
type ColorConfig struct {
	Food       string `yaml:"food"`
	Hazard     string `yaml:"hazard"`
	Snake      string `yaml:"snake"`
	Score      string `yaml:"score"`
	Background string `yaml:"background"`
}
