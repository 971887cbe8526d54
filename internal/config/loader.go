package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/glyph-snake/internal/core"
	"github.com/vovakirdan/glyph-snake/internal/games/snake"
)

// Tick rate bounds, in ticks per second.
const (
	MinTickRate = 1
	MaxTickRate = 120
)

const configFile = "game.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.glyphsnake/configs/game.yaml -> ./configs/game.yaml -> embedded default
//
// An explicit customPath must exist and be valid. The user and local files
// are skipped when missing or broken.
func Load(customPath string) (GameConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultGameYAML)
	if err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result, so a
// file only needs the keys it changes.
func Parse(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// Validate reports every problem in the configuration at once.
func (c GameConfig) Validate() error {
	var errs []error

	if c.TickRate < MinTickRate || c.TickRate > MaxTickRate {
		errs = append(errs, fmt.Errorf("tick_rate %d out of range [%d, %d]", c.TickRate, MinTickRate, MaxTickRate))
	}
	errs = append(errs, checkDiagonal("food", c.Food)...)
	errs = append(errs, checkDiagonal("hazards", c.Hazards)...)

	for name, s := range map[string]string{
		"glyphs.food":   c.Glyphs.Food,
		"glyphs.hazard": c.Glyphs.Hazard,
		"glyphs.filler": c.Glyphs.Filler,
	} {
		if _, err := parseGlyph(s); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	for name, s := range map[string]string{
		"colors.food":       c.Colors.Food,
		"colors.hazard":     c.Colors.Hazard,
		"colors.snake":      c.Colors.Snake,
		"colors.score":      c.Colors.Score,
		"colors.background": c.Colors.Background,
	} {
		if _, err := core.ParseColor(s); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// Layout converts a validated configuration into a snake board layout.
func (c GameConfig) Layout() (snake.Layout, error) {
	if err := c.Validate(); err != nil {
		return snake.Layout{}, err
	}
	// Validate already checked every glyph and color.
	food, _ := parseGlyph(c.Glyphs.Food)
	hazard, _ := parseGlyph(c.Glyphs.Hazard)
	filler, _ := parseGlyph(c.Glyphs.Filler)

	l := snake.Layout{
		Food:    snake.Diagonal(c.Food...),
		Hazards: snake.Diagonal(c.Hazards...),
		Palette: snake.Palette{
			FoodGlyph:   food,
			HazardGlyph: hazard,
			Filler:      filler,
			FoodColor:   mustColor(c.Colors.Food),
			HazardColor: mustColor(c.Colors.Hazard),
			SnakeColor:  mustColor(c.Colors.Snake),
			ScoreColor:  mustColor(c.Colors.Score),
			Background:  mustColor(c.Colors.Background),
		},
	}
	if err := l.Validate(); err != nil {
		return snake.Layout{}, err
	}
	return l, nil
}

// Runtime returns the host-facing settings.
func (c GameConfig) Runtime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.TickRate = c.TickRate
	return rc
}

func checkDiagonal(name string, ks []int) []error {
	var errs []error
	for _, k := range ks {
		// (k, k) must fit on both axes; the height is the tighter bound.
		if k < 0 || k >= core.BoardHeight {
			errs = append(errs, fmt.Errorf("%s: index %d out of range [0, %d)", name, k, core.BoardHeight))
		}
	}
	return errs
}

func parseGlyph(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("glyph %q must be exactly one character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !core.IsDrawable(r) || r == ' ' {
		return 0, fmt.Errorf("glyph %q is not printable", s)
	}
	return r, nil
}

func mustColor(name string) core.Color {
	c, err := core.ParseColor(name)
	if err != nil {
		panic(err)
	}
	return c
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".glyphsnake", "configs", filename)
}
