package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/glyph-snake/internal/core"
	"github.com/vovakirdan/glyph-snake/internal/games/snake"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults invalid: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultGameConfig()) {
		t.Errorf("embedded = %+v, hardcoded = %+v", cfg, DefaultGameConfig())
	}
}

func TestDefaultLayoutMatchesGame(t *testing.T) {
	l, err := DefaultGameConfig().Layout()
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}
	if !reflect.DeepEqual(l, snake.DefaultLayout()) {
		t.Errorf("Layout() = %+v, want %+v", l, snake.DefaultLayout())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("tick_rate: 30\ncolors:\n  snake: green\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if cfg.TickRate != 30 {
		t.Errorf("TickRate = %d, want 30", cfg.TickRate)
	}
	if cfg.Colors.Snake != "green" {
		t.Errorf("Colors.Snake = %q, want green", cfg.Colors.Snake)
	}
	// Untouched keys keep their defaults
	if cfg.Colors.Food != "cyan" || cfg.Glyphs.Hazard != "W" {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.Food, snake.DefaultFood) {
		t.Errorf("Food = %v, want %v", cfg.Food, snake.DefaultFood)
	}
}

func TestParseReplacesLists(t *testing.T) {
	cfg, err := Parse([]byte("food: [4]\nhazards: []\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if !reflect.DeepEqual(cfg.Food, []int{4}) {
		t.Errorf("Food = %v, want [4]", cfg.Food)
	}
	if len(cfg.Hazards) != 0 {
		t.Errorf("Hazards = %v, want empty", cfg.Hazards)
	}

	l, err := cfg.Layout()
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}
	if len(l.Food) != 1 || l.Food[0] != (core.Point{X: 4, Y: 4}) {
		t.Errorf("Layout().Food = %v", l.Food)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad yaml", "tick_rate: [", "failed to parse"},
		{"zero tick rate", "tick_rate: 0", "tick_rate"},
		{"huge tick rate", "tick_rate: 1000", "tick_rate"},
		{"food off board", "food: [25]", "food: index 25"},
		{"negative hazard", "hazards: [-1]", "hazards: index -1"},
		{"long glyph", "glyphs:\n  food: \"ab\"", "glyphs.food"},
		{"empty glyph", "glyphs:\n  filler: \"\"", "glyphs.filler"},
		{"space glyph", "glyphs:\n  hazard: \" \"", "glyphs.hazard"},
		{"unknown color", "colors:\n  score: mauve", "colors.score"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Parse() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.TickRate = 0
	cfg.Colors.Food = "nope"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() succeeded, want error")
	}
	for _, want := range []string{"tick_rate", "colors.food"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestLayoutUnicodeGlyphs(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Glyphs.Food = "●"
	cfg.Colors.Hazard = "Bright_Red"

	l, err := cfg.Layout()
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}
	if l.Palette.FoodGlyph != '●' {
		t.Errorf("FoodGlyph = %q, want ●", l.Palette.FoodGlyph)
	}
	if l.Palette.HazardColor != core.ColorBrightRed {
		t.Errorf("HazardColor = %v, want bright_red", l.Palette.HazardColor)
	}
}

func TestRuntime(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.TickRate = 25
	if got := cfg.Runtime().TickRate; got != 25 {
		t.Errorf("Runtime().TickRate = %d, want 25", got)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("tick_rate: 15\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.TickRate != 15 {
		t.Errorf("TickRate = %d, want 15", cfg.TickRate)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of missing file succeeded, want error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("tick_rate: -3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of invalid file succeeded, want error")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".glyphsnake", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "game.yaml"), []byte("tick_rate: 42\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.TickRate != 42 {
		t.Errorf("TickRate = %d, want 42", cfg.TickRate)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	// A broken user file is skipped
	dir := filepath.Join(home, ".glyphsnake", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "game.yaml"), []byte("food: [99]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultGameConfig()) {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}
