// glyphsnake is a terminal glyph snake: a row of glyphs that wraps around
// an 80x25 board, grows on food cells and is reset by hazard cells.
//
// Usage:
//
//	glyphsnake play               - Play in the terminal
//	glyphsnake sim --ticks 100    - Run headless and print the final board
//	glyphsnake backends           - List available terminal backends
//
// Global flags:
//
//	--fps <rate>         - Override the configured tick rate
//	--config <path>      - Path to a game config YAML
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file (required to see logs while playing)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/glyph-snake/internal/config"

	// Import hosts to register them
	_ "github.com/vovakirdan/glyph-snake/internal/platform/tcellhost"
	_ "github.com/vovakirdan/glyph-snake/internal/platform/tui"
	_ "github.com/vovakirdan/glyph-snake/internal/platform/window"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "glyphsnake",
	Short: "Glyph Snake - a wrap-around snake in your terminal",
	Long: `Glyph Snake is a terminal snake made of glyphs. Steer with the arrow
keys, eat '@' to grow and avoid 'W': touching one resets the snake but
keeps your score.

Available commands:
  play      - Play in the terminal
  sim       - Run headless and print the final board
  backends  - Show available terminal backends

Examples:
  glyphsnake play
  glyphsnake play --backend tcell --sound
  glyphsnake sim --ticks 50 --keys down,right@10
  glyphsnake play --config ./my-board.yaml --log-file snake.log --log-level debug`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "glyphsnake",
		Level:           level,
	}), nil
}

// openLogFile opens --log-file for appending. With no file set, the
// returned logger discards everything.
func openLogFile() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		logger, err := newLogger(io.Discard)
		return logger, func() {}, err
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// loadConfig loads the game config and applies the --fps override.
func loadConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS != 0 {
		cfg.TickRate = flagFPS
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid --fps: %w", err)
		}
	}
	return cfg, nil
}
