package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/glyph-snake/internal/audio"
	"github.com/vovakirdan/glyph-snake/internal/core"
	"github.com/vovakirdan/glyph-snake/internal/games/snake"
	"github.com/vovakirdan/glyph-snake/internal/platform/tui"
	"github.com/vovakirdan/glyph-snake/internal/registry"
)

var (
	flagBackend string
	flagSound   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in the terminal. The board is 80x25.

Controls:
  Arrows   - Steer (each press adds one step of speed on that axis)
  Esc      - Quit
  Ctrl+C   - Quit

The tui backend also supports:
  Ctrl+S   - Save a plain-text screenshot to ~/.glyphsnake/screenshots
  F1       - Toggle full help

Backends:
  tui      - Bubble Tea (default)
  tcell    - tcell screen
  window   - Desktop window, only in builds made with -tags ebiten

Examples:
  glyphsnake play
  glyphsnake play --backend tcell
  glyphsnake play --sound --fps 20`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", tui.HostName, "Terminal backend (see 'glyphsnake backends')")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	// Check if backend exists
	if !registry.Exists(flagBackend) {
		return fmt.Errorf("unknown backend %q, run 'glyphsnake backends' to see available ones", flagBackend)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	layout, err := cfg.Layout()
	if err != nil {
		return err
	}

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < core.BoardWidth || h < core.BoardHeight {
			logger.Warn("terminal is smaller than the board", "width", w, "height", h,
				"need_width", core.BoardWidth, "need_height", core.BoardHeight)
		}
	}

	host, err := registry.Create(flagBackend)
	if err != nil {
		return err
	}

	// The host owns the terminal from here on: log to file or nowhere
	sessionLogger, closeLog, err := openLogFile()
	if err != nil {
		return err
	}
	defer closeLog()

	opts := registry.Options{
		Config: cfg.Runtime(),
		Logger: sessionLogger,
	}
	opts.Config.Sound = flagSound

	if flagSound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			logger.Warn("audio disabled", "error", err)
		} else {
			defer sm.Cleanup()
			opts.OnFrame = sm.OnFrame
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game := snake.NewWithLayout(layout)
	if err := host.Run(ctx, game, opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	fmt.Printf("Final score: %d\n", game.Score())
	return nil
}
