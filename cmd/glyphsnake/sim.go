package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/glyph-snake/internal/core"
	"github.com/vovakirdan/glyph-snake/internal/games/snake"
)

var (
	flagTicks int
	flagKeys  string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the game headless and print the final board",
	Long: `Run a fixed number of ticks without a terminal UI, feeding scripted keys,
then print the board and the final game state. Useful for checking a
config or reproducing a scenario.

Keys are a comma-separated list of key[@tick]. A key is left, right, up,
down or a single character; it is applied just before the given tick
(default 0). Keys for the same tick apply in order.

Examples:
  glyphsnake sim --ticks 10 --keys right
  glyphsnake sim --ticks 60 --keys down,down@3,right@3
  glyphsnake sim --ticks 30 --config ./my-board.yaml --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 100, "Number of ticks to run")
	simCmd.Flags().StringVar(&flagKeys, "keys", "", "Scripted keys, e.g. right,down@5")
}

// scriptedKey is an input event applied before a given tick.
type scriptedKey struct {
	tick int
	ev   core.InputEvent
}

// parseScript parses a --keys value.
func parseScript(s string) ([]scriptedKey, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var script []scriptedKey
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		name, at, hasTick := strings.Cut(item, "@")

		tick := 0
		if hasTick {
			n, err := strconv.Atoi(at)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("bad tick in %q", item)
			}
			tick = n
		}

		ev, err := parseKey(name)
		if err != nil {
			return nil, err
		}
		script = append(script, scriptedKey{tick: tick, ev: ev})
	}
	return script, nil
}

func parseKey(name string) (core.InputEvent, error) {
	switch strings.ToLower(name) {
	case "left":
		return core.KeyEvent(core.KeyLeft), nil
	case "right":
		return core.KeyEvent(core.KeyRight), nil
	case "up":
		return core.KeyEvent(core.KeyUp), nil
	case "down":
		return core.KeyEvent(core.KeyDown), nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return core.RuneEvent(r), nil
	}
	return core.InputEvent{}, fmt.Errorf("unknown key %q", name)
}

// simulate runs ticks ticks of g, replaying every frame onto screen.
func simulate(g *snake.GameState, script []scriptedKey, ticks int, screen *core.Screen, logger *log.Logger) {
	for tick := 0; tick < ticks; tick++ {
		for _, k := range script {
			if k.tick == tick {
				g.HandleInput(k.ev)
			}
		}

		frame := g.Tick()
		core.Replay(screen, frame.Draws)

		if frame.Eaten > 0 {
			logger.Debug("food eaten", "tick", tick, "count", frame.Eaten, "score", g.Score())
		}
		if frame.Reset {
			logger.Debug("snake reset", "tick", tick, "score", g.Score())
		}
	}
}

func runSim(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	if flagTicks < 0 {
		return fmt.Errorf("--ticks must not be negative")
	}

	script, err := parseScript(flagKeys)
	if err != nil {
		return fmt.Errorf("invalid --keys: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	layout, err := cfg.Layout()
	if err != nil {
		return err
	}

	game := snake.NewWithLayout(layout)
	screen := core.NewBoardScreen()
	logger.Debug("simulating", "ticks", flagTicks, "keys", len(script))

	simulate(game, script, flagTicks, screen, logger)

	fmt.Println(screen.String())
	fmt.Println()
	fmt.Print(game.Snapshot().String())
	return nil
}
