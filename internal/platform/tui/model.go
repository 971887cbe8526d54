package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/glyph-snake/internal/core"
	"github.com/vovakirdan/glyph-snake/internal/registry"
)

// HostName is the registry name of the Bubble Tea host.
const HostName = "tui"

func init() {
	registry.Register(HostName, func() registry.Host { return Host{} })
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	sim    core.Simulation
	screen *core.Screen // Persistent: frames only draw what changed
	opts   registry.Options
	keys   KeyMap
	help   help.Model

	width    int
	height   int
	ticks    int
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given simulation.
func NewModel(sim core.Simulation, opts registry.Options) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		sim:    sim,
		screen: core.NewBoardScreen(),
		opts:   opts.Normalize(),
		keys:   DefaultKeyMap(),
		help:   h,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Host keys never reach the game
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("screenshot failed", "error", err)
		} else {
			m.opts.Logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	for _, ev := range m.keys.MapKey(msg) {
		m.sim.HandleInput(ev)
	}
	return m, nil
}

// handleTick advances the simulation and applies its frame to the screen.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	frame := m.sim.Tick()
	core.Replay(m.screen, frame.Draws)
	m.ticks++

	if frame.Eaten > 0 {
		m.opts.Logger.Debug("food eaten", "tick", m.ticks, "count", frame.Eaten, "score", m.sim.Score())
	}
	if frame.Reset {
		m.opts.Logger.Debug("snake reset", "tick", m.ticks, "score", m.sim.Score())
	}
	if m.opts.OnFrame != nil {
		m.opts.OnFrame(frame)
	}

	// Continue ticking
	return m, tickCmd(m.opts.Config.TickRate)
}

// Screen returns the screen buffer the model draws into.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// Ticks returns the number of ticks processed so far.
func (m Model) Ticks() int {
	return m.ticks
}

// saveScreenshot writes the current board as plain text.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	dir := filepath.Join(home, ".glyphsnake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("glyphsnake_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// tooSmall reports whether a known terminal size cannot fit the board.
// Before the first WindowSizeMsg the size is unknown and assumed large enough.
func (m Model) tooSmall() bool {
	if m.width == 0 && m.height == 0 {
		return false
	}
	return m.width < core.BoardWidth || m.height < core.BoardHeight
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		return m.tooSmallView()
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))

	// The help footer only fits below the board
	if m.height == 0 || m.height > core.BoardHeight {
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

func (m Model) tooSmallView() string {
	msg := fmt.Sprintf("Terminal too small: %dx%d\nNeed at least %dx%d\n\nesc to quit",
		m.width, m.height, core.BoardWidth, core.BoardHeight)
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("3")).
		Bold(true)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, style.Render(msg))
}

// Host runs the game as a Bubble Tea program on the alternate screen.
type Host struct{}

var _ registry.Host = Host{}

// Name implements registry.Host.
func (Host) Name() string { return HostName }

// Description implements registry.Host.
func (Host) Description() string {
	return "Bubble Tea program with lipgloss colors and a help footer"
}

// Run implements registry.Host.
func (Host) Run(ctx context.Context, sim core.Simulation, opts registry.Options) error {
	opts = opts.Normalize()
	model := NewModel(sim, opts)

	opts.Logger.Info("starting host", "backend", HostName, "tick_rate", opts.Config.TickRate, "sound", opts.Config.Sound)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("tui: %w", err)
	}

	if fm, ok := final.(Model); ok {
		opts.Logger.Info("host stopped", "backend", HostName, "ticks", fm.ticks, "score", sim.Score())
	}
	return nil
}
