package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/glyph-snake/internal/core"
)

// KeyMap defines the key bindings for the game screen.
// Only the arrows reach the game as keys; printable characters are
// forwarded as runes and everything else stays with the host.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "steer left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "steer right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "steer up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "steer down"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// MapKey translates a key message into game input events.
// Host keys (quit, help, screenshot) must be handled before calling it;
// keys the game has no use for yield no events.
func (k KeyMap) MapKey(msg tea.KeyMsg) []core.InputEvent {
	switch {
	case key.Matches(msg, k.Left):
		return []core.InputEvent{core.KeyEvent(core.KeyLeft)}
	case key.Matches(msg, k.Right):
		return []core.InputEvent{core.KeyEvent(core.KeyRight)}
	case key.Matches(msg, k.Up):
		return []core.InputEvent{core.KeyEvent(core.KeyUp)}
	case key.Matches(msg, k.Down):
		return []core.InputEvent{core.KeyEvent(core.KeyDown)}
	}

	switch msg.Type {
	case tea.KeyRunes:
		// Pasted text arrives as one message with several runes
		events := make([]core.InputEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, core.RuneEvent(r))
		}
		return events
	case tea.KeySpace:
		return []core.InputEvent{core.RuneEvent(' ')}
	}

	return nil
}
