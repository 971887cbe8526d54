package core

import "unicode"

// Key is a decoded non-character key.
type Key int

const (
	KeyOther Key = iota // Any key the game does not react to
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	default:
		return "Other"
	}
}

// EventKind tags the InputEvent variant.
type EventKind int

const (
	EventKey  EventKind = iota // Raw directional/control key, see Key
	EventRune                  // Decoded character
)

// InputEvent is a decoded keyboard event: either a raw key or a character.
// Hosts produce it, the game only consumes it.
type InputEvent struct {
	Kind EventKind
	Key  Key  // Valid when Kind == EventKey
	Rune rune // Valid when Kind == EventRune
}

// KeyEvent builds a raw key event.
func KeyEvent(k Key) InputEvent {
	return InputEvent{Kind: EventKey, Key: k}
}

// RuneEvent builds a character event.
func RuneEvent(r rune) InputEvent {
	return InputEvent{Kind: EventRune, Rune: r}
}

// IsDrawable reports whether r is a printable, non-control glyph.
func IsDrawable(r rune) bool {
	return unicode.IsPrint(r) && !unicode.IsControl(r)
}
