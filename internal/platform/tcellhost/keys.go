package tcellhost

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/glyph-snake/internal/core"
)

func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}

// mapKey translates a tcell key event into a game input event.
func mapKey(ev *tcell.EventKey) (core.InputEvent, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return core.KeyEvent(core.KeyLeft), true
	case tcell.KeyRight:
		return core.KeyEvent(core.KeyRight), true
	case tcell.KeyUp:
		return core.KeyEvent(core.KeyUp), true
	case tcell.KeyDown:
		return core.KeyEvent(core.KeyDown), true
	case tcell.KeyRune:
		return core.RuneEvent(ev.Rune()), true
	}
	return core.InputEvent{}, false
}
