package core

import "testing"

func TestDrawNumber(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		expected string
	}{
		{"zero", 0, "0"},
		{"single digit", 7, "7"},
		{"ten", 10, "10"},
		{"four digits", 1234, "1234"},
		{"trailing zeros", 1000, "1000"},
		{"inner zeros", 90807, "90807"},
		{"negative", -42, "-42"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var rec Recorder
			n := DrawNumber(&rec, tc.n, 0, 0, ColorYellow, ColorBlack)
			if n != len(tc.expected) {
				t.Errorf("DrawNumber returned %d cells, expected %d", n, len(tc.expected))
			}
			if len(rec.Cmds) != len(tc.expected) {
				t.Fatalf("recorded %d draws, expected %d", len(rec.Cmds), len(tc.expected))
			}
			for i, want := range tc.expected {
				cmd := rec.Cmds[i]
				if cmd.Glyph != want || cmd.X != i || cmd.Y != 0 {
					t.Errorf("draw %d = %q at (%d,%d), expected %q at (%d,0)", i, cmd.Glyph, cmd.X, cmd.Y, want, i)
				}
				if cmd.Fg != ColorYellow || cmd.Bg != ColorBlack {
					t.Errorf("draw %d colors = %v/%v, expected yellow/black", i, cmd.Fg, cmd.Bg)
				}
			}
		})
	}
}

func TestDrawNumberAtOffset(t *testing.T) {
	s := NewScreen(20, 5)
	DrawNumber(s, 1234, 3, 2, ColorYellow, ColorBlack)

	if got := s.Row(2)[3:7]; got != "1234" {
		t.Errorf("row 2 [3:7] = %q, expected %q", got, "1234")
	}
	if s.Get(2, 2) != ' ' || s.Get(7, 2) != ' ' {
		t.Error("DrawNumber should not touch cells outside its digits")
	}
}

func TestReplay(t *testing.T) {
	cmds := []DrawCmd{
		{Glyph: '@', X: 2, Y: 2, Fg: ColorCyan, Bg: ColorBlack},
		{Glyph: 'W', X: 1, Y: 1, Fg: ColorRed, Bg: ColorBlack},
		{Glyph: ' ', X: 2, Y: 2, Fg: ColorBlack, Bg: ColorBlack},
	}

	s := NewScreen(5, 5)
	Replay(s, cmds)

	if s.Get(1, 1) != 'W' {
		t.Errorf("expected 'W' at (1,1), got %q", s.Get(1, 1))
	}
	// Later commands win
	if s.Get(2, 2) != ' ' {
		t.Errorf("expected cleared cell at (2,2), got %q", s.Get(2, 2))
	}

	var rec Recorder
	Replay(&rec, cmds)
	if len(rec.Cmds) != len(cmds) {
		t.Fatalf("recorder got %d commands, expected %d", len(rec.Cmds), len(cmds))
	}
	for i := range cmds {
		if rec.Cmds[i] != cmds[i] {
			t.Errorf("command %d = %+v, expected %+v", i, rec.Cmds[i], cmds[i])
		}
	}

	rec.Reset()
	if len(rec.Cmds) != 0 {
		t.Error("Reset should drop recorded commands")
	}
}

func TestInputEvents(t *testing.T) {
	ev := KeyEvent(KeyLeft)
	if ev.Kind != EventKey || ev.Key != KeyLeft {
		t.Errorf("KeyEvent(KeyLeft) = %+v", ev)
	}

	ev = RuneEvent('a')
	if ev.Kind != EventRune || ev.Rune != 'a' {
		t.Errorf("RuneEvent('a') = %+v", ev)
	}

	tests := []struct {
		r        rune
		drawable bool
	}{
		{'a', true},
		{'Z', true},
		{'7', true},
		{'@', true},
		{' ', true},
		{'\n', false},
		{'\x1b', false},
		{'\x00', false},
	}
	for _, tc := range tests {
		if got := IsDrawable(tc.r); got != tc.drawable {
			t.Errorf("IsDrawable(%q) = %v, expected %v", tc.r, got, tc.drawable)
		}
	}
}

func TestColors(t *testing.T) {
	required := []Color{ColorBlack, ColorRed, ColorCyan, ColorYellow}
	seen := make(map[int]bool)
	for _, c := range required {
		idx := c.ANSI()
		if idx < 0 {
			t.Errorf("%v has no ANSI index", c)
		}
		if seen[idx] {
			t.Errorf("%v shares ANSI index %d with another required color", c, idx)
		}
		seen[idx] = true

		parsed, err := ParseColor(c.String())
		if err != nil {
			t.Errorf("ParseColor(%q) failed: %v", c.String(), err)
		}
		if parsed != c {
			t.Errorf("ParseColor(%q) = %v, expected %v", c.String(), parsed, c)
		}
	}

	if c, err := ParseColor("  Cyan "); err != nil || c != ColorCyan {
		t.Errorf("ParseColor should ignore case and spaces, got %v, %v", c, err)
	}
	if _, err := ParseColor("chartreuse"); err == nil {
		t.Error("ParseColor should reject unknown names")
	}
	if ColorDefault.ANSI() != -1 {
		t.Errorf("ColorDefault.ANSI() = %d, expected -1", ColorDefault.ANSI())
	}
}
