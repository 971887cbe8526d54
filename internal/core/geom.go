// Package core provides fundamental types and utilities for the glyph board.
// It contains no external dependencies (especially no Bubble Tea or tcell) to
// keep game logic pure and testable.
package core

// Board dimensions shared by the game and every renderer.
// BoardWidth is also the capacity of the snake glyph buffer.
const (
	BoardWidth  = 80
	BoardHeight = 25
)

// Point represents a board cell.
type Point struct {
	X, Y int
}

// Mod is an integer confined to [0, modulus) with wrap-around arithmetic.
// All coordinate and velocity math goes through Mod so the wrap invariant
// lives in one place.
type Mod struct {
	value   int
	modulus int
}

// NewMod returns value reduced into [0, modulus). Negative values wrap from
// the top. Panics if modulus is not positive.
func NewMod(value, modulus int) Mod {
	if modulus <= 0 {
		panic("core: modulus must be positive")
	}
	return Mod{value: wrap(value, modulus), modulus: modulus}
}

// Value returns the reduced value.
func (m Mod) Value() int {
	return m.value
}

// Modulus returns the modulus.
func (m Mod) Modulus() int {
	return m.modulus
}

// Add returns m + delta, wrapped.
func (m Mod) Add(delta int) Mod {
	return Mod{value: wrap(m.value+wrap(delta, m.modulus), m.modulus), modulus: m.modulus}
}

// Sub returns m - delta, wrapped.
func (m Mod) Sub(delta int) Mod {
	return m.Add(-wrap(delta, m.modulus))
}

// Signed returns the value as the nearest signed step: values past the
// midpoint are reported as negative (e.g. 79 mod 80 is -1).
func (m Mod) Signed() int {
	if m.value > m.modulus/2 {
		return m.value - m.modulus
	}
	return m.value
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
