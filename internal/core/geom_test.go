package core

import "testing"

func TestNewModNormalizes(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		modulus  int
		expected int
	}{
		{"in range", 5, 80, 5},
		{"zero", 0, 80, 0},
		{"at modulus", 80, 80, 0},
		{"above modulus", 165, 80, 5},
		{"minus one", -1, 80, 79},
		{"large negative", -161, 80, 79},
		{"height modulus", -1, 25, 24},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMod(tc.value, tc.modulus)
			if m.Value() != tc.expected {
				t.Errorf("NewMod(%d, %d).Value() = %d, expected %d", tc.value, tc.modulus, m.Value(), tc.expected)
			}
			if m.Modulus() != tc.modulus {
				t.Errorf("Modulus() = %d, expected %d", m.Modulus(), tc.modulus)
			}
		})
	}
}

func TestModAddSub(t *testing.T) {
	tests := []struct {
		name    string
		start   int
		delta   int
		add     int
		sub     int
		modulus int
	}{
		{"simple", 10, 3, 13, 7, 80},
		{"wrap up", 79, 1, 0, 78, 80},
		{"wrap down", 0, 1, 1, 79, 80},
		{"negative delta", 0, -1, 79, 1, 80},
		{"delta larger than modulus", 12, 27, 14, 10, 25},
		{"negative delta larger than modulus", 12, -27, 10, 14, 25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMod(tc.start, tc.modulus)
			if got := m.Add(tc.delta).Value(); got != tc.add {
				t.Errorf("Add(%d) = %d, expected %d", tc.delta, got, tc.add)
			}
			if got := m.Sub(tc.delta).Value(); got != tc.sub {
				t.Errorf("Sub(%d) = %d, expected %d", tc.delta, got, tc.sub)
			}
		})
	}
}

func TestModAddIsImmutable(t *testing.T) {
	m := NewMod(40, 80)
	_ = m.Add(5)
	if m.Value() != 40 {
		t.Errorf("Add should return a new value, original changed to %d", m.Value())
	}
}

func TestModInversePair(t *testing.T) {
	for start := 0; start < 80; start++ {
		m := NewMod(start, 80)
		if got := m.Add(1).Sub(1).Value(); got != start {
			t.Fatalf("Add(1).Sub(1) from %d = %d", start, got)
		}
		if got := m.Sub(1).Add(1).Value(); got != start {
			t.Fatalf("Sub(1).Add(1) from %d = %d", start, got)
		}
	}
}

func TestModRepeatedAdd(t *testing.T) {
	// n steps of delta equal (start + n*delta) mod N
	m := NewMod(40, 80)
	for n := 1; n <= 500; n++ {
		m = m.Add(3)
		expected := (40 + n*3) % 80
		if m.Value() != expected {
			t.Fatalf("after %d steps value = %d, expected %d", n, m.Value(), expected)
		}
	}
}

func TestModSigned(t *testing.T) {
	tests := []struct {
		value, modulus, expected int
	}{
		{0, 80, 0},
		{1, 80, 1},
		{79, 80, -1},
		{78, 80, -2},
		{24, 25, -1},
		{12, 25, 12},
	}

	for _, tc := range tests {
		if got := NewMod(tc.value, tc.modulus).Signed(); got != tc.expected {
			t.Errorf("NewMod(%d, %d).Signed() = %d, expected %d", tc.value, tc.modulus, got, tc.expected)
		}
	}
}

func TestNewModPanicsOnBadModulus(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewMod with zero modulus should panic")
		}
	}()
	NewMod(1, 0)
}
