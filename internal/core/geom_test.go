package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "actor over hostile",
			a:        NewRect(96, 272, 48, 48),
			b:        NewRect(110, 288, 32, 32),
			expected: true,
		},
		{
			name:     "side by side",
			a:        NewRect(0, 0, 48, 48),
			b:        NewRect(60, 0, 32, 32),
			expected: false,
		},
		{
			name:     "touching edges do not intersect",
			a:        NewRect(0, 0, 48, 48),
			b:        NewRect(48, 0, 32, 32),
			expected: false,
		},
		{
			name:     "touching vertically",
			a:        NewRect(0, 0, 48, 48),
			b:        NewRect(0, 48, 16, 16),
			expected: false,
		},
		{
			name:     "melee box contains hostile",
			a:        NewRect(70, 246, 100, 100),
			b:        NewRect(100, 280, 32, 32),
			expected: true,
		},
		{
			name:     "single pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
		{
			name:     "empty rect never intersects",
			a:        NewRect(0, 0, 0, 10),
			b:        NewRect(0, 0, 10, 10),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	// Ground platform: tiles (0,17,30,2) at 32px.
	r := NewRect(0, 544, 960, 64)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 0, 544, true},
		{"inside", 400, 560, true},
		{"just above", 400, 543, false},
		{"right edge exclusive", 960, 560, false},
		{"bottom edge exclusive", 10, 608, false},
		{"negative x", -1, 560, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestRectScale(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		expected Rect
	}{
		{"aligned", NewRect(0, 0, 20, 50), NewRect(0, 0, 2, 2)},
		{"partial cells round outward", NewRect(15, 30, 10, 10), NewRect(1, 1, 2, 1)},
		{"negative origin", NewRect(-5, -5, 10, 10), NewRect(-1, -1, 2, 2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Scale(10, 25); got != tc.expected {
				t.Errorf("Scale() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestVec2(t *testing.T) {
	v := V(1.5, -2).Add(V(0.5, 0.5))
	if v.X != 2 || v.Y != -1.5 {
		t.Errorf("Add() = %+v, expected {2 -1.5}", v)
	}
	d := v.Sub(V(2, 2))
	if d.X != 0 || d.Y != -3.5 {
		t.Errorf("Sub() = %+v, expected {0 -3.5}", d)
	}
	s := V(2, -4).Scale(0.5)
	if s.X != 1 || s.Y != -2 {
		t.Errorf("Scale() = %+v, expected {1 -2}", s)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{4.2, -5, 5, 4.2},
		{5.8, -5, 5, 5},
		{-7.3, -5, 5, -5},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestAbsMin(t *testing.T) {
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned wrong value")
	}
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min returned wrong value")
	}
}
