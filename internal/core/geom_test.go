package core

import "testing"

func TestPointWrap(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		expected Point
	}{
		{"inside", Pt(3, 4), Pt(3, 4)},
		{"left edge", Pt(-1, 4), Pt(20, 4)},
		{"right edge", Pt(21, 4), Pt(0, 4)},
		{"top edge", Pt(3, -1), Pt(3, 20)},
		{"bottom edge", Pt(3, 21), Pt(3, 0)},
		{"corner", Pt(-1, -1), Pt(20, 20)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.p.Wrap(21, 21)
			if result != tc.expected {
				t.Errorf("Wrap() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestPointIn(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"origin", Pt(0, 0), true},
		{"last cell", Pt(9, 14), true},
		{"x too large", Pt(10, 0), false},
		{"y too large", Pt(0, 15), false},
		{"negative", Pt(-1, 3), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.In(10, 15); got != tc.expected {
				t.Errorf("In(10, 15) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPointAdd(t *testing.T) {
	if got := Pt(5, 5).Add(0, -1); got != Pt(5, 4) {
		t.Errorf("Add(0, -1) = %v, expected (5,4)", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
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
}

func TestMod(t *testing.T) {
	tests := []struct {
		a, n, expected int
	}{
		{5, 10, 5},
		{10, 10, 0},
		{-1, 10, 9},
		{-11, 10, 9},
	}

	for _, tc := range tests {
		if got := Mod(tc.a, tc.n); got != tc.expected {
			t.Errorf("Mod(%d, %d) = %d, expected %d", tc.a, tc.n, got, tc.expected)
		}
	}
}
