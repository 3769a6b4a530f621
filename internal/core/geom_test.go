package core

import (
	"errors"
	"testing"
)

func TestPointAdd(t *testing.T) {
	got := Pt(2, 3).Add(Pt(-1, 4))
	if got != Pt(1, 7) {
		t.Errorf("Add() = %v, expected (1,7)", got)
	}
}

func TestPointAdjacent(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Point
		expected bool
	}{
		{"right neighbour", Pt(1, 1), Pt(2, 1), true},
		{"upper neighbour", Pt(1, 1), Pt(1, 0), true},
		{"same cell", Pt(1, 1), Pt(1, 1), false},
		{"diagonal", Pt(1, 1), Pt(2, 2), false},
		{"two apart", Pt(0, 0), Pt(2, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Adjacent(tc.b); got != tc.expected {
				t.Errorf("Adjacent() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Adjacent(tc.a); got != tc.expected {
				t.Errorf("Adjacent() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDirectionUnitAndOpposite(t *testing.T) {
	tests := []struct {
		dir      Direction
		unit     Point
		opposite Direction
	}{
		{Up, Pt(0, -1), Down},
		{Down, Pt(0, 1), Up},
		{Left, Pt(-1, 0), Right},
		{Right, Pt(1, 0), Left},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := tc.dir.Unit(); got != tc.unit {
				t.Errorf("Unit() = %v, expected %v", got, tc.unit)
			}
			if got := tc.dir.Opposite(); got != tc.opposite {
				t.Errorf("Opposite() = %v, expected %v", got, tc.opposite)
			}
			// A direction and its opposite cancel out.
			if sum := tc.dir.Unit().Add(tc.opposite.Unit()); sum != Pt(0, 0) {
				t.Errorf("unit + opposite unit = %v, expected origin", sum)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	for _, name := range []string{"up", "DOWN", " Left ", "right"} {
		if _, err := ParseDirection(name); err != nil {
			t.Errorf("ParseDirection(%q) failed: %v", name, err)
		}
	}

	if _, err := ParseDirection("north"); !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("ParseDirection(north) error = %v, expected ErrUnknownDirection", err)
	}
}

func TestGridContains(t *testing.T) {
	g := Grid{W: 20, H: 15}

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"origin", Pt(0, 0), true},
		{"far corner", Pt(19, 14), true},
		{"left of grid", Pt(-1, 5), false},
		{"right edge (exclusive)", Pt(20, 0), false},
		{"above grid", Pt(3, -1), false},
		{"bottom edge (exclusive)", Pt(3, 15), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}

	if g.Cells() != 300 {
		t.Errorf("Cells() = %d, expected 300", g.Cells())
	}
}

func TestCommandDirection(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		cmd := TurnCommand(d)
		got, ok := cmd.Direction()
		if !ok || got != d {
			t.Errorf("TurnCommand(%v).Direction() = %v, %v", d, got, ok)
		}
	}

	if _, ok := CommandTogglePause.Direction(); ok {
		t.Error("TogglePause should not carry a direction")
	}
}

func TestClampAndAbs(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}
	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned a wrong value")
	}
}
