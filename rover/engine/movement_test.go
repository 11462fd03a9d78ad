package engine

import (
	"errors"
	"testing"
)

func TestForwardDelta(t *testing.T) {
	tests := []struct {
		o    Orientation
		want Delta
	}{
		{North, Delta{DX: 0, DY: 1}},
		{South, Delta{DX: 0, DY: -1}},
		{East, Delta{DX: 1, DY: 0}},
		{West, Delta{DX: -1, DY: 0}},
	}

	for _, test := range tests {
		t.Run(string(test.o), func(t *testing.T) {
			got, err := ForwardDelta(test.o)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != test.want {
				t.Errorf("expected %+v, got %+v", test.want, got)
			}

			back, err := BackwardDelta(test.o)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if back != test.want.Negate() {
				t.Errorf("backward: expected %+v, got %+v", test.want.Negate(), back)
			}
		})
	}
}

func TestDeltaRejectsInvalidOrientation(t *testing.T) {
	if _, err := ForwardDelta("up"); !errors.Is(err, ErrInvalidOrientation) {
		t.Errorf("expected ErrInvalidOrientation, got %v", err)
	}
	if _, err := BackwardDelta(""); !errors.Is(err, ErrInvalidOrientation) {
		t.Errorf("expected ErrInvalidOrientation, got %v", err)
	}
}

func TestFloorMod(t *testing.T) {
	tests := []struct {
		a, m, want int
	}{
		{0, 3, 0},
		{2, 3, 2},
		{3, 3, 0},
		{4, 3, 1},
		{-1, 3, 2},
		{-3, 3, 0},
		{-4, 3, 2},
		{-7, 5, 3},
	}

	for _, test := range tests {
		if got := FloorMod(test.a, test.m); got != test.want {
			t.Errorf("FloorMod(%d, %d): expected %d, got %d", test.a, test.m, test.want, got)
		}
	}
}

func TestManhattanDistance(t *testing.T) {
	if d := ManhattanDistance(Position{X: 0, Y: 0}, Position{X: 3, Y: -4}); d != 7 {
		t.Errorf("expected 7, got %d", d)
	}
	if d := ManhattanDistance(Position{X: 2, Y: 2}, Position{X: 2, Y: 2}); d != 0 {
		t.Errorf("expected 0, got %d", d)
	}
}
