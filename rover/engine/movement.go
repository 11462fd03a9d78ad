package engine

import "fmt"

// Delta is a unit displacement on the planet
type Delta struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

// Negate returns the opposite displacement
func (d Delta) Negate() Delta {
	return Delta{DX: -d.DX, DY: -d.DY}
}

var forwardDeltas = map[Orientation]Delta{
	North: {DX: 0, DY: +1},
	South: {DX: 0, DY: -1},
	East:  {DX: +1, DY: 0},
	West:  {DX: -1, DY: 0},
}

// ForwardDelta returns the displacement of one forward step facing o
func ForwardDelta(o Orientation) (Delta, error) {
	d, ok := forwardDeltas[o]
	if !ok {
		return Delta{}, fmt.Errorf("%w: %q has no movement vector", ErrInvalidOrientation, string(o))
	}
	return d, nil
}

// BackwardDelta returns the displacement of one backward step facing o
func BackwardDelta(o Orientation) (Delta, error) {
	d, err := ForwardDelta(o)
	if err != nil {
		return Delta{}, err
	}
	return d.Negate(), nil
}

// FloorMod returns a mod m in [0, m) for m > 0, also for negative a.
func FloorMod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// ManhattanDistance calculates the Manhattan distance between two positions
func ManhattanDistance(from, to Position) int {
	dx := from.X - to.X
	if dx < 0 {
		dx = -dx
	}
	dy := from.Y - to.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
