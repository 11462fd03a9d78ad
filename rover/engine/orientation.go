package engine

import "fmt"

// Orientation is one of the four compass points the rover can face
type Orientation string

const (
	North Orientation = "N"
	East  Orientation = "E"
	South Orientation = "S"
	West  Orientation = "W"
)

// orientationOrder is the clockwise cycle used for turning
var orientationOrder = [...]Orientation{North, East, South, West}

// TurnDirection is a step along orientationOrder
type TurnDirection int

const (
	Left  TurnDirection = -1
	Right TurnDirection = +1
)

// AllOrientations returns the orientations in clockwise order
func AllOrientations() []Orientation {
	return orientationOrder[:]
}

// ParseOrientation converts a symbol ("N", "E", "S", "W") into an Orientation
func ParseOrientation(symbol string) (Orientation, error) {
	o := Orientation(symbol)
	if !o.IsValid() {
		return "", fmt.Errorf("%w: %q not in %v", ErrInvalidOrientation, symbol, orientationOrder)
	}
	return o, nil
}

// IsValid reports whether o is one of the four recognized symbols
func (o Orientation) IsValid() bool {
	_, err := o.index()
	return err == nil
}

// Name returns the long name of the orientation
func (o Orientation) Name() string {
	switch o {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

func (o Orientation) index() (int, error) {
	for i, candidate := range orientationOrder {
		if candidate == o {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q not in %v", ErrInvalidOrientation, string(o), orientationOrder)
}

// Turn moves one step along the clockwise cycle: Right is +1, Left is -1.
func Turn(current Orientation, direction TurnDirection) (Orientation, error) {
	if direction != Left && direction != Right {
		return "", fmt.Errorf("%w: turn direction %d", ErrInvalidCommand, direction)
	}
	idx, err := current.index()
	if err != nil {
		return "", err
	}
	next := FloorMod(idx+int(direction), len(orientationOrder))
	return orientationOrder[next], nil
}

// Left returns the orientation after a counter-clockwise quarter turn
func (o Orientation) Left() (Orientation, error) {
	return Turn(o, Left)
}

// Right returns the orientation after a clockwise quarter turn
func (o Orientation) Right() (Orientation, error) {
	return Turn(o, Right)
}
