package engine

import "fmt"

// Pose is the rover's position and orientation plus optional wrap limits.
// A limit <= 0 leaves that axis unbounded.
type Pose struct {
	Position    Position    `json:"position"`
	Orientation Orientation `json:"orientation"`
	LimitX      int         `json:"limit_x,omitempty"`
	LimitY      int         `json:"limit_y,omitempty"`
}

// NewPose creates an unbounded pose after validating the orientation
func NewPose(x, y int, orientation Orientation) (Pose, error) {
	if !orientation.IsValid() {
		return Pose{}, fmt.Errorf("%w: %q", ErrInvalidOrientation, string(orientation))
	}
	return Pose{
		Position:    Position{X: x, Y: y},
		Orientation: orientation,
	}, nil
}

// WithWrap returns a copy of p whose coordinates wrap modulo the given limits
func (p Pose) WithWrap(limitX, limitY int) Pose {
	p.LimitX = limitX
	p.LimitY = limitY
	return p
}

// Wraps reports whether any axis has a wrap limit
func (p Pose) Wraps() bool {
	return p.LimitX > 0 || p.LimitY > 0
}

// TurnLeft rotates the pose counter-clockwise in place
func (p *Pose) TurnLeft() error {
	return p.turn(Left)
}

// TurnRight rotates the pose clockwise in place
func (p *Pose) TurnRight() error {
	return p.turn(Right)
}

func (p *Pose) turn(direction TurnDirection) error {
	next, err := Turn(p.Orientation, direction)
	if err != nil {
		return err
	}
	p.Orientation = next
	return nil
}

// NextForward returns the candidate position one step ahead without moving
func (p Pose) NextForward() (Position, error) {
	d, err := ForwardDelta(p.Orientation)
	if err != nil {
		return Position{}, err
	}
	return p.step(d), nil
}

// NextBackward returns the candidate position one step behind without moving
func (p Pose) NextBackward() (Position, error) {
	d, err := BackwardDelta(p.Orientation)
	if err != nil {
		return Position{}, err
	}
	return p.step(d), nil
}

func (p Pose) step(d Delta) Position {
	next := Position{X: p.Position.X + d.DX, Y: p.Position.Y + d.DY}
	if p.LimitX > 0 {
		next.X = FloorMod(next.X, p.LimitX)
	}
	if p.LimitY > 0 {
		next.Y = FloorMod(next.Y, p.LimitY)
	}
	return next
}

// Commit moves the pose to a previously computed candidate
func (p *Pose) Commit(pos Position) {
	p.Position = pos
}
