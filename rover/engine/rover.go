package engine

import "fmt"

// EdgePolicy decides what happens when the rover drives off the planet edge
type EdgePolicy string

const (
	// EdgeWrap wraps coordinates modulo the planet size
	EdgeWrap EdgePolicy = "wrap"
	// EdgeOpen leaves coordinates unbounded; only obstacles stop the rover
	EdgeOpen EdgePolicy = "open"
	// EdgeBounded stops the rover before it leaves the planet
	EdgeBounded EdgePolicy = "bounded"
)

// ParseEdgePolicy converts a config value into an EdgePolicy. Empty means wrap.
func ParseEdgePolicy(s string) (EdgePolicy, error) {
	switch EdgePolicy(s) {
	case "", EdgeWrap:
		return EdgeWrap, nil
	case EdgeOpen:
		return EdgeOpen, nil
	case EdgeBounded:
		return EdgeBounded, nil
	}
	return "", fmt.Errorf("%w: unknown edge policy %q (want wrap, open or bounded)", ErrInvalidConfig, s)
}

// OutcomeStatus tells how a command batch ended
type OutcomeStatus string

const (
	Completed         OutcomeStatus = "completed"
	StoppedAtObstacle OutcomeStatus = "stopped_at_obstacle"
	StoppedAtBoundary OutcomeStatus = "stopped_at_boundary"
	Rejected          OutcomeStatus = "rejected"
)

// Step is one applied command
type Step struct {
	Index       int         `json:"idx"`
	Command     string      `json:"cmd"`
	From        Position    `json:"from"`
	To          Position    `json:"to"`
	Orientation Orientation `json:"orientation"`
}

// Outcome is the structured result of a command batch. Unapplied holds the
// command that stopped the batch followed by everything after it.
type Outcome struct {
	Kind      CommandKind   `json:"kind"`
	Status    OutcomeStatus `json:"status"`
	Requested int           `json:"requested"`
	Applied   int           `json:"applied"`
	Steps     []Step        `json:"steps,omitempty"`
	BlockedAt *Position     `json:"blocked_at,omitempty"`
	Unapplied Commands      `json:"unapplied,omitempty"`
	Pose      Pose          `json:"pose"`
}

// Stopped reports whether the batch ended before its last command
func (o Outcome) Stopped() bool {
	return o.Status != Completed
}

// Clone returns a copy of o with its own slices and blocked cell
func (o Outcome) Clone() Outcome {
	c := o
	c.Steps = append([]Step(nil), o.Steps...)
	c.Unapplied = append(Commands(nil), o.Unapplied...)
	if o.BlockedAt != nil {
		blocked := *o.BlockedAt
		c.BlockedAt = &blocked
	}
	return c
}

// Rover interprets command batches against a planet
type Rover struct {
	pose   Pose
	planet *Planet
	policy EdgePolicy
}

// NewRover binds a pose to a planet. With EdgeWrap (or an empty policy) the
// planet size becomes the pose's wrap limits; other policies clear them.
func NewRover(pose Pose, planet *Planet, policy EdgePolicy) (*Rover, error) {
	if planet == nil {
		return nil, fmt.Errorf("%w: planet is required", ErrInvalidConfig)
	}
	if !pose.Orientation.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOrientation, string(pose.Orientation))
	}
	policy, err := ParseEdgePolicy(string(policy))
	if err != nil {
		return nil, err
	}

	r := &Rover{planet: planet, policy: policy}
	r.pose = r.applyPolicy(pose)
	return r, nil
}

func (r *Rover) applyPolicy(pose Pose) Pose {
	if r.policy == EdgeWrap {
		return pose.WithWrap(r.planet.SizeX(), r.planet.SizeY())
	}
	return pose.WithWrap(0, 0)
}

// Pose returns a copy of the current pose
func (r *Rover) Pose() Pose {
	return r.pose
}

// SetPose replaces the pose, reapplying the rover's edge policy
func (r *Rover) SetPose(pose Pose) error {
	if !pose.Orientation.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, string(pose.Orientation))
	}
	r.pose = r.applyPolicy(pose)
	return nil
}

// Position returns the current position
func (r *Rover) Position() Position {
	return r.pose.Position
}

// Orientation returns the current orientation
func (r *Rover) Orientation() Orientation {
	return r.pose.Orientation
}

// Planet returns the planet the rover drives on
func (r *Rover) Planet() *Planet {
	return r.planet
}

// Policy returns the rover's edge policy
func (r *Rover) Policy() EdgePolicy {
	return r.policy
}

// Move applies f/b commands in order. An obstacle (or the edge of a bounded
// planet) ends the batch without error. An unknown token returns a
// *CommandError; commands before it stay applied.
func (r *Rover) Move(cmds Commands) (Outcome, error) {
	return r.run(KindMove, cmds)
}

// Turn applies l/r commands in order with the same prefix-applied semantics
func (r *Rover) Turn(cmds Commands) (Outcome, error) {
	return r.run(KindTurn, cmds)
}

// Execute applies a mixed f/b/l/r batch
func (r *Rover) Execute(cmds Commands) (Outcome, error) {
	return r.run(KindExecute, cmds)
}

func (r *Rover) run(kind CommandKind, cmds Commands) (Outcome, error) {
	out := Outcome{
		Kind:      kind,
		Status:    Completed,
		Requested: len(cmds),
	}

	stop := func(i int, status OutcomeStatus) Outcome {
		out.Status = status
		out.Unapplied = append(Commands(nil), cmds[i:]...)
		out.Pose = r.pose
		return out
	}

	for i, token := range cmds {
		if !kind.accepts(token) {
			return stop(i, Rejected), &CommandError{Kind: kind, Index: i, Token: token}
		}

		from := r.pose.Position
		switch token {
		case CmdLeft:
			if err := r.pose.TurnLeft(); err != nil {
				return stop(i, Rejected), err
			}
		case CmdRight:
			if err := r.pose.TurnRight(); err != nil {
				return stop(i, Rejected), err
			}
		default:
			candidate, err := r.candidate(token)
			if err != nil {
				return stop(i, Rejected), err
			}
			if status := r.blocked(candidate); status != Completed {
				out.BlockedAt = &candidate
				return stop(i, status), nil
			}
			r.pose.Commit(candidate)
		}

		out.Applied++
		out.Steps = append(out.Steps, Step{
			Index:       i + 1,
			Command:     token,
			From:        from,
			To:          r.pose.Position,
			Orientation: r.pose.Orientation,
		})
	}

	out.Pose = r.pose
	return out, nil
}

func (r *Rover) candidate(token string) (Position, error) {
	if token == CmdBackward {
		return r.pose.NextBackward()
	}
	return r.pose.NextForward()
}

// blocked returns Completed when the rover may enter pos
func (r *Rover) blocked(pos Position) OutcomeStatus {
	if r.policy == EdgeBounded && !r.planet.InBounds(pos.X, pos.Y) {
		return StoppedAtBoundary
	}
	if r.planet.HasObstacleAt(pos) {
		return StoppedAtObstacle
	}
	return Completed
}
