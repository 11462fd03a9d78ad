package engine

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func newTestRover(t *testing.T, x, y int, o Orientation, planet *Planet, policy EdgePolicy) *Rover {
	t.Helper()
	pose, err := NewPose(x, y, o)
	if err != nil {
		t.Fatalf("NewPose: %v", err)
	}
	rover, err := NewRover(pose, planet, policy)
	if err != nil {
		t.Fatalf("NewRover: %v", err)
	}
	return rover
}

func wrapping3x3(t *testing.T) *Planet {
	t.Helper()
	planet, err := NewPlanet(3, 3)
	if err != nil {
		t.Fatalf("NewPlanet: %v", err)
	}
	return planet
}

func TestRoverWrappingSequences(t *testing.T) {
	tests := []struct {
		name     string
		start    Orientation
		kind     CommandKind
		commands string
		wantPos  Position
		wantO    Orientation
	}{
		{"backward from origin", North, KindMove, "b", Position{X: 0, Y: 2}, North},
		{"south twice", South, KindMove, "ff", Position{X: 0, Y: 1}, South},
		{"west twice", West, KindMove, "ff", Position{X: 1, Y: 0}, West},
		{"west full lap", West, KindMove, "fff", Position{X: 0, Y: 0}, West},
		{"east back and forth", East, KindMove, "ffbfbf", Position{X: 2, Y: 0}, East},
		{"forward four", North, KindMove, "ffff", Position{X: 0, Y: 1}, North},
		{"forward then back", North, KindMove, "ffbb", Position{X: 0, Y: 0}, North},
		{"forward right forward", North, KindExecute, "frf", Position{X: 1, Y: 1}, East},
		{"square", North, KindExecute, "frfrfrfr", Position{X: 0, Y: 0}, North},
		{"mixed loop", North, KindExecute, "fflbblffrffr", Position{X: 0, Y: 0}, North},
		{"turn only", North, KindTurn, "rrl", Position{X: 0, Y: 0}, East},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rover := newTestRover(t, 0, 0, test.start, wrapping3x3(t), EdgeWrap)

			var out Outcome
			var err error
			switch test.kind {
			case KindMove:
				out, err = rover.Move(Split(test.commands))
			case KindTurn:
				out, err = rover.Turn(Split(test.commands))
			default:
				out, err = rover.Execute(Split(test.commands))
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Status != Completed {
				t.Errorf("expected completed, got %s", out.Status)
			}
			if out.Applied != len(test.commands) {
				t.Errorf("expected %d applied, got %d", len(test.commands), out.Applied)
			}
			if rover.Position() != test.wantPos {
				t.Errorf("expected position %s, got %s", test.wantPos, rover.Position())
			}
			if rover.Orientation() != test.wantO {
				t.Errorf("expected orientation %s, got %s", test.wantO, rover.Orientation())
			}
		})
	}
}

func TestRoverMoveAcrossBatches(t *testing.T) {
	rover := newTestRover(t, 0, 0, North, wrapping3x3(t), EdgeWrap)

	if _, err := rover.Move(Split("ffff")); err != nil {
		t.Fatal(err)
	}
	if rover.Position() != (Position{X: 0, Y: 1}) {
		t.Fatalf("expected (0, 1), got %s", rover.Position())
	}

	if _, err := rover.Move(Commands{"b", "b", "b", "b"}); err != nil {
		t.Fatal(err)
	}
	if rover.Position() != (Position{X: 0, Y: 0}) {
		t.Errorf("expected (0, 0), got %s", rover.Position())
	}
}

func TestRoverStopsAtObstacle(t *testing.T) {
	planet, _ := NewPlanet(3, 3, Position{X: 2, Y: 0})
	rover := newTestRover(t, 0, 0, East, planet, EdgeWrap)

	out, err := rover.Move(Split("fff"))
	if err != nil {
		t.Fatalf("obstacle must not be an error: %v", err)
	}
	if out.Status != StoppedAtObstacle {
		t.Errorf("expected stopped_at_obstacle, got %s", out.Status)
	}
	if rover.Position() != (Position{X: 1, Y: 0}) {
		t.Errorf("expected (1, 0), got %s", rover.Position())
	}
	if out.Applied != 1 || out.Requested != 3 {
		t.Errorf("expected 1 of 3 applied, got %d of %d", out.Applied, out.Requested)
	}
	if out.BlockedAt == nil || *out.BlockedAt != (Position{X: 2, Y: 0}) {
		t.Errorf("expected blocked at (2, 0), got %v", out.BlockedAt)
	}
	if !reflect.DeepEqual(out.Unapplied, Commands{"f", "f"}) {
		t.Errorf("unexpected unapplied commands: %v", out.Unapplied)
	}
	if !out.Stopped() {
		t.Error("expected Stopped() to be true")
	}
}

func TestRoverStopsAtGridObstacle(t *testing.T) {
	planet, _ := NewPlanetFromGrid([]string{
		".o.",
		"...",
		"...",
	})
	rover := newTestRover(t, 0, 2, East, planet, EdgeWrap)

	out, err := rover.Execute(Split("ffrf"))
	if err != nil {
		t.Fatal(err)
	}
	if out.Status != StoppedAtObstacle || rover.Position() != (Position{X: 0, Y: 2}) {
		t.Errorf("expected to stay at (0, 2), got %s (%s)", rover.Position(), out.Status)
	}
	if out.Applied != 0 {
		t.Errorf("expected nothing applied, got %d", out.Applied)
	}
}

func TestRoverObstacleAcrossWrap(t *testing.T) {
	planet, _ := NewPlanet(3, 3, Position{X: 0, Y: 2})
	rover := newTestRover(t, 0, 0, North, planet, EdgeWrap)

	out, err := rover.Move(Split("b"))
	if err != nil {
		t.Fatal(err)
	}
	if out.Status != StoppedAtObstacle || rover.Position() != (Position{X: 0, Y: 0}) {
		t.Errorf("wrapped obstacle not honoured: %s at %s", out.Status, rover.Position())
	}
}

func TestRoverBoundedEdge(t *testing.T) {
	rover := newTestRover(t, 0, 0, North, wrapping3x3(t), EdgeBounded)

	out, err := rover.Move(Split("ffff"))
	if err != nil {
		t.Fatal(err)
	}
	if out.Status != StoppedAtBoundary {
		t.Errorf("expected stopped_at_boundary, got %s", out.Status)
	}
	if rover.Position() != (Position{X: 0, Y: 2}) {
		t.Errorf("expected (0, 2), got %s", rover.Position())
	}
	if out.BlockedAt == nil || *out.BlockedAt != (Position{X: 0, Y: 3}) {
		t.Errorf("expected blocked at (0, 3), got %v", out.BlockedAt)
	}
	if out.Applied != 2 || len(out.Unapplied) != 2 {
		t.Errorf("expected 2 applied and 2 unapplied, got %d and %d", out.Applied, len(out.Unapplied))
	}
}

func TestRoverOpenEdge(t *testing.T) {
	rover := newTestRover(t, 0, 0, South, wrapping3x3(t), EdgeOpen)

	if _, err := rover.Move(Split("ff")); err != nil {
		t.Fatal(err)
	}
	if rover.Position() != (Position{X: 0, Y: -2}) {
		t.Errorf("expected (0, -2), got %s", rover.Position())
	}
	if rover.Pose().Wraps() {
		t.Error("open rover must not wrap")
	}
}

func TestRoverForwardBackwardRoundTrip(t *testing.T) {
	planet, _ := NewPlanet(10, 10)
	for _, o := range AllOrientations() {
		rover := newTestRover(t, 5, 5, o, planet, EdgeOpen)
		if _, err := rover.Move(Split("fb")); err != nil {
			t.Fatal(err)
		}
		if rover.Position() != (Position{X: 5, Y: 5}) {
			t.Errorf("%s: fb ended at %s", o, rover.Position())
		}
		if _, err := rover.Move(Split("bf")); err != nil {
			t.Fatal(err)
		}
		if rover.Position() != (Position{X: 5, Y: 5}) {
			t.Errorf("%s: bf ended at %s", o, rover.Position())
		}
	}
}

func TestRoverWrapInvariant(t *testing.T) {
	planet, _ := NewPlanet(4, 7)
	rover := newTestRover(t, 0, 0, North, planet, EdgeWrap)
	rng := rand.New(rand.NewSource(42))
	alphabet := []string{CmdForward, CmdBackward, CmdLeft, CmdRight}

	for i := 0; i < 500; i++ {
		cmds := make(Commands, 1+rng.Intn(10))
		for j := range cmds {
			cmds[j] = alphabet[rng.Intn(len(alphabet))]
		}
		if _, err := rover.Execute(cmds); err != nil {
			t.Fatal(err)
		}
		pos := rover.Position()
		if !planet.InBounds(pos.X, pos.Y) {
			t.Fatalf("batch %d (%s) left the planet: %s", i, cmds, pos)
		}
	}
}

func TestRoverInvalidCommands(t *testing.T) {
	tests := []struct {
		name string
		kind CommandKind
		cmds Commands
	}{
		{"uppercase move", KindMove, Commands{"F"}},
		{"unknown move", KindMove, Commands{"a"}},
		{"turn in move", KindMove, Commands{"l"}},
		{"uppercase turn", KindTurn, Commands{"L"}},
		{"unknown turn", KindTurn, Commands{"a"}},
		{"move in turn", KindTurn, Commands{"f"}},
		{"multi-char token", KindExecute, Commands{"ff"}},
		{"empty token", KindExecute, Commands{""}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rover := newTestRover(t, 0, 0, North, wrapping3x3(t), EdgeWrap)

			var out Outcome
			var err error
			switch test.kind {
			case KindMove:
				out, err = rover.Move(test.cmds)
			case KindTurn:
				out, err = rover.Turn(test.cmds)
			default:
				out, err = rover.Execute(test.cmds)
			}

			if !errors.Is(err, ErrInvalidCommand) {
				t.Fatalf("expected ErrInvalidCommand, got %v", err)
			}
			var cmdErr *CommandError
			if !errors.As(err, &cmdErr) || cmdErr.Index != 0 {
				t.Errorf("expected CommandError at index 0, got %v", err)
			}
			if out.Status != Rejected || out.Applied != 0 {
				t.Errorf("unexpected outcome: %+v", out)
			}
			if rover.Position() != (Position{X: 0, Y: 0}) || rover.Orientation() != North {
				t.Errorf("rover moved on rejected batch: %+v", rover.Pose())
			}
		})
	}
}

func TestRoverInvalidCommandKeepsPrefix(t *testing.T) {
	rover := newTestRover(t, 0, 0, North, wrapping3x3(t), EdgeWrap)

	out, err := rover.Move(Commands{"f", "F", "f"})
	if !errors.Is(err, ErrInvalidCommand) {
		t.Fatalf("expected ErrInvalidCommand, got %v", err)
	}
	if rover.Position() != (Position{X: 0, Y: 1}) {
		t.Errorf("expected prefix to stay applied at (0, 1), got %s", rover.Position())
	}
	if out.Applied != 1 || !reflect.DeepEqual(out.Unapplied, Commands{"F", "f"}) {
		t.Errorf("unexpected outcome: applied %d, unapplied %v", out.Applied, out.Unapplied)
	}
	if out.Pose.Position != rover.Position() {
		t.Errorf("outcome pose %s does not match rover %s", out.Pose.Position, rover.Position())
	}
}

func TestRoverSteps(t *testing.T) {
	rover := newTestRover(t, 0, 0, North, wrapping3x3(t), EdgeWrap)

	out, err := rover.Execute(Split("fr"))
	if err != nil {
		t.Fatal(err)
	}
	want := []Step{
		{Index: 1, Command: "f", From: Position{X: 0, Y: 0}, To: Position{X: 0, Y: 1}, Orientation: North},
		{Index: 2, Command: "r", From: Position{X: 0, Y: 1}, To: Position{X: 0, Y: 1}, Orientation: East},
	}
	if !reflect.DeepEqual(out.Steps, want) {
		t.Errorf("unexpected steps:\n got %+v\nwant %+v", out.Steps, want)
	}
}

func TestRoverEmptyBatch(t *testing.T) {
	rover := newTestRover(t, 1, 1, West, wrapping3x3(t), EdgeWrap)
	out, err := rover.Move(nil)
	if err != nil {
		t.Fatal(err)
	}
	if out.Status != Completed || out.Applied != 0 || out.Pose.Position != (Position{X: 1, Y: 1}) {
		t.Errorf("unexpected outcome for empty batch: %+v", out)
	}
}

func TestNewRoverValidation(t *testing.T) {
	pose, _ := NewPose(0, 0, North)
	if _, err := NewRover(pose, nil, EdgeWrap); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for nil planet, got %v", err)
	}
	if _, err := NewRover(pose, wrapping3x3(t), EdgePolicy("spiral")); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for unknown policy, got %v", err)
	}
	if _, err := NewRover(Pose{Orientation: "Q"}, wrapping3x3(t), EdgeWrap); !errors.Is(err, ErrInvalidOrientation) {
		t.Errorf("expected ErrInvalidOrientation, got %v", err)
	}

	rover, err := NewRover(pose, wrapping3x3(t), "")
	if err != nil {
		t.Fatal(err)
	}
	if rover.Policy() != EdgeWrap || rover.Pose().LimitX != 3 || rover.Pose().LimitY != 3 {
		t.Errorf("empty policy should wrap at planet size, got %s %+v", rover.Policy(), rover.Pose())
	}
}

func TestCommandsUnmarshalJSON(t *testing.T) {
	var fromString Commands
	if err := fromString.UnmarshalJSON([]byte(`"ffb"`)); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(fromString, Commands{"f", "f", "b"}) {
		t.Errorf("unexpected commands: %v", fromString)
	}

	var fromList Commands
	if err := fromList.UnmarshalJSON([]byte(`["l","r"]`)); err != nil {
		t.Fatal(err)
	}
	if fromList.String() != "lr" {
		t.Errorf("unexpected commands: %v", fromList)
	}

	var bad Commands
	if err := bad.UnmarshalJSON([]byte(`42`)); err == nil {
		t.Error("expected error for numeric commands")
	}
}
