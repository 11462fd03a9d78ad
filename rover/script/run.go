package script

import (
	"context"
	"errors"
	"fmt"

	"github.com/wricardo/mcp-training/marsrover/rover/engine"
)

var ErrExpectationFailed = errors.New("expectation failed")

// Config turns the setup statements into a validated mission configuration
func (m *Mission) Config(name string) (*engine.MissionConfig, error) {
	config := &engine.MissionConfig{Name: name}

	for _, stmt := range m.Statements {
		switch {
		case stmt.Planet != nil:
			config.Planet.Width = stmt.Planet.Width
			config.Planet.Height = stmt.Planet.Height
			config.Planet.Edge = stmt.Planet.Edge
		case stmt.Grid != nil:
			config.Planet.Grid = stmt.Grid.Rows
			config.Planet.Edge = stmt.Grid.Edge
		case stmt.Obstacle != nil:
			config.Planet.Obstacles = append(config.Planet.Obstacles, engine.Position{X: stmt.Obstacle.X, Y: stmt.Obstacle.Y})
		case stmt.Rover != nil:
			config.Rover = engine.RoverConfig{X: stmt.Rover.X, Y: stmt.Rover.Y, Orientation: stmt.Rover.Orientation}
		}
	}

	if err := engine.ValidateMissionConfig(config); err != nil {
		return nil, fmt.Errorf("%w: %v", engine.ErrInvalidConfig, err)
	}
	return config, nil
}

// Result is one executed command or checked expectation
type Result struct {
	Line     int             `json:"line"`
	Kind     string          `json:"kind"`
	Commands string          `json:"commands,omitempty"`
	Outcome  *engine.Outcome `json:"outcome,omitempty"`
	Message  string          `json:"message"`
	Pose     engine.Pose     `json:"pose"`
	Planet   *engine.Planet  `json:"-"`
}

// Report summarizes a script run
type Report struct {
	Config       *engine.MissionConfig `json:"config"`
	Results      []Result              `json:"results"`
	Final        engine.Pose           `json:"final"`
	TotalApplied int                   `json:"total_applied"`
	Expectations int                   `json:"expectations"`
}

// Observer is called after each statement that touches the rover
type Observer func(Result)

// Run executes the mission's commands in order. It stops at the first
// invalid command or failed expectation and returns the report so far.
func Run(ctx context.Context, mission *Mission, observe Observer) (*Report, error) {
	config, err := mission.Config("script")
	if err != nil {
		return nil, err
	}
	eng, err := engine.NewEngine(config)
	if err != nil {
		return nil, err
	}

	report := &Report{Config: config}
	emit := func(r Result) {
		r.Pose = eng.GetPose()
		r.Planet = eng.GetPlanet()
		report.Results = append(report.Results, r)
		report.Final = r.Pose
		if observe != nil {
			observe(r)
		}
	}
	report.Final = eng.GetPose()

	for _, stmt := range mission.Statements {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		switch {
		case stmt.Command != nil:
			cmds := engine.Split(stmt.Command.Commands)
			var out engine.Outcome
			var runErr error
			switch stmt.Command.Verb {
			case "move":
				out, runErr = eng.Move(cmds)
			case "turn":
				out, runErr = eng.Turn(cmds)
			default:
				out, runErr = eng.Execute(cmds)
			}
			report.TotalApplied += out.Applied
			emit(Result{
				Line:     stmt.Pos.Line,
				Kind:     stmt.Command.Verb,
				Commands: stmt.Command.Commands,
				Outcome:  &out,
				Message:  eng.GetState().Message,
			})
			if runErr != nil {
				return report, fmt.Errorf("line %d: %w", stmt.Pos.Line, runErr)
			}

		case stmt.Expect != nil:
			report.Expectations++
			want := engine.Position{X: stmt.Expect.X, Y: stmt.Expect.Y}
			pose := eng.GetPose()
			ok := pose.Position == want && string(pose.Orientation) == stmt.Expect.Orientation
			msg := fmt.Sprintf("expected %s %s, rover at %s %s", want, stmt.Expect.Orientation, pose.Position, pose.Orientation)
			if ok {
				msg = fmt.Sprintf("rover at %s %s", pose.Position, pose.Orientation)
			}
			emit(Result{Line: stmt.Pos.Line, Kind: "expect", Message: msg})
			if !ok {
				return report, fmt.Errorf("%w: line %d: %s", ErrExpectationFailed, stmt.Pos.Line, msg)
			}
		}
	}

	return report, nil
}
