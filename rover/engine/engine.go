package engine

import (
	"fmt"
	"time"
)

// Engine provides the main interface for mission operations
type Engine interface {
	// Mission state management
	GetState() *MissionState
	SetState(state *MissionState) error
	Reset() *MissionState
	GetPose() Pose
	GetPlanet() *Planet

	// Command batches
	Move(cmds Commands) (Outcome, error)
	Turn(cmds Commands) (Outcome, error)
	Execute(cmds Commands) (Outcome, error)

	// Configuration
	GetConfig() *MissionConfig
	SetConfig(config *MissionConfig) error

	// History
	GetHistory() []HistoryEntry
	GetLastCommand() *HistoryEntry

	// Inspect describes a single cell relative to the rover
	Inspect(x, y int) CellInfo
}

// MissionEngine implements the Engine interface. It is not safe for
// concurrent use; sessions serialize access.
type MissionEngine struct {
	state  *MissionState
	config *MissionConfig
	rover  *Rover
}

// NewEngine creates a new mission engine with the provided configuration
func NewEngine(config *MissionConfig) (*MissionEngine, error) {
	rover, err := BuildRover(config)
	if err != nil {
		return nil, err
	}

	e := &MissionEngine{
		config: config,
		rover:  rover,
	}
	e.state = e.initialState()
	return e, nil
}

// NewEngineWithDefaults creates a new mission engine with DefaultMissionConfig
func NewEngineWithDefaults() *MissionEngine {
	e, err := NewEngine(DefaultMissionConfig())
	if err != nil {
		panic(fmt.Sprintf("default mission config is invalid: %v", err))
	}
	return e
}

func (e *MissionEngine) initialState() *MissionState {
	planet := e.rover.Planet()
	pose := e.rover.Pose()
	return &MissionState{
		ConfigName:  e.config.Name,
		Position:    pose.Position,
		Orientation: pose.Orientation,
		Planet: PlanetSummary{
			Width:     planet.SizeX(),
			Height:    planet.SizeY(),
			Edge:      e.rover.Policy(),
			Obstacles: planet.Obstacles(),
		},
		Message:         messageOr(e.config.Messages.Welcome, DefaultWelcomeMessage),
		History:         []HistoryEntry{},
		CurrentCommands: []HistoryEntry{},
	}
}

// GetState returns the current mission state
func (e *MissionEngine) GetState() *MissionState {
	return e.state
}

// SetState sets the mission state (used for persistence loading). The rover
// is moved to the state's pose.
func (e *MissionEngine) SetState(state *MissionState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	pose := e.rover.Pose()
	pose.Position = state.Position
	pose.Orientation = state.Orientation
	if err := e.rover.SetPose(pose); err != nil {
		return err
	}
	if state.History == nil {
		state.History = []HistoryEntry{}
	}
	if state.CurrentCommands == nil {
		state.CurrentCommands = []HistoryEntry{}
	}
	e.state = state
	return nil
}

// Reset lands the rover again at its configured start
func (e *MissionEngine) Reset() *MissionState {
	// Preserve cumulative history and totals across resets
	prevHistory := e.state.History
	prevTotal := e.state.TotalCommands

	rover, err := BuildRover(e.config)
	if err == nil {
		e.rover = rover
	}
	e.state = e.initialState()

	// Restore cumulative history; clear only the current segment
	e.state.History = prevHistory
	e.state.TotalCommands = prevTotal

	return e.state
}

// GetPose returns the rover's current pose
func (e *MissionEngine) GetPose() Pose {
	return e.rover.Pose()
}

// GetPlanet returns the mission planet
func (e *MissionEngine) GetPlanet() *Planet {
	return e.rover.Planet()
}

// Move applies forward/backward commands
func (e *MissionEngine) Move(cmds Commands) (Outcome, error) {
	return e.record(cmds, e.rover.Move)
}

// Turn applies left/right commands
func (e *MissionEngine) Turn(cmds Commands) (Outcome, error) {
	return e.record(cmds, e.rover.Turn)
}

// Execute applies a mixed command batch
func (e *MissionEngine) Execute(cmds Commands) (Outcome, error) {
	return e.record(cmds, e.rover.Execute)
}

func (e *MissionEngine) record(cmds Commands, run func(Commands) (Outcome, error)) (Outcome, error) {
	from := e.rover.Position()
	out, err := run(cmds)

	pose := out.Pose
	e.state.Position = pose.Position
	e.state.Orientation = pose.Orientation
	e.state.LastOutcome = &out
	e.state.Message = e.message(out, err)

	entry := HistoryEntry{
		Number:      len(e.state.History) + 1,
		Kind:        out.Kind,
		Commands:    cmds.String(),
		Status:      out.Status,
		Applied:     out.Applied,
		From:        from,
		To:          pose.Position,
		Orientation: pose.Orientation,
		Timestamp:   time.Now().Unix(),
	}
	e.state.History = append(e.state.History, entry)
	e.state.TotalCommands += out.Applied
	e.state.CurrentCommands = append(e.state.CurrentCommands, entry)
	e.state.CurrentCommandsCount += out.Applied

	return out, err
}

func (e *MissionEngine) message(out Outcome, err error) string {
	if err != nil {
		return err.Error()
	}
	switch out.Status {
	case StoppedAtObstacle:
		return fmt.Sprintf(messageOr(e.config.Messages.Blocked, DefaultBlockedMessage), out.BlockedAt.X, out.BlockedAt.Y)
	case StoppedAtBoundary:
		return fmt.Sprintf(messageOr(e.config.Messages.Boundary, DefaultBoundaryMessage), out.BlockedAt.X, out.BlockedAt.Y)
	default:
		return messageOr(e.config.Messages.Completed, DefaultCompletedMessage)
	}
}

// GetConfig returns the current mission configuration
func (e *MissionEngine) GetConfig() *MissionConfig {
	return e.config
}

// SetConfig sets a new mission configuration and lands a fresh rover
func (e *MissionEngine) SetConfig(config *MissionConfig) error {
	rover, err := BuildRover(config)
	if err != nil {
		return err
	}

	e.config = config
	e.rover = rover
	e.state = e.initialState()
	return nil
}

// GetHistory returns the complete command history
func (e *MissionEngine) GetHistory() []HistoryEntry {
	return e.state.History
}

// GetLastCommand returns the last batch, or nil if there is none
func (e *MissionEngine) GetLastCommand() *HistoryEntry {
	if len(e.state.History) == 0 {
		return nil
	}
	return &e.state.History[len(e.state.History)-1]
}

// Inspect describes the cell at (x, y)
func (e *MissionEngine) Inspect(x, y int) CellInfo {
	planet := e.rover.Planet()
	pos := Position{X: x, Y: y}
	return CellInfo{
		X:        x,
		Y:        y,
		InBounds: planet.InBounds(x, y),
		Obstacle: planet.HasObstacleAt(pos),
		Rover:    e.rover.Position() == pos,
		Distance: ManhattanDistance(e.rover.Position(), pos),
		Cell:     string(planet.CellAt(x, y)),
	}
}
