package engine

import "fmt"

const (
	// Validation constants
	MinPlanetSize    = 1
	MaxPlanetSize    = 500
	MaxBatchCommands = 200

	WebSocketBufferSize = 256
)

// Position represents x,y coordinates. North is +y.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// PlanetConfig describes the planet either by size plus obstacles or by a
// literal grid (north-up, 'o' marks an obstacle).
type PlanetConfig struct {
	Width     int        `json:"width,omitempty" yaml:"width,omitempty"`
	Height    int        `json:"height,omitempty" yaml:"height,omitempty"`
	Edge      string     `json:"edge,omitempty" yaml:"edge,omitempty"`
	Obstacles []Position `json:"obstacles,omitempty" yaml:"obstacles,omitempty"`
	Grid      []string   `json:"grid,omitempty" yaml:"grid,omitempty"`
}

// RoverConfig is the rover's landing pose
type RoverConfig struct {
	X           int    `json:"x" yaml:"x"`
	Y           int    `json:"y" yaml:"y"`
	Orientation string `json:"orientation" yaml:"orientation"`
}

// MissionMessages are the texts reported after a command batch. Blocked and
// Boundary are format strings receiving the x and y of the refused cell.
type MissionMessages struct {
	Welcome   string `json:"welcome,omitempty" yaml:"welcome,omitempty"`
	Blocked   string `json:"blocked,omitempty" yaml:"blocked,omitempty"`
	Boundary  string `json:"boundary,omitempty" yaml:"boundary,omitempty"`
	Completed string `json:"completed,omitempty" yaml:"completed,omitempty"`
}

// MissionConfig represents a mission definition loaded from JSON or YAML
type MissionConfig struct {
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Planet      PlanetConfig    `json:"planet" yaml:"planet"`
	Rover       RoverConfig     `json:"rover" yaml:"rover"`
	Messages    MissionMessages `json:"messages,omitempty" yaml:"messages,omitempty"`
}

// PlanetSummary is the planet as reported to clients
type PlanetSummary struct {
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	Edge      EdgePolicy `json:"edge"`
	Obstacles []Position `json:"obstacles"`
}

// HistoryEntry records one command batch
type HistoryEntry struct {
	Number      int           `json:"number"`
	Kind        CommandKind   `json:"kind"`
	Commands    string        `json:"commands"`
	Status      OutcomeStatus `json:"status"`
	Applied     int           `json:"applied"`
	From        Position      `json:"from_position"`
	To          Position      `json:"to_position"`
	Orientation Orientation   `json:"orientation"`
	Timestamp   int64         `json:"timestamp"`
}

// MissionState represents the complete mission state
type MissionState struct {
	ConfigName  string        `json:"config_name"`
	Position    Position      `json:"position"`
	Orientation Orientation   `json:"orientation"`
	Planet      PlanetSummary `json:"planet"`
	Message     string        `json:"message"`
	LastOutcome *Outcome      `json:"last_outcome,omitempty"`

	// History is cumulative across resets; TotalCommands counts applied commands.
	History       []HistoryEntry `json:"history"`
	TotalCommands int            `json:"total_commands"`

	// CurrentCommands covers only the batches since the last reset.
	CurrentCommands      []HistoryEntry `json:"current_commands"`
	CurrentCommandsCount int            `json:"current_commands_count"`

	// View is a rendered north-up picture of the planet, filled in by callers
	View []string `json:"view,omitempty"`
}

// Clone returns a deep copy of the state that shares nothing with s
func (s *MissionState) Clone() *MissionState {
	if s == nil {
		return nil
	}
	c := *s
	c.Planet.Obstacles = append([]Position(nil), s.Planet.Obstacles...)
	c.History = append([]HistoryEntry{}, s.History...)
	c.CurrentCommands = append([]HistoryEntry{}, s.CurrentCommands...)
	c.View = append([]string(nil), s.View...)
	if s.LastOutcome != nil {
		out := s.LastOutcome.Clone()
		c.LastOutcome = &out
	}
	return &c
}

// CellInfo describes a single planet cell relative to the rover
type CellInfo struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	InBounds bool   `json:"in_bounds"`
	Obstacle bool   `json:"obstacle"`
	Rover    bool   `json:"rover"`
	Distance int    `json:"distance"`
	Cell     string `json:"cell"`
}
