package engine

import (
	"fmt"
	"strings"
)

// Default mission messages
const (
	DefaultWelcomeMessage   = "Rover landed. Awaiting commands."
	DefaultBlockedMessage   = "Obstacle detected at (%d, %d). Rover stopped."
	DefaultBoundaryMessage  = "Planet edge reached at (%d, %d). Rover stopped."
	DefaultCompletedMessage = "All commands executed."
)

// ValidateMissionConfig validates a mission configuration for correctness
func ValidateMissionConfig(config *MissionConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is required")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}

	edge, err := ParseEdgePolicy(config.Planet.Edge)
	if err != nil {
		return fmt.Errorf("config validation: planet.edge: %w", err)
	}

	width, height := config.Planet.Width, config.Planet.Height
	if len(config.Planet.Grid) > 0 {
		if len(config.Planet.Obstacles) > 0 {
			return fmt.Errorf("config validation: planet.grid and planet.obstacles are mutually exclusive")
		}
		gridHeight := len(config.Planet.Grid)
		gridWidth := len(config.Planet.Grid[0])
		for i, row := range config.Planet.Grid {
			if len(row) != gridWidth {
				return fmt.Errorf("config validation: grid row %d must have %d characters, got %d", i+1, gridWidth, len(row))
			}
		}
		if width != 0 && width != gridWidth {
			return fmt.Errorf("config validation: planet.width %d does not match grid width %d", width, gridWidth)
		}
		if height != 0 && height != gridHeight {
			return fmt.Errorf("config validation: planet.height %d does not match grid height %d", height, gridHeight)
		}
		width, height = gridWidth, gridHeight
	}

	if width < MinPlanetSize || width > MaxPlanetSize {
		return fmt.Errorf("config validation: planet width must be between %d and %d, got %d", MinPlanetSize, MaxPlanetSize, width)
	}
	if height < MinPlanetSize || height > MaxPlanetSize {
		return fmt.Errorf("config validation: planet height must be between %d and %d, got %d", MinPlanetSize, MaxPlanetSize, height)
	}

	// Obstacles off the planet can only be reached on an open planet
	if edge != EdgeOpen {
		for _, obs := range config.Planet.Obstacles {
			if obs.X < 0 || obs.X >= width || obs.Y < 0 || obs.Y >= height {
				return fmt.Errorf("config validation: obstacle %s lies outside the %dx%d planet", obs, width, height)
			}
		}
	}

	if _, err := ParseOrientation(config.Rover.Orientation); err != nil {
		return fmt.Errorf("config validation: rover.orientation: %w", err)
	}

	rx, ry := config.Rover.X, config.Rover.Y
	if rx < 0 || rx >= width || ry < 0 || ry >= height {
		return fmt.Errorf("config validation: rover start (%d, %d) lies outside the %dx%d planet", rx, ry, width, height)
	}

	planet, err := BuildPlanet(config)
	if err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	if planet.HasObstacle(rx, ry) {
		return fmt.Errorf("config validation: rover start (%d, %d) is an obstacle", rx, ry)
	}

	for field, msg := range map[string]string{
		"messages.blocked":  config.Messages.Blocked,
		"messages.boundary": config.Messages.Boundary,
	} {
		if msg != "" && !formatsCoordinates(msg) {
			return fmt.Errorf("config validation: %s must format x and y with two integer verbs such as %%d", field)
		}
	}

	return nil
}

// formatsCoordinates reports whether msg renders both coordinates of a
// refused cell without any formatting errors
func formatsCoordinates(msg string) bool {
	const x, y = 1234567, 7654321
	out := fmt.Sprintf(msg, x, y)
	return !strings.Contains(out, "%!") &&
		strings.Contains(out, fmt.Sprint(x)) &&
		strings.Contains(out, fmt.Sprint(y))
}

// BuildPlanet creates the planet a configuration describes
func BuildPlanet(config *MissionConfig) (*Planet, error) {
	if len(config.Planet.Grid) > 0 {
		return NewPlanetFromGrid(config.Planet.Grid)
	}
	return NewPlanet(config.Planet.Width, config.Planet.Height, config.Planet.Obstacles...)
}

// BuildRover validates the configuration and lands a rover on its planet
func BuildRover(config *MissionConfig) (*Rover, error) {
	if err := ValidateMissionConfig(config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	planet, err := BuildPlanet(config)
	if err != nil {
		return nil, err
	}
	orientation, err := ParseOrientation(config.Rover.Orientation)
	if err != nil {
		return nil, err
	}
	pose, err := NewPose(config.Rover.X, config.Rover.Y, orientation)
	if err != nil {
		return nil, err
	}
	return NewRover(pose, planet, EdgePolicy(config.Planet.Edge))
}

// DefaultMissionConfig returns the built-in 5x5 wrapping mission
func DefaultMissionConfig() *MissionConfig {
	return &MissionConfig{
		Name:        "default",
		Description: "A 5x5 wrapping planet with a single boulder",
		Planet: PlanetConfig{
			Width:     5,
			Height:    5,
			Edge:      string(EdgeWrap),
			Obstacles: []Position{{X: 2, Y: 2}},
		},
		Rover: RoverConfig{X: 0, Y: 0, Orientation: string(North)},
		Messages: MissionMessages{
			Welcome:   DefaultWelcomeMessage,
			Blocked:   DefaultBlockedMessage,
			Boundary:  DefaultBoundaryMessage,
			Completed: DefaultCompletedMessage,
		},
	}
}

// CopyConfig returns a deep copy of config
func CopyConfig(config *MissionConfig) *MissionConfig {
	if config == nil {
		return nil
	}
	c := *config
	c.Planet.Obstacles = append([]Position(nil), config.Planet.Obstacles...)
	c.Planet.Grid = append([]string(nil), config.Planet.Grid...)
	return &c
}

func messageOr(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}
