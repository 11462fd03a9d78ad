// Package engine provides the core rover logic for the Mars Rover mission server.
//
// The engine package implements:
//   - The four-way compass orientation and its cyclic turning order
//   - Forward/backward displacement vectors per orientation
//   - Planets backed by an explicit obstacle set or a literal character grid
//   - The rover pose state machine with optional per-axis wrap-around
//   - Command interpretation with prefix-applied, obstacle-truncated semantics
//   - Mission configuration validation and the session-facing MissionEngine
//
// Core Types:
//
// Rover owns a Pose and a read-only Planet. Pose computes candidate positions
// without mutating itself; the Rover decides whether to commit them. Every
// command batch returns an Outcome describing how far it got and why it
// stopped. MissionEngine wraps a Rover with history, reset and persistence
// hooks, and is what sessions hold.
//
// Usage:
//
//	planet, err := engine.NewPlanet(3, 3, engine.Position{X: 2, Y: 0})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	pose, _ := engine.NewPose(0, 0, engine.East)
//	rover, err := engine.NewRover(pose, planet, engine.EdgeWrap)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	out, err := rover.Move(engine.Split("fff"))
//	// out.Status == engine.StoppedAtObstacle, rover.Position() == (1,0)
//
// Coordinates:
//
// North is +y and East is +x. Grid literals are written north-up: the first
// row of a grid is y = height-1 and the last row is y = 0.
package engine
