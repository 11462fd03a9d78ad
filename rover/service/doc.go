// Package service provides the business logic layer for the Mars Rover mission server.
//
// The service package implements:
//   - Multi-session mission management
//   - Move, turn and mixed command batches with structured results
//   - Command history with pagination
//   - Configuration listing, loading and saving
//
// Core Interfaces:
//
// RoverService is the main service interface used by every transport.
// SessionManager handles session creation, retrieval, and persistence hooks.
// ConfigManager loads and validates mission configurations.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	roverService := service.NewRoverService(sessionMgr, configMgr)
//
//	info, err := roverService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := roverService.Execute(ctx, info.ID, engine.Split("ffrff"), false)
//
// Invalid commands return both the partial CommandResult and an error
// wrapping engine.ErrInvalidCommand, since commands before the bad token
// stay applied.
package service
