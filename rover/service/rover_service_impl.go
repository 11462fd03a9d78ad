package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/wricardo/mcp-training/marsrover/rover/engine"
	"github.com/wricardo/mcp-training/marsrover/rover/render"
)

// roverServiceImpl implements the RoverService interface
type roverServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// NewRoverService creates a new rover service instance
func NewRoverService(sessions SessionManager, configs ConfigManager) RoverService {
	return &roverServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// getConfigID returns the config_id for a display name
func (s *roverServiceImpl) getConfigID(sess *Session) string {
	if sess.ConfigID != "" {
		return sess.ConfigID
	}
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == sess.Config.Name {
				return cfg.ConfigID
			}
		}
	}
	if sess.Config.Name == "" {
		return "default"
	}
	return sess.Config.Name
}

func (s *roverServiceImpl) sessionInfo(sess *Session) *SessionInfo {
	return &SessionInfo{
		ID:             sess.ID,
		ConfigName:     s.getConfigID(sess),
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		MissionState:   withView(sess.Engine),
		MissionConfig:  sess.Config,
	}
}

// withView returns a snapshot of the engine state with a freshly rendered
// view. Callers hold s.mu; the snapshot stays valid after it is released.
func withView(eng *engine.MissionEngine) *engine.MissionState {
	state := eng.GetState().Clone()
	state.View = render.Grid(eng.GetPlanet(), eng.GetPose())
	return state
}

// CreateSession creates a new mission session
func (s *roverServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.MissionConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if errors.Is(err, ErrConfigNotFound) {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("%w: '%s'. Available configs: %v", ErrConfigNotFound, configName, configIDs)
				}
				return nil, fmt.Errorf("%w: '%s'. Use /api/configs to list available configurations", ErrConfigNotFound, configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let session manager generate a 4-character ID
	sess, err := s.sessions.Create("", configName, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return s.sessionInfo(sess), nil
}

// GetSession retrieves session information
func (s *roverServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	return s.sessionInfo(sess), nil
}

// ListSessions returns all active sessions
func (s *roverServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess))
	}
	return result, nil
}

// DeleteSession removes a session
func (s *roverServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Delete(sessionID); err != nil {
		return fmt.Errorf("%w: %v", ErrSessionNotFound, err)
	}
	return nil
}

func (s *roverServiceImpl) getSession(sessionID string) (*Session, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrSessionNotFound, err)
	}
	if err := s.sessions.UpdateLastAccessed(sessionID); err != nil {
		log.Printf("Warning: Failed to update last access for session %s: %v", sessionID, err)
	}
	return sess, nil
}

// Move applies forward/backward commands
func (s *roverServiceImpl) Move(ctx context.Context, sessionID string, cmds engine.Commands, reset bool) (*CommandResult, error) {
	return s.run(sessionID, engine.KindMove, cmds, reset)
}

// Turn applies left/right commands
func (s *roverServiceImpl) Turn(ctx context.Context, sessionID string, cmds engine.Commands, reset bool) (*CommandResult, error) {
	return s.run(sessionID, engine.KindTurn, cmds, reset)
}

// Execute applies a mixed command batch
func (s *roverServiceImpl) Execute(ctx context.Context, sessionID string, cmds engine.Commands, reset bool) (*CommandResult, error) {
	return s.run(sessionID, engine.KindExecute, cmds, reset)
}

func (s *roverServiceImpl) run(sessionID string, kind engine.CommandKind, cmds engine.Commands, reset bool) (*CommandResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	result := &CommandResult{
		Kind:              kind,
		RequestedCommands: len(cmds),
		Events:            make([]RoverEvent, 0),
	}

	if reset {
		sess.Engine.Reset()
		result.Events = append(result.Events, RoverEvent{
			Type:      "reset",
			Message:   "Rover returned to landing position",
			Timestamp: time.Now(),
			Position:  sess.Engine.GetPose().Position,
		})
	}

	// Limit batch size to prevent abuse
	if len(cmds) > engine.MaxBatchCommands {
		result.Truncated = true
		result.Limit = engine.MaxBatchCommands
		cmds = cmds[:engine.MaxBatchCommands]
		result.Events = append(result.Events, RoverEvent{
			Type:      "truncated",
			Message:   fmt.Sprintf("Batch truncated to %d commands", engine.MaxBatchCommands),
			Timestamp: time.Now(),
			Position:  sess.Engine.GetPose().Position,
		})
	}
	result.Commands = cmds.String()

	start := sess.Engine.GetPose()
	result.StartPos = start.Position
	result.StartOrientation = start.Orientation

	var out engine.Outcome
	var runErr error
	switch kind {
	case engine.KindMove:
		out, runErr = sess.Engine.Move(cmds)
	case engine.KindTurn:
		out, runErr = sess.Engine.Turn(cmds)
	default:
		out, runErr = sess.Engine.Execute(cmds)
	}

	result.CommandsApplied = out.Applied
	result.Steps = out.Steps
	result.Events = append(result.Events, stepEvents(out.Steps)...)
	result.Success = runErr == nil && out.Status == engine.Completed

	if out.Stopped() {
		result.StoppedOnCommand = out.Applied + 1
		result.Unapplied = out.Unapplied.String()
		result.BlockedAt = out.BlockedAt
	}

	switch out.Status {
	case engine.StoppedAtObstacle:
		result.StopReasonCode = StopObstacle
		result.StoppedReason = fmt.Sprintf("command %d blocked: obstacle at %s", result.StoppedOnCommand, out.BlockedAt)
	case engine.StoppedAtBoundary:
		result.StopReasonCode = StopBoundary
		result.StoppedReason = fmt.Sprintf("command %d blocked: planet edge at %s", result.StoppedOnCommand, out.BlockedAt)
	case engine.Rejected:
		result.StopReasonCode = StopInvalidCommand
		result.StoppedReason = runErr.Error()
	}
	if result.StopReasonCode != "" {
		result.Events = append(result.Events, RoverEvent{
			Type:      result.StopReasonCode,
			Message:   result.StoppedReason,
			Timestamp: time.Now(),
			Position:  out.Pose.Position,
		})
	}

	result.EndPos = out.Pose.Position
	result.EndOrientation = out.Pose.Orientation
	result.MissionState = withView(sess.Engine)
	result.Message = result.MissionState.Message
	result.View = result.MissionState.View

	// Auto-save session after the batch
	if err := s.sessions.Save(sessionID); err != nil {
		log.Printf("Warning: Failed to persist session %s after %s: %v", sessionID, kind, err)
	}

	return result, runErr
}

func stepEvents(steps []engine.Step) []RoverEvent {
	events := make([]RoverEvent, 0, len(steps))
	for _, step := range steps {
		ev := RoverEvent{
			Type:      "move",
			Message:   fmt.Sprintf("Moved %s to %s", step.Command, step.To),
			Timestamp: time.Now(),
			Position:  step.To,
		}
		if step.Command == engine.CmdLeft || step.Command == engine.CmdRight {
			ev.Type = "turn"
			ev.Message = fmt.Sprintf("Turned %s to face %s", step.Command, step.Orientation.Name())
		}
		events = append(events, ev)
	}
	return events
}

// Reset lands the rover again at its configured start
func (s *roverServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.MissionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	sess.Engine.Reset()
	state := withView(sess.Engine)

	if err := s.sessions.Save(sessionID); err != nil {
		log.Printf("Warning: Failed to persist session %s after reset: %v", sessionID, err)
	}

	return state, nil
}

// GetState retrieves the current mission state
func (s *roverServiceImpl) GetState(ctx context.Context, sessionID string) (*engine.MissionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	return withView(sess.Engine), nil
}

// GetHistory returns paginated command history
func (s *roverServiceImpl) GetHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionNotFound, err)
	}

	history := sess.Engine.GetHistory()
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	commands := []engine.HistoryEntry{}
	if opts.Order == "desc" {
		// Most recent first
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			commands = append(commands, history[i])
		}
	} else if start < total {
		commands = append(commands, history[start:end]...)
	}

	return &HistoryResponse{
		Commands:      commands,
		TotalBatches:  total,
		TotalCommands: sess.Engine.GetState().TotalCommands,
		Page:          opts.Page,
		PageSize:      opts.Limit,
		TotalPages:    totalPages,
		HasNext:       opts.Page < totalPages,
		HasPrevious:   opts.Page > 1,
	}, nil
}

// DescribeCell reports what the rover knows about a single cell
func (s *roverServiceImpl) DescribeCell(ctx context.Context, sessionID string, x, y int) (*engine.CellInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionNotFound, err)
	}
	cell := sess.Engine.Inspect(x, y)
	return &cell, nil
}

// ListConfigs returns available mission configurations
func (s *roverServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific mission configuration
func (s *roverServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.MissionConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a mission configuration
func (s *roverServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.MissionConfig) error {
	return s.configs.SaveConfig(configName, config)
}
