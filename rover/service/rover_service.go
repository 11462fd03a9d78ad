package service

import (
	"context"
	"errors"
	"time"

	"github.com/wricardo/mcp-training/marsrover/rover/engine"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrConfigNotFound  = errors.New("configuration not found")
)

// RoverService defines all mission operations
type RoverService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Rover Operations
	Move(ctx context.Context, sessionID string, cmds engine.Commands, reset bool) (*CommandResult, error)
	Turn(ctx context.Context, sessionID string, cmds engine.Commands, reset bool) (*CommandResult, error)
	Execute(ctx context.Context, sessionID string, cmds engine.Commands, reset bool) (*CommandResult, error)
	Reset(ctx context.Context, sessionID string) (*engine.MissionState, error)

	// Mission State
	GetState(ctx context.Context, sessionID string) (*engine.MissionState, error)
	GetHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)
	DescribeCell(ctx context.Context, sessionID string, x, y int) (*engine.CellInfo, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.MissionConfig, error)
	SaveConfig(ctx context.Context, configName string, config *engine.MissionConfig) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id, configID string, config *engine.MissionConfig) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id, configID string, config *engine.MissionConfig) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}

// ConfigManager handles mission configuration loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.MissionConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.MissionConfig
	SaveConfig(name string, config *engine.MissionConfig) error
}

// Session represents an active mission
type Session struct {
	ID             string
	ConfigID       string
	Engine         *engine.MissionEngine
	Config         *engine.MissionConfig
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
