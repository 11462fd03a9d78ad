package service

import (
	"time"

	"github.com/wricardo/mcp-training/marsrover/rover/engine"
)

// Machine-friendly stop reason codes
const (
	StopObstacle       = "obstacle"
	StopBoundary       = "boundary"
	StopInvalidCommand = "invalid_command"
)

// SessionInfo provides information about a mission session
type SessionInfo struct {
	ID             string                `json:"id"`
	ConfigName     string                `json:"config_name"`
	CreatedAt      time.Time             `json:"created_at"`
	LastAccessedAt time.Time             `json:"last_accessed_at"`
	MissionState   *engine.MissionState  `json:"mission_state"`
	MissionConfig  *engine.MissionConfig `json:"mission_config"`
}

// CommandResult contains the result of a command batch
type CommandResult struct {
	// Summary
	Kind              engine.CommandKind   `json:"kind"`
	Commands          string               `json:"commands"`
	RequestedCommands int                  `json:"requested_commands"`
	CommandsApplied   int                  `json:"commands_applied"`
	Success           bool                 `json:"success"`
	MissionState      *engine.MissionState `json:"mission_state"`
	Events            []RoverEvent         `json:"events"`
	StoppedReason     string               `json:"stopped_reason,omitempty"`
	StopReasonCode    string               `json:"stop_reason_code,omitempty"`   // obstacle|boundary|invalid_command
	StoppedOnCommand  int                  `json:"stopped_on_command,omitempty"` // 1-based
	BlockedAt         *engine.Position     `json:"blocked_at,omitempty"`
	Unapplied         string               `json:"unapplied,omitempty"`
	Truncated         bool                 `json:"truncated,omitempty"`
	Limit             int                  `json:"limit,omitempty"`

	// Start/end snapshot
	StartPos         engine.Position    `json:"start_pos"`
	EndPos           engine.Position    `json:"end_pos"`
	StartOrientation engine.Orientation `json:"start_orientation"`
	EndOrientation   engine.Orientation `json:"end_orientation"`

	// Per-step trace (only for this call)
	Steps []engine.Step `json:"steps,omitempty"`

	Message string   `json:"message,omitempty"`
	View    []string `json:"view,omitempty"`
}

// RoverEvent represents something that happened during a batch
type RoverEvent struct {
	Type      string          `json:"type"` // "reset", "move", "turn", "obstacle", "boundary", "invalid_command", "truncated"
	Message   string          `json:"message"`
	Timestamp time.Time       `json:"timestamp"`
	Position  engine.Position `json:"position"`
}

// HistoryOptions configures command history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated command history
type HistoryResponse struct {
	Commands      []engine.HistoryEntry `json:"commands"`
	TotalBatches  int                   `json:"total_batches"`
	TotalCommands int                   `json:"total_commands"`
	Page          int                   `json:"page"`
	PageSize      int                   `json:"page_size"`
	TotalPages    int                   `json:"total_pages"`
	HasNext       bool                  `json:"has_next"`
	HasPrevious   bool                  `json:"has_previous"`
}

// ConfigInfo provides information about a mission configuration
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`
	Description string `json:"description"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Edge        string `json:"edge"`
	Obstacles   int    `json:"obstacles"`
	Format      string `json:"format"` // "json" or "yaml"
}
