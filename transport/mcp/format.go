package mcp

import (
	"fmt"
	"strings"

	"github.com/wricardo/mcp-training/marsrover/rover/engine"
	"github.com/wricardo/mcp-training/marsrover/rover/service"
)

const missionInstructions = `Mars Rover - Complete Instructions

MISSION OBJECTIVE:
Drive the rover across a rectangular planet grid using single-letter commands.

COORDINATES:
• x grows to the east, y grows to the north
• (0, 0) is the bottom-left cell; maps are printed north-up
• The rover always faces one of N, E, S or W

COMMANDS:
• f - move one cell forward in the facing direction
• b - move one cell backward, keeping the facing direction
• l - turn 90 degrees left in place
• r - turn 90 degrees right in place
Letters are case-sensitive. A batch like "ffrff" runs left to right.

TOOLS AND ALPHABETS:
• move accepts only f and b
• turn accepts only l and r
• execute accepts any of f, b, l and r

PLANET EDGES:
• wrap    - leaving one edge re-enters on the opposite edge
• bounded - the rover stops before leaving the planet
• open    - coordinates are unbounded; only obstacles stop the rover

MAP LEGEND:
• . - free cell
• o - obstacle
• ^ > v < - the rover facing N, E, S or W

STOPPING RULES:
• Before every step the rover checks the destination cell
• An obstacle stops the batch; the rover stays on its last free cell
• The report names the blocked cell and the commands left unapplied
• An unknown letter rejects the rest of the batch; the commands before it stay applied

STRATEGY:
1. Call rover_state to see the map before planning
2. Use describe_cell to inspect cells that are off the printed map
3. Send short batches and compare the reported end pose with your plan
4. After an obstacle stop, turn and route around it

Good luck on the surface!`

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatState(session.MissionState))
}

func formatState(state *engine.MissionState) string {
	if state == nil {
		return "No mission state available"
	}

	var result strings.Builder
	fmt.Fprintf(&result, "Position: %s | Facing: %s | Planet: %dx%d (%s) | Commands: %d\n\n",
		state.Position, state.Orientation,
		state.Planet.Width, state.Planet.Height, state.Planet.Edge,
		state.TotalCommands)

	for _, line := range state.View {
		result.WriteString(line + "\n")
	}

	if state.Message != "" {
		fmt.Fprintf(&result, "\nMessage: %s", state.Message)
	}

	return result.String()
}

func formatCommandResult(result *service.CommandResult) string {
	var b strings.Builder

	if result.Success {
		fmt.Fprintf(&b, "✓ %s %q completed (%d/%d applied)\n",
			result.Kind, result.Commands, result.CommandsApplied, result.RequestedCommands)
	} else {
		fmt.Fprintf(&b, "✗ %s %q stopped (%d/%d applied)\n",
			result.Kind, result.Commands, result.CommandsApplied, result.RequestedCommands)
	}

	fmt.Fprintf(&b, "Start: %s %s → End: %s %s\n",
		result.StartPos, result.StartOrientation, result.EndPos, result.EndOrientation)

	if result.StopReasonCode != "" {
		fmt.Fprintf(&b, "Stopped on command %d (%s): %s\n",
			result.StoppedOnCommand, result.StopReasonCode, result.StoppedReason)
	}
	if result.BlockedAt != nil {
		fmt.Fprintf(&b, "Blocked at: %s\n", *result.BlockedAt)
	}
	if result.Unapplied != "" {
		fmt.Fprintf(&b, "Unapplied: %s\n", result.Unapplied)
	}
	if result.Truncated {
		fmt.Fprintf(&b, "Batch truncated to %d commands\n", result.Limit)
	}

	if len(result.Steps) > 0 {
		b.WriteString("\nSteps:\n")
		for _, step := range result.Steps {
			fmt.Fprintf(&b, "%d. %s %s → %s facing %s\n",
				step.Index, step.Command, step.From, step.To, step.Orientation)
		}
	}

	if len(result.View) > 0 {
		b.WriteString("\n")
		for _, line := range result.View {
			b.WriteString(line + "\n")
		}
	}

	if result.Message != "" {
		fmt.Fprintf(&b, "\nMessage: %s", result.Message)
	}

	return b.String()
}

func formatHistoryEntry(n int, entry engine.HistoryEntry) string {
	status := "✓"
	if entry.Status != engine.Completed {
		status = "✗"
	}
	return fmt.Sprintf("%d. %s %q %s [%d applied, %s → %s %s]\n",
		n, entry.Kind, entry.Commands, status, entry.Applied, entry.From, entry.To, entry.Orientation)
}

func formatHistory(history *service.HistoryResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Command History (Page %d/%d) - Batches: %d, Commands applied: %d\n\n",
		history.Page, history.TotalPages, history.TotalBatches, history.TotalCommands)

	for _, entry := range history.Commands {
		b.WriteString(formatHistoryEntry(entry.Number, entry))
	}

	return b.String()
}

func formatCurrentSegment(state *engine.MissionState) string {
	if state == nil {
		return "Current Segment: unavailable"
	}
	header := fmt.Sprintf("Since last reset - Commands: %d\n\n", state.CurrentCommandsCount)
	if len(state.CurrentCommands) == 0 {
		return header + "(no commands since last reset)"
	}
	var b strings.Builder
	b.WriteString(header)
	for i, entry := range state.CurrentCommands {
		b.WriteString(formatHistoryEntry(i+1, entry))
	}
	return b.String()
}

func formatCell(cell *engine.CellInfo) string {
	var what string
	switch {
	case cell.Rover:
		what = "the rover"
	case cell.Obstacle:
		what = "an obstacle"
	case !cell.InBounds:
		what = "off the planet"
	default:
		what = "free"
	}
	return fmt.Sprintf("Cell (%d, %d): %s\nGlyph: %s\nIn bounds: %t\nDistance from rover: %d",
		cell.X, cell.Y, what, cell.Cell, cell.InBounds, cell.Distance)
}
