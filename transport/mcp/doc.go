// Package mcp exposes the rover REST API as Model Context Protocol tools.
//
// The Client is a thin proxy: every tool call becomes one or two HTTP
// requests against the API server, and the JSON responses are turned into
// plain-text reports for the agent.
//
// Tools:
//   - create_session, list_sessions, get_session
//   - rover_state: pose, planet summary and the rendered map
//   - move, turn, execute: command batches (f/b, l/r, or mixed)
//   - reset_rover: land the rover again at its starting pose
//   - command_history: paginated batches plus the batches since the last reset
//   - list_configs, mission_instructions, describe_cell
//
// A batch rejected for an unknown letter still reports the applied prefix.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
