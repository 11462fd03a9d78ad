// Package api provides the HTTP REST API for the rover server.
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create a session ({"config_id": "classic"})
//   - GET /api/sessions - List sessions (?sort=created|accessed&order=asc|desc&limit=N)
//   - GET /api/sessions/{id} - Get a session
//   - DELETE /api/sessions/{id} - Delete a session
//
// Rover Operations:
//   - GET /api/sessions/{id}/state - Current mission state with a rendered view
//   - POST /api/sessions/{id}/move - Forward/backward commands
//   - POST /api/sessions/{id}/turn - Left/right commands
//   - POST /api/sessions/{id}/execute - Mixed commands
//   - POST /api/sessions/{id}/reset - Land the rover again
//   - GET /api/sessions/{id}/history - Command batches (?page=&limit=&order=)
//   - GET /api/sessions/{id}/cells/{x}/{y} - Describe a single cell
//
// Configuration:
//   - GET /api/configs - List mission configurations
//   - GET /api/configs/{name} - Get a mission configuration
//   - POST /api/configs - Save a mission configuration
//
// Other:
//   - GET /api/health - Liveness check
//   - GET /ws?session={id} - WebSocket updates for a session
//
// Command requests take either a string or a list:
//
//	{"commands": "ffrf", "reset": false}
//	{"commands": ["f", "f", "r", "f"]}
//
// Errors are returned as JSON:
//
//	{"error": "session not found", "code": 404}
//
// A batch with an unknown command is answered with 422; the response also
// carries the result of the commands applied before it:
//
//	{"error": "invalid command: ...", "code": 422, "result": {...}}
package api
