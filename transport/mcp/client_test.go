package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/wricardo/mcp-training/marsrover/rover/engine"
	"github.com/wricardo/mcp-training/marsrover/rover/service"
)

func callTool(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil {
		t.Fatal("Expected result, got nil")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}
	return text.Text
}

func testState() *engine.MissionState {
	return &engine.MissionState{
		ConfigName:  "classic",
		Position:    engine.Position{X: 1, Y: 2},
		Orientation: engine.East,
		Planet: engine.PlanetSummary{
			Width:  3,
			Height: 3,
			Edge:   engine.EdgeWrap,
		},
		Message:       "All commands executed.",
		TotalCommands: 4,
		View:          []string{".>.", "...", "..."},
	}
}

func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080/")

	if client.baseURL != "http://localhost:8080" {
		t.Errorf("Expected trailing slash trimmed, got %s", client.baseURL)
	}
	if client.httpClient == nil {
		t.Error("Expected HTTP client to be initialized")
	}
	if client.httpClient.Timeout != 10*time.Second {
		t.Errorf("Expected 10s timeout, got %v", client.httpClient.Timeout)
	}
	if client.GetMCPServer() == nil {
		t.Error("Expected MCP server to be initialized")
	}
}

func TestClient_apiCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/test" {
			t.Errorf("Expected path /api/test, got %s", r.URL.Path)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Expected JSON content type, got %q", r.Header.Get("Content-Type"))
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var result map[string]string
	if err := client.apiCall("POST", "/api/test", map[string]string{"a": "b"}, &result); err != nil {
		t.Fatalf("apiCall failed: %v", err)
	}
	if result["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", result)
	}
}

func TestClient_apiCall_Error(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")

	var result map[string]string
	if err := client.apiCall("GET", "/api/test", nil, &result); err == nil {
		t.Error("Expected error for unreachable server")
	}
}

func TestClient_apiCall_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{"error": "session not found", "code": 404})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api/sessions/nope", nil, nil)
	if err == nil {
		t.Fatal("Expected error for 404")
	}
	if err.Error() != "session not found" {
		t.Errorf("Expected API message, got %q", err.Error())
	}
	apiErr, ok := err.(*apiError)
	if !ok || apiErr.Status != http.StatusNotFound {
		t.Errorf("Expected *apiError with 404, got %#v", err)
	}
}

func TestClient_createSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/sessions" {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["config_id"] != "classic" {
			t.Errorf("Expected config_id classic, got %v", body)
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(service.SessionInfo{
			ID:           "ab12",
			ConfigName:   "Classic",
			CreatedAt:    time.Now(),
			MissionState: testState(),
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result, err := client.handleCreateSession(context.Background(), callTool("create_session", map[string]interface{}{
		"config_id": "classic",
	}))
	if err != nil {
		t.Fatalf("handleCreateSession failed: %v", err)
	}

	text := resultText(t, result)
	for _, want := range []string{"Created session: ab12", "Config: Classic", "Position: (1, 2)", ".>."} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in result, got: %s", want, text)
		}
	}
}

func TestClient_MissingSessionID(t *testing.T) {
	client := NewClient("http://localhost:8080")
	ctx := context.Background()

	result, err := client.handleRoverState(ctx, callTool("rover_state", map[string]interface{}{}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !result.IsError {
		t.Error("Expected tool error without session_id")
	}
	if text := resultText(t, result); !strings.Contains(text, "session_id is required") {
		t.Errorf("Unexpected error text: %s", text)
	}
}

func TestClient_commandTools(t *testing.T) {
	tests := []struct {
		name     string
		tool     string
		kind     engine.CommandKind
		commands string
	}{
		{"move", "move", engine.KindMove, "ff"},
		{"turn", "turn", engine.KindTurn, "lr"},
		{"execute", "execute", engine.KindExecute, "frf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				want := "/api/sessions/ab12/" + string(tt.kind)
				if r.URL.Path != want {
					t.Errorf("Expected path %s, got %s", want, r.URL.Path)
				}
				var body map[string]interface{}
				json.NewDecoder(r.Body).Decode(&body)
				if body["commands"] != tt.commands {
					t.Errorf("Expected commands %q, got %v", tt.commands, body["commands"])
				}
				if body["reset"] != true {
					t.Errorf("Expected reset true, got %v", body["reset"])
				}

				json.NewEncoder(w).Encode(service.CommandResult{
					Kind:              tt.kind,
					Commands:          tt.commands,
					RequestedCommands: len(tt.commands),
					CommandsApplied:   len(tt.commands),
					Success:           true,
					EndPos:            engine.Position{X: 0, Y: 2},
					EndOrientation:    engine.North,
				})
			}))
			defer server.Close()

			client := NewClient(server.URL)
			handler := client.commandHandler(tt.kind)
			result, err := handler(context.Background(), callTool(tt.tool, map[string]interface{}{
				"session_id": "ab12",
				"commands":   tt.commands,
				"reset":      true,
				"intent":     "test the batch",
			}))
			if err != nil {
				t.Fatalf("handler failed: %v", err)
			}
			if result.IsError {
				t.Fatalf("Unexpected tool error: %s", resultText(t, result))
			}

			text := resultText(t, result)
			if !strings.Contains(text, "✓ "+string(tt.kind)) {
				t.Errorf("Expected success line, got: %s", text)
			}
			if !strings.Contains(text, "End: (0, 2) N") {
				t.Errorf("Expected end pose, got: %s", text)
			}
		})
	}
}

func TestClient_commandPartialResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": `invalid command "x" at position 2`,
			"code":  422,
			"result": service.CommandResult{
				Kind:              engine.KindExecute,
				Commands:          "fxf",
				RequestedCommands: 3,
				CommandsApplied:   1,
				StopReasonCode:    service.StopInvalidCommand,
				StoppedOnCommand:  2,
				StoppedReason:     `invalid command "x"`,
				Unapplied:         "xf",
				EndPos:            engine.Position{X: 0, Y: 1},
				EndOrientation:    engine.North,
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result, err := client.commandHandler(engine.KindExecute)(context.Background(), callTool("execute", map[string]interface{}{
		"session_id": "ab12",
		"commands":   "fxf",
	}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if !result.IsError {
		t.Error("Expected tool error for rejected command")
	}

	text := resultText(t, result)
	for _, want := range []string{`invalid command "x"`, "✗ execute", "1/3 applied", "Unapplied: xf", "End: (0, 1) N"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in result, got: %s", want, text)
		}
	}
}

func TestClient_handleCommandHistory(t *testing.T) {
	entry := engine.HistoryEntry{
		Number:      1,
		Kind:        engine.KindMove,
		Commands:    "ff",
		Status:      engine.StoppedAtObstacle,
		Applied:     1,
		From:        engine.Position{X: 0, Y: 0},
		To:          engine.Position{X: 0, Y: 1},
		Orientation: engine.North,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/sessions/ab12/history":
			if r.URL.Query().Get("page") != "2" || r.URL.Query().Get("limit") != "5" {
				t.Errorf("Unexpected query %s", r.URL.RawQuery)
			}
			json.NewEncoder(w).Encode(service.HistoryResponse{
				Commands:      []engine.HistoryEntry{entry},
				TotalBatches:  6,
				TotalCommands: 9,
				Page:          2,
				PageSize:      5,
				TotalPages:    2,
			})
		case "/api/sessions/ab12/state":
			state := testState()
			state.CurrentCommands = []engine.HistoryEntry{entry}
			state.CurrentCommandsCount = 1
			json.NewEncoder(w).Encode(state)
		default:
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result, err := client.handleCommandHistory(context.Background(), callTool("command_history", map[string]interface{}{
		"session_id": "ab12",
		"page":       float64(2),
		"limit":      float64(5),
	}))
	if err != nil {
		t.Fatalf("handleCommandHistory failed: %v", err)
	}

	text := resultText(t, result)
	for _, want := range []string{"Page 2/2", "Batches: 6", `1. move "ff" ✗`, "Since last reset - Commands: 1"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in result, got: %s", want, text)
		}
	}
}

func TestClient_handleDescribeCell(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/sessions/ab12/cells/1/2" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(engine.CellInfo{X: 1, Y: 2, InBounds: true, Obstacle: true, Distance: 3, Cell: "o"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	result, err := client.handleDescribeCell(ctx, callTool("describe_cell", map[string]interface{}{
		"session_id": "ab12",
		"x":          float64(1),
		"y":          "2",
	}))
	if err != nil {
		t.Fatalf("handleDescribeCell failed: %v", err)
	}
	text := resultText(t, result)
	if !strings.Contains(text, "Cell (1, 2): an obstacle") || !strings.Contains(text, "Distance from rover: 3") {
		t.Errorf("Unexpected cell description: %s", text)
	}

	result, _ = client.handleDescribeCell(ctx, callTool("describe_cell", map[string]interface{}{
		"session_id": "ab12",
	}))
	if !result.IsError {
		t.Error("Expected tool error without coordinates")
	}
}

func TestClient_handleListConfigs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]service.ConfigInfo{{
			ConfigID:    "canyon",
			Name:        "Canyon",
			Description: "Narrow walls",
			Width:       7,
			Height:      5,
			Edge:        "bounded",
			Obstacles:   12,
		}})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result, err := client.handleListConfigs(context.Background(), callTool("list_configs", nil))
	if err != nil {
		t.Fatalf("handleListConfigs failed: %v", err)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "Canyon (config_id: canyon)") || !strings.Contains(text, "Planet: 7x5, edge: bounded, obstacles: 12") {
		t.Errorf("Unexpected config list: %s", text)
	}
}

func TestFormatState(t *testing.T) {
	result := formatState(testState())

	for _, want := range []string{
		"Position: (1, 2) | Facing: E | Planet: 3x3 (wrap) | Commands: 4",
		".>.\n",
		"Message: All commands executed.",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("Expected %q in result, got: %s", want, result)
		}
	}

	if formatState(nil) != "No mission state available" {
		t.Error("Expected placeholder for nil state")
	}
}

func TestFormatCommandResult_Stopped(t *testing.T) {
	result := formatCommandResult(&service.CommandResult{
		Kind:              engine.KindMove,
		Commands:          "fff",
		RequestedCommands: 3,
		CommandsApplied:   1,
		StopReasonCode:    service.StopObstacle,
		StoppedOnCommand:  2,
		StoppedReason:     "Obstacle detected",
		BlockedAt:         &engine.Position{X: 0, Y: 2},
		Unapplied:         "ff",
		Steps: []engine.Step{
			{Index: 1, Command: "f", From: engine.Position{}, To: engine.Position{X: 0, Y: 1}, Orientation: engine.North},
		},
	})

	for _, want := range []string{
		`✗ move "fff" stopped (1/3 applied)`,
		"Stopped on command 2 (obstacle)",
		"Blocked at: (0, 2)",
		"1. f (0, 0) → (0, 1) facing N",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("Expected %q in result, got: %s", want, result)
		}
	}
}

func TestClient_handleMissionInstructions(t *testing.T) {
	client := NewClient("http://localhost:8080")

	result, err := client.handleMissionInstructions(context.Background(), callTool("mission_instructions", map[string]interface{}{}))
	if err != nil {
		t.Fatalf("handleMissionInstructions failed: %v", err)
	}

	text := resultText(t, result)
	for _, want := range []string{
		"Mars Rover - Complete Instructions",
		"COORDINATES:",
		"COMMANDS:",
		"PLANET EDGES:",
		"MAP LEGEND:",
		"STOPPING RULES:",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in instructions", want)
		}
	}
}
