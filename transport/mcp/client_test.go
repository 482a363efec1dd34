package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/tilelab/slidesolver/puzzle/service"
)

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	if client == nil {
		t.Fatal("Expected client to be created")
	}

	if client.baseURL != baseURL {
		t.Errorf("Expected baseURL %s, got %s", baseURL, client.baseURL)
	}

	if client.httpClient == nil {
		t.Error("Expected HTTP client to be initialized")
	}

	if client.mcpServer == nil {
		t.Error("Expected MCP server to be initialized")
	}
}

func TestClient_apiCall(t *testing.T) {
	expectedResponse := map[string]interface{}{
		"id":       "abcd",
		"board":    "283164705",
		"solvable": true,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expectedResponse)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var response map[string]interface{}
	err := client.apiCall("GET", "/api/sessions/abcd", nil, &response)
	if err != nil {
		t.Fatalf("apiCall failed: %v", err)
	}

	if response["id"] != expectedResponse["id"] {
		t.Errorf("Expected id %v, got %v", expectedResponse["id"], response["id"])
	}
}

func TestClient_apiCall_Error(t *testing.T) {
	client := NewClient("http://invalid-url-that-does-not-exist:9999")

	err := client.apiCall("GET", "/api/sessions", nil, nil)
	if err == nil {
		t.Error("Expected error for invalid URL")
	}
}

func TestClient_apiCall_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api/sessions", nil, nil)
	if err == nil {
		t.Error("Expected error for HTTP 500 response")
	}

	if !strings.Contains(err.Error(), "API error") {
		t.Errorf("Expected 'API error' in error message, got: %v", err)
	}
}

func TestClient_apiCall_ErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "malformed board"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("POST", "/api/validate", map[string]string{"board": "bad"}, nil)
	if err == nil {
		t.Fatal("Expected error for HTTP 400 response")
	}

	if !strings.Contains(err.Error(), "malformed board") {
		t.Errorf("Expected server error message, got: %v", err)
	}
}

func TestClient_createSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/sessions" {
			t.Errorf("Expected POST /api/sessions, got %s %s", r.Method, r.URL.Path)
		}

		resp := service.SessionInfo{
			ID:       "ab12",
			Board:    "283164705",
			Solvable: true,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "create_session",
			Arguments: map[string]interface{}{},
		},
	}

	result, err := client.handleCreateSession(ctx, request)
	if err != nil {
		t.Fatalf("createSession failed: %v", err)
	}

	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	if !strings.Contains(resultStr.Text, "ab12") {
		t.Errorf("Expected session ID in result, got: %s", resultStr.Text)
	}
}

func TestClient_solve(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/sessions/ab12/solve" {
			t.Errorf("Expected POST /api/sessions/ab12/solve, got %s %s", r.Method, r.URL.Path)
		}

		resp := service.SolveRecord{
			Strategy:   "astar",
			Found:      true,
			PathLength: 2,
			Moves:      []string{"right"},
			Frames: []service.Frame{
				{Step: 0, Board: "123084765"},
				{Step: 1, Move: "right", Board: "123804765"},
			},
			Expanded:  2,
			Generated: 5,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "solve",
			Arguments: map[string]interface{}{
				"session_id": "ab12",
				"strategy":   "astar",
			},
		},
	}

	result, err := client.handleSolve(ctx, request)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	for _, want := range []string{"Solved with astar: 1 moves", "right", "Step 0 (start)", "Step 1 (right)"} {
		if !strings.Contains(resultStr.Text, want) {
			t.Errorf("Expected '%s' in result, got: %s", want, resultStr.Text)
		}
	}
}

func TestFormatBoardGrid(t *testing.T) {
	result := formatBoardGrid("283164705")

	expected := "2 8 3\n1 6 4\n7 . 5\n"
	if result != expected {
		t.Errorf("Expected grid:\n%s\ngot:\n%s", expected, result)
	}
}

func TestFormatSolveSummary(t *testing.T) {
	found := &service.SolveRecord{
		Strategy:   "astar",
		Found:      true,
		PathLength: 6,
		Expanded:   12,
		Generated:  25,
		ElapsedMS:  0.42,
	}

	result := formatSolveSummary(found)
	if !strings.Contains(result, "astar: 5 moves") {
		t.Errorf("Expected move count in summary, got: %s", result)
	}
	if !strings.Contains(result, "expanded 12") {
		t.Errorf("Expected expanded count in summary, got: %s", result)
	}

	notFound := &service.SolveRecord{
		Strategy:  "uniform_cost",
		Found:     false,
		Expanded:  181440,
		Generated: 181440,
	}

	result = formatSolveSummary(notFound)
	if !strings.Contains(result, "no solution") {
		t.Errorf("Expected 'no solution' in summary, got: %s", result)
	}
}

func TestFormatSolveRecord_NotFound(t *testing.T) {
	record := &service.SolveRecord{
		Strategy:  "astar",
		Found:     false,
		Expanded:  181440,
		Generated: 181440,
	}

	result := formatSolveRecord(record)

	if !strings.Contains(result, "No solution exists") {
		t.Errorf("Expected 'No solution exists' in result, got: %s", result)
	}
	if !strings.Contains(result, "181440") {
		t.Errorf("Expected exploration counters in result, got: %s", result)
	}
}

func TestFormatSessionInfo(t *testing.T) {
	session := &service.SessionInfo{
		ID:       "ab12",
		Board:    "283164705",
		Solvable: true,
	}

	result := formatSessionInfo(session)

	expectedFields := []string{
		"Session: ab12",
		"Board: 283164705 (solvable)",
		"2 8 3",
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in formatted output, got: %s", field, result)
		}
	}
}

func TestClient_Integration(t *testing.T) {
	// Verifies the client can be created and initialized without errors
	client := NewClient("http://localhost:8080")

	if client == nil {
		t.Fatal("Failed to create client")
	}

	if client.mcpServer == nil {
		t.Fatal("MCP server not initialized")
	}

	if client.baseURL == "" {
		t.Error("Base URL not set")
	}

	if client.httpClient == nil {
		t.Error("HTTP client not initialized")
	}
}
