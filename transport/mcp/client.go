package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/tilelab/slidesolver/puzzle/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Slide Solver",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Slide Solver - MCP Interface

This is a thin client that proxies all requests to the REST API server.

THE PUZZLE:
A 3x3 sliding-tile puzzle. Boards are nine-digit strings read row by row,
with 0 marking the blank. The goal layout is 123804765 (blank in the
center). A move names the direction from the blank to the tile that
slides into it.

AVAILABLE TOOLS:
- create_session: Create a session from a board string or preset
- get_session: Get session details
- list_sessions: List all active sessions
- solve: Run a search strategy on a session's board
- list_solves: View a session's solve history
- compare_strategies: Run every strategy against one board
- validate_board: Check a board string without searching
- list_strategies: List the selectable strategies
- list_presets: List available board presets

STRATEGIES:
- uniform_cost: expands by path cost; optimal but explores widely
- greedy: expands by Manhattan distance; fast but may overshoot
- astar: expands by cost plus Manhattan distance; optimal and focused

Half of all boards cannot reach the goal. validate_board reports
solvability up front; solving an unsolvable board is still a defined
outcome (found=false with exploration counters).`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new puzzle session from a board string or a named preset",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"board": map[string]interface{}{
					"type":        "string",
					"description": "Nine-digit board string read row by row, 0 marking the blank (optional)",
				},
				"preset_id": map[string]interface{}{
					"type":        "string",
					"description": "Name of the preset to use (optional, ignored when board is given)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active puzzle sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Solver operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "solve",
		Description: "Run a search strategy on the session's board and return the move sequence",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"strategy": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"uniform_cost", "greedy", "astar"},
					"description": "Search strategy to use",
				},
			},
			Required: []string{"session_id", "strategy"},
		},
	}, c.handleSolve)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_solves",
		Description: "Get the solve history for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleListSolves)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "compare_strategies",
		Description: "Run every strategy against the same board and compare path lengths and work done",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"board": map[string]interface{}{
					"type":        "string",
					"description": "Nine-digit board string read row by row, 0 marking the blank",
				},
			},
			Required: []string{"board"},
		},
	}, c.handleCompareStrategies)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "validate_board",
		Description: "Check a board string for well-formedness and solvability without running a search",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"board": map[string]interface{}{
					"type":        "string",
					"description": "Nine-digit board string read row by row, 0 marking the blank",
				},
			},
			Required: []string{"board"},
		},
	}, c.handleValidateBoard)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_strategies",
		Description: "List the selectable search strategies",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListStrategies)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_presets",
		Description: "List available board presets",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListPresets)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	boardStr, _ := args["board"].(string)
	presetID, _ := args["preset_id"].(string)

	body := map[string]string{}
	if boardStr != "" {
		body["board"] = boardStr
	}
	if presetID != "" {
		body["preset_id"] = presetID
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\n\n%s", session.ID, formatSessionInfo(&session))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		solvable := "solvable"
		if !s.Solvable {
			solvable = "unsolvable"
		}
		result += fmt.Sprintf("- %s (Board: %s, %s, Created: %s)\n",
			s.ID, s.Board, solvable, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleSolve(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	strategy, _ := args["strategy"].(string)

	body := map[string]string{
		"strategy": strategy,
	}

	var record service.SolveRecord
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/solve", sessionID), body, &record)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatSolveRecord(&record)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleListSolves(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Count  int                    `json:"count"`
		Solves []*service.SolveRecord `json:"solves"`
	}

	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/solves", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Solve History (%d runs):\n\n", response.Count)
	for i, record := range response.Solves {
		result += fmt.Sprintf("%d. %s\n", i+1, formatSolveSummary(record))
	}
	if response.Count == 0 {
		result += "(no solves recorded)\n"
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleCompareStrategies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	boardStr, _ := args["board"].(string)

	body := map[string]string{"board": boardStr}

	var compare service.CompareResult
	err := c.apiCall("POST", "/api/compare", body, &compare)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Strategy comparison for board %s:\n\n", compare.Board))
	b.WriteString(formatBoardGrid(compare.Board))
	b.WriteString("\n")

	for _, run := range compare.Runs {
		b.WriteString(formatSolveSummary(run))
		b.WriteString("\n")
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleValidateBoard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	boardStr, _ := args["board"].(string)

	body := map[string]string{"board": boardStr}

	var report service.BoardReport
	err := c.apiCall("POST", "/api/validate", body, &report)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if !report.Valid {
		return mcp.NewToolResultText(fmt.Sprintf("Board %q is malformed: %s", boardStr, report.Error)), nil
	}

	solvable := "solvable"
	if !report.Solvable {
		solvable = "UNSOLVABLE (wrong parity class; no move sequence reaches the goal)"
	}

	result := fmt.Sprintf("Board: %s\n\n%s\nWell-formed: yes\nSolvability: %s\nManhattan distance to goal: %d\n",
		report.Board, formatBoardGrid(report.Board), solvable, report.Manhattan)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListStrategies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count      int                    `json:"count"`
		Strategies []service.StrategyInfo `json:"strategies"`
	}

	err := c.apiCall("GET", "/api/strategies", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Strategies:\n\n"
	for _, s := range response.Strategies {
		optimal := "optimal"
		if !s.Optimal {
			optimal = "not optimal"
		}
		result += fmt.Sprintf("• %s (%s)\n  %s\n\n", s.Name, optimal, s.Description)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListPresets(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var presets []service.PresetInfo
	err := c.apiCall("GET", "/api/presets", nil, &presets)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Presets:\n\n"
	for _, preset := range presets {
		solvable := "solvable"
		if !preset.Solvable {
			solvable = "unsolvable"
		}
		result += fmt.Sprintf("• %s: %s\n  Board: %s (%s)\n", preset.PresetID, preset.Description, preset.Board, solvable)
		if preset.Strategy != "" {
			result += fmt.Sprintf("  Suggested strategy: %s\n", preset.Strategy)
		}
		result += "\n"
	}

	return mcp.NewToolResultText(result), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	solvable := "solvable"
	if !session.Solvable {
		solvable = "unsolvable"
	}

	result := fmt.Sprintf("Session: %s\nBoard: %s (%s)\nCreated: %s\n\n%s",
		session.ID, session.Board, solvable,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatBoardGrid(session.Board))

	if len(session.Solves) > 0 {
		result += fmt.Sprintf("\nRecorded solves: %d\n", len(session.Solves))
	}

	return result
}

// formatBoardGrid renders a nine-digit board string as a 3x3 grid,
// showing the blank as a dot
func formatBoardGrid(board string) string {
	if len(board) != 9 {
		return board + "\n"
	}

	var b strings.Builder
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			ch := board[row*3+col]
			if ch == '0' {
				b.WriteString(".")
			} else {
				b.WriteByte(ch)
			}
			if col < 2 {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatSolveSummary(record *service.SolveRecord) string {
	if !record.Found {
		return fmt.Sprintf("%s: no solution (expanded %d, generated %d, %.2fms)",
			record.Strategy, record.Expanded, record.Generated, record.ElapsedMS)
	}
	return fmt.Sprintf("%s: %d moves (expanded %d, generated %d, %.2fms)",
		record.Strategy, record.PathLength-1, record.Expanded, record.Generated, record.ElapsedMS)
}

func formatSolveRecord(record *service.SolveRecord) string {
	var b strings.Builder

	if !record.Found {
		b.WriteString("No solution exists for this board.\n")
		b.WriteString(fmt.Sprintf("The search exhausted every reachable layout: expanded %d, generated %d (%.2fms).\n",
			record.Expanded, record.Generated, record.ElapsedMS))
		b.WriteString("The board is in the wrong parity class relative to the goal.\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Solved with %s: %d moves\n", record.Strategy, record.PathLength-1))
	b.WriteString(fmt.Sprintf("Expanded: %d | Generated: %d | Elapsed: %.2fms\n\n", record.Expanded, record.Generated, record.ElapsedMS))

	if len(record.Moves) > 0 {
		b.WriteString("Moves: ")
		b.WriteString(strings.Join(record.Moves, ", "))
		b.WriteString("\n\n")
	}

	for _, frame := range record.Frames {
		if frame.Move == "" {
			b.WriteString(fmt.Sprintf("Step %d (start):\n", frame.Step))
		} else {
			b.WriteString(fmt.Sprintf("Step %d (%s):\n", frame.Step, frame.Move))
		}
		b.WriteString(formatBoardGrid(frame.Board))
		b.WriteString("\n")
	}

	return b.String()
}
