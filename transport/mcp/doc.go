// Package mcp provides Model Context Protocol server implementation for the slide solver.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for solver operations
//   - Session-aware command execution
//   - Stdio transport mode
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - create_session: Create a session from a board string or preset
//   - get_session: Get specific session details
//   - list_sessions: List all active sessions
//   - solve: Run a strategy on a session's board, returning the move
//     sequence with per-step board renderings
//   - list_solves: Retrieve a session's solve history
//   - compare_strategies: Run every strategy against one board
//   - validate_board: Check well-formedness and solvability
//   - list_strategies: List the selectable strategies
//   - list_presets: List available board presets
//
// Architecture:
//
// The client is a thin proxy: every tool call is translated to a REST
// request against the API server, and the JSON response is rendered as
// readable text with 3x3 board grids. The MCP process holds no solver
// state of its own.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
//
// AI Integration:
//
// The MCP interface enables AI agents to:
//   - Pose puzzle instances and read back solutions
//   - Compare the work done by each strategy
//   - Detect unsolvable boards before searching
//   - Manage multiple puzzle sessions
package mcp
