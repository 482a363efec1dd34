// Package api provides HTTP REST API handlers for the slide solver.
//
// The api package implements:
//   - RESTful endpoints for solver operations
//   - Session management endpoints
//   - Preset listing and creation
//   - WebSocket upgrade handling
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session (board or preset_id in body)
//   - GET /api/sessions - List all sessions (sort, order, limit params)
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Solver Operations:
//   - POST /api/sessions/{id}/solve - Run a strategy on the session's board
//   - GET /api/sessions/{id}/solves - List the session's solve history
//   - POST /api/compare - Run every strategy against one board
//   - POST /api/validate - Check a board string without searching
//   - GET /api/strategies - List selectable strategies
//
// Presets:
//   - GET /api/presets - List available presets
//   - POST /api/presets - Save a new preset
//   - GET /api/presets/{name} - Get a preset by name
//
// Request/Response Format:
//
// All endpoints accept and return JSON. Boards travel as nine-digit
// strings read row by row, 0 marking the blank:
//
//	{
//	  "board": "283164705",
//	  "strategy": "uniform_cost|greedy|astar"
//	}
//
// A solve response carries the move list, per-step frames, and the
// exploration counters. An unsolvable board answers 200 with found=false
// rather than an error status.
//
// Usage:
//
//	server := api.NewServer(solverService, hub)
//	http.ListenAndServe(":8080", server)
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
package api
