// Package websocket provides WebSocket transport for the slide solver.
//
// The websocket package implements:
//   - Real-time solve result streaming
//   - Session-aware WebSocket connections
//   - Connection lifecycle management
//   - Message routing and handling
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// goroutine that manages reading, writing, and cleanup.
//
// Message Protocol:
//
// Messages are JSON-encoded. Each outgoing message names its session and
// an event:
//   - solve_started: a search has begun on the session's board
//   - solution: a solve finished and found a path; the full SolveRecord
//     with its frames rides along
//   - no_solution: the search exhausted the reachable states
//
// Clients do not send application messages; the read side only keeps the
// connection alive.
//
// Session Integration:
//
// WebSocket connections are session-aware. Clients specify their session ID
// via query parameter (?session=abc1) when establishing the connection.
// Solve results are broadcast only to clients connected to the same session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// after a solve completes
//	hub.BroadcastSolve(sessionID, record)
//
// Concurrency:
//
// The hub and client handlers are designed for concurrent operation.
// Multiple clients can connect, disconnect, and receive messages
// simultaneously without blocking each other.
package websocket
