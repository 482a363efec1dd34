// Package service provides the business logic layer for the slide solver.
//
// The service package implements:
//   - Multi-session puzzle management
//   - Solve orchestration over the search core
//   - Board validation and strategy listing
//   - Preset loading and saving
//
// Core Interfaces:
//
// SolverService is the main service interface providing high-level solver
// operations. SessionManager handles session creation, retrieval, and
// lifecycle. PresetManager manages puzzle preset loading and validation.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP)
// and the search core, providing session isolation, preset management, and
// result shaping. Each session owns a start board and accumulates the solve
// records run against it.
//
// The search core is synchronous and exposes no cancellation primitive, so
// the service invokes it on a worker goroutine and waits on a result
// channel. Context cancellation is honored at this boundary only: an
// abandoned run finishes in the background and is then discarded.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	presetMgr, _ := config.NewManager("configs")
//	solver := service.NewSolverService(sessionMgr, presetMgr)
//
//	info, err := solver.CreateSession(ctx, "283164705", "")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	record, err := solver.Solve(ctx, info.ID, "astar")
//
// Outcomes:
//
// A malformed board string fails before any search begins. An unsolvable
// board is a defined outcome: the returned SolveRecord carries Found=false
// together with the exploration counters, and no error is raised.
package service
