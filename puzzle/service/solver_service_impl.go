package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tilelab/slidesolver/puzzle/board"
	"github.com/tilelab/slidesolver/puzzle/search"
)

// solverServiceImpl implements the SolverService interface
type solverServiceImpl struct {
	sessions SessionManager
	presets  PresetManager
	mu       sync.RWMutex
}

// NewSolverService creates a new solver service instance
func NewSolverService(sessions SessionManager, presets PresetManager) SolverService {
	return &solverServiceImpl{
		sessions: sessions,
		presets:  presets,
	}
}

// CreateSession creates a new puzzle session from an explicit board string
// or a named preset. With neither, the default preset is used.
func (s *solverServiceImpl) CreateSession(ctx context.Context, boardStr, presetID string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var b board.Board
	var err error

	switch {
	case boardStr != "":
		b, err = board.Parse(boardStr)
		if err != nil {
			return nil, err
		}

	case presetID != "":
		preset, loadErr := s.presets.LoadPreset(presetID)
		if loadErr != nil {
			// Provide a helpful error message with available options
			if strings.Contains(loadErr.Error(), "preset not found") {
				available, listErr := s.presets.ListPresets()
				if listErr == nil && len(available) > 0 {
					var ids []string
					for _, p := range available {
						ids = append(ids, p.PresetID)
					}
					return nil, fmt.Errorf("preset '%s' not found. Available presets: %v", presetID, ids)
				}
			}
			return nil, fmt.Errorf("failed to load preset %s: %w", presetID, loadErr)
		}
		b, err = board.Parse(preset.Board)
		if err != nil {
			return nil, fmt.Errorf("preset %s holds a malformed board: %w", presetID, err)
		}

	default:
		preset := s.presets.GetDefault()
		presetID = preset.Name
		b, err = board.Parse(preset.Board)
		if err != nil {
			return nil, fmt.Errorf("default preset holds a malformed board: %w", err)
		}
	}

	// Let the session manager generate a proper 4-character ID
	session, err := s.sessions.Create("", b, presetID)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return sessionInfo(session), nil
}

// GetSession retrieves session information
func (s *solverServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return sessionInfo(session), nil
}

// ListSessions returns all active sessions
func (s *solverServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	infos := make([]*SessionInfo, 0, len(sessions))
	for _, session := range sessions {
		infos = append(infos, sessionInfo(session))
	}

	return infos, nil
}

// DeleteSession removes a session
func (s *solverServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Delete(sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Solve runs the selected strategy against the session's board and records
// the outcome in the session's solve history. An unsolvable board is a
// defined outcome (Found=false), not an error.
func (s *solverServiceImpl) Solve(ctx context.Context, sessionID, strategyName string) (*SolveRecord, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	record, err := s.solveBoard(ctx, session.Board, strategyName)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.AppendSolve(sessionID, record); err != nil {
		return nil, fmt.Errorf("failed to record solve: %w", err)
	}

	return record, nil
}

// ListSolves returns the solve history of a session
func (s *solverServiceImpl) ListSolves(ctx context.Context, sessionID string) ([]*SolveRecord, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return session.Solves, nil
}

// Compare runs every strategy against the same board
func (s *solverServiceImpl) Compare(ctx context.Context, boardStr string) (*CompareResult, error) {
	b, err := board.Parse(boardStr)
	if err != nil {
		return nil, err
	}

	result := &CompareResult{Board: b.Key()}
	for _, strategy := range search.Strategies() {
		record, err := s.solveBoard(ctx, b, strategy.String())
		if err != nil {
			return nil, err
		}
		result.Runs = append(result.Runs, record)
	}

	return result, nil
}

// ValidateBoard checks a board string without running any search
func (s *solverServiceImpl) ValidateBoard(ctx context.Context, boardStr string) (*BoardReport, error) {
	b, err := board.Parse(boardStr)
	if err != nil {
		return &BoardReport{
			Board: boardStr,
			Valid: false,
			Error: err.Error(),
		}, nil
	}

	return &BoardReport{
		Board:     b.Key(),
		Valid:     true,
		Solvable:  b.Solvable(),
		Manhattan: b.Manhattan(),
	}, nil
}

// ListStrategies returns the selectable strategies
func (s *solverServiceImpl) ListStrategies(ctx context.Context) []StrategyInfo {
	strategies := search.Strategies()
	infos := make([]StrategyInfo, 0, len(strategies))
	for _, strategy := range strategies {
		infos = append(infos, StrategyInfo{
			Name:        strategy.String(),
			Description: strategy.Description(),
			Optimal:     strategy.Optimal(),
		})
	}
	return infos
}

// ListPresets returns all available presets
func (s *solverServiceImpl) ListPresets(ctx context.Context) ([]*PresetInfo, error) {
	return s.presets.ListPresets()
}

// LoadPreset returns a preset by name
func (s *solverServiceImpl) LoadPreset(ctx context.Context, name string) (*Preset, error) {
	return s.presets.LoadPreset(name)
}

// SavePreset validates and stores a preset
func (s *solverServiceImpl) SavePreset(ctx context.Context, name string, preset *Preset) error {
	return s.presets.SavePreset(name, preset)
}

// solveBoard invokes the synchronous search core on a worker goroutine and
// waits for its result, honoring context cancellation at this boundary.
// The core itself runs to completion; an abandoned run releases its memory
// when the goroutine returns.
func (s *solverServiceImpl) solveBoard(ctx context.Context, b board.Board, strategyName string) (*SolveRecord, error) {
	strategy, err := search.ParseStrategy(strategyName)
	if err != nil {
		return nil, err
	}

	type outcome struct {
		res *search.Result
		err error
	}

	done := make(chan outcome, 1)
	go func() {
		res, err := search.Solve(b, strategy)
		done <- outcome{res: res, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case out := <-done:
		switch {
		case out.err == nil:
			return solveRecord(out.res, true), nil
		case errors.Is(out.err, search.ErrNoSolution):
			return solveRecord(out.res, false), nil
		default:
			return nil, out.err
		}
	}
}

// solveRecord converts a search result into its transport representation
func solveRecord(res *search.Result, found bool) *SolveRecord {
	record := &SolveRecord{
		Strategy:  res.Strategy.String(),
		Found:     found,
		Expanded:  res.Expanded,
		Generated: res.Generated,
		ElapsedMS: float64(res.Elapsed.Microseconds()) / 1000.0,
		SolvedAt:  time.Now(),
	}

	if !found {
		return record
	}

	record.PathLength = len(res.Path)
	record.Frames = make([]Frame, 0, len(res.Path))
	for i, node := range res.Path {
		frame := Frame{
			Step:  i,
			Board: node.Board.Key(),
			Rows:  node.Board.Rows(),
			G:     node.G,
			H:     node.H(),
		}
		if i > 0 {
			frame.Move = node.Move.String()
			record.Moves = append(record.Moves, node.Move.String())
		}
		record.Frames = append(record.Frames, frame)
	}

	return record
}

// sessionInfo converts a session to its transport representation
func sessionInfo(session *Session) *SessionInfo {
	return &SessionInfo{
		ID:             session.ID,
		Board:          session.Board.Key(),
		Rows:           session.Board.Rows(),
		PresetID:       session.PresetID,
		Solvable:       session.Board.Solvable(),
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		Solves:         session.Solves,
	}
}
