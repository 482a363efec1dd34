package service

import (
	"context"

	"github.com/tilelab/slidesolver/puzzle/board"
)

// SolverService defines all puzzle-solving operations
type SolverService interface {
	// Session Management
	CreateSession(ctx context.Context, boardStr, presetID string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Solving
	Solve(ctx context.Context, sessionID, strategyName string) (*SolveRecord, error)
	ListSolves(ctx context.Context, sessionID string) ([]*SolveRecord, error)
	Compare(ctx context.Context, boardStr string) (*CompareResult, error)

	// Boards and strategies
	ValidateBoard(ctx context.Context, boardStr string) (*BoardReport, error)
	ListStrategies(ctx context.Context) []StrategyInfo

	// Presets
	ListPresets(ctx context.Context) ([]*PresetInfo, error)
	LoadPreset(ctx context.Context, name string) (*Preset, error)
	SavePreset(ctx context.Context, name string, preset *Preset) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, b board.Board, presetID string) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	AppendSolve(id string, record *SolveRecord) error
}

// PresetManager handles puzzle preset loading
type PresetManager interface {
	LoadPreset(name string) (*Preset, error)
	ListPresets() ([]*PresetInfo, error)
	GetDefault() *Preset
	SavePreset(name string, preset *Preset) error
}
