package service

import (
	"fmt"
	"time"

	"github.com/tilelab/slidesolver/puzzle/board"
	"github.com/tilelab/slidesolver/puzzle/search"
)

// Session represents an active puzzle session: a start board plus the
// history of solve runs against it.
type Session struct {
	ID             string
	Board          board.Board
	PresetID       string
	CreatedAt      time.Time
	LastAccessedAt time.Time
	Solves         []*SolveRecord
}

// SessionInfo provides information about a puzzle session
type SessionInfo struct {
	ID             string         `json:"id"`
	Board          string         `json:"board"`
	Rows           [][]int        `json:"rows"`
	PresetID       string         `json:"preset_id,omitempty"`
	Solvable       bool           `json:"solvable"`
	CreatedAt      time.Time      `json:"created_at"`
	LastAccessedAt time.Time      `json:"last_accessed_at"`
	Solves         []*SolveRecord `json:"solves,omitempty"`
}

// Frame is one board along a solution path, ready for rendering
type Frame struct {
	Step  int     `json:"step"`
	Move  string  `json:"move,omitempty"` // empty for the start frame
	Board string  `json:"board"`
	Rows  [][]int `json:"rows"`
	G     int     `json:"g"`
	H     int     `json:"h"`
}

// SolveRecord contains the result of one solve run
type SolveRecord struct {
	Strategy   string    `json:"strategy"`
	Found      bool      `json:"found"`
	PathLength int       `json:"path_length"` // nodes including the start; 0 when no solution
	Moves      []string  `json:"moves,omitempty"`
	Frames     []Frame   `json:"frames,omitempty"`
	Expanded   int       `json:"expanded"`
	Generated  int       `json:"generated"`
	ElapsedMS  float64   `json:"elapsed_ms"`
	SolvedAt   time.Time `json:"solved_at"`
}

// CompareResult holds one solve record per strategy for the same board
type CompareResult struct {
	Board string         `json:"board"`
	Runs  []*SolveRecord `json:"runs"`
}

// BoardReport is the outcome of validating a board string
type BoardReport struct {
	Board     string `json:"board"`
	Valid     bool   `json:"valid"`
	Solvable  bool   `json:"solvable"`
	Manhattan int    `json:"manhattan,omitempty"`
	Error     string `json:"error,omitempty"`
}

// StrategyInfo describes one selectable search strategy
type StrategyInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Optimal     bool   `json:"optimal"`
}

// Preset mirrors the JSON schema of a puzzle preset file
type Preset struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Board       string `json:"board"`
	Strategy    string `json:"strategy"`
}

// Validate checks that the preset's board parses and its strategy is known.
// An empty strategy is allowed and falls back to the caller's default.
func (p *Preset) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("preset name is required")
	}
	if _, err := board.Parse(p.Board); err != nil {
		return fmt.Errorf("preset board: %w", err)
	}
	if p.Strategy != "" {
		if _, err := search.ParseStrategy(p.Strategy); err != nil {
			return fmt.Errorf("preset strategy: %w", err)
		}
	}
	return nil
}

// PresetInfo provides information about an available preset
type PresetInfo struct {
	Filename    string `json:"filename"`
	PresetID    string `json:"preset_id"` // The identifier to use for session creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	Board       string `json:"board"`
	Strategy    string `json:"strategy,omitempty"`
	Solvable    bool   `json:"solvable"`
}
