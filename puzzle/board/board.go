package board

import (
	"errors"
	"fmt"
)

const (
	// Size is the edge length of the puzzle grid.
	Size = 3

	// Cells is the total number of cells on the board.
	Cells = Size * Size

	// BlankTile is the value representing the empty cell.
	BlankTile = 0
)

// ErrMalformedBoard is returned when a board string cannot be parsed
// into a well-formed board.
var ErrMalformedBoard = errors.New("board: malformed board")

// Board is one arrangement of tiles on the 3x3 grid in row-major order.
// The zero tile is the blank. Boards are values: applying a move never
// mutates the receiver, it returns a new Board.
type Board [Cells]int

// goalLayout is the fixed target arrangement: blank at center, tiles
// 1..8 in reading order around it.
var goalLayout = Board{
	1, 2, 3,
	8, 0, 4,
	7, 6, 5,
}

// goalIndex maps each tile value to its cell index in the goal layout.
var goalIndex [Cells]int

func init() {
	for i, v := range goalLayout {
		goalIndex[v] = i
	}
}

// Goal returns the fixed target board.
func Goal() Board {
	return goalLayout
}

// Parse converts a flattened board string of exactly Cells digits into a
// Board. Each digit 0..Cells-1 must appear exactly once; 0 marks the blank.
// All violations are reported as wrapped ErrMalformedBoard.
func Parse(s string) (Board, error) {
	var b Board

	if len(s) != Cells {
		return b, fmt.Errorf("%w: expected exactly %d digits, got %d characters", ErrMalformedBoard, Cells, len(s))
	}

	var seen [Cells]bool
	for i := 0; i < Cells; i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			return b, fmt.Errorf("%w: character %q at position %d is not a digit", ErrMalformedBoard, ch, i)
		}
		v := int(ch - '0')
		if v >= Cells {
			return b, fmt.Errorf("%w: tile %d at position %d is out of range [0,%d]", ErrMalformedBoard, v, i, Cells-1)
		}
		if seen[v] {
			return b, fmt.Errorf("%w: duplicate tile %d at position %d", ErrMalformedBoard, v, i)
		}
		seen[v] = true
		b[i] = v
	}

	return b, nil
}

// IsGoal reports whether the board exactly matches the goal layout.
func (b Board) IsGoal() bool {
	return b == goalLayout
}

// Key returns the canonical row-major digit string for the board.
// Two boards are equal iff their keys are equal.
func (b Board) Key() string {
	buf := make([]byte, Cells)
	for i, v := range b {
		buf[i] = byte('0' + v)
	}
	return string(buf)
}

// String returns the canonical key.
func (b Board) String() string {
	return b.Key()
}

// Rows returns the board as a Size x Size slice of rows, suitable for
// JSON responses and rendering.
func (b Board) Rows() [][]int {
	rows := make([][]int, Size)
	for r := 0; r < Size; r++ {
		row := make([]int, Size)
		copy(row, b[r*Size:(r+1)*Size])
		rows[r] = row
	}
	return rows
}

// blankIndex returns the cell index of the blank.
func (b Board) blankIndex() int {
	for i, v := range b {
		if v == BlankTile {
			return i
		}
	}
	// Unreachable for boards built via Parse or Apply.
	panic("board: no blank tile")
}

// Manhattan returns the sum over all non-blank tiles of the grid distance
// between each tile's current cell and its cell in the goal layout. The
// estimate never exceeds the true remaining move count and never decreases
// by more than one across a single move.
func (b Board) Manhattan() int {
	distance := 0
	for i, v := range b {
		if v == BlankTile {
			continue
		}
		g := goalIndex[v]
		dr := i/Size - g/Size
		if dr < 0 {
			dr = -dr
		}
		dc := i%Size - g%Size
		if dc < 0 {
			dc = -dc
		}
		distance += dr + dc
	}
	return distance
}

// Solvable reports whether the board lies in the same permutation-parity
// class as the goal, i.e. whether any sequence of legal moves reaches the
// goal. The search loop never consults this; it exists for validation
// tooling and pre-flight diagnostics.
func (b Board) Solvable() bool {
	return inversionParity(b) == inversionParity(goalLayout)
}

// inversionParity returns the parity (0 or 1) of the number of inversions
// among non-blank tiles in row-major order. For an odd grid width this
// parity is invariant under legal moves.
func inversionParity(b Board) int {
	inversions := 0
	for i := 0; i < Cells; i++ {
		if b[i] == BlankTile {
			continue
		}
		for j := i + 1; j < Cells; j++ {
			if b[j] != BlankTile && b[i] > b[j] {
				inversions++
			}
		}
	}
	return inversions % 2
}
