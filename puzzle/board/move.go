package board

import (
	"errors"
	"fmt"
)

// ErrUnknownMove is returned when a move name cannot be parsed.
var ErrUnknownMove = errors.New("board: unknown move")

// Move names the direction of the blank's neighbor that slides into the
// blank. MoveUp means the tile above the blank slides down (equivalently,
// the blank moves up).
type Move int

const (
	MoveNone Move = iota
	MoveUp
	MoveLeft
	MoveRight
	MoveDown
)

// moveOrder is the deterministic successor enumeration order. It equals
// row-major order of the sliding tile's cell: the tile above the blank
// comes first, then left, right, and below.
var moveOrder = [4]Move{MoveUp, MoveLeft, MoveRight, MoveDown}

// String returns the lowercase move name used by the service and API layers.
func (m Move) String() string {
	switch m {
	case MoveUp:
		return "up"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MoveDown:
		return "down"
	default:
		return "none"
	}
}

// ParseMove converts a lowercase move name to a Move.
func ParseMove(name string) (Move, error) {
	switch name {
	case "up":
		return MoveUp, nil
	case "left":
		return MoveLeft, nil
	case "right":
		return MoveRight, nil
	case "down":
		return MoveDown, nil
	default:
		return MoveNone, fmt.Errorf("%w: %q", ErrUnknownMove, name)
	}
}

// delta returns the row/column offset from the blank to the cell that
// slides in for this move.
func (m Move) delta() (dr, dc int) {
	switch m {
	case MoveUp:
		return -1, 0
	case MoveLeft:
		return 0, -1
	case MoveRight:
		return 0, 1
	case MoveDown:
		return 1, 0
	default:
		return 0, 0
	}
}

// Successor pairs a legal move with the board it produces.
type Successor struct {
	Move  Move
	Board Board
}

// Apply returns the board produced by sliding the blank's neighbor in
// direction m into the blank. The second return value is false when the
// blank has no in-bounds neighbor in that direction (or m is MoveNone).
// The receiver is never modified.
func (b Board) Apply(m Move) (Board, bool) {
	if m == MoveNone {
		return b, false
	}

	blank := b.blankIndex()
	r, c := blank/Size, blank%Size

	dr, dc := m.delta()
	nr, nc := r+dr, c+dc
	if nr < 0 || nr >= Size || nc < 0 || nc >= Size {
		return b, false
	}

	next := b
	neighbor := nr*Size + nc
	next[blank], next[neighbor] = next[neighbor], next[blank]
	return next, true
}

// Successors enumerates every legal move and the resulting board, in the
// fixed order up, left, right, down. A corner blank yields 2 entries, an
// edge blank 3, the center blank 4. Calling Successors twice on the same
// board yields identical results.
func (b Board) Successors() []Successor {
	out := make([]Successor, 0, len(moveOrder))
	for _, m := range moveOrder {
		if next, ok := b.Apply(m); ok {
			out = append(out, Successor{Move: m, Board: next})
		}
	}
	return out
}
