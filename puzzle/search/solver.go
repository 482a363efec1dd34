package search

import (
	"errors"
	"time"

	"github.com/tilelab/slidesolver/puzzle/board"
)

// ErrNoSolution is returned when the frontier empties without reaching the
// goal, i.e. the start board lies in the wrong parity class. The Result
// accompanying the error still carries the exploration counters.
var ErrNoSolution = errors.New("search: no solution")

// Result is the outcome of one solver run.
type Result struct {
	// Strategy that produced this result.
	Strategy Strategy

	// Path is the node sequence from the root to the goal, inclusive.
	// A start equal to the goal yields a path holding just the root.
	// Nil when no solution exists.
	Path []*Node

	// Expanded counts nodes popped from the frontier.
	Expanded int

	// Generated counts nodes added to the frontier, including the root.
	Generated int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// Moves returns the move sequence along the path, omitting the root.
func (r *Result) Moves() []board.Move {
	if len(r.Path) == 0 {
		return nil
	}
	moves := make([]board.Move, 0, len(r.Path)-1)
	for _, n := range r.Path[1:] {
		moves = append(moves, n.Move)
	}
	return moves
}

// Solve runs the best-first loop from start under the given strategy and
// returns the reconstructed path, or ErrNoSolution once the frontier is
// exhausted.
//
// The loop is the same for every strategy: pop the minimum-key node (FIFO
// among equal keys), test it against the goal, then generate its successors.
// A successor whose board has been seen before is dropped; otherwise it is
// pushed and its board is marked seen immediately. Marking at generation
// rather than at expansion keeps the first path found to each board, which
// is cost-minimal for uniform-cost and A* on this unit-cost graph but is
// not a general-purpose guarantee for other ordering keys.
//
// The run is synchronous and single-threaded; it owns its frontier and
// visited set exclusively and runs to completion. Callers needing
// responsiveness should invoke Solve from a worker goroutine.
func Solve(start board.Board, strategy Strategy) (*Result, error) {
	switch strategy {
	case UniformCost, Greedy, AStar:
	default:
		return nil, ErrUnknownStrategy
	}

	began := time.Now()
	res := &Result{Strategy: strategy}

	root := newNode(start, nil, board.MoveNone)
	open := newFrontier()
	open.push(root, strategy.key(root))
	res.Generated++

	visited := make(map[board.Board]struct{}, 1024)
	visited[root.Board] = struct{}{}

	for open.len() > 0 {
		node := open.pop()
		res.Expanded++

		if node.Board.IsGoal() {
			res.Path = node.Path()
			res.Elapsed = time.Since(began)
			return res, nil
		}

		for _, succ := range node.Board.Successors() {
			if _, seen := visited[succ.Board]; seen {
				continue
			}
			child := newNode(succ.Board, node, succ.Move)
			visited[child.Board] = struct{}{}
			open.push(child, strategy.key(child))
			res.Generated++
		}
	}

	// The start board's entire parity class has been explored.
	res.Elapsed = time.Since(began)
	return res, ErrNoSolution
}
