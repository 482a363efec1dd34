package search

import (
	"errors"
	"fmt"
)

// ErrUnknownStrategy is returned when a strategy name cannot be parsed.
var ErrUnknownStrategy = errors.New("search: unknown strategy")

// Strategy selects the frontier ordering key for the best-first loop. All
// strategies share the same expansion, tie-break, and visited-set behavior;
// they differ only in the key.
type Strategy int

const (
	// UniformCost orders the frontier by path cost g. Optimal on the
	// unit-cost move graph, but explores many goal-irrelevant boards.
	UniformCost Strategy = iota

	// Greedy orders the frontier by the heuristic h alone. Fast, but the
	// returned path may be longer than necessary.
	Greedy

	// AStar orders the frontier by f = g + h. Optimal because the
	// Manhattan heuristic is admissible and consistent.
	AStar
)

// String returns the strategy name used by the service and API layers.
func (s Strategy) String() string {
	switch s {
	case UniformCost:
		return "uniform_cost"
	case Greedy:
		return "greedy"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Description returns a one-line human-readable summary.
func (s Strategy) Description() string {
	switch s {
	case UniformCost:
		return "Uninformed search ordered by path cost; optimal but slow"
	case Greedy:
		return "Best-first search ordered by Manhattan distance; fast but may return a longer path"
	case AStar:
		return "A* ordered by path cost plus Manhattan distance; optimal"
	default:
		return "unknown strategy"
	}
}

// Optimal reports whether the strategy guarantees a shortest path.
func (s Strategy) Optimal() bool {
	return s == UniformCost || s == AStar
}

// key returns the frontier ordering value for a node under this strategy.
func (s Strategy) key(n *Node) int {
	switch s {
	case UniformCost:
		return n.G
	case Greedy:
		return n.H()
	default:
		return n.F()
	}
}

// Strategies returns all selectable strategies in a fixed order.
func Strategies() []Strategy {
	return []Strategy{UniformCost, Greedy, AStar}
}

// ParseStrategy converts a strategy name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "uniform_cost":
		return UniformCost, nil
	case "greedy":
		return Greedy, nil
	case "astar":
		return AStar, nil
	default:
		return AStar, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
