// Package search implements best-first search over 8-puzzle boards.
//
// The search package provides:
//   - Node: a board plus path cost, producing move, and parent link
//   - A heap-backed frontier with stable FIFO order among equal keys
//   - A generation-time visited set keyed by board content
//   - Three interchangeable strategies sharing one expansion loop
//
// Strategies:
//
// The loop is parameterized by an ordering key extracted from each node:
//
//	uniform_cost  key = g       optimal, uninformed
//	greedy        key = h       fast, possibly suboptimal
//	astar         key = g + h   optimal (admissible, consistent heuristic)
//
// All three share identical termination, tie-break, and deduplication
// behavior, so results differ only through the ordering key.
//
// Usage:
//
//	b, _ := board.Parse("283164705")
//	result, err := search.Solve(b, search.AStar)
//	if errors.Is(err, search.ErrNoSolution) {
//		// the board is unsolvable; result still carries counters
//	}
//
//	for _, node := range result.Path {
//		fmt.Println(node.Move, node.Board)
//	}
//
// Outcomes:
//
// A solvable start returns the path from the root to the goal; a start
// already at the goal returns a single-node path. An unsolvable start is
// detected by frontier exhaustion after its full parity class (9!/2 =
// 181,440 boards) has been explored and is reported as ErrNoSolution, never
// as a hang or panic.
//
// Concurrency:
//
// One Solve invocation is single-threaded and owns all of its state; run it
// on a worker goroutine when the caller needs responsiveness. Nodes remain
// reachable through parent links until the Result is released.
package search
