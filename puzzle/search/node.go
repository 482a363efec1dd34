package search

import "github.com/tilelab/slidesolver/puzzle/board"

// Node wraps a board with search bookkeeping: the accumulated path cost,
// the move that produced it, and a back-pointer to its parent. Nodes are
// never modified after construction; parent links form a tree with children
// pointing at ancestors, never the reverse.
type Node struct {
	// Board is the arrangement this node represents.
	Board board.Board

	// Move is the move that produced Board from the parent's board.
	// MoveNone for the root.
	Move board.Move

	// G is the path cost from the root. Every move costs one.
	G int

	parent *Node
	h      int
}

// newNode builds a node from a board and an optional parent. The root is
// built with a nil parent and MoveNone.
func newNode(b board.Board, parent *Node, m board.Move) *Node {
	n := &Node{
		Board:  b,
		Move:   m,
		parent: parent,
		h:      b.Manhattan(),
	}
	if parent != nil {
		n.G = parent.G + 1
	}
	return n
}

// H returns the heuristic estimate of the remaining cost to the goal.
func (n *Node) H() int {
	return n.h
}

// F returns the combined priority G + H used by the A* strategy.
func (n *Node) F() int {
	return n.G + n.h
}

// Parent returns the node this one was generated from, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Path walks the parent links and returns the node sequence ordered from
// the root to n. Parent links naturally yield the reverse order, so the
// slice is built backwards and holds exactly G+1 nodes.
func (n *Node) Path() []*Node {
	path := make([]*Node, n.G+1)
	for cur := n; cur != nil; cur = cur.parent {
		path[cur.G] = cur
	}
	return path
}
