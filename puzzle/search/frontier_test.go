package search

import (
	"testing"

	"github.com/tilelab/slidesolver/puzzle/board"
)

func TestFrontierOrdersByKey(t *testing.T) {
	f := newFrontier()

	a := newNode(board.Goal(), nil, board.MoveNone)
	b := newNode(board.Goal(), nil, board.MoveNone)
	c := newNode(board.Goal(), nil, board.MoveNone)

	f.push(a, 3)
	f.push(b, 1)
	f.push(c, 2)

	if got := f.pop(); got != b {
		t.Error("Expected the key-1 node first")
	}
	if got := f.pop(); got != c {
		t.Error("Expected the key-2 node second")
	}
	if got := f.pop(); got != a {
		t.Error("Expected the key-3 node last")
	}
	if f.len() != 0 {
		t.Errorf("Expected empty frontier, got %d items", f.len())
	}
}

func TestFrontierFIFOAmongEqualKeys(t *testing.T) {
	f := newFrontier()

	nodes := make([]*Node, 8)
	for i := range nodes {
		nodes[i] = newNode(board.Goal(), nil, board.MoveNone)
		f.push(nodes[i], 7)
	}

	// Equal keys must pop in insertion order.
	for i := range nodes {
		if got := f.pop(); got != nodes[i] {
			t.Fatalf("Pop %d returned the wrong node; equal keys must be FIFO", i)
		}
	}
}

func TestFrontierInterleaved(t *testing.T) {
	f := newFrontier()

	first := newNode(board.Goal(), nil, board.MoveNone)
	second := newNode(board.Goal(), nil, board.MoveNone)
	f.push(first, 5)
	f.push(second, 5)

	if got := f.pop(); got != first {
		t.Error("Expected first-inserted node for equal keys")
	}

	// A later push with a smaller key still jumps the queue.
	third := newNode(board.Goal(), nil, board.MoveNone)
	f.push(third, 1)
	if got := f.pop(); got != third {
		t.Error("Expected the smaller-key node despite later insertion")
	}
	if got := f.pop(); got != second {
		t.Error("Expected the remaining node last")
	}
}
