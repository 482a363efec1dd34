package board

import (
	"errors"
	"reflect"
	"sort"
	"testing"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		name     string
		expected Move
	}{
		{"up", MoveUp},
		{"left", MoveLeft},
		{"right", MoveRight},
		{"down", MoveDown},
	}

	for _, tt := range tests {
		m, err := ParseMove(tt.name)
		if err != nil {
			t.Fatalf("ParseMove(%q) failed: %v", tt.name, err)
		}
		if m != tt.expected {
			t.Errorf("ParseMove(%q) = %v, expected %v", tt.name, m, tt.expected)
		}
		if m.String() != tt.name {
			t.Errorf("String() = %q, expected %q", m.String(), tt.name)
		}
	}

	if _, err := ParseMove("sideways"); !errors.Is(err, ErrUnknownMove) {
		t.Errorf("Expected ErrUnknownMove, got %v", err)
	}
}

func TestApply(t *testing.T) {
	// Blank at center: all four moves are legal.
	g := Goal()

	up, ok := g.Apply(MoveUp)
	if !ok {
		t.Fatal("MoveUp should be legal from the goal")
	}
	if up.Key() != "103824765" {
		t.Errorf("Expected 103824765 after up, got %s", up.Key())
	}

	left, ok := g.Apply(MoveLeft)
	if !ok {
		t.Fatal("MoveLeft should be legal from the goal")
	}
	if left.Key() != "123084765" {
		t.Errorf("Expected 123084765 after left, got %s", left.Key())
	}

	// The original board is untouched.
	if !g.IsGoal() {
		t.Error("Apply must not mutate the receiver")
	}

	// MoveNone is never legal.
	if _, ok := g.Apply(MoveNone); ok {
		t.Error("MoveNone should not be applicable")
	}
}

func TestApplyOutOfBounds(t *testing.T) {
	// Blank in the top-left corner: only right and down are legal.
	b, _ := Parse("012345678")

	if _, ok := b.Apply(MoveUp); ok {
		t.Error("MoveUp should be illegal with blank in top-left corner")
	}
	if _, ok := b.Apply(MoveLeft); ok {
		t.Error("MoveLeft should be illegal with blank in top-left corner")
	}
	if _, ok := b.Apply(MoveRight); !ok {
		t.Error("MoveRight should be legal with blank in top-left corner")
	}
	if _, ok := b.Apply(MoveDown); !ok {
		t.Error("MoveDown should be legal with blank in top-left corner")
	}
}

func TestSuccessorsCount(t *testing.T) {
	tests := []struct {
		board    string
		expected int
	}{
		{"012345678", 2}, // corner
		{"102345678", 3}, // edge
		{"123804765", 4}, // center
		{"123456780", 2}, // corner
		{"123456708", 3}, // edge
	}

	for _, tt := range tests {
		b, _ := Parse(tt.board)
		succs := b.Successors()
		if len(succs) != tt.expected {
			t.Errorf("Successors(%s) returned %d entries, expected %d", tt.board, len(succs), tt.expected)
		}
	}
}

func TestSuccessorsOrder(t *testing.T) {
	// Blank at center: the fixed enumeration order is up, left, right, down.
	succs := Goal().Successors()

	expected := []Move{MoveUp, MoveLeft, MoveRight, MoveDown}
	for i, succ := range succs {
		if succ.Move != expected[i] {
			t.Errorf("successor %d has move %v, expected %v", i, succ.Move, expected[i])
		}
	}
}

func TestSuccessorsIdempotent(t *testing.T) {
	b, _ := Parse("283164705")

	first := b.Successors()
	second := b.Successors()

	if !reflect.DeepEqual(first, second) {
		t.Error("Successors must return identical results on repeated calls")
	}
}

func TestMovesPermuteTiles(t *testing.T) {
	// Every legal move preserves the multiset of tile values.
	boards := []string{"283164705", "123804765", "012345678", "021358467"}

	for _, input := range boards {
		b, _ := Parse(input)
		want := sortedTiles(b)
		for _, succ := range b.Successors() {
			got := sortedTiles(succ.Board)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("move %s from %s changed the tile multiset: %v", succ.Move, input, got)
			}
		}
	}
}

func sortedTiles(b Board) []int {
	tiles := make([]int, len(b))
	copy(tiles, b[:])
	sort.Ints(tiles)
	return tiles
}
