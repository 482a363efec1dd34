// Package board provides the sliding-tile board representation for the
// 8-puzzle.
//
// The board package implements:
//   - An immutable 3x3 board value with one blank cell
//   - Parsing of flattened 9-digit board strings with strict validation
//   - Legal move enumeration in a fixed deterministic order
//   - The Manhattan-distance heuristic against the fixed goal layout
//   - A permutation-parity solvability check for tooling
//
// Board Encoding:
//
// A board is written as its nine tiles in row-major order, with 0 for the
// blank. The fixed goal layout is "123804765":
//
//	1 2 3
//	8 _ 4
//	7 6 5
//
// Moves:
//
// A move names the direction of the blank's neighbor that slides into the
// blank: "up" slides the tile above the blank down. A move is legal exactly
// when the blank has an in-bounds neighbor in that direction, so between two
// and four moves are legal from any board.
//
// Usage:
//
//	b, err := board.Parse("283164705")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, succ := range b.Successors() {
//		fmt.Println(succ.Move, succ.Board)
//	}
//
// Immutability:
//
// Board is an array value. Apply and Successors return new values and never
// modify the receiver, so boards can be shared freely across goroutines.
package board
