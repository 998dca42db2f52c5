// Package board provides the core logic for the sliding-tile puzzle.
//
// The board package implements the puzzle mechanics including:
//   - Tile arrangement as a permutation with a single empty slot
//   - Legal-move detection for directional and coordinate moves
//   - Deterministic, seed-driven shuffling
//   - Win-condition checking against a goal arrangement
//   - Parsing and formatting of the comma-separated tile sequence format
//
// Core Types:
//
// Board is an immutable value: every transition goes through Update,
// which returns a new Board and leaves the receiver untouched. Action
// is the sum type of transitions (Move, MoveTile, Shuffle, NoOp);
// unrecognized actions leave the board unchanged.
//
// Usage:
//
//	b := board.New(board.Params{
//		Seed:   42,
//		Width:  4,
//		Height: 4,
//	})
//
//	b = b.Update(board.Shuffle{Steps: 256})
//	b = b.Update(board.Move{Dir: board.Left})
//	if b.Solved() {
//		// puzzle complete
//	}
//
// Puzzle Rules:
//
// Tiles slide into the single empty slot. A directional move slides the
// neighboring tile into the empty slot in the given direction, so the
// empty slot itself travels the opposite way. Shuffling applies a
// sequence of random legal moves starting from the current arrangement,
// which keeps the puzzle solvable by construction.
package board
