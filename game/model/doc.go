// Package model is the outer puzzle model. It composes the board with
// window geometry: translating input events (arrow keys, pointer
// clicks, window resizes) into board actions, recomputing the tile size
// when the window changes, and exposing the solved predicate.
//
// Like the board, a Model is an immutable value: Update returns a new
// snapshot and never modifies the receiver. Input adapters construct
// Event values; the model decides what, if anything, they mean for the
// board.
package model
