package model

import "slidepuzzle/game/board"

// Event is the sum type of raw inputs the model consumes. Unrecognized
// events leave the model unchanged.
type Event interface {
	event()
}

// KeyDir is a directional key press.
type KeyDir struct {
	Dir board.Direction
}

// Click is a pointer tap at an absolute window coordinate, carrying the
// window dimensions it was measured against.
type Click struct {
	X, Y       int
	WinW, WinH int
}

// Resize is a window dimension change.
type Resize struct {
	WinW, WinH int
}

// Reshuffle requests a fresh randomization with the configured step
// count.
type Reshuffle struct{}

// NoOp is an input that carries no meaning and must be ignored.
type NoOp struct{}

func (KeyDir) event()    {}
func (Click) event()     {}
func (Resize) event()    {}
func (Reshuffle) event() {}
func (NoOp) event()      {}
