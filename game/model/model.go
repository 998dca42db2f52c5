package model

import (
	"slidepuzzle/game/board"
	"slidepuzzle/game/config"
	"slidepuzzle/game/layout"
)

// Model is the complete application state: the puzzle board plus the
// window geometry needed to size tiles and map clicks.
type Model struct {
	Board board.Board

	WinW, WinH int

	// SizeOverride pins the tile size to an explicit configuration
	// value. Zero means the size follows the window.
	SizeOverride int

	// ShuffleSteps is the step count used for the startup shuffle and
	// any Reshuffle event.
	ShuffleSteps int
}

// New builds the initial model from resolved options and the starting
// window dimensions, applying the startup shuffle.
func New(opts config.Options, winW, winH, tileSpacing int) Model {
	size := opts.TileSize
	if size == 0 {
		size = layout.ComputeTileSize(opts.Width, opts.Height, winW, winH)
	}

	b := board.New(opts.BoardParams(size, tileSpacing))
	b = b.Update(board.Shuffle{Steps: opts.ShuffleSteps})

	return Model{
		Board:        b,
		WinW:         winW,
		WinH:         winH,
		SizeOverride: opts.TileSize,
		ShuffleSteps: opts.ShuffleSteps,
	}
}

// Update applies one input event and returns the resulting model. The
// receiver is never modified. Clicks outside the board, directional
// moves with no neighbor, and unrecognized events all return the input
// state unchanged.
func (m Model) Update(e Event) Model {
	switch e := e.(type) {
	case KeyDir:
		m.Board = m.Board.Update(board.Move{Dir: e.Dir})
		return m

	case Click:
		row, col, ok := layout.CellAt(e.X, e.Y, e.WinW, e.WinH,
			m.Board.Width, m.Board.Height, m.Board.TileSize)
		if !ok {
			return m
		}
		m.Board = m.Board.Update(board.MoveTile{Row: row, Col: col})
		return m

	case Resize:
		m.WinW, m.WinH = e.WinW, e.WinH
		if m.SizeOverride == 0 {
			m.Board.TileSize = layout.ComputeTileSize(
				m.Board.Width, m.Board.Height, e.WinW, e.WinH)
		}
		return m

	case Reshuffle:
		m.Board = m.Board.Update(board.Shuffle{Steps: m.ShuffleSteps})
		return m

	default:
		return m
	}
}

// Solved reports whether the board matches its goal arrangement.
func (m Model) Solved() bool {
	return m.Board.Solved()
}
