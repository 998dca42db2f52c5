// Package layout computes board geometry: how large tiles should be
// for a given window and which board cell a pointer coordinate hits.
// Everything here is pure arithmetic over the board's public
// dimensions; no rendering state is kept.
package layout

// Tile sizing bounds
const (
	MinTileSize = 5
	MaxTileSize = 200

	// windowPadding is subtracted from each window dimension before
	// deriving a tile size, leaving a margin around the board.
	windowPadding = 40
)

// ComputeTileSize derives a tile size from the window dimensions: the
// smaller of the width- and height-derived sizes after padding, clamped
// to [MinTileSize, MaxTileSize]. An explicit configuration override
// takes precedence over this computation and is applied by the caller.
func ComputeTileSize(boardW, boardH, winW, winH int) int {
	if boardW < 1 {
		boardW = 1
	}
	if boardH < 1 {
		boardH = 1
	}

	byWidth := (winW - windowPadding) / boardW
	byHeight := (winH - windowPadding) / boardH

	size := byWidth
	if byHeight < size {
		size = byHeight
	}

	if size < MinTileSize {
		return MinTileSize
	}
	if size > MaxTileSize {
		return MaxTileSize
	}
	return size
}

// Origin returns the top-left pixel of the board, centered within the
// window.
func Origin(boardW, boardH, tileSize, winW, winH int) (x, y int) {
	return (winW - boardW*tileSize) / 2, (winH - boardH*tileSize) / 2
}

// CellAt maps an absolute pointer coordinate to a board cell. The
// second return value is false when the coordinate misses the board:
// negative offsets from the board origin and cells at or beyond the
// board edges are rejected rather than mapped to out-of-range cells.
func CellAt(px, py, winW, winH, boardW, boardH, tileSize int) (row, col int, ok bool) {
	if tileSize <= 0 {
		return 0, 0, false
	}

	ox, oy := Origin(boardW, boardH, tileSize, winW, winH)
	dx := px - ox
	dy := py - oy
	if dx < 0 || dy < 0 {
		return 0, 0, false
	}

	col = dx / tileSize
	row = dy / tileSize
	if col >= boardW || row >= boardH {
		return 0, 0, false
	}
	return row, col, true
}
