package board

import "slices"

// Params carries everything needed to construct a Board. Start and Goal
// are comma-separated tile sequences; an empty string selects the
// canonical solved sequence.
type Params struct {
	Seed        int64
	Width       int
	Height      int
	TileSize    int
	TileSpacing int
	Start       string
	Goal        string
}

// New constructs a Board from the given parameters. Dimensions are
// clamped to [MinDim, MaxDim]. Start and Goal sequences that fail to
// parse into a valid permutation fall back to the canonical solved
// sequence; construction never fails.
func New(p Params) Board {
	w := clampDim(p.Width)
	h := clampDim(p.Height)
	n := w * h

	tiles := sequenceOrSolved(p.Start, n)
	goal := sequenceOrSolved(p.Goal, n)

	return Board{
		Width:       w,
		Height:      h,
		TileSize:    p.TileSize,
		TileSpacing: p.TileSpacing,
		Tiles:       tiles,
		Goal:        goal,
		Seed:        p.Seed,
		Empty:       slices.Index(tiles, EmptySlot),
	}
}

// SolvedSequence returns the canonical solved arrangement for n cells:
// tiles 0..n-2 in order with the empty slot last.
func SolvedSequence(n int) []Tile {
	tiles := make([]Tile, n)
	for i := 0; i < n-1; i++ {
		tiles[i] = Tile(i)
	}
	tiles[n-1] = EmptySlot
	return tiles
}

// Solved reports whether the current arrangement matches the goal.
func (b Board) Solved() bool {
	return slices.Equal(b.Tiles, b.Goal)
}

// At returns the tile at the given cell and whether the cell is on the
// board.
func (b Board) At(row, col int) (Tile, bool) {
	if row < 0 || row >= b.Height || col < 0 || col >= b.Width {
		return EmptySlot, false
	}
	return b.Tiles[row*b.Width+col], true
}

// Cell converts a tile index into (row, col) coordinates.
func (b Board) Cell(index int) (row, col int) {
	return index / b.Width, index % b.Width
}

// sequenceOrSolved parses s, substituting the solved sequence when s is
// empty or structurally invalid. This is the documented fallback for
// malformed start/goal configuration.
func sequenceOrSolved(s string, n int) []Tile {
	if s == "" {
		return SolvedSequence(n)
	}
	tiles, err := ParseSequence(s, n)
	if err != nil {
		return SolvedSequence(n)
	}
	return tiles
}

func clampDim(d int) int {
	if d < MinDim {
		return MinDim
	}
	if d > MaxDim {
		return MaxDim
	}
	return d
}
