package board

// Update applies an action and returns the resulting board. The
// receiver is never modified. Unrecognized actions, moves off the
// board, and moves of non-adjacent tiles all return the input state
// unchanged; there is no failing path.
func (b Board) Update(a Action) Board {
	switch a := a.(type) {
	case Move:
		return b.move(a.Dir)
	case MoveTile:
		return b.moveTile(a.Row, a.Col)
	case Shuffle:
		return b.shuffle(a.Steps)
	default:
		return b
	}
}

// move slides the neighbor of the empty slot in the given direction.
// A tile moving left must sit to the right of the empty slot, so the
// source cell is offset opposite to the direction of travel.
func (b Board) move(dir Direction) Board {
	row, col := b.Cell(b.Empty)

	switch dir {
	case Left:
		col++
	case Right:
		col--
	case Up:
		row++
	case Down:
		row--
	default:
		return b
	}

	return b.moveTile(row, col)
}

// moveTile swaps the tile at (row, col) with the empty slot when the
// two cells are orthogonal neighbors. Out-of-range coordinates and
// non-adjacent cells are tolerated as no-ops.
func (b Board) moveTile(row, col int) Board {
	if row < 0 || row >= b.Height || col < 0 || col >= b.Width {
		return b
	}

	index := row*b.Width + col
	if !b.adjacent(index, b.Empty) {
		return b
	}

	return b.swapped(index)
}

// adjacent reports whether two cell indices are orthogonal neighbors.
func (b Board) adjacent(i, j int) bool {
	ri, ci := b.Cell(i)
	rj, cj := b.Cell(j)

	dr := ri - rj
	if dr < 0 {
		dr = -dr
	}
	dc := ci - cj
	if dc < 0 {
		dc = -dc
	}

	return dr+dc == 1
}

// swapped returns a copy of the board with the tile at index moved into
// the empty slot.
func (b Board) swapped(index int) Board {
	tiles := make([]Tile, len(b.Tiles))
	copy(tiles, b.Tiles)
	tiles[b.Empty], tiles[index] = tiles[index], tiles[b.Empty]

	next := b
	next.Tiles = tiles
	next.Empty = index
	return next
}

// neighbors returns the cell indices orthogonally adjacent to the empty
// slot, in up, down, left, right order.
func (b Board) neighbors() []int {
	row, col := b.Cell(b.Empty)

	candidates := []struct{ r, c int }{
		{row - 1, col},
		{row + 1, col},
		{row, col - 1},
		{row, col + 1},
	}

	indices := make([]int, 0, 4)
	for _, cand := range candidates {
		if cand.r < 0 || cand.r >= b.Height || cand.c < 0 || cand.c >= b.Width {
			continue
		}
		indices = append(indices, cand.r*b.Width+cand.c)
	}
	return indices
}
