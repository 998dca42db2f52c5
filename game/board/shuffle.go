package board

import "math/rand"

// shuffle applies steps random legal single-tile moves. Each step picks
// uniformly among the empty slot's available neighbors, excluding the
// move that would exactly undo the previous step whenever another
// neighbor is available. The generator is seeded from Board.Seed, so
// the same seed and step count always yield the same arrangement; the
// stored seed advances afterwards so consecutive shuffles differ.
//
// shuffle with steps <= 0 is the identity.
func (b Board) shuffle(steps int) Board {
	if steps <= 0 {
		return b
	}

	next := b
	next.Tiles = make([]Tile, len(b.Tiles))
	copy(next.Tiles, b.Tiles)

	rng := rand.New(rand.NewSource(b.Seed))
	prev := -1 // cell the empty slot came from on the previous step

	for i := 0; i < steps; i++ {
		options := next.neighbors()
		if prev >= 0 && len(options) > 1 {
			for j, idx := range options {
				if idx == prev {
					options = append(options[:j], options[j+1:]...)
					break
				}
			}
		}

		pick := options[rng.Intn(len(options))]
		prev = next.Empty
		next.Tiles[next.Empty], next.Tiles[pick] = next.Tiles[pick], next.Tiles[next.Empty]
		next.Empty = pick
	}

	next.Seed = rng.Int63()
	return next
}
