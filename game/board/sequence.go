package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSequence reports a tile sequence that is not a valid
// permutation for the board size.
var ErrInvalidSequence = errors.New("invalid tile sequence")

// ParseSequence parses the comma-separated tile sequence wire format
// into an arrangement for n cells. Tiles are written with their 1-based
// display numbers; the empty slot is an empty field, as in
// "1,2,3,4,5,6,7,8,". A sequence of exactly n-1 tiles with no empty
// field gets the empty slot appended (the implicit-empty form used by
// configuration defaults).
//
// The result is guaranteed to be a permutation of one EmptySlot plus
// each identifier 0..n-2 exactly once; anything else is an error.
func ParseSequence(s string, n int) ([]Tile, error) {
	fields := strings.Split(s, ",")

	tiles := make([]Tile, 0, n)
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			tiles = append(tiles, EmptySlot)
			continue
		}

		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidSequence, field)
		}
		if v < 1 || v > n-1 {
			return nil, fmt.Errorf("%w: tile %d out of range 1..%d", ErrInvalidSequence, v, n-1)
		}
		tiles = append(tiles, Tile(v-1))
	}

	// Implicit trailing empty slot
	if len(tiles) == n-1 && !containsEmpty(tiles) {
		tiles = append(tiles, EmptySlot)
	}

	if len(tiles) != n {
		return nil, fmt.Errorf("%w: got %d entries, want %d", ErrInvalidSequence, len(tiles), n)
	}

	seen := make([]bool, n-1)
	empties := 0
	for _, t := range tiles {
		if t == EmptySlot {
			empties++
			continue
		}
		if seen[t] {
			return nil, fmt.Errorf("%w: duplicate tile %d", ErrInvalidSequence, int(t)+1)
		}
		seen[t] = true
	}
	if empties != 1 {
		return nil, fmt.Errorf("%w: got %d empty slots, want exactly 1", ErrInvalidSequence, empties)
	}

	return tiles, nil
}

// FormatSequence renders an arrangement in the wire format accepted by
// ParseSequence: 1-based display numbers with an empty field for the
// empty slot.
func FormatSequence(tiles []Tile) string {
	fields := make([]string, len(tiles))
	for i, t := range tiles {
		if t == EmptySlot {
			fields[i] = ""
			continue
		}
		fields[i] = strconv.Itoa(int(t) + 1)
	}
	return strings.Join(fields, ",")
}

func containsEmpty(tiles []Tile) bool {
	for _, t := range tiles {
		if t == EmptySlot {
			return true
		}
	}
	return false
}
