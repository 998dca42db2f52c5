package board

import (
	"errors"
	"slices"
	"testing"
)

func TestParseSequence_ExplicitEmptySlot(t *testing.T) {
	tiles, err := ParseSequence("1,2,3,4,5,6,7,8,", 9)
	if err != nil {
		t.Fatalf("Failed to parse sequence: %v", err)
	}

	want := []Tile{0, 1, 2, 3, 4, 5, 6, 7, EmptySlot}
	if !slices.Equal(tiles, want) {
		t.Errorf("Got %v, want %v", tiles, want)
	}
}

func TestParseSequence_EmptySlotMidSequence(t *testing.T) {
	tiles, err := ParseSequence("1,2,,3", 4)
	if err != nil {
		t.Fatalf("Failed to parse sequence: %v", err)
	}

	want := []Tile{0, 1, EmptySlot, 2}
	if !slices.Equal(tiles, want) {
		t.Errorf("Got %v, want %v", tiles, want)
	}
}

func TestParseSequence_ImplicitTrailingEmpty(t *testing.T) {
	tiles, err := ParseSequence("1,2,3", 4)
	if err != nil {
		t.Fatalf("Failed to parse sequence: %v", err)
	}

	if tiles[3] != EmptySlot {
		t.Errorf("Expected implicit empty slot at the end, got %v", tiles)
	}
}

func TestParseSequence_ToleratesSpaces(t *testing.T) {
	tiles, err := ParseSequence(" 1, 2 ,3 , ", 4)
	if err != nil {
		t.Fatalf("Failed to parse sequence: %v", err)
	}

	want := []Tile{0, 1, 2, EmptySlot}
	if !slices.Equal(tiles, want) {
		t.Errorf("Got %v, want %v", tiles, want)
	}
}

func TestParseSequence_Invalid(t *testing.T) {
	cases := []struct {
		name string
		s    string
	}{
		{"not a number", "1,2,x,4"},
		{"tile zero", "0,1,2,"},
		{"out of range", "1,2,5,"},
		{"duplicate", "1,1,2,"},
		{"too short", "1,2"},
		{"too long", "1,2,3,,,"},
		{"two empties", "1,,2,"},
		{"no empty full length", "1,2,3,1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSequence(tc.s, 4)
			if err == nil {
				t.Fatalf("Expected error for %q", tc.s)
			}
			if !errors.Is(err, ErrInvalidSequence) {
				t.Errorf("Expected ErrInvalidSequence, got %v", err)
			}
		})
	}
}

func TestFormatSequence(t *testing.T) {
	s := FormatSequence([]Tile{0, 1, EmptySlot, 2})
	if s != "1,2,,3" {
		t.Errorf("Got %q, want %q", s, "1,2,,3")
	}
}

func TestFormatSequence_RoundTrip(t *testing.T) {
	b := newTestBoard(3, 3).Update(Shuffle{Steps: 100})

	tiles, err := ParseSequence(FormatSequence(b.Tiles), 9)
	if err != nil {
		t.Fatalf("Failed to parse formatted sequence: %v", err)
	}
	if !slices.Equal(tiles, b.Tiles) {
		t.Error("Expected formatted sequence to parse back to the same arrangement")
	}
}
