package config

import (
	"errors"
	"net/url"
	"testing"
)

func TestDefaults(t *testing.T) {
	o := Defaults()

	if o.Width != 3 || o.Height != 3 {
		t.Errorf("Expected 3x3 defaults, got %dx%d", o.Width, o.Height)
	}
	if o.TileSize != 0 {
		t.Errorf("Expected computed tile size (0), got %d", o.TileSize)
	}
	if o.ShuffleSteps != 81 {
		t.Errorf("Expected 81 shuffle steps for a 3x3 board, got %d", o.ShuffleSteps)
	}
	if o.Start != "" || o.Goal != "" {
		t.Error("Expected empty start/goal defaults")
	}
}

func TestFromQuery_EmptyGivesDefaults(t *testing.T) {
	o := FromQuery(url.Values{})

	if o != Defaults() {
		t.Errorf("Expected defaults, got %+v", o)
	}
}

func TestFromQuery_ResolvesAllKeys(t *testing.T) {
	q := url.Values{}
	q.Set("width", "4")
	q.Set("height", "5")
	q.Set("size", "60")
	q.Set("shuffle", "300")
	q.Set("seed", "1234567890123")
	q.Set("start", "1,2,3,")
	q.Set("goal", "3,2,1,")

	o := FromQuery(q)

	if o.Width != 4 || o.Height != 5 {
		t.Errorf("Expected 4x5, got %dx%d", o.Width, o.Height)
	}
	if o.TileSize != 60 {
		t.Errorf("Expected tile size 60, got %d", o.TileSize)
	}
	if o.ShuffleSteps != 300 {
		t.Errorf("Expected 300 shuffle steps, got %d", o.ShuffleSteps)
	}
	if o.Seed != 1234567890123 {
		t.Errorf("Expected seed 1234567890123, got %d", o.Seed)
	}
	if o.Start != "1,2,3," || o.Goal != "3,2,1," {
		t.Errorf("Expected start/goal passed through, got %q / %q", o.Start, o.Goal)
	}
}

func TestFromQuery_ClampsOutOfRange(t *testing.T) {
	q := url.Values{}
	q.Set("width", "99")
	q.Set("height", "1")
	q.Set("size", "1000")
	q.Set("shuffle", "-5")

	o := FromQuery(q)

	if o.Width != 10 {
		t.Errorf("Expected width clamped to 10, got %d", o.Width)
	}
	if o.Height != 2 {
		t.Errorf("Expected height clamped to 2, got %d", o.Height)
	}
	if o.TileSize != 200 {
		t.Errorf("Expected tile size clamped to 200, got %d", o.TileSize)
	}
	if o.ShuffleSteps != 0 {
		t.Errorf("Expected shuffle clamped to 0, got %d", o.ShuffleSteps)
	}
}

func TestFromQuery_UnparsableFallsBackToDefault(t *testing.T) {
	q := url.Values{}
	q.Set("width", "wide")
	q.Set("shuffle", "lots")
	q.Set("seed", "tomorrow")

	o := FromQuery(q)

	if o.Width != 3 {
		t.Errorf("Expected default width 3, got %d", o.Width)
	}
	if o.ShuffleSteps != 81 {
		t.Errorf("Expected default shuffle 81, got %d", o.ShuffleSteps)
	}
	if o.Seed != 0 {
		t.Errorf("Expected default seed 0, got %d", o.Seed)
	}
}

func TestFromQuery_ShuffleDefaultTracksDimensions(t *testing.T) {
	q := url.Values{}
	q.Set("width", "10")
	q.Set("height", "10")

	o := FromQuery(q)

	// 100 cells squared would be 10000, within the bound.
	if o.ShuffleSteps != 10000 {
		t.Errorf("Expected 10000 shuffle steps, got %d", o.ShuffleSteps)
	}
}

func TestParseQuery(t *testing.T) {
	o, err := ParseQuery("width=4&height=4&shuffle=500")
	if err != nil {
		t.Fatalf("Failed to parse query: %v", err)
	}
	if o.Width != 4 || o.Height != 4 || o.ShuffleSteps != 500 {
		t.Errorf("Unexpected options: %+v", o)
	}
}

func TestParseQuery_MalformedGivesDefaults(t *testing.T) {
	o, err := ParseQuery("width=%zz")
	if err == nil {
		t.Fatal("Expected error for malformed query")
	}
	if !errors.Is(err, ErrMalformedQuery) {
		t.Errorf("Expected ErrMalformedQuery, got %v", err)
	}
	if o != Defaults() {
		t.Errorf("Expected defaults alongside the error, got %+v", o)
	}
}

func TestFromEnviron(t *testing.T) {
	env := map[string]string{
		"SLIDEPUZZLE_WIDTH":   "5",
		"SLIDEPUZZLE_SHUFFLE": "123",
		"SLIDEPUZZLE_START":   "1,2,3,4,5,6,7,8,9,10,11,12,13,14,",
	}

	o := FromEnviron(func(key string) string { return env[key] })

	if o.Width != 5 {
		t.Errorf("Expected width 5, got %d", o.Width)
	}
	if o.Height != 3 {
		t.Errorf("Expected default height 3, got %d", o.Height)
	}
	if o.ShuffleSteps != 123 {
		t.Errorf("Expected 123 shuffle steps, got %d", o.ShuffleSteps)
	}
	if o.Start == "" {
		t.Error("Expected start sequence from environment")
	}
}

func TestBoardParams(t *testing.T) {
	o := Defaults()
	o.Seed = 7
	o.Start = "1,2,3,4,5,6,7,8,"

	p := o.BoardParams(100, 2)

	if p.Width != 3 || p.Height != 3 {
		t.Errorf("Expected 3x3 params, got %dx%d", p.Width, p.Height)
	}
	if p.TileSize != 100 || p.TileSpacing != 2 {
		t.Errorf("Expected tile size 100 spacing 2, got %d/%d", p.TileSize, p.TileSpacing)
	}
	if p.Seed != 7 {
		t.Errorf("Expected seed 7, got %d", p.Seed)
	}
	if p.Start != o.Start {
		t.Errorf("Expected start passed through, got %q", p.Start)
	}
}
