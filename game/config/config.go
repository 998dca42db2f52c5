// Package config resolves puzzle options from key-value sources: a
// query string (the original configuration surface), explicit query
// values, or environment variables. Resolution never fails: unparsable
// values fall back to defaults and out-of-range numbers are clamped, so
// callers always receive usable options.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"slidepuzzle/game/board"
	"slidepuzzle/game/layout"
)

// ErrMalformedQuery reports a query string that could not be parsed at
// all. The options returned alongside it are the defaults and remain
// usable.
var ErrMalformedQuery = errors.New("malformed option query")

// Option bounds and defaults
const (
	DefaultDim = 3

	MinShuffleSteps = 0
	MaxShuffleSteps = 20000

	// EnvPrefix is prepended to upper-cased option keys when resolving
	// from the environment, e.g. SLIDEPUZZLE_WIDTH.
	EnvPrefix = "SLIDEPUZZLE_"
)

// OptionKeys lists the recognized option names in every source (query
// string, environment, command-line flags).
var OptionKeys = []string{"width", "height", "size", "shuffle", "seed", "start", "goal"}

// Options holds the resolved puzzle configuration. The zero TileSize
// means "compute from the window"; the zero Seed means the caller
// substitutes a wall-clock seed before constructing the board.
type Options struct {
	Width        int
	Height       int
	TileSize     int
	ShuffleSteps int
	Seed         int64
	Start        string
	Goal         string
}

// Defaults returns the options used when no source provides a value:
// a 3x3 board, computed tile size, (width*height)^2 shuffle steps and
// solved start/goal sequences.
func Defaults() Options {
	o := Options{
		Width:  DefaultDim,
		Height: DefaultDim,
	}
	o.ShuffleSteps = defaultShuffleSteps(o.Width, o.Height)
	return o
}

// FromQuery resolves options from parsed query values. Recognized keys
// are width, height, size, shuffle, seed, start and goal; anything else
// is ignored.
func FromQuery(q url.Values) Options {
	o := Options{}
	o.Width = intOption(q.Get("width"), DefaultDim, board.MinDim, board.MaxDim)
	o.Height = intOption(q.Get("height"), DefaultDim, board.MinDim, board.MaxDim)
	o.TileSize = intOption(q.Get("size"), 0, layout.MinTileSize, layout.MaxTileSize)
	o.ShuffleSteps = intOption(q.Get("shuffle"),
		defaultShuffleSteps(o.Width, o.Height), MinShuffleSteps, MaxShuffleSteps)
	o.Seed = int64Option(q.Get("seed"), 0)
	o.Start = q.Get("start")
	o.Goal = q.Get("goal")
	return o
}

// ParseQuery resolves options from a raw query string such as
// "width=4&height=4&shuffle=500". A string that cannot be parsed yields
// the defaults together with ErrMalformedQuery; the error is
// informational and the options are always valid.
func ParseQuery(raw string) (Options, error) {
	q, err := url.ParseQuery(raw)
	if err != nil {
		return Defaults(), fmt.Errorf("%w: %v", ErrMalformedQuery, err)
	}
	return FromQuery(q), nil
}

// FromEnviron resolves options from environment variables named
// EnvPrefix plus the upper-cased option key. getenv is usually
// os.Getenv; it is a parameter so tests can inject lookups.
func FromEnviron(getenv func(string) string) Options {
	q := url.Values{}
	for _, key := range OptionKeys {
		if v := getenv(EnvPrefix + strings.ToUpper(key)); v != "" {
			q.Set(key, v)
		}
	}
	return FromQuery(q)
}

// BoardParams converts the options into board construction parameters.
func (o Options) BoardParams(tileSize, tileSpacing int) board.Params {
	return board.Params{
		Seed:        o.Seed,
		Width:       o.Width,
		Height:      o.Height,
		TileSize:    tileSize,
		TileSpacing: tileSpacing,
		Start:       o.Start,
		Goal:        o.Goal,
	}
}

// defaultShuffleSteps is the startup shuffle count when none is
// configured: the square of the cell count, capped at the shuffle
// bound.
func defaultShuffleSteps(width, height int) int {
	n := width * height
	steps := n * n
	if steps > MaxShuffleSteps {
		return MaxShuffleSteps
	}
	return steps
}

// intOption parses an integer option, substituting def when the value
// is absent or unparsable and clamping it to [min, max] otherwise.
func intOption(raw string, def, min, max int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// int64Option parses a seed-sized option with a default and no bounds.
func int64Option(raw string, def int64) int64 {
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return def
	}
	return v
}
