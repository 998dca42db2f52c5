// Command slidepuzzle plays the generalized N×M sliding-tile puzzle.
//
// It supports two modes:
//  1. "play" (default) – opens a window; arrow keys/WASD slide tiles,
//     clicking a tile next to the empty slot slides it, R reshuffles
//  2. "deal" – headless; shuffles a board and prints the arrangement
//     in the start-sequence format
//
// Options resolve in order: .env file / environment variables, then
// the -query string, then individual flags. Unparsable values fall
// back to defaults and out-of-range numbers are clamped, mirroring the
// original URL-parameter behavior.
package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"slidepuzzle/game/board"
	"slidepuzzle/game/config"
	"slidepuzzle/game/loop"
	"slidepuzzle/game/model"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Slide Puzzle"
)

const (
	defaultWindowW = 640
	defaultWindowH = 480
	tileSpacing    = 2
)

var log = logrus.StandardLogger()

func main() {
	cmd := &cli.Command{
		Name:    "slidepuzzle",
		Usage:   "generalized N×M sliding-tile puzzle",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "width", Usage: "board width in tiles (2-10)"},
			&cli.StringFlag{Name: "height", Usage: "board height in tiles (2-10)"},
			&cli.StringFlag{Name: "size", Usage: "tile pixel size override (5-200, default computed from window)"},
			&cli.StringFlag{Name: "shuffle", Usage: "shuffle steps at startup (0-20000, default (width*height)^2)"},
			&cli.StringFlag{Name: "seed", Usage: "shuffle seed (default wall clock)"},
			&cli.StringFlag{Name: "start", Usage: "starting tile sequence, e.g. 1,2,3,4,5,6,7,8,"},
			&cli.StringFlag{Name: "goal", Usage: "goal tile sequence (default solved)"},
			&cli.StringFlag{Name: "query", Usage: "raw option query string, e.g. width=4&height=4&shuffle=500"},
			&cli.BoolFlag{Name: "debug", Usage: "enable debug logging"},
		},
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "open the puzzle window (default)",
				Action: runPlay,
			},
			{
				Name:   "deal",
				Usage:  "shuffle a board and print its start sequence",
				Action: runDeal,
			},
		},
		Action: runPlay,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// resolveOptions merges the configuration sources into one option set:
// environment variables first, overridden by -query, overridden by
// individual flags. A zero seed is replaced by the wall clock so every
// run gets a fresh shuffle unless one was pinned.
func resolveOptions(cmd *cli.Command) config.Options {
	if cmd.Bool("debug") {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := godotenv.Load(); err == nil {
		log.Debug("loaded options from .env")
	}

	q := url.Values{}
	for _, key := range config.OptionKeys {
		if v := os.Getenv(config.EnvPrefix + strings.ToUpper(key)); v != "" {
			q.Set(key, v)
		}
	}

	if raw := cmd.String("query"); raw != "" {
		parsed, err := url.ParseQuery(raw)
		if err != nil {
			log.WithError(err).Warn("ignoring malformed -query value")
		} else {
			for key, values := range parsed {
				q[key] = values
			}
		}
	}

	for _, key := range config.OptionKeys {
		if v := cmd.String(key); v != "" {
			q.Set(key, v)
		}
	}

	opts := config.FromQuery(q)
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	return opts
}

// runPlay opens the puzzle window and runs the reducer loop behind it.
func runPlay(ctx context.Context, cmd *cli.Command) error {
	opts := resolveOptions(cmd)

	log.WithFields(logrus.Fields{
		"width":   opts.Width,
		"height":  opts.Height,
		"shuffle": opts.ShuffleSteps,
		"seed":    opts.Seed,
	}).Infof("%s v%s starting", AppName, Version)

	initial := model.New(opts, defaultWindowW, defaultWindowH, tileSpacing)

	l := loop.New(initial)
	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go l.Run(loopCtx)

	game := newGame(l, initial)
	defer game.Close()

	ebiten.SetWindowSize(defaultWindowW, defaultWindowH)
	ebiten.SetWindowTitle(fmt.Sprintf("%s %dx%d", AppName, opts.Width, opts.Height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("game window: %w", err)
	}
	return nil
}

// runDeal shuffles a board headlessly and prints the resulting
// arrangement, both as a grid and as a start sequence that can be fed
// back through -start or the start= option.
func runDeal(ctx context.Context, cmd *cli.Command) error {
	opts := resolveOptions(cmd)

	b := board.New(opts.BoardParams(0, 0))
	b = b.Update(board.Shuffle{Steps: opts.ShuffleSteps})

	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			tile, _ := b.At(row, col)
			if tile == board.EmptySlot {
				fmt.Printf("  __")
				continue
			}
			fmt.Printf(" %3d", int(tile)+1)
		}
		fmt.Println()
	}

	fmt.Printf("\nseed:  %d\nstart: %s\n", opts.Seed, board.FormatSequence(b.Tiles))
	fmt.Printf("query: width=%d&height=%d&start=%s\n",
		b.Width, b.Height, board.FormatSequence(b.Tiles))
	return nil
}
