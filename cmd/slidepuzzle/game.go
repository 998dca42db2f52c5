package main

import (
	"fmt"
	"image/color"
	"strconv"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"slidepuzzle/game/board"
	"slidepuzzle/game/layout"
	"slidepuzzle/game/loop"
	"slidepuzzle/game/model"
)

// Tile colors
var (
	backgroundColor = color.RGBA{20, 20, 30, 255}
	tileColor       = color.RGBA{90, 110, 160, 255}  // Tile off its goal cell
	placedColor     = color.RGBA{70, 140, 100, 255}  // Tile on its goal cell
	solvedColor     = color.RGBA{110, 190, 130, 255} // Whole board solved
)

// Game is the ebiten front end: it adapts keyboard, mouse and resize
// input into model events dispatched to the reducer loop, and renders
// the latest snapshot it has received back.
type Game struct {
	loop *loop.Loop
	sub  *loop.Subscriber

	// snapshot is the newest model received from the loop; winW/winH
	// track the live window for input mapping and resize detection.
	// All are written by different goroutines than they are read from.
	mu         sync.RWMutex
	snapshot   model.Model
	winW, winH int
}

// newGame subscribes to the loop and starts mirroring its snapshots.
func newGame(l *loop.Loop, initial model.Model) *Game {
	g := &Game{
		loop:     l,
		snapshot: initial,
		winW:     initial.WinW,
		winH:     initial.WinH,
	}
	g.sub = l.Subscribe()
	go g.watch()
	return g
}

// watch mirrors loop snapshots into the game for rendering.
func (g *Game) watch() {
	for m := range g.sub.Updates() {
		g.mu.Lock()
		g.snapshot = m
		g.mu.Unlock()
	}
}

// Close detaches from the loop.
func (g *Game) Close() {
	g.sub.Close()
}

// Update polls input and dispatches the corresponding events. All
// puzzle logic happens in the loop; this only translates raw input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.loop.Dispatch(model.KeyDir{Dir: board.Left})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.loop.Dispatch(model.KeyDir{Dir: board.Right})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.loop.Dispatch(model.KeyDir{Dir: board.Up})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.loop.Dispatch(model.KeyDir{Dir: board.Down})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.loop.Dispatch(model.Reshuffle{})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.mu.RLock()
		winW, winH := g.winW, g.winH
		g.mu.RUnlock()
		g.loop.Dispatch(model.Click{X: x, Y: y, WinW: winW, WinH: winH})
	}

	return nil
}

// Draw renders the current board snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	g.mu.RLock()
	m := g.snapshot
	g.mu.RUnlock()

	screen.Fill(backgroundColor)

	b := m.Board
	solved := b.Solved()
	ox, oy := layout.Origin(b.Width, b.Height, b.TileSize, m.WinW, m.WinH)

	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			tile, _ := b.At(row, col)
			if tile == board.EmptySlot {
				continue
			}

			x := ox + col*b.TileSize
			y := oy + row*b.TileSize
			inset := b.TileSpacing

			ebitenutil.DrawRect(screen,
				float64(x+inset), float64(y+inset),
				float64(b.TileSize-2*inset), float64(b.TileSize-2*inset),
				g.colorFor(b, row, col, tile, solved))

			label := strconv.Itoa(int(tile) + 1)
			ebitenutil.DebugPrintAt(screen,
				label,
				x+b.TileSize/2-3*len(label),
				y+b.TileSize/2-8)
		}
	}

	if solved {
		ebitenutil.DebugPrintAt(screen, "SOLVED! Press R to shuffle again", 10, 10)
	}
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Arrows/WASD: slide | Click: slide tile | R: shuffle | %dx%d",
			b.Width, b.Height),
		10, m.WinH-20)
}

// colorFor picks the tile fill: solved boards light up, tiles sitting
// on their goal cell get the placed shade.
func (g *Game) colorFor(b board.Board, row, col int, tile board.Tile, solved bool) color.Color {
	if solved {
		return solvedColor
	}
	if b.Goal[row*b.Width+col] == tile {
		return placedColor
	}
	return tileColor
}

// Layout reports the logical screen size and doubles as the resize
// detector: ebiten calls it with the window dimensions every frame.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.mu.Lock()
	changed := outsideWidth != g.winW || outsideHeight != g.winH
	g.winW, g.winH = outsideWidth, outsideHeight
	g.mu.Unlock()

	if changed {
		g.loop.Dispatch(model.Resize{WinW: outsideWidth, WinH: outsideHeight})
	}
	return outsideWidth, outsideHeight
}
