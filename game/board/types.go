package board

// Tile is a single board cell occupant. Regular tiles carry identifiers
// 0..N-2 (displayed to players as 1..N-1); the empty slot is EmptySlot.
type Tile int

// EmptySlot marks the one vacant cell into which adjacent tiles slide.
const EmptySlot Tile = -1

// Validation constants
const (
	MinDim = 2
	MaxDim = 10
)

// Direction identifies the way a tile slides into the empty slot.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Action is the sum type of board transitions. Update treats any
// unrecognized Action as a no-op.
type Action interface {
	action()
}

// Move slides the tile next to the empty slot in the given direction
// into the empty slot. The empty slot moves the opposite way.
type Move struct {
	Dir Direction
}

// MoveTile slides the tile at the given cell into the empty slot,
// provided the cell is orthogonally adjacent to it.
type MoveTile struct {
	Row, Col int
}

// Shuffle applies Steps random legal moves, consuming the board seed.
type Shuffle struct {
	Steps int
}

// NoOp is an action that leaves the board unchanged.
type NoOp struct{}

func (Move) action()     {}
func (MoveTile) action() {}
func (Shuffle) action()  {}
func (NoOp) action()     {}

// Board represents a complete puzzle state. Boards are values: methods
// never mutate the receiver, transitions return fresh snapshots.
type Board struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// Rendering hints carried with the model. TileSize is recomputed on
	// window resizes by the outer model; TileSpacing is the inset drawn
	// between tiles. Neither affects puzzle rules.
	TileSize    int `json:"tile_size"`
	TileSpacing int `json:"tile_spacing"`

	// Tiles holds the current arrangement in row-major order: exactly
	// one EmptySlot plus each identifier 0..Width*Height-2 once.
	Tiles []Tile `json:"tiles"`

	// Goal is the arrangement the puzzle is solved against.
	Goal []Tile `json:"goal"`

	// Seed is the pseudo-random generator state for shuffling. It
	// advances deterministically with every Shuffle action.
	Seed int64 `json:"seed"`

	// Empty is the index of the empty slot in Tiles.
	Empty int `json:"empty"`
}
