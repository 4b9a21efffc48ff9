// Package core provides the board logic for the Roll sliding-tile puzzle.
// It owns cell occupancy and the drag gesture state machine, and is
// UI-agnostic: callers feed it world-space pointer samples and receive
// notifications through a Listener.
package core

// TileID is the stable identity of a tile.
type TileID string

// NoTile is the zero TileID, reported for empty cells.
const NoTile TileID = ""

// Axis is the direction a drag gesture is locked to.
type Axis uint8

const (
	AxisNone Axis = iota
	AxisHorizontal
	AxisVertical
)

// String returns the string representation of an axis.
func (a Axis) String() string {
	switch a {
	case AxisNone:
		return "None"
	case AxisHorizontal:
		return "Horizontal"
	case AxisVertical:
		return "Vertical"
	default:
		return "Unknown"
	}
}

// Tile describes a tile on the board.
// Pos is updated by the grid on every successful move; the other fields are
// fixed at creation.
type Tile struct {
	ID      TileID
	Kind    string // Palette name used for rendering
	Pos     Coord
	Movable bool
	Empty   bool // Hole placeholder, never occupies a cell
}
