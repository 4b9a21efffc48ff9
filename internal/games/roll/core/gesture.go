package core

import (
	"fmt"
	"math"
)

// GestureConfig holds the drag thresholds shared by every gesture on a board.
// Both values are in world units and must be positive.
type GestureConfig struct {
	// MoveThreshold is the pointer travel, measured from the pointer-down
	// position, that must be exceeded before an axis is locked.
	MoveThreshold float64
	// SnapThreshold is the tile displacement along the locked axis, measured
	// from the tile's origin, that must be exceeded before a move commits.
	SnapThreshold float64
}

// Validate checks that both thresholds are positive.
func (c *GestureConfig) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: missing", ErrInvalidConfig)
	}
	if !(c.MoveThreshold > 0) {
		return fmt.Errorf("%w: move threshold %v must be > 0", ErrInvalidConfig, c.MoveThreshold)
	}
	if !(c.SnapThreshold > 0) {
		return fmt.Errorf("%w: snap threshold %v must be > 0", ErrInvalidConfig, c.SnapThreshold)
	}
	return nil
}

// GestureState is the phase of a tile's drag gesture.
// StateCommitted only lasts while a snap is applied to the grid and the
// commit is reported; the gesture is Idle again once PointerMove returns.
type GestureState uint8

const (
	StateIdle GestureState = iota
	StateEngaged
	StateAxisLocked
	StateCommitted
)

// String returns the string representation of a gesture state.
func (s GestureState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateEngaged:
		return "Engaged"
	case StateAxisLocked:
		return "AxisLocked"
	case StateCommitted:
		return "Committed"
	default:
		return "Unknown"
	}
}

// Result is the outcome of feeding one pointer sample to a gesture.
type Result uint8

const (
	// ResultIgnored means the sample had no effect.
	ResultIgnored Result = iota
	// ResultTracking means a gesture is in progress.
	ResultTracking
	// ResultCommitted means the tile moved one cell and the gesture ended.
	ResultCommitted
	// ResultReverted means the tile returned to its origin and the gesture ended.
	ResultReverted
)

// String returns the string representation of a result.
func (r Result) String() string {
	switch r {
	case ResultIgnored:
		return "Ignored"
	case ResultTracking:
		return "Tracking"
	case ResultCommitted:
		return "Committed"
	case ResultReverted:
		return "Reverted"
	default:
		return "Unknown"
	}
}

// TileGesture turns pointer samples for one tile into at most one committed
// move per press. Samples must be delivered in the order they occurred.
//
// A press engages the gesture; once the pointer has travelled more than
// MoveThreshold the dominant axis is locked for the rest of the press. The
// tile then follows the pointer offset along that axis only, and when it has
// been displaced more than SnapThreshold the gesture tries to move it one
// cell. Success or failure, the gesture then ends; a release before that
// reverts the tile.
type TileGesture struct {
	id       TileID
	movable  bool
	grid     *Grid
	cfg      *GestureConfig
	listener Listener

	state       GestureState
	axis        Axis
	originWorld Vec2
	originTile  Vec2
	visual      Vec2
}

// NewTileGesture creates a gesture for a tile already placed on grid.
func NewTileGesture(id TileID, grid *Grid, cfg *GestureConfig, listener Listener) (*TileGesture, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t, ok := grid.Tile(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTile, id)
	}
	if listener == nil {
		listener = NopListener{}
	}
	return &TileGesture{
		id:       id,
		movable:  t.Movable,
		grid:     grid,
		cfg:      cfg,
		listener: listener,
	}, nil
}

// ID returns the tile this gesture drives.
func (g *TileGesture) ID() TileID {
	return g.id
}

// State returns the current gesture phase.
func (g *TileGesture) State() GestureState {
	return g.state
}

// Axis returns the locked axis, or AxisNone before locking.
func (g *TileGesture) Axis() Axis {
	return g.axis
}

// Active returns true while a press is being tracked.
func (g *TileGesture) Active() bool {
	return g.state != StateIdle
}

// Visual returns the tile's drawn position while the gesture is active.
func (g *TileGesture) Visual() (Vec2, bool) {
	if g.state == StateIdle {
		return Vec2{}, false
	}
	return g.visual, true
}

// PointerDown starts a gesture at pointer position world for a tile whose
// visual origin is tilePos. Immovable tiles ignore the whole press.
// A press arriving while a gesture is active reverts that gesture first.
func (g *TileGesture) PointerDown(world, tilePos Vec2) Result {
	if g.state != StateIdle {
		g.revert()
	}
	if !g.movable {
		return ResultIgnored
	}
	g.state = StateEngaged
	g.axis = AxisNone
	g.originWorld = world
	g.originTile = tilePos
	g.visual = tilePos
	return ResultTracking
}

// PointerMove feeds one drag sample.
func (g *TileGesture) PointerMove(world Vec2) Result {
	if g.state == StateIdle {
		return ResultIgnored
	}

	delta := world.Sub(g.originWorld)
	if g.state == StateEngaged {
		if !(delta.Len() > g.cfg.MoveThreshold) {
			return ResultTracking
		}
		if math.Abs(delta.X) > math.Abs(delta.Y) {
			g.axis = AxisHorizontal
		} else {
			g.axis = AxisVertical
		}
		g.state = StateAxisLocked
	}

	g.visual = g.originTile
	switch g.axis {
	case AxisHorizontal:
		g.visual.X = g.originTile.X + delta.X
	case AxisVertical:
		g.visual.Y = g.originTile.Y + delta.Y
	}
	g.listener.OnVisualPositionChanged(g.id, g.visual)

	// Measured from the pointer delta so the boundary does not depend on
	// where the tile sits.
	snap := delta.Along(g.axis)
	if !(math.Abs(snap) > g.cfg.SnapThreshold) {
		return ResultTracking
	}
	return g.commit(snap)
}

// PointerUp ends the press, reverting the tile if nothing was committed.
func (g *TileGesture) PointerUp() Result {
	if g.state == StateIdle {
		return ResultIgnored
	}
	g.revert()
	return ResultReverted
}

func (g *TileGesture) commit(snap float64) Result {
	t, ok := g.grid.Tile(g.id)
	if !ok {
		g.revert()
		return ResultReverted
	}

	sign := 1
	if snap < 0 {
		sign = -1
	}
	from := t.Pos
	to := from.Step(g.axis, sign)
	g.state = StateCommitted
	if err := g.grid.Move(from, to); err != nil {
		g.revert()
		return ResultReverted
	}

	g.listener.OnTileCommitted(g.id, from, to)
	g.reset()
	return ResultCommitted
}

func (g *TileGesture) revert() {
	origin := g.originTile
	g.reset()
	g.listener.OnVisualPositionChanged(g.id, origin)
}

func (g *TileGesture) reset() {
	g.state = StateIdle
	g.axis = AxisNone
	g.originWorld = Vec2{}
	g.originTile = Vec2{}
	g.visual = Vec2{}
}
