package core

import "fmt"

// PointerAction identifies the kind of a pointer sample.
type PointerAction uint8

const (
	ActionDown PointerAction = iota
	ActionMove
	ActionUp
)

// String returns the string representation of a pointer action.
func (a PointerAction) String() string {
	switch a {
	case ActionDown:
		return "Down"
	case ActionMove:
		return "Move"
	case ActionUp:
		return "Up"
	default:
		return "Unknown"
	}
}

// PointerEvent is a world-space pointer sample addressed to one tile.
// Pos is unused for ActionUp.
type PointerEvent struct {
	Action PointerAction
	Pos    Vec2
}

// Board owns the grid for the current stage and one gesture per movable
// tile, and routes pointer input to them. A Board is not safe for
// concurrent use; give each player their own.
type Board struct {
	cfg      *GestureConfig
	layout   Layout
	listener Listener

	grid     *Grid
	gestures map[TileID]*TileGesture
	stage    Stage
	loaded   bool
	moves    int
}

// NewBoard creates an empty board. cfg is shared, not copied, and must stay
// unchanged while the board is in use.
func NewBoard(cfg *GestureConfig, layout Layout, listener Listener) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if listener == nil {
		listener = NopListener{}
	}
	return &Board{
		cfg:      cfg,
		layout:   layout,
		listener: listener,
	}, nil
}

// Layout returns the cell-to-world mapping.
func (b *Board) Layout() Layout {
	return b.layout
}

// Grid returns the current grid, or nil when no stage is loaded.
func (b *Board) Grid() *Grid {
	return b.grid
}

// Loaded returns true if a stage is on the board.
func (b *Board) Loaded() bool {
	return b.loaded
}

// Stage returns the loaded stage.
func (b *Board) Stage() (Stage, bool) {
	return b.stage, b.loaded
}

// Moves returns the number of moves committed since the stage was loaded.
func (b *Board) Moves() int {
	return b.moves
}

// LoadStage replaces the board contents with stage.
// A malformed stage is rejected with an error matching ErrInvalidStage and
// leaves the board cleared.
func (b *Board) LoadStage(stage Stage) error {
	b.Clear()

	stage = stage.Normalized()
	if err := stage.Validate(); err != nil {
		return err
	}

	grid := NewGrid(stage.Width, stage.Height)
	for _, p := range stage.Tiles {
		if p.Empty {
			continue
		}
		t := Tile{ID: p.ID, Kind: p.Kind, Movable: p.Movable}
		if !grid.Place(C(p.X, p.Y), t) {
			return stageErrorf(CodeDuplicateCell, "cannot place %q at %v", p.ID, C(p.X, p.Y))
		}
	}

	gestures := make(map[TileID]*TileGesture)
	for _, t := range grid.Tiles() {
		if !t.Movable {
			continue
		}
		g, err := NewTileGesture(t.ID, grid, b.cfg, b.listener)
		if err != nil {
			return fmt.Errorf("creating gesture for %q: %w", t.ID, err)
		}
		gestures[t.ID] = g
	}

	b.grid = grid
	b.gestures = gestures
	b.stage = stage
	b.loaded = true
	b.moves = 0
	b.listener.OnStageLoaded(stage.Width, stage.Height)
	return nil
}

// Clear discards all gestures and the grid.
func (b *Board) Clear() {
	b.grid = nil
	b.gestures = nil
	b.stage = Stage{}
	b.loaded = false
	b.moves = 0
	b.listener.OnStageCleared()
}

// RouteInput forwards a pointer sample to the tile's gesture.
// Tiles that are on the board but immovable report ResultIgnored.
func (b *Board) RouteInput(id TileID, ev PointerEvent) (Result, error) {
	if b.grid == nil {
		return ResultIgnored, fmt.Errorf("%w: %q", ErrUnknownTile, id)
	}
	t, ok := b.grid.Tile(id)
	if !ok {
		return ResultIgnored, fmt.Errorf("%w: %q", ErrUnknownTile, id)
	}
	g, ok := b.gestures[id]
	if !ok {
		return ResultIgnored, nil
	}

	var res Result
	switch ev.Action {
	case ActionDown:
		res = g.PointerDown(ev.Pos, b.layout.CellToWorld(t.Pos))
	case ActionMove:
		res = g.PointerMove(ev.Pos)
	case ActionUp:
		res = g.PointerUp()
	default:
		return ResultIgnored, fmt.Errorf("roll: unknown pointer action %d", ev.Action)
	}

	if res == ResultCommitted {
		b.moves++
	}
	return res, nil
}

// PointerDown routes a press on tile id at world position pos.
func (b *Board) PointerDown(id TileID, pos Vec2) (Result, error) {
	return b.RouteInput(id, PointerEvent{Action: ActionDown, Pos: pos})
}

// PointerMove routes a drag sample for tile id.
func (b *Board) PointerMove(id TileID, pos Vec2) (Result, error) {
	return b.RouteInput(id, PointerEvent{Action: ActionMove, Pos: pos})
}

// PointerUp routes a release for tile id.
func (b *Board) PointerUp(id TileID) (Result, error) {
	return b.RouteInput(id, PointerEvent{Action: ActionUp})
}

// Gesture returns the gesture for a movable tile.
func (b *Board) Gesture(id TileID) (*TileGesture, bool) {
	g, ok := b.gestures[id]
	return g, ok
}

// TileAt returns the tile resting in the cell under world position pos.
func (b *Board) TileAt(pos Vec2) (TileID, bool) {
	if b.grid == nil {
		return NoTile, false
	}
	id, err := b.grid.Get(b.layout.WorldToCell(pos))
	if err != nil || id == NoTile {
		return NoTile, false
	}
	return id, true
}

// Visual returns where tile id should be drawn: its gesture position while
// dragged, otherwise the world origin of its cell.
func (b *Board) Visual(id TileID) (Vec2, bool) {
	if b.grid == nil {
		return Vec2{}, false
	}
	if g, ok := b.gestures[id]; ok {
		if pos, active := g.Visual(); active {
			return pos, true
		}
	}
	t, ok := b.grid.Tile(id)
	if !ok {
		return Vec2{}, false
	}
	return b.layout.CellToWorld(t.Pos), true
}

// HasGoal returns true if the loaded stage defines a goal layout.
func (b *Board) HasGoal() bool {
	return b.loaded && len(b.stage.Goal) > 0
}

// Solved returns true when every goal tile rests on its goal cell.
// Stages without a goal are never solved.
func (b *Board) Solved() bool {
	if !b.HasGoal() {
		return false
	}
	for id, want := range b.stage.Goal {
		t, ok := b.grid.Tile(id)
		if !ok || t.Pos != want {
			return false
		}
	}
	return true
}
