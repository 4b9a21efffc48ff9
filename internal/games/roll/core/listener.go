package core

// Listener receives notifications from the board for the presentation layer.
// Callbacks run synchronously on the goroutine that delivered the input.
type Listener interface {
	// OnVisualPositionChanged reports where a tile should be drawn while it is
	// dragged, and its restored position after a revert.
	OnVisualPositionChanged(id TileID, pos Vec2)
	// OnTileCommitted reports a successful one-cell move.
	OnTileCommitted(id TileID, from, to Coord)
	// OnStageCleared reports that all tiles have been discarded.
	OnStageCleared()
	// OnStageLoaded reports that a new stage is ready.
	OnStageLoaded(width, height int)
}

// NopListener ignores every notification.
type NopListener struct{}

func (NopListener) OnVisualPositionChanged(TileID, Vec2) {}
func (NopListener) OnTileCommitted(TileID, Coord, Coord) {}
func (NopListener) OnStageCleared()                      {}
func (NopListener) OnStageLoaded(int, int)               {}

// ListenerFuncs adapts optional functions to the Listener interface.
// Nil fields are skipped.
type ListenerFuncs struct {
	VisualPositionChanged func(id TileID, pos Vec2)
	TileCommitted         func(id TileID, from, to Coord)
	StageCleared          func()
	StageLoaded           func(width, height int)
}

func (f ListenerFuncs) OnVisualPositionChanged(id TileID, pos Vec2) {
	if f.VisualPositionChanged != nil {
		f.VisualPositionChanged(id, pos)
	}
}

func (f ListenerFuncs) OnTileCommitted(id TileID, from, to Coord) {
	if f.TileCommitted != nil {
		f.TileCommitted(id, from, to)
	}
}

func (f ListenerFuncs) OnStageCleared() {
	if f.StageCleared != nil {
		f.StageCleared()
	}
}

func (f ListenerFuncs) OnStageLoaded(width, height int) {
	if f.StageLoaded != nil {
		f.StageLoaded(width, height)
	}
}
