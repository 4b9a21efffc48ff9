package core

import "fmt"

// Stage size limits.
const (
	MaxStageSize     = 16
	DefaultStageSize = 4
)

// Placement is one entry of a stage's occupancy list.
type Placement struct {
	X       int
	Y       int
	ID      TileID // Generated from the cell when empty
	Kind    string
	Movable bool
	Empty   bool // Hole placeholder; reserves the cell but places nothing
}

// Stage is a complete board description.
type Stage struct {
	ID     string
	Name   string
	Width  int
	Height int
	Tiles  []Placement
	// Goal maps tiles to the cells they must occupy for the stage to be
	// solved. An empty goal means free play.
	Goal map[TileID]Coord
}

// DefaultTileID returns the ID given to a placement that does not name one.
func DefaultTileID(x, y int) TileID {
	return TileID(fmt.Sprintf("tile_%d_%d", x, y))
}

// Normalized returns a copy of the stage with tile IDs filled in.
func (s Stage) Normalized() Stage {
	out := s
	out.Tiles = make([]Placement, len(s.Tiles))
	for i, p := range s.Tiles {
		if p.ID == NoTile && !p.Empty {
			p.ID = DefaultTileID(p.X, p.Y)
		}
		out.Tiles[i] = p
	}
	if s.Goal != nil {
		out.Goal = make(map[TileID]Coord, len(s.Goal))
		for id, c := range s.Goal {
			out.Goal[id] = c
		}
	}
	return out
}

// Validate checks that the stage can be loaded onto a board.
// The stage should be normalized first. Checks:
//   - Both dimensions are within 1..MaxStageSize
//   - Every entry, holes included, is in bounds
//   - No two entries share a cell
//   - No two tiles share an ID
//   - Every goal names a placed tile and an in-bounds cell, with no cell used twice
func (s Stage) Validate() error {
	if s.Width < 1 || s.Height < 1 || s.Width > MaxStageSize || s.Height > MaxStageSize {
		return stageErrorf(CodeBadSize, "size %dx%d outside 1..%d", s.Width, s.Height, MaxStageSize)
	}

	bounds := NewGrid(s.Width, s.Height)
	cells := make(map[Coord]int, len(s.Tiles))
	ids := make(map[TileID]bool, len(s.Tiles))
	for i, p := range s.Tiles {
		c := C(p.X, p.Y)
		if !bounds.InBounds(c) {
			return stageErrorf(CodeOutOfBounds, "entry %d at %v outside %dx%d", i, c, s.Width, s.Height)
		}
		if prev, dup := cells[c]; dup {
			return stageErrorf(CodeDuplicateCell, "entries %d and %d both at %v", prev, i, c)
		}
		cells[c] = i
		if p.Empty {
			continue
		}
		if ids[p.ID] {
			return stageErrorf(CodeDuplicateID, "tile id %q used more than once", p.ID)
		}
		ids[p.ID] = true
	}

	targets := make(map[Coord]TileID, len(s.Goal))
	for id, c := range s.Goal {
		if !ids[id] {
			return stageErrorf(CodeBadGoal, "goal names unknown tile %q", id)
		}
		if !bounds.InBounds(c) {
			return stageErrorf(CodeBadGoal, "goal for %q at %v is out of bounds", id, c)
		}
		if other, dup := targets[c]; dup {
			return stageErrorf(CodeBadGoal, "goals for %q and %q share %v", other, id, c)
		}
		targets[c] = id
	}
	return nil
}
