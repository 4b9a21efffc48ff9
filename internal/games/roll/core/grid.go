package core

import (
	"sort"
	"sync"
)

// Grid is the occupancy store for the board.
// Cells are stored in row-major order: index = y*W + x, with row 0 at the
// bottom. Each tile occupies exactly one cell and each cell holds at most one
// tile. Mutations are serialized by an internal lock.
type Grid struct {
	mu    sync.RWMutex
	w     int
	h     int
	cells []TileID
	tiles map[TileID]*Tile
}

// NewGrid creates an empty grid with the given dimensions.
// Non-positive dimensions produce a grid with no cells.
func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{
		w:     w,
		h:     h,
		cells: make([]TileID, w*h),
		tiles: make(map[TileID]*Tile),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.w
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.h
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.w + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

// Get returns the tile occupying c, or NoTile for an empty cell.
// Out-of-bounds coordinates return NoTile and ErrOutOfBounds.
func (g *Grid) Get(c Coord) (TileID, error) {
	if !g.InBounds(c) {
		return NoTile, ErrOutOfBounds
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cells[g.index(c)], nil
}

// IsEmpty returns true if c is in bounds and unoccupied.
func (g *Grid) IsEmpty(c Coord) bool {
	id, err := g.Get(c)
	return err == nil && id == NoTile
}

// Tile returns a copy of the record for id.
func (g *Grid) Tile(id TileID) (Tile, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	t, ok := g.tiles[id]
	if !ok {
		return Tile{}, false
	}
	return *t, true
}

// Tiles returns copies of all placed tiles ordered by ID.
func (g *Grid) Tiles() []Tile {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Tile, 0, len(g.tiles))
	for _, t := range g.tiles {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// OccupiedCount returns the number of occupied cells.
func (g *Grid) OccupiedCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.tiles)
}

// Place puts a tile onto an empty in-bounds cell and records it.
// Hole tiles, tiles without an ID and IDs already on the grid are rejected.
// Place is meant for board construction only; gameplay uses Move.
func (g *Grid) Place(c Coord, t Tile) bool {
	if !g.InBounds(c) || t.Empty || t.ID == NoTile {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	idx := g.index(c)
	if g.cells[idx] != NoTile {
		return false
	}
	if _, exists := g.tiles[t.ID]; exists {
		return false
	}

	t.Pos = c
	g.cells[idx] = t.ID
	g.tiles[t.ID] = &t
	return true
}

// Move relocates the tile at from into the empty cell to.
// On error the grid is left unchanged.
func (g *Grid) Move(from, to Coord) error {
	if !g.InBounds(from) || !g.InBounds(to) {
		return ErrOutOfBounds
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	src := g.index(from)
	dst := g.index(to)
	id := g.cells[src]
	if id == NoTile {
		return ErrNoTile
	}
	if g.cells[dst] != NoTile {
		return ErrOccupied
	}

	g.cells[dst] = id
	g.cells[src] = NoTile
	g.tiles[id].Pos = to
	return nil
}

// TryMove is Move reporting only success.
func (g *Grid) TryMove(from, to Coord) bool {
	return g.Move(from, to) == nil
}

// Clear empties every cell and forgets all tiles.
func (g *Grid) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.cells {
		g.cells[i] = NoTile
	}
	g.tiles = make(map[TileID]*Tile)
}

// Snapshot returns a copy of the cell array in row-major order.
func (g *Grid) Snapshot() []TileID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]TileID, len(g.cells))
	copy(out, g.cells)
	return out
}

// Equal returns true if two grids have the same dimensions and occupancy.
func (g *Grid) Equal(other *Grid) bool {
	if g.w != other.w || g.h != other.h {
		return false
	}
	a, b := g.Snapshot(), other.Snapshot()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
