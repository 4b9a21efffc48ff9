package roll

import (
	"math"

	platformcore "github.com/vovakirdan/tui-roll/internal/core"
	"github.com/vovakirdan/tui-roll/internal/games/roll/core"
)

// Camera maps terminal cells to world space and back.
// World y grows upward while screen rows grow downward, so the bottom row
// of the board area is world y = 0.
type Camera struct {
	Area  platformcore.Rect // Screen cells covered by the grid, frame excluded
	TileW int               // Columns per grid cell
	TileH int               // Rows per grid cell
}

// NewCamera creates a camera for a w x h grid whose top-left screen cell is (x, y).
func NewCamera(x, y, w, h, tileW, tileH int) Camera {
	return Camera{
		Area:  platformcore.NewRect(x, y, w*tileW, h*tileH),
		TileW: tileW,
		TileH: tileH,
	}
}

// ScreenToWorld returns the world position at the center of a terminal cell.
// Positions outside Area are still projected, so drags may leave the board.
func (c Camera) ScreenToWorld(sx, sy int) core.Vec2 {
	return core.V(
		(float64(sx-c.Area.X)+0.5)/float64(c.TileW),
		(float64(c.Area.Bottom()-sy)-0.5)/float64(c.TileH),
	)
}

// WorldToScreen returns the top-left terminal cell of a tile whose
// lower-left corner sits at world position p.
func (c Camera) WorldToScreen(p core.Vec2) (int, int) {
	sx := c.Area.X + int(math.Round(p.X*float64(c.TileW)))
	sy := c.Area.Bottom() - int(math.Round((p.Y+1)*float64(c.TileH)))
	return sx, sy
}

// CellRect returns the screen area of a grid cell.
func (c Camera) CellRect(cell core.Coord) platformcore.Rect {
	x, y := c.WorldToScreen(core.V(float64(cell.X), float64(cell.Y)))
	return platformcore.NewRect(x, y, c.TileW, c.TileH)
}

// Contains returns true if the terminal cell lies on the grid.
func (c Camera) Contains(sx, sy int) bool {
	return c.Area.Contains(sx, sy)
}
