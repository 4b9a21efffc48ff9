package core

import (
	"fmt"
	"math"
)

// Coord represents a cell on the grid.
// (0,0) is the bottom-left cell, X increases to the right and Y upward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the neighbouring cell along axis in the direction of sign.
// A zero sign or AxisNone returns c unchanged.
func (c Coord) Step(axis Axis, sign int) Coord {
	switch {
	case sign > 0:
		sign = 1
	case sign < 0:
		sign = -1
	}
	switch axis {
	case AxisHorizontal:
		return c.Add(sign, 0)
	case AxisVertical:
		return c.Add(0, sign)
	default:
		return c
	}
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	dx := c.X - other.X
	dy := c.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Vec2 is a position or displacement in world space.
type Vec2 struct {
	X float64
	Y float64
}

// V is a convenience constructor for Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Along returns the component of v on the given axis, or 0 for AxisNone.
func (v Vec2) Along(axis Axis) float64 {
	switch axis {
	case AxisHorizontal:
		return v.X
	case AxisVertical:
		return v.Y
	default:
		return 0
	}
}

// String returns a string representation of the vector.
func (v Vec2) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", v.X, v.Y)
}

// Layout maps grid cells to world space.
// A tile resting in cell c has its visual origin at Origin + c*CellSize and
// covers one CellSize square up and to the right of that point.
type Layout struct {
	Origin   Vec2
	CellSize float64
}

// UnitLayout places cell (x, y) at world (x, y).
func UnitLayout() Layout {
	return Layout{CellSize: 1}
}

// CellToWorld returns the visual origin of a tile resting in cell c.
func (l Layout) CellToWorld(c Coord) Vec2 {
	size := l.cellSize()
	return Vec2{
		X: l.Origin.X + float64(c.X)*size,
		Y: l.Origin.Y + float64(c.Y)*size,
	}
}

// WorldToCell returns the cell whose square contains p.
func (l Layout) WorldToCell(p Vec2) Coord {
	size := l.cellSize()
	return Coord{
		X: int(math.Floor((p.X - l.Origin.X) / size)),
		Y: int(math.Floor((p.Y - l.Origin.Y) / size)),
	}
}

func (l Layout) cellSize() float64 {
	if l.CellSize <= 0 {
		return 1
	}
	return l.CellSize
}
