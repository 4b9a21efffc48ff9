package core

import (
	"strings"
	"unicode"
)

// String renders the grid as text, top row first.
// Empty cells are '.', movable tiles use the upper-case first letter of
// their kind (or ID) and immovable tiles the lower-case one.
func (g *Grid) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sb strings.Builder
	sb.Grow(g.w*g.h + g.h)
	for y := g.h - 1; y >= 0; y-- {
		if y < g.h-1 {
			sb.WriteRune('\n')
		}
		for x := 0; x < g.w; x++ {
			id := g.cells[g.index(C(x, y))]
			if id == NoTile {
				sb.WriteRune('.')
				continue
			}
			sb.WriteRune(tileGlyph(g.tiles[id]))
		}
	}
	return sb.String()
}

func tileGlyph(t *Tile) rune {
	name := t.Kind
	if name == "" {
		name = string(t.ID)
	}
	r := '?'
	for _, first := range name {
		r = first
		break
	}
	if t.Movable {
		return unicode.ToUpper(r)
	}
	return unicode.ToLower(r)
}
