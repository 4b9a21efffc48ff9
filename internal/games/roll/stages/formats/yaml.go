// Package formats provides pluggable stage file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-roll/internal/games/roll/core"
)

// Rune used in rows for a cell with nothing on it.
const (
	RuneEmpty = '.'
	RuneHole  = '_'
)

// YAMLStage represents the YAML structure for a stage file.
type YAMLStage struct {
	ID      string                 `yaml:"id"`
	Name    string                 `yaml:"name"`
	Size    YAMLSize               `yaml:"size"`
	Palette map[string]YAMLPalette `yaml:"palette,omitempty"`
	Rows    []string               `yaml:"rows,omitempty"` // Top row first
	Tiles   []YAMLTile             `yaml:"tiles,omitempty"`
	Goal    map[string]YAMLCoord   `yaml:"goal,omitempty"`
}

// YAMLSize represents grid dimensions.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLPalette describes the tiles produced by one rune in rows.
type YAMLPalette struct {
	Kind    string `yaml:"kind"`
	Movable bool   `yaml:"movable,omitempty"`
}

// YAMLTile represents a single explicit tile entry.
type YAMLTile struct {
	ID      string `yaml:"id,omitempty"`
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	Kind    string `yaml:"kind,omitempty"`
	Movable bool   `yaml:"movable,omitempty"`
	Empty   bool   `yaml:"empty,omitempty"`
}

// YAMLCoord is a cell position.
type YAMLCoord struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// ParseYAML parses a YAML stage file into a normalized stage.
// The result is not validated; see core.Stage.Validate.
func ParseYAML(data []byte) (core.Stage, error) {
	var ys YAMLStage
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return core.Stage{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	w, h := ys.Size.W, ys.Size.H
	if w == 0 && h == 0 && len(ys.Rows) > 0 {
		h = len(ys.Rows)
		w = len([]rune(ys.Rows[0]))
	}
	if w == 0 && h == 0 {
		w, h = core.DefaultStageSize, core.DefaultStageSize
	}

	stage := core.Stage{
		ID:     ys.ID,
		Name:   ys.Name,
		Width:  w,
		Height: h,
	}

	placements, err := parseRows(ys.Rows, ys.Palette, w, h)
	if err != nil {
		return core.Stage{}, err
	}
	stage.Tiles = placements

	for _, t := range ys.Tiles {
		stage.Tiles = append(stage.Tiles, core.Placement{
			X:       t.X,
			Y:       t.Y,
			ID:      core.TileID(t.ID),
			Kind:    t.Kind,
			Movable: t.Movable,
			Empty:   t.Empty,
		})
	}

	if len(ys.Goal) > 0 {
		stage.Goal = make(map[core.TileID]core.Coord, len(ys.Goal))
		for id, c := range ys.Goal {
			stage.Goal[core.TileID(id)] = core.C(c.X, c.Y)
		}
	}

	return stage.Normalized(), nil
}

// parseRows converts the compact row notation into placements.
// Rows are listed top to bottom, so the first row is y = h-1.
func parseRows(rows []string, palette map[string]YAMLPalette, w, h int) ([]core.Placement, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	if len(rows) != h {
		return nil, fmt.Errorf("rows: got %d rows, size says %d", len(rows), h)
	}

	var out []core.Placement
	for i, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			return nil, fmt.Errorf("rows: row %d has %d cells, size says %d", i, len(runes), w)
		}
		y := h - 1 - i
		for x, r := range runes {
			switch r {
			case RuneEmpty, ' ':
				continue
			case RuneHole:
				out = append(out, core.Placement{X: x, Y: y, Empty: true})
				continue
			}
			entry, ok := palette[string(r)]
			if !ok {
				return nil, fmt.Errorf("rows: rune %q at row %d has no palette entry", r, i)
			}
			out = append(out, core.Placement{
				X:       x,
				Y:       y,
				Kind:    entry.Kind,
				Movable: entry.Movable,
			})
		}
	}
	return out, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
