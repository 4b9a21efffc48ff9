// Package config provides YAML-based configuration loading for Roll.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("invalid config")

// RollConfig contains all configuration for the Roll game.
type RollConfig struct {
	Gesture GestureSettings `yaml:"gesture"`
	Display DisplaySettings `yaml:"display"`
	Stages  StageSettings   `yaml:"stages"`
}

// GestureSettings defines the drag thresholds in world units.
// One world unit is one cell.
type GestureSettings struct {
	MoveThreshold float64 `yaml:"move_threshold"` // Drag distance before the axis locks
	SnapThreshold float64 `yaml:"snap_threshold"` // Offset along the axis that commits a move
}

// DisplaySettings defines how the board is drawn in the terminal.
type DisplaySettings struct {
	TileWidth  int `yaml:"tile_width"`  // Terminal columns per cell
	TileHeight int `yaml:"tile_height"` // Terminal rows per cell
	Padding    int `yaml:"padding"`     // Margin around the board in cells of the terminal
}

// StageSettings defines where stages come from.
type StageSettings struct {
	Dir   string `yaml:"dir"`   // Custom stage directory; empty uses the builtin pack
	Start string `yaml:"start"` // Stage ID to open first
}

// Validate checks that the config can drive a board.
func (c RollConfig) Validate() error {
	g := c.Gesture
	if g.MoveThreshold <= 0 || g.SnapThreshold <= 0 {
		return fmt.Errorf("%w: gesture thresholds must be positive (move=%v, snap=%v)",
			ErrInvalid, g.MoveThreshold, g.SnapThreshold)
	}
	if g.SnapThreshold >= 1 {
		return fmt.Errorf("%w: snap_threshold %v must be below one cell", ErrInvalid, g.SnapThreshold)
	}
	d := c.Display
	if d.TileWidth < 1 || d.TileHeight < 1 {
		return fmt.Errorf("%w: tile size must be at least 1x1, got %dx%d",
			ErrInvalid, d.TileWidth, d.TileHeight)
	}
	if d.Padding < 0 {
		return fmt.Errorf("%w: padding must not be negative, got %d", ErrInvalid, d.Padding)
	}
	return nil
}
