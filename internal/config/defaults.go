package config

import (
	_ "embed"
)

//go:embed defaults/roll.yaml
var defaultRollYAML []byte

// DefaultRollConfig returns the default Roll configuration.
func DefaultRollConfig() RollConfig {
	return RollConfig{
		Gesture: GestureSettings{
			MoveThreshold: 0.1,
			SnapThreshold: 0.4,
		},
		Display: DisplaySettings{
			TileWidth:  6,
			TileHeight: 3,
			Padding:    1,
		},
	}
}
