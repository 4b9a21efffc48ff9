package config

import "fmt"

// FeelPreset represents a named drag sensitivity.
type FeelPreset string

const (
	FeelLoose  FeelPreset = "loose"
	FeelNormal FeelPreset = "normal"
	FeelStrict FeelPreset = "strict"
)

// ParseFeelPreset converts a flag value to a preset.
// An empty string selects FeelNormal.
func ParseFeelPreset(s string) (FeelPreset, error) {
	switch FeelPreset(s) {
	case "", FeelNormal:
		return FeelNormal, nil
	case FeelLoose:
		return FeelLoose, nil
	case FeelStrict:
		return FeelStrict, nil
	default:
		return "", fmt.Errorf("unknown feel %q (want loose, normal or strict)", s)
	}
}

// ApplyFeelPreset modifies the gesture thresholds based on a preset.
// FeelNormal leaves the configured values untouched.
func ApplyFeelPreset(cfg *RollConfig, preset FeelPreset) {
	switch preset {
	case FeelLoose:
		cfg.Gesture.MoveThreshold = 0.05
		cfg.Gesture.SnapThreshold = 0.3
	case FeelStrict:
		cfg.Gesture.MoveThreshold = 0.15
		cfg.Gesture.SnapThreshold = 0.5
	}
}
