package config

import (
	_ "embed"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/arcade.yaml
var defaultArcadeYAML []byte

//go:embed defaults/sprint.yaml
var defaultSprintYAML []byte

// DefaultConfig returns the hard-coded configuration for a variant.
// Unknown variants get the classic rules.
func DefaultConfig(variant string) Config {
	cfg := Config{
		Board: BoardConfig{Size: 20},
		Snake: SnakeConfig{
			InitialLength:    3,
			StartX:           10,
			StartY:           10,
			InitialDirection: "right",
		},
		Timing:  TimingConfig{TickMS: 200},
		Scoring: ScoringConfig{PointsPerFood: 1},
	}

	switch variant {
	case "arcade":
		cfg.Timing.TickMS = 150
		cfg.Scoring.PointsPerFood = 10
	case "sprint":
		cfg.Snake.InitialLength = 1
		cfg.Timing.TickMS = 100
	}
	return cfg
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case "classic":
		return defaultClassicYAML
	case "arcade":
		return defaultArcadeYAML
	case "sprint":
		return defaultSprintYAML
	default:
		return nil
	}
}
