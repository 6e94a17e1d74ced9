// Package config provides YAML-based configuration loading for the snake
// variants.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full configuration of one snake variant.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Snake   SnakeConfig   `yaml:"snake"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// BoardConfig defines the square playfield.
type BoardConfig struct {
	Size int `yaml:"size"`
}

// SnakeConfig defines the starting snake.
type SnakeConfig struct {
	InitialLength    int    `yaml:"initial_length"`
	StartX           int    `yaml:"start_x"`
	StartY           int    `yaml:"start_y"`
	InitialDirection string `yaml:"initial_direction"` // up, down, left or right
}

// TimingConfig defines the tick source.
type TimingConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// ScoringConfig defines points awarded.
type ScoringConfig struct {
	PointsPerFood int `yaml:"points_per_food"`
}

// TickInterval returns the configured tick as a duration.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}

// Validate rejects values that cannot describe a game.
// Whether the starting snake fits on the board is checked by the engine.
func (c Config) Validate() error {
	if c.Board.Size < 2 {
		return fmt.Errorf("%w: board.size %d, need at least 2", ErrInvalid, c.Board.Size)
	}
	if c.Snake.InitialLength < 1 {
		return fmt.Errorf("%w: snake.initial_length %d, need at least 1", ErrInvalid, c.Snake.InitialLength)
	}
	switch strings.ToLower(c.Snake.InitialDirection) {
	case "up", "down", "left", "right":
	default:
		return fmt.Errorf("%w: snake.initial_direction %q, want up, down, left or right",
			ErrInvalid, c.Snake.InitialDirection)
	}
	if c.Timing.TickMS < 1 {
		return fmt.Errorf("%w: timing.tick_ms %d, need at least 1", ErrInvalid, c.Timing.TickMS)
	}
	if c.Scoring.PointsPerFood < 0 {
		return fmt.Errorf("%w: scoring.points_per_food %d is negative", ErrInvalid, c.Scoring.PointsPerFood)
	}
	return nil
}

// startFits reports whether the head and the tail of the starting body,
// which trails opposite the initial direction, both lie on the board.
func (c Config) startFits() bool {
	dx, dy := 0, 0
	switch strings.ToLower(c.Snake.InitialDirection) {
	case "up":
		dy = 1
	case "down":
		dy = -1
	case "left":
		dx = 1
	case "right":
		dx = -1
	}
	n := max(c.Snake.InitialLength-1, 0)
	tailX := c.Snake.StartX + dx*n
	tailY := c.Snake.StartY + dy*n

	on := func(v int) bool { return v >= 0 && v < c.Board.Size }
	return on(c.Snake.StartX) && on(c.Snake.StartY) && on(tailX) && on(tailY)
}

// Variant describes one named preset.
type Variant struct {
	ID          string
	Title       string
	Description string
}

// The three presets mirror the rule sets the game has shipped with.
var variants = []Variant{
	{ID: "classic", Title: "Snake", Description: "3 segments, 200ms ticks, 1 point per food"},
	{ID: "arcade", Title: "Snake (Arcade)", Description: "3 segments, 150ms ticks, 10 points per food"},
	{ID: "sprint", Title: "Snake (Sprint)", Description: "1 segment, 100ms ticks, 1 point per food"},
}

// DefaultVariant is used when no variant is named.
const DefaultVariant = "classic"

// Variants returns all known presets in display order.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)
	return out
}

// LookupVariant returns the preset with the given ID.
func LookupVariant(id string) (Variant, bool) {
	for _, v := range variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}
