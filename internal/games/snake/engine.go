// Package snake implements the Snake grid simulation: an immutable GameState,
// the pure transition rules, a serialised Session driven by a tick source,
// and the Game adapter that renders state for the terminal platform.
package snake

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every configuration rejected by the engine.
var ErrInvalidConfig = errors.New("snake: invalid config")

// Config holds everything needed to start a game.
type Config struct {
	GridSize         int           // Board is GridSize x GridSize
	InitialLength    int           // Segments at start, >= 1
	Start            Position      // Initial head position
	InitialDirection Direction     // Initial heading; the body trails behind it
	TickInterval     time.Duration // Advisory, used by the tick source only
	PointsPerFood    int           // Score increment per food eaten
}

// DefaultConfig returns the canonical 20x20 board with a three-cell snake
// at (10,10) heading right, 200ms ticks and one point per food.
func DefaultConfig() Config {
	return Config{
		GridSize:         20,
		InitialLength:    3,
		Start:            Position{X: 10, Y: 10},
		InitialDirection: DirRight,
		TickInterval:     200 * time.Millisecond,
		PointsPerFood:    1,
	}
}

// Validate checks that the config describes a playable start.
func (c Config) Validate() error {
	if c.GridSize < 2 {
		return fmt.Errorf("%w: grid size %d, need at least 2", ErrInvalidConfig, c.GridSize)
	}
	if c.InitialLength < 1 {
		return fmt.Errorf("%w: initial length %d, need at least 1", ErrInvalidConfig, c.InitialLength)
	}
	if !c.InitialDirection.Valid() {
		return fmt.Errorf("%w: initial direction %d", ErrInvalidConfig, c.InitialDirection)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval %s must be positive", ErrInvalidConfig, c.TickInterval)
	}
	if c.PointsPerFood < 0 {
		return fmt.Errorf("%w: points per food %d is negative", ErrInvalidConfig, c.PointsPerFood)
	}
	if c.InitialLength >= c.GridSize*c.GridSize {
		return fmt.Errorf("%w: initial length %d leaves no room for food on a %dx%d board",
			ErrInvalidConfig, c.InitialLength, c.GridSize, c.GridSize)
	}
	for i, seg := range InitializeSnake(c.Start, c.InitialLength, c.InitialDirection) {
		if !InBounds(seg, c.GridSize) {
			return fmt.Errorf("%w: segment %d at %s is outside the %dx%d board (head %s, heading %s)",
				ErrInvalidConfig, i, seg, c.GridSize, c.GridSize, c.Start, c.InitialDirection)
		}
	}
	return nil
}

// Engine owns the rules and the randomness for one board configuration.
// It holds no game state itself; every operation maps a GameState to a new one.
type Engine struct {
	cfg Config
	rng Random
}

// NewEngine validates cfg and returns an engine using rng for food placement.
func NewEngine(cfg Config, rng Random) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	return &Engine{cfg: cfg, rng: rng}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// GridSize returns the board dimension.
func (e *Engine) GridSize() int {
	return e.cfg.GridSize
}

// Initialize builds a fresh game.
func (e *Engine) Initialize() (GameState, error) {
	body := InitializeSnake(e.cfg.Start, e.cfg.InitialLength, e.cfg.InitialDirection)
	food, err := PlaceFood(e.rng, body, e.cfg.GridSize)
	if err != nil {
		return GameState{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return GameState{
		Snake:            body,
		Direction:        e.cfg.InitialDirection,
		PendingDirection: e.cfg.InitialDirection,
		Food:             food,
	}, nil
}

// Reset discards any previous game and starts a new one.
func (e *Engine) Reset() (GameState, error) {
	return e.Initialize()
}

// SetDirection queues dir for the next tick. Reversals of the committed
// direction and requests after game over are ignored.
func (e *Engine) SetDirection(s GameState, dir Direction) GameState {
	if s.IsGameOver || !dir.Valid() || dir == s.Direction.Opposite() {
		return s
	}
	s.PendingDirection = dir
	return s
}

// TogglePause flips the pause flag unless the game is over.
func (e *Engine) TogglePause(s GameState) GameState {
	if s.IsGameOver {
		return s
	}
	s.IsPaused = !s.IsPaused
	return s
}

// Tick advances the game by one move.
func (e *Engine) Tick(s GameState) GameState {
	if s.IsGameOver || s.IsPaused || len(s.Snake) == 0 {
		return s
	}

	dir := s.PendingDirection
	head := NextPosition(s.Snake[0], dir)

	if CheckWallCollision(head, e.cfg.GridSize) {
		return e.over(s, CauseWall)
	}

	eating := head == s.Food
	body := s.Snake
	if !eating {
		// The tail cell is vacated during this same move.
		body = body[:len(body)-1]
	}
	if CheckSelfCollision(head, body) {
		return e.over(s, CauseSelf)
	}

	next := s
	next.Direction = dir
	next.Snake = MoveSnake(s.Snake, dir, eating)
	next.Moves++
	if !eating {
		return next
	}

	next.Score += e.cfg.PointsPerFood
	food, err := PlaceFood(e.rng, next.Snake, e.cfg.GridSize)
	if err != nil {
		next.IsGameOver = true
		next.Cause = CauseBoardFull
		return next
	}
	next.Food = food
	return next
}

func (e *Engine) over(s GameState, cause Cause) GameState {
	s.IsGameOver = true
	s.Cause = cause
	return s
}
