package snake

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Intent is a discrete player request with no payload.
type Intent int

const (
	IntentUp Intent = iota
	IntentDown
	IntentLeft
	IntentRight
	IntentPause
	IntentReset
)

func (i Intent) String() string {
	switch i {
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentPause:
		return "pause"
	case IntentReset:
		return "reset"
	default:
		return "unknown"
	}
}

// IntentFor returns the steering intent for dir.
func IntentFor(dir Direction) Intent {
	switch dir {
	case DirUp:
		return IntentUp
	case DirDown:
		return IntentDown
	case DirLeft:
		return IntentLeft
	default:
		return IntentRight
	}
}

func (i Intent) direction() (Direction, bool) {
	switch i {
	case IntentUp:
		return DirUp, true
	case IntentDown:
		return DirDown, true
	case IntentLeft:
		return DirLeft, true
	case IntentRight:
		return DirRight, true
	}
	return DirRight, false
}

// Session holds the single current GameState of a play session.
// Inputs may arrive from any goroutine; every change swaps the whole state
// under a lock, so readers never observe a half-applied transition.
type Session struct {
	mu        sync.Mutex
	engine    *Engine
	state     GameState
	highScore int
	games     int
	logger    *log.Logger
}

// NewSession starts the first game on engine. A nil logger uses log.Default().
func NewSession(engine *Engine, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.Default()
	}
	state, err := engine.Initialize()
	if err != nil {
		return nil, err
	}
	s := &Session{
		engine: engine,
		state:  state,
		games:  1,
		logger: logger,
	}
	s.logger.Info("game started", "grid", engine.GridSize(), "length", state.Len(), "food", state.Food)
	return s, nil
}

// SubmitInput applies an intent to the current state and returns the result.
func (s *Session) SubmitInput(in Intent) (GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir, ok := in.direction(); ok {
		s.state = s.engine.SetDirection(s.state, dir)
		return s.state.Clone(), nil
	}

	switch in {
	case IntentPause:
		s.state = s.engine.TogglePause(s.state)
		s.logger.Debug("pause toggled", "paused", s.state.IsPaused)
	case IntentReset:
		state, err := s.engine.Reset()
		if err != nil {
			return s.state.Clone(), fmt.Errorf("reset: %w", err)
		}
		s.state = state
		s.games++
		s.logger.Info("game reset", "game", s.games, "food", state.Food)
	default:
		return s.state.Clone(), fmt.Errorf("snake: unknown intent %d", in)
	}
	return s.state.Clone(), nil
}

// Tick advances the current game by one step and returns the new snapshot.
func (s *Session) Tick() GameState {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state
	s.state = s.engine.Tick(prev)
	if s.state.Score > s.highScore {
		s.highScore = s.state.Score
	}
	if s.state.IsGameOver && !prev.IsGameOver {
		s.logger.Info("game over",
			"cause", s.state.Cause,
			"score", s.state.Score,
			"length", s.state.Len(),
			"moves", s.state.Moves,
		)
	}
	return s.state.Clone()
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// HighScore returns the best score reached since the session started.
func (s *Session) HighScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highScore
}

// Run ticks the session at the engine's tick interval until ctx is done.
// onTick, if set, receives every snapshot; ticks never overlap.
func (s *Session) Run(ctx context.Context, onTick func(GameState)) error {
	return s.RunEvery(ctx, s.engine.Config().TickInterval, onTick)
}

// RunEvery is Run with an explicit interval.
func (s *Session) RunEvery(ctx context.Context, interval time.Duration, onTick func(GameState)) error {
	if interval <= 0 {
		return fmt.Errorf("snake: tick interval %s must be positive", interval)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			state := s.Tick()
			if onTick != nil {
				onTick(state)
			}
		}
	}
}
