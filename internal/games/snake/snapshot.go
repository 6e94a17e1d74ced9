package snake

import (
	"slices"
	"strings"
)

// Status is the lifecycle phase of a game.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusPaused   Status = "paused"
	StatusGameOver Status = "game_over"
)

// GameState is an immutable snapshot of one game.
// Transitions return a new GameState; the Snake slice of a published state
// is never written to again.
type GameState struct {
	Snake            []Position // Head at index 0
	Direction        Direction  // Last committed direction
	PendingDirection Direction  // Queued direction, applied on the next tick
	Food             Position
	Score            int
	IsGameOver       bool
	IsPaused         bool
	Cause            Cause // Why the game ended, CauseNone while running
	Moves            int   // Ticks that moved the snake
}

// Head returns the first snake segment.
func (s GameState) Head() Position {
	if len(s.Snake) == 0 {
		return Position{X: -1, Y: -1}
	}
	return s.Snake[0]
}

// Len returns the snake length.
func (s GameState) Len() int {
	return len(s.Snake)
}

// Status derives the lifecycle phase from the flags.
func (s GameState) Status() Status {
	switch {
	case s.IsGameOver:
		return StatusGameOver
	case s.IsPaused:
		return StatusPaused
	default:
		return StatusPlaying
	}
}

// Clone returns a deep copy that shares no memory with s.
func (s GameState) Clone() GameState {
	s.Snake = slices.Clone(s.Snake)
	return s
}

// Board renders an n x n ASCII picture of the state: '@' head, 'o' body,
// '*' food, '.' empty.
func (s GameState) Board(n int) string {
	var b strings.Builder
	b.Grow((n + 1) * n)
	for y := range n {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := range n {
			b.WriteByte(s.cellAt(Position{X: x, Y: y}))
		}
	}
	return b.String()
}

func (s GameState) cellAt(p Position) byte {
	for i, seg := range s.Snake {
		if seg == p {
			if i == 0 {
				return '@'
			}
			return 'o'
		}
	}
	if p == s.Food {
		return '*'
	}
	return '.'
}
