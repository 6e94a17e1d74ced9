package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Autopilot steers the snake greedily towards food while avoiding moves
// that end the game on the next tick.
type Autopilot struct {
	GridSize int
}

// Next picks a direction for the upcoming tick.
// Safe moves win over fatal ones; among equals the shorter Manhattan
// distance to food wins, ties broken in Directions order. When every move
// is fatal the current direction is kept.
func (a Autopilot) Next(s GameState) Direction {
	if len(s.Snake) == 0 {
		return s.Direction
	}

	best := s.Direction
	bestSafe := false
	bestDist := -1

	for _, dir := range Directions {
		if dir == s.Direction.Opposite() {
			continue
		}
		head := NextPosition(s.Snake[0], dir)
		safe := a.safe(s, head)
		dist := core.Abs(head.X-s.Food.X) + core.Abs(head.Y-s.Food.Y)

		switch {
		case bestDist < 0,
			safe && !bestSafe,
			safe == bestSafe && dist < bestDist:
			best, bestSafe, bestDist = dir, safe, dist
		}
	}
	if !bestSafe {
		return s.Direction
	}
	return best
}

func (a Autopilot) safe(s GameState, head Position) bool {
	if CheckWallCollision(head, a.GridSize) {
		return false
	}
	body := s.Snake
	if head != s.Food {
		body = body[:len(body)-1]
	}
	return !CheckSelfCollision(head, body)
}
