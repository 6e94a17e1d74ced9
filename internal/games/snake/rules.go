package snake

import "errors"

// ErrBoardFull is returned when no free cell is left for food.
var ErrBoardFull = errors.New("snake: no free cell for food")

// NextPosition returns where the head lands after one move in dir.
func NextPosition(head Position, dir Direction) Position {
	return head.Step(dir)
}

// InBounds reports whether p lies on an n x n board.
func InBounds(p Position, n int) bool {
	return p.X >= 0 && p.X < n && p.Y >= 0 && p.Y < n
}

// CheckWallCollision reports whether head has left the n x n board.
func CheckWallCollision(head Position, n int) bool {
	return !InBounds(head, n)
}

// CheckSelfCollision reports whether head coincides with any body cell.
// An empty body never collides.
func CheckSelfCollision(head Position, body []Position) bool {
	return Occupies(body, head)
}

// Occupies reports whether any segment of snake is at p.
func Occupies(snake []Position, p Position) bool {
	for _, seg := range snake {
		if seg == p {
			return true
		}
	}
	return false
}

// MoveSnake returns a new slice with the head advanced one cell in dir.
// The tail is dropped unless grow is set. The input slice is not modified.
func MoveSnake(snake []Position, dir Direction, grow bool) []Position {
	if len(snake) == 0 {
		return nil
	}
	keep := len(snake)
	if !grow {
		keep--
	}
	moved := make([]Position, 0, keep+1)
	moved = append(moved, NextPosition(snake[0], dir))
	moved = append(moved, snake[:keep]...)
	return moved
}

// InitializeSnake lays out length cells with the head at head and the body
// trailing behind it, opposite to dir.
func InitializeSnake(head Position, length int, dir Direction) []Position {
	if length < 1 {
		return nil
	}
	back := dir.Opposite()
	snake := make([]Position, length)
	snake[0] = head
	for i := 1; i < length; i++ {
		snake[i] = snake[i-1].Step(back)
	}
	return snake
}

// PlaceFood picks a random free cell on the n x n board.
// It samples uniformly up to n*n times, then falls back to choosing among
// the remaining free cells so a nearly full board still terminates.
func PlaceFood(rng Random, snake []Position, n int) (Position, error) {
	for range n * n {
		p := Position{X: rng.Intn(n), Y: rng.Intn(n)}
		if !Occupies(snake, p) {
			return p, nil
		}
	}

	occupied := make(map[Position]struct{}, len(snake))
	for _, seg := range snake {
		occupied[seg] = struct{}{}
	}
	var free []Position
	for y := range n {
		for x := range n {
			p := Position{X: x, Y: y}
			if _, ok := occupied[p]; !ok {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Position{X: -1, Y: -1}, ErrBoardFull
	}
	return free[rng.Intn(len(free))], nil
}
