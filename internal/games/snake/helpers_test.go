package snake

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

// scriptedRandom returns queued values in order, then fallback forever.
type scriptedRandom struct {
	vals     []int
	fallback int
	calls    int
}

func script(vals ...int) *scriptedRandom {
	return &scriptedRandom{vals: vals}
}

func (r *scriptedRandom) Intn(n int) int {
	r.calls++
	if len(r.vals) == 0 {
		return r.fallback % n
	}
	v := r.vals[0]
	r.vals = r.vals[1:]
	return v % n
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestEngine(t *testing.T, cfg Config, rng Random) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, rng)
	require.NoError(t, err)
	return e
}

// playing builds a running state by hand.
func playing(dir, pending Direction, food Position, snake ...Position) GameState {
	return GameState{
		Snake:            snake,
		Direction:        dir,
		PendingDirection: pending,
		Food:             food,
	}
}
