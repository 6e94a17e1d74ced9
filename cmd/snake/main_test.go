package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/logging"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func quiet() *log.Logger {
	return logging.Discard()
}

func TestSimulateIsDeterministic(t *testing.T) {
	cfg := snake.DefaultConfig()

	a, err := simulate(context.Background(), cfg, 99, 300, false, quiet())
	require.NoError(t, err)
	b, err := simulate(context.Background(), cfg, 99, 300, false, quiet())
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, a.Final.Len(), cfg.InitialLength+a.Final.Score)
}

func TestSimulateStopsAtMaxTicks(t *testing.T) {
	res, err := simulate(context.Background(), snake.DefaultConfig(), 1, 5, false, quiet())
	require.NoError(t, err)

	// Five moves from the centre cannot reach a wall
	assert.Equal(t, 5, res.Ticks)
	assert.Equal(t, 5, res.Final.Moves)
	assert.False(t, res.Final.IsGameOver)
}

func TestSimulateRealtime(t *testing.T) {
	cfg := snake.DefaultConfig()
	cfg.TickInterval = time.Millisecond

	res, err := simulate(context.Background(), cfg, 1, 10, true, quiet())
	require.NoError(t, err)
	assert.Equal(t, 10, res.Ticks)
}

func TestSimulateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := simulate(ctx, snake.DefaultConfig(), 1, 10, false, quiet())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPrintSim(t *testing.T) {
	res, err := simulate(context.Background(), snake.DefaultConfig(), 3, 20, false, quiet())
	require.NoError(t, err)
	res.Variant = "classic"

	var buf bytes.Buffer
	printSim(&buf, res, 20)

	out := buf.String()
	assert.Contains(t, out, "@")
	assert.Contains(t, out, "variant: classic")
	assert.Contains(t, out, "seed:    3")
	assert.Contains(t, out, "ticks:   20")
}

func TestPrintList(t *testing.T) {
	var buf bytes.Buffer
	printList(&buf, registry.List())

	out := buf.String()
	for _, id := range []string{"classic", "arcade", "sprint"} {
		assert.Contains(t, out, id)
	}

	buf.Reset()
	printList(&buf, nil)
	assert.Contains(t, buf.String(), "No variants")
}

func TestVariantArg(t *testing.T) {
	id, err := variantArg(nil)
	require.NoError(t, err)
	assert.Equal(t, "classic", id)

	id, err = variantArg([]string{"sprint"})
	require.NoError(t, err)
	assert.Equal(t, "sprint", id)

	_, err = variantArg([]string{"tron"})
	assert.Error(t, err)
}

func TestConfigCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"config", "arcade", "--size", "8"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		flagSize = 0
	})

	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "# variant: arcade (source: embedded)")
	assert.Contains(t, out, "size: 8")
	assert.Contains(t, out, "start_x: 4")
	assert.Contains(t, out, "points_per_food: 10")
}

func TestTerminalSizeFallsBackToDefault(t *testing.T) {
	// Test binaries write to a pipe, not a terminal
	w, h := terminalSize()
	def := core.DefaultConfig()
	assert.Equal(t, def.ScreenW, w)
	assert.Equal(t, def.ScreenH, h)
}
