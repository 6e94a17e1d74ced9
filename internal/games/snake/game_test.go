package snake

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var classic = config.Variant{ID: "classic", Title: "Snake"}

func newTestGame(t *testing.T, cfg Config, w, h int) *Game {
	t.Helper()
	g := NewGame(classic, cfg, quietLogger())
	require.NoError(t, g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, Seed: 1}))
	return g
}

func render(g *Game, w, h int) string {
	screen := core.NewScreen(w, h)
	g.Render(screen)
	return screen.String()
}

func TestVariantsRegistered(t *testing.T) {
	for _, v := range config.Variants() {
		assert.True(t, registry.Exists(v.ID), v.ID)
	}
}

func TestFactoryLoadsVariant(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	g, err := registry.Create("arcade", registry.Options{Logger: quietLogger()})
	require.NoError(t, err)
	assert.Equal(t, "arcade", g.ID())
	assert.Equal(t, "Snake (Arcade)", g.Title())
	assert.Equal(t, 150*time.Millisecond, g.TickInterval())
}

func TestFactoryAppliesOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	g, err := registry.Create("classic", registry.Options{
		Logger:    quietLogger(),
		Overrides: config.Overrides{BoardSize: 10, TickMS: 50},
	})
	require.NoError(t, err)
	require.NoError(t, g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}))

	sg := g.(*Game)
	assert.Equal(t, 50*time.Millisecond, sg.TickInterval())
	assert.Equal(t, Position{5, 5}, sg.Snapshot().Head())
}

func TestEngineConfig(t *testing.T) {
	ec, err := EngineConfig(config.DefaultConfig("classic"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), ec)

	bad := config.DefaultConfig("classic")
	bad.Snake.StartX = 0
	_, err = EngineConfig(bad)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	bad = config.DefaultConfig("classic")
	bad.Timing.TickMS = 0
	_, err = EngineConfig(bad)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestRenderBoard(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), 60, 30)
	out := render(g, 60, 30)

	assert.Contains(t, out, "Score: 0")
	assert.Contains(t, out, "Length: 3")

	board := strings.Join(strings.Split(out, "\n")[hudHeight:], "\n")
	assert.Equal(t, 1, strings.Count(board, "@"))
	assert.Equal(t, 2, strings.Count(board, "o"), "body segments")
	assert.Equal(t, 1, strings.Count(board, "*"))
	assert.Contains(t, out, "┌")
	assert.NotContains(t, out, "Game Over")
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), 20, 10)
	out := render(g, 20, 10)
	assert.Contains(t, out, "too small")

	before := g.Snapshot()
	res := g.Step()
	assert.False(t, res.Moved)
	assert.Equal(t, before, g.Snapshot(), "no ticks while the board does not fit")

	g.Resize(60, 30)
	assert.True(t, g.Step().Moved)
}

func TestRenderPaused(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), 60, 30)
	g.HandleInput(core.ActionPause)

	assert.True(t, g.State().Paused)
	assert.Contains(t, render(g, 60, 30), "Paused")
	assert.False(t, g.Step().Moved)
}

func crashIntoWall(t *testing.T, g *Game) {
	t.Helper()
	for range 20 {
		if g.Step().State.GameOver {
			return
		}
	}
	t.Fatal("snake never reached the wall")
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), 60, 30)

	// Restart is ignored while playing
	g.Step()
	g.HandleInput(core.ActionRestart)
	require.Equal(t, 1, g.Snapshot().Moves)

	g.HandleInput(core.ActionUp)
	crashIntoWall(t, g)

	out := render(g, 60, 30)
	assert.Contains(t, out, "Game Over")
	assert.Contains(t, out, "You hit the wall")
	assert.Contains(t, out, "Press R to restart")

	g.HandleInput(core.ActionRestart)
	s := g.Snapshot()
	assert.False(t, s.IsGameOver)
	assert.Zero(t, s.Moves)
	assert.Equal(t, DirRight, s.Direction)
}

func TestDemoMode(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), 60, 30)

	g.HandleInput(core.ActionDemo)
	require.True(t, g.Demo())
	assert.Contains(t, render(g, 60, 30), "[DEMO]")

	for range 50 {
		g.Step()
	}
	assert.Positive(t, g.Snapshot().Moves)

	// Manual steering takes over
	g.HandleInput(core.ActionDown)
	assert.False(t, g.Demo())
}

func TestHighScoreCarriesAcrossReset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridSize = 6
	cfg.Start = Position{3, 3}
	g := newTestGame(t, cfg, 40, 20)
	g.SetDemo(true)

	for range 500 {
		if g.Step().State.GameOver {
			break
		}
	}
	best := g.State().HighScore

	require.NoError(t, g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 20, Seed: 2}))
	assert.Zero(t, g.State().Score)
	assert.Equal(t, best, g.State().HighScore)
}

func TestDebugState(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), 60, 30)
	out := g.DebugState()
	assert.Contains(t, out, "Status: playing")
	assert.Contains(t, out, "Head: (10,10)")
}
