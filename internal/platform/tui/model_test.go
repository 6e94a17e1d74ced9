package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func newTestModel(t *testing.T, w, h int) (Model, *snake.Game) {
	t.Helper()
	logger := log.New(io.Discard)
	v, ok := config.LookupVariant("classic")
	require.True(t, ok)
	game := snake.NewGame(v, snake.DefaultConfig(), logger)

	m, err := NewModel(game, core.RuntimeConfig{ScreenW: w, ScreenH: h, Seed: 1}, logger)
	require.NoError(t, err)
	return m, game
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestModelInitStartsTicking(t *testing.T) {
	m, _ := newTestModel(t, 80, 30)
	assert.NotNil(t, m.Init())
}

func TestModelTickAdvancesGame(t *testing.T) {
	m, game := newTestModel(t, 80, 30)
	head := game.Snapshot().Head()

	m, cmd := update(t, m, TickMsg{})

	assert.NotNil(t, cmd, "tick loop continues")
	assert.Equal(t, head.X+1, game.Snapshot().Head().X)
}

func TestModelSteeringAppliesOnNextTick(t *testing.T) {
	m, game := newTestModel(t, 80, 30)
	head := game.Snapshot().Head()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, head, game.Snapshot().Head(), "no move before the tick")
	assert.Equal(t, snake.DirUp, game.Snapshot().PendingDirection)

	_, _ = update(t, m, TickMsg{})
	assert.Equal(t, head.Y-1, game.Snapshot().Head().Y)
}

func TestModelPause(t *testing.T) {
	m, game := newTestModel(t, 80, 30)

	m, _ = update(t, m, runeKey("p"))
	assert.True(t, m.State().Paused)

	before := game.Snapshot()
	m, _ = update(t, m, TickMsg{})
	assert.Equal(t, before, game.Snapshot())
	assert.Contains(t, m.View(), "Paused")
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, 80, 30)

	m, cmd := update(t, m, runeKey("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModelViewShowsHelp(t *testing.T) {
	m, _ := newTestModel(t, 80, 30)

	view := m.View()
	assert.Contains(t, view, "Score: 0")
	assert.Contains(t, view, "quit")

	m, _ = update(t, m, runeKey("?"))
	assert.Contains(t, m.View(), "autopilot")
}

func TestModelResizeKeepsGame(t *testing.T) {
	m, game := newTestModel(t, 80, 30)
	m, _ = update(t, m, TickMsg{})
	moves := game.Snapshot().Moves

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	assert.Equal(t, moves, game.Snapshot().Moves, "resize does not restart")
	assert.Contains(t, m.View(), "too small")

	m, _ = update(t, m, TickMsg{})
	assert.Equal(t, moves, game.Snapshot().Moves, "no ticks while too small")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	_, _ = update(t, m, TickMsg{})
	assert.Equal(t, moves+1, game.Snapshot().Moves)
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	m, game := newTestModel(t, 80, 30)
	m, _ = update(t, m, TickMsg{})

	m, _ = update(t, m, runeKey("r"))
	require.Equal(t, 1, game.Snapshot().Moves)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	for range 20 {
		m, _ = update(t, m, TickMsg{})
		if m.State().GameOver {
			break
		}
	}
	require.True(t, m.State().GameOver)
	assert.True(t, strings.Contains(m.View(), "Game Over"))

	m, _ = update(t, m, runeKey("r"))
	assert.False(t, m.State().GameOver)
	assert.Zero(t, game.Snapshot().Moves)
}
