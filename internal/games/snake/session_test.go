package snake

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, cfg Config, rng Random) *Session {
	t.Helper()
	s, err := NewSession(newTestEngine(t, cfg, rng), quietLogger())
	require.NoError(t, err)
	return s
}

func TestSessionSubmitInput(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), script(0, 0))

	st, err := s.SubmitInput(IntentDown)
	require.NoError(t, err)
	assert.Equal(t, DirDown, st.PendingDirection)

	st, err = s.SubmitInput(IntentPause)
	require.NoError(t, err)
	assert.True(t, st.IsPaused)
	assert.Equal(t, st, s.Tick(), "paused session does not move")

	st, err = s.SubmitInput(IntentPause)
	require.NoError(t, err)
	assert.False(t, st.IsPaused)

	st = s.Tick()
	assert.Equal(t, Position{10, 11}, st.Head())

	_, err = s.SubmitInput(Intent(42))
	assert.Error(t, err)
}

func TestSessionSnapshotIsDetached(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), script(0, 0))

	snap := s.Snapshot()
	snap.Snake[0] = Position{-5, -5}

	assert.Equal(t, Position{10, 10}, s.Snapshot().Head())
}

func TestSessionHighScoreSurvivesReset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Start = Position{17, 10}
	// Food ahead of the head twice, then somewhere harmless
	s := newTestSession(t, cfg, script(18, 10, 19, 10, 0, 0))

	s.Tick()
	st := s.Tick()
	require.Equal(t, 2, st.Score)

	st = s.Tick()
	require.True(t, st.IsGameOver)
	assert.Equal(t, CauseWall, st.Cause)
	assert.Equal(t, 2, s.HighScore())

	st, err := s.SubmitInput(IntentReset)
	require.NoError(t, err)
	assert.Zero(t, st.Score)
	assert.False(t, st.IsGameOver)
	assert.Equal(t, 2, s.HighScore())
}

func TestSessionRun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TickInterval = time.Millisecond
	s := newTestSession(t, cfg, NewRandom(1))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	ticks := 0
	err := s.Run(ctx, func(GameState) { ticks++ })

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Positive(t, ticks)
}

func TestSessionRunEveryRejectsBadInterval(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), NewRandom(1))
	assert.Error(t, s.RunEvery(context.Background(), 0, nil))
}

func TestSessionConcurrentInput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TickInterval = time.Millisecond
	s := newTestSession(t, cfg, NewRandom(3))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	var wg sync.WaitGroup
	for _, in := range []Intent{IntentUp, IntentLeft, IntentDown, IntentRight} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ctx.Err() == nil {
				if _, err := s.SubmitInput(in); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}

	err := s.Run(ctx, nil)
	wg.Wait()
	require.ErrorIs(t, err, context.DeadlineExceeded)

	st := s.Snapshot()
	if !st.IsGameOver {
		assert.NotEqual(t, st.Direction.Opposite(), st.PendingDirection)
	}
}

func TestIntentFor(t *testing.T) {
	for _, d := range Directions {
		dir, ok := IntentFor(d).direction()
		require.True(t, ok)
		assert.Equal(t, d, dir)
	}
	_, ok := IntentPause.direction()
	assert.False(t, ok)
	assert.Equal(t, "reset", IntentReset.String())
}
