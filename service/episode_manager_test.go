package service

import (
	"io"
	"log"
	"testing"

	"github.com/beka-birhanu/maze-world-api/maze"
	"github.com/beka-birhanu/maze-world-api/service/i"
	"github.com/beka-birhanu/maze-world-api/sim"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *EpisodeSessionManager {
	t.Helper()
	m, err := NewEpisodeSessionManager(&Config{
		DefaultWidth:  11,
		DefaultHeight: 11,
		Logger:        log.New(io.Discard, "", 0),
	})
	require.NoError(t, err)
	return m
}

func TestNewEpisodeSessionManager(t *testing.T) {
	_, err := NewEpisodeSessionManager(&Config{
		DefaultWidth:  10,
		DefaultHeight: 11,
		Logger:        log.New(io.Discard, "", 0),
	})
	assert.ErrorIs(t, err, maze.ErrEvenDimension)
}

func TestSessionLifecycle(t *testing.T) {
	m := newTestManager(t)
	seed := int64(7)

	id, observation, info, err := m.NewSession(i.SessionOptions{Seed: &seed})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, 11, observation.Height())
	assert.Equal(t, maze.Position{Row: 1, Col: 1}, info.Agent)

	t.Run("solve and replay to the target", func(t *testing.T) {
		actions, err := m.Solve(id)
		require.NoError(t, err)
		require.NotEmpty(t, actions)

		var last sim.StepResult
		for _, action := range actions {
			last, err = m.Step(id, action)
			require.NoError(t, err)
		}
		assert.True(t, last.Terminated)
		assert.Equal(t, sim.GoalReward, last.Reward)
	})

	t.Run("solved episode yields empty oracle", func(t *testing.T) {
		actions, err := m.Solve(id)
		require.NoError(t, err)
		assert.Empty(t, actions)
	})

	t.Run("reset revives a terminated episode", func(t *testing.T) {
		_, info, err := m.Reset(id, &seed)
		require.NoError(t, err)
		assert.Equal(t, maze.Position{Row: 1, Col: 1}, info.Agent)

		_, err = m.Step(id, sim.ActionRight)
		require.NoError(t, err)
	})

	t.Run("snapshot does not mutate", func(t *testing.T) {
		_, before, err := m.Snapshot(id)
		require.NoError(t, err)
		_, after, err := m.Snapshot(id)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("end session removes it", func(t *testing.T) {
		require.NoError(t, m.EndSession(id))
		assert.ErrorIs(t, m.EndSession(id), ErrSessionNotFound)

		_, err := m.Step(id, sim.ActionRight)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestSessionOptions(t *testing.T) {
	m := newTestManager(t)

	t.Run("unknown generator", func(t *testing.T) {
		_, _, _, err := m.NewSession(i.SessionOptions{Generator: "spiral"})
		assert.ErrorIs(t, err, ErrUnknownGenerator)
	})

	t.Run("even dimension override", func(t *testing.T) {
		_, _, _, err := m.NewSession(i.SessionOptions{Width: 12})
		assert.ErrorIs(t, err, maze.ErrEvenDimension)
	})

	t.Run("dense generator sessions", func(t *testing.T) {
		seed := int64(21)
		id, _, info, err := m.NewSession(i.SessionOptions{
			Generator: GeneratorDense,
			Width:     15,
			Height:    9,
			Seed:      &seed,
		})
		require.NoError(t, err)
		assert.Equal(t, maze.Position{Row: 7, Col: 13}, info.Target)
		require.NoError(t, m.EndSession(id))
	})

	t.Run("unknown session ids", func(t *testing.T) {
		_, _, err := m.Reset(uuid.New(), nil)
		assert.ErrorIs(t, err, ErrSessionNotFound)

		_, err = m.Solve(uuid.New())
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}
