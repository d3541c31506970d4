package i

import (
	"github.com/beka-birhanu/maze-world-api/maze"
	"github.com/beka-birhanu/maze-world-api/sim"
	"github.com/google/uuid"
)

// SessionOptions configures a new episode session. Zero Width/Height fall
// back to the server defaults; zero Complexity/Density fall back to the
// legacy generator defaults. Seed is optional.
type SessionOptions struct {
	Generator  string
	Width      int
	Height     int
	Complexity float64
	Density    float64
	Seed       *int64
}

// EpisodeSessionManager manages live episode simulators keyed by session id.
type EpisodeSessionManager interface {
	// NewSession creates a simulator, runs its first reset, and returns the
	// session id with the initial observation.
	NewSession(opts SessionOptions) (uuid.UUID, maze.Grid, sim.Info, error)

	// Reset restarts the session's episode, optionally reseeded.
	Reset(id uuid.UUID, seed *int64) (maze.Grid, sim.Info, error)

	// Step applies one action to the session's episode.
	Step(id uuid.UUID, action sim.Action) (sim.StepResult, error)

	// Solve returns the oracle action sequence from the agent's current
	// position to the target.
	Solve(id uuid.UUID) ([]sim.Action, error)

	// Snapshot returns the current observation without mutating the episode.
	Snapshot(id uuid.UUID) (maze.Grid, sim.Info, error)

	// EndSession discards the session.
	EndSession(id uuid.UUID) error
}
