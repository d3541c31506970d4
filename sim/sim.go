/*
Package sim implements a single-agent maze navigation simulator.

An episode starts with Reset, which asks a MazeProducer for a maze layout
plus agent start and target positions, and advances with Step until the
agent reaches the target. Observations are a single grid snapshot with the
agent and target overlaid on the floor/wall cells (AgentOnTarget when the
two coincide); the raw maze and both positions stay readable separately so
consumers never need to parse the overlay.
*/
package sim

import (
	"errors"

	"github.com/beka-birhanu/maze-world-api/maze"
)

// Simulation-related errors.
var (
	ErrShapeMismatch         = errors.New("generated maze shape does not match configured dimensions")
	ErrInvalidAction         = errors.New("unrecognized action symbol")
	ErrEpisodeNotRunning     = errors.New("no running episode")
	ErrNotBigEnoughDimension = errors.New("dimension is not big enough")
	ErrBlockedEndpoint       = errors.New("start or target is on a wall cell")
)

// Action is one of the four discrete move symbols.
type Action int

// The action set, in table order: right, up, left, down.
const (
	ActionRight Action = iota
	ActionUp
	ActionLeft
	ActionDown

	actionCount
)

// ActionToDirection binds each action symbol to its fixed displacement
// vector. The binding is part of the public contract and never changes for
// the lifetime of a simulator.
var ActionToDirection = maze.Directions

// Reward contract: reaching the target beats stepping, and stepping beats
// bumping into walls by a wide margin.
const (
	GoalReward       = 1.0
	StepCost         = -0.01
	CollisionPenalty = -1.0
)

// Phase tracks the episode lifecycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseTerminated
)

// Info is the auxiliary bundle returned alongside every observation.
type Info struct {
	Distance int           `json:"distance"` // Manhattan distance from agent to target
	Agent    maze.Position `json:"agent"`
	Target   maze.Position `json:"target"`
}

// StepResult bundles everything a step produces.
type StepResult struct {
	Observation maze.Grid `json:"observation"`
	Reward      float64   `json:"reward"`
	Terminated  bool      `json:"terminated"`
	Truncated   bool      `json:"truncated"`
	Info        Info      `json:"info"`
}
