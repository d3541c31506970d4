// Package episodeapi exposes episode sessions over REST.
package episodeapi

import (
	"github.com/beka-birhanu/maze-world-api/maze"
	"github.com/beka-birhanu/maze-world-api/sim"
	"github.com/google/uuid"
)

// CreateSessionRequest represents a request to start a new episode session.
// All fields are optional; the server falls back to its configured defaults.
type CreateSessionRequest struct {
	Generator  string  `json:"generator"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Complexity float64 `json:"complexity"`
	Density    float64 `json:"density"`
	Seed       *int64  `json:"seed"`
}

// ResetRequest carries the optional seed for an episode reset.
type ResetRequest struct {
	Seed *int64 `json:"seed"`
}

// StepRequest carries the action symbol for one step.
type StepRequest struct {
	Action *int `json:"action" binding:"required"`
}

// SessionResponse represents a created session with its initial observation.
type SessionResponse struct {
	ID          uuid.UUID `json:"id"`
	Observation maze.Grid `json:"observation"`
	Info        sim.Info  `json:"info"`
}

// ObservationResponse represents an observation snapshot.
type ObservationResponse struct {
	Observation maze.Grid `json:"observation"`
	Info        sim.Info  `json:"info"`
}

// SolutionResponse represents the oracle action sequence for an episode.
type SolutionResponse struct {
	Actions []sim.Action `json:"actions"`
}
