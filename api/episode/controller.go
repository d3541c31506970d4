package episodeapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/maze-world-api/maze"
	"github.com/beka-birhanu/maze-world-api/service"
	"github.com/beka-birhanu/maze-world-api/service/i"
	"github.com/beka-birhanu/maze-world-api/sim"
	"github.com/beka-birhanu/maze-world-api/solver"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EpisodeController manages episode session operations.
type EpisodeController struct {
	sessions i.EpisodeSessionManager
}

// NewEpisodeController initializes an EpisodeController.
func NewEpisodeController(sessions i.EpisodeSessionManager) (*EpisodeController, error) {
	return &EpisodeController{sessions: sessions}, nil
}

// RegisterPublic registers public routes.
func (ec *EpisodeController) RegisterPublic(route *gin.RouterGroup) {
	episodes := route.Group("/episodes")
	{
		episodes.POST("/", ec.create)
		episodes.GET("/:ID", ec.snapshot)
		episodes.POST("/:ID/reset", ec.reset)
		episodes.POST("/:ID/step", ec.step)
		episodes.GET("/:ID/solution", ec.solution)
		episodes.DELETE("/:ID", ec.end)
	}
}

// RegisterProtected registers protected routes.
func (ec *EpisodeController) RegisterProtected(route *gin.RouterGroup) {}

// create handles session creation requests.
func (ec *EpisodeController) create(ctx *gin.Context) {
	var request CreateSessionRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, observation, info, err := ec.sessions.NewSession(i.SessionOptions{
		Generator:  request.Generator,
		Width:      request.Width,
		Height:     request.Height,
		Complexity: request.Complexity,
		Density:    request.Density,
		Seed:       request.Seed,
	})
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, SessionResponse{ID: id, Observation: observation, Info: info})
}

// snapshot returns the current observation without mutating the episode.
func (ec *EpisodeController) snapshot(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	observation, info, err := ec.sessions.Snapshot(id)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, ObservationResponse{Observation: observation, Info: info})
}

// reset restarts the session's episode.
func (ec *EpisodeController) reset(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	var request ResetRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	observation, info, err := ec.sessions.Reset(id, request.Seed)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, ObservationResponse{Observation: observation, Info: info})
}

// step applies one action to the session's episode.
func (ec *EpisodeController) step(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	var request StepRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := ec.sessions.Step(id, sim.Action(*request.Action))
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// solution returns the oracle action sequence for the session's episode.
func (ec *EpisodeController) solution(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	actions, err := ec.sessions.Solve(id)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, SolutionResponse{Actions: actions})
}

// end discards the session.
func (ec *EpisodeController) end(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	if err := ec.sessions.EndSession(id); err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// sessionID parses the ID path parameter, responding with 400 on failure.
func sessionID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return uuid.Nil, false
	}
	return id, true
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, solver.ErrUnreachableGoal):
		return http.StatusNotFound
	case errors.Is(err, sim.ErrEpisodeNotRunning):
		return http.StatusConflict
	case errors.Is(err, sim.ErrInvalidAction),
		errors.Is(err, sim.ErrNotBigEnoughDimension),
		errors.Is(err, maze.ErrEvenDimension),
		errors.Is(err, maze.ErrBadTuning),
		errors.Is(err, service.ErrUnknownGenerator):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
