package service

import (
	"errors"
	"log"
	"sync"

	"github.com/beka-birhanu/maze-world-api/config"
	"github.com/beka-birhanu/maze-world-api/maze"
	"github.com/beka-birhanu/maze-world-api/service/i"
	"github.com/beka-birhanu/maze-world-api/sim"
	"github.com/beka-birhanu/maze-world-api/solver"
	"github.com/google/uuid"
)

// Generator names accepted in session options.
const (
	GeneratorWilson = "wilson"
	GeneratorDense  = "dense"

	defaultComplexity = 0.75
	defaultDensity    = 0.75
)

var (
	ErrSessionNotFound  = errors.New("no episode session with that id")
	ErrUnknownGenerator = errors.New("unknown maze generator")
)

// session wraps one simulator with its own lock so concurrent requests on
// the same episode serialize.
type session struct {
	simulator *sim.Simulator
	sync.Mutex
}

// EpisodeSessionManager keeps live episode simulators keyed by session id.
type EpisodeSessionManager struct {
	defaultWidth  int
	defaultHeight int
	sessions      map[uuid.UUID]*session
	logger        *log.Logger
	sync.RWMutex
}

// Config holds settings for creating a new EpisodeSessionManager.
type Config struct {
	DefaultWidth  int
	DefaultHeight int
	Logger        *log.Logger
}

// NewEpisodeSessionManager validates the default maze shape and returns a
// manager with no sessions.
func NewEpisodeSessionManager(c *Config) (*EpisodeSessionManager, error) {
	if c.DefaultWidth%2 == 0 || c.DefaultHeight%2 == 0 {
		return nil, maze.ErrEvenDimension
	}

	return &EpisodeSessionManager{
		defaultWidth:  c.DefaultWidth,
		defaultHeight: c.DefaultHeight,
		sessions:      make(map[uuid.UUID]*session),
		logger:        c.Logger,
	}, nil
}

// NewSession builds a producer from the options, creates a simulator, runs
// the first reset, and registers the session.
func (m *EpisodeSessionManager) NewSession(opts i.SessionOptions) (uuid.UUID, maze.Grid, sim.Info, error) {
	width, height := opts.Width, opts.Height
	if width == 0 {
		width = m.defaultWidth
	}
	if height == 0 {
		height = m.defaultHeight
	}

	producer, err := buildProducer(opts, width, height)
	if err != nil {
		m.logger.Printf("%s[ERROR]%s building maze producer: %s", config.LogErrorColor, config.LogColorReset, err)
		return uuid.Nil, nil, sim.Info{}, err
	}

	simulator, err := sim.New(width, height, producer)
	if err != nil {
		m.logger.Printf("%s[ERROR]%s creating simulator: %s", config.LogErrorColor, config.LogColorReset, err)
		return uuid.Nil, nil, sim.Info{}, err
	}

	observation, info, err := simulator.Reset(opts.Seed)
	if err != nil {
		m.logger.Printf("%s[ERROR]%s resetting new episode: %s", config.LogErrorColor, config.LogColorReset, err)
		return uuid.Nil, nil, sim.Info{}, err
	}

	id := m.saveSession(simulator)
	m.logger.Printf("%s[INFO]%s started episode session %s (%dx%d)", config.LogInfoColor, config.LogColorReset, id, height, width)
	return id, observation, info, nil
}

// Reset restarts the session's episode, optionally reseeded.
func (m *EpisodeSessionManager) Reset(id uuid.UUID, seed *int64) (maze.Grid, sim.Info, error) {
	s, err := m.session(id)
	if err != nil {
		return nil, sim.Info{}, err
	}

	s.Lock()
	defer s.Unlock()
	return s.simulator.Reset(seed)
}

// Step applies one action to the session's episode.
func (m *EpisodeSessionManager) Step(id uuid.UUID, action sim.Action) (sim.StepResult, error) {
	s, err := m.session(id)
	if err != nil {
		return sim.StepResult{}, err
	}

	s.Lock()
	defer s.Unlock()
	return s.simulator.Step(action)
}

// Solve returns the oracle action sequence from the agent's current
// position to the target.
func (m *EpisodeSessionManager) Solve(id uuid.UUID) ([]sim.Action, error) {
	s, err := m.session(id)
	if err != nil {
		return nil, err
	}

	s.Lock()
	defer s.Unlock()

	if s.simulator.Phase() == sim.PhaseIdle {
		return nil, sim.ErrEpisodeNotRunning
	}

	raw, err := solver.Solve(
		s.simulator.MazeMap().Impassable(),
		sim.ActionToDirection[:],
		s.simulator.AgentPos(),
		s.simulator.TargetPos(),
	)
	if err != nil {
		return nil, err
	}

	actions := make([]sim.Action, len(raw))
	for i, a := range raw {
		actions[i] = sim.Action(a)
	}
	return actions, nil
}

// Snapshot returns the current observation without mutating the episode.
func (m *EpisodeSessionManager) Snapshot(id uuid.UUID) (maze.Grid, sim.Info, error) {
	s, err := m.session(id)
	if err != nil {
		return nil, sim.Info{}, err
	}

	s.Lock()
	defer s.Unlock()
	return s.simulator.Observe()
}

// EndSession discards the session.
func (m *EpisodeSessionManager) EndSession(id uuid.UUID) error {
	m.Lock()
	defer m.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	m.logger.Printf("%s[INFO]%s ended episode session %s", config.LogInfoColor, config.LogColorReset, id)
	return nil
}

func (m *EpisodeSessionManager) session(id uuid.UUID) (*session, error) {
	m.RLock()
	defer m.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (m *EpisodeSessionManager) saveSession(simulator *sim.Simulator) uuid.UUID {
	m.Lock()
	defer m.Unlock()

	id := uuid.New()
	for {
		if _, ok := m.sessions[id]; !ok {
			break
		}
		id = uuid.New()
	}

	m.sessions[id] = &session{simulator: simulator}
	return id
}

func buildProducer(opts i.SessionOptions, width, height int) (sim.MazeProducer, error) {
	switch opts.Generator {
	case GeneratorWilson, "":
		return sim.NewWilsonProducer(width, height)
	case GeneratorDense:
		complexity, density := opts.Complexity, opts.Density
		if complexity == 0 {
			complexity = defaultComplexity
		}
		if density == 0 {
			density = defaultDensity
		}
		return sim.NewDenseProducer(width, height, complexity, density)
	default:
		return nil, ErrUnknownGenerator
	}
}
