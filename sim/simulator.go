package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/beka-birhanu/maze-world-api/maze"
)

// Simulator is the navigation state machine. It owns the episode state and
// its own random source; multiple simulators never share either, so
// independent instances may run on separate goroutines without
// synchronization.
type Simulator struct {
	width    int
	height   int
	producer MazeProducer
	rng      *rand.Rand

	grid      maze.Grid
	agent     maze.Position
	target    maze.Position
	prevAgent *maze.Position
	phase     Phase
}

// New creates a simulator for mazes of the given shape. Width and height
// must be odd.
func New(width, height int, producer MazeProducer) (*Simulator, error) {
	if width%2 == 0 || height%2 == 0 {
		return nil, maze.ErrEvenDimension
	}

	return &Simulator{
		width:    width,
		height:   height,
		producer: producer,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		phase:    PhaseIdle,
	}, nil
}

// Reset starts a new episode. A non-nil seed replaces the simulator's
// random source for reproducible layouts; a nil seed continues from the
// current entropy. The previous episode's state is discarded.
func (s *Simulator) Reset(seed *int64) (maze.Grid, Info, error) {
	if seed != nil {
		s.rng = rand.New(rand.NewSource(*seed))
	}

	grid, agent, target, err := s.producer.Produce(s.rng)
	if err != nil {
		return nil, Info{}, err
	}
	if grid.Height() != s.height || grid.Width() != s.width {
		return nil, Info{}, fmt.Errorf("%w: generated %dx%d, configured %dx%d",
			ErrShapeMismatch, grid.Height(), grid.Width(), s.height, s.width)
	}

	s.grid = grid
	s.agent = agent
	s.target = target
	s.prevAgent = nil
	s.phase = PhaseRunning

	return s.observation(), s.info(), nil
}

// Step applies one action to the running episode.
//
// A move into a wall leaves the agent in place and costs the collision
// penalty. A move onto the target rewards the goal value and terminates the
// episode. Every other move costs the step cost. Truncation by step limit is
// an external wrapper's concern, so Truncated is always false here.
func (s *Simulator) Step(action Action) (StepResult, error) {
	if s.phase != PhaseRunning {
		return StepResult{}, ErrEpisodeNotRunning
	}
	if action < 0 || action >= actionCount {
		return StepResult{}, fmt.Errorf("%w: %d", ErrInvalidAction, action)
	}

	terminated := false
	var reward float64

	candidate := s.agent.Add(ActionToDirection[action])
	if s.grid.IsWall(candidate) {
		reward = CollisionPenalty
	} else {
		prev := s.agent
		s.prevAgent = &prev
		s.agent = candidate

		if s.agent.Equal(s.target) {
			reward = GoalReward
			terminated = true
			s.phase = PhaseTerminated
		} else {
			reward = StepCost
		}
	}

	return StepResult{
		Observation: s.observation(),
		Reward:      reward,
		Terminated:  terminated,
		Truncated:   false,
		Info:        s.info(),
	}, nil
}

// Observe returns the current observation and info without mutating the
// episode. Valid once an episode has started, including after termination.
func (s *Simulator) Observe() (maze.Grid, Info, error) {
	if s.phase == PhaseIdle {
		return nil, Info{}, ErrEpisodeNotRunning
	}
	return s.observation(), s.info(), nil
}

// MazeMap returns a copy of the current maze without overlay markers,
// suitable for feeding a solver.
func (s *Simulator) MazeMap() maze.Grid {
	return s.grid.Clone()
}

// AgentPos returns the agent's current position.
func (s *Simulator) AgentPos() maze.Position {
	return s.agent
}

// TargetPos returns the target position.
func (s *Simulator) TargetPos() maze.Position {
	return s.target
}

// PrevAgentPos returns the agent's position before its last successful
// move, or nil when the agent has not moved this episode. External
// renderers use it to clear the previous agent cell.
func (s *Simulator) PrevAgentPos() *maze.Position {
	if s.prevAgent == nil {
		return nil
	}
	prev := *s.prevAgent
	return &prev
}

// Phase returns the episode lifecycle phase.
func (s *Simulator) Phase() Phase {
	return s.phase
}

func (s *Simulator) observation() maze.Grid {
	obs := s.grid.Clone()
	if s.agent.Equal(s.target) {
		obs[s.agent.Row][s.agent.Col] = maze.AgentOnTarget
	} else {
		obs[s.agent.Row][s.agent.Col] = maze.Agent
		obs[s.target.Row][s.target.Col] = maze.Target
	}
	return obs
}

func (s *Simulator) info() Info {
	return Info{
		Distance: s.agent.L1Dist(s.target),
		Agent:    s.agent,
		Target:   s.target,
	}
}
