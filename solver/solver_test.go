package solver

import (
	"math/rand"
	"testing"

	"github.com/beka-birhanu/maze-world-api/maze"
	"github.com/beka-birhanu/maze-world-api/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridFromRunes builds a grid from '#' (wall) and '.' (floor) rows.
func gridFromRunes(rows []string) maze.Grid {
	grid := make(maze.Grid, len(rows))
	for i, row := range rows {
		grid[i] = make([]int8, len(row))
		for j, r := range row {
			if r == '#' {
				grid[i][j] = maze.Wall
			}
		}
	}
	return grid
}

// bfsDistance computes the graph-theoretic cell distance independently of
// the solver, for cross-checking path lengths.
func bfsDistance(impassable [][]bool, start, goal maze.Position) int {
	type entry struct {
		pos  maze.Position
		dist int
	}
	seen := map[maze.Position]struct{}{start: {}}
	queue := []entry{{pos: start}}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current.pos.Equal(goal) {
			return current.dist
		}
		for _, dir := range maze.Directions {
			next := current.pos.Add(dir)
			if next.Row < 0 || next.Row >= len(impassable) || next.Col < 0 || next.Col >= len(impassable[0]) {
				continue
			}
			if impassable[next.Row][next.Col] {
				continue
			}
			if _, ok := seen[next]; ok {
				continue
			}
			seen[next] = struct{}{}
			queue = append(queue, entry{pos: next, dist: current.dist + 1})
		}
	}
	return -1
}

func TestSolve(t *testing.T) {
	motions := sim.ActionToDirection[:]

	t.Run("straight corridor", func(t *testing.T) {
		grid := gridFromRunes([]string{
			"#####",
			"#...#",
			"#####",
		})
		actions, err := Solve(grid.Impassable(), motions, maze.Position{Row: 1, Col: 1}, maze.Position{Row: 1, Col: 3})
		require.NoError(t, err)
		assert.Equal(t, []int{int(sim.ActionRight), int(sim.ActionRight)}, actions)
	})

	t.Run("path around a wall", func(t *testing.T) {
		grid := gridFromRunes([]string{
			"#####",
			"#.#.#",
			"#...#",
			"#####",
		})
		actions, err := Solve(grid.Impassable(), motions, maze.Position{Row: 1, Col: 1}, maze.Position{Row: 1, Col: 3})
		require.NoError(t, err)
		assert.Equal(t, []int{
			int(sim.ActionDown), int(sim.ActionRight), int(sim.ActionRight), int(sim.ActionUp),
		}, actions)
	})

	t.Run("start equals goal", func(t *testing.T) {
		grid := gridFromRunes([]string{
			"###",
			"#.#",
			"###",
		})
		actions, err := Solve(grid.Impassable(), motions, maze.Position{Row: 1, Col: 1}, maze.Position{Row: 1, Col: 1})
		require.NoError(t, err)
		assert.Empty(t, actions)
	})

	t.Run("unreachable goal", func(t *testing.T) {
		grid := gridFromRunes([]string{
			"#####",
			"#.#.#",
			"#####",
		})
		_, err := Solve(grid.Impassable(), motions, maze.Position{Row: 1, Col: 1}, maze.Position{Row: 1, Col: 3})
		assert.ErrorIs(t, err, ErrUnreachableGoal)
	})

	t.Run("restricted motions make cells unreachable", func(t *testing.T) {
		grid := gridFromRunes([]string{
			"###",
			"#.#",
			"#.#",
			"###",
		})
		// Without a downward motion the lower cell cannot be entered.
		limited := []maze.Position{{Row: 0, Col: 1}, {Row: -1, Col: 0}, {Row: 0, Col: -1}}
		_, err := Solve(grid.Impassable(), limited, maze.Position{Row: 1, Col: 1}, maze.Position{Row: 2, Col: 1})
		assert.ErrorIs(t, err, ErrUnreachableGoal)
	})
}

// TestSolveGeneratedMazes replays oracle action sequences through the
// simulator on Wilson mazes and checks both arrival and optimality.
func TestSolveGeneratedMazes(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		producer, err := sim.NewWilsonProducer(11, 11)
		require.NoError(t, err)
		s, err := sim.New(11, 11, producer)
		require.NoError(t, err)

		_, info, err := s.Reset(&seed)
		require.NoError(t, err)

		impassable := s.MazeMap().Impassable()
		actions, err := Solve(impassable, sim.ActionToDirection[:], info.Agent, info.Target)
		require.NoError(t, err, "seed %d", seed)

		wantLen := bfsDistance(impassable, info.Agent, info.Target)
		require.Equal(t, wantLen, len(actions), "seed %d", seed)

		for i, action := range actions {
			result, err := s.Step(sim.Action(action))
			require.NoError(t, err, "seed %d step %d", seed, i)
			if i < len(actions)-1 {
				require.Equal(t, sim.StepCost, result.Reward, "seed %d step %d", seed, i)
				require.False(t, result.Terminated)
			} else {
				require.Equal(t, sim.GoalReward, result.Reward, "seed %d final step", seed)
				require.True(t, result.Terminated)
				require.True(t, result.Info.Agent.Equal(info.Target))
			}
		}
	}
}

// TestSolveDeterministic pins the full pipeline: same seed, same maze, same
// action sequence.
func TestSolveDeterministic(t *testing.T) {
	solveOnce := func(seed int64) []int {
		grid := maze.Frame(maze.GenerateWilson(9, 9, rand.New(rand.NewSource(seed))))
		start := maze.Position{Row: 1, Col: 1}
		goal := maze.Position{Row: grid.Height() - 2, Col: grid.Width() - 2}
		actions, err := Solve(grid.Impassable(), sim.ActionToDirection[:], start, goal)
		require.NoError(t, err)
		return actions
	}

	assert.Equal(t, solveOnce(17), solveOnce(17))
}
