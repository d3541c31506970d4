/*
Package solver recovers shortest action sequences through grid mazes.

The maze is viewed as a directed graph over passable cells with one
unit-weight edge per legal motion; with uniform weights, Dijkstra's search
reduces to breadth-first traversal. The predecessor links of the traversal
are walked backward from the goal and each displacement is mapped back to
its index in the caller's motion table.
*/
package solver

import (
	"errors"

	"github.com/beka-birhanu/maze-world-api/maze"
)

var (
	// ErrUnreachableGoal signals that no path exists from start to goal.
	// It is an expected outcome for arbitrary grids, not a failure.
	ErrUnreachableGoal = errors.New("goal is unreachable from start")
	// ErrMotionMismatch signals a path displacement absent from the motion
	// table. The table and the graph edges have diverged, which is a
	// programming invariant breach, never a user error.
	ErrMotionMismatch = errors.New("path displacement matches no motion")
)

// unset marks cells the search never assigned a predecessor.
const unset = -1

// Solve returns the shortest action sequence from start to goal over the
// impassable grid, as indices into motions, in start-to-goal order.
// Returns ErrUnreachableGoal when no path exists.
func Solve(impassable [][]bool, motions []maze.Position, start, goal maze.Position) ([]int, error) {
	rows := len(impassable)
	if rows == 0 {
		return nil, ErrUnreachableGoal
	}
	cols := len(impassable[0])

	flatten := func(p maze.Position) int { return p.Row*cols + p.Col }
	unflatten := func(idx int) maze.Position { return maze.Position{Row: idx / cols, Col: idx % cols} }
	inBound := func(p maze.Position) bool {
		return p.Row >= 0 && p.Row < rows && p.Col >= 0 && p.Col < cols
	}
	if !inBound(start) || !inBound(goal) {
		return nil, ErrUnreachableGoal
	}

	predecessors := make([]int, rows*cols)
	for i := range predecessors {
		predecessors[i] = unset
	}

	// Uniform edge weights make breadth-first order a Dijkstra order.
	startIdx := flatten(start)
	predecessors[startIdx] = startIdx
	queue := []int{startIdx}
	for len(queue) > 0 {
		currentIdx := queue[0]
		queue = queue[1:]

		current := unflatten(currentIdx)
		for _, motion := range motions {
			next := current.Add(motion)
			if !inBound(next) || impassable[next.Row][next.Col] {
				continue
			}
			nextIdx := flatten(next)
			if predecessors[nextIdx] != unset {
				continue
			}
			predecessors[nextIdx] = currentIdx
			queue = append(queue, nextIdx)
		}
	}

	// Backtrack from goal to start, translating each hop into its action.
	var actions []int
	for idx := flatten(goal); idx != startIdx; idx = predecessors[idx] {
		if predecessors[idx] == unset {
			return nil, ErrUnreachableGoal
		}

		prev := unflatten(predecessors[idx])
		displacement := maze.Position{Row: unflatten(idx).Row - prev.Row, Col: unflatten(idx).Col - prev.Col}

		action := unset
		for i, motion := range motions {
			if motion.Equal(displacement) {
				action = i
				break
			}
		}
		if action == unset {
			return nil, ErrMotionMismatch
		}
		actions = append(actions, action)
	}

	reverse(actions)
	return actions, nil
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
