package maze

import "math/rand"

// GenerateWilson produces a perfect maze using Wilson's loop-erased random
// walk algorithm. The passable cells form a spanning tree over the lattice
// nodes (cells with even row and column), so exactly one simple path exists
// between any two floor cells.
//
// height and width are interior dimensions, excluding any border the caller
// adds separately with Frame. Each is rounded to odd by 2*(n/2)+1, so even
// values round up and the lattice stays aligned. The walk draws from rng
// only, making generation fully reproducible per seed.
func GenerateWilson(height, width int, rng *rand.Rand) Grid {
	height = 2*(height/2) + 1
	width = 2*(width/2) + 1

	grid := NewGrid(height, width)

	latticeRows := (height + 1) / 2
	latticeCols := (width + 1) / 2
	totalNodes := latticeRows * latticeCols

	visited := make(map[Position]struct{}, totalNodes)

	randomUnvisitedNode := func() Position {
		for {
			pos := Position{Row: 2 * rng.Intn(latticeRows), Col: 2 * rng.Intn(latticeCols)}
			if _, included := visited[pos]; !included {
				return pos
			}
		}
	}

	inLattice := func(p Position) bool {
		return p.Row >= 0 && p.Row < height && p.Col >= 0 && p.Col < width
	}

	// Seed the tree with one arbitrary node.
	first := randomUnvisitedNode()
	visited[first] = struct{}{}
	grid[first.Row][first.Col] = Floor

	for len(visited) < totalNodes {
		start := randomUnvisitedNode()

		// Random walk until a visited node is reached. Recording only the
		// last direction taken out of each node erases every loop the walk
		// closes: revisiting a node overwrites its entry, discarding the
		// detour.
		path := make(map[Position]int)
		current := start
		for {
			dirNum := rng.Intn(len(Directions))
			for !inLattice(current.Add(stride(dirNum))) {
				dirNum = rng.Intn(len(Directions))
			}
			path[current] = dirNum

			current = current.Add(stride(dirNum))
			if _, included := visited[current]; included {
				break
			}
		}

		// Replay the loop-erased path, carving each node and the wall cell
		// crossed on the way to its successor.
		current = start
		for {
			visited[current] = struct{}{}
			grid[current.Row][current.Col] = Floor

			dir := Directions[path[current]]
			crossed := current.Add(dir)
			grid[crossed.Row][crossed.Col] = Floor

			current = crossed.Add(dir)
			if _, included := visited[current]; included {
				break
			}
		}
	}

	return grid
}

// stride is the two-cell displacement that moves between lattice nodes.
func stride(dirNum int) Position {
	dir := Directions[dirNum]
	return Position{Row: 2 * dir.Row, Col: 2 * dir.Col}
}
