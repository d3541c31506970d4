package maze

import "math/rand"

// GenerateDense produces a maze by repeatedly seeding walls on the even
// lattice and growing them with short random passes, tuned by complexity
// (length of each pass) and density (number of seeds), both in [0, 1] and
// scaled to the grid size.
//
// Unlike GenerateWilson this does not guarantee a perfect maze: the floor
// cells may contain cycles and carry no spanning-tree property. The returned
// grid includes the outer wall border.
func GenerateDense(height, width int, complexity, density float64, rng *rand.Rand) (Grid, error) {
	if height%2 == 0 || width%2 == 0 {
		return nil, ErrEvenDimension
	}
	if complexity < 0 || complexity > 1 || density < 0 || density > 1 {
		return nil, ErrBadTuning
	}

	rows := (height/2)*2 + 1
	cols := (width/2)*2 + 1

	// Scale tuning parameters relative to the maze size.
	passLength := int(complexity * float64(5*(rows+cols)))
	seedCount := int(density * float64((rows/2)*(cols/2)))

	grid := make(Grid, rows)
	for i := range grid {
		grid[i] = make([]int8, cols)
	}
	for col := 0; col < cols; col++ {
		grid[0][col] = Wall
		grid[rows-1][col] = Wall
	}
	for row := 0; row < rows; row++ {
		grid[row][0] = Wall
		grid[row][cols-1] = Wall
	}

	for i := 0; i < seedCount; i++ {
		row := rng.Intn(rows/2+1) * 2
		col := rng.Intn(cols/2+1) * 2
		grid[row][col] = Wall

		for j := 0; j < passLength; j++ {
			var neighbors []Position
			if col > 1 {
				neighbors = append(neighbors, Position{Row: row, Col: col - 2})
			}
			if col < cols-2 {
				neighbors = append(neighbors, Position{Row: row, Col: col + 2})
			}
			if row > 1 {
				neighbors = append(neighbors, Position{Row: row - 2, Col: col})
			}
			if row < rows-2 {
				neighbors = append(neighbors, Position{Row: row + 2, Col: col})
			}
			if len(neighbors) == 0 {
				continue
			}

			next := neighbors[rng.Intn(len(neighbors))]
			if grid[next.Row][next.Col] == Floor {
				grid[next.Row][next.Col] = Wall
				grid[next.Row+(row-next.Row)/2][next.Col+(col-next.Col)/2] = Wall
				row, col = next.Row, next.Col
			}
		}
	}

	return grid, nil
}
