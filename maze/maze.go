/*
Package maze provides tools for creating and inspecting rectangular grid mazes.

A maze is a flat Grid of Floor and Wall cells. The package includes a perfect-maze
generator based on Wilson's loop-erased random walk algorithm, a legacy
density-based generator, border framing, and ASCII visualization of the grid.
*/
package maze

import (
	"errors"
	"strings"
)

var (
	// ErrEvenDimension signals a maze dimension that cannot form an odd lattice.
	ErrEvenDimension = errors.New("maze width and height must be odd")
	// ErrBadTuning signals a complexity or density parameter outside [0, 1].
	ErrBadTuning = errors.New("complexity and density must be within [0, 1]")
)

// Grid is a rectangular array of cells indexed as grid[row][col].
type Grid [][]int8

// NewGrid creates a height-by-width grid with every cell set to Wall.
func NewGrid(height, width int) Grid {
	grid := make(Grid, height)
	for i := range grid {
		grid[i] = make([]int8, width)
		for j := range grid[i] {
			grid[i][j] = Wall
		}
	}
	return grid
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// Width returns the number of columns.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// InBound reports whether the cell address is inside the grid.
func (g Grid) InBound(row, col int) bool {
	return row >= 0 && row < g.Height() && col >= 0 && col < g.Width()
}

// IsWall reports whether the cell at p is impassable. Out-of-bound
// positions count as walls.
func (g Grid) IsWall(p Position) bool {
	if !g.InBound(p.Row, p.Col) {
		return true
	}
	return g[p.Row][p.Col] == Wall
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	cloned := make(Grid, len(g))
	for i := range g {
		cloned[i] = make([]int8, len(g[i]))
		copy(cloned[i], g[i])
	}
	return cloned
}

// Impassable projects the grid to a boolean array with true for walls.
// Overlay markers count as passable.
func (g Grid) Impassable() [][]bool {
	blocked := make([][]bool, len(g))
	for i := range g {
		blocked[i] = make([]bool, len(g[i]))
		for j := range g[i] {
			blocked[i][j] = g[i][j] == Wall
		}
	}
	return blocked
}

// Frame surrounds the grid with a one-cell Wall border.
func Frame(g Grid) Grid {
	framed := NewGrid(g.Height()+2, g.Width()+2)
	for i := range g {
		copy(framed[i+1][1:], g[i])
	}
	return framed
}

// String provides a textual representation of the grid, two characters
// per cell.
func (g Grid) String() string {
	var output strings.Builder
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			switch g[row][col] {
			case Wall:
				output.WriteString("##")
			case Agent:
				output.WriteString("A ")
			case Target:
				output.WriteString("T ")
			case AgentOnTarget:
				output.WriteString("AT")
			default:
				output.WriteString("  ")
			}
		}
		output.WriteString("\n")
	}
	return output.String()
}
