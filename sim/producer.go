package sim

import (
	"math/rand"

	"github.com/beka-birhanu/maze-world-api/maze"
)

const minDimension = 5 // smallest framed maze with a real interior

// MazeProducer supplies a maze layout together with the agent start and
// target positions. The simulator is agnostic to the source as long as the
// shape matches its configuration.
type MazeProducer interface {
	Produce(rng *rand.Rand) (maze.Grid, maze.Position, maze.Position, error)
}

// WilsonProducer generates perfect mazes with Wilson's algorithm and frames
// them with the outer wall border. The agent starts at the top-left interior
// cell and the target sits at the bottom-right interior cell.
type WilsonProducer struct {
	width  int
	height int
}

// NewWilsonProducer validates the framed maze dimensions. Both must be odd
// so the interior forms a proper lattice.
func NewWilsonProducer(width, height int) (*WilsonProducer, error) {
	if width%2 == 0 || height%2 == 0 {
		return nil, maze.ErrEvenDimension
	}
	if min(width, height) < minDimension {
		return nil, ErrNotBigEnoughDimension
	}
	return &WilsonProducer{width: width, height: height}, nil
}

func (p *WilsonProducer) Produce(rng *rand.Rand) (maze.Grid, maze.Position, maze.Position, error) {
	grid := maze.Frame(maze.GenerateWilson(p.height-2, p.width-2, rng))
	start := maze.Position{Row: 1, Col: 1}
	target := maze.Position{Row: grid.Height() - 2, Col: grid.Width() - 2}
	return grid, start, target, nil
}

// DenseProducer generates mazes with the legacy density-based algorithm.
// The layouts are not guaranteed to be perfect mazes; with high density some
// may not even connect start and target.
type DenseProducer struct {
	width      int
	height     int
	complexity float64
	density    float64
}

// NewDenseProducer validates dimensions and tuning parameters.
func NewDenseProducer(width, height int, complexity, density float64) (*DenseProducer, error) {
	if width%2 == 0 || height%2 == 0 {
		return nil, maze.ErrEvenDimension
	}
	if min(width, height) < minDimension {
		return nil, ErrNotBigEnoughDimension
	}
	if complexity < 0 || complexity > 1 || density < 0 || density > 1 {
		return nil, maze.ErrBadTuning
	}
	return &DenseProducer{width: width, height: height, complexity: complexity, density: density}, nil
}

func (p *DenseProducer) Produce(rng *rand.Rand) (maze.Grid, maze.Position, maze.Position, error) {
	grid, err := maze.GenerateDense(p.height, p.width, p.complexity, p.density, rng)
	if err != nil {
		return nil, maze.Position{}, maze.Position{}, err
	}
	start := maze.Position{Row: 1, Col: 1}
	target := maze.Position{Row: grid.Height() - 2, Col: grid.Width() - 2}
	return grid, start, target, nil
}

// StaticProducer replays a fixed hand-authored layout on every reset.
type StaticProducer struct {
	grid   maze.Grid
	start  maze.Position
	target maze.Position
}

// NewStaticProducer validates that both endpoints land on floor cells.
func NewStaticProducer(grid maze.Grid, start, target maze.Position) (*StaticProducer, error) {
	if grid.IsWall(start) || grid.IsWall(target) {
		return nil, ErrBlockedEndpoint
	}
	return &StaticProducer{grid: grid.Clone(), start: start, target: target}, nil
}

func (p *StaticProducer) Produce(_ *rand.Rand) (maze.Grid, maze.Position, maze.Position, error) {
	return p.grid.Clone(), p.start, p.target, nil
}
