package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDense(t *testing.T) {
	t.Run("rejects even dimensions", func(t *testing.T) {
		_, err := GenerateDense(10, 11, 0.75, 0.75, rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrEvenDimension)

		_, err = GenerateDense(11, 10, 0.75, 0.75, rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrEvenDimension)
	})

	t.Run("rejects tuning outside unit interval", func(t *testing.T) {
		_, err := GenerateDense(11, 11, 1.5, 0.75, rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrBadTuning)

		_, err = GenerateDense(11, 11, 0.75, -0.1, rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrBadTuning)
	})

	t.Run("shape and border", func(t *testing.T) {
		grid, err := GenerateDense(11, 15, 0.75, 0.75, rand.New(rand.NewSource(5)))
		require.NoError(t, err)
		require.Equal(t, 11, grid.Height())
		require.Equal(t, 15, grid.Width())

		for col := 0; col < grid.Width(); col++ {
			assert.Equal(t, Wall, grid[0][col])
			assert.Equal(t, Wall, grid[grid.Height()-1][col])
		}
		for row := 0; row < grid.Height(); row++ {
			assert.Equal(t, Wall, grid[row][0])
			assert.Equal(t, Wall, grid[row][grid.Width()-1])
		}
	})

	t.Run("corner cells stay clear", func(t *testing.T) {
		// Walls grow only on the even lattice, so the odd-indexed start and
		// target corners are always passable.
		for seed := int64(0); seed < 10; seed++ {
			grid, err := GenerateDense(11, 11, 0.75, 0.75, rand.New(rand.NewSource(seed)))
			require.NoError(t, err)
			assert.Equal(t, Floor, grid[1][1], "seed %d", seed)
			assert.Equal(t, Floor, grid[grid.Height()-2][grid.Width()-2], "seed %d", seed)
		}
	})

	t.Run("deterministic per seed", func(t *testing.T) {
		first, err := GenerateDense(21, 21, 0.5, 0.5, rand.New(rand.NewSource(9)))
		require.NoError(t, err)
		second, err := GenerateDense(21, 21, 0.5, 0.5, rand.New(rand.NewSource(9)))
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
