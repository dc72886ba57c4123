package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intgrid/grid"
)

// TestGetHandleWritesThrough verifies the handle from Get aliases the buffer.
func TestGetHandleWritesThrough(t *testing.T) {
	g := mustGrid(t, 5, 5)

	p, err := g.Get(4, 3)
	require.NoError(t, err)
	require.Zero(t, *p)

	*p = 4
	v, err := g.At(4, 3)
	require.NoError(t, err)
	require.Equal(t, 4, v)
	require.Equal(t, 4, g.Values()[4*5+3])
}

// TestSetAt validates Set followed by At on valid indices.
func TestSetAt(t *testing.T) {
	g := mustGrid(t, 2, 3)
	require.NoError(t, g.Set(1, 2, 7))

	v, err := g.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7, v)

	p, err := g.Get(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7, *p)
}

// TestRowMajorOffsets checks that (i,j) maps to flat offset i*cols+j.
func TestRowMajorOffsets(t *testing.T) {
	g := mustGrid(t, 3, 4)
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			require.NoError(t, g.Set(i, j, i*4+j))
		}
	}
	vals := g.Values()
	for k, v := range vals {
		require.Equal(t, k, v)
	}
}

// TestOutOfRange ensures every accessor returns ErrOutOfRange instead of panicking.
func TestOutOfRange(t *testing.T) {
	g := mustGrid(t, 2, 2)
	bad := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {5, 5}}
	for _, ij := range bad {
		p, err := g.Get(ij[0], ij[1])
		require.ErrorIs(t, err, grid.ErrOutOfRange)
		require.Nil(t, p)

		_, err = g.At(ij[0], ij[1])
		require.ErrorIs(t, err, grid.ErrOutOfRange)

		err = g.Set(ij[0], ij[1], 1)
		require.ErrorIs(t, err, grid.ErrOutOfRange)
	}

	// (0,2) would be flat offset 2, a valid slot; the column check must still reject it.
	require.Equal(t, []int{0, 0, 0, 0}, g.Values())
}

// TestErrorContext checks the method tag and coordinates in wrapped errors.
func TestErrorContext(t *testing.T) {
	g := mustGrid(t, 1, 1)
	_, err := g.Get(3, 4)
	require.EqualError(t, err, "Grid.Get(3,4): grid: index out of range")
}
