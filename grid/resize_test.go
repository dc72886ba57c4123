package grid_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intgrid/grid"
)

// TestResizeShrinkKeepsOffset reproduces the 10×5 → 5×5 case: offset 7 survives.
func TestResizeShrinkKeepsOffset(t *testing.T) {
	g := mustGrid(t, 10, 5)
	require.NoError(t, g.Set(1, 2, 1)) // flat offset 7

	require.NoError(t, g.Resize(5, 5))
	require.Equal(t, 25, g.Size())
	require.True(t, g.IsSquare())

	v, err := g.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.Equal(t, 1, g.Values()[7])
}

// TestResizeGrowZeroFillsTail verifies offsets >= oldSize are zero.
func TestResizeGrowZeroFillsTail(t *testing.T) {
	g := mustGrid(t, 2, 3)
	g.Fill(5)

	require.NoError(t, g.Resize(4, 4))
	vals := g.Values()
	require.Len(t, vals, 16)
	for k := 0; k < 6; k++ {
		require.Equal(t, 5, vals[k], "offset %d", k)
	}
	for k := 6; k < 16; k++ {
		require.Zero(t, vals[k], "offset %d", k)
	}
}

// TestResizeCopiesByFlatOffset checks that a column change shifts values
// across rows instead of remapping coordinates.
func TestResizeCopiesByFlatOffset(t *testing.T) {
	g, err := grid.FromRows([][]int{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)

	require.NoError(t, g.Resize(3, 2))
	want := "12\n34\n56\n"
	if diff := cmp.Diff(want, g.String()); diff != "" {
		t.Errorf("String() after Resize mismatch (-want +got):\n%s", diff)
	}

	v, err := g.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3, v) // old (0,2), not old (1,0)
}

// TestResizeFailureLeavesGridUntouched verifies the all-or-nothing swap.
func TestResizeFailureLeavesGridUntouched(t *testing.T) {
	g := mustGrid(t, 2, 2)
	g.Increment()
	before := g.Values()

	err := g.Resize(-1, 4)
	require.ErrorIs(t, err, grid.ErrInvalidDimensions)

	err = g.Resize(grid.MaxSize, grid.MaxSize)
	require.ErrorIs(t, err, grid.ErrTooLarge)

	rows, cols := g.Shape()
	require.Equal(t, 2, rows)
	require.Equal(t, 2, cols)
	require.Equal(t, 4, g.Size())
	require.Equal(t, before, g.Values())
}

// TestResizeToEmptyAndBack verifies zero-sized intermediate shapes.
func TestResizeToEmptyAndBack(t *testing.T) {
	g := mustGrid(t, 3, 3)
	g.Fill(2)

	require.NoError(t, g.Resize(0, 3))
	require.Zero(t, g.Size())
	require.False(t, g.Find(2))

	require.NoError(t, g.Resize(2, 2))
	require.Equal(t, []int{0, 0, 0, 0}, g.Values())
}

// TestResizeInvalidatesHandle documents that Get handles do not follow a Resize.
func TestResizeInvalidatesHandle(t *testing.T) {
	g := mustGrid(t, 2, 2)
	p, err := g.Get(0, 0)
	require.NoError(t, err)

	require.NoError(t, g.Resize(2, 2))
	*p = 42
	require.False(t, g.Find(42))
}

// TestResizeSameShapeKeepsData verifies a same-shape Resize preserves every element.
func TestResizeSameShapeKeepsData(t *testing.T) {
	g := mustGrid(t, 3, 4)
	g.Apply(func(i, j, _ int) int { return i*4 + j + 1 })
	before := g.Values()

	require.NoError(t, g.Resize(3, 4))
	rows, cols := g.Shape()
	require.Equal(t, 3, rows)
	require.Equal(t, 4, cols)
	if diff := cmp.Diff(before, g.Values()); diff != "" {
		t.Errorf("Values() after same-shape Resize mismatch (-want +got):\n%s", diff)
	}
}

// TestIsSquareAcrossResizes keeps IsSquare consistent with the current shape.
func TestIsSquareAcrossResizes(t *testing.T) {
	g := mustGrid(t, 10, 5)
	require.False(t, g.IsSquare())
	require.NoError(t, g.Resize(5, 5))
	require.True(t, g.IsSquare())
	require.NoError(t, g.Resize(5, 6))
	require.False(t, g.IsSquare())
}

// TestScenario runs the construct → increment → resize → find sequence end to end.
func TestScenario(t *testing.T) {
	g := mustGrid(t, 10, 5)
	v, err := g.At(1, 2)
	require.NoError(t, err)
	require.Zero(t, v)

	g.Increment()
	for _, x := range g.Values() {
		require.Equal(t, 1, x)
	}

	require.NoError(t, g.Resize(5, 5))
	v, err = g.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	require.False(t, g.Find(4))
	p, err := g.Get(4, 3)
	require.NoError(t, err)
	*p = 4
	v, err = g.At(4, 3)
	require.NoError(t, err)
	require.Equal(t, 4, v)
	require.True(t, g.Find(4))
	require.Equal(t, 4, g.Values()[23])
}
