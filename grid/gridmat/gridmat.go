// SPDX-License-Identifier: MIT

// Package gridmat converts between grid.Grid and gonum's mat.Dense.
//
// A Grid holds ints and may be empty; gonum matrices hold float64 and must be
// at least 1×1. ToDense rejects empty grids, FromDense rejects values that are
// not exact integers in int range.
package gridmat

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/intgrid/grid"
)

var (
	// ErrEmptyGrid indicates a 0×N or N×0 grid, which gonum cannot represent.
	ErrEmptyGrid = errors.New("gridmat: grid has no elements")

	// ErrNotInteger indicates a matrix value that has no exact int form.
	ErrNotInteger = errors.New("gridmat: value is not an integer in int range")

	// ErrInexact indicates a grid value that float64 cannot hold exactly.
	ErrInexact = errors.New("gridmat: value not exactly representable as float64")

	// ErrNilMatrix indicates that a nil matrix argument was used.
	ErrNilMatrix = errors.New("gridmat: nil matrix")
)

// maxExact is the largest magnitude below which every integer is an exact float64.
const maxExact int64 = 1 << 53

// ToDense copies g into a new rows×cols *mat.Dense.
// Values with magnitude above 2^53 fail with ErrInexact rather than being rounded.
// Complexity: O(r*c).
func ToDense(g *grid.Grid) (*mat.Dense, error) {
	if g == nil {
		return nil, grid.ErrNilGrid
	}
	if g.Size() == 0 {
		return nil, ErrEmptyGrid
	}
	vals := g.Values()
	data := make([]float64, len(vals))
	var x int64
	for k, v := range vals {
		x = int64(v)
		if x > maxExact || x < -maxExact {
			i, j := k/g.Cols(), k%g.Cols()
			return nil, fmt.Errorf("ToDense(%d,%d): %d: %w", i, j, v, ErrInexact)
		}
		data[k] = float64(v)
	}

	return mat.NewDense(g.Rows(), g.Cols(), data), nil
}

// FromDense copies any gonum matrix into a new Grid.
// Every element must be finite, integral and within int range.
// A nil interface or a nil *mat.Dense yields ErrNilMatrix; other typed nil
// matrices are a programmer error.
// Complexity: O(r*c).
func FromDense(m mat.Matrix) (*grid.Grid, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if d, ok := m.(*mat.Dense); ok && d == nil {
		return nil, ErrNilMatrix
	}
	r, c := m.Dims()
	g, err := grid.New(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = m.At(i, j)
			if !isInt(v) {
				return nil, fmt.Errorf("FromDense(%d,%d): %v: %w", i, j, v, ErrNotInteger)
			}
			if err = g.Set(i, j, int(v)); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// isInt reports whether v converts to int without loss.
func isInt(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Trunc(v) != v {
		return false
	}

	return v >= math.MinInt && v < -math.MinInt
}
