// SPDX-License-Identifier: MIT

// Package grid - storage (row-major) & constructors.
//
// Purpose:
//   - Own a contiguous row-major buffer with the explicit index formula i*cols + j.
//   - Keep size == rows*cols == len(data) as the single structural invariant.
//   - Validate shapes before allocation so that no constructor or Resize can
//     leave a half-built Grid behind.
//
// Complexity quicksheet:
//   - New/NewSquare/FromRows: O(r*c) zero-init or copy; Rows/Cols/Size/Shape: O(1); Clone: O(r*c).

package grid

import "fmt"

// MaxSize bounds rows*cols for a single Grid. Requests beyond it fail with
// ErrTooLarge instead of reaching the allocator.
const MaxSize = 1 << 30

// Grid is a resizable row-major matrix of int values.
//   - rows, cols hold the shape (>= 0).
//   - size is rows*cols, cached and kept in lockstep with the shape.
//   - data is the exclusively owned flat buffer, len(data) == size.
type Grid struct {
	rows, cols int   // shape
	size       int   // rows*cols
	data       []int // row-major storage, offset = i*cols + j
}

var _ fmt.Stringer = (*Grid)(nil)

// checkedSize validates (rows, cols) and returns rows*cols.
// Implementation:
//   - Stage 1: reject negative dimensions (ErrInvalidDimensions).
//   - Stage 2: reject products that overflow or exceed MaxSize (ErrTooLarge).
//
// Complexity: O(1).
func checkedSize(rows, cols int) (int, error) {
	if rows < 0 || cols < 0 {
		return 0, ErrInvalidDimensions
	}
	if rows != 0 && cols > MaxSize/rows {
		return 0, ErrTooLarge
	}

	return rows * cols, nil
}

// New creates a rows×cols Grid with every element set to 0.
// MAIN DESCRIPTION:
//   - Public constructor with strict sign and size validation.
//
// Implementation:
//   - Stage 1: validate shape via checkedSize.
//   - Stage 2: allocate the flat buffer; make() zero-fills it.
//
// Behavior highlights:
//   - Zero rows or zero cols is legal and yields an empty Grid (Size()==0).
//   - No panics on user errors; sentinel errors are wrapped with the shape.
//
// Errors:
//   - ErrInvalidDimensions for negative rows/cols.
//   - ErrTooLarge when rows*cols overflows or exceeds MaxSize.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int) (*Grid, error) {
	n, err := checkedSize(rows, cols)
	if err != nil {
		return nil, gridErrorf(ctxNew, rows, cols, err)
	}

	return &Grid{
		rows: rows,
		cols: cols,
		size: n,
		data: make([]int, n),
	}, nil
}

// NewSquare creates an n×n zero Grid.
func NewSquare(n int) (*Grid, error) {
	return New(n, n)
}

// FromRows builds a Grid by copying a rectangular [][]int literal.
// The input is deep-copied; later changes to values do not affect the Grid.
// Returns ErrEmptyInput if values has no rows and ErrNonRectangular if any
// row length differs from the first. A single empty row yields a 1×0 Grid.
// Complexity: O(r*c) time and memory.
func FromRows(values [][]int) (*Grid, error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(h, w)
	if err != nil {
		return nil, err
	}
	for i, row := range values {
		copy(g.data[i*w:(i+1)*w], row)
	}

	return g, nil
}

// Rows returns the row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column count.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows*cols, the length of the backing buffer.
func (g *Grid) Size() int { return g.size }

// Shape packs Rows() and Cols() into a single call.
func (g *Grid) Shape() (rows, cols int) { return g.rows, g.cols }

// IsSquare reports whether rows == cols. An empty 0×0 Grid is square.
func (g *Grid) IsSquare() bool { return g.rows == g.cols }

// Clone returns a deep copy with its own buffer.
// Complexity: O(r*c).
func (g *Grid) Clone() *Grid {
	cp := make([]int, len(g.data))
	copy(cp, g.data)

	return &Grid{rows: g.rows, cols: g.cols, size: g.size, data: cp}
}

// Values returns a copy of the buffer in row-major order.
func (g *Grid) Values() []int {
	out := make([]int, len(g.data))
	copy(out, g.data)

	return out
}
