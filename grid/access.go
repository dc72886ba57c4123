// SPDX-License-Identifier: MIT

package grid

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Implementation:
//   - Stage 1: validate 0 ≤ row < g.rows and 0 ≤ col < g.cols.
//   - Stage 2: compute row*g.cols + col.
//
// Callers wrap the sentinel with their own method tag and coordinates.
// Complexity: O(1).
func (g *Grid) indexOf(row, col int) (int, error) {
	if row < 0 || row >= g.rows {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= g.cols {
		return 0, ErrOutOfRange
	}

	return row*g.cols + col, nil
}

// Get returns a mutable handle to the element at (row, col).
// It is a checked accessor that allows both read and write through one call:
//
//	p, err := g.Get(4, 3)
//	if err == nil {
//		*p = 4
//	}
//
// Behavior highlights:
//   - Never panics on out-of-range; returns a wrapped ErrOutOfRange and a nil handle.
//   - The handle points into the current buffer. Resize replaces that buffer,
//     so a handle obtained before Resize no longer refers to the Grid.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Grid) Get(row, col int) (*int, error) {
	off, err := g.indexOf(row, col)
	if err != nil {
		return nil, gridErrorf(ctxGet, row, col, err)
	}

	return &g.data[off], nil
}

// At returns the value at (row, col) or a wrapped ErrOutOfRange.
// Complexity: O(1).
func (g *Grid) At(row, col int) (int, error) {
	off, err := g.indexOf(row, col)
	if err != nil {
		return 0, gridErrorf(ctxAt, row, col, err)
	}

	return g.data[off], nil
}

// Set stores v at (row, col) or returns a wrapped ErrOutOfRange.
// Complexity: O(1).
func (g *Grid) Set(row, col, v int) error {
	off, err := g.indexOf(row, col)
	if err != nil {
		return gridErrorf(ctxSet, row, col, err)
	}
	g.data[off] = v

	return nil
}
