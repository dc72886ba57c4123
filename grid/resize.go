// SPDX-License-Identifier: MIT

package grid

// Resize changes the shape to rows×cols, keeping existing data by flat offset.
// MAIN DESCRIPTION:
//   - Reallocate the buffer and copy element-for-element in storage order.
//
// Implementation:
//   - Stage 1: validate the new shape via checkedSize; on error return before
//     touching any state.
//   - Stage 2: allocate the new buffer (zero-filled by make).
//   - Stage 3: copy the first min(oldSize, newSize) elements.
//   - Stage 4: swap data, rows, cols and size together.
//
// Behavior highlights:
//   - The copy is NOT coordinate-aware. Old offset k maps to new offset k, so
//     when cols changes, values move across row boundaries.
//   - Offsets >= oldSize in the new buffer are 0.
//   - Resizing to the current shape still reallocates; handles from Get
//     are invalidated in every case.
//
// Errors:
//   - ErrInvalidDimensions, ErrTooLarge (Grid unchanged).
//
// Complexity:
//   - Time O(max(oldSize, newSize)), Space O(newSize).
func (g *Grid) Resize(rows, cols int) error {
	n, err := checkedSize(rows, cols)
	if err != nil {
		return gridErrorf(ctxResize, rows, cols, err)
	}

	next := make([]int, n)
	copy(next, g.data) // copies min(len(next), len(g.data))

	g.data = next
	g.rows, g.cols, g.size = rows, cols, n

	return nil
}
