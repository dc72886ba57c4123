// SPDX-License-Identifier: MIT

// Package grid provides Grid, a resizable two-dimensional integer array
// backed by a single contiguous row-major buffer.
//
// What:
//
//   - Grid owns a flat []int of rows*cols elements; element (i,j) lives at
//     flat offset i*cols + j.
//   - Construction zero-fills the buffer; Initialize resets it to zero.
//   - Get returns a checked, mutable handle (*int) into the buffer; At/Set
//     are the explicit read/write pair.
//   - Increment, Apply and Do are element-wise bulk operations in storage order.
//   - Find and Index perform a linear membership search.
//   - Resize reallocates and copies by FLAT OFFSET, not by coordinate.
//
// Resize semantics:
//
//	Resize(newRows, newCols) copies the first min(oldSize, newSize) elements
//	of the old buffer into the new one, position for position, and zero-fills
//	every offset ≥ oldSize. When the column count changes, values therefore
//	shift across row boundaries:
//
//	    2×3            Resize(3,2)
//	    1 2 3    →     1 2
//	    4 5 6          3 4
//	                   5 6
//
//	The new buffer is fully populated before rows, cols and size change, so a
//	failing Resize leaves the Grid exactly as it was.
//
// Errors:
//
//   - ErrInvalidDimensions: negative rows or cols (zero is a legal, empty grid).
//   - ErrTooLarge: rows*cols overflows or exceeds MaxSize.
//   - ErrOutOfRange: index outside [0,rows)×[0,cols).
//   - ErrEmptyInput, ErrNonRectangular: FromRows validation.
//
// Complexity:
//
//   - New, Initialize, Increment, Find, Print: O(rows*cols).
//   - Get, At, Set, IsSquare, Shape: O(1).
//   - Resize: O(max(oldSize, newSize)).
//
// Concurrency:
//
//	Grid carries no synchronization. Use one Grid from one goroutine at a
//	time, or guard it externally.
package grid
