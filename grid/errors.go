// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Public methods return these sentinels, wrapped with method context via
// gridErrorf where coordinates matter. Tests match them with errors.Is.

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when rows or cols is negative.
	ErrInvalidDimensions = errors.New("grid: dimensions must be >= 0")

	// ErrTooLarge is returned when rows*cols overflows int or exceeds MaxSize.
	// It is detected before any allocation, so no state is touched.
	ErrTooLarge = errors.New("grid: requested size too large")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Get/At/Set MUST return this, not panic.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrEmptyInput indicates FromRows received no rows.
	ErrEmptyInput = errors.New("grid: input must have at least one row")

	// ErrNonRectangular indicates FromRows received rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrNilGrid indicates that a nil *Grid was used.
	ErrNilGrid = errors.New("grid: nil grid")
)

// Method tags used in error wrappers.
const (
	ctxGet    = "Get"
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxNew    = "New"
	ctxResize = "Resize"
)

// gridErrorf wraps err with a uniform "Grid.<method>(a,b): " prefix.
// The sentinel survives via %w.
func gridErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, a, b, err)
}
