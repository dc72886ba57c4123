// SPDX-License-Identifier: MIT

// Package grid - element-wise bulk operations and search.
//
// All loops walk the flat buffer in storage (row-major) order. Do and Apply
// expose coordinates to the callback; Initialize, Increment and Find do not
// need them and run over the slice directly.

package grid

// Initialize sets every element to 0. Idempotent.
// Complexity: O(r*c).
func (g *Grid) Initialize() {
	clear(g.data)
}

// Increment adds 1 to every element in place.
// Complexity: O(r*c).
func (g *Grid) Increment() {
	for k := range g.data {
		g.data[k]++
	}
}

// Fill sets every element to v.
func (g *Grid) Fill(v int) {
	for k := range g.data {
		g.data[k] = v
	}
}

// Find reports whether any element equals v.
// The scan stops at the first match in flat storage order.
// Complexity: O(r*c) worst case.
func (g *Grid) Find(v int) bool {
	_, _, ok := g.Index(v)

	return ok
}

// Index returns the coordinates of the first element equal to v in
// row-major order, or ok=false when no element matches.
// Complexity: O(r*c) worst case.
func (g *Grid) Index(v int) (row, col int, ok bool) {
	for k, x := range g.data {
		if x == v {
			return k / g.cols, k % g.cols, true
		}
	}

	return 0, 0, false
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: O(r*c), no allocations.
func (g *Grid) Do(f func(i, j, v int) bool) {
	var i, j, base int
	for i = 0; i < g.rows; i++ {
		base = i * g.cols
		for j = 0; j < g.cols; j++ {
			if !f(i, j, g.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, in row-major order.
// Complexity: O(r*c).
func (g *Grid) Apply(f func(i, j, v int) int) {
	var i, j, base int
	for i = 0; i < g.rows; i++ {
		base = i * g.cols
		for j = 0; j < g.cols; j++ {
			g.data[base+j] = f(i, j, g.data[base+j])
		}
	}
}
