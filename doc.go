// Package intgrid is a small, dependency-light home for Grid, a resizable
// two-dimensional integer array stored in one contiguous row-major buffer.
//
// Layout:
//
//	grid/          — Grid: construction, checked access, bulk ops, search, resize, rendering
//	grid/gridmat/  — conversion to and from gonum mat.Dense
//	cmd/gridcheck/ — demonstration harness printing Pass/Fail per check
//
// Quick example:
//
//	g, _ := grid.New(10, 5)
//	g.Increment()
//	_ = g.Resize(5, 5) // data kept by flat offset
//	p, _ := g.Get(4, 3)
//	*p = 4
//	fmt.Println(g.Find(4)) // true
package intgrid
