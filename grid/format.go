// SPDX-License-Identifier: MIT

// Package grid - text rendering.
//
// Format: one line per row, the row's values concatenated with no separator,
// each line terminated by "\n". No header or footer. A row [1,0,4] renders
// as "104". An empty grid renders as rows empty lines (or nothing if rows==0).

package grid

import (
	"io"
	"strconv"
	"strings"
)

const _fmtRowClose = "\n"

// Print writes the grid rendering to w.
// Returns the first write error, if any. The Grid is not modified.
// Complexity: O(r*c).
func (g *Grid) Print(w io.Writer) error {
	_, err := io.WriteString(w, g.String())

	return err
}

// String renders the grid in the Print format.
func (g *Grid) String() string {
	var b strings.Builder
	var buf [20]byte
	var i, j, base int
	for i = 0; i < g.rows; i++ {
		base = i * g.cols
		for j = 0; j < g.cols; j++ {
			b.Write(strconv.AppendInt(buf[:0], int64(g.data[base+j]), 10))
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
