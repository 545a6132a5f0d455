// SPDX-License-Identifier: MIT
// Package: mwis/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Model: 2D orthogonal grid with 4-neighborhood; cell (r,c) is vertex
// f + r*cols + c (row-major). Edges go to the right and bottom neighbors.

package builder

import "github.com/katalvlaran/mwis/graph"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid adds a rows×cols grid (rows, cols ≥ 1).
// Complexity: O(rows*cols).
func Grid(rows, cols int) Constructor {
	return func(b *graph.Builder, cfg builderConfig) error {
		if rows < minGridDim {
			return tooFew(methodGrid, "rows", rows, minGridDim)
		}
		if cols < minGridDim {
			return tooFew(methodGrid, "cols", cols, minGridDim)
		}
		f := addVertices(b, cfg, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := f + r*cols + c
				if c+1 < cols {
					b.AddEdge(v, v+1)
				}
				if r+1 < rows {
					b.AddEdge(v, v+cols)
				}
			}
		}
		return nil
	}
}
