// SPDX-License-Identifier: MIT
// Package: Easy-Graph/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Vertex labels are scope + "r,c" in row-major order; cfg.idFn is not
//     used, so coordinates stay readable.
//   - For each (r,c) emits Right then Bottom where the neighbour exists.
//
// Complexity: O(rows*cols) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/tddschn/Easy-Graph/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%s%d,%d"
)

// Grid returns a Constructor that builds a rows×cols 4-neighbourhood grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		id := func(r, c int) string { return fmt.Sprintf(gridIDFmt, cfg.scope, r, c) }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if _, err := g.AddNode(id(r, c), nil); err != nil {
					return fmt.Errorf("%s: AddNode(%s): %w", methodGrid, id(r, c), err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := cfg.addEdge(g, methodGrid, id(r, c), id(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := cfg.addEdge(g, methodGrid, id(r, c), id(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
