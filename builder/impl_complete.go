// SPDX-License-Identifier: MIT
// Package: Easy-Graph/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits each unordered pair {i,j}, i<j, exactly once in lexicographic order.
//
// Complexity: O(n²) time, O(n) extra space.

package builder

import (
	"fmt"

	"github.com/tddschn/Easy-Graph/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := cfg.addVertices(g, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = cfg.addEdge(g, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
