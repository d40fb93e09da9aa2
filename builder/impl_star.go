// SPDX-License-Identifier: MIT
// Package: Easy-Graph/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub is label(0); leaves label(1..n-1) are joined to it in order.
//
// Complexity: O(n) time, O(n) extra space.

package builder

import (
	"fmt"

	"github.com/tddschn/Easy-Graph/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		ids, err := cfg.addVertices(g, methodStar, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = cfg.addEdge(g, methodStar, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
