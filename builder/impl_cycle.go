// SPDX-License-Identifier: MIT
// Package: Easy-Graph/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits i-(i+1) mod n for i=0..n-1, closing edge last.
//
// Complexity: O(n) time, O(n) extra space.

package builder

import (
	"fmt"

	"github.com/tddschn/Easy-Graph/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := cfg.addVertices(g, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = cfg.addEdge(g, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
