// SPDX-License-Identifier: MIT
// Package: Easy-Graph/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model: Erdős–Rényi G(n, p). Each unordered pair {i,j}, i<j, is included
// independently with probability p. The result is often disconnected, which
// makes it the natural fixture for spanning forests.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Trial order is i asc, then j asc; the weight is drawn right after a
//     successful trial, so outcomes are stable for a fixed seed.
//
// Complexity: O(n²) trials, O(n) extra space.

package builder

import (
	"fmt"

	"github.com/tddschn/Easy-Graph/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := cfg.addVertices(g, methodRandomSparse, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				// p ∈ {0,1} needs no draw
				switch {
				case p == probMin:
					continue
				case p < probMax && cfg.rng.Float64() >= p:
					continue
				}
				if err = cfg.addEdge(g, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
