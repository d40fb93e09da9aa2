// SPDX-License-Identifier: MIT
// Package: Easy-Graph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn      = DefaultIDFn          ("0","1","2",...)
//   - rng       = nil                  (pure unless seeded)
//   - weightFn  = DefaultWeightFn      (constant DefaultEdgeWeight)
//   - weightKey = DefaultWeightKey     ("weight")
//   - scope     = ""                   (set by Scoped)

package builder

import (
	"fmt"
	"math/rand"

	"github.com/tddschn/Easy-Graph/core"
)

// DefaultWeightKey is the edge attribute key weights are written under.
const DefaultWeightKey = "weight"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value, so Scoped can narrow it without leaking.
type builderConfig struct {
	idFn      IDFn
	rng       *rand.Rand
	weightFn  WeightFn
	weightKey string
	scope     string
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      DefaultIDFn,
		weightFn:  DefaultWeightFn,
		weightKey: DefaultWeightKey,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// label returns the scoped label of vertex idx.
func (c builderConfig) label(idx int) string {
	return c.scope + c.idFn(idx)
}

// addVertices inserts label(0..n-1) and returns the labels in index order.
func (c builderConfig) addVertices(g *core.Graph, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = c.label(i)
		if _, err := g.AddNode(ids[i], nil); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addEdge draws the next weight and inserts u-v carrying it.
func (c builderConfig) addEdge(g *core.Graph, method, u, v string) error {
	w := c.weightFn(c.rng)
	if _, err := g.AddEdge(u, v, core.Attrs{c.weightKey: w}); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
