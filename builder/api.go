// SPDX-License-Identifier: MIT
// Package: Easy-Graph/builder
//
// api.go - public entry point and constructor type.
//
// Contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Determinism: same inputs/options/seed and constructor order give identical graphs.
//   - Constructors return wrapped sentinel errors; they never panic.

package builder

import (
	"fmt"

	"github.com/tddschn/Easy-Graph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partial graph is discarded.
//
// Complexity: O(len(bopts)) plus the sum of the constructors' costs.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Scoped runs con with every vertex label prefixed by scope + "/". Two
// constructors under different scopes never share a vertex, so composing
// them yields one connected component each.
//
//	g, _ := BuildGraph(nil, opts, Scoped("east", Path(4)), Scoped("west", Cycle(5)))
func Scoped(scope string, con Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if con == nil {
			return fmt.Errorf("Scoped(%s): nil constructor: %w", scope, ErrConstructFailed)
		}
		cfg.scope = cfg.scope + scope + "/"

		return con(g, cfg)
	}
}
