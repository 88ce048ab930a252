// SPDX-License-Identifier: MIT
// Package: rmatrix/builder
//
// api.go - public entry point of the builder package.
//
// Contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories live in impl_*.go, one per topology.
//   - Same options, seed and constructor order give identical graphs.
//   - Constructors never panic; they return wrapped sentinels.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rmatrix/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate their parameters before touching g
// and wrap failures with their method name.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. The first constructor
// error is wrapped with "BuildGraph: %w" and returned; no graph is returned
// alongside it.
//
// Complexity: O(len(bopts)) to resolve options plus the sum of constructor costs.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
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

// addNodes inserts n nodes named by cfg.idFn(0..n-1) and returns the names
// in index order.
func addNodes(method string, g *core.Graph, cfg builderConfig, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddNode(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// link adds the undirected edge u-v with the next weight from cfg.
func link(method string, g *core.Graph, cfg builderConfig, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}
