// SPDX-License-Identifier: MIT
// Package: rmatrix/builder
//
// impl_random_sparse.go - RandomSparse(n, p) and Isolated(n).
//
// RandomSparse includes each unordered pair {i<j} independently with
// probability p. Trials run for i asc, then j asc, so a fixed seed gives a
// fixed graph. Weights are drawn only for included edges, after the trial.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be set when 0 < p < 1 (else ErrNeedRandSource).

package builder

import (
	"fmt"

	"github.com/katalvlaran/rmatrix/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	methodIsolated          = "Isolated"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices with independent edge probability p. The result may be
// disconnected, which makes it a natural source of unreachable cells.
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

		ids, err := addNodes(methodRandomSparse, g, cfg, n)
		if err != nil {
			return err
		}

		var include bool
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch p {
				case probMin:
					include = false
				case probMax:
					include = true
				default:
					include = cfg.rng.Float64() < p
				}
				if !include {
					continue
				}
				if err = link(methodRandomSparse, g, cfg, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Isolated returns a Constructor that adds n nodes and no edges.
func Isolated(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodIsolated, n, ErrTooFewVertices)
		}
		_, err := addNodes(methodIsolated, g, cfg, n)

		return err
	}
}
