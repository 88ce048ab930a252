// SPDX-License-Identifier: MIT
// Package: rmatrix/builder
//
// impl_star.go - Star(n): hub "Center" and leaves cfg.idFn(1..n-1).
//
// Determinism:
//   - Fixed hub ID, leaf IDs via cfg.idFn.
//   - Spokes are emitted by increasing leaf index.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rmatrix/core"
)

const (
	methodStar     = "Star"
	minStarNodes   = 2
	centerVertexID = "Center"
)

// Star returns a Constructor that builds a star with n vertices:
// one hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddNode(centerVertexID); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", methodStar, centerVertexID, err)
		}

		var leafID string
		for i := 1; i < n; i++ {
			leafID = cfg.idFn(i)
			if err := g.AddNode(leafID); err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w", methodStar, leafID, err)
			}
			if err := link(methodStar, g, cfg, centerVertexID, leafID); err != nil {
				return err
			}
		}

		return nil
	}
}
