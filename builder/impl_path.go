// SPDX-License-Identifier: MIT
// Package: rmatrix/builder
//
// impl_path.go - Path(n): nodes 0..n-1, edges i-(i+1) for i asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rmatrix/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := addNodes(methodPath, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = link(methodPath, g, cfg, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
