// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense all-pairs shortest paths (Floyd–Warshall) with deterministic loop order.
//   - Independent oracle for the per-source routing computation.
//
// Contract:
//   - Square matrix; Unreachable means "no path"; diagonal must be 0 before calling.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/rmatrix/core"
)

const (
	opFloydWarshall = "FloydWarshall"
	opFromGraph     = "FromGraph"
)

// FromGraph builds the initial distance matrix of g: 0 on the diagonal, the
// edge weight for adjacent pairs, Unreachable elsewhere. Rows and columns
// follow g.Nodes() order, which is also returned.
// Complexity: O(V² + E log E).
func FromGraph(g *core.Graph) (*Dense, []string, error) {
	if g == nil {
		return nil, nil, matrixErrorf(opFromGraph, ErrGraphNil)
	}
	names := g.Nodes()
	n := len(names)
	if n == 0 {
		return nil, names, matrixErrorf(opFromGraph, ErrInvalidDimensions)
	}
	idx := make(map[string]int, n)
	for i, name := range names {
		idx[name] = i
	}

	d, _ := NewDense(n, n)
	for i := range d.data {
		d.data[i] = Unreachable
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 0
	}
	for _, e := range g.Edges() {
		i, j := idx[e.From], idx[e.To]
		if err := d.Set(i, j, e.Weight); err != nil {
			return nil, nil, matrixErrorf(opFromGraph, err)
		}
		_ = d.Set(j, i, e.Weight)
	}

	return d, names, nil
}

// FloydWarshall computes all-pairs shortest paths in-place on m.
//
// Contract:
//   - m must be square (n×n).
//   - Unreachable denotes "no edge" off-diagonal; the diagonal MUST be 0.
//
// Loop order is fixed (k → i → j). Sums that would exceed Unreachable are
// skipped rather than wrapped.
//
// Complexity: Time O(n³), Extra space O(1).
func FloydWarshall(m *Dense) error {
	if m == nil {
		return matrixErrorf(opFloydWarshall, ErrNilMatrix)
	}
	if m.r != m.c {
		return fmt.Errorf("%s: %dx%d: %w", opFloydWarshall, m.r, m.c, ErrNonSquare)
	}

	n := m.r
	data := m.data
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand int64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik == Unreachable {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if kj == Unreachable || kj > Unreachable-ik {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}
