package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/rmatrix/core"
)

// BFS runs breadth-first search on g from start. Edge weights are ignored:
// Depth is the hop count. Neighbors are expanded in name order, so Order is
// deterministic.
//
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input, a wrapped
// core error if neighbors cannot be read, or ctx.Err() on cancellation.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	n := g.NodeCount()
	res := &Result{
		Order: make([]string, 0, n),
		Depth: make(map[string]int, n),
	}
	res.Depth[start] = 0
	queue := []string{start}
	for len(queue) > 0 {
		if err := o.ctx.Err(); err != nil {
			return nil, err
		}
		cur := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, cur)

		links, err := g.Neighbors(cur)
		if err != nil {
			return nil, fmt.Errorf("bfs: neighbors of %q: %w", cur, err)
		}
		for _, l := range links {
			if _, seen := res.Depth[l.To]; !seen {
				res.Depth[l.To] = res.Depth[cur] + 1
				queue = append(queue, l.To)
			}
		}
	}

	return res, nil
}
