package bfs

import (
	"context"

	"github.com/katalvlaran/rmatrix/core"
)

// Component is one connected part of a graph.
type Component struct {
	// Root is the smallest node name in the component.
	Root string

	// Nodes lists the members in BFS order from Root.
	Nodes []string

	// Hops is the largest hop count from Root to any member.
	Hops int
}

// Components partitions g into connected components ordered by Root. Two
// nodes share a component exactly when a route exists between them.
// The scan stops with ctx.Err() once ctx is done.
func Components(ctx context.Context, g *core.Graph) ([]Component, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]bool, g.NodeCount())
	var out []Component
	for _, name := range g.Nodes() {
		if seen[name] {
			continue
		}
		res, err := BFS(g, name, WithContext(ctx))
		if err != nil {
			return nil, err
		}
		for _, id := range res.Order {
			seen[id] = true
		}
		out = append(out, Component{Root: name, Nodes: res.Order, Hops: res.Eccentricity()})
	}

	return out, nil
}

// UnreachablePairs returns the number of ordered (source, destination)
// pairs with no route between them.
func UnreachablePairs(components []Component) int {
	total := 0
	for _, c := range components {
		total += len(c.Nodes)
	}
	pairs := 0
	for _, c := range components {
		pairs += len(c.Nodes) * (total - len(c.Nodes))
	}

	return pairs
}
