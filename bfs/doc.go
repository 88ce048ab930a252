// Package bfs provides breadth-first search over a core.Graph and the
// connected-component split built on it.
//
// BFS ignores edge weights: Depth is the number of hops from the start.
// Components tells which node pairs can reach each other at all, which is
// what decides the unreachable cells of a routing matrix before any
// shortest-path work is done.
//
// Example:
//
//	comps, _ := bfs.Components(ctx, g)
//	for _, c := range comps {
//	    log.Debugf("component %s: %d nodes, %d hops", c.Root, len(c.Nodes), c.Hops)
//	}
package bfs
