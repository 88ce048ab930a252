// Package routing builds the all-pairs routing matrix of a network.
//
// Build runs the dijkstra engine once per node, treating each node as the
// source in turn, and records for every destination either:
//
//   - CellSelf        the destination is the source (distance 0),
//   - CellHop         the first hop on a shortest path and the total distance,
//   - CellUnreachable no path exists.
//
// Rows and columns follow sorted node-name order. The first hop is found by
// walking predecessors back from the destination; the walk is bounded by |V|
// steps and a chain that does not end at the source fails with
// ErrPredecessorCycle instead of looping.
//
// Sequential builds reuse one dijkstra.State, reset before each source.
// WithWorkers(n) spreads sources over an ants goroutine pool; every task
// gets its own State and shares the read-only Engine.
//
// Verify cross-checks a finished Table against an independent
// Floyd–Warshall closure from the matrix package.
//
// Example:
//
//	t, err := routing.Build(g, routing.WithWorkers(4))
//	if err != nil {
//	    return err
//	}
//	c, _ := t.Cell("A", "C") // (B,3)
package routing
