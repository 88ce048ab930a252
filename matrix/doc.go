// Package matrix provides a dense, row-major int64 distance matrix and an
// in-place Floyd–Warshall all-pairs shortest-path closure over it.
//
// It exists as an independent oracle: routing.Verify builds the distance
// matrix of a core.Graph with FromGraph, closes it with FloydWarshall and
// compares every entry against the per-source Dijkstra results.
//
// Conventions:
//
//   - Entries are non-negative; Unreachable (math.MaxInt64) means "no path".
//   - Rows and columns follow core.Graph.Nodes() order (sorted by name).
//   - Public accessors never panic on bad indices; they return ErrOutOfRange.
package matrix
