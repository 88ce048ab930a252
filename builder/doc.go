// Package builder generates deterministic network topologies on top of
// core.Graph. It backs the `rmatrix generate` subcommand and the fixtures
// used by the routing and dijkstra tests.
//
// A build is one call to BuildGraph with functional options and a list of
// Constructors applied in order:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithWeightRange(1, 9)},
//	    builder.Grid(3, 4),
//	)
//
// Constructors:
//
//   - Path(n)            P_n, n ≥ 2
//   - Cycle(n)           C_n, n ≥ 3
//   - Star(n)            hub "Center" plus n-1 leaves, n ≥ 2
//   - Grid(rows, cols)   4-neighbourhood grid with IDs "r,c"
//   - Complete(n)        K_n, n ≥ 1
//   - RandomSparse(n, p) each pair {i,j} joined with probability p
//   - Isolated(n)        n nodes, no edges
//
// Vertex IDs come from an IDFn (DefaultIDFn: "0","1",...; SymbolIDFn: "A".."Z";
// ExcelColumnIDFn: "A","Z","AA",...). Edge weights come from a WeightFn
// (ConstantWeightFn, UniformWeightFn). With the same options, seed and
// constructor order the resulting graph is identical.
//
// Errors are sentinels wrapped with the constructor name:
//
//	ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//	ErrBadWeightRange, ErrConstructFailed.
package builder
