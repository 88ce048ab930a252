// Package dijkstra provides the shortest-path engine behind the routing
// matrix: for one source node it computes the minimum-weight distance to every
// node of an undirected, non-negatively weighted core.Graph and the
// predecessor of each node on its shortest path.
//
// Overview:
//
//   - Greedy frontier expansion. Settled and frontier sets are disjoint; the
//     frontier starts as {source} and the node with the smallest tentative
//     distance is settled next.
//   - Ties between equal-distance frontier nodes are broken by node name,
//     lexicographically smallest first, so results never depend on map order.
//   - Relaxation is strict: a neighbor's predecessor changes only when a
//     shorter distance is found.
//   - Unreachable nodes keep distance Infinity and predecessor PredNone.
//
// Engine and State:
//
//   - Engine is the read-only adjacency snapshot of a graph.
//   - State holds distance and predecessor per node for one run. Engine.Run
//     resets it first, so a single State can be reused for every source.
//     Concurrent runs need one State each and may share the Engine.
//
// Strategies:
//
//   - StrategyScan (default): linear scan of the frontier, O(V²) time.
//   - StrategyHeap: lazy binary heap keyed by (distance, name),
//     O((V + E) log V) time. Output is identical to StrategyScan.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource, ErrNilGraph, ErrNodeNotFound, ErrNegativeWeight,
//     ErrForeignState.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (*State, error)
//	func NewEngine(g *core.Graph, opts ...Option) (*Engine, error)
//	func (e *Engine) NewState() *State
//	func (e *Engine) Run(s *State, source string) error
//
// Example:
//
//	s, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, _ := s.Distance("C")
package dijkstra
