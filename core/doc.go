// Package core provides the in-memory network topology used by the routing
// matrix computation: a Graph of named Nodes joined by undirected,
// non-negatively weighted links.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected only: AddEdge(a, b, w) records b in a's adjacency and a in b's
//     adjacency with the same weight w.
//   - Non-negative integer weights (int64); negative weights are rejected.
//   - No self-loops; a loop can never lie on a shortest path.
//   - Re-adding an existing edge overwrites its weight on both endpoints.
//   - Deterministic iteration: Nodes(), Neighbors() and Edges() are sorted by
//     node name, which fixes the row/column order of the routing table and the
//     tie-break order of the shortest-path engine.
//
// A single sync.RWMutex guards the node catalog and adjacency. The graph is
// built once by a loader and then only read, so the per-source shortest-path
// runs may share it across goroutines.
//
// Core methods:
//
//	AddNode(name string) error                   // O(1), idempotent
//	AddEdge(a, b string, weight int64) error     // O(1), symmetric
//	HasNode(name string) bool                    // O(1)
//	HasEdge(a, b string) bool                    // O(1)
//	Weight(a, b string) (int64, bool)            // O(1)
//	Node(name string) (*Node, error)             // O(1)
//	Nodes() []string                             // O(V log V), sorted
//	Neighbors(name string) ([]Link, error)       // O(d log d), sorted
//	Edges() []Edge                               // O(E log E), sorted
//	NodeCount() int, EdgeCount() int             // O(1)
//
// Errors:
//
//	ErrEmptyNodeName   – zero-length node name
//	ErrNodeNotFound    – missing node
//	ErrNegativeWeight  – edge weight below zero
//	ErrLoopNotAllowed  – edge from a node to itself
//	ErrWeightTooLarge  – edge weight above MaxWeight
package core
