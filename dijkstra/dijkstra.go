// Package dijkstra implements the single-source shortest-path engine used to
// build routing tables.
//
// Notes on implementation choices:
//
//   - An Engine snapshots the graph once into index-based adjacency. Node
//     indices follow sorted name order, so "smaller index" means
//     "lexicographically smaller name" everywhere below.
//   - Run-scoped data (distance, predecessor, settled/frontier membership)
//     lives in a State. A State is reset at the start of every run, so one
//     State can serve every source in turn without leaking results.
//   - Equal-distance frontier candidates are settled in name order. Together
//     with strict "<" relaxation this makes the predecessor of each node the
//     earliest-settled node offering the minimum distance.
//   - Distance addition saturates at Infinity.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/rmatrix/core"
)

// arc is one adjacency entry in index space.
type arc struct {
	to int
	w  int64
}

// Engine holds the static adjacency of a graph. It is immutable after
// NewEngine and safe for concurrent use by runs on distinct States.
type Engine struct {
	names    []string
	index    map[string]int
	adj      [][]arc
	strategy Strategy
}

// NewEngine snapshots g for repeated shortest-path runs.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. No edge in g can have negative weight (ErrNegativeWeight).
//  3. Every shortest path must total less than Infinity (ErrWeightTooLarge).
//
// Complexity: O(V log V + E log E).
func NewEngine(g *core.Graph, opts ...Option) (*Engine, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	names := g.Nodes()
	e := &Engine{
		names:    names,
		index:    make(map[string]int, len(names)),
		adj:      make([][]arc, len(names)),
		strategy: cfg.Strategy,
	}
	for i, name := range names {
		e.index[name] = i
	}

	// Neighbors come back sorted by name, hence by index.
	var heaviest, total int64
	for i, name := range names {
		links, err := g.Neighbors(name)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", name, err)
		}
		arcs := make([]arc, 0, len(links))
		for _, l := range links {
			if l.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %s-%s weight=%d", ErrNegativeWeight, name, l.To, l.Weight)
			}
			to, ok := e.index[l.To]
			if !ok {
				return nil, fmt.Errorf("dijkstra: neighbor %q of %q: %w", l.To, name, ErrNodeNotFound)
			}
			arcs = append(arcs, arc{to: to, w: l.Weight})
			if to > i {
				heaviest = max(heaviest, l.Weight)
				total = saturatingAdd(total, l.Weight)
			}
		}
		e.adj[i] = arcs
	}
	if !pathsFit(heaviest, total, len(names)) {
		return nil, fmt.Errorf("%w: heaviest edge %d over %d nodes", ErrWeightTooLarge, heaviest, len(names))
	}

	return e, nil
}

// pathsFit reports whether every shortest path stays below Infinity. A
// shortest path is simple: it uses each edge at most once and at most n-1
// edges, so it is bounded by both the total weight and heaviest*(n-1).
func pathsFit(heaviest, total int64, n int) bool {
	if total < Infinity || n < 2 || heaviest == 0 {
		return true
	}

	return heaviest <= (Infinity-1)/int64(n-1)
}

// saturatingAdd returns a+b for non-negative operands, capped at Infinity.
func saturatingAdd(a, b int64) int64 {
	if b > Infinity-a {
		return Infinity
	}

	return a + b
}

// Nodes returns the node names in engine index order (sorted ascending).
func (e *Engine) Nodes() []string {
	out := make([]string, len(e.names))
	copy(out, e.names)

	return out
}

// Len returns the number of nodes.
func (e *Engine) Len() int { return len(e.names) }

// Index returns the engine index of the named node.
func (e *Engine) Index(name string) (int, bool) {
	i, ok := e.index[name]

	return i, ok
}

// Name returns the node name at index i.
func (e *Engine) Name(i int) string { return e.names[i] }

// Strategy returns the frontier selection strategy.
func (e *Engine) Strategy() Strategy { return e.strategy }

// Run computes shortest paths from source into s. s is reset first.
func (e *Engine) Run(s *State, source string) error {
	if source == "" {
		return ErrEmptySource
	}
	src, ok := e.index[source]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, source)
	}

	return e.RunIndex(s, src)
}

// RunIndex is Run with the source given as an engine index.
func (e *Engine) RunIndex(s *State, src int) error {
	if s == nil || s.engine != e {
		return ErrForeignState
	}
	if src < 0 || src >= len(e.names) {
		return fmt.Errorf("%w: index %d", ErrNodeNotFound, src)
	}

	s.Reset()
	s.source = src
	s.dist[src] = 0
	s.kind[src] = PredOrigin

	switch e.strategy {
	case StrategyHeap:
		heap.Push(&s.pq, &nodeItem{id: src, dist: 0})
		e.processHeap(s)
	default:
		s.inFrontier[src] = true
		s.frontier = append(s.frontier, src)
		e.processScan(s)
	}

	return nil
}

// processScan repeatedly settles the frontier node with the minimum
// (distance, index) found by a linear scan.
func (e *Engine) processScan(s *State) {
	for len(s.frontier) > 0 {
		best := 0
		for k := 1; k < len(s.frontier); k++ {
			c, b := s.frontier[k], s.frontier[best]
			if s.dist[c] < s.dist[b] || (s.dist[c] == s.dist[b] && c < b) {
				best = k
			}
		}
		u := s.frontier[best]

		// Order of the frontier slice is irrelevant; swap-remove.
		last := len(s.frontier) - 1
		s.frontier[best] = s.frontier[last]
		s.frontier = s.frontier[:last]
		s.inFrontier[u] = false

		e.relax(s, u)
		s.settled[u] = true
	}
}

// processHeap pops (distance, index) minima and skips stale entries.
func (e *Engine) processHeap(s *State) {
	for s.pq.Len() > 0 {
		item := heap.Pop(&s.pq).(*nodeItem)
		if s.settled[item.id] || item.dist != s.dist[item.id] {
			continue
		}
		e.relax(s, item.id)
		s.settled[item.id] = true
	}
}

// relax examines each unsettled neighbor of u and records a strictly
// shorter path through u, adding the neighbor to the frontier.
func (e *Engine) relax(s *State, u int) {
	du := s.dist[u]
	for _, a := range e.adj[u] {
		if s.settled[a.to] {
			continue
		}
		if a.w > Infinity-du {
			continue // would saturate; cannot beat any finite distance
		}
		nd := du + a.w
		if nd >= s.dist[a.to] {
			continue
		}
		s.dist[a.to] = nd
		s.pred[a.to] = u
		s.kind[a.to] = PredNode

		if e.strategy == StrategyHeap {
			heap.Push(&s.pq, &nodeItem{id: a.to, dist: nd})
		} else if !s.inFrontier[a.to] {
			s.inFrontier[a.to] = true
			s.frontier = append(s.frontier, a.to)
		}
	}
}

// Dijkstra computes shortest distances from the source (Options.Source) to
// every node of g and returns the resulting State.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrNodeNotFound).
//  4. No edge can have negative weight (ErrNegativeWeight).
//
// For many sources over one graph, build an Engine once and reuse a State.
func Dijkstra(g *core.Graph, opts ...Option) (*State, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, cfg.Source)
	}

	e, err := NewEngine(g, WithStrategy(cfg.Strategy))
	if err != nil {
		return nil, err
	}
	s := e.NewState()
	if err = e.Run(s, cfg.Source); err != nil {
		return nil, err
	}

	return s, nil
}

// nodeItem represents a node and its tentative distance in the heap.
type nodeItem struct {
	id   int   // engine index
	dist int64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by index (name order).
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
