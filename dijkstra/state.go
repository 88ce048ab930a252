package dijkstra

import "fmt"

// State holds the run-scoped results of one shortest-path computation:
// per-node distance and predecessor plus the settled/frontier bookkeeping.
//
// A State belongs to the Engine that created it and is reused across runs;
// Engine.Run resets it before computing. A State must not be shared by
// concurrent runs.
type State struct {
	engine *Engine
	source int // -1 until the first run

	dist []int64
	pred []int
	kind []PredKind

	settled    []bool
	inFrontier []bool
	frontier   []int
	pq         nodePQ
}

// NewState allocates a State sized for e, already in its reset form.
func (e *Engine) NewState() *State {
	n := len(e.names)
	s := &State{
		engine:     e,
		dist:       make([]int64, n),
		pred:       make([]int, n),
		kind:       make([]PredKind, n),
		settled:    make([]bool, n),
		inFrontier: make([]bool, n),
		frontier:   make([]int, 0, n),
		pq:         make(nodePQ, 0, n),
	}
	s.Reset()

	return s
}

// Reset restores every node to distance Infinity with no predecessor and
// empties the settled and frontier sets. Buffers are kept.
func (s *State) Reset() {
	s.source = -1
	for i := range s.dist {
		s.dist[i] = Infinity
		s.pred[i] = -1
		s.kind[i] = PredNone
		s.settled[i] = false
		s.inFrontier[i] = false
	}
	s.frontier = s.frontier[:0]
	for i := range s.pq {
		s.pq[i] = nil
	}
	s.pq = s.pq[:0]
}

// Len returns the number of nodes covered by the State.
func (s *State) Len() int { return len(s.dist) }

// Source returns the source of the last run, or "" if none ran since Reset.
func (s *State) Source() string {
	if s.source < 0 {
		return ""
	}

	return s.engine.names[s.source]
}

// SourceIndex returns the engine index of the last source, or -1.
func (s *State) SourceIndex() int { return s.source }

// DistanceAt returns the distance of the node at engine index i.
func (s *State) DistanceAt(i int) int64 { return s.dist[i] }

// PredecessorAt returns the predecessor slot of the node at engine index i.
// The returned index is only meaningful when the kind is PredNode.
func (s *State) PredecessorAt(i int) (int, PredKind) { return s.pred[i], s.kind[i] }

// Distance returns the distance from the source to the named node;
// Infinity if it is unreachable.
func (s *State) Distance(name string) (int64, error) {
	i, ok := s.engine.index[name]
	if !ok {
		return Infinity, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}

	return s.dist[i], nil
}

// Reachable reports whether the named node has a finite distance.
func (s *State) Reachable(name string) bool {
	d, err := s.Distance(name)

	return err == nil && d != Infinity
}

// Predecessor returns the tagged predecessor of the named node.
func (s *State) Predecessor(name string) (Predecessor, error) {
	i, ok := s.engine.index[name]
	if !ok {
		return Predecessor{}, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}
	p := Predecessor{Kind: s.kind[i]}
	if p.Kind == PredNode {
		p.Node = s.engine.names[s.pred[i]]
	}

	return p, nil
}

// Distances returns a name → distance snapshot, Infinity for unreachable nodes.
func (s *State) Distances() map[string]int64 {
	out := make(map[string]int64, len(s.dist))
	for i, d := range s.dist {
		out[s.engine.names[i]] = d
	}

	return out
}

// Predecessors returns a name → predecessor-name snapshot. Only nodes with
// a PredNode predecessor appear; the source and unreachable nodes do not.
func (s *State) Predecessors() map[string]string {
	out := make(map[string]string, len(s.dist))
	for i, k := range s.kind {
		if k == PredNode {
			out[s.engine.names[i]] = s.engine.names[s.pred[i]]
		}
	}

	return out
}
