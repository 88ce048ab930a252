package routing

import (
	"fmt"

	"github.com/katalvlaran/rmatrix/dijkstra"
)

// PredecessorChain is the read side of a finished shortest-path run, in
// engine index space. *dijkstra.State implements it.
type PredecessorChain interface {
	SourceIndex() int
	Len() int
	PredecessorAt(i int) (int, dijkstra.PredKind)
}

var _ PredecessorChain = (*dijkstra.State)(nil)

// FirstHop walks the predecessor chain of dst back toward the source and
// returns the index of the node whose predecessor is the source, i.e. the
// neighbor of the source that starts the shortest path to dst.
//
// The walk takes at most |V| steps. Running out of steps, or reaching a node
// without a predecessor, yields ErrPredecessorCycle. dst must be reachable
// and differ from the source.
func FirstHop(c PredecessorChain, dst int) (int, error) {
	src := c.SourceIndex()
	if src < 0 {
		return -1, fmt.Errorf("%w: no source recorded", ErrPredecessorCycle)
	}
	cur := dst
	for steps := 0; steps < c.Len(); steps++ {
		p, kind := c.PredecessorAt(cur)
		if kind != dijkstra.PredNode {
			return -1, fmt.Errorf("%w: chain from %d breaks at %d", ErrPredecessorCycle, dst, cur)
		}
		if p == src {
			return cur, nil
		}
		cur = p
	}

	return -1, fmt.Errorf("%w: chain from %d exceeds %d steps", ErrPredecessorCycle, dst, c.Len())
}
