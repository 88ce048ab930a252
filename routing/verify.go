package routing

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/rmatrix/core"
	"github.com/katalvlaran/rmatrix/matrix"
)

// Verify recomputes all-pairs distances of g with Floyd–Warshall and checks
// every cell of t against them:
//   - CellSelf must sit on the diagonal,
//   - CellUnreachable must match "no path",
//   - CellHop distances must match, and the first hop must be adjacent to
//     the source with w(src, hop) + dist(hop, dst) == dist(src, dst).
//
// The first mismatch, or a failure to compute the all-pairs distances, is
// returned wrapped in ErrDistanceMismatch.
// Complexity: O(V³).
func Verify(g *core.Graph, t *Table) error {
	if g == nil {
		return ErrNilGraph
	}
	if t == nil || t.Len() == 0 {
		if g.NodeCount() == 0 {
			return nil
		}
		return fmt.Errorf("%w: empty table for %d nodes", ErrDistanceMismatch, g.NodeCount())
	}

	if n := g.NodeCount(); n != t.Len() {
		return fmt.Errorf("%w: table has %d nodes, graph %d", ErrDistanceMismatch, t.Len(), n)
	}
	d, names, err := matrix.FromGraph(g)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDistanceMismatch, err)
	}
	if err = matrix.FloydWarshall(d); err != nil {
		return fmt.Errorf("%w: %w", ErrDistanceMismatch, err)
	}

	for i, src := range names {
		if t.nodes[i] != src {
			return fmt.Errorf("%w: row %d is %q, want %q", ErrDistanceMismatch, i, t.nodes[i], src)
		}
		for j, dst := range names {
			want, _ := d.At(i, j)
			c := t.cells[i][j]
			if err = checkCell(g, d, t, src, dst, c, want); err != nil {
				return err
			}
		}
	}
	log.Debugf("routing: verified %dx%d table against all-pairs distances", len(names), len(names))

	return nil
}

// checkCell compares one cell against the closed distance matrix.
func checkCell(g *core.Graph, d *matrix.Dense, t *Table, src, dst string, c Cell, want int64) error {
	mismatch := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s -> %s: %s", ErrDistanceMismatch, src, dst, fmt.Sprintf(format, args...))
	}

	switch c.Kind {
	case CellSelf:
		if src != dst {
			return mismatch("self marker off the diagonal")
		}
	case CellUnreachable:
		if want != matrix.Unreachable {
			return mismatch("marked unreachable, all-pairs distance %d", want)
		}
	case CellHop:
		if c.Distance != want {
			return mismatch("distance %d, all-pairs distance %d", c.Distance, want)
		}
		w, ok := g.Weight(src, c.FirstHop)
		if !ok {
			return mismatch("first hop %q is not adjacent to the source", c.FirstHop)
		}
		rest, _ := d.At(t.index[c.FirstHop], t.index[dst])
		if rest == matrix.Unreachable || rest > matrix.Unreachable-w || w+rest != want {
			return mismatch("path through first hop %q does not add up to %d", c.FirstHop, want)
		}
	}

	return nil
}
