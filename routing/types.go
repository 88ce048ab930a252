package routing

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the routing package.
var (
	// ErrNilGraph indicates that a nil graph was passed to Build or Verify.
	ErrNilGraph = errors.New("routing: graph is nil")

	// ErrPredecessorCycle indicates that a predecessor chain did not reach
	// the source within |V| steps, or broke off at a node without a
	// predecessor while its distance was finite.
	ErrPredecessorCycle = errors.New("routing: predecessor chain does not terminate at source")

	// ErrUnknownNode indicates a lookup for a node that is not in the table.
	ErrUnknownNode = errors.New("routing: unknown node")

	// ErrDistanceMismatch indicates that the all-pairs cross-check disagrees
	// with a table distance.
	ErrDistanceMismatch = errors.New("routing: distance mismatch against all-pairs check")

	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("routing: workers must be >= 1")
)

// CellKind classifies a routing table cell.
type CellKind uint8

const (
	// CellUnreachable means the destination cannot be reached from the source.
	CellUnreachable CellKind = iota

	// CellSelf is the diagonal: destination == source, distance 0.
	CellSelf

	// CellHop carries a first hop and a total distance.
	CellHop
)

// String implements fmt.Stringer.
func (k CellKind) String() string {
	switch k {
	case CellSelf:
		return "self"
	case CellHop:
		return "hop"
	default:
		return "unreachable"
	}
}

// Cell is one (source, destination) entry of the routing table.
// FirstHop and Distance are only meaningful for CellHop.
type Cell struct {
	Kind     CellKind
	FirstHop string
	Distance int64
}

// String renders the cell as "self", "unreachable" or "(B,3)".
func (c Cell) String() string {
	if c.Kind == CellHop {
		return fmt.Sprintf("(%s,%d)", c.FirstHop, c.Distance)
	}

	return c.Kind.String()
}

// Table is the all-pairs routing matrix: rows are sources and columns are
// destinations, both in sorted node-name order. A Table is immutable;
// accessors hand out copies.
type Table struct {
	nodes []string
	index map[string]int
	cells [][]Cell
}

// Nodes returns the row/column order.
func (t *Table) Nodes() []string {
	out := make([]string, len(t.nodes))
	copy(out, t.nodes)

	return out
}

// Len returns the number of nodes (rows, and columns).
func (t *Table) Len() int { return len(t.nodes) }

// Row returns a copy of the row for source src.
func (t *Table) Row(src string) ([]Cell, error) {
	i, ok := t.index[src]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, src)
	}
	out := make([]Cell, len(t.cells[i]))
	copy(out, t.cells[i])

	return out, nil
}

// Cell returns the cell for (src, dst).
func (t *Table) Cell(src, dst string) (Cell, error) {
	i, ok := t.index[src]
	if !ok {
		return Cell{}, fmt.Errorf("%w: %q", ErrUnknownNode, src)
	}
	j, ok := t.index[dst]
	if !ok {
		return Cell{}, fmt.Errorf("%w: %q", ErrUnknownNode, dst)
	}

	return t.cells[i][j], nil
}

// Walk calls fn for every cell in row-major order and stops at the first
// error, which it returns.
func (t *Table) Walk(fn func(src, dst string, c Cell) error) error {
	for i, src := range t.nodes {
		for j, dst := range t.nodes {
			if err := fn(src, dst, t.cells[i][j]); err != nil {
				return err
			}
		}
	}

	return nil
}
