// Package routing_test covers table construction on small known networks,
// equivalence of build modes, first-hop chain failures and the all-pairs
// cross-check.
package routing_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rmatrix/builder"
	"github.com/katalvlaran/rmatrix/core"
	"github.com/katalvlaran/rmatrix/dijkstra"
	"github.com/katalvlaran/rmatrix/routing"
)

// graphOf builds a graph from "a b w" triples.
func graphOf(t *testing.T, edges ...[3]interface{}) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0].(string), e[1].(string), int64(e[2].(int))))
	}

	return g
}

// rowStrings renders one row with Cell.String.
func rowStrings(t *testing.T, tbl *routing.Table, src string) []string {
	t.Helper()
	row, err := tbl.Row(src)
	require.NoError(t, err)
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = c.String()
	}

	return out
}

func TestBuild_Triangle(t *testing.T) {
	g := graphOf(t, [3]interface{}{"A", "B", 1}, [3]interface{}{"B", "C", 2}, [3]interface{}{"A", "C", 5})

	tbl, err := routing.Build(g)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, tbl.Nodes())
	assert.Equal(t, []string{"self", "(B,1)", "(B,3)"}, rowStrings(t, tbl, "A"))
	assert.Equal(t, []string{"(A,1)", "self", "(C,2)"}, rowStrings(t, tbl, "B"))
	assert.Equal(t, []string{"(B,3)", "(B,2)", "self"}, rowStrings(t, tbl, "C"))

	c, err := tbl.Cell("A", "C")
	require.NoError(t, err)
	assert.Equal(t, routing.Cell{Kind: routing.CellHop, FirstHop: "B", Distance: 3}, c)
	require.NoError(t, routing.Verify(g, tbl))
}

func TestBuild_Disconnected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("B"))

	tbl, err := routing.Build(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"self", "unreachable"}, rowStrings(t, tbl, "A"))
	assert.Equal(t, []string{"unreachable", "self"}, rowStrings(t, tbl, "B"))

	c, err := tbl.Cell("A", "B")
	require.NoError(t, err)
	assert.Equal(t, routing.CellUnreachable, c.Kind)
	require.NoError(t, routing.Verify(g, tbl))
}

func TestBuild_SingleNode(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A"))

	tbl, err := routing.Build(g)
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())
	assert.Equal(t, []string{"self"}, rowStrings(t, tbl, "A"))
}

func TestBuild_EmptyGraph(t *testing.T) {
	tbl, err := routing.Build(core.NewGraph())
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
	assert.NoError(t, routing.Verify(core.NewGraph(), tbl))
}

func TestBuild_TieBreakByName(t *testing.T) {
	g := graphOf(t,
		[3]interface{}{"A", "B", 1}, [3]interface{}{"A", "C", 1},
		[3]interface{}{"B", "D", 1}, [3]interface{}{"C", "D", 1},
	)
	for _, s := range []dijkstra.Strategy{dijkstra.StrategyScan, dijkstra.StrategyHeap} {
		for _, w := range []int{1, 2, 4} {
			t.Run(fmt.Sprintf("%s/workers=%d", s, w), func(t *testing.T) {
				tbl, err := routing.Build(g, routing.WithStrategy(s), routing.WithWorkers(w))
				require.NoError(t, err)
				c, err := tbl.Cell("A", "D")
				require.NoError(t, err)
				assert.Equal(t, "(B,2)", c.String())
				c, err = tbl.Cell("D", "A")
				require.NoError(t, err)
				assert.Equal(t, "(B,2)", c.String())
			})
		}
	}
}

func TestBuild_Validation(t *testing.T) {
	_, err := routing.Build(nil)
	assert.ErrorIs(t, err, routing.ErrNilGraph)

	_, err = routing.Build(core.NewGraph(), routing.WithWorkers(0))
	assert.ErrorIs(t, err, routing.ErrBadWorkers)

	assert.ErrorIs(t, routing.Verify(nil, nil), routing.ErrNilGraph)
}

func TestTable_UnknownNode(t *testing.T) {
	g := graphOf(t, [3]interface{}{"A", "B", 1})
	tbl, err := routing.Build(g)
	require.NoError(t, err)

	_, err = tbl.Row("Z")
	assert.ErrorIs(t, err, routing.ErrUnknownNode)
	_, err = tbl.Cell("A", "Z")
	assert.ErrorIs(t, err, routing.ErrUnknownNode)
	_, err = tbl.Cell("Z", "A")
	assert.ErrorIs(t, err, routing.ErrUnknownNode)
}

func TestTable_AccessorsReturnCopies(t *testing.T) {
	g := graphOf(t, [3]interface{}{"A", "B", 1})
	tbl, err := routing.Build(g)
	require.NoError(t, err)

	nodes := tbl.Nodes()
	nodes[0] = "X"
	row, err := tbl.Row("A")
	require.NoError(t, err)
	row[1] = routing.Cell{}

	assert.Equal(t, []string{"A", "B"}, tbl.Nodes())
	c, err := tbl.Cell("A", "B")
	require.NoError(t, err)
	assert.Equal(t, "(B,1)", c.String())
}

func TestTable_Walk(t *testing.T) {
	g := graphOf(t, [3]interface{}{"A", "B", 1}, [3]interface{}{"B", "C", 2})
	tbl, err := routing.Build(g)
	require.NoError(t, err)

	var seen []string
	require.NoError(t, tbl.Walk(func(src, dst string, c routing.Cell) error {
		seen = append(seen, src+dst)
		return nil
	}))
	assert.Equal(t, []string{"AA", "AB", "AC", "BA", "BB", "BC", "CA", "CB", "CC"}, seen)

	stop := fmt.Errorf("stop")
	n := 0
	err = tbl.Walk(func(src, dst string, c routing.Cell) error {
		n++
		if n == 2 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, n)
}

// Every build mode must produce the same table, and the table must agree
// with the Floyd–Warshall closure.
func TestBuild_ModesAgree(t *testing.T) {
	fixtures := map[string]builder.Constructor{
		"grid":     builder.Grid(4, 5),
		"cycle":    builder.Cycle(9),
		"star":     builder.Star(7),
		"complete": builder.Complete(6),
		"sparse":   builder.RandomSparse(25, 0.12),
	}
	for name, ctor := range fixtures {
		t.Run(name, func(t *testing.T) {
			g, err := builder.BuildGraph(
				[]builder.BuilderOption{builder.WithSeed(11), builder.WithWeightRange(0, 9)},
				ctor,
			)
			require.NoError(t, err)

			want, err := routing.Build(g)
			require.NoError(t, err)
			require.NoError(t, routing.Verify(g, want))

			for _, s := range []dijkstra.Strategy{dijkstra.StrategyScan, dijkstra.StrategyHeap} {
				for _, w := range []int{1, 3, 8} {
					got, err := routing.Build(g, routing.WithStrategy(s), routing.WithWorkers(w))
					require.NoError(t, err)
					assert.Equal(t, want, got, "strategy=%s workers=%d", s, w)
				}
			}
		})
	}
}

func TestVerify_DetectsMismatch(t *testing.T) {
	g := graphOf(t, [3]interface{}{"A", "B", 1}, [3]interface{}{"B", "C", 2}, [3]interface{}{"A", "C", 5})
	tbl, err := routing.Build(g)
	require.NoError(t, err)

	// The table was built before the shortcut existed.
	require.NoError(t, g.AddEdge("A", "C", 1))
	assert.ErrorIs(t, routing.Verify(g, tbl), routing.ErrDistanceMismatch)

	// A table for a different node set.
	other := graphOf(t, [3]interface{}{"A", "B", 1})
	assert.ErrorIs(t, routing.Verify(other, tbl), routing.ErrDistanceMismatch)
}

func TestVerify_EmptyGraph(t *testing.T) {
	tbl, err := routing.Build(graphOf(t, [3]interface{}{"A", "B", 1}))
	require.NoError(t, err)
	assert.ErrorIs(t, routing.Verify(core.NewGraph(), tbl), routing.ErrDistanceMismatch)

	empty, err := routing.Build(core.NewGraph())
	require.NoError(t, err)
	assert.NoError(t, routing.Verify(core.NewGraph(), empty))
}

func TestBuild_HeavyWeights(t *testing.T) {
	// A maximal edge is still a route.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", core.MaxWeight))
	tbl, err := routing.Build(g)
	require.NoError(t, err)
	c, err := tbl.Cell("A", "B")
	require.NoError(t, err)
	assert.Equal(t, routing.Cell{Kind: routing.CellHop, FirstHop: "B", Distance: core.MaxWeight}, c)
	assert.NoError(t, routing.Verify(g, tbl))

	// A path that would total past MaxInt64 is refused, not marked unreachable.
	g = core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", core.MaxWeight-7))
	require.NoError(t, g.AddEdge("B", "C", 10))
	_, err = routing.Build(g, routing.WithWorkers(2))
	assert.ErrorIs(t, err, dijkstra.ErrWeightTooLarge)
}

// chain is a hand-made predecessor array in engine index space.
type chain struct {
	src   int
	pred  []int
	kinds []dijkstra.PredKind
}

func (c chain) SourceIndex() int { return c.src }
func (c chain) Len() int         { return len(c.pred) }
func (c chain) PredecessorAt(i int) (int, dijkstra.PredKind) {
	return c.pred[i], c.kinds[i]
}

func TestFirstHop(t *testing.T) {
	N, O, P := dijkstra.PredNone, dijkstra.PredOrigin, dijkstra.PredNode

	// 0 <- 1 <- 2 <- 3
	ok := chain{src: 0, pred: []int{-1, 0, 1, 2}, kinds: []dijkstra.PredKind{O, P, P, P}}
	hop, err := routing.FirstHop(ok, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, hop)
	hop, err = routing.FirstHop(ok, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, hop)

	// 2 and 3 point at each other and never reach 0.
	loop := chain{src: 0, pred: []int{-1, 0, 3, 2}, kinds: []dijkstra.PredKind{O, P, P, P}}
	_, err = routing.FirstHop(loop, 3)
	assert.ErrorIs(t, err, routing.ErrPredecessorCycle)

	// 2 points at 1, which has no predecessor.
	broken := chain{src: 0, pred: []int{-1, -1, 1}, kinds: []dijkstra.PredKind{O, N, P}}
	_, err = routing.FirstHop(broken, 2)
	assert.ErrorIs(t, err, routing.ErrPredecessorCycle)

	noSource := chain{src: -1, pred: []int{-1}, kinds: []dijkstra.PredKind{N}}
	_, err = routing.FirstHop(noSource, 0)
	assert.ErrorIs(t, err, routing.ErrPredecessorCycle)
}

func TestCellKind_String(t *testing.T) {
	assert.Equal(t, "self", routing.CellSelf.String())
	assert.Equal(t, "hop", routing.CellHop.String())
	assert.Equal(t, "unreachable", routing.CellUnreachable.String())
	assert.Equal(t, "unreachable", routing.Cell{}.String())
}

func BenchmarkBuild_Grid(b *testing.B) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithWeightRange(1, 9)},
		builder.Grid(12, 12),
	)
	if err != nil {
		b.Fatal(err)
	}
	for _, w := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", w), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := routing.Build(g, routing.WithWorkers(w), routing.WithStrategy(dijkstra.StrategyHeap)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
