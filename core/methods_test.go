// SPDX-License-Identifier: MIT
// Package core_test verifies node lifecycle, symmetric adjacency, and the
// deterministic enumeration order of core.Graph.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rmatrix/core"
)

// buildTriangle constructs A-B(1), B-C(2), A-C(5).
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "C", 5))

	return g
}

func TestGraph_AddNode(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddNode(""), core.ErrEmptyNodeName)
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("A"), "AddNode must be idempotent")

	assert.True(t, g.HasNode("A"))
	assert.False(t, g.HasNode(""))
	assert.False(t, g.HasNode("B"))
	assert.Equal(t, 1, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestGraph_AddEdgeIsSymmetric(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 7))

	wAB, ok := g.Weight("A", "B")
	require.True(t, ok)
	wBA, ok := g.Weight("B", "A")
	require.True(t, ok)
	assert.Equal(t, int64(7), wAB)
	assert.Equal(t, wAB, wBA)
	assert.True(t, g.HasEdge("B", "A"))
	assert.Equal(t, 1, g.EdgeCount())

	nb, err := g.Node("B")
	require.NoError(t, err)
	assert.Equal(t, 1, nb.Degree())
}

func TestGraph_AddEdgeOverwritesWeight(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 7))
	require.NoError(t, g.AddEdge("B", "A", 3))

	w, _ := g.Weight("A", "B")
	assert.Equal(t, int64(3), w)
	assert.Equal(t, 1, g.EdgeCount(), "re-adding an edge must not grow the edge count")
}

func TestGraph_AddEdgeRejectsInvalid(t *testing.T) {
	cases := []struct {
		name    string
		a, b    string
		weight  int64
		wantErr error
	}{
		{"empty from", "", "B", 1, core.ErrEmptyNodeName},
		{"empty to", "A", "", 1, core.ErrEmptyNodeName},
		{"loop", "A", "A", 1, core.ErrLoopNotAllowed},
		{"negative", "A", "B", -1, core.ErrNegativeWeight},
		{"too large", "A", "B", core.MaxWeight + 1, core.ErrWeightTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph()
			assert.ErrorIs(t, g.AddEdge(tc.a, tc.b, tc.weight), tc.wantErr)
			assert.Equal(t, 0, g.EdgeCount())
		})
	}
}

func TestGraph_ZeroWeightAllowed(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 0))
	w, ok := g.Weight("A", "B")
	assert.True(t, ok)
	assert.Zero(t, w)
}

func TestGraph_DeterministicOrder(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("D", "A", 4))
	require.NoError(t, g.AddEdge("C", "A", 3))
	require.NoError(t, g.AddEdge("B", "A", 2))
	require.NoError(t, g.AddNode("E"))

	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, g.Nodes())

	links, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []core.Link{{To: "B", Weight: 2}, {To: "C", Weight: 3}, {To: "D", Weight: 4}}, links)

	assert.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: 2},
		{From: "A", To: "C", Weight: 3},
		{From: "A", To: "D", Weight: 4},
	}, g.Edges())
}

func TestGraph_Lookups(t *testing.T) {
	g := buildTriangle(t)

	_, err := g.Node("")
	assert.ErrorIs(t, err, core.ErrEmptyNodeName)
	_, err = g.Node("Z")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.Neighbors("Z")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, ok := g.Weight("Z", "A")
	assert.False(t, ok)
	assert.False(t, g.HasEdge("A", "Z"))

	a, err := g.Node("A")
	require.NoError(t, err)
	c, err := g.Node("C")
	require.NoError(t, err)
	assert.Negative(t, core.CompareNodes(a, c))
	assert.Positive(t, core.CompareNodes(c, a))
	assert.Zero(t, core.CompareNodes(a, a))
}

func TestGraph_ConcurrentReads(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddEdge(fmt.Sprintf("N%02d", i), fmt.Sprintf("N%02d", i+1), int64(i)))
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, name := range g.Nodes() {
				_, err := g.Neighbors(name)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 51, g.NodeCount())
	assert.Equal(t, 50, g.EdgeCount())
}
