// SPDX-License-Identifier: MIT
// Package core: Graph method implementations.
//
// Mutations take the write lock, queries the read lock. Every enumeration is
// sorted by node name so callers never observe map iteration order.

package core

import (
	"fmt"
	"sort"
)

// AddNode inserts a node with the given name if it is missing.
// Returns ErrEmptyNodeName if name is empty. Adding an existing node is a
// no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddNode(name string) error {
	if name == "" {
		return ErrEmptyNodeName
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(name)

	return nil
}

// ensureNode returns the node for name, creating it if needed.
// Caller must hold the write lock.
func (g *Graph) ensureNode(name string) *Node {
	n, ok := g.nodes[name]
	if !ok {
		n = &Node{Name: name, links: make(map[string]int64)}
		g.nodes[name] = n
	}

	return n
}

// AddEdge connects a and b with an undirected edge of the given weight,
// creating either endpoint if it does not exist yet. Both endpoints record
// the other as adjacent with the same weight. Adding an edge that already
// exists overwrites its weight.
//
// Errors:
//   - ErrEmptyNodeName if a or b is empty.
//   - ErrLoopNotAllowed if a == b.
//   - ErrNegativeWeight if weight < 0.
//   - ErrWeightTooLarge if weight > MaxWeight.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string, weight int64) error {
	if a == "" || b == "" {
		return ErrEmptyNodeName
	}
	if a == b {
		return fmt.Errorf("%w: %s", ErrLoopNotAllowed, a)
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s-%s weight=%d", ErrNegativeWeight, a, b, weight)
	}
	if weight > MaxWeight {
		return fmt.Errorf("%w: %s-%s weight=%d", ErrWeightTooLarge, a, b, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	na, nb := g.ensureNode(a), g.ensureNode(b)
	if _, exists := na.links[b]; !exists {
		g.edges++
	}
	na.links[b] = weight
	nb.links[a] = weight

	return nil
}

// HasNode reports whether a node with the given name exists.
func (g *Graph) HasNode(name string) bool {
	if name == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[name]

	return ok
}

// HasEdge reports whether a and b are adjacent.
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.Weight(a, b)

	return ok
}

// Weight returns the weight of the edge a–b and whether it exists.
func (g *Graph) Weight(a, b string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[a]
	if !ok {
		return 0, false
	}
	w, ok := n.links[b]

	return w, ok
}

// Node returns the node with the given name.
func (g *Graph) Node(name string) (*Node, error) {
	if name == "" {
		return nil, ErrEmptyNodeName
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}

	return n, nil
}

// Nodes returns all node names sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	names := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Neighbors returns the links of the named node sorted by neighbor name.
// Complexity: O(d log d) where d is the node degree.
func (g *Graph) Neighbors(name string) ([]Link, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}
	out := make([]Link, 0, len(n.links))
	for to, w := range n.links {
		out = append(out, Link{To: to, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// Edges returns every undirected edge once, with From < To, sorted by
// (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edges)
	for from, n := range g.nodes {
		for to, w := range n.links {
			if from < to {
				out = append(out, Edge{From: from, To: to, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}
