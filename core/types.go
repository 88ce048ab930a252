// SPDX-License-Identifier: MIT
// This file declares Node, Link, Edge, Graph, sentinel errors, and the
// NewGraph constructor.
package core

import (
	"errors"
	"math"
	"strings"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeName indicates that a node name is the empty string.
	ErrEmptyNodeName = errors.New("core: node name is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates an edge from a node to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrWeightTooLarge indicates an edge weight above MaxWeight.
	ErrWeightTooLarge = errors.New("core: edge weight too large")
)

// MaxWeight is the largest weight an edge may carry. math.MaxInt64 stays
// free to mean "no path" in distance tables.
const MaxWeight int64 = math.MaxInt64 - 1

// Node is a named vertex of the network.
//
// links maps each adjacent node name to the weight of the connecting edge.
// It is populated on both endpoints by Graph.AddEdge and never exposed
// directly; use Graph.Neighbors for a sorted snapshot.
type Node struct {
	// Name uniquely identifies the node within its Graph.
	Name string

	links map[string]int64
}

// Degree returns the number of adjacent nodes.
func (n *Node) Degree() int { return len(n.links) }

// CompareNodes orders nodes by name. It is the ordering used for the
// rows and columns of a routing table.
func CompareNodes(a, b *Node) int { return strings.Compare(a.Name, b.Name) }

// Link is one adjacency entry as seen from a node: the neighbor's name and
// the weight of the edge leading to it.
type Link struct {
	To     string
	Weight int64
}

// Edge is an undirected edge reported once, with From < To by name.
type Edge struct {
	From   string
	To     string
	Weight int64
}

// Graph is an undirected weighted network topology.
//
// mu guards nodes and every Node.links map. edges counts undirected edges.
type Graph struct {
	mu    sync.RWMutex
	nodes map[string]*Node
	edges int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}
