// Package dijkstra defines core types and configuration options
// for the single-source shortest-path engine.
//
// Options:
//
//	– Source:   name of the starting node (must be non-empty and present in the graph).
//	– Strategy: how the next frontier node is selected (linear scan or binary heap).
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source name is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrNodeNotFound    if the source node does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
//	– ErrWeightTooLarge  if some shortest path could reach Infinity.
//	– ErrForeignState    if a State is run on an Engine that did not create it.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the engine.
var (
	// ErrEmptySource indicates that the provided source node name is empty.
	ErrEmptySource = errors.New("dijkstra: source node name is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to the engine.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that a node is not part of the engine's graph.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrWeightTooLarge indicates edge weights large enough that a shortest
	// path could total Infinity, which would read as "unreachable".
	ErrWeightTooLarge = errors.New("dijkstra: edge weights can overflow path distances")

	// ErrForeignState indicates a State created by another Engine.
	ErrForeignState = errors.New("dijkstra: state belongs to a different engine")
)

// Infinity is the distance of a node not (yet) reachable from the source.
const Infinity int64 = math.MaxInt64

// PredKind tags the predecessor slot of a node.
type PredKind uint8

const (
	// PredNone means no path to the node has been established.
	PredNone PredKind = iota

	// PredOrigin marks the source node itself.
	PredOrigin

	// PredNode means Predecessor.Node holds the previous node on the shortest path.
	PredNode
)

// String implements fmt.Stringer.
func (k PredKind) String() string {
	switch k {
	case PredOrigin:
		return "origin"
	case PredNode:
		return "node"
	default:
		return "none"
	}
}

// Predecessor is the tagged predecessor of a node after a run.
// Node is only meaningful when Kind == PredNode.
type Predecessor struct {
	Kind PredKind
	Node string
}

// Strategy selects how the engine picks the next frontier node.
type Strategy int

const (
	// StrategyScan scans the frontier linearly for the minimum: O(V²) overall.
	StrategyScan Strategy = iota

	// StrategyHeap keeps the frontier in a lazy binary heap: O((V+E) log V).
	StrategyHeap
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	if s == StrategyHeap {
		return "heap"
	}

	return "scan"
}

// ParseStrategy maps "scan" or "heap" to a Strategy.
func ParseStrategy(name string) (Strategy, bool) {
	switch name {
	case "scan", "":
		return StrategyScan, true
	case "heap":
		return StrategyHeap, true
	default:
		return StrategyScan, false
	}
}

// Options configures the engine.
type Options struct {
	Source   string   // The name of the source node
	Strategy Strategy // Frontier selection strategy
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// Source sets the starting node. Required by Dijkstra; ignored by NewEngine,
// whose runs receive the source explicitly.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithStrategy sets the frontier selection strategy.
// Both strategies produce identical distances and predecessors.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// DefaultOptions returns Options for the given source with the scan strategy.
func DefaultOptions(source string) Options {
	return Options{
		Source:   source,
		Strategy: StrategyScan,
	}
}
