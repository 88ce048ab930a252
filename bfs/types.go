package bfs

import (
	"context"
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start node is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Option configures a traversal.
type Option func(*options)

type options struct {
	ctx context.Context
}

// WithContext makes the traversal stop with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Result is the outcome of one traversal.
//   - Order: nodes in visit sequence, the start first.
//   - Depth: hop count from the start for every visited node.
type Result struct {
	Order []string
	Depth map[string]int
}

// Eccentricity returns the largest hop count from the start, 0 for a lone
// start node.
func (r *Result) Eccentricity() int {
	hops := 0
	for _, d := range r.Depth {
		if d > hops {
			hops = d
		}
	}

	return hops
}
