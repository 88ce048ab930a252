// SPDX-License-Identifier: MIT
// Package: rmatrix/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach context with %w:
//
//	fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (see WithSeed/WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadWeightRange indicates a weight range with min < 0 or max < min.
var ErrBadWeightRange = errors.New("builder: invalid weight range")

// ErrConstructFailed indicates that BuildGraph could not apply a constructor
// (e.g. a nil Constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
