package loader

import (
	"fmt"

	"github.com/pkg/errors"
)

// Record-level failures. A *ParseError wraps exactly one of these.
var (
	// ErrMissingWeight is a record with two names and no weight.
	ErrMissingWeight = errors.New("missing weight")

	// ErrBadWeight is a weight that is not a base-10 integer.
	ErrBadWeight = errors.New("weight is not an integer")

	// ErrNegativeWeight is a weight below zero.
	ErrNegativeWeight = errors.New("negative weight")

	// ErrWeightTooLarge is a weight above core.MaxWeight.
	ErrWeightTooLarge = errors.New("weight too large")

	// ErrTooManyFields is a record with more than three fields.
	ErrTooManyFields = errors.New("too many fields")

	// ErrSelfLoop is an edge from a node to itself.
	ErrSelfLoop = errors.New("edge from a node to itself")

	// ErrEmptyName is a YAML record with a missing endpoint name.
	ErrEmptyName = errors.New("empty node name")

	// ErrUnknownField is a YAML edge key other than from, to and weight.
	ErrUnknownField = errors.New("unknown edge field")
)

// ErrUnknownFormat is returned by Load for a file extension it cannot read.
var ErrUnknownFormat = errors.New("unknown graph file format")

// ParseError locates a malformed record in the input.
type ParseError struct {
	Source string // file name or "<stdin>"
	Line   int    // 1-based line of the record
	Record string // record text as read
	Err    error  // one of the Err* record sentinels
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v: %q", e.Source, e.Line, e.Err, e.Record)
}

// Unwrap exposes the record sentinel to errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }
