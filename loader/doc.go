// Package loader reads and writes network topologies.
//
// Two encodings are supported. The edge list is plain text with one record
// per line:
//
//	# comment
//	A B 1
//	B C 2
//	D          <- isolated node
//
// and the YAML Topology document (files ending in .yaml or .yml):
//
//	nodes: [D]
//	edges:
//	  - {from: A, to: B, weight: 1}
//
// Malformed records fail the whole load with a *ParseError that names the
// source, the line and the record, and wraps one of ErrMissingWeight,
// ErrBadWeight, ErrNegativeWeight, ErrTooManyFields, ErrSelfLoop or
// ErrEmptyName. A repeated edge keeps the last weight and logs a warning.
package loader
