// Command rmatrix computes the routing matrix of a weighted, undirected
// network: for every source node and every destination, the first hop on a
// shortest path and the total path cost.
//
// Usage:
//
//	rmatrix [-i input] [-o output] [-c config.toml] [-f text|yaml]
//	        [-w workers] [--engine scan|heap] [--verify] [-q] [-v] [--log-file path]
//	rmatrix generate --kind grid|path|cycle|star|complete|random [-n N] [-o file]
//
// Input is an edge list ("A B 1" per line) or a YAML topology. The matrix is
// printed to stdout and written to the output file:
//
//	               A         B         C
//	----------------------------------------
//	A         |    self      (B,1)     (B,3)
//	B         |    (A,1)     self      (C,2)
//	C         |    (B,3)     (B,2)     self
//
// Packages:
//
//	core      – undirected weighted graph (thread-safe reads)
//	dijkstra  – single-source engine with reusable run state
//	routing   – all-pairs first-hop table, parallel build, Floyd–Warshall check
//	matrix    – dense int64 distance matrix and Floyd–Warshall closure
//	loader    – edge-list and YAML readers/writers
//	render    – text grid and YAML output
//	builder   – deterministic topology generators
//	config    – TOML configuration and validation
//	logging   – logrus + lumberjack setup
//	cmd       – cobra commands
package main
