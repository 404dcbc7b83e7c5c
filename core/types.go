// Package core defines the immutable Graph model used by all gbacent
// propagation code: a dense-index, weighted/directed multigraph built
// exactly once per run from an edge-record list.
//
// Unlike a mutable adjacency structure, a core.Graph is frozen after
// Build and is safe to share across any number of goroutines without
// locks. All hot-path work (the walk engine, the scorer) operates on
// dense integer indices and flat slices; external string identifiers
// are resolved through a bidirectional index built at load time.
//
// This file declares EdgeRecord, HalfEdge, Graph, the functional
// options, and the sentinel errors returned by Build.
//
// Errors:
//
//	ErrMalformedEdge - an edge record is structurally invalid.
//	ErrBadWeight     - a weight outside (0,1] on a weighted graph.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Build.
var (
	// ErrMalformedEdge indicates a structurally invalid edge record:
	// an empty endpoint identifier, or a weight that cannot be used.
	ErrMalformedEdge = errors.New("core: malformed edge record")

	// ErrBadWeight indicates a weight outside the half-open interval (0,1]
	// on a weighted graph. It wraps ErrMalformedEdge, so callers checking
	// errors.Is(err, ErrMalformedEdge) catch both.
	ErrBadWeight = fmt.Errorf("%w: weight outside (0,1]", ErrMalformedEdge)
)

// EdgeRecord is one finalized interaction handed to Build: an ordered
// pair of external node identifiers plus a weight.
//
// On an unweighted graph the Weight field is ignored and every stored
// edge carries weight 1. On a weighted graph it must lie in (0,1].
type EdgeRecord struct {
	// From is the source node identifier.
	From string

	// To is the destination node identifier.
	To string

	// Weight is the interaction confidence in (0,1] (weighted graphs only).
	Weight float64
}

// HalfEdge is one directed transition (current node → To) with its weight,
// as returned by Graph.OutHalfEdges. Self-loops never appear here: a
// non-backtracking walk cannot meaningfully traverse a self-loop, so
// loops are retained as graph data only (degrees, edge counts).
type HalfEdge struct {
	// To is the dense index of the destination node.
	To int

	// Weight is the transition weight in (0,1].
	Weight float64
}

// Option configures a Graph before it is built.
type Option func(*config)

// config collects Build-time flags; Graph copies them once and freezes.
type config struct {
	directed bool
	weighted bool
}

// WithDirected interprets record order as source→destination.
// Without it, every record is mirrored into two equal-weight half-edges.
func WithDirected() Option {
	return func(c *config) { c.directed = true }
}

// WithWeighted requires every record's Weight to be a float in (0,1].
// Without it, weights are forced to 1.
func WithWeighted() Option {
	return func(c *config) { c.weighted = true }
}

// Graph is the immutable, index-based interaction network.
//
// Node indices are dense ints in [0, NodeCount), assigned in order of
// first appearance in the record list; this order is stable for the run
// and drives deterministic output ordering.
//
// Non-loop transitions are stored as half-edges in a CSR layout:
// outStart[v]..outStart[v+1] index into heTo/heWeight, and heRev maps a
// half-edge (u,v) to its reverse (v,u) when the reverse exists (-1
// otherwise). Self-loops live only in loopOf and the degree arrays.
type Graph struct {
	directed bool
	weighted bool

	// Bidirectional external-id ↔ dense-index mapping.
	ids   []string
	index map[string]int

	// Degrees over all stored edges, self-loops included.
	inDeg  []int
	outDeg []int

	// Half-edge CSR over non-loop transitions.
	outStart []int // len NodeCount+1
	heFrom   []int
	heTo     []int
	heWeight []float64
	heRev    []int // reverse half-edge index, or -1

	// loopOf[v] holds the self-loop weight for v, if any.
	loopOf map[int]float64

	// edgeCount is the number of stored edges: each undirected record
	// contributes two half-edges, each self-loop one edge.
	edgeCount int
}
