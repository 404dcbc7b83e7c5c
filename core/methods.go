package core

// This file exposes the read-only accessors of a frozen Graph.
// Every method is safe for concurrent use: a Graph is never mutated
// after Build returns it.

// Directed reports whether record order was interpreted as source→destination.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether numeric weights in (0,1] were required.
func (g *Graph) Weighted() bool { return g.weighted }

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.ids) }

// EdgeCount returns the number of stored directed edges: an undirected
// record contributes two, a self-loop one. Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// HalfEdgeCount returns the size of the non-loop half-edge space the
// walk engine propagates over. Complexity: O(1).
func (g *Graph) HalfEdgeCount() int { return len(g.heTo) }

// IndexOf resolves an external identifier to its dense index.
// The second return is false when the identifier is not in the graph.
// Complexity: O(1).
func (g *Graph) IndexOf(id string) (int, bool) {
	idx, ok := g.index[id]
	return idx, ok
}

// IDOf returns the external identifier of a dense index.
// Precondition: 0 ≤ idx < NodeCount. Complexity: O(1).
func (g *Graph) IDOf(idx int) string { return g.ids[idx] }

// Nodes returns every external identifier in insertion order — the
// deterministic iteration order for stable output. The returned slice
// is a copy. Complexity: O(V).
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)
	return out
}

// InDegree returns the number of stored edges ending at node idx,
// self-loop included. Complexity: O(1).
func (g *Graph) InDegree(idx int) int { return g.inDeg[idx] }

// OutDegree returns the number of stored edges leaving node idx,
// self-loop included. Complexity: O(1).
func (g *Graph) OutDegree(idx int) int { return g.outDeg[idx] }

// HasSelfLoop reports whether node idx carries a self-loop.
// Complexity: O(1).
func (g *Graph) HasSelfLoop(idx int) bool {
	_, ok := g.loopOf[idx]
	return ok
}

// OutRange returns the half-edge index range [lo, hi) of node idx's
// outgoing non-loop transitions. Complexity: O(1).
func (g *Graph) OutRange(idx int) (lo, hi int) {
	return g.outStart[idx], g.outStart[idx+1]
}

// HalfEdge returns the endpoints and weight of half-edge h.
// Precondition: 0 ≤ h < HalfEdgeCount. Complexity: O(1).
func (g *Graph) HalfEdge(h int) (from, to int, weight float64) {
	return g.heFrom[h], g.heTo[h], g.heWeight[h]
}

// Reverse returns the index of the half-edge opposite to h — the
// transition h's walk would have to take to backtrack — or -1 when no
// opposite direction is stored. Complexity: O(1).
func (g *Graph) Reverse(h int) int { return g.heRev[h] }

// OutHalfEdges returns node idx's outgoing transitions (destination and
// weight, insertion order) as a fresh slice. Self-loops never appear.
// Complexity: O(deg(idx)).
func (g *Graph) OutHalfEdges(idx int) []HalfEdge {
	lo, hi := g.OutRange(idx)
	out := make([]HalfEdge, 0, hi-lo)
	for h := lo; h < hi; h++ {
		out = append(out, HalfEdge{To: g.heTo[h], Weight: g.heWeight[h]})
	}
	return out
}
