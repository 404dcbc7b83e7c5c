package core

import (
	"fmt"
)

// Build constructs an immutable Graph from a finalized edge-record list.
//
// Validation (fail-fast, before any structure is committed):
//  1. Every record must carry non-empty From and To identifiers
//     (ErrMalformedEdge).
//  2. On a weighted graph, every Weight must lie in (0,1] (ErrBadWeight).
//
// Semantics:
//
//   - Node indices are assigned densely in order of first appearance,
//     scanning each record From before To.
//   - On an unweighted graph every stored edge carries weight 1.
//   - On an undirected graph each record is stored as two equal-weight
//     half-edges u→v and v→u; a record (v,u) is the same edge as (u,v).
//   - Duplicate parallel edges are resolved last-write-wins: the final
//     occurrence's weight stands for both half-edges, and the edge keeps
//     its original position in iteration order. Weights are never summed.
//   - Self-loops are stored once, count 1 toward both in- and out-degree,
//     and are excluded from the half-edge transition space.
//
// Complexity: O(V + E) time and space.
func Build(records []EdgeRecord, opts ...Option) (*Graph, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{
		directed: cfg.directed,
		weighted: cfg.weighted,
		index:    make(map[string]int, len(records)),
		loopOf:   make(map[int]float64),
	}

	// pairPos remembers, per ordered (from,to) pair, the slot in the
	// provisional half-edge list; last-write-wins updates it in place.
	type pair struct{ from, to int }
	pairPos := make(map[pair]int, 2*len(records))

	var provFrom, provTo []int
	var provWeight []float64

	// intern maps an external id to its dense index, assigning on first use.
	intern := func(id string) int {
		if idx, ok := g.index[id]; ok {
			return idx
		}
		idx := len(g.ids)
		g.index[id] = idx
		g.ids = append(g.ids, id)
		return idx
	}

	// store records one directed half-edge, overwriting a duplicate's weight.
	store := func(from, to int, w float64) {
		p := pair{from, to}
		if pos, ok := pairPos[p]; ok {
			provWeight[pos] = w
			return
		}
		pairPos[p] = len(provFrom)
		provFrom = append(provFrom, from)
		provTo = append(provTo, to)
		provWeight = append(provWeight, w)
	}

	for i, rec := range records {
		if rec.From == "" || rec.To == "" {
			return nil, fmt.Errorf("%w: record %d has an empty endpoint", ErrMalformedEdge, i)
		}
		w := 1.0
		if cfg.weighted {
			w = rec.Weight
			if !(w > 0 && w <= 1) {
				return nil, fmt.Errorf("%w: record %d (%s→%s) weight=%g", ErrBadWeight, i, rec.From, rec.To, w)
			}
		}

		u := intern(rec.From)
		v := intern(rec.To)

		if u == v {
			// Self-loop: graph data only, never a transition.
			if _, seen := g.loopOf[u]; !seen {
				g.edgeCount++
			}
			g.loopOf[u] = w
			continue
		}

		store(u, v, w)
		if !cfg.directed {
			// Mirror; (v,u) hits the same last-write-wins slot if it exists.
			store(v, u, w)
		}
	}

	g.freeze(provFrom, provTo, provWeight)
	return g, nil
}

// freeze lays the provisional half-edge list out as CSR, fills degree
// arrays, and resolves reverse-twin indices. After freeze the Graph is
// immutable.
func (g *Graph) freeze(from, to []int, weight []float64) {
	n := len(g.ids)
	h := len(from)
	g.inDeg = make([]int, n)
	g.outDeg = make([]int, n)
	g.outStart = make([]int, n+1)
	g.heFrom = make([]int, h)
	g.heTo = make([]int, h)
	g.heWeight = make([]float64, h)
	g.heRev = make([]int, h)
	g.edgeCount += h

	// Degrees: every half-edge, plus self-loops once on each side.
	for i := 0; i < h; i++ {
		g.outDeg[from[i]]++
		g.inDeg[to[i]]++
	}
	for v := range g.loopOf {
		g.outDeg[v]++
		g.inDeg[v]++
	}

	// CSR bucket offsets from non-loop out-degrees.
	for i := 0; i < h; i++ {
		g.outStart[from[i]+1]++
	}
	for v := 1; v <= n; v++ {
		g.outStart[v] += g.outStart[v-1]
	}

	// Stable fill: scanning the provisional list in order preserves
	// insertion order within each node's CSR range.
	cursor := make([]int, n)
	copy(cursor, g.outStart[:n])
	slot := make(map[[2]int]int, h)
	for i := 0; i < h; i++ {
		pos := cursor[from[i]]
		cursor[from[i]]++
		g.heFrom[pos] = from[i]
		g.heTo[pos] = to[i]
		g.heWeight[pos] = weight[i]
		slot[[2]int{from[i], to[i]}] = pos
	}

	// Reverse twins: (u,v) ↔ (v,u), -1 when the opposite direction
	// was never stored (directed graphs only).
	for pos := 0; pos < h; pos++ {
		rev, ok := slot[[2]int{g.heTo[pos], g.heFrom[pos]}]
		if !ok {
			rev = -1
		}
		g.heRev[pos] = rev
	}
}
