package nbwalk

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gbacent/core"
)

// Engine is a depth-bounded non-backtracking walk propagator bound to a
// single frozen graph. It precomputes one divisor per node from the
// configured normalization policy; after that every Step is pure
// arithmetic over the half-edge space and cannot fail.
//
// An Engine holds no mutable state between calls and is safe for
// concurrent use, provided each call owns its flow slices.
type Engine struct {
	g       *core.Graph
	norm    []float64 // per-node divisor, ≥ 1
	workers int
}

// NewEngine builds an Engine over g.
//
// Preconditions:
//  1. g must be non-nil (ErrNilGraph).
//
// Complexity: O(V) time and space.
func NewEngine(g *core.Graph, opts ...Option) (*Engine, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	n := g.NodeCount()
	norm := make([]float64, n)
	for v := 0; v < n; v++ {
		var deg int
		switch cfg.NormPolicy {
		case NormOutDegree:
			deg = g.OutDegree(v)
		case NormNone:
			deg = 1
		default: // NormInDegree
			deg = g.InDegree(v)
		}
		// Zero degree never divides: isolated departure points simply
		// pass flow through un-normalized.
		if deg < 1 {
			deg = 1
		}
		d := float64(deg)
		if cfg.NormExponent != 1 {
			d = math.Pow(d, cfg.NormExponent)
		}
		norm[v] = d
	}

	return &Engine{g: g, norm: norm, workers: cfg.Workers}, nil
}

// SeedFlow returns the depth-1 flow layer: for every seed s and outgoing
// half-edge (s,v), flow[(s,v)] += weight(s,v). Contributions from
// distinct seeds are additive; a repeated seed index contributes twice.
//
// Precondition: every seed index lies in [0, NodeCount) — callers
// (gbascore) validate before any computation starts.
//
// Complexity: O(Σ deg(s)) time, O(E) space for the layer.
func (e *Engine) SeedFlow(seeds []int) []float64 {
	flow := make([]float64, e.g.HalfEdgeCount())
	for _, s := range seeds {
		lo, hi := e.g.OutRange(s)
		for h := lo; h < hi; h++ {
			_, _, w := e.g.HalfEdge(h)
			flow[h] += w
		}
	}
	return flow
}

// Step derives the depth t+1 layer from the frozen depth-t layer.
//
// The returned slice is freshly allocated; prev is never written, so a
// caller may retain every depth as an immutable snapshot and share them
// across goroutines freely.
//
// A node with no continuation satisfying the non-backtracking constraint
// contributes nothing further — zero propagation, not an error.
//
// Complexity: O(E) time per call, split across the configured workers.
func (e *Engine) Step(prev []float64) []float64 {
	h := e.g.HalfEdgeCount()

	// Total inflow per node, fixed accumulation order for determinism.
	totalIn := make([]float64, e.g.NodeCount())
	for i := 0; i < h; i++ {
		_, to, _ := e.g.HalfEdge(i)
		totalIn[to] += prev[i]
	}

	next := make([]float64, h)
	if e.workers <= 1 || h < e.workers {
		e.stepRange(prev, totalIn, next, 0, h)
		return next
	}

	// Partition the half-edge space; each slot is written by exactly one
	// worker reading only frozen inputs, so no two goroutines share a
	// mutable word and the result is independent of scheduling.
	var grp errgroup.Group
	chunk := (h + e.workers - 1) / e.workers
	for lo := 0; lo < h; lo += chunk {
		lo, hi := lo, lo+chunk
		if hi > h {
			hi = h
		}
		grp.Go(func() error {
			e.stepRange(prev, totalIn, next, lo, hi)
			return nil
		})
	}
	_ = grp.Wait() // merge barrier; workers cannot fail
	return next
}

// stepRange fills next[lo:hi] with the non-backtracking recurrence:
// next[(v,w)] = (totalIn(v) − prev[(w,v)]) · weight(v,w) / norm(v).
// Subtracting the reverse twin's flow removes exactly the walks that
// arrived over (w,v) and would backtrack; the difference is never
// negative under round-to-nearest since totalIn(v) includes that addend.
func (e *Engine) stepRange(prev, totalIn, next []float64, lo, hi int) {
	for h2 := lo; h2 < hi; h2++ {
		from, _, w := e.g.HalfEdge(h2)
		inflow := totalIn[from]
		if r := e.g.Reverse(h2); r >= 0 {
			inflow -= prev[r]
		}
		if inflow != 0 {
			next[h2] = inflow * w / e.norm[from]
		}
	}
}

// NodeTotals collapses a flow layer onto destination nodes by summation:
// totals[v] = Σ over half-edges ending at v. Accumulation order is the
// half-edge index order, so results are bit-deterministic.
//
// Complexity: O(E) time, O(V) space.
func (e *Engine) NodeTotals(flow []float64) []float64 {
	totals := make([]float64, e.g.NodeCount())
	for h := 0; h < len(flow); h++ {
		_, to, _ := e.g.HalfEdge(h)
		totals[to] += flow[h]
	}
	return totals
}
