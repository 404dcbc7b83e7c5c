package gbascore

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/gbacent/core"
	"github.com/katalvlaran/gbacent/nbwalk"
)

// Score computes one guilt-by-association score per graph node:
//
//	score(v) = Σ_{t=1..MaxDepth} alpha^t · Σ_{half-edges ending at v} flow[t]
//
// where flow[t] is the nbwalk depth-t non-backtracking layer seeded from
// the given node indices. Seeds are not excluded from scoring — they may
// receive contributions from other seeds — but never receive
// self-propagation credit: no walk of length ≥ 1 returns to its start
// without its final step reversing the step that left.
//
// Validation (in order, all before any computation):
//  1. g must be non-nil (ErrNilGraph).
//  2. Alpha must lie in the open interval (0,1) (ErrBadAlpha).
//  3. MaxDepth must be ≥ 0 (ErrBadDepth); MaxDepth == 0 is a valid
//     no-op returning the all-zero vector.
//  4. seeds must be non-empty (ErrEmptySeeds) and every index must be a
//     graph node (ErrSeedOutOfRange).
//
// Directed graphs may leave nodes unreachable from every seed in the
// stored direction; those legitimately score exactly 0.0.
//
// Determinism: two calls with identical graph, seeds, and options return
// bit-identical vectors, for any worker count.
//
// Complexity: O(MaxDepth · E) time, O(V + E) space.
func Score(g *core.Graph, seeds []int, opts ...Option) (ScoreVector, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Graph presence.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Attenuation coefficient: strictly decaying influence requires
	//    the open interval.
	if !(cfg.Alpha > 0 && cfg.Alpha < 1) {
		return nil, fmt.Errorf("%w: got %g", ErrBadAlpha, cfg.Alpha)
	}

	// 3) Propagation bound.
	if cfg.MaxDepth < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDepth, cfg.MaxDepth)
	}

	// 4) Seed set.
	if len(seeds) == 0 {
		return nil, ErrEmptySeeds
	}
	for i, s := range seeds {
		if s < 0 || s >= g.NodeCount() {
			return nil, fmt.Errorf("%w: seeds[%d] = %d, graph has %d nodes",
				ErrSeedOutOfRange, i, s, g.NodeCount())
		}
	}

	scores := make(ScoreVector, g.NodeCount())
	if cfg.MaxDepth == 0 {
		// No propagation: every node, seeds included, scores exactly 0.
		return scores, nil
	}

	eng, err := nbwalk.NewEngine(g,
		nbwalk.WithNormPolicy(cfg.NormPolicy),
		nbwalk.WithNormExponent(cfg.NormExponent),
		nbwalk.WithWorkers(workersOrDefault(cfg.Workers)),
	)
	if err != nil {
		return nil, err
	}

	// Depth loop: each layer is a frozen snapshot; collapse it onto
	// destination nodes and fold in with the current alpha power.
	flow := eng.SeedFlow(seeds)
	attenuation := cfg.Alpha
	for t := 1; ; t++ {
		floats.AddScaled(scores, attenuation, eng.NodeTotals(flow))
		if t == cfg.MaxDepth {
			break
		}
		flow = eng.Step(flow)
		attenuation *= cfg.Alpha
	}

	return scores, nil
}

// workersOrDefault maps the zero value of Options.Workers onto the
// engine default, so literal Options structs keep working.
func workersOrDefault(n int) int {
	if n < 1 {
		return nbwalk.DefaultWorkers
	}
	return n
}
