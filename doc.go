// Package gbacent scores the nodes of a molecular interaction network by
// guilt-by-association: network proximity to a seed set of nodes already
// known to be associated with a phenotype raises a node's own score.
//
// 🚀 What is gbacent?
//
//	A propagation engine for disease-gene prioritization that walks the
//	interactome along bounded-depth non-backtracking walks:
//		• core/     — immutable dense-index graph model, built once per run
//		• nbwalk/   — half-edge dynamic programming over walk depths
//		• gbascore/ — attenuation, hub normalization, per-node aggregation
//		• sif/      — SIF network and seed-list parsing, TSV score output
//		• cmd/gbacent — the command-line front end
//
// ✨ Why non-backtracking?
//
//   - A walk that immediately reverses its last edge carries no new
//     association signal; forbidding the reversal removes the dominant
//     echo term without enumerating individual walks.
//   - The half-edge recurrence keeps every depth layer at O(E) work, so
//     interactomes of 10⁴–10⁵ nodes score in memory, deterministically.
//
// Quick ASCII example (seed A, alpha 0.5, d_max 2):
//
//	    A───B
//	    │   │        score(B) = score(C) = 0.50000
//	    C───D        score(D) = 0.25000
//
// See gbascore.Score for the entry point, and cmd/gbacent for the CLI.
package gbacent
