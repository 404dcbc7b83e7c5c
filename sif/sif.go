// Package sif reads and writes the textual boundary formats of gbacent:
// SIF interaction networks, seed lists, and the two-column score table.
//
// A SIF network file carries one interaction per line as three
// tab-separated fields: node1, marker-or-weight, node2. In weighted mode
// the middle field must parse as a float in (0,1]; otherwise any literal
// interaction-type marker (for example "pp") means weight 1.
//
// Format violations are fatal and reported with a line number before any
// computation starts. Unresolved seed identifiers, by contrast, are
// recoverable: ResolveSeeds drops them and hands the caller the list to
// warn about.
//
// Errors (sentinel):
//
//	ErrMalformedLine - a network line with wrong arity or a bad weight.
package sif

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/gbacent/core"
	"github.com/katalvlaran/gbacent/gbascore"
)

// ErrMalformedLine indicates a network record with the wrong number of
// tab-separated fields, or a middle field that does not parse as a
// weight in (0,1] in weighted mode.
var ErrMalformedLine = errors.New("sif: malformed network line")

// maxLineBytes bounds a single input line; interactome rows are short,
// but identifier dumps from upstream pipelines occasionally are not.
const maxLineBytes = 1 << 20

// ReadNetwork parses a SIF stream into edge records.
//
// weighted selects the interpretation of the middle field: a float in
// (0,1] when true, an ignored interaction-type marker (weight 1) when
// false. Blank lines are skipped. The first malformed line aborts the
// whole read with an ErrMalformedLine-wrapped error naming the line.
//
// Complexity: O(bytes read).
func ReadNetwork(r io.Reader, weighted bool) ([]core.EdgeRecord, error) {
	var records []core.EdgeRecord

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r\n")
		if line == "" {
			continue
		}

		node1, rest, ok1 := strings.Cut(line, "\t")
		field2, node2, ok2 := strings.Cut(rest, "\t")
		if !ok1 || !ok2 || strings.ContainsRune(node2, '\t') {
			return nil, fmt.Errorf("%w: line %d is not 3 tab-separated fields", ErrMalformedLine, lineNo)
		}

		weight := 1.0
		if weighted {
			w, err := strconv.ParseFloat(field2, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d weight %q is not a number", ErrMalformedLine, lineNo, field2)
			}
			if !(w > 0 && w <= 1) {
				return nil, fmt.Errorf("%w: line %d weight %g outside (0,1]", ErrMalformedLine, lineNo, w)
			}
			weight = w
		}

		records = append(records, core.EdgeRecord{From: node1, To: node2, Weight: weight})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("sif: reading network: %w", err)
	}

	return records, nil
}

// ReadSeeds parses a seed stream: one external identifier per line,
// surrounding whitespace trimmed, blank lines skipped. Resolution
// against a graph is a separate step (ResolveSeeds).
func ReadSeeds(r io.Reader) ([]string, error) {
	var names []string

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		name := strings.TrimSpace(sc.Text())
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("sif: reading seeds: %w", err)
	}

	return names, nil
}

// ResolveSeeds maps seed identifiers onto dense node indices.
//
// Identifiers absent from the graph are dropped into the second return
// value for the caller to warn about — never fatal here. Repeated
// identifiers resolve once, keeping first-occurrence order. The scorer
// rejects the run (gbascore.ErrEmptySeeds) if nothing resolves.
func ResolveSeeds(g *core.Graph, names []string) (seeds []int, dropped []string) {
	seen := make(map[int]struct{}, len(names))
	for _, name := range names {
		idx, ok := g.IndexOf(name)
		if !ok {
			dropped = append(dropped, name)
			continue
		}
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}
		seeds = append(seeds, idx)
	}
	return seeds, dropped
}

// WriteScores emits the final score table: a NODE/SCORE header, then one
// tab-separated row per graph node in the graph's deterministic
// insertion order — every node exactly once, unreachable ones included
// with their exact 0.00000.
func WriteScores(w io.Writer, g *core.Graph, scores gbascore.ScoreVector) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("NODE\tSCORE\n"); err != nil {
		return fmt.Errorf("sif: writing scores: %w", err)
	}
	for i, id := range g.Nodes() {
		if _, err := fmt.Fprintf(bw, "%s\t%.5f\n", id, scores[i]); err != nil {
			return fmt.Errorf("sif: writing scores: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("sif: writing scores: %w", err)
	}
	return nil
}
