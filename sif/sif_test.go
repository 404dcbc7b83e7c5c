package sif_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gbacent/core"
	"github.com/katalvlaran/gbacent/gbascore"
	"github.com/katalvlaran/gbacent/sif"
)

// ------------------------------------------------------------------------
// Network reading.
// ------------------------------------------------------------------------

func TestReadNetwork_UnweightedMarkers(t *testing.T) {
	in := "ENSG1\tpp\tENSG2\nENSG2\tpp\tENSG3\n"
	records, err := sif.ReadNetwork(strings.NewReader(in), false)
	require.NoError(t, err)
	require.Len(t, records, 2)
	// Markers are opaque; every record carries weight 1.
	for _, rec := range records {
		require.Equal(t, 1.0, rec.Weight)
	}
	require.Equal(t, core.EdgeRecord{From: "ENSG1", To: "ENSG2", Weight: 1}, records[0])
}

func TestReadNetwork_WeightedParsesMiddleField(t *testing.T) {
	in := "A\t0.25\tB\nB\t1.0\tC\n"
	records, err := sif.ReadNetwork(strings.NewReader(in), true)
	require.NoError(t, err)
	require.Equal(t, 0.25, records[0].Weight)
	require.Equal(t, 1.0, records[1].Weight)
}

func TestReadNetwork_SkipsBlankLines(t *testing.T) {
	in := "A\tpp\tB\n\n\nB\tpp\tC\n"
	records, err := sif.ReadNetwork(strings.NewReader(in), false)
	require.NoError(t, err)
	require.Len(t, records, 2)
}

func TestReadNetwork_BadArity(t *testing.T) {
	cases := []string{
		"A\tpp\n",           // 2 fields
		"A\n",               // 1 field
		"A\tpp\tB\textra\n", // 4 fields
		"A\tpp\tB\nC\tpp\n", // bad line after a good one
	}
	for _, in := range cases {
		_, err := sif.ReadNetwork(strings.NewReader(in), false)
		require.ErrorIsf(t, err, sif.ErrMalformedLine, "input %q", in)
	}
}

func TestReadNetwork_WeightedRejectsMarkerAndRange(t *testing.T) {
	// In weighted mode a marker string is a format violation...
	_, err := sif.ReadNetwork(strings.NewReader("A\tpp\tB\n"), true)
	require.ErrorIs(t, err, sif.ErrMalformedLine)

	// ...and so is a numeric weight outside (0,1].
	for _, in := range []string{"A\t0\tB\n", "A\t-0.5\tB\n", "A\t1.5\tB\n"} {
		_, err := sif.ReadNetwork(strings.NewReader(in), true)
		require.ErrorIsf(t, err, sif.ErrMalformedLine, "input %q", in)
	}
}

func TestReadNetwork_ErrorNamesLine(t *testing.T) {
	_, err := sif.ReadNetwork(strings.NewReader("A\tpp\tB\nbroken line\n"), false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2")
}

// ------------------------------------------------------------------------
// Seeds.
// ------------------------------------------------------------------------

func TestReadSeeds(t *testing.T) {
	in := "GENE1\n\n  GENE2  \nGENE3\n"
	names, err := sif.ReadSeeds(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []string{"GENE1", "GENE2", "GENE3"}, names)
}

func TestResolveSeeds_DropsUnknownAndDeduplicates(t *testing.T) {
	g, err := core.Build([]core.EdgeRecord{
		{From: "A", To: "B"},
		{From: "B", To: "C"},
	})
	require.NoError(t, err)

	seeds, dropped := sif.ResolveSeeds(g, []string{"B", "NOPE", "A", "B", "ALSO_NOPE"})
	a, _ := g.IndexOf("A")
	b, _ := g.IndexOf("B")
	require.Equal(t, []int{b, a}, seeds, "first-occurrence order, duplicates collapsed")
	require.Equal(t, []string{"NOPE", "ALSO_NOPE"}, dropped)
}

func TestResolveSeeds_AllUnknown(t *testing.T) {
	g, err := core.Build([]core.EdgeRecord{{From: "A", To: "B"}})
	require.NoError(t, err)
	seeds, dropped := sif.ResolveSeeds(g, []string{"X", "Y"})
	require.Empty(t, seeds)
	require.Len(t, dropped, 2)
	// The empty resolved set is the scorer's call to reject, not ours.
	_, scoreErr := gbascore.Score(g, seeds)
	require.ErrorIs(t, scoreErr, gbascore.ErrEmptySeeds)
}

// ------------------------------------------------------------------------
// Score output.
// ------------------------------------------------------------------------

func TestWriteScores_EveryNodeOnceInOrder(t *testing.T) {
	g, err := core.Build([]core.EdgeRecord{
		{From: "A", To: "B"},
		{From: "A", To: "C"},
		{From: "B", To: "D"},
		{From: "C", To: "D"},
	})
	require.NoError(t, err)

	seed, _ := g.IndexOf("A")
	scores, err := gbascore.Score(g, []int{seed},
		gbascore.WithAlpha(0.5), gbascore.WithMaxDepth(2))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, sif.WriteScores(&sb, g, scores))

	want := "NODE\tSCORE\n" +
		"A\t0.00000\n" +
		"B\t0.50000\n" +
		"C\t0.50000\n" +
		"D\t0.25000\n"
	require.Equal(t, want, sb.String())
}

// TestRoundTrip exercises the full boundary: SIF in, scores out.
func TestRoundTrip(t *testing.T) {
	network := "A\tpp\tB\nA\tpp\tC\nB\tpp\tD\nC\tpp\tD\n"
	records, err := sif.ReadNetwork(strings.NewReader(network), false)
	require.NoError(t, err)
	g, err := core.Build(records)
	require.NoError(t, err)

	names, err := sif.ReadSeeds(strings.NewReader("A\nUNKNOWN\n"))
	require.NoError(t, err)
	seeds, dropped := sif.ResolveSeeds(g, names)
	require.Equal(t, []string{"UNKNOWN"}, dropped)

	scores, err := gbascore.Score(g, seeds,
		gbascore.WithAlpha(0.5), gbascore.WithMaxDepth(2))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, sif.WriteScores(&sb, g, scores))
	require.True(t, strings.HasPrefix(sb.String(), "NODE\tSCORE\n"))
	require.Contains(t, sb.String(), "D\t0.25000\n")
}
