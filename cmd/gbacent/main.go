// Command gbacent runs guilt-by-association network propagation over a
// SIF interaction network and prints one score per node.
//
// Usage:
//
//	gbacent --network interactome.sif --seeds causal.txt
//	gbacent --network interactome.sif --seeds causal.txt --alpha 0.3 --dmax 3
//	gbacent --network signed.sif --seeds causal.txt --weighted --directed
//
// The score table (two tab-separated columns, NODE and SCORE) goes to
// stdout; all diagnostics — parameter echo, node/edge counts,
// dropped-seed warnings — go to stderr, so the output stream stays
// clean for downstream tooling.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gbacent/core"
	"github.com/katalvlaran/gbacent/gbascore"
	"github.com/katalvlaran/gbacent/sif"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		networkPath string
		seedsPath   string
		alpha       float64
		dMax        int
		directed    bool
		weighted    bool
		workers     int
	)

	cmd := &cobra.Command{
		Use:   "gbacent",
		Short: "Score network nodes by proximity to a phenotype's seed genes",
		Long: `gbacent assigns every node of a molecular interaction network a score
reflecting its likelihood of association with a phenotype of interest,
propagated from a seed set of known-associated nodes along bounded-depth
non-backtracking walks with per-step attenuation and hub normalization.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			return run(logger, networkPath, seedsPath, alpha, dMax, directed, weighted, workers)
		},
	}

	cmd.Flags().StringVar(&networkPath, "network", "", "SIF network file: node1 TAB marker-or-weight TAB node2")
	cmd.Flags().StringVar(&seedsPath, "seeds", "", "seed file: one node identifier per line")
	cmd.Flags().Float64Var(&alpha, "alpha", gbascore.DefaultAlpha, "attenuation coefficient, open interval (0,1)")
	cmd.Flags().IntVar(&dMax, "dmax", gbascore.DefaultMaxDepth, "maximum propagation distance")
	cmd.Flags().BoolVar(&directed, "directed", false, "interpret records as source→destination")
	cmd.Flags().BoolVar(&weighted, "weighted", false, "require numeric weights in (0,1] in the second field")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "goroutines per propagation depth")
	_ = cmd.MarkFlagRequired("network")
	_ = cmd.MarkFlagRequired("seeds")

	return cmd
}

func run(logger *slog.Logger, networkPath, seedsPath string, alpha float64, dMax int, directed, weighted bool, workers int) error {
	logger.Info("parameters",
		"network", networkPath,
		"seeds", seedsPath,
		"alpha", alpha,
		"dmax", dMax,
		"directed", directed,
		"weighted", weighted,
		"workers", workers,
	)

	netFile, err := os.Open(networkPath)
	if err != nil {
		return fmt.Errorf("opening network file: %w", err)
	}
	defer netFile.Close()

	records, err := sif.ReadNetwork(netFile, weighted)
	if err != nil {
		return err
	}

	var buildOpts []core.Option
	if directed {
		buildOpts = append(buildOpts, core.WithDirected())
	}
	if weighted {
		buildOpts = append(buildOpts, core.WithWeighted())
	}
	g, err := core.Build(records, buildOpts...)
	if err != nil {
		return err
	}
	logger.Info("network built", "nodes", g.NodeCount(), "edges", g.EdgeCount())

	seedFile, err := os.Open(seedsPath)
	if err != nil {
		return fmt.Errorf("opening seeds file: %w", err)
	}
	defer seedFile.Close()

	names, err := sif.ReadSeeds(seedFile)
	if err != nil {
		return err
	}
	seeds, dropped := sif.ResolveSeeds(g, names)
	for _, name := range dropped {
		logger.Warn("seed is not in the network, skipping it", "seed", name)
	}
	logger.Info("seeds resolved", "found", len(seeds), "dropped", len(dropped))

	scores, err := gbascore.Score(g, seeds,
		gbascore.WithAlpha(alpha),
		gbascore.WithMaxDepth(dMax),
		gbascore.WithWorkers(workers),
	)
	if err != nil {
		return err
	}

	return sif.WriteScores(os.Stdout, g, scores)
}
