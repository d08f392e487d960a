package main

import (
	"log/slog"
	"time"

	"github.com/matsen/lcs/internal/config"
	"github.com/matsen/lcs/internal/lcs"
	"github.com/matsen/lcs/internal/report"
	"github.com/spf13/cobra"
)

// runRank scores every concept pair and prints them in ascending order.
func runRank(cmd *cobra.Command, args []string) error {
	o, path, closeOntology := mustOpenOntology(args[0])
	defer closeOntology()
	alg := mustAlgorithm()

	start := time.Now()
	pairs, err := lcs.Pairs(o, alg)
	if err != nil {
		exitWithError(ExitDataError, "scoring pairs: %v", err)
	}
	ranked := lcs.Rank(pairs)
	slog.Info("ranked concept pairs",
		"ontology", path,
		"algorithm", alg,
		"pairs", len(ranked),
		"elapsed", time.Since(start))

	out := cmd.OutOrStdout()
	if jsonOutput {
		return outputJSON(out, report.NewReport(config.OntologyName(path), alg, ranked))
	}
	return report.WriteText(out, ranked)
}
