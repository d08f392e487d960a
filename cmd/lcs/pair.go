package main

import (
	"fmt"

	"github.com/matsen/lcs/internal/lcs"
	"github.com/matsen/lcs/internal/report"
	"github.com/spf13/cobra"
)

var pairCmd = &cobra.Command{
	Use:   "pair <ontology> <concept1> <concept2>",
	Short: "Score a single pair of concepts",
	Long: `Find the least common subsumer of two concepts and print their similarity.

Examples:
  lcs pair animals dog cat
  lcs pair data/animals.kb dog lizard --algorithm linear --json`,
	Args: exactArgs(3),
	RunE: runPair,
}

func init() {
	rootCmd.AddCommand(pairCmd)
}

// PairResult is the output of the pair command.
type PairResult struct {
	C1         string  `json:"c1"`
	C2         string  `json:"c2"`
	LCS        string  `json:"lcs"`
	Similarity float64 `json:"similarity"`
	Algorithm  string  `json:"algorithm"`
}

func runPair(cmd *cobra.Command, args []string) error {
	o, _, closeOntology := mustOpenOntology(args[0])
	defer closeOntology()
	alg := mustAlgorithm()

	c1 := mustConcept(o, args[1])
	c2 := mustConcept(o, args[2])

	subsumer, err := lcs.Find(o, c1, c2, alg)
	if err != nil {
		exitWithError(ExitDataError, "finding LCS of %s and %s: %v", c1, c2, err)
	}
	score, err := lcs.Score(o, c1, c2, alg)
	if err != nil {
		exitWithError(ExitDataError, "scoring %s and %s: %v", c1, c2, err)
	}
	score = lcs.Round(score)

	out := cmd.OutOrStdout()
	if jsonOutput {
		return outputJSON(out, PairResult{
			C1:         c1.Name,
			C2:         c2.Name,
			LCS:        subsumer.Name,
			Similarity: score,
			Algorithm:  string(alg),
		})
	}
	fmt.Fprintln(out, report.Line(lcs.Pair{C1: c1, C2: c2, Similarity: score}))
	fmt.Fprintf(out, "lcs: %s\n", subsumer.Name)
	return nil
}
