package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/matsen/lcs/internal/lcs"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <ontology>",
	Short: "Verify that the linear and binary LCS finders agree",
	Long: `Run both LCS finders over every pair of concepts and report any pair
for which they return different subsumers.

Exits with code 3 if a mismatch is found.`,
	Args: exactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// CheckResult is the output of the check command.
type CheckResult struct {
	Status       string         `json:"status"`
	PairsChecked int            `json:"pairs_checked"`
	Mismatches   []lcs.Mismatch `json:"mismatches"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	o, path, closeOntology := mustOpenOntology(args[0])
	defer closeOntology()

	return checkOntology(cmd.OutOrStdout(), o, path)
}

// checkOntology runs both finders over o and writes the result to out.
// Disagreement is returned as an exitError so callers' deferred cleanup runs.
func checkOntology(out io.Writer, o lcs.Ontology, path string) error {
	mismatches, checked, err := lcs.Verify(o)
	if err != nil {
		exitWithError(ExitDataError, "checking %s: %v", path, err)
	}
	slog.Info("checked LCS finders", "ontology", path, "pairs", checked, "mismatches", len(mismatches))

	result := CheckResult{
		Status:       "ok",
		PairsChecked: checked,
		Mismatches:   mismatches,
	}
	if len(mismatches) > 0 {
		result.Status = "mismatch"
	} else {
		result.Mismatches = []lcs.Mismatch{}
	}

	if jsonOutput {
		if err := outputJSON(out, result); err != nil {
			return err
		}
	} else {
		for _, m := range mismatches {
			fmt.Fprintf(out, "mismatch ( %s, %s ): linear=%s binary=%s\n", m.C1, m.C2, m.Linear, m.Binary)
		}
		fmt.Fprintf(out, "%s: %d pairs checked, %d mismatches\n", result.Status, checked, len(mismatches))
	}

	if len(mismatches) > 0 {
		return &exitError{code: ExitDataError, msg: fmt.Sprintf("%d LCS mismatches in %s", len(mismatches), path)}
	}
	return nil
}
