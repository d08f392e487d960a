package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/matsen/lcs/internal/storage"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <ontology> <output>",
	Short: "Rewrite an ontology in another file format",
	Long: `Load an ontology, check that it forms a single-rooted tree, and write it
to <output> in the format named by its extension (.kb or .jsonl).
Concepts are written in the order they were read; YAML input is flattened
in preorder.

Examples:
  lcs convert data/vehicles.yaml vehicles.kb
  lcs convert animals animals.jsonl`,
	Args: exactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

// ConvertResult is the output of the convert command.
type ConvertResult struct {
	Source   string `json:"source"`
	Output   string `json:"output"`
	Concepts int    `json:"concepts"`
}

func runConvert(cmd *cobra.Command, args []string) error {
	path := mustResolveOntology(args[0])
	output := args[1]

	o, err := storage.LoadOntologyFile(path)
	if err != nil {
		exitWithError(ExitDataError, "loading ontology: %v", err)
	}

	concepts := o.Concepts()
	if err := storage.WriteConceptsFile(output, concepts); err != nil {
		if errors.Is(err, storage.ErrUnsupportedFormat) {
			exitWithError(ExitConfigError, "%v", err)
		}
		exitWithError(ExitError, "writing %s: %v", output, err)
	}
	slog.Info("converted ontology", "source", path, "output", output, "concepts", len(concepts))

	out := cmd.OutOrStdout()
	if jsonOutput {
		return outputJSON(out, ConvertResult{Source: path, Output: output, Concepts: len(concepts)})
	}
	fmt.Fprintf(out, "Wrote %d concepts: %s -> %s\n", len(concepts), path, output)
	return nil
}
