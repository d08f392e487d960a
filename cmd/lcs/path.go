package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path <ontology> <concept>",
	Short: "Show the path from a concept up to the root",
	Long: `Print the chain of is-a links from a concept to the root of its hierarchy.
The depth of a concept is the length of this path.

Examples:
  lcs path animals puppy
  lcs path data/animals.kb puppy --json`,
	Args: exactArgs(2),
	RunE: runPath,
}

func init() {
	rootCmd.AddCommand(pathCmd)
}

// PathResult is the output of the path command.
type PathResult struct {
	Concept string   `json:"concept"`
	Depth   int      `json:"depth"`
	Path    []string `json:"path"`
}

func runPath(cmd *cobra.Command, args []string) error {
	o, _, closeOntology := mustOpenOntology(args[0])
	defer closeOntology()

	c := mustConcept(o, args[1])
	path, err := o.PathToTop(c)
	if err != nil {
		exitWithError(ExitDataError, "walking to root from %s: %v", c, err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return outputJSON(out, PathResult{
			Concept: c.Name,
			Depth:   len(path),
			Path:    conceptNames(path),
		})
	}
	fmt.Fprintf(out, "%s (depth %d)\n", formatPath(path), len(path))
	return nil
}
