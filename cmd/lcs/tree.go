package main

import (
	"fmt"

	"github.com/matsen/lcs/internal/config"
	"github.com/matsen/lcs/internal/tree"
	"github.com/spf13/cobra"
)

var treeHTML bool

var treeCmd = &cobra.Command{
	Use:   "tree <ontology>",
	Short: "Print the is-a hierarchy",
	Long: `Print every concept indented under its parent.

With --html, write a self-contained page of collapsible nodes instead
(press c to collapse all, e to expand all).

Examples:
  lcs tree animals
  lcs tree animals --html > animals.html`,
	Args: exactArgs(1),
	RunE: runTree,
}

func init() {
	treeCmd.Flags().BoolVar(&treeHTML, "html", false, "Output an HTML page")
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	o, path, closeOntology := mustOpenOntology(args[0])
	defer closeOntology()

	root, err := tree.Build(o)
	if err != nil {
		exitWithError(ExitDataError, "building tree: %v", err)
	}

	out := cmd.OutOrStdout()
	if treeHTML {
		_, err := fmt.Fprint(out, tree.GenerateHTML(config.OntologyName(path), root))
		return err
	}
	return tree.WriteText(out, root)
}
