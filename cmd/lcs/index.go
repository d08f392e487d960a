package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/matsen/lcs/internal/config"
	"github.com/matsen/lcs/internal/storage"
	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Manage the SQLite concept index",
	Long: `Build and inspect the SQLite index of an ontology.

Commands run with --index read concepts from the index instead of parsing
the ontology file. Indexes live in the cache directory (cache_dir in
~/.config/lcs/config.yml, else the user cache directory).`,
}

var indexBuildCmd = &cobra.Command{
	Use:   "build <ontology>",
	Short: "Rebuild the SQLite index from an ontology file",
	Args:  exactArgs(1),
	RunE:  runIndexBuild,
}

var indexInfoCmd = &cobra.Command{
	Use:   "info <ontology>",
	Short: "Show where an index came from and whether it is stale",
	Args:  exactArgs(1),
	RunE:  runIndexInfo,
}

func init() {
	indexCmd.AddCommand(indexBuildCmd)
	indexCmd.AddCommand(indexInfoCmd)
	rootCmd.AddCommand(indexCmd)
}

// IndexBuildResult is the output of index build.
type IndexBuildResult struct {
	Status   string `json:"status"`
	Index    string `json:"index"`
	Concepts int    `json:"concepts"`
}

// IndexInfoResult is the output of index info.
type IndexInfoResult struct {
	Index    string             `json:"index"`
	Concepts int                `json:"concepts"`
	Stale    bool               `json:"stale"`
	Source   *storage.IndexInfo `json:"source"`
}

func runIndexBuild(cmd *cobra.Command, args []string) error {
	path := mustResolveOntology(args[0])

	o, err := storage.LoadOntologyFile(path)
	if err != nil {
		exitWithError(ExitDataError, "loading ontology: %v", err)
	}

	dbPath := config.IndexPath(config.GetCacheDir(), path)
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		exitWithError(ExitError, "creating cache directory: %v", err)
	}

	db, err := storage.OpenDB(dbPath)
	if err != nil {
		exitWithError(ExitError, "opening index: %v", err)
	}
	defer db.Close()

	start := time.Now()
	count, err := db.RebuildFromOntology(o, path)
	if err != nil {
		exitWithError(ExitError, "rebuilding index: %v", err)
	}
	slog.Info("rebuilt index", "index", dbPath, "concepts", count, "elapsed", time.Since(start))

	out := cmd.OutOrStdout()
	if jsonOutput {
		return outputJSON(out, IndexBuildResult{Status: "rebuilt", Index: dbPath, Concepts: count})
	}
	fmt.Fprintf(out, "Index rebuilt: %d concepts -> %s\n", count, dbPath)
	return nil
}

func runIndexInfo(cmd *cobra.Command, args []string) error {
	path := mustResolveOntology(args[0])
	db := mustOpenIndex(path)
	defer db.Close()

	info, err := db.Info()
	if err != nil {
		if errors.Is(err, storage.ErrIndexEmpty) {
			exitWithError(ExitIndexNotFound, "%v", err)
		}
		exitWithError(ExitError, "reading index metadata: %v", err)
	}
	count, err := db.CountConcepts()
	if err != nil {
		exitWithError(ExitError, "counting concepts: %v", err)
	}
	stale, err := db.IsStale(path)
	if err != nil {
		exitWithError(ExitError, "checking staleness: %v", err)
	}

	result := IndexInfoResult{
		Index:    config.IndexPath(config.GetCacheDir(), path),
		Concepts: count,
		Stale:    stale,
		Source:   info,
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return outputJSON(out, result)
	}
	fmt.Fprintf(out, "Index:    %s\n", result.Index)
	fmt.Fprintf(out, "Source:   %s\n", info.SourcePath)
	fmt.Fprintf(out, "Concepts: %d\n", count)
	fmt.Fprintf(out, "Built:    %s\n", info.BuiltAt.Format(time.RFC3339))
	if stale {
		fmt.Fprintln(out, "Status:   stale (run 'lcs index build' to refresh)")
	} else {
		fmt.Fprintln(out, "Status:   up to date")
	}
	return nil
}
