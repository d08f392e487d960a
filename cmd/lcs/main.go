// Package main provides the lcs CLI entry point.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/matsen/lcs/internal/concept"
	"github.com/matsen/lcs/internal/config"
	"github.com/matsen/lcs/internal/lcs"
	"github.com/matsen/lcs/internal/logging"
	"github.com/matsen/lcs/internal/storage"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// Persistent flag values
var (
	jsonOutput    bool
	algorithmName string
	useIndex      bool
	logLevel      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var ue *usageError
		if errors.As(err, &ue) {
			fmt.Fprintln(os.Stdout, ue.Error())
			os.Exit(ExitSuccess)
		}
		// The command already reported its result.
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lcs <ontology>",
	Short: "Rank concept pairs by taxonomic similarity",
	Long: `lcs loads an is-a hierarchy and scores every pair of its concepts by
how much ancestry they share:

  sim(a, b) = depth(lcs) / (depth(a) + depth(b) - depth(lcs))

where lcs is the least common subsumer of a and b and depth counts the
concepts from a node up to the root. All pairs, self-pairs included, are
printed in ascending order of similarity.

<ontology> is a .kb, .jsonl, .yaml or .yml file, or a bare name looked up
in the data directory (default "data", or data_dir in ~/.config/lcs/config.yml).`,
	Args:              exactArgs(1),
	PersistentPreRunE: setup,
	RunE:              runRank,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	// Load .env file if present (for LCS_* overrides)
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of text")
	rootCmd.PersistentFlags().StringVarP(&algorithmName, "algorithm", "a", "", "LCS algorithm: linear or binary (default from config, else binary)")
	rootCmd.PersistentFlags().BoolVar(&useIndex, "index", false, "Read concepts from the SQLite index instead of the ontology file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Version = Version
}

// setup configures logging before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	level := logLevel
	if level == "" {
		level = config.GetLogLevel()
	}
	logging.Init(jsonOutput, logging.ParseLevel(level))
	return nil
}

// usageError reports a wrong number of positional arguments.
type usageError struct {
	use string
}

func (e *usageError) Error() string {
	return "Usage: " + e.use
}

// exitError ends a command with a specific exit code after its output has
// been written.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string {
	return e.msg
}

// exactArgs is cobra.ExactArgs, except that a wrong count yields a usageError
// so main can print usage and exit cleanly.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return &usageError{use: cmd.UseLine()}
		}
		return nil
	}
}

// mustResolveOntology maps an ontology argument to a file path, exits on error.
func mustResolveOntology(arg string) string {
	path, err := config.ResolveOntology(arg, config.GetDataDir(), storage.Extensions)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	return path
}

// mustOpenOntology resolves and loads an ontology, from the SQLite index when
// --index is set. The caller is responsible for calling the returned close func.
func mustOpenOntology(arg string) (lcs.Ontology, string, func()) {
	path := mustResolveOntology(arg)
	if useIndex {
		db := mustOpenIndex(path)
		return db, path, func() { db.Close() }
	}

	o, err := storage.LoadOntologyFile(path)
	if err != nil {
		exitWithError(ExitDataError, "loading ontology: %v", err)
	}
	slog.Debug("loaded ontology", "path", path, "concepts", o.Len(), "root", o.Root().Name)
	return o, path, func() {}
}

// mustOpenIndex opens the SQLite index for an ontology file, exits if it is missing.
// The caller is responsible for calling Close() on the returned DB.
func mustOpenIndex(ontologyPath string) *storage.DB {
	dbPath := config.IndexPath(config.GetCacheDir(), ontologyPath)
	if _, err := os.Stat(dbPath); err != nil {
		exitWithError(ExitIndexNotFound, "index not found: %s\n\nRun 'lcs index build %s' to create it.", dbPath, ontologyPath)
	}

	db, err := storage.OpenDB(dbPath)
	if err != nil {
		exitWithError(ExitError, "opening index: %v", err)
	}

	stale, err := db.IsStale(ontologyPath)
	if err != nil {
		if errors.Is(err, storage.ErrIndexEmpty) {
			db.Close()
			exitWithError(ExitIndexNotFound, "index is empty: %s\n\nRun 'lcs index build %s' to populate it.", dbPath, ontologyPath)
		}
		slog.Warn("could not check index staleness", "index", dbPath, "error", err)
	} else if stale {
		slog.Warn("index is older than its ontology file; run 'lcs index build' to refresh", "index", dbPath)
	}
	slog.Debug("opened index", "path", dbPath)
	return db
}

// mustAlgorithm returns the LCS algorithm from the flag or config, exits on error.
func mustAlgorithm() lcs.Algorithm {
	name := algorithmName
	if name == "" {
		name = config.GetAlgorithm()
	}
	alg, err := lcs.ParseAlgorithm(name)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	return alg
}

// mustConcept looks up a concept by name, exits if it is unknown.
func mustConcept(o lcs.Ontology, name string) *concept.Concept {
	c, err := o.Concept(name)
	if err != nil {
		if errors.Is(err, concept.ErrConceptNotFound) {
			exitWithError(ExitConceptNotFound, "%v", err)
		}
		exitWithError(ExitError, "looking up concept: %v", err)
	}
	return c
}
