package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IndexFileExt is the extension of SQLite index files in the cache directory.
const IndexFileExt = ".db"

// ErrOntologyNotFound is returned when an ontology argument matches no file.
var ErrOntologyNotFound = errors.New("ontology not found")

// ResolveOntology turns a command-line ontology argument into a file path.
//
// An argument naming an existing file is used as is. Otherwise it is treated
// as a bare name and looked up as <dataDir>/<name><ext> for each of exts in
// order.
func ResolveOntology(arg, dataDir string, exts []string) (string, error) {
	if arg == "" {
		return "", fmt.Errorf("%w: empty name", ErrOntologyNotFound)
	}
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return arg, nil
	}

	var tried []string
	for _, ext := range exts {
		candidate := filepath.Join(dataDir, arg+ext)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		tried = append(tried, candidate)
	}
	return "", fmt.Errorf("%w: %s (tried %s)", ErrOntologyNotFound, arg, strings.Join(tried, ", "))
}

// OntologyName returns the display name of an ontology file: its base name
// without extension.
func OntologyName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// IndexPath returns the SQLite index path for an ontology file.
// Indexes live in cacheDir, keyed by ontology name.
func IndexPath(cacheDir, ontologyPath string) string {
	return filepath.Join(cacheDir, OntologyName(ontologyPath)+IndexFileExt)
}
