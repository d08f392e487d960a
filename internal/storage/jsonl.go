// Package storage reads ontology files and maintains the SQLite concept index.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matsen/lcs/internal/concept"
	"github.com/matsen/lcs/internal/ontology"
)

// MaxJSONLLineCapacity is the maximum buffer size for reading JSONL lines (1MB per line).
// This constant is shared across all line-oriented readers.
const MaxJSONLLineCapacity = 1024 * 1024

// Supported ontology file extensions.
const (
	ExtKB    = ".kb"
	ExtJSONL = ".jsonl"
	ExtYAML  = ".yaml"
	ExtYML   = ".yml"
)

// Extensions lists the ontology file extensions in lookup preference order.
var Extensions = []string{ExtKB, ExtJSONL, ExtYAML, ExtYML}

// ErrUnsupportedFormat is returned for files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported ontology format")

// ReadConceptsFile reads the concept list from an ontology file, choosing the
// reader by file extension.
func ReadConceptsFile(path string) ([]concept.Concept, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtKB:
		return ReadKB(path)
	case ExtJSONL:
		return ReadAllConcepts(path)
	case ExtYAML, ExtYML:
		return ReadYAML(path)
	default:
		return nil, fmt.Errorf("%w: %s (valid: %v)", ErrUnsupportedFormat, path, Extensions)
	}
}

// WriteConceptsFile writes concepts to path in the format named by its
// extension, replacing existing content. YAML output is not supported.
func WriteConceptsFile(path string, concepts []concept.Concept) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtKB:
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating kb file: %w", err)
		}
		defer f.Close()
		return WriteKB(f, concepts)
	case ExtJSONL:
		return WriteAllConcepts(path, concepts)
	default:
		return fmt.Errorf("%w for writing: %s (valid: %v)", ErrUnsupportedFormat, path, []string{ExtKB, ExtJSONL})
	}
}

// LoadOntologyFile reads an ontology file and builds the in-memory hierarchy.
func LoadOntologyFile(path string) (*ontology.Ontology, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening ontology: %w", err)
	}
	concepts, err := ReadConceptsFile(path)
	if err != nil {
		return nil, err
	}
	o, err := ontology.New(concepts)
	if err != nil {
		return nil, fmt.Errorf("building ontology from %s: %w", path, err)
	}
	return o, nil
}
