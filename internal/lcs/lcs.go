// Package lcs finds least common subsumers in a concept hierarchy and scores
// concept pairs by how much of their ancestry they share.
package lcs

import (
	"errors"
	"fmt"
	"slices"

	"github.com/matsen/lcs/internal/concept"
)

// Ontology is the hierarchy the finders and scorers read from.
// Both the in-memory ontology and the SQLite index satisfy it.
type Ontology interface {
	// PathToTop returns c followed by its ancestors, ending at the root.
	PathToTop(c *concept.Concept) ([]*concept.Concept, error)
	// Subsumes reports whether a is an ancestor of, or equal to, b.
	Subsumes(a, b *concept.Concept) (bool, error)
	// AllConcepts returns every concept name in a stable order.
	AllConcepts() ([]string, error)
	// Concept looks up a concept by name.
	Concept(name string) (*concept.Concept, error)
}

// Algorithm selects an LCS finder.
type Algorithm string

const (
	AlgorithmLinear Algorithm = "linear"
	AlgorithmBinary Algorithm = "binary"
)

// DefaultAlgorithm is used when none is configured.
const DefaultAlgorithm = AlgorithmBinary

// Algorithms lists the supported values.
var Algorithms = []Algorithm{AlgorithmLinear, AlgorithmBinary}

var (
	ErrNoCommonSubsumer = errors.New("concepts share no common subsumer")
	ErrInvalidRange     = errors.New("search range outside concept path")
	ErrUnknownAlgorithm = errors.New("unknown LCS algorithm")
)

// ParseAlgorithm converts a string to an Algorithm.
// An empty string yields DefaultAlgorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	if s == "" {
		return DefaultAlgorithm, nil
	}
	a := Algorithm(s)
	if !slices.Contains(Algorithms, a) {
		return "", fmt.Errorf("%w: %s (valid: %v)", ErrUnknownAlgorithm, s, Algorithms)
	}
	return a, nil
}

// Linear finds the least common subsumer of c1 and c2 by walking both paths
// down from the root until they diverge.
func Linear(o Ontology, c1, c2 *concept.Concept) (*concept.Concept, error) {
	p1, err := o.PathToTop(c1)
	if err != nil {
		return nil, err
	}
	p2, err := o.PathToTop(c2)
	if err != nil {
		return nil, err
	}
	slices.Reverse(p1)
	slices.Reverse(p2)

	n := min(len(p1), len(p2))
	if n == 0 {
		return nil, ErrNoCommonSubsumer
	}
	for i := 0; i < n; i++ {
		if !concept.Same(p1[i], p2[i]) {
			if i == 0 {
				return nil, fmt.Errorf("%w: %s and %s", ErrNoCommonSubsumer, c1, c2)
			}
			return p1[i-1], nil
		}
	}
	// One path is a prefix of the other.
	return p1[n-1], nil
}

// Binary finds the least common subsumer of c1 and c2 by binary search over
// c1's path. start and end index the path as returned by PathToTop (c1 first,
// root last); pass 0 and len(path)-1 to search all of it.
//
// Along that path "subsumes c2" is false up to the LCS and true from there to
// the root, so the first true index is the answer.
func Binary(o Ontology, c1, c2 *concept.Concept, start, end int) (*concept.Concept, error) {
	path, err := o.PathToTop(c1)
	if err != nil {
		return nil, err
	}
	if start < 0 || end >= len(path) || start > end {
		return nil, fmt.Errorf("%w: [%d, %d] of %d", ErrInvalidRange, start, end, len(path))
	}

	for start < end {
		mid := (start + end) / 2
		ok, err := o.Subsumes(path[mid], c2)
		if err != nil {
			return nil, err
		}
		if ok {
			end = mid
		} else {
			start = mid + 1
		}
	}

	ok, err := o.Subsumes(path[start], c2)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s and %s", ErrNoCommonSubsumer, c1, c2)
	}
	return path[start], nil
}

// Find returns the least common subsumer using the chosen algorithm over the
// full path.
func Find(o Ontology, c1, c2 *concept.Concept, alg Algorithm) (*concept.Concept, error) {
	switch alg {
	case AlgorithmLinear:
		return Linear(o, c1, c2)
	case AlgorithmBinary:
		end, err := depth(o, c1)
		if err != nil {
			return nil, err
		}
		return Binary(o, c1, c2, 0, end-1)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
	}
}

// depther is implemented by providers that know a concept's depth without
// copying its path.
type depther interface {
	Depth(c *concept.Concept) (int, error)
}

func depth(o Ontology, c *concept.Concept) (int, error) {
	if d, ok := o.(depther); ok {
		return d.Depth(c)
	}
	p, err := o.PathToTop(c)
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
