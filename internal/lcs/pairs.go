package lcs

import (
	"fmt"

	"github.com/matsen/lcs/internal/concept"
	"github.com/matsen/lcs/internal/rank"
)

// Pair is two concepts together with their rounded similarity score.
type Pair struct {
	C1         *concept.Concept
	C2         *concept.Concept
	Similarity float64
}

// Pairs scores every unordered pair of concepts in o, self-pairs included.
// For N concepts it returns N(N+1)/2 pairs: concept i is paired with each
// concept j >= i in enumeration order.
func Pairs(o Ontology, alg Algorithm) ([]Pair, error) {
	concepts, err := loadAll(o)
	if err != nil {
		return nil, err
	}

	pairs := make([]Pair, 0, pairCount(len(concepts)))
	for i, c1 := range concepts {
		for _, c2 := range concepts[i:] {
			s, err := Score(o, c1, c2, alg)
			if err != nil {
				return nil, fmt.Errorf("scoring %s and %s: %w", c1, c2, err)
			}
			pairs = append(pairs, Pair{C1: c1, C2: c2, Similarity: Round(s)})
		}
	}
	return pairs, nil
}

// Rank returns pairs sorted by ascending similarity.
// Pairs with equal scores keep their relative order.
func Rank(pairs []Pair) []Pair {
	return rank.QuickSort(pairs, func(p Pair) float64 { return p.Similarity })
}

// Mismatch records a pair for which the finders disagree.
type Mismatch struct {
	C1     string `json:"c1"`
	C2     string `json:"c2"`
	Linear string `json:"linear"`
	Binary string `json:"binary"`
}

// Verify runs both finders on every unordered pair in o and reports where
// their answers differ. It also returns the number of pairs checked.
func Verify(o Ontology) ([]Mismatch, int, error) {
	concepts, err := loadAll(o)
	if err != nil {
		return nil, 0, err
	}

	var mismatches []Mismatch
	checked := 0
	for i, c1 := range concepts {
		for _, c2 := range concepts[i:] {
			lin, err := Find(o, c1, c2, AlgorithmLinear)
			if err != nil {
				return nil, checked, fmt.Errorf("linear LCS of %s and %s: %w", c1, c2, err)
			}
			bin, err := Find(o, c1, c2, AlgorithmBinary)
			if err != nil {
				return nil, checked, fmt.Errorf("binary LCS of %s and %s: %w", c1, c2, err)
			}
			if !concept.Same(lin, bin) {
				mismatches = append(mismatches, Mismatch{
					C1: c1.Name, C2: c2.Name, Linear: lin.Name, Binary: bin.Name,
				})
			}
			checked++
		}
	}
	return mismatches, checked, nil
}

// loadAll resolves every enumerated name to its concept.
func loadAll(o Ontology) ([]*concept.Concept, error) {
	names, err := o.AllConcepts()
	if err != nil {
		return nil, fmt.Errorf("listing concepts: %w", err)
	}
	concepts := make([]*concept.Concept, len(names))
	for i, name := range names {
		c, err := o.Concept(name)
		if err != nil {
			return nil, err
		}
		concepts[i] = c
	}
	return concepts, nil
}

func pairCount(n int) int {
	return n * (n + 1) / 2
}
