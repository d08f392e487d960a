package lcs

import (
	"strconv"

	"github.com/matsen/lcs/internal/concept"
)

// Precision is the number of decimal places scores are rounded to before
// they are stored and ranked.
const Precision = 3

// Sim scores c1 against c2 as the share of their combined ancestry that they
// have in common:
//
//	depth(lcs) / (depth(c1) + depth(c2) - depth(lcs))
//
// The LCS is found with Binary over [start, end] of c1's path.
// The result lies in (0, 1] and is 1 exactly when c1 and c2 are the same concept.
func Sim(o Ontology, c1, c2 *concept.Concept, start, end int) (float64, error) {
	l, err := Binary(o, c1, c2, start, end)
	if err != nil {
		return 0, err
	}
	return ratio(o, c1, c2, l)
}

// Score is Sim with a selectable LCS algorithm over the full path.
func Score(o Ontology, c1, c2 *concept.Concept, alg Algorithm) (float64, error) {
	l, err := Find(o, c1, c2, alg)
	if err != nil {
		return 0, err
	}
	return ratio(o, c1, c2, l)
}

func ratio(o Ontology, c1, c2, l *concept.Concept) (float64, error) {
	d1, err := depth(o, c1)
	if err != nil {
		return 0, err
	}
	d2, err := depth(o, c2)
	if err != nil {
		return 0, err
	}
	dl, err := depth(o, l)
	if err != nil {
		return 0, err
	}
	return float64(dl) / float64(d1+d2-dl), nil
}

// Round rounds a score to Precision decimal places. Exact halves go to the
// even digit, so Round(0.0625) is 0.062, the same value %.3f prints.
func Round(x float64) float64 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', Precision, 64), 64)
	return v
}
