// Package report formats ranked concept pairs for output.
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/matsen/lcs/internal/lcs"
)

// Line formats one pair as "sim ( <c1>, <c2> ) = <score>" with three decimals.
func Line(p lcs.Pair) string {
	return fmt.Sprintf("sim ( %s, %s ) = %.3f", p.C1, p.C2, p.Similarity)
}

// WriteText writes one line per pair in the order given.
func WriteText(w io.Writer, pairs []lcs.Pair) error {
	bw := bufio.NewWriter(w)
	for _, p := range pairs {
		if _, err := fmt.Fprintln(bw, Line(p)); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	return bw.Flush()
}

// PairResult is the JSON form of a scored pair.
type PairResult struct {
	C1         string  `json:"c1"`
	C2         string  `json:"c2"`
	Similarity float64 `json:"similarity"`
}

// Report is the JSON form of a full ranking run.
type Report struct {
	RunID       string       `json:"run_id"`
	Ontology    string       `json:"ontology"`
	Algorithm   string       `json:"algorithm"`
	GeneratedAt time.Time    `json:"generated_at"`
	Count       int          `json:"count"`
	Pairs       []PairResult `json:"pairs"`
}

// NewReport builds a Report with a fresh run ID.
func NewReport(ontology string, alg lcs.Algorithm, pairs []lcs.Pair) Report {
	results := make([]PairResult, len(pairs))
	for i, p := range pairs {
		results[i] = PairResult{C1: p.C1.Name, C2: p.C2.Name, Similarity: p.Similarity}
	}
	return Report{
		RunID:       uuid.NewString(),
		Ontology:    ontology,
		Algorithm:   string(alg),
		GeneratedAt: time.Now().UTC(),
		Count:       len(results),
		Pairs:       results,
	}
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
