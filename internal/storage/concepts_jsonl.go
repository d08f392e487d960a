package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matsen/lcs/internal/concept"
)

// ReadAllConcepts reads all concepts from a JSONL file.
// Returns an error if any concept fails structural validation (fail-fast).
func ReadAllConcepts(path string) ([]concept.Concept, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // Empty file returns empty slice
		}
		return nil, fmt.Errorf("opening concepts file: %w", err)
	}
	defer f.Close()

	return readConceptsJSONL(f)
}

func readConceptsJSONL(r io.Reader) ([]concept.Concept, error) {
	var concepts []concept.Concept
	scanner := bufio.NewScanner(r)

	// Increase buffer size for long lines
	buf := make([]byte, MaxJSONLLineCapacity)
	scanner.Buffer(buf, MaxJSONLLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}

		var c concept.Concept
		if err := json.Unmarshal(line, &c); err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", lineNum, err)
		}

		// Fail fast: validate concept structure before adding to collection
		if err := c.ValidateForCreate(); err != nil {
			return nil, fmt.Errorf("invalid concept at line %d: %w", lineNum, err)
		}

		concepts = append(concepts, c)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading concepts file: %w", err)
	}

	return concepts, nil
}

// writeConceptJSONL marshals a concept to JSON and writes it as a JSONL line.
func writeConceptJSONL(w io.Writer, c concept.Concept) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding concept: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing concept: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("writing newline: %w", err)
	}
	return nil
}

// WriteAllConcepts writes all concepts to a JSONL file, replacing existing content.
func WriteAllConcepts(path string, concepts []concept.Concept) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating concepts file: %w", err)
	}
	defer f.Close()

	for _, c := range concepts {
		if err := writeConceptJSONL(f, c); err != nil {
			return err
		}
	}

	return nil
}
