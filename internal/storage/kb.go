package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matsen/lcs/internal/concept"
)

// ErrMalformedLine is returned for .kb lines with more than two fields.
var ErrMalformedLine = errors.New("expected '<concept> [<parent>]'")

// ReadKB reads concepts from a knowledge-base text file.
//
// Each non-blank line declares one concept as "<name> <parent>"; a line with
// only a name declares the root. Text after '#' is a comment.
func ReadKB(path string) ([]concept.Concept, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening kb file: %w", err)
	}
	defer f.Close()

	return parseKB(f)
}

func parseKB(r io.Reader) ([]concept.Concept, error) {
	var concepts []concept.Concept
	scanner := bufio.NewScanner(r)
	buf := make([]byte, MaxJSONLLineCapacity)
	scanner.Buffer(buf, MaxJSONLLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) > 2 {
			return nil, fmt.Errorf("line %d: %w", lineNum, ErrMalformedLine)
		}

		c := concept.Concept{Name: fields[0]}
		if len(fields) == 2 {
			c.Parent = fields[1]
		}
		if err := c.ValidateForCreate(); err != nil {
			return nil, fmt.Errorf("invalid concept at line %d: %w", lineNum, err)
		}
		concepts = append(concepts, c)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading kb file: %w", err)
	}

	return concepts, nil
}

// WriteKB writes concepts in knowledge-base text format.
func WriteKB(w io.Writer, concepts []concept.Concept) error {
	bw := bufio.NewWriter(w)
	for _, c := range concepts {
		var err error
		if c.IsRoot() {
			_, err = fmt.Fprintln(bw, c.Name)
		} else {
			_, err = fmt.Fprintf(bw, "%s %s\n", c.Name, c.Parent)
		}
		if err != nil {
			return fmt.Errorf("writing concept %s: %w", c.Name, err)
		}
	}
	return bw.Flush()
}
